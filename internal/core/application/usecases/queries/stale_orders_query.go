package queries

import (
	"errors"
	"time"

	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var ErrStaleOrdersQueryIsNotConstructed = errors.New(
	"StaleOrdersQuery must be created via NewStaleOrdersQuery constructor",
)

// StaleOrdersQuery finds Pending orders created before a cutoff across
// all tenants. Feeds the periodic reminder job that flags orders the
// kitchen never picked up.
type StaleOrdersQuery struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewStaleOrdersQuery creates a query for orders still Pending since
// before the cutoff.
func NewStaleOrdersQuery(cutoff time.Time) (StaleOrdersQuery, error) {
	if cutoff.IsZero() {
		return StaleOrdersQuery{}, errs.NewValueIsRequiredError("cutoff")
	}

	return StaleOrdersQuery{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q StaleOrdersQuery) Validate() error {
	return q.guard.Validate(ErrStaleOrdersQueryIsNotConstructed)
}

// Cutoff returns the creation-time threshold.
func (q StaleOrdersQuery) Cutoff() time.Time {
	return q.cutoff
}

// StaleOrderResponse identifies one order awaiting preparation too long.
type StaleOrderResponse struct {
	ID            string    `json:"id"`
	TenantID      string    `json:"tenantId"`
	KitchenTicket string    `json:"kitchenTicket"`
	CreatedAt     time.Time `json:"createdAt"`
}
