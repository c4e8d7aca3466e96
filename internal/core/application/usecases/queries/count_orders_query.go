package queries

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"
)

var ErrCountOrdersQueryIsNotConstructed = errors.New(
	"CountOrdersQuery must be created via a NewCountOrders*Query constructor",
)

// CountOrdersQuery counts a tenant's orders, optionally restricted to
// one status. Used for dashboard tiles and pagination.
type CountOrdersQuery struct { //nolint:recvcheck //using for validation
	tenantID kernel.UUID
	status   *order.Status

	guard guard.ConstructorGuard
}

// NewCountOrdersQuery creates a query counting all of a tenant's orders.
func NewCountOrdersQuery(tenantID kernel.UUID) (CountOrdersQuery, error) {
	if err := tenantID.Validate(); err != nil {
		return CountOrdersQuery{}, err
	}

	return CountOrdersQuery{
		tenantID: tenantID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// NewCountOrdersByStatusQuery creates a query counting orders in one status.
func NewCountOrdersByStatusQuery(tenantID kernel.UUID, status order.Status) (CountOrdersQuery, error) {
	if err := errors.Join(tenantID.Validate(), status.Validate()); err != nil {
		return CountOrdersQuery{}, err
	}

	return CountOrdersQuery{
		tenantID: tenantID,
		status:   &status,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q CountOrdersQuery) Validate() error {
	return q.guard.Validate(ErrCountOrdersQueryIsNotConstructed)
}

// TenantID returns the identifier of the business being counted.
func (q CountOrdersQuery) TenantID() kernel.UUID {
	return q.tenantID
}

// Status returns the status filter, nil meaning all statuses.
func (q CountOrdersQuery) Status() *order.Status {
	return q.status
}
