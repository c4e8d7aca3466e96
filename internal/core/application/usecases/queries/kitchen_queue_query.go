package queries

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var ErrKitchenQueueQueryIsNotConstructed = errors.New(
	"KitchenQueueQuery must be created via NewKitchenQueueQuery constructor",
)

// KitchenQueueQuery retrieves a tenant's active kitchen workload: orders
// that are Pending or InPreparation, oldest first, so the kitchen works
// the queue in arrival order.
//
// Example:
//
//	query, err := NewKitchenQueueQuery(tenantID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewKitchenQueueQueryHandler(db)
//	queue, err := handler.Handle(ctx, query)
type KitchenQueueQuery struct { //nolint:recvcheck //using for validation
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewKitchenQueueQuery creates a query for the tenant's kitchen queue.
func NewKitchenQueueQuery(tenantID kernel.UUID) (KitchenQueueQuery, error) {
	if err := tenantID.Validate(); err != nil {
		return KitchenQueueQuery{}, err
	}

	return KitchenQueueQuery{
		tenantID: tenantID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q KitchenQueueQuery) Validate() error {
	return q.guard.Validate(ErrKitchenQueueQueryIsNotConstructed)
}

// TenantID returns the identifier of the business whose queue is requested.
func (q KitchenQueueQuery) TenantID() kernel.UUID {
	return q.tenantID
}
