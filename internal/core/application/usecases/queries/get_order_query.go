package queries

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its line items and payment.
// Lookups are tenant-scoped: another tenant's order reads as not found.
//
// Example:
//
//	query, err := NewGetOrderQuery(tenantID, orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	resp, err := handler.Handle(ctx, query)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	tenantID kernel.UUID
	orderID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order by id.
func NewGetOrderQuery(tenantID kernel.UUID, orderID kernel.UUID) (GetOrderQuery, error) {
	orderQuery := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(tenantID.Validate(), orderID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	orderQuery.tenantID = tenantID
	orderQuery.orderID = orderID
	return orderQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// TenantID returns the identifier of the business the order belongs to.
func (q GetOrderQuery) TenantID() kernel.UUID {
	return q.tenantID
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
