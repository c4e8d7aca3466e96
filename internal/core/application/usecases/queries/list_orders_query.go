package queries

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via a NewListOrders*Query constructor",
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

// ListOrdersQuery retrieves a page of a tenant's orders, newest first,
// optionally filtered by status set or by linked customer.
//
// Example:
//
//	query, err := NewListOrdersByStatusQuery(tenantID, order.Pending, 1, 20)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewListOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	tenantID   kernel.UUID
	statuses   []order.Status
	customerID *kernel.UUID
	page       int
	pageSize   int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for all of a tenant's orders.
// Page numbering starts at 1; a pageSize of 0 selects the default.
func NewListOrdersQuery(tenantID kernel.UUID, page, pageSize int) (ListOrdersQuery, error) {
	return newListOrdersQuery(tenantID, nil, nil, page, pageSize)
}

// NewListOrdersByStatusQuery creates a query filtered to one status.
func NewListOrdersByStatusQuery(
	tenantID kernel.UUID,
	status order.Status,
	page, pageSize int,
) (ListOrdersQuery, error) {
	return newListOrdersQuery(tenantID, []order.Status{status}, nil, page, pageSize)
}

// NewListOrdersByStatusesQuery creates a query filtered to a status set.
func NewListOrdersByStatusesQuery(
	tenantID kernel.UUID,
	statuses []order.Status,
	page, pageSize int,
) (ListOrdersQuery, error) {
	if len(statuses) == 0 {
		return ListOrdersQuery{}, errs.NewValueIsRequiredError("statuses")
	}
	return newListOrdersQuery(tenantID, statuses, nil, page, pageSize)
}

// NewListOrdersByCustomerQuery creates a query for one customer's orders.
func NewListOrdersByCustomerQuery(
	tenantID kernel.UUID,
	customerID kernel.UUID,
	page, pageSize int,
) (ListOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	return newListOrdersQuery(tenantID, nil, &customerID, page, pageSize)
}

func newListOrdersQuery(
	tenantID kernel.UUID,
	statuses []order.Status,
	customerID *kernel.UUID,
	page, pageSize int,
) (ListOrdersQuery, error) {
	if err := tenantID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	for _, status := range statuses {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	if page < 1 {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded")
	}

	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("pageSize", pageSize, 1, maxPageSize)
	}

	return ListOrdersQuery{
		tenantID:   tenantID,
		statuses:   statuses,
		customerID: customerID,
		page:       page,
		pageSize:   pageSize,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// TenantID returns the identifier of the business being listed.
func (q ListOrdersQuery) TenantID() kernel.UUID {
	return q.tenantID
}

// Statuses returns the status filter, empty meaning all statuses.
func (q ListOrdersQuery) Statuses() []order.Status {
	return q.statuses
}

// CustomerID returns the customer filter, nil meaning all customers.
func (q ListOrdersQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the number of orders per page.
func (q ListOrdersQuery) PageSize() int {
	return q.pageSize
}
