package ports

import (
	"context"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// All read and write operations are scoped to a single tenant: an order
// belonging to another tenant is indistinguishable from a missing one.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, replacing
	// its line items and upserting its payment record.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier within
	// the given tenant. Returns ObjectNotFoundError when the order does
	// not exist or belongs to a different tenant.
	Get(ctx context.Context, tenantID kernel.UUID, id kernel.UUID) (*order.Order, error)

	// Delete removes an order aggregate and its dependent rows.
	// Returns ObjectNotFoundError when no row matches the tenant and id.
	Delete(ctx context.Context, tenantID kernel.UUID, id kernel.UUID) error

	// TicketCodeExists reports whether a ticket code of the given series
	// is already taken within the tenant.
	TicketCodeExists(ctx context.Context, tenantID kernel.UUID, series order.TicketSeries, code string) (bool, error)
}
