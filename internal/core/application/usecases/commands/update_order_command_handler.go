package commands

import (
	"context"

	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"
)

// UpdateOrderCommandHandler handles full edits of an existing order.
// Re-resolves every requested product from the catalog so renamed or
// repriced products are snapshotted fresh, then replaces the order's
// details atomically. Orders that are Ready, Paid, or Cancelled reject
// edits with an illegal transition error.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.CatalogGateway
	customers  ports.CustomerGateway
}

// NewUpdateOrderCommandHandler creates a handler for order edit operations.
func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.CatalogGateway,
	customers ports.CustomerGateway,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		customers:  customers,
	}
}

// Handle processes the edit command and returns the updated aggregate.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := resolveCustomer(ctx, h.customers, cmd.TenantID(), cmd.CustomerID()); err != nil {
		return nil, err
	}

	lineItems, err := resolveLineItems(ctx, h.catalog, cmd.TenantID(), cmd.Items())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.TenantID(), cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.UpdateDetails(
		cmd.OrderType(),
		cmd.CustomerID(),
		cmd.CustomerName(),
		cmd.Note(),
		lineItems,
	); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
