package commands

import (
	"context"

	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Verifies the tenant, resolves products and customers through gateways,
// issues both ticket codes inside the creating transaction, and persists
// the new order in Pending status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, tenants, catalog, customers)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("order %s opened with kitchen ticket %s", created.ID(), created.KitchenTicket())
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	tenants    ports.TenantGateway
	catalog    ports.CatalogGateway
	customers  ports.CustomerGateway
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a CreateOrderUoWFactory for transactional persistence plus the
// tenant, catalog, and customer lookup gateways.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	tenants ports.TenantGateway,
	catalog ports.CatalogGateway,
	customers ports.CustomerGateway,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		tenants:    tenants,
		catalog:    catalog,
		customers:  customers,
	}
}

// Handle processes the order creation command and returns the created
// aggregate. Ticket issuance and order persistence share one transaction,
// so an aborted creation never burns a ticket number.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.tenants.GetTenant(ctx, cmd.TenantID()); err != nil {
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

	sequencer := uow.TicketSequencer()
	kitchenTicket, err := sequencer.Next(ctx, cmd.TenantID(), order.KitchenSeries)
	if err != nil {
		return nil, err
	}

	customerTicket, err := sequencer.Next(ctx, cmd.TenantID(), order.CustomerSeries)
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.TenantID(),
		cmd.OrderType(),
		kitchenTicket,
		customerTicket,
		cmd.CustomerID(),
		cmd.CustomerName(),
		cmd.Note(),
		lineItems,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
