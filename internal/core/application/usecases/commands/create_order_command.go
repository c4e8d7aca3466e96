package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to open a new sales order for a
// tenant. Carries the order type, an optional customer reference or
// free-text customer name, an optional note, and the requested items.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), tenantID, order.DineIn, nil, "walk-in", "",
//	    []ItemInput{{ProductID: burgerID, Quantity: 2}},
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	tenantID     kernel.UUID
	orderType    order.OrderType
	customerID   *kernel.UUID
	customerName string
	note         string
	items        []ItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new sales order.
// Validates ids, the order type, and that at least one well-formed item
// is requested. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	tenantID kernel.UUID,
	orderType order.OrderType,
	customerID *kernel.UUID,
	customerName string,
	note string,
	items []ItemInput,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setTenantID(tenantID),
		orderCommand.setOrderType(orderType),
		orderCommand.setCustomer(customerID, customerName),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.note = note
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TenantID returns the identifier of the business the order belongs to.
func (c CreateOrderCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// OrderType returns the dine-in/takeout/delivery classification.
func (c CreateOrderCommand) OrderType() order.OrderType {
	return c.orderType
}

// CustomerID returns the linked customer reference, or nil for walk-ins.
func (c CreateOrderCommand) CustomerID() *kernel.UUID {
	return c.customerID
}

// CustomerName returns the free-text customer name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Note returns the optional order-level note.
func (c CreateOrderCommand) Note() string {
	return c.note
}

// Items returns the requested line items.
func (c CreateOrderCommand) Items() []ItemInput {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *CreateOrderCommand) setOrderType(orderType order.OrderType) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *CreateOrderCommand) setCustomer(customerID *kernel.UUID, customerName string) error {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return err
		}
	}

	c.customerID = customerID
	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemInput) error {
	if err := validateItems(items); err != nil {
		return err
	}

	c.items = items
	return nil
}
