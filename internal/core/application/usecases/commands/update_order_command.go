package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to replace an order's editable
// details: type, customer, note, and the entire line item set. Partial
// item merges are not supported; the provided items become the new set.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	tenantID     kernel.UUID
	orderType    order.OrderType
	customerID   *kernel.UUID
	customerName string
	note         string
	items        []ItemInput

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to edit an existing order.
// Validates ids, the order type, and the replacement item set.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	tenantID kernel.UUID,
	orderType order.OrderType,
	customerID *kernel.UUID,
	customerName string,
	note string,
	items []ItemInput,
) (UpdateOrderCommand, error) {
	updateCommand := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setOrderID(orderID),
		updateCommand.setTenantID(tenantID),
		updateCommand.setOrderType(orderType),
		updateCommand.setCustomer(customerID, customerName),
		updateCommand.setItems(items),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	updateCommand.note = note
	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to edit.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TenantID returns the identifier of the business the order belongs to.
func (c UpdateOrderCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// OrderType returns the new dine-in/takeout/delivery classification.
func (c UpdateOrderCommand) OrderType() order.OrderType {
	return c.orderType
}

// CustomerID returns the new linked customer reference, or nil.
func (c UpdateOrderCommand) CustomerID() *kernel.UUID {
	return c.customerID
}

// CustomerName returns the new free-text customer name.
func (c UpdateOrderCommand) CustomerName() string {
	return c.customerName
}

// Note returns the new order-level note.
func (c UpdateOrderCommand) Note() string {
	return c.note
}

// Items returns the replacement line item set.
func (c UpdateOrderCommand) Items() []ItemInput {
	return c.items
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *UpdateOrderCommand) setOrderType(orderType order.OrderType) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *UpdateOrderCommand) setCustomer(customerID *kernel.UUID, customerName string) error {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return err
		}
	}

	c.customerID = customerID
	c.customerName = customerName
	return nil
}

func (c *UpdateOrderCommand) setItems(items []ItemInput) error {
	if err := validateItems(items); err != nil {
		return err
	}

	c.items = items
	return nil
}
