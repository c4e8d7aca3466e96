package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand represents a request to settle an order in full.
// The caller chooses only the payment method; the amount is always the
// order total at the moment of payment. Partial payments and split
// payments are not supported.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	tenantID kernel.UUID
	method   order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record an order's payment.
// Validates ids and the payment method.
func NewRecordPaymentCommand(
	orderID kernel.UUID,
	tenantID kernel.UUID,
	method order.PaymentMethod,
) (RecordPaymentCommand, error) {
	paymentCommand := RecordPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paymentCommand.setOrderID(orderID),
		paymentCommand.setTenantID(tenantID),
		paymentCommand.setMethod(method),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return paymentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being paid.
func (c RecordPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TenantID returns the identifier of the business the order belongs to.
func (c RecordPaymentCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// Method returns the payment method.
func (c RecordPaymentCommand) Method() order.PaymentMethod {
	return c.method
}

func (c *RecordPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordPaymentCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *RecordPaymentCommand) setMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}
