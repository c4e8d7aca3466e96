package order

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through NewPayment or RestorePayment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Payment records how and when an order was paid. It is owned exclusively
// by its Order, created at most once, and immutable afterwards: there is no
// update or delete operation for payments anywhere in the system.
//
// The amount is fixed to the order's total at the instant of payment.
type Payment struct {
	id     kernel.UUID
	method PaymentMethod
	amount decimal.Decimal
	paidAt time.Time

	isConstructed bool
}

// NewPayment creates a Payment with validation.
//
// Parameters:
//   - id: unique identifier for the payment
//   - method: one of the closed payment method set
//   - amount: the paid amount, equal to the order total at payment time
//   - paidAt: the payment timestamp
//
// Returns a validation error if any parameter is invalid.
func NewPayment(
	id kernel.UUID,
	method PaymentMethod,
	amount decimal.Decimal,
	paidAt time.Time,
) (*Payment, error) {
	payment := &Payment{isConstructed: true}

	if err := errors.Join(
		payment.setID(id),
		payment.setMethod(method),
		payment.setAmount(amount),
		payment.setPaidAt(paidAt),
	); err != nil {
		return nil, err
	}

	return payment, nil
}

// RestorePayment reconstructs a Payment from persistence.
// Used only by repository adapters.
func RestorePayment(
	id kernel.UUID,
	method PaymentMethod,
	amount decimal.Decimal,
	paidAt time.Time,
) (*Payment, error) {
	return NewPayment(id, method, amount, paidAt)
}

// Validate ensures the Payment was created through a constructor.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// Method returns the payment method.
func (p *Payment) Method() PaymentMethod {
	return p.method
}

// Amount returns the paid amount.
func (p *Payment) Amount() decimal.Decimal {
	return p.amount
}

// PaidAt returns the payment timestamp.
func (p *Payment) PaidAt() time.Time {
	return p.paidAt
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.method = method
	return nil
}

func (p *Payment) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidError("amount")
	}
	p.amount = amount
	return nil
}

func (p *Payment) setPaidAt(paidAt time.Time) error {
	if paidAt.IsZero() {
		return errs.NewValueIsRequiredError("paidAt")
	}
	p.paidAt = paidAt
	return nil
}
