package order

import (
	"fmt"

	"pos/internal/pkg/errs"
)

// PaymentMethod is the closed set of ways an order can be paid.
// Values arriving from the transport layer must be parsed with
// PaymentMethodFromString so an unrecognized value fails validation
// at the boundary instead of being stored as free text.
type PaymentMethod int

const (
	// UnknownPaymentMethod represents an invalid or undefined payment method.
	UnknownPaymentMethod PaymentMethod = iota

	// Cash is payment in physical currency.
	Cash

	// Card is payment with a debit or credit card.
	Card

	// Transfer is payment by bank transfer.
	Transfer
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	//nolint:exhaustive // UnknownPaymentMethod is intentionally excluded as it's invalid
	return map[PaymentMethod]string{
		Cash:     "CASH",
		Card:     "CARD",
		Transfer: "TRANSFER",
	}
}

// PaymentMethodFromString parses a payment method from its wire/persistence
// representation. Returns a validation error for any unrecognized value.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getPaymentMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return UnknownPaymentMethod, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod",
		fmt.Errorf("%q is not a valid payment method", s),
	)
}

// Validate checks if the PaymentMethod value is valid.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod",
			fmt.Errorf("%d is not a valid payment method", m),
		)
	}
	return nil
}

// String returns the wire representation of the payment method
// ("CASH", "CARD", "TRANSFER"). Implements fmt.Stringer.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}
