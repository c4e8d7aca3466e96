package order

import (
	"fmt"

	"pos/internal/pkg/errs"
)

// OrderType classifies how an order is served to the customer.
type OrderType int

const (
	// UnknownOrderType represents an invalid or undefined order type.
	UnknownOrderType OrderType = iota

	// DineIn is an order consumed on the premises.
	DineIn

	// Takeout is an order packed for the customer to take away.
	Takeout

	// Delivery is an order delivered to the customer.
	Delivery
)

func getOrderTypeStrings() map[OrderType]string {
	//nolint:exhaustive // UnknownOrderType is intentionally excluded as it's invalid
	return map[OrderType]string{
		DineIn:   "DINE_IN",
		Takeout:  "TAKEOUT",
		Delivery: "DELIVERY",
	}
}

// OrderTypeFromString parses an order type from its wire/persistence representation.
// Returns a validation error for any string that does not name a valid type.
func OrderTypeFromString(s string) (OrderType, error) {
	for orderType, str := range getOrderTypeStrings() {
		if str == s {
			return orderType, nil
		}
	}
	return UnknownOrderType, errs.NewValueIsInvalidErrorWithCause(
		"orderType",
		fmt.Errorf("%q is not a valid order type", s),
	)
}

// Validate checks if the OrderType value is valid.
func (t OrderType) Validate() error {
	if _, ok := getOrderTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderType",
			fmt.Errorf("%d is not a valid order type", t),
		)
	}
	return nil
}

// String returns the wire representation of the order type
// ("DINE_IN", "TAKEOUT", "DELIVERY"). Implements fmt.Stringer.
func (t OrderType) String() string {
	if str, ok := getOrderTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}
