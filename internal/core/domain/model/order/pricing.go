package order

import (
	"fmt"

	"github.com/shopspring/decimal"

	"pos/internal/pkg/errs"
)

// ComputeSubtotal returns the exact price of quantity units at unitPrice,
// using fixed-point decimal arithmetic. Currency amounts never pass through
// floating point, so repeated additions cannot drift.
//
// Returns a validation error if quantity < 1 or unitPrice is negative.
func ComputeSubtotal(unitPrice decimal.Decimal, quantity int) (decimal.Decimal, error) {
	if quantity < 1 {
		return decimal.Zero, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if unitPrice.IsNegative() {
		return decimal.Zero, errs.NewValueIsInvalidErrorWithCause(
			"unitPrice",
			fmt.Errorf("%s is negative", unitPrice),
		)
	}
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))), nil
}

// ComputeTotal returns the exact sum of line item subtotals.
// An empty list yields zero, but the Order aggregate never accepts an
// empty line item list, so a persisted order's total is never zero-by-absence.
func ComputeTotal(items []*LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
