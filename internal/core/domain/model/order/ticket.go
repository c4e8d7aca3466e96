package order

import (
	"fmt"

	"pos/internal/pkg/errs"
)

// MaxTicketNumber is the highest number a ticket counter may issue for one
// (tenant, series) pair. Numbers up to 9999 render zero-padded to four
// digits; numbers beyond that widen naturally to five digits rather than
// wrapping. Past MaxTicketNumber the sequencer fails with SequenceExhausted.
const MaxTicketNumber = 99999

// TicketSeries identifies one of the two independent ticket code series
// issued per tenant: one for the kitchen, one for the customer.
type TicketSeries int

const (
	// UnknownSeries represents an invalid or undefined series.
	UnknownSeries TicketSeries = iota

	// KitchenSeries produces codes shown to kitchen staff ("C0001", ...).
	KitchenSeries

	// CustomerSeries produces codes handed to the customer ("T0001", ...).
	CustomerSeries
)

func getSeriesLetters() map[TicketSeries]string {
	//nolint:exhaustive // UnknownSeries is intentionally excluded as it's invalid
	return map[TicketSeries]string{
		KitchenSeries:  "C",
		CustomerSeries: "T",
	}
}

// Validate checks if the TicketSeries value is valid.
func (s TicketSeries) Validate() error {
	if _, ok := getSeriesLetters()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"ticketSeries",
			fmt.Errorf("%d is not a valid ticket series", s),
		)
	}
	return nil
}

// String returns the series-identifying letter ("C" for kitchen, "T" for
// customer) used both as the code prefix and as the persisted series key.
func (s TicketSeries) String() string {
	if letter, ok := getSeriesLetters()[s]; ok {
		return letter
	}
	return "?"
}

// FormatCode renders the ticket code for the given issued number:
// the series letter followed by the number zero-padded to four digits
// ("C0001"). Numbers above 9999 keep all their digits ("C10000").
//
// Returns an error if the series is invalid or the number is outside
// [1, MaxTicketNumber].
func (s TicketSeries) FormatCode(number int) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	if number < 1 || number > MaxTicketNumber {
		return "", errs.NewValueIsOutOfRangeError("ticketNumber", number, 1, MaxTicketNumber)
	}
	return fmt.Sprintf("%s%04d", s.String(), number), nil
}
