package order

import (
	"fmt"

	"pos/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> InPreparation ──┬──> Ready ──┬──> Paid (via payment only)
//	          │         ▲          │     │      │
//	          │         └──────────┘◄────┘      │
//	          └────────────> Cancelled <────────┘
//
// Paid and Cancelled are terminal: no further transitions are allowed.
// Paid is never a valid target of a plain transition; it is reached only
// through payment recording on the Order aggregate.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	Pending

	// InPreparation indicates the kitchen is working on the order.
	InPreparation

	// Ready indicates the order is prepared and awaiting pickup or payment.
	Ready

	// Paid indicates the order has been paid. Terminal.
	Paid

	// Cancelled indicates the order was cancelled. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "UNKNOWN",
		Pending:       "PENDING",
		InPreparation: "IN_PREPARATION",
		Ready:         "READY",
		Paid:          "PAID",
		Cancelled:     "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:       "PENDING",
		InPreparation: "IN_PREPARATION",
		Ready:         "READY",
		Paid:          "PAID",
		Cancelled:     "CANCELLED",
	}
}

// StatusFromString parses a status from its wire/persistence representation.
// Returns a validation error for any string that does not name a valid status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire representation of the status
// ("PENDING", "IN_PREPARATION", "READY", "PAID", "CANCELLED").
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status admits no further transitions.
// Orders in a terminal status are immutable except for reads.
func (s Status) IsTerminal() bool {
	return s == Paid || s == Cancelled
}

// IsEditable reports whether order content (line items, note, customer)
// may still be modified in this status.
func (s Status) IsEditable() bool {
	return s == Pending || s == InPreparation
}

// Transition validates a plain status change and returns the new status.
//
// Valid transitions:
//   - Pending/InPreparation/Ready -> InPreparation, Ready, or Cancelled
//
// Invalid transitions:
//   - anything -> Paid (payment recording is the only path to Paid)
//   - Paid/Cancelled -> anything (terminal)
//   - anything -> Pending (orders never return to the initial status)
//
// Returns:
//   - (target, nil) on a valid transition
//   - (0, error) with an IllegalTransitionError or validation error otherwise
func (s Status) Transition(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if s.IsTerminal() {
		return 0, errs.NewIllegalTransitionError(
			fmt.Sprintf("transition to %s", target),
			s.String(),
		)
	}

	if target == Paid {
		return 0, errs.NewIllegalTransitionErrorWithCause(
			"transition to PAID",
			s.String(),
			fmt.Errorf("PAID is only reachable by recording a payment"),
		)
	}

	if target == Pending {
		return 0, errs.NewIllegalTransitionError("transition to PENDING", s.String())
	}

	return target, nil
}
