// Package order provides domain entities and business logic for sales-order
// management in the POS system. It implements the Order aggregate root with
// lifecycle management, pricing, and state transitions.
//
// The package includes:
//   - Order: The aggregate root owning its line items and payment
//   - LineItem: One product entry with quantity and a unit-price snapshot
//   - Payment: An immutable payment record created at most once per order
//   - Status: A state machine that enforces valid order status transitions
//   - TicketSeries: Kitchen/customer ticket code series and formatting
//
// Key business rules:
//   - An order belongs to exactly one tenant and never changes tenant
//   - The order total always equals the exact sum of line item subtotals
//   - An order holds at least one line item at all times
//   - Status follows PENDING -> IN_PREPARATION/READY -> PAID/CANCELLED,
//     where PAID and CANCELLED are terminal
//   - PAID is only reachable by recording a payment, never by a bare
//     status change
//   - Order content is editable only while PENDING or IN_PREPARATION
//
// All money amounts use exact decimal arithmetic; floating point is never
// used for prices, subtotals, or totals.
package order
