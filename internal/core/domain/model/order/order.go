package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// maxCustomerNameLength bounds the free-text customer name on an order.
const maxCustomerNameLength = 100

// Order is the aggregate root for a sales order. It exclusively owns its
// line items and payment; external code never holds a reference from a line
// item or payment back to the order — it looks the order up by id instead.
//
// Order maintains these invariants:
//   - It belongs to exactly one tenant, fixed at creation
//   - total always equals the exact sum of line item subtotals
//   - It holds at least one line item
//   - Kitchen and customer ticket codes are assigned once at creation
//   - In a terminal status (Paid, Cancelled) it is immutable except for reads
//   - A payment exists if and only if the status is Paid
type Order struct {
	id             kernel.UUID
	tenantID       kernel.UUID
	orderType      OrderType
	status         Status
	total          decimal.Decimal
	note           string
	kitchenTicket  string
	customerTicket string
	customerID     *kernel.UUID
	customerName   string
	lineItems      []*LineItem
	payment        *Payment
	createdAt      time.Time
	updatedAt      time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Pending status with a freshly computed total.
//
// Parameters:
//   - id: unique identifier for the order
//   - tenantID: the owning tenant, immutable after creation
//   - orderType: dine-in, takeout, or delivery
//   - kitchenTicket, customerTicket: ticket codes issued by the sequencer
//   - customerID: optional reference to a registered customer of the tenant
//   - customerName: optional free-text customer name
//   - note: optional free text, at most 255 characters
//   - lineItems: the ordered products; at least one is required
//
// Returns a validation error if any parameter is invalid.
func NewOrder(
	id kernel.UUID,
	tenantID kernel.UUID,
	orderType OrderType,
	kitchenTicket string,
	customerTicket string,
	customerID *kernel.UUID,
	customerName string,
	note string,
	lineItems []*LineItem,
) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTenantID(tenantID),
		order.setOrderType(orderType),
		order.setTicket(&order.kitchenTicket, "kitchenTicket", kitchenTicket),
		order.setTicket(&order.customerTicket, "customerTicket", customerTicket),
		order.setCustomer(customerID, customerName),
		order.setNote(note),
		order.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, trusting the stored
// status, total, payment, and timestamps. Used only by repository adapters.
func RestoreOrder(
	id kernel.UUID,
	tenantID kernel.UUID,
	orderType OrderType,
	status Status,
	note string,
	kitchenTicket string,
	customerTicket string,
	customerID *kernel.UUID,
	customerName string,
	lineItems []*LineItem,
	payment *Payment,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTenantID(tenantID),
		order.setOrderType(orderType),
		order.setTicket(&order.kitchenTicket, "kitchenTicket", kitchenTicket),
		order.setTicket(&order.customerTicket, "customerTicket", customerTicket),
		order.setCustomer(customerID, customerName),
		order.setNote(note),
		order.setLineItems(lineItems),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if payment != nil {
		if err := payment.Validate(); err != nil {
			return nil, err
		}
	}

	order.status = status
	order.payment = payment
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TenantID returns the owning tenant's identifier.
func (o *Order) TenantID() kernel.UUID {
	return o.tenantID
}

// Type returns the order type.
func (o *Order) Type() OrderType {
	return o.orderType
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the order total, the exact sum of line item subtotals.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// Note returns the optional free-text note.
func (o *Order) Note() string {
	return o.note
}

// KitchenTicket returns the kitchen ticket code ("C0001").
func (o *Order) KitchenTicket() string {
	return o.kitchenTicket
}

// CustomerTicket returns the customer ticket code ("T0001").
func (o *Order) CustomerTicket() string {
	return o.customerTicket
}

// CustomerID returns the linked customer's identifier, or nil for walk-ins.
func (o *Order) CustomerID() *kernel.UUID {
	return o.customerID
}

// CustomerName returns the optional free-text customer name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// LineItems returns the order's line items in their original sequence.
// The returned slice is a copy; mutating it does not affect the order.
func (o *Order) LineItems() []*LineItem {
	items := make([]*LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// Payment returns the recorded payment, or nil while unpaid.
func (o *Order) Payment() *Payment {
	return o.payment
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// UpdateDetails replaces the order's editable content: type, customer,
// note, and the entire line item set (no partial merge). The total is
// recomputed from the new items.
//
// Fails with IllegalTransition unless the status is Pending or
// InPreparation: orders that are Ready, Paid, or Cancelled can no longer
// be edited.
func (o *Order) UpdateDetails(
	orderType OrderType,
	customerID *kernel.UUID,
	customerName string,
	note string,
	lineItems []*LineItem,
) error {
	if !o.status.IsEditable() {
		return errs.NewIllegalTransitionError("update", o.status.String())
	}

	if err := errors.Join(
		o.setOrderType(orderType),
		o.setCustomer(customerID, customerName),
		o.setNote(note),
		o.setLineItems(lineItems),
	); err != nil {
		return err
	}

	o.touch()
	return nil
}

// ChangeStatus applies a plain status transition per the state machine
// rules. Paid is rejected as a target; use MarkPaid instead.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.Transition(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Cancel transitions the order to Cancelled. Cancellation is terminal;
// no un-cancel operation exists.
func (o *Order) Cancel() error {
	return o.ChangeStatus(Cancelled)
}

// MarkPaid attaches the payment and transitions the order to Paid in one
// step, so a reader can never observe Paid without a payment or vice versa.
//
// Fails with Conflict if the order is already paid or cancelled, and with
// a validation error if the payment amount differs from the order total.
func (o *Order) MarkPaid(payment *Payment) error {
	if o.status == Paid || o.payment != nil {
		return errs.NewConflictError(fmt.Sprintf("order %s is already paid", o.id))
	}
	if o.status == Cancelled {
		return errs.NewConflictError(fmt.Sprintf("order %s is cancelled and cannot be paid", o.id))
	}
	if err := payment.Validate(); err != nil {
		return err
	}
	if !payment.Amount().Equal(o.total) {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("payment amount %s does not equal order total %s", payment.Amount(), o.total),
		)
	}

	o.payment = payment
	o.status = Paid
	o.touch()
	return nil
}

// ValidateDelete reports whether the order may be deleted.
// Paid orders are never deletable; anything else, including cancelled
// orders, may be removed together with its line items and payment.
func (o *Order) ValidateDelete() error {
	if o.status == Paid {
		return errs.NewConflictError(fmt.Sprintf("order %s is paid and cannot be deleted", o.id))
	}
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	o.tenantID = tenantID
	return nil
}

func (o *Order) setOrderType(orderType OrderType) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setTicket(field *string, paramName, code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	*field = code
	return nil
}

func (o *Order) setCustomer(customerID *kernel.UUID, customerName string) error {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return err
		}
	}
	if len(customerName) > maxCustomerNameLength {
		return errs.NewValueIsOutOfRangeError("customerName", len(customerName), 0, maxCustomerNameLength)
	}
	o.customerID = customerID
	o.customerName = customerName
	return nil
}

func (o *Order) setNote(note string) error {
	if len(note) > maxNoteLength {
		return errs.NewValueIsOutOfRangeError("note", len(note), 0, maxNoteLength)
	}
	o.note = note
	return nil
}

// setLineItems replaces the full line item set and recomputes the total.
func (o *Order) setLineItems(lineItems []*LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}
	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	items := make([]*LineItem, len(lineItems))
	copy(items, lineItems)
	o.lineItems = items
	o.total = ComputeTotal(items)
	return nil
}
