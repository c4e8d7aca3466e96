package order

import (
	"errors"

	"github.com/shopspring/decimal"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
// created through NewLineItem or RestoreLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// maxNoteLength bounds free-text notes on orders and line items.
const maxNoteLength = 255

// LineItem is one product entry on an order. It is owned exclusively by its
// Order and has no independent lifecycle: it is created, replaced, and
// removed atomically with the order.
//
// The unit price is a snapshot captured when the item was added or edited;
// later catalog price changes never alter it. The subtotal is always
// quantity times that snapshot, computed with exact decimal arithmetic.
type LineItem struct {
	id          kernel.UUID
	productID   kernel.UUID
	productName string
	quantity    int
	unitPrice   decimal.Decimal
	subtotal    decimal.Decimal
	note        string

	isConstructed bool
}

// NewLineItem creates a LineItem with a freshly computed subtotal.
//
// Parameters:
//   - id: unique identifier for the line item
//   - productID: the referenced catalog product (same tenant as the order)
//   - productName: product name snapshot for display on tickets
//   - quantity: number of units, must be >= 1
//   - unitPrice: price snapshot from the catalog at creation/edit time
//   - note: optional free text ("no onions"), at most 255 characters
//
// Returns a validation error if any parameter is invalid.
func NewLineItem(
	id kernel.UUID,
	productID kernel.UUID,
	productName string,
	quantity int,
	unitPrice decimal.Decimal,
	note string,
) (*LineItem, error) {
	item := &LineItem{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setProductName(productName),
		item.setNote(note),
	); err != nil {
		return nil, err
	}

	subtotal, err := ComputeSubtotal(unitPrice, quantity)
	if err != nil {
		return nil, err
	}

	item.quantity = quantity
	item.unitPrice = unitPrice
	item.subtotal = subtotal
	return item, nil
}

// RestoreLineItem reconstructs a LineItem from persistence, trusting the
// stored subtotal. Used only by repository adapters.
func RestoreLineItem(
	id kernel.UUID,
	productID kernel.UUID,
	productName string,
	quantity int,
	unitPrice decimal.Decimal,
	subtotal decimal.Decimal,
	note string,
) (*LineItem, error) {
	item := &LineItem{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setProductName(productName),
		item.setNote(note),
	); err != nil {
		return nil, err
	}

	item.quantity = quantity
	item.unitPrice = unitPrice
	item.subtotal = subtotal
	return item, nil
}

// Validate ensures the LineItem was created through a constructor.
func (li *LineItem) Validate() error {
	if li == nil || !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ID returns the line item's unique identifier.
func (li *LineItem) ID() kernel.UUID {
	return li.id
}

// ProductID returns the referenced product's identifier.
func (li *LineItem) ProductID() kernel.UUID {
	return li.productID
}

// ProductName returns the product name snapshot.
func (li *LineItem) ProductName() string {
	return li.productName
}

// Quantity returns the number of units ordered.
func (li *LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the unit-price snapshot captured when the item was added.
func (li *LineItem) UnitPrice() decimal.Decimal {
	return li.unitPrice
}

// Subtotal returns quantity times the unit-price snapshot.
func (li *LineItem) Subtotal() decimal.Decimal {
	return li.subtotal
}

// Note returns the optional free-text note.
func (li *LineItem) Note() string {
	return li.note
}

func (li *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.id = id
	return nil
}

func (li *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	li.productID = productID
	return nil
}

func (li *LineItem) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	li.productName = productName
	return nil
}

func (li *LineItem) setNote(note string) error {
	if len(note) > maxNoteLength {
		return errs.NewValueIsOutOfRangeError("note", len(note), 0, maxNoteLength)
	}
	li.note = note
	return nil
}
