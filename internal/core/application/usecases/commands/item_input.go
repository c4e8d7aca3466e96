package commands

import (
	"context"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"
	"pos/internal/pkg/errs"
)

// ItemInput describes one requested line item: which product, how many
// units, and an optional preparation note. Prices and product names are
// never taken from the caller; they are resolved from the catalog.
type ItemInput struct {
	ProductID kernel.UUID
	Quantity  int
	Note      string
}

func validateItems(items []ItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("items.productId", err)
		}
		if item.Quantity < 1 {
			return errs.NewValueIsInvalidError("items.quantity")
		}
	}

	return nil
}

// resolveLineItems looks up every requested product in the tenant's
// catalog and builds line items with snapshotted names and prices.
func resolveLineItems(
	ctx context.Context,
	catalog ports.CatalogGateway,
	tenantID kernel.UUID,
	items []ItemInput,
) ([]*order.LineItem, error) {
	lineItems := make([]*order.LineItem, 0, len(items))
	for _, item := range items {
		product, err := catalog.GetProduct(ctx, tenantID, item.ProductID)
		if err != nil {
			return nil, err
		}

		lineItem, err := order.NewLineItem(
			kernel.NewUUID(),
			product.ID,
			product.Name,
			item.Quantity,
			product.UnitPrice,
			item.Note,
		)
		if err != nil {
			return nil, err
		}

		lineItems = append(lineItems, lineItem)
	}

	return lineItems, nil
}

// resolveCustomer verifies a linked customer when one is referenced.
// Free-text names need no resolution.
func resolveCustomer(
	ctx context.Context,
	customers ports.CustomerGateway,
	tenantID kernel.UUID,
	customerID *kernel.UUID,
) error {
	if customerID == nil {
		return nil
	}

	_, err := customers.GetCustomer(ctx, tenantID, *customerID)
	return err
}
