package order_test

import (
	"strings"
	"testing"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem(t *testing.T) {
	t.Run("should create a line item with computed subtotal", func(t *testing.T) {
		id := kernel.NewUUID()
		productID := kernel.NewUUID()

		item, err := order.NewLineItem(id, productID, "Burger", 3, decimal.RequireFromString("4.50"), "no onions")
		require.NoError(t, err)

		assert.True(t, item.ID().IsEqual(id))
		assert.True(t, item.ProductID().IsEqual(productID))
		assert.Equal(t, "Burger", item.ProductName())
		assert.Equal(t, 3, item.Quantity())
		assert.Equal(t, "4.50", item.UnitPrice().StringFixed(2))
		assert.Equal(t, "13.50", item.Subtotal().StringFixed(2))
		assert.Equal(t, "no onions", item.Note())
		require.NoError(t, item.Validate())
	})

	t.Run("should reject invalid quantity", func(t *testing.T) {
		_, err := order.NewLineItem(
			kernel.NewUUID(), kernel.NewUUID(), "Burger", 0, decimal.RequireFromString("4.50"), "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should require a product name", func(t *testing.T) {
		_, err := order.NewLineItem(
			kernel.NewUUID(), kernel.NewUUID(), "", 1, decimal.RequireFromString("4.50"), "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject an over-long note", func(t *testing.T) {
		_, err := order.NewLineItem(
			kernel.NewUUID(), kernel.NewUUID(), "Burger", 1,
			decimal.RequireFromString("4.50"), strings.Repeat("x", 256))
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject an invalid product id", func(t *testing.T) {
		_, err := order.NewLineItem(
			kernel.NewUUID(), kernel.UUID{}, "Burger", 1, decimal.RequireFromString("4.50"), "")
		require.Error(t, err)
	})
}

func TestRestoreLineItem(t *testing.T) {
	t.Run("should trust the stored subtotal", func(t *testing.T) {
		item, err := order.RestoreLineItem(
			kernel.NewUUID(), kernel.NewUUID(), "Burger", 2,
			decimal.RequireFromString("4.50"), decimal.RequireFromString("9.00"), "")
		require.NoError(t, err)
		assert.Equal(t, "9.00", item.Subtotal().StringFixed(2))
	})
}

func TestLineItem_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var item order.LineItem
		require.ErrorIs(t, item.Validate(), order.ErrLineItemIsNotConstructed)
	})

	t.Run("nil fails validation", func(t *testing.T) {
		var item *order.LineItem
		require.ErrorIs(t, item.Validate(), order.ErrLineItemIsNotConstructed)
	})
}
