package order_test

import (
	"testing"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLineItem(t *testing.T, name string, quantity int, unitPrice string) *order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(
		kernel.NewUUID(), kernel.NewUUID(), name, quantity, decimal.RequireFromString(unitPrice), "")
	require.NoError(t, err)
	return item
}

func mustOrder(t *testing.T, items ...*order.LineItem) *order.Order {
	t.Helper()
	if len(items) == 0 {
		items = []*order.LineItem{mustLineItem(t, "Burger", 1, "10.00")}
	}
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), order.DineIn, "C0001", "T0001", nil, "", "", items)
	require.NoError(t, err)
	return o
}

func mustPayment(t *testing.T, method order.PaymentMethod, amount string) *order.Payment {
	t.Helper()
	p, err := order.NewPayment(
		kernel.NewUUID(), method, decimal.RequireFromString(amount), time.Now().UTC())
	require.NoError(t, err)
	return p
}

func TestNewOrder(t *testing.T) {
	t.Run("should create a pending order with total equal to sum of subtotals", func(t *testing.T) {
		itemA := mustLineItem(t, "Burger", 2, "10.00")
		itemB := mustLineItem(t, "Fries", 1, "5.00")

		o := mustOrder(t, itemA, itemB)

		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "25.00", o.Total().StringFixed(2))
		assert.Equal(t, "C0001", o.KitchenTicket())
		assert.Equal(t, "T0001", o.CustomerTicket())
		assert.Len(t, o.LineItems(), 2)
		assert.Nil(t, o.Payment())
		assert.False(t, o.CreatedAt().IsZero())
		require.NoError(t, o.Validate())
	})

	t.Run("should reject an empty line item list", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), order.DineIn, "C0001", "T0001", nil, "", "", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should require both ticket codes", func(t *testing.T) {
		items := []*order.LineItem{mustLineItem(t, "Burger", 1, "10.00")}

		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), order.DineIn, "", "T0001", nil, "", "", items)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), order.DineIn, "C0001", "", nil, "", "", items)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject an invalid order type", func(t *testing.T) {
		items := []*order.LineItem{mustLineItem(t, "Burger", 1, "10.00")}
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), order.UnknownOrderType, "C0001", "T0001", nil, "", "", items)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should accept an optional customer reference", func(t *testing.T) {
		customerID := kernel.NewUUID()
		items := []*order.LineItem{mustLineItem(t, "Burger", 1, "10.00")}

		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), order.Takeout, "C0002", "T0002",
			&customerID, "Ana", "extra napkins", items)
		require.NoError(t, err)
		require.NotNil(t, o.CustomerID())
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.Equal(t, "Ana", o.CustomerName())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_UpdateDetails(t *testing.T) {
	t.Run("should replace the entire line item set and recompute the total", func(t *testing.T) {
		o := mustOrder(t, mustLineItem(t, "Burger", 2, "10.00"), mustLineItem(t, "Fries", 1, "5.00"))
		require.Equal(t, "25.00", o.Total().StringFixed(2))

		newItem := mustLineItem(t, "Pizza", 1, "12.50")
		err := o.UpdateDetails(order.Delivery, nil, "Bob", "ring twice", []*order.LineItem{newItem})
		require.NoError(t, err)

		assert.Equal(t, order.Delivery, o.Type())
		assert.Equal(t, "12.50", o.Total().StringFixed(2))
		assert.Len(t, o.LineItems(), 1)
		assert.Equal(t, "Pizza", o.LineItems()[0].ProductName())
		assert.Equal(t, "Bob", o.CustomerName())
	})

	t.Run("should allow edits while pending or in preparation", func(t *testing.T) {
		o := mustOrder(t)
		require.NoError(t, o.ChangeStatus(order.InPreparation))

		err := o.UpdateDetails(order.DineIn, nil, "", "",
			[]*order.LineItem{mustLineItem(t, "Soup", 1, "3.00")})
		require.NoError(t, err)
	})

	t.Run("should reject edits while ready", func(t *testing.T) {
		o := mustOrder(t)
		require.NoError(t, o.ChangeStatus(order.Ready))

		err := o.UpdateDetails(order.DineIn, nil, "", "",
			[]*order.LineItem{mustLineItem(t, "Soup", 1, "3.00")})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
	})

	t.Run("should reject edits in terminal statuses", func(t *testing.T) {
		paid := mustOrder(t)
		require.NoError(t, paid.MarkPaid(mustPayment(t, order.Cash, "10.00")))

		cancelled := mustOrder(t)
		require.NoError(t, cancelled.Cancel())

		for _, o := range []*order.Order{paid, cancelled} {
			err := o.UpdateDetails(order.DineIn, nil, "", "",
				[]*order.LineItem{mustLineItem(t, "Soup", 1, "3.00")})
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrIllegalTransition)
		}
	})

	t.Run("should reject replacement with an empty item set", func(t *testing.T) {
		o := mustOrder(t)
		err := o.UpdateDetails(order.DineIn, nil, "", "", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should walk the kitchen workflow", func(t *testing.T) {
		o := mustOrder(t)

		require.NoError(t, o.ChangeStatus(order.InPreparation))
		assert.Equal(t, order.InPreparation, o.Status())

		require.NoError(t, o.ChangeStatus(order.Ready))
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("should reject a direct change to PAID", func(t *testing.T) {
		o := mustOrder(t)
		err := o.ChangeStatus(order.Paid)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should reject any change after cancellation", func(t *testing.T) {
		o := mustOrder(t)
		require.NoError(t, o.Cancel())

		for _, target := range []order.Status{order.InPreparation, order.Ready, order.Cancelled} {
			err := o.ChangeStatus(target)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrIllegalTransition)
		}
	})
}

func TestOrder_MarkPaid(t *testing.T) {
	t.Run("should attach the payment and set status atomically", func(t *testing.T) {
		o := mustOrder(t, mustLineItem(t, "Burger", 2, "10.00"), mustLineItem(t, "Fries", 1, "5.00"))
		payment := mustPayment(t, order.Cash, "25.00")

		require.NoError(t, o.MarkPaid(payment))

		assert.Equal(t, order.Paid, o.Status())
		require.NotNil(t, o.Payment())
		assert.Equal(t, "25.00", o.Payment().Amount().StringFixed(2))
		assert.Equal(t, order.Cash, o.Payment().Method())
	})

	t.Run("should conflict on a second payment", func(t *testing.T) {
		o := mustOrder(t)
		require.NoError(t, o.MarkPaid(mustPayment(t, order.Cash, "10.00")))

		err := o.MarkPaid(mustPayment(t, order.Card, "10.00"))
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("should conflict on a cancelled order", func(t *testing.T) {
		o := mustOrder(t)
		require.NoError(t, o.Cancel())

		err := o.MarkPaid(mustPayment(t, order.Cash, "10.00"))
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Nil(t, o.Payment())
	})

	t.Run("should reject a payment amount that differs from the total", func(t *testing.T) {
		o := mustOrder(t)
		err := o.MarkPaid(mustPayment(t, order.Cash, "9.99"))
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_ValidateDelete(t *testing.T) {
	t.Run("should allow deleting non-paid orders", func(t *testing.T) {
		pending := mustOrder(t)
		require.NoError(t, pending.ValidateDelete())

		cancelled := mustOrder(t)
		require.NoError(t, cancelled.Cancel())
		require.NoError(t, cancelled.ValidateDelete())
	})

	t.Run("should conflict on a paid order", func(t *testing.T) {
		o := mustOrder(t)
		require.NoError(t, o.MarkPaid(mustPayment(t, order.Cash, "10.00")))

		err := o.ValidateDelete()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should rebuild a paid order from persistence", func(t *testing.T) {
		id := kernel.NewUUID()
		tenantID := kernel.NewUUID()
		items := []*order.LineItem{mustLineItem(t, "Burger", 1, "10.00")}
		payment := mustPayment(t, order.Card, "10.00")
		createdAt := time.Now().UTC().Add(-time.Hour)

		o, err := order.RestoreOrder(
			id, tenantID, order.Takeout, order.Paid, "note", "C0042", "T0042",
			nil, "", items, payment, createdAt, createdAt)
		require.NoError(t, err)

		assert.Equal(t, order.Paid, o.Status())
		assert.Equal(t, "10.00", o.Total().StringFixed(2))
		require.NotNil(t, o.Payment())
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("should reject an invalid stored status", func(t *testing.T) {
		items := []*order.LineItem{mustLineItem(t, "Burger", 1, "10.00")}
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), order.Takeout, order.Unknown, "", "C0001", "T0001",
			nil, "", items, nil, time.Now(), time.Now())
		require.Error(t, err)
	})
}
