package commands_test

import (
	"testing"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItems() []commands.ItemInput {
	return []commands.ItemInput{
		{ProductID: kernel.NewUUID(), Quantity: 2},
		{ProductID: kernel.NewUUID(), Quantity: 1, Note: "no onions"},
	}
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	tenantID := kernel.NewUUID()
	items := validItems()

	cmd, err := commands.NewCreateOrderCommand(
		orderID, tenantID, order.DineIn, nil, "walk-in", "rush", items,
	)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, tenantID, cmd.TenantID())
	assert.Equal(t, order.DineIn, cmd.OrderType())
	assert.Nil(t, cmd.CustomerID())
	assert.Equal(t, "walk-in", cmd.CustomerName())
	assert.Equal(t, "rush", cmd.Note())
	assert.Equal(t, items, cmd.Items())
}

func TestNewCreateOrderCommand_LinkedCustomer(t *testing.T) {
	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.Takeout, &customerID, "", "", validItems(),
	)
	require.NoError(t, err)
	require.NotNil(t, cmd.CustomerID())
	assert.True(t, cmd.CustomerID().IsEqual(customerID))
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.UUID{}, kernel.NewUUID(), order.DineIn, nil, "", "", validItems(),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_InvalidTenantID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.UUID{}, order.DineIn, nil, "", "", validItems(),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_InvalidOrderType(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.UnknownOrderType, nil, "", "", validItems(),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateOrderCommand_NoItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.DineIn, nil, "", "", nil,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_ZeroQuantity(t *testing.T) {
	items := []commands.ItemInput{{ProductID: kernel.NewUUID(), Quantity: 0}}
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.DineIn, nil, "", "", items,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
