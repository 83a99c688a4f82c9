package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	items := []commands.OrderItemInput{
		{ProductID: kernel.NewUUID(), Quantity: 2},
		{ProductID: kernel.NewUUID(), Quantity: 1},
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, items)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, items, cmd.Items())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, kernel.NewUUID(),
		[]commands.OrderItemInput{{ProductID: kernel.NewUUID(), Quantity: 1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptyCart(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemsAreRequired)
}

func TestNewCreateOrderCommand_NonPositiveQuantity(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
		[]commands.OrderItemInput{{ProductID: kernel.NewUUID(), Quantity: 0}})
	require.Error(t, err)
}

func TestNewCreateOrderCommand_DuplicateProducts(t *testing.T) {
	productID := kernel.NewUUID()
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
		[]commands.OrderItemInput{
			{ProductID: productID, Quantity: 1},
			{ProductID: productID, Quantity: 2},
		})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDuplicateItemProducts)
}
