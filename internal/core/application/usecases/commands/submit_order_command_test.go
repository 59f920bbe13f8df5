package commands_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrderItems() []commands.OrderItem {
	return []commands.OrderItem{
		{Name: "khinkali", Price: 50, Quantity: 5},
	}
}

func TestNewSubmitOrderCommand(t *testing.T) {
	customer, _ := kernel.NewLocation(4, 1)

	t.Run("should create valid command", func(t *testing.T) {
		orderID := kernel.NewID(kernel.TagOrder)
		warehouseID := kernel.NewID(kernel.TagWarehouse)

		cmd, err := commands.NewSubmitOrderCommand(orderID, warehouseID, customer, validOrderItems())

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.True(t, cmd.WarehouseID().IsEqual(warehouseID))
		assert.Equal(t, customer, cmd.CustomerLocation())
		assert.Len(t, cmd.Items(), 1)
	})

	t.Run("should fail with invalid order id", func(t *testing.T) {
		var invalid kernel.ID

		_, err := commands.NewSubmitOrderCommand(invalid,
			kernel.NewID(kernel.TagWarehouse), customer, validOrderItems())

		require.Error(t, err)
	})

	t.Run("should fail with invalid customer location", func(t *testing.T) {
		var invalid kernel.Location

		_, err := commands.NewSubmitOrderCommand(kernel.NewID(kernel.TagOrder),
			kernel.NewID(kernel.TagWarehouse), invalid, validOrderItems())

		require.Error(t, err)
	})

	t.Run("should fail with no items", func(t *testing.T) {
		_, err := commands.NewSubmitOrderCommand(kernel.NewID(kernel.TagOrder),
			kernel.NewID(kernel.TagWarehouse), customer, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrItemsAreRequired)
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		items := []commands.OrderItem{{Name: "khinkali", Price: 50, Quantity: 0}}

		_, err := commands.NewSubmitOrderCommand(kernel.NewID(kernel.TagOrder),
			kernel.NewID(kernel.TagWarehouse), customer, items)

		require.Error(t, err)
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var cmd commands.SubmitOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrSubmitOrderCommandIsNotConstructed)
	})

	t.Run("should return item copies", func(t *testing.T) {
		cmd, err := commands.NewSubmitOrderCommand(kernel.NewID(kernel.TagOrder),
			kernel.NewID(kernel.TagWarehouse), customer, validOrderItems())
		require.NoError(t, err)

		items := cmd.Items()
		items[0].Quantity = 100

		assert.Equal(t, 5, cmd.Items()[0].Quantity)
	})
}
