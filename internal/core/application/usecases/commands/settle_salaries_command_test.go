package commands_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSettleSalariesCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		warehouseID := kernel.NewID(kernel.TagWarehouse)

		cmd, err := commands.NewSettleSalariesCommand(warehouseID)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.WarehouseID().IsEqual(warehouseID))
	})

	t.Run("should fail with invalid warehouse id", func(t *testing.T) {
		var invalid kernel.ID

		_, err := commands.NewSettleSalariesCommand(invalid)

		require.Error(t, err)
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var cmd commands.SettleSalariesCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrSettleSalariesCommandIsNotConstructed)
	})
}
