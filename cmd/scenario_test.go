package cmd_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"warehouse/cmd"
	"warehouse/internal/adapters/out/memory"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoConfig() cmd.Config {
	return cmd.Config{
		WarehouseX: "1",
		WarehouseY: "1",
		ClockStart: "08:00:00",

		ProductName:  "khinkali",
		ProductPrice: "50",

		SupplierName: "Khinkalych",

		PickerShiftStart:  "08:00:00",
		PickerShiftEnd:    "16:00:00",
		CourierShiftStart: "10:00:00",
		CourierShiftEnd:   "19:00:00",

		CustomerX:     "4",
		CustomerY:     "1",
		OrderUnits:    "5",
		OrderSubmitAt: "08:30:00",

		SupplyAmount: "3",
		SupplyAt:     "09:00:00",

		CycleTimes: "10:00:00, 11:05:00",
	}
}

func TestScenario_Run(t *testing.T) {
	t.Run("should replay the demo timeline end to end", func(t *testing.T) {
		ctx := context.Background()
		config := demoConfig()
		store := memory.NewStore()

		seed, err := cmd.SeedWarehouse(ctx, config, store)
		require.NoError(t, err)

		app, err := cmd.NewCompositionRoot(config, store, seed.WarehouseID)
		require.NoError(t, err)

		scenario, err := cmd.NewScenario(config, seed)
		require.NoError(t, err)

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		require.NoError(t, scenario.Run(ctx, &app, logger))

		repo, err := memory.NewWarehouseRepository(store)
		require.NoError(t, err)
		wh, err := repo.Get(ctx, seed.WarehouseID)
		require.NoError(t, err)

		// The first cycle restocks (shortfall 2 plus the buffer of 10) and
		// defers; the second assembles 5 units from 11:05 and delivers over
		// distance 3.
		assert.Zero(t, wh.QueueLength())
		assert.Equal(t, 10, wh.Ledger().Available(seed.Product))

		expectedClock, err := kernel.NewTimeOfDay(11, 13, 45)
		require.NoError(t, err)
		assert.True(t, wh.Clock().Now().IsEqual(expectedClock))

		workers := wh.Workers()
		require.Len(t, workers, 2)
		for _, w := range workers {
			assert.Equal(t, worker.ShiftEnded, w.Status())
		}
		assert.InDelta(t, 2400.0, workers[0].Money(), 0.001)
		assert.InDelta(t, 2700.0, workers[1].Money(), 0.001)
	})

	t.Run("should fail on a malformed cycle time", func(t *testing.T) {
		ctx := context.Background()
		config := demoConfig()
		store := memory.NewStore()

		seed, err := cmd.SeedWarehouse(ctx, config, store)
		require.NoError(t, err)

		config.CycleTimes = "10:00:00,not-a-time"
		_, err = cmd.NewScenario(config, seed)

		require.Error(t, err)
	})
}

func TestSeedWarehouse(t *testing.T) {
	t.Run("should seed a capped supplier when configured", func(t *testing.T) {
		ctx := context.Background()
		config := demoConfig()
		config.SupplierCap = "3"
		store := memory.NewStore()

		seed, err := cmd.SeedWarehouse(ctx, config, store)
		require.NoError(t, err)

		repo, err := memory.NewWarehouseRepository(store)
		require.NoError(t, err)
		wh, err := repo.Get(ctx, seed.WarehouseID)
		require.NoError(t, err)

		delivered, err := wh.DeliverSupply(seed.SupplierID, 10)
		require.NoError(t, err)
		assert.Equal(t, 3, delivered)
	})

	t.Run("should fail on an out-of-range warehouse location", func(t *testing.T) {
		config := demoConfig()
		config.WarehouseX = "0"

		_, err := cmd.SeedWarehouse(context.Background(), config, memory.NewStore())

		require.Error(t, err)
	})
}
