package order_test

import (
	"testing"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/model/stock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProduct(t *testing.T, name string, price float64) product.Product {
	t.Helper()
	p, err := product.NewProduct(name, price)
	require.NoError(t, err)
	return p
}

func testOrder(t *testing.T, units []product.Product) *order.Order {
	t.Helper()
	customer, err := kernel.NewLocation(16, 16)
	require.NoError(t, err)
	warehouseLoc, err := kernel.NewLocation(1, 1)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewID(kernel.TagOrder),
		units,
		customer,
		kernel.NewID(kernel.TagWarehouse),
		warehouseLoc,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	khinkali, _ := product.NewProduct("khinkali", 50)
	lemonade, _ := product.NewProduct("lemonade", 20)
	customer, _ := kernel.NewLocation(16, 16)
	warehouseLoc, _ := kernel.NewLocation(1, 1)
	warehouseID := kernel.NewID(kernel.TagWarehouse)

	t.Run("should create valid order counting duplicate units", func(t *testing.T) {
		id := kernel.NewID(kernel.TagOrder)
		units := []product.Product{khinkali, khinkali, khinkali, lemonade}

		o, err := order.NewOrder(id, units, customer, warehouseID, warehouseLoc)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Created, o.Status())
		assert.Nil(t, o.Courier())
		assert.False(t, o.IsPartial())
		assert.Equal(t, map[product.Product]int{khinkali: 3, lemonade: 1}, o.OriginalItems())
		assert.Equal(t, o.OriginalItems(), o.CurrentItems())
		assert.Equal(t, 4, o.TotalUnits())
	})

	t.Run("should capture warehouse identity immutably", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewID(kernel.TagOrder),
			[]product.Product{khinkali}, customer, warehouseID, warehouseLoc)

		require.NoError(t, err)
		assert.True(t, o.WarehouseID().IsEqual(warehouseID))
		assert.Equal(t, warehouseLoc, o.WarehouseLocation())
		assert.Equal(t, customer, o.CustomerLocation())
	})

	t.Run("should fail with no units", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewID(kernel.TagOrder),
			nil, customer, warehouseID, warehouseLoc)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrUnitsAreRequired)
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		var invalidID kernel.ID

		_, err := order.NewOrder(invalidID,
			[]product.Product{khinkali}, customer, warehouseID, warehouseLoc)

		require.Error(t, err)
	})

	t.Run("should fail with unconstructed unit", func(t *testing.T) {
		var invalid product.Product

		_, err := order.NewOrder(kernel.NewID(kernel.TagOrder),
			[]product.Product{invalid}, customer, warehouseID, warehouseLoc)

		require.Error(t, err)
	})

	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrderItemsAreCopies(t *testing.T) {
	t.Run("should not expose internal maps", func(t *testing.T) {
		khinkali := mustProduct(t, "khinkali", 50)
		o := testOrder(t, []product.Product{khinkali, khinkali})

		items := o.CurrentItems()
		items[khinkali] = 100

		assert.Equal(t, 2, o.CurrentItems()[khinkali])
	})
}

func TestOrderLifecycle(t *testing.T) {
	khinkali, _ := product.NewProduct("khinkali", 50)

	t.Run("should walk Created through Processing to Delivered", func(t *testing.T) {
		o := testOrder(t, []product.Product{khinkali})

		require.NoError(t, o.StartProcessing())
		assert.Equal(t, order.Processing, o.Status())

		require.NoError(t, o.MarkDelivered())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should reject delivery before assembly", func(t *testing.T) {
		o := testOrder(t, []product.Product{khinkali})

		require.Error(t, o.MarkDelivered())
		assert.Equal(t, order.Created, o.Status())
	})

	t.Run("should record courier assignment", func(t *testing.T) {
		o := testOrder(t, []product.Product{khinkali})
		courierID := kernel.NewID(kernel.TagWorker)

		require.NoError(t, o.AssignCourier(courierID))

		require.NotNil(t, o.Courier())
		assert.True(t, o.Courier().IsEqual(courierID))
	})

	t.Run("should reset to Created and clear courier on retry", func(t *testing.T) {
		o := testOrder(t, []product.Product{khinkali})
		require.NoError(t, o.AssignCourier(kernel.NewID(kernel.TagWorker)))
		require.NoError(t, o.StartProcessing())

		o.ResetForRetry()

		assert.Equal(t, order.Created, o.Status())
		assert.Nil(t, o.Courier())
	})
}

func TestOrderReconcileAvailability(t *testing.T) {
	khinkali := mustProduct(t, "khinkali", 50)
	lemonade := mustProduct(t, "lemonade", 20)

	t.Run("should keep fully covered lines untouched", func(t *testing.T) {
		o := testOrder(t, []product.Product{khinkali, khinkali})
		ledger, _ := stock.NewLedger(map[product.Product]int{khinkali: 5})

		remains := o.ReconcileAvailability(ledger)

		assert.True(t, remains)
		assert.Equal(t, 2, o.CurrentItems()[khinkali])
		assert.False(t, o.IsPartial())
		assert.Equal(t, 5, ledger.Available(khinkali))
	})

	t.Run("should shrink a short line and mark partial", func(t *testing.T) {
		o := testOrder(t, []product.Product{khinkali, khinkali, khinkali})
		ledger, _ := stock.NewLedger(map[product.Product]int{khinkali: 2})

		remains := o.ReconcileAvailability(ledger)

		assert.True(t, remains)
		assert.Equal(t, 2, o.CurrentItems()[khinkali])
		assert.True(t, o.IsPartial())
		assert.Equal(t, 3, o.OriginalItems()[khinkali])
	})

	t.Run("should drop an unavailable line without marking partial", func(t *testing.T) {
		o := testOrder(t, []product.Product{khinkali, lemonade})
		ledger, _ := stock.NewLedger(map[product.Product]int{khinkali: 1})

		remains := o.ReconcileAvailability(ledger)

		assert.True(t, remains)
		assert.NotContains(t, o.CurrentItems(), lemonade)
		assert.Equal(t, 1, o.CurrentItems()[khinkali])
	})

	t.Run("should report nothing left when all lines drop", func(t *testing.T) {
		o := testOrder(t, []product.Product{khinkali})
		ledger, _ := stock.NewLedger(nil)

		remains := o.ReconcileAvailability(ledger)

		assert.False(t, remains)
		assert.Empty(t, o.CurrentItems())
	})

	t.Run("should never grow current items back", func(t *testing.T) {
		o := testOrder(t, []product.Product{khinkali, khinkali, khinkali})
		short, _ := stock.NewLedger(map[product.Product]int{khinkali: 1})
		full, _ := stock.NewLedger(map[product.Product]int{khinkali: 10})

		o.ReconcileAvailability(short)
		o.ReconcileAvailability(full)

		assert.Equal(t, 1, o.CurrentItems()[khinkali])
	})
}

func TestOrderStockFlag(t *testing.T) {
	t.Run("should record the latest availability check", func(t *testing.T) {
		khinkali := mustProduct(t, "khinkali", 50)
		o := testOrder(t, []product.Product{khinkali})

		assert.False(t, o.HasEnoughStock())
		o.SetEnoughStock(true)
		assert.True(t, o.HasEnoughStock())
	})
}
