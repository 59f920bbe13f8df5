package queries_test

import (
	"context"
	"testing"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/core/domain/model/warehouse"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWarehouseRepository struct{ mock.Mock }

func (m *MockWarehouseRepository) Add(ctx context.Context, wh *warehouse.Warehouse) error {
	args := m.Called(ctx, wh)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Update(ctx context.Context, wh *warehouse.Warehouse) error {
	args := m.Called(ctx, wh)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Get(ctx context.Context, id kernel.ID) (*warehouse.Warehouse, error) {
	args := m.Called(ctx, id)
	if wh := args.Get(0); wh != nil {
		return wh.(*warehouse.Warehouse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockWarehouseRepository) GetPrimary(ctx context.Context) (*warehouse.Warehouse, error) {
	args := m.Called(ctx)
	if wh := args.Get(0); wh != nil {
		return wh.(*warehouse.Warehouse), args.Error(1)
	}
	return nil, args.Error(1)
}

func mustProduct(t *testing.T, name string, price float64) product.Product {
	t.Helper()
	p, err := product.NewProduct(name, price)
	require.NoError(t, err)
	return p
}

// newTestWarehouse builds an aggregate with the given initial stock and an
// empty queue, clock at 10:00.
func newTestWarehouse(t *testing.T, initial map[product.Product]int) *warehouse.Warehouse {
	t.Helper()

	start, err := kernel.NewTimeOfDay(10, 0, 0)
	require.NoError(t, err)
	clock := kernel.NewClock(start)

	ledger, err := stock.NewLedger(initial)
	require.NoError(t, err)

	location, err := kernel.NewLocation(1, 1)
	require.NoError(t, err)

	wh, err := warehouse.NewWarehouse(kernel.NewID(kernel.TagWarehouse), location, ledger, clock)
	require.NoError(t, err)

	return wh
}
