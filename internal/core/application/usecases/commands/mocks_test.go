package commands_test

import (
	"context"
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/core/domain/model/supplier"
	"warehouse/internal/core/domain/model/warehouse"
	"warehouse/internal/core/domain/model/worker"
	"warehouse/internal/core/ports"

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

type MockWarehouseUoW struct{ mock.Mock }

func (m *MockWarehouseUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWarehouseUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWarehouseUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWarehouseUoW) WarehouseRepository() ports.WarehouseRepository {
	args := m.Called()
	return args.Get(0).(ports.WarehouseRepository)
}

type MockWarehouseUoWFactory struct{ mock.Mock }

func (m *MockWarehouseUoWFactory) Create() commands.WarehouseUoW {
	args := m.Called()
	return args.Get(0).(commands.WarehouseUoW)
}

// testAggregate is a fully wired warehouse for handler tests: one product
// priced 50, an unlimited supplier, a picker 08:00-16:00 and a courier
// 10:00-19:00, clock at 10:00.
type testAggregate struct {
	wh       *warehouse.Warehouse
	clock    *kernel.Clock
	khinkali product.Product
	supplier *supplier.Supplier
}

func newTestAggregate(t *testing.T) *testAggregate {
	t.Helper()

	start, err := kernel.NewTimeOfDay(10, 0, 0)
	require.NoError(t, err)
	clock := kernel.NewClock(start)

	ledger, err := stock.NewLedger(nil)
	require.NoError(t, err)

	location, err := kernel.NewLocation(1, 1)
	require.NoError(t, err)

	wh, err := warehouse.NewWarehouse(kernel.NewID(kernel.TagWarehouse), location, ledger, clock)
	require.NoError(t, err)

	khinkali, err := product.NewProduct("khinkali", 50)
	require.NoError(t, err)

	sup, err := supplier.NewSupplier(kernel.NewID(kernel.TagSupplier), "Khinkalych", khinkali)
	require.NoError(t, err)
	require.NoError(t, wh.AddSupplier(sup))

	pickerStart, err := kernel.NewTimeOfDay(8, 0, 0)
	require.NoError(t, err)
	pickerEnd, err := kernel.NewTimeOfDay(16, 0, 0)
	require.NoError(t, err)
	pickerShift, err := worker.NewShift(pickerStart, pickerEnd)
	require.NoError(t, err)
	picker, err := worker.NewPicker(kernel.NewID(kernel.TagWorker), pickerShift, clock, ledger)
	require.NoError(t, err)
	require.NoError(t, wh.AddPicker(picker))

	courierEnd, err := kernel.NewTimeOfDay(19, 0, 0)
	require.NoError(t, err)
	courierShift, err := worker.NewShift(start, courierEnd)
	require.NoError(t, err)
	courier, err := worker.NewCourier(kernel.NewID(kernel.TagWorker), courierShift, clock)
	require.NoError(t, err)
	require.NoError(t, wh.AddCourier(courier))

	return &testAggregate{wh: wh, clock: clock, khinkali: khinkali, supplier: sup}
}

// expectTransaction wires factory -> uow -> repo for one successful
// Get/Update round trip over the given aggregate.
func expectTransaction(
	ctx context.Context,
	factory *MockWarehouseUoWFactory,
	uow *MockWarehouseUoW,
	repo *MockWarehouseRepository,
	agg *testAggregate,
) {
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("WarehouseRepository").Return(repo).Once()
	repo.On("Get", mock.Anything, agg.wh.ID()).Return(agg.wh, nil).Once()
	repo.On("Update", mock.Anything, agg.wh).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
}
