package cmd

import (
	"context"
	"strconv"

	"warehouse/internal/adapters/out/memory"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/core/domain/model/supplier"
	"warehouse/internal/core/domain/model/warehouse"
	"warehouse/internal/core/domain/model/worker"
)

// SeedResult carries the identities the scenario driver addresses commands
// to after seeding.
type SeedResult struct {
	WarehouseID kernel.ID
	SupplierID  kernel.ID
	Product     product.Product
}

// SeedWarehouse builds the configured warehouse: one product line, one
// supplier (capped when SUPPLIER_CAP is set), one picker and one courier,
// with the virtual clock positioned at the configured start of day.
func SeedWarehouse(ctx context.Context, config Config, store *memory.Store) (SeedResult, error) {
	location, err := parseLocation(config.WarehouseX, config.WarehouseY)
	if err != nil {
		return SeedResult{}, err
	}

	start, err := kernel.ParseTimeOfDay(config.ClockStart)
	if err != nil {
		return SeedResult{}, err
	}
	clock := kernel.NewClock(start)

	warehouseID := kernel.NewID(kernel.TagWarehouse)

	ledger, err := stock.NewLedger(nil)
	if err != nil {
		return SeedResult{}, err
	}

	wh, err := warehouse.NewWarehouse(warehouseID, location, ledger, clock)
	if err != nil {
		return SeedResult{}, err
	}

	price, err := strconv.ParseFloat(config.ProductPrice, 64)
	if err != nil {
		return SeedResult{}, err
	}
	p, err := product.NewProduct(config.ProductName, price)
	if err != nil {
		return SeedResult{}, err
	}

	supplierID, err := seedSupplier(wh, config, p)
	if err != nil {
		return SeedResult{}, err
	}
	if err = seedStaff(wh, config, clock, ledger); err != nil {
		return SeedResult{}, err
	}

	repo, err := memory.NewWarehouseRepository(store)
	if err != nil {
		return SeedResult{}, err
	}
	if err = repo.Add(ctx, wh); err != nil {
		return SeedResult{}, err
	}

	return SeedResult{WarehouseID: warehouseID, SupplierID: supplierID, Product: p}, nil
}

func parseLocation(xs, ys string) (kernel.Location, error) {
	x, err := strconv.Atoi(xs)
	if err != nil {
		return kernel.Location{}, err
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return kernel.Location{}, err
	}

	return kernel.NewLocation(kernel.Coordinate(x), kernel.Coordinate(y))
}

func seedSupplier(wh *warehouse.Warehouse, config Config, p product.Product) (kernel.ID, error) {
	id := kernel.NewID(kernel.TagSupplier)

	var s *supplier.Supplier
	var err error
	if config.SupplierCap == "" {
		s, err = supplier.NewSupplier(id, config.SupplierName, p)
	} else {
		var total int
		total, err = strconv.Atoi(config.SupplierCap)
		if err != nil {
			return kernel.ID{}, err
		}
		s, err = supplier.NewCappedSupplier(id, config.SupplierName, p, total)
	}
	if err != nil {
		return kernel.ID{}, err
	}

	return id, wh.AddSupplier(s)
}

func seedStaff(wh *warehouse.Warehouse, config Config, clock *kernel.Clock, ledger *stock.Ledger) error {
	pickerShift, err := parseShift(config.PickerShiftStart, config.PickerShiftEnd)
	if err != nil {
		return err
	}
	courierShift, err := parseShift(config.CourierShiftStart, config.CourierShiftEnd)
	if err != nil {
		return err
	}

	picker, err := worker.NewPicker(kernel.NewID(kernel.TagWorker), pickerShift, clock, ledger)
	if err != nil {
		return err
	}
	if err = wh.AddPicker(picker); err != nil {
		return err
	}

	courier, err := worker.NewCourier(kernel.NewID(kernel.TagWorker), courierShift, clock)
	if err != nil {
		return err
	}

	return wh.AddCourier(courier)
}

func parseShift(startAt, endAt string) (worker.Shift, error) {
	start, err := kernel.ParseTimeOfDay(startAt)
	if err != nil {
		return worker.Shift{}, err
	}
	end, err := kernel.ParseTimeOfDay(endAt)
	if err != nil {
		return worker.Shift{}, err
	}

	return worker.NewShift(start, end)
}
