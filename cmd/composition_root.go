package cmd

import (
	"warehouse/internal/adapters/out/memory"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
)

type CompositionRoot struct {
	store       *memory.Store
	uowFactory  memory.UnitOfWorkFactory
	warehouseID kernel.ID
}

func NewCompositionRoot(_ Config, store *memory.Store, warehouseID kernel.ID) (CompositionRoot, error) {
	uowFactory, err := memory.NewUnitOfWorkFactory(store)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		store:       store,
		uowFactory:  uowFactory,
		warehouseID: warehouseID,
	}, nil
}

func (c *CompositionRoot) WarehouseID() kernel.ID {
	return c.warehouseID
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.warehouseUoWFactory())
}

func (c *CompositionRoot) CreateRunFulfillmentCycleCommandHandler() commands.RunFulfillmentCycleCommandHandler {
	return commands.NewRunFulfillmentCycleCommandHandler(c.warehouseUoWFactory())
}

func (c *CompositionRoot) CreateDeliverSupplyCommandHandler() commands.DeliverSupplyCommandHandler {
	return commands.NewDeliverSupplyCommandHandler(c.warehouseUoWFactory())
}

func (c *CompositionRoot) CreateSettleSalariesCommandHandler() commands.SettleSalariesCommandHandler {
	return commands.NewSettleSalariesCommandHandler(c.warehouseUoWFactory())
}

func (c *CompositionRoot) CreateSetClockCommandHandler() commands.SetClockCommandHandler {
	return commands.NewSetClockCommandHandler(c.warehouseUoWFactory())
}

func (c *CompositionRoot) CreateGetStockQueryHandler() (queries.GetStockQueryHandler, error) {
	repo, err := memory.NewWarehouseRepository(c.store)
	if err != nil {
		return queries.GetStockQueryHandler{}, err
	}
	return queries.NewGetStockQueryHandler(repo), nil
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() (queries.GetPendingOrdersQueryHandler, error) {
	repo, err := memory.NewWarehouseRepository(c.store)
	if err != nil {
		return queries.GetPendingOrdersQueryHandler{}, err
	}
	return queries.NewGetPendingOrdersQueryHandler(repo), nil
}

func (c *CompositionRoot) warehouseUoWFactory() commands.WarehouseUoWFactory {
	return FuncWarehouseUoWFactory(func() commands.WarehouseUoW {
		return c.uowFactory.Create()
	})
}

type FuncWarehouseUoWFactory func() commands.WarehouseUoW

func (f FuncWarehouseUoWFactory) Create() commands.WarehouseUoW {
	return f()
}
