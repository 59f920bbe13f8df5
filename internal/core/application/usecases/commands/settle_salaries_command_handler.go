package commands

import (
	"context"

	"warehouse/internal/core/domain/model/warehouse"
)

// SettleSalariesCommandHandler handles the payroll settlement for all
// workers of a warehouse. Settlement is unconditional and idempotent in
// amount: pay depends only on the shift window, never on orders handled,
// and a second run yields the same figures.
type SettleSalariesCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

// NewSettleSalariesCommandHandler creates a handler for payroll settlement.
// Requires a WarehouseUoWFactory for transactional state changes.
func NewSettleSalariesCommandHandler(uowFactory WarehouseUoWFactory) SettleSalariesCommandHandler {
	return SettleSalariesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle settles every worker of the warehouse and returns their payslips,
// pickers first, in roster order.
func (h *SettleSalariesCommandHandler) Handle(
	ctx context.Context,
	cmd SettleSalariesCommand,
) ([]warehouse.Payslip, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	warehouseRepo := uow.WarehouseRepository()
	wh, err := warehouseRepo.Get(ctx, cmd.WarehouseID())
	if err != nil {
		return nil, err
	}

	payslips := wh.SettleSalaries()

	if err = warehouseRepo.Update(ctx, wh); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return payslips, nil
}
