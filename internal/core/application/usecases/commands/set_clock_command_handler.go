package commands

import (
	"context"
)

// SetClockCommandHandler moves a warehouse's virtual clock to an absolute
// time of day. The move is unvalidated against the current time: scenario
// drivers may jump the clock backward between runs.
type SetClockCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

// NewSetClockCommandHandler creates a handler for clock positioning.
// Requires a WarehouseUoWFactory for transactional state changes.
func NewSetClockCommandHandler(uowFactory WarehouseUoWFactory) SetClockCommandHandler {
	return SetClockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle sets the warehouse clock to the command's time of day.
func (h *SetClockCommandHandler) Handle(ctx context.Context, cmd SetClockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	warehouseRepo := uow.WarehouseRepository()
	wh, err := warehouseRepo.Get(ctx, cmd.WarehouseID())
	if err != nil {
		return err
	}

	wh.Clock().SetTime(cmd.At())

	if err = warehouseRepo.Update(ctx, wh); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
