package commands

import (
	"context"

	"warehouse/internal/core/domain/model/warehouse"
)

// RunFulfillmentCycleCommandHandler handles the business logic for one
// fulfillment cycle. The cycle itself lives on the warehouse aggregate;
// the handler provides the transaction boundary and returns the cycle's
// structured result for the caller to surface.
//
// Example:
//
//	handler := NewRunFulfillmentCycleCommandHandler(uowFactory)
//	cmd, _ := NewRunFulfillmentCycleCommand(warehouseID)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	for _, event := range result.Events {
//	    log.Info(event.String())
//	}
type RunFulfillmentCycleCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

// NewRunFulfillmentCycleCommandHandler creates a handler for fulfillment
// cycle runs. Requires a WarehouseUoWFactory for transactional state changes.
func NewRunFulfillmentCycleCommandHandler(uowFactory WarehouseUoWFactory) RunFulfillmentCycleCommandHandler {
	return RunFulfillmentCycleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cycle command and returns what the cycle observed.
// The cycle never fails midway: order-level problems are absorbed as
// deferral events, so an error here means the transaction itself failed.
func (h *RunFulfillmentCycleCommandHandler) Handle(
	ctx context.Context,
	cmd RunFulfillmentCycleCommand,
) (warehouse.CycleResult, error) {
	if err := cmd.Validate(); err != nil {
		return warehouse.CycleResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return warehouse.CycleResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	warehouseRepo := uow.WarehouseRepository()
	wh, err := warehouseRepo.Get(ctx, cmd.WarehouseID())
	if err != nil {
		return warehouse.CycleResult{}, err
	}

	result := wh.CompleteOrders()

	if err = warehouseRepo.Update(ctx, wh); err != nil {
		return warehouse.CycleResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return warehouse.CycleResult{}, err
	}

	return result, nil
}
