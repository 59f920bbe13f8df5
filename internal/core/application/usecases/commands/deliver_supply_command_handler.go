package commands

import (
	"context"
)

// DeliverSupplyCommandHandler handles direct supply deliveries. The
// delivery is routed to the named supplier so its cap semantics apply:
// a capped supplier clamps the amount and an exhausted one delivers zero.
//
// Example:
//
//	handler := NewDeliverSupplyCommandHandler(uowFactory)
//	cmd, _ := NewDeliverSupplyCommand(warehouseID, supplierID, 50)
//
//	delivered, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	// delivered may be less than 50 for a capped supplier
type DeliverSupplyCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

// NewDeliverSupplyCommandHandler creates a handler for direct supply
// deliveries. Requires a WarehouseUoWFactory for transactional state changes.
func NewDeliverSupplyCommandHandler(uowFactory WarehouseUoWFactory) DeliverSupplyCommandHandler {
	return DeliverSupplyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the supply delivery and returns the amount that actually
// reached the ledger.
func (h *DeliverSupplyCommandHandler) Handle(ctx context.Context, cmd DeliverSupplyCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	warehouseRepo := uow.WarehouseRepository()
	wh, err := warehouseRepo.Get(ctx, cmd.WarehouseID())
	if err != nil {
		return 0, err
	}

	delivered, err := wh.DeliverSupply(cmd.SupplierID(), cmd.Amount())
	if err != nil {
		return 0, err
	}

	if err = warehouseRepo.Update(ctx, wh); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return delivered, nil
}
