package commands

import (
	"context"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
)

// SubmitOrderCommandHandler handles the business logic for order placement.
// Builds the order aggregate against the target warehouse and appends it to
// the warehouse's fulfillment queue.
//
// Example:
//
//	handler := NewSubmitOrderCommandHandler(uowFactory)
//	cmd, _ := NewSubmitOrderCommand(orderID, warehouseID, location, items)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order submission failed: %w", err)
//	}
//	// Order is now queued for the next fulfillment cycle
type SubmitOrderCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

// NewSubmitOrderCommandHandler creates a handler for order submission.
// Requires a WarehouseUoWFactory for transactional state changes.
func NewSubmitOrderCommandHandler(uowFactory WarehouseUoWFactory) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order submission command.
// Expands line items into product units, builds the order in "created"
// status and enqueues it on the warehouse.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) error {
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

	units, err := expandItems(cmd.Items())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), units, cmd.CustomerLocation(), wh.ID(), wh.Location())
	if err != nil {
		return err
	}

	if err = wh.SubmitOrder(newOrder); err != nil {
		return err
	}

	if err = warehouseRepo.Update(ctx, wh); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// expandItems turns line items into the flat unit list the order
// constructor counts, one product value per requested unit.
func expandItems(items []OrderItem) ([]product.Product, error) {
	var units []product.Product
	for _, item := range items {
		p, err := product.NewProduct(item.Name, item.Price)
		if err != nil {
			return nil, err
		}
		for i := 0; i < item.Quantity; i++ {
			units = append(units, p)
		}
	}
	return units, nil
}
