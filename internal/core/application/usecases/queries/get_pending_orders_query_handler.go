package queries

import (
	"context"

	"warehouse/internal/core/ports"
)

// GetPendingOrdersQueryHandler retrieves the orders still waiting in the
// fulfillment queue. Orders already delivered or cancelled never appear:
// the queue only holds work for future cycles.
type GetPendingOrdersQueryHandler struct {
	warehouseRepo ports.WarehouseRepository
}

// NewGetPendingOrdersQueryHandler creates a handler for pending order
// queries. Requires a WarehouseRepository for aggregate access.
func NewGetPendingOrdersQueryHandler(warehouseRepo ports.WarehouseRepository) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{warehouseRepo: warehouseRepo}
}

// Handle executes the query and returns queued orders in arrival order.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]GetPendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	wh, err := h.warehouseRepo.Get(ctx, query.WarehouseID())
	if err != nil {
		return nil, err
	}

	pending := wh.PendingOrders()
	responses := make([]GetPendingOrdersQueryResponse, 0, len(pending))
	for _, o := range pending {
		responses = append(responses, GetPendingOrdersQueryResponse{
			ID:               o.ID(),
			Status:           o.Status().String(),
			CustomerLocation: o.CustomerLocation(),
			TotalUnits:       o.TotalUnits(),
			Partial:          o.IsPartial(),
		})
	}

	return responses, nil
}
