package queries

import (
	"context"
	"slices"
	"strings"

	"warehouse/internal/core/ports"
)

// GetStockQueryHandler retrieves the warehouse's current stock levels.
// Returns one line per product with on-hand quantity, including products
// that have been fully consumed.
//
// Example:
//
//	handler := NewGetStockQueryHandler(repo)
//	query, _ := NewGetStockQuery(warehouseID)
//
//	lines, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
type GetStockQueryHandler struct {
	warehouseRepo ports.WarehouseRepository
}

// NewGetStockQueryHandler creates a handler for stock queries.
// Requires a WarehouseRepository for aggregate access.
func NewGetStockQueryHandler(warehouseRepo ports.WarehouseRepository) GetStockQueryHandler {
	return GetStockQueryHandler{warehouseRepo: warehouseRepo}
}

// Handle executes the stock query. Lines are sorted by product name for
// consistent output.
func (h GetStockQueryHandler) Handle(ctx context.Context, query GetStockQuery) ([]GetStockQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	wh, err := h.warehouseRepo.Get(ctx, query.WarehouseID())
	if err != nil {
		return nil, err
	}

	lines := make([]GetStockQueryResponse, 0)
	for p, quantity := range wh.Ledger().Snapshot() {
		lines = append(lines, GetStockQueryResponse{
			Product:  p.Name(),
			Price:    p.Price(),
			Quantity: quantity,
		})
	}

	slices.SortFunc(lines, func(a, b GetStockQueryResponse) int {
		return strings.Compare(a.Product, b.Product)
	})

	return lines, nil
}
