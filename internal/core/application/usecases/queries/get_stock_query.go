// Package queries contains read-only operations over warehouse state.
// Implements the Query side of the CQRS architecture: handlers read the
// aggregate through the repository port and never mutate it.
package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrGetStockQueryIsNotConstructed = errors.New(
		"GetStockQuery must be created via NewGetStockQuery constructor",
	)
)

// GetStockQuery retrieves the current stock levels of a warehouse.
//
// Example:
//
//	query, err := NewGetStockQuery(warehouseID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetStockQueryHandler(repo)
//	stock, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, line := range stock {
//	    fmt.Printf("%s: %d\n", line.Product, line.Quantity)
//	}
type GetStockQuery struct { //nolint:recvcheck //using for validation
	warehouseID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetStockQuery creates a query for the stock levels of the given
// warehouse.
func NewGetStockQuery(warehouseID kernel.ID) (GetStockQuery, error) {
	if err := warehouseID.Validate(); err != nil {
		return GetStockQuery{}, err
	}

	return GetStockQuery{
		warehouseID: warehouseID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStockQueryIsNotConstructed if validation fails.
func (q GetStockQuery) Validate() error {
	return q.guard.Validate(ErrGetStockQueryIsNotConstructed)
}

// WarehouseID returns the identifier of the warehouse to inspect.
func (q GetStockQuery) WarehouseID() kernel.ID {
	return q.warehouseID
}

// GetStockQueryResponse is one stock line: a product and its on-hand
// quantity.
type GetStockQueryResponse struct {
	Product  string
	Price    float64
	Quantity int
}
