package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
		"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
	)
)

// GetPendingOrdersQuery retrieves all orders waiting in a warehouse's
// fulfillment queue, in arrival order.
//
// Example:
//
//	query, err := NewGetPendingOrdersQuery(warehouseID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetPendingOrdersQueryHandler(repo)
//	pending, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders awaiting fulfillment\n", len(pending))
type GetPendingOrdersQuery struct { //nolint:recvcheck //using for validation
	warehouseID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetPendingOrdersQuery creates a query for the pending orders of the
// given warehouse.
func NewGetPendingOrdersQuery(warehouseID kernel.ID) (GetPendingOrdersQuery, error) {
	if err := warehouseID.Validate(); err != nil {
		return GetPendingOrdersQuery{}, err
	}

	return GetPendingOrdersQuery{
		warehouseID: warehouseID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingOrdersQueryIsNotConstructed if validation fails.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// WarehouseID returns the identifier of the warehouse to inspect.
func (q GetPendingOrdersQuery) WarehouseID() kernel.ID {
	return q.warehouseID
}

// GetPendingOrdersQueryResponse represents one queued order.
type GetPendingOrdersQueryResponse struct {
	ID               kernel.ID
	Status           string
	CustomerLocation kernel.Location
	TotalUnits       int
	Partial          bool
}
