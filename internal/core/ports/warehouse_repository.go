package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/warehouse"
)

// WarehouseRepository defines the persistence contract for warehouse
// aggregates. The warehouse is a large aggregate (ledger, queue, rosters),
// so repositories hand out the live aggregate and Update marks the point
// where a unit of work considers its mutations durable.
type WarehouseRepository interface {
	// Add registers a new warehouse aggregate.
	// The warehouse must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Update persists changes to an existing warehouse aggregate.
	Update(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Get retrieves a warehouse aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.ID) (*warehouse.Warehouse, error)

	// GetPrimary retrieves the single warehouse of a one-warehouse
	// deployment. Background jobs use it when no identifier is in scope.
	GetPrimary(ctx context.Context) (*warehouse.Warehouse, error)
}
