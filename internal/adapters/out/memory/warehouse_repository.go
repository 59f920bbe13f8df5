package memory

import (
	"context"
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/warehouse"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

// ErrStoreIsEmpty is returned by GetPrimary when no warehouse is registered.
var ErrStoreIsEmpty = errors.New("no warehouse registered in store")

var _ ports.WarehouseRepository = &WarehouseRepository{}

// WarehouseRepository is the in-memory ports.WarehouseRepository. Instances
// created through a UnitOfWork rely on the transaction's hold on the store
// mutex; instances created through NewWarehouseRepository lock per call and
// serve read paths outside any transaction.
type WarehouseRepository struct {
	store *Store

	// inTx marks repositories bound to an active unit of work, whose
	// Begin already holds the store mutex.
	inTx bool
}

// NewWarehouseRepository creates a standalone repository for read paths.
// Each call locks the store for the duration of the map access.
func NewWarehouseRepository(store *Store) (*WarehouseRepository, error) {
	if store == nil {
		return nil, errs.NewValueIsRequiredError("store")
	}

	return &WarehouseRepository{store: store}, nil
}

// Add registers a new warehouse aggregate.
func (r *WarehouseRepository) Add(_ context.Context, aggregate *warehouse.Warehouse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.lock()
	defer r.unlock()

	key := aggregate.ID().String()
	if _, ok := r.store.warehouses[key]; ok {
		return errs.NewValueIsInvalidErrorWithCause("aggregate",
			fmt.Errorf("warehouse %s already exists", key))
	}

	r.store.warehouses[key] = aggregate
	r.store.insertion = append(r.store.insertion, key)
	return nil
}

// Update persists changes to an existing warehouse aggregate. The aggregate
// is mutated in place, so Update only verifies it is known to the store.
func (r *WarehouseRepository) Update(_ context.Context, aggregate *warehouse.Warehouse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.lock()
	defer r.unlock()

	key := aggregate.ID().String()
	if _, ok := r.store.warehouses[key]; !ok {
		return errs.NewObjectNotFoundError("aggregate", key)
	}

	return nil
}

// Get retrieves a warehouse aggregate by its unique identifier.
func (r *WarehouseRepository) Get(_ context.Context, id kernel.ID) (*warehouse.Warehouse, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.lock()
	defer r.unlock()

	wh, ok := r.store.warehouses[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("id", id.String())
	}

	return wh, nil
}

// GetPrimary retrieves the first registered warehouse.
func (r *WarehouseRepository) GetPrimary(_ context.Context) (*warehouse.Warehouse, error) {
	r.lock()
	defer r.unlock()

	if len(r.store.insertion) == 0 {
		return nil, ErrStoreIsEmpty
	}

	return r.store.warehouses[r.store.insertion[0]], nil
}

func (r *WarehouseRepository) lock() {
	if !r.inTx {
		r.store.mu.Lock()
	}
}

func (r *WarehouseRepository) unlock() {
	if !r.inTx {
		r.store.mu.Unlock()
	}
}
