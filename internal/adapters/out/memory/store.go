// Package memory provides the in-memory implementation of the Unit of Work
// pattern and the warehouse repository. The simulation keeps its whole
// state resident, so persistence reduces to a registry of live aggregates
// behind a mutex.
//
// Transaction semantics: Begin acquires the store's mutex, Commit and
// Rollback release it. That serializes fulfillment cycles against order
// submissions and every other command, which is the isolation the
// single-threaded engine requires. There is no snapshotting, so Rollback
// releases the hold without undoing mutations already applied to the
// aggregate; handlers are written to fail before mutating.
//
// Usage:
//
//	store := memory.NewStore()
//	factory := memory.NewUnitOfWorkFactory(store)
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	repo := uow.WarehouseRepository()
//	// ... perform operations
//
//	return uow.Commit(ctx)
package memory

import (
	"sync"

	"warehouse/internal/core/domain/model/warehouse"
)

// Store is the shared in-memory registry of warehouse aggregates.
// Insertion order is preserved so GetPrimary is deterministic.
type Store struct {
	mu         sync.Mutex
	warehouses map[string]*warehouse.Warehouse
	insertion  []string
}

// NewStore creates an empty registry.
func NewStore() *Store {
	return &Store{
		warehouses: make(map[string]*warehouse.Warehouse),
	}
}
