package memory

import (
	"context"
	"errors"

	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

// Transaction lifecycle errors.
var (
	// ErrTxAlreadyActive is returned when Begin is called on an active transaction.
	ErrTxAlreadyActive = errors.New("transaction already active")
	// ErrTxNotActive is returned when Commit is called without an active transaction.
	ErrTxNotActive = errors.New("no active transaction")
)

var (
	_ ports.UnitOfWork        = &UnitOfWork{}
	_ ports.UnitOfWorkFactory = UnitOfWorkFactory{}
)

// UnitOfWorkFactory creates UnitOfWork instances bound to one shared store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory over the given store.
func NewUnitOfWorkFactory(store *Store) (UnitOfWorkFactory, error) {
	if store == nil {
		return UnitOfWorkFactory{}, errs.NewValueIsRequiredError("store")
	}

	return UnitOfWorkFactory{store: store}, nil
}

// Create returns a fresh UnitOfWork. Each command gets its own instance so
// transaction state is never shared.
func (f UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork is the in-memory ports.UnitOfWork. Begin takes the store
// mutex, giving the holder exclusive access to every aggregate until
// Commit or Rollback releases it.
type UnitOfWork struct {
	store  *Store
	active bool
}

// Begin starts the transaction by acquiring the store mutex. Blocks until
// any other transaction completes.
func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.active {
		return ErrTxAlreadyActive
	}

	u.store.mu.Lock()
	u.active = true
	return nil
}

// Commit completes the transaction and releases the store.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrTxNotActive
	}

	u.active = false
	u.store.mu.Unlock()
	return nil
}

// Rollback releases the store without persisting intent. A rollback after
// Commit is a no-op, which lets handlers defer it unconditionally.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return nil
	}

	u.active = false
	u.store.mu.Unlock()
	return nil
}

// WarehouseRepository returns a repository bound to this transaction's
// hold on the store.
func (u *UnitOfWork) WarehouseRepository() ports.WarehouseRepository {
	return &WarehouseRepository{store: u.store, inTx: true}
}
