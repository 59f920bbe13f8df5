package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
//
// The simulation keeps its state in memory, so Begin takes a lock that
// serializes fulfillment cycles against submissions and queries, and
// Commit/Rollback release it. The lifecycle contract matches a database
// transaction so adapters can be swapped without touching handlers.
type UnitOfWork interface {
	// Begin starts the transaction and blocks until the aggregate is
	// exclusively held.
	Begin(ctx context.Context) error

	// Commit makes the mutations durable and releases the hold.
	// Returns an error if no transaction is active.
	Commit(ctx context.Context) error

	// Rollback releases the hold without persisting. Safe to defer after
	// Commit; a rollback with no active transaction is a no-op.
	Rollback(ctx context.Context) error

	// WarehouseRepository returns a WarehouseRepository bound to the
	// current transaction.
	WarehouseRepository() WarehouseRepository
}
