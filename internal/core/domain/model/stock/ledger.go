// Package stock provides the warehouse stock ledger: the single shared
// mapping of product to on-hand quantity.
//
// The ledger is mutated from exactly two places (suppliers increment it on
// delivery, pickers decrement it on assembly) and it guarantees that a
// quantity never goes negative. Decrements go through Commit, an explicit
// all-or-nothing apply that validates every line before touching any of
// them, so a partial decrement is never observable.
package stock

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/errs"
)

// Domain errors for ledger operations.
var (
	// ErrInsufficientStock is returned by Commit when at least one requested
	// line exceeds the available quantity. Nothing is decremented in that case.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Ledger maps products to non-negative on-hand quantities. It is an entity
// shared by the warehouse, its suppliers and its pickers; the simulation is
// single-threaded, so the ledger carries no locking of its own.
type Ledger struct {
	quantities map[product.Product]int
}

// NewLedger creates a ledger seeded with the given initial quantities.
// A nil initial map yields an empty ledger.
func NewLedger(initial map[product.Product]int) (*Ledger, error) {
	quantities := make(map[product.Product]int, len(initial))
	for p, qty := range initial {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if qty < 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%d for %s is negative", qty, p.Name()))
		}
		quantities[p] = qty
	}

	return &Ledger{quantities: quantities}, nil
}

// Available returns the on-hand quantity for a product. Unknown products
// report zero.
func (l *Ledger) Available(p product.Product) int {
	return l.quantities[p]
}

// Add increments the on-hand quantity for a product. The amount must be
// positive; suppliers clamp before calling.
func (l *Ledger) Add(p product.Product, amount int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is not greater than 0", amount))
	}

	l.quantities[p] += amount
	return nil
}

// Covers reports whether every line of items is fully available. It is a
// dry run: the ledger is not mutated.
func (l *Ledger) Covers(items map[product.Product]int) bool {
	for p, required := range items {
		if l.quantities[p] < required {
			return false
		}
	}
	return true
}

// Commit decrements the ledger by every line of items, all-or-nothing:
// it first validates that each line is fully available and only then
// applies the decrements. On any shortage it returns ErrInsufficientStock
// and leaves the ledger untouched.
func (l *Ledger) Commit(items map[product.Product]int) error {
	for p, required := range items {
		if available := l.quantities[p]; available < required {
			return fmt.Errorf("%w: %d of %s required, %d available",
				ErrInsufficientStock, required, p.Name(), available)
		}
	}

	for p, required := range items {
		l.quantities[p] -= required
	}
	return nil
}

// Snapshot returns a copy of the current quantities for read models.
func (l *Ledger) Snapshot() map[product.Product]int {
	out := make(map[product.Product]int, len(l.quantities))
	for p, qty := range l.quantities {
		out[p] = qty
	}
	return out
}
