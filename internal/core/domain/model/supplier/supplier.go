// Package supplier provides the restock source bound to a single product.
//
// A supplier either has unlimited inventory or a finite cap that depletes
// with each delivery and never replenishes. Deliveries are clamped to the
// remaining cap; an exhausted supplier delivers nothing (a wasted trip),
// which surfaces on the next fulfillment cycle as an ordinary shortfall.
package supplier

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// Domain errors for supplier operations.
var (
	// ErrNameIsRequired is returned when creating a supplier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrSupplierIsNotConstructed is returned when using an improperly initialized Supplier.
	ErrSupplierIsNotConstructed = errors.New("Supplier must be created via NewSupplier or NewCappedSupplier")
)

// Supplier is a product-bound restock source.
type Supplier struct {
	id        kernel.ID
	name      string
	product   product.Product
	capped    bool
	remaining int
	guard     guard.ConstructorGuard
}

// NewSupplier creates a supplier with unlimited inventory for the given product.
func NewSupplier(id kernel.ID, name string, p product.Product) (*Supplier, error) {
	return newSupplier(id, name, p, false, 0)
}

// NewCappedSupplier creates a supplier with a hard inventory cap that
// depletes with each delivery and never replenishes.
func NewCappedSupplier(id kernel.ID, name string, p product.Product, cap int) (*Supplier, error) {
	if cap < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("cap",
			fmt.Errorf("%d is negative", cap))
	}

	return newSupplier(id, name, p, true, cap)
}

func newSupplier(id kernel.ID, name string, p product.Product, capped bool, cap int) (*Supplier, error) {
	if err := errors.Join(id.Validate(), p.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Supplier{
		id:        id,
		name:      name,
		product:   p,
		capped:    capped,
		remaining: cap,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Supplier was created through a constructor.
func (s *Supplier) Validate() error {
	if s == nil {
		return ErrSupplierIsNotConstructed
	}
	return s.guard.Validate(ErrSupplierIsNotConstructed)
}

// ID returns the supplier's unique identifier.
func (s *Supplier) ID() kernel.ID {
	return s.id
}

// Name returns the supplier's company name.
func (s *Supplier) Name() string {
	return s.name
}

// Product returns the single product this supplier is bound to.
func (s *Supplier) Product() product.Product {
	return s.product
}

// IsCapped reports whether the supplier has a finite inventory cap.
func (s *Supplier) IsCapped() bool {
	return s.capped
}

// Remaining returns the undelivered cap of a capped supplier. Meaningless
// for uncapped suppliers.
func (s *Supplier) Remaining() int {
	return s.remaining
}

// Deliver adds the supplier's product to the ledger and returns the amount
// actually delivered.
//
// Uncapped suppliers always deliver the full requested amount. Capped
// suppliers clamp to min(requested, remaining) and deplete the cap by the
// same amount; an exhausted cap delivers nothing, and the caller observes
// the wasted trip through the zero return.
func (s *Supplier) Deliver(ledger *stock.Ledger, requestedAmount int) (int, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if requestedAmount <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("requestedAmount",
			fmt.Errorf("%d is not greater than 0", requestedAmount))
	}

	amount := requestedAmount
	if s.capped {
		amount = min(requestedAmount, s.remaining)
	}
	if amount == 0 {
		return 0, nil
	}

	if err := ledger.Add(s.product, amount); err != nil {
		return 0, err
	}
	if s.capped {
		s.remaining -= amount
	}

	return amount, nil
}
