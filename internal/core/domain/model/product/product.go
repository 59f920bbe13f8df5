// Package product provides the Product value object used as the line-item
// and stock-ledger key throughout the simulation.
//
// Product has value equality: two products with the same name and unit price
// are the same product, so repeated deliveries and repeated order lines
// collapse into a single ledger slot. All fields are comparable, which is
// what makes Product safe to use as a map key.
package product

import (
	"errors"
	"fmt"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// Domain errors for product construction.
var (
	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product is an immutable priced item: identity (name) plus unit price.
// The zero value is invalid; use NewProduct.
type Product struct { //nolint:recvcheck //using for validation
	name  string
	price float64
	guard guard.ConstructorGuard
}

// NewProduct creates a Product with the given name and unit price.
// The name must be non-empty and the price non-negative.
func NewProduct(name string, price float64) (Product, error) {
	p := Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setName(name), p.setPrice(price)); err != nil {
		return Product{}, err
	}

	return p, nil
}

// Validate checks that the Product was created through NewProduct.
func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// Name returns the product's identity.
func (p Product) Name() string {
	return p.name
}

// Price returns the unit price.
func (p Product) Price() float64 {
	return p.price
}

// IsEqual compares two products by value.
func (p Product) IsEqual(other Product) bool {
	return p.name == other.name && p.price == other.price
}

// String returns "name (price)" for logs and reports.
// This method implements the fmt.Stringer interface.
func (p Product) String() string {
	return fmt.Sprintf("%s (%.2f)", p.name, p.price)
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	p.name = name
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%.2f is negative", price))
	}

	p.price = price
	return nil
}
