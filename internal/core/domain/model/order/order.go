package order

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/pkg/errs"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order was not created
	// through the NewOrder constructor.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrUnitsAreRequired is returned when an order is submitted with no items.
	ErrUnitsAreRequired = errs.NewValueIsRequiredError("units")
)

// Order represents one customer request. It is the aggregate root that
// manages the order lifecycle from submission through assembly to delivery.
//
// An order carries two line-item mappings keyed by product:
//   - the original items: an immutable snapshot of what was requested
//     (quantity = count of that product in the submitted unit list);
//   - the current items: the mutable working set, initialized equal to the
//     original and only ever shrunk by availability reconciliation.
//
// The warehouse location is captured at creation and stays fixed for the
// order's lifetime; delivery cost is always computed against it.
//
// Invariant: sum(current items) <= sum(original items) at every point in
// the lifecycle; items only shrink.
type Order struct {
	// id is the unique identifier for the order
	id kernel.ID

	// warehouseID identifies the warehouse fulfilling the order
	warehouseID kernel.ID

	// warehouseLocation is the fulfilling warehouse's position, captured at creation
	warehouseLocation kernel.Location

	// customerLocation is the delivery destination
	customerLocation kernel.Location

	// original is the immutable snapshot of requested quantities
	original map[product.Product]int

	// current is the mutable working set, shrunk by reconciliation
	current map[product.Product]int

	// courierID is the assigned courier (nil until courier assignment)
	courierID *kernel.ID

	// enoughStock records whether the ledger covered the order when last checked
	enoughStock bool

	// partial marks that reconciliation trimmed at least one line item
	partial bool

	// status is the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates an Order from a submitted list of product units.
// Duplicates in units are allowed and counted: the quantity per product is
// the number of times it appears in the list.
//
// Parameters:
//   - id: unique identifier for the order
//   - units: the requested product units (must be non-empty, all valid)
//   - customerLocation: the delivery destination
//   - warehouseID, warehouseLocation: the fulfilling warehouse's identity
//     and position, captured immutably
//
// The order starts in Created status with no courier assigned and its
// current items equal to the original snapshot.
func NewOrder(
	id kernel.ID,
	units []product.Product,
	customerLocation kernel.Location,
	warehouseID kernel.ID,
	warehouseLocation kernel.Location,
) (*Order, error) {
	if len(units) == 0 {
		return nil, ErrUnitsAreRequired
	}

	if err := errors.Join(
		id.Validate(),
		warehouseID.Validate(),
		customerLocation.Validate(),
		warehouseLocation.Validate(),
	); err != nil {
		return nil, err
	}

	original := make(map[product.Product]int, len(units))
	for _, p := range units {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		original[p]++
	}

	current := make(map[product.Product]int, len(original))
	for p, qty := range original {
		current[p] = qty
	}

	return &Order{
		id:                id,
		warehouseID:       warehouseID,
		warehouseLocation: warehouseLocation,
		customerLocation:  customerLocation,
		original:          original,
		current:           current,
		status:            Created,
		isConstructed:     true,
	}, nil
}

// Validate ensures the Order was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.ID {
	return o.id
}

// WarehouseID returns the identifier of the fulfilling warehouse.
func (o *Order) WarehouseID() kernel.ID {
	return o.warehouseID
}

// WarehouseLocation returns the warehouse position captured at creation.
func (o *Order) WarehouseLocation() kernel.Location {
	return o.warehouseLocation
}

// CustomerLocation returns the delivery destination.
func (o *Order) CustomerLocation() kernel.Location {
	return o.customerLocation
}

// OriginalItems returns a copy of the immutable requested quantities.
func (o *Order) OriginalItems() map[product.Product]int {
	return copyItems(o.original)
}

// CurrentItems returns a copy of the mutable working set.
func (o *Order) CurrentItems() map[product.Product]int {
	return copyItems(o.current)
}

// TotalUnits returns the sum of current line-item quantities.
func (o *Order) TotalUnits() int {
	total := 0
	for _, qty := range o.current {
		total += qty
	}
	return total
}

// Courier returns the assigned courier's ID, or nil if none is assigned.
func (o *Order) Courier() *kernel.ID {
	return o.courierID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// IsPartial reports whether reconciliation trimmed the order below its
// original request. The flag is informational only.
func (o *Order) IsPartial() bool {
	return o.partial
}

// HasEnoughStock reports the result of the most recent availability check.
func (o *Order) HasEnoughStock() bool {
	return o.enoughStock
}

// SetEnoughStock records whether the ledger covered the order at the last check.
func (o *Order) SetEnoughStock(enough bool) {
	o.enoughStock = enough
}

// MarkPartial flags the order as partially satisfiable.
func (o *Order) MarkPartial() {
	o.partial = true
}

// AssignCourier records the courier responsible for delivery.
func (o *Order) AssignCourier(courierID kernel.ID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	o.courierID = &courierID
	return nil
}

// StartProcessing marks the order as assembled by a picker.
// Only valid from Created status.
func (o *Order) StartProcessing() error {
	newStatus, err := o.status.StartProcessing()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkDelivered marks the order as handed to the customer.
// Only valid from Processing status; Delivered is terminal.
func (o *Order) MarkDelivered() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ResetForRetry returns the order to Created status and clears the courier
// assignment. Used when fulfillment must be retried, e.g. after a picker
// discovers the stock reverted to insufficient between reconciliation and
// assembly.
func (o *Order) ResetForRetry() {
	o.status = Created
	o.courierID = nil
}

// ReconcileAvailability trims the order's current line items against the
// ledger without mutating stock, as a dry run:
//   - available >= required: the line is kept as is;
//   - 0 < available < required: the line shrinks to the available quantity
//     and the order is marked partial;
//   - available == 0: the line is dropped entirely.
//
// Returns whether any line item remains. An order left with zero line items
// is considered cancelled by the fulfillment engine.
func (o *Order) ReconcileAvailability(ledger *stock.Ledger) bool {
	for p, required := range o.current {
		available := ledger.Available(p)
		switch {
		case available >= required:
			// fully satisfiable, keep the line
		case available > 0:
			o.current[p] = available
			o.partial = true
		default:
			delete(o.current, p)
		}
	}

	return len(o.current) > 0
}

func copyItems(items map[product.Product]int) map[product.Product]int {
	out := make(map[product.Product]int, len(items))
	for p, qty := range items {
		out[p] = qty
	}
	return out
}
