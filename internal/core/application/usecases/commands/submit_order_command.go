package commands

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrSubmitOrderCommandIsNotConstructed = errors.New(
		"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one order item is required")
)

// OrderItem is one line of a customer order: a product reference and how
// many units of it the customer wants.
type OrderItem struct {
	Name     string
	Price    float64
	Quantity int
}

// SubmitOrderCommand represents a request to place a customer order with a
// warehouse. The order enters the pending queue and is fulfilled by a later
// cycle.
//
// Example:
//
//	orderID, _ := kernel.NewID(kernel.TagOrder)
//	cmd, err := NewSubmitOrderCommand(orderID, warehouseID, customerLocation, []OrderItem{
//	    {Name: "flour", Price: 15, Quantity: 10},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewSubmitOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to submit order: %w", err)
//	}
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.ID
	warehouseID      kernel.ID
	customerLocation kernel.Location
	items            []OrderItem

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to place a new customer order.
// Validates that both identifiers and the customer location are valid and
// that the order carries at least one item with a positive quantity.
func NewSubmitOrderCommand(
	orderID kernel.ID,
	warehouseID kernel.ID,
	customerLocation kernel.Location,
	items []OrderItem,
) (SubmitOrderCommand, error) {
	orderCommand := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setWarehouseID(warehouseID),
		orderCommand.setCustomerLocation(customerLocation),
		orderCommand.setItems(items),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitOrderCommandIsNotConstructed if validation fails.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c SubmitOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// WarehouseID returns the identifier of the warehouse receiving the order.
func (c SubmitOrderCommand) WarehouseID() kernel.ID {
	return c.warehouseID
}

// CustomerLocation returns the delivery destination on the grid.
func (c SubmitOrderCommand) CustomerLocation() kernel.Location {
	return c.customerLocation
}

// Items returns the order's line items.
func (c SubmitOrderCommand) Items() []OrderItem {
	items := make([]OrderItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *SubmitOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitOrderCommand) setWarehouseID(warehouseID kernel.ID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	c.warehouseID = warehouseID
	return nil
}

func (c *SubmitOrderCommand) setCustomerLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.customerLocation = location
	return nil
}

func (c *SubmitOrderCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return fmt.Errorf("item %q: quantity must be greater than 0, got %d", item.Name, item.Quantity)
		}
	}

	c.items = make([]OrderItem, len(items))
	copy(c.items, items)
	return nil
}
