package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrDeliverSupplyCommandIsNotConstructed = errors.New(
		"DeliverSupplyCommand must be created via NewDeliverSupplyCommand constructor",
	)
	ErrAmountIsInvalid = errors.New("amount must be greater than 0")
)

// DeliverSupplyCommand represents a direct supply delivery to a warehouse,
// outside the shortfall-driven restock path. Scenario drivers use it to
// stage stock at chosen simulated instants.
//
// Example:
//
//	cmd, err := NewDeliverSupplyCommand(warehouseID, supplierID, 100)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewDeliverSupplyCommandHandler(uowFactory)
//	delivered, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("supply delivery failed: %w", err)
//	}
//	fmt.Printf("%d units delivered\n", delivered)
type DeliverSupplyCommand struct { //nolint:recvcheck //using for validation
	warehouseID kernel.ID
	supplierID  kernel.ID
	amount      int

	guard guard.ConstructorGuard
}

// NewDeliverSupplyCommand creates a command for a direct supply delivery.
// Validates both identifiers and requires a positive amount.
func NewDeliverSupplyCommand(warehouseID, supplierID kernel.ID, amount int) (DeliverSupplyCommand, error) {
	supplyCommand := DeliverSupplyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		supplyCommand.setWarehouseID(warehouseID),
		supplyCommand.setSupplierID(supplierID),
		supplyCommand.setAmount(amount),
	); err != nil {
		return DeliverSupplyCommand{}, err
	}

	return supplyCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeliverSupplyCommandIsNotConstructed if validation fails.
func (c DeliverSupplyCommand) Validate() error {
	return c.guard.Validate(ErrDeliverSupplyCommandIsNotConstructed)
}

// WarehouseID returns the identifier of the receiving warehouse.
func (c DeliverSupplyCommand) WarehouseID() kernel.ID {
	return c.warehouseID
}

// SupplierID returns the identifier of the delivering supplier.
func (c DeliverSupplyCommand) SupplierID() kernel.ID {
	return c.supplierID
}

// Amount returns the requested delivery amount in units.
func (c DeliverSupplyCommand) Amount() int {
	return c.amount
}

func (c *DeliverSupplyCommand) setWarehouseID(warehouseID kernel.ID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	c.warehouseID = warehouseID
	return nil
}

func (c *DeliverSupplyCommand) setSupplierID(supplierID kernel.ID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}

	c.supplierID = supplierID
	return nil
}

func (c *DeliverSupplyCommand) setAmount(amount int) error {
	if amount <= 0 {
		return ErrAmountIsInvalid
	}

	c.amount = amount
	return nil
}
