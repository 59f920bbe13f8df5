package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrSettleSalariesCommandIsNotConstructed = errors.New(
		"SettleSalariesCommand must be created via NewSettleSalariesCommand constructor",
	)
)

// SettleSalariesCommand represents the end-of-scenario payroll run:
// every rostered worker is paid for their full shift window and moved to
// the shift-ended state.
//
// Example:
//
//	cmd, err := NewSettleSalariesCommand(warehouseID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewSettleSalariesCommandHandler(uowFactory)
//	payslips, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	for _, slip := range payslips {
//	    fmt.Printf("%s %s: %.0f\n", slip.Role, slip.WorkerID, slip.Amount)
//	}
type SettleSalariesCommand struct { //nolint:recvcheck //using for validation
	warehouseID kernel.ID

	guard guard.ConstructorGuard
}

// NewSettleSalariesCommand creates a command to settle all worker salaries
// of the given warehouse.
func NewSettleSalariesCommand(warehouseID kernel.ID) (SettleSalariesCommand, error) {
	if err := warehouseID.Validate(); err != nil {
		return SettleSalariesCommand{}, err
	}

	return SettleSalariesCommand{
		warehouseID: warehouseID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSettleSalariesCommandIsNotConstructed if validation fails.
func (c SettleSalariesCommand) Validate() error {
	return c.guard.Validate(ErrSettleSalariesCommandIsNotConstructed)
}

// WarehouseID returns the identifier of the warehouse to settle.
func (c SettleSalariesCommand) WarehouseID() kernel.ID {
	return c.warehouseID
}
