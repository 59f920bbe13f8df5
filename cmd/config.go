package cmd

// Config carries the raw environment configuration: the warehouse setup
// (location, clock start, product line, supplier, shifts) and the scenario
// timeline replayed by the driver. All values arrive as strings and are
// parsed where they are consumed.
type Config struct {
	HTTPPort  string
	AutoCycle string

	WarehouseX string
	WarehouseY string
	ClockStart string

	ProductName  string
	ProductPrice string

	SupplierName string
	// SupplierCap is the total number of units the supplier can ever
	// deliver; empty means unlimited.
	SupplierCap string

	PickerShiftStart  string
	PickerShiftEnd    string
	CourierShiftStart string
	CourierShiftEnd   string

	CustomerX     string
	CustomerY     string
	OrderUnits    string
	OrderSubmitAt string

	SupplyAmount string
	SupplyAt     string

	// CycleTimes lists the simulated instants at which the driver runs a
	// fulfillment cycle, comma separated, in timeline order.
	CycleTimes string
}
