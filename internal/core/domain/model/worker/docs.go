// Package worker provides the shift-bound worker roles of the simulation.
//
// The package includes:
//   - Shift: an inclusive time-of-day window value object
//   - Status: NotWorking / Busy / ShiftEnded
//   - Worker: the capability interface shared by both roles
//   - Picker: assembles orders against the stock ledger (45s per unit)
//   - Courier: delivers orders and travels back (30s per distance unit
//     plus a fixed 120s delivery overhead)
//
// Role polymorphism is interface dispatch over two independent types with a
// shared embedded base; there is no inheritance hierarchy. Each role owns
// its cost formula; both advance the injected virtual clock as a side effect
// of completing work, which is the only way simulated time elapses outside
// the scenario driver.
package worker
