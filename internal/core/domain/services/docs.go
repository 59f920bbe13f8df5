// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the fulfillment simulation.
//
// The package includes:
//   - StaffDispatcher: first-fit selection of on-shift idle pickers and couriers
//
// Domain services hold logic that spans aggregates and does not naturally
// belong to a single root, following Domain-Driven Design principles.
package services
