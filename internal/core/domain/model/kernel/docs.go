// Package kernel provides core domain primitives for the warehouse
// fulfillment simulation. It implements fundamental building blocks
// following Domain-Driven Design principles that are used throughout the
// domain model.
//
// The package includes:
//   - ID: a category-tagged unique identifier value object
//   - Location: a value object representing coordinates on the simulation grid
//   - TimeOfDay: an immutable instant within a single day
//   - Clock: the injected virtual clock that is the sole timing source of a run
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. Value objects are
// immutable; the Clock is deliberately mutable and shared, and every
// component that reads or advances time receives it by reference.
package kernel
