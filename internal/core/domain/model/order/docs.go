// Package order provides the Order aggregate and its lifecycle state
// machine for the warehouse fulfillment simulation.
//
// The package includes:
//   - Order: the aggregate root carrying the immutable requested line items,
//     the mutable working set, the captured warehouse/customer positions and
//     the courier assignment
//   - Status: a state machine enforcing Created -> Processing -> Delivered
//
// Key business rules:
//   - Quantities are derived from the submitted unit list (duplicates count)
//   - Current line items only ever shrink, via dry-run reconciliation
//     against the stock ledger
//   - A stalled order can be reset to Created for another fulfillment
//     attempt; Delivered is terminal
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
