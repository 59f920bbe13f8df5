// Package warehouse provides the fulfillment engine aggregate.
//
// The Warehouse owns the stock ledger, the pending order queue and the
// rosters of suppliers, pickers and couriers. Its central operation is
// CompleteOrders, which drains the queue and walks every order through
// shortfall detection, restocking, availability reconciliation, assembly
// and delivery, emitting a structured Event for each observable step.
//
// The engine is single-threaded by design: one cycle runs to completion
// before the next begins, and all elapsed simulated time is a side effect
// of the work performed within the cycle. Orders that cannot make progress
// are re-queued rather than dropped, so the queue converges over repeated
// cycles as restocks land and shifts open.
package warehouse
