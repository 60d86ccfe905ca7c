// Package reactive provides the small state substrate the pagination layer is
// built on: mutable cells with synchronous change notification, and
// asynchronous derived computations whose results supersede each other in
// dependency order.
//
// The substrate is deliberately minimal:
//   - Cell[T]: a single mutable value with Get/Set and Watch subscriptions.
//     A Set fully applies and notifies every subscriber before it returns,
//     so dependents never observe a half-applied mutation.
//   - Computation[T]: an async derivation re-run on demand. Every run is
//     tagged with a generation; a run that finishes after a newer run has
//     started is discarded, so the last dependency change always wins
//     regardless of completion order.
//   - Result[T]: the observable state of a computation: Pending (optionally
//     carrying a provisional value), Resolved, or Failed.
//
// There is no dependency graph, no batching, and no scheduler: wiring cells
// to computations is the caller's job.
package reactive
