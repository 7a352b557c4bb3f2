// Package enablers implements the per-project helpers a condition can
// delegate to. An enabler inspects the project once, on Init, and then
// answers Verify for individual paths from the state it captured.
//
// Every enabler answers false until it has been initialised. Init may run
// on a background goroutine while lookups are served: state is published
// atomically, so readers see either the empty state or the complete one.
//
// A terminal enabler decides the condition on its own when Verify is
// true. A non-terminal enabler only gates the rest of the condition.
package enablers
