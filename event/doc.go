// Package event defines the symbolic event sink the engine records into.
//
// The original design exposed a module-global logging function; here the
// sink is an injected collaborator so the core is testable without one.
//
// The package offers:
//
//   - Recorder: the fire-and-forget sink interface. The engine never
//     consumes a return value from it.
//   - Nop: discards everything (the default collaborator).
//   - Capture: retains records in memory, for tests.
//   - Sink: structured logging via an injected zerolog.Logger.
package event
