// Package qubit defines the symbolic qubit and its geometric position.
//
// A Qubit carries an opaque 64-bit identity, a bounded human-readable
// tag, and exactly one complex amplitude whose concrete type depends on
// the selected amplitude backend. Qubits are created and owned by the
// caller; gates mutate the amplitude in place and never destroy them.
//
// A Position pairs a qubit with a 3-, 4- or 5-dimensional coordinate and
// is an immutable input to distance computation in the geometric
// topology generators.
package qubit
