// SPDX-License-Identifier: MIT
// Package: qweave/topology
//
// errors.go — sentinel errors for topology generation.
//
// Error policy (explicit and strict):
//   • Only sentinel variables are exposed; callers branch with
//     errors.Is(err, ErrX), never by string comparison.
//   • Generators validate counts and dimensions before building
//     anything; a failed call allocates nothing the caller keeps.

package topology

import "errors"

// ErrTooFewQubits indicates the requested pattern needs more qubit
// slots than the caller supplied. Each named pattern documents its
// minimum.
var ErrTooFewQubits = errors.New("topology: too few qubits for pattern")

// ErrBadDimension indicates a coordinate dimensionality outside the
// supported 3..5 range, or a coordinate row shorter than the declared
// dimension.
var ErrBadDimension = errors.New("topology: unsupported coordinate dimension")

// ErrUnknownPattern indicates a pattern name ByName does not recognize.
var ErrUnknownPattern = errors.New("topology: unknown pattern name")
