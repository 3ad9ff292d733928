// SPDX-License-Identifier: MIT
// Package: qweave/gates
//
// errors.go — sentinel errors for the gate catalog.
//
// Error policy (explicit and strict):
//   • Only sentinel variables are exposed; callers branch with
//     errors.Is(err, ErrX), never by string comparison.
//   • Implementations attach the gate tag as context via %w wrapping.
//   • Validation happens before any amplitude mutation.
//   • Gate math itself never produces an error.

package gates

import "errors"

// ErrNilQubit indicates a null/absent qubit operand. It is the
// "missing operand" signal: the single gate call is aborted and no
// amplitude has been touched.
// Usage: if errors.Is(err, ErrNilQubit) { /* fix the call */ }.
var ErrNilQubit = errors.New("gates: nil qubit operand")

// ErrUnknownAxis indicates the axis selector passed to Rotate is not
// one of 'X', 'Y', 'Z' (case-insensitive).
var ErrUnknownAxis = errors.New("gates: unknown rotation axis")

// ErrNilGateFn indicates the caller-selected elementary gate passed to
// Deutsch is nil.
var ErrNilGateFn = errors.New("gates: nil gate function")
