// SPDX-License-Identifier: MIT
// Package: qweave/engine
//
// errors.go — sentinel errors for topology application.
//
// Error policy (explicit and strict):
//   • Only sentinel variables are exposed; callers branch with
//     errors.Is(err, ErrX), never by string comparison.
//   • Catalog and topology sentinels pass through unmodified; the
//     engine wraps them with the pattern tag only.

package engine

import "errors"

// ErrSlotOutOfRange indicates a topology references a qubit slot index
// beyond the supplied slice. The walk stops at the first such edge;
// earlier mutations stand.
var ErrSlotOutOfRange = errors.New("engine: topology slot out of range")

// ErrNilSite indicates a geometric lattice position carries no qubit.
// Sites are validated before any topology is built or gate applied.
var ErrNilSite = errors.New("engine: nil qubit at lattice site")
