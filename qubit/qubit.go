// SPDX-License-Identifier: MIT
// Package: qweave/qubit
//
// qubit.go — qubit and position types, generic over the amplitude
// backend.
//
// Contract:
//   • Qubit.Tag is bounded to TagMaxLen bytes; New truncates, it never
//     rejects. The tag is read-only to gates.
//   • Lifetime: callers own qubits; the engine mutates Amp in place and
//     never frees, copies or reorders them.
//   • Position coordinates are immutable inputs; generators only read
//     them.

package qubit

// TagMaxLen bounds the human-readable qubit tag, matching the wire
// format's fixed-width tag field.
const TagMaxLen = 32

// Qubit is a symbolic qubit carrying exactly one complex amplitude of
// backend type A (complex128 or fixedpoint.Complex).
type Qubit[A any] struct {
	// ID is an opaque caller-assigned identity.
	ID uint64
	// Tag is a bounded label, read-only to gates.
	Tag string
	// Amp is the single amplitude, mutated in place by gate application.
	Amp A
}

// New builds a qubit, truncating tag to TagMaxLen bytes.
func New[A any](id uint64, tag string, amp A) *Qubit[A] {
	if len(tag) > TagMaxLen {
		tag = tag[:TagMaxLen]
	}

	return &Qubit[A]{ID: id, Tag: tag, Amp: amp}
}

// Position pairs a qubit with an n-dimensional coordinate (n in 3..5)
// in the backend scalar type S. Used only by geometric topology
// generators; coordinates are never mutated.
type Position[A, S any] struct {
	Qubit  *Qubit[A]
	Coords []S
}
