// SPDX-License-Identifier: MIT
// Package: qweave/gates
//
// catalog.go — the Catalog type and shared gate tags.
//
// Contract:
//   • Catalog binds one amplitude backend and one event recorder; it
//     holds no other state and is safe for concurrent callers operating
//     on disjoint qubits.
//   • Gate tags are the stable symbolic identifiers emitted with every
//     record; they form part of the observable contract.

package gates

import (
	"fmt"

	"github.com/qweave/qweave/amplitude"
	"github.com/qweave/qweave/event"
	"github.com/qweave/qweave/qubit"
)

// Gate tags, emitted verbatim in symbolic records.
const (
	TagIdentity    = "ID_GATE"
	TagGlobalPhase = "GPHASE"
	TagPauliX      = "PAULI_X"
	TagPauliY      = "PAULI_Y"
	TagPauliZ      = "PAULI_Z"
	TagPhaseS      = "PHASE_S"
	TagSqrtX       = "SQRT_X"
	TagHadamard    = "HADAMARD"
	TagPhaseShift  = "PHASE_SHIFT"
	TagPhaseGate   = "PHASE_GATE"
	TagRotateX     = "ROT_X"
	TagRotateY     = "ROT_Y"
	TagRotateZ     = "ROT_Z"
	TagRotate      = "ROTATE"

	TagCNot      = "CNOT"
	TagAntiCNot  = "ACNOT"
	TagCZ        = "CZ"
	TagCPhase    = "C-PHASE"
	TagCPhaseS   = "C-PHASE-S"
	TagCV        = "C_V"
	TagSwap      = "SWAP"
	TagImSwap    = "IMSWAP"
	TagSwapPow   = "SWAP^α"
	TagSqrtSwap  = "SQRT_SWAP"
	TagSqrtISwap = "√iSWAP"
	TagXX        = "XX"
	TagYY        = "YY"
	TagZZ        = "ZZ"
	TagXYZ       = "XYZ"
	TagEchoCR    = "ECHO_CR"
	TagGivens    = "GIVENS"
	TagFermion   = "FERMION_SIM"
	TagCoreEnt   = "CORE_EN"
	TagBerkeley  = "BERKELEY"
	TagMagic     = "MAGIC"
	TagSycamore  = "SYCAMORE"
	TagCZSwap    = "CZ_SWAP"
	TagDeutsch   = "DEUTSCH"

	TagDCNot   = "DCNOT"
	TagFredkin = "FREDKIN"
	TagDagwood = "DAGWOOD"
	TagMargolis = "MARGOLIS"
	TagPeres    = "PERES"
	TagBarenco  = "BARENCO"
	TagCFSwap   = "CF_SWAP"
)

// Catalog is the gate set bound to one amplitude backend and one event
// recorder. The zero value is not usable; construct with New.
type Catalog[A, S any] struct {
	ops amplitude.Ops[A, S]
	rec event.Recorder
}

// New builds a Catalog over the given backend. A nil recorder falls
// back to event.Nop so the catalog is usable without a logging sink.
func New[A, S any](ops amplitude.Ops[A, S], rec event.Recorder) *Catalog[A, S] {
	if rec == nil {
		rec = event.Nop{}
	}

	return &Catalog[A, S]{ops: ops, rec: rec}
}

// Ops exposes the backend for callers (the applicator) that need the
// scalar constants.
func (c *Catalog[A, S]) Ops() amplitude.Ops[A, S] { return c.ops }

// require validates every operand before any mutation and wraps
// ErrNilQubit with the gate tag for context.
func require[A any](tag string, qs ...*qubit.Qubit[A]) error {
	for _, q := range qs {
		if q == nil {
			return fmt.Errorf("%s: %w", tag, ErrNilQubit)
		}
	}

	return nil
}
