// SPDX-License-Identifier: MIT
// Package: qweave/engine
//
// engine.go — the Engine type and the generic topology walk.
//
// Contract:
//   • One Hadamard per Prep slot, one ControlledNot per Edge, in the
//     topology's order; then one symbolic record per unit, anchored at
//     the unit's Anchor slot.
//   • Slot indices are validated against the supplied slice before
//     use; ErrSlotOutOfRange aborts the walk. Mutations already made
//     stand.
// Determinism: a given topology and qubit slice always replays the
// same gate sequence.

package engine

import (
	"fmt"

	"github.com/qweave/qweave/amplitude"
	"github.com/qweave/qweave/event"
	"github.com/qweave/qweave/gates"
	"github.com/qweave/qweave/qubit"
	"github.com/qweave/qweave/topology"
)

// Engine walks topologies over live qubits through one gate catalog.
// The zero value is not usable; construct with New.
type Engine[A, S any] struct {
	cat *gates.Catalog[A, S]
	sc  amplitude.ScalarOps[S]
	rec event.Recorder
}

// New builds an Engine over the given catalog and scalar backend. A
// nil recorder falls back to event.Nop. Nil catalog or scalar backend
// is constructor misuse and panics.
func New[A, S any](cat *gates.Catalog[A, S], sc amplitude.ScalarOps[S], rec event.Recorder) *Engine[A, S] {
	if cat == nil {
		panic("engine.New: nil gate catalog")
	}
	if sc == nil {
		panic("engine.New: nil scalar backend")
	}
	if rec == nil {
		rec = event.Nop{}
	}

	return &Engine[A, S]{cat: cat, sc: sc, rec: rec}
}

// unitMessages maps pattern tags to the message each completed unit
// records.
var unitMessages = map[string]string{
	topology.TagFlower:    "Flower of Life pattern entangled",
	topology.TagMetatron:  "Metatron’s Cube geometry entangled",
	topology.TagE8Group:   "E8 8-node full entanglement",
	topology.TagTriangle:  "Triangle lattice formed",
	topology.TagHexagon:   "Hexagonal ring lattice formed",
	topology.TagHexRhombi: "Hexagon tessellated into 3 rhombi",
	topology.TagTriTess:   "Triangle entangle",
	topology.TagHexTess:   "Hexagon ring entangle",
	topology.TagHexRhomT:  "Hex→3 rhombi tessellate",

	topology.TagFCC:         "FCC lattice entangled",
	topology.TagHCP:         "HCP lattice entangled",
	topology.TagE8Projected: "Projected E8 lattice entanglement",
	topology.TagD4:          "D4 lattice entangled in 4D",
	topology.TagB5:          "5D B5 lattice entangled",
	topology.TagE5Projected: "Projected E5 root lattice entanglement",
}

// Apply walks the topology over the qubit slice: Hadamard on every
// Prep slot, ControlledNot on every Edge, one record per unit. The
// first failure aborts and propagates.
func (e *Engine[A, S]) Apply(t topology.Topology, qs []*qubit.Qubit[A]) error {
	msg, ok := unitMessages[t.Pattern]
	if !ok {
		msg = "pattern applied"
	}

	for _, u := range t.Units {
		for _, i := range u.Prep {
			q, err := slot(t.Pattern, qs, i)
			if err != nil {
				return err
			}
			if err := e.cat.Hadamard(q); err != nil {
				return fmt.Errorf("%s: prep slot %d: %w", t.Pattern, i, err)
			}
		}

		for _, ed := range u.Edges {
			ctrl, err := slot(t.Pattern, qs, ed.Ctrl)
			if err != nil {
				return err
			}
			target, err := slot(t.Pattern, qs, ed.Target)
			if err != nil {
				return err
			}
			if err := e.cat.ControlledNot(ctrl, target); err != nil {
				return fmt.Errorf("%s: edge %d→%d: %w", t.Pattern, ed.Ctrl, ed.Target, err)
			}
		}

		anchor, err := slot(t.Pattern, qs, u.Anchor)
		if err != nil {
			return err
		}
		e.rec.Record(t.Pattern, anchor.ID, anchor.Tag, msg)
	}

	return nil
}

// slot bounds-checks a topology index against the qubit slice.
func slot[A any](pattern string, qs []*qubit.Qubit[A], i int) (*qubit.Qubit[A], error) {
	if i < 0 || i >= len(qs) {
		return nil, fmt.Errorf("%s: slot %d of %d: %w", pattern, i, len(qs), ErrSlotOutOfRange)
	}

	return qs[i], nil
}
