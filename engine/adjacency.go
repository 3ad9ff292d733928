// SPDX-License-Identifier: MIT
// Package: qweave/engine
//
// adjacency.go — entry points for the count-based named patterns.
//
// Contract:
//   • Each entry generates its topology from the slice length, then
//     replays it through Apply. Count violations surface as
//     topology.ErrTooFewQubits before any gate runs.

package engine

import (
	"github.com/qweave/qweave/qubit"
	"github.com/qweave/qweave/topology"
)

// FlowerOfLife entangles the first 19 qubits in the Flower of Life
// pattern.
func (e *Engine[A, S]) FlowerOfLife(qs []*qubit.Qubit[A]) error {
	return e.applyNamed(topology.FlowerOfLife, qs)
}

// MetatronCube entangles the first 13 qubits in the Metatron's Cube
// pattern.
func (e *Engine[A, S]) MetatronCube(qs []*qubit.Qubit[A]) error {
	return e.applyNamed(topology.MetatronCube, qs)
}

// E8Group fully entangles the first 8 qubits, both directions per
// pair.
func (e *Engine[A, S]) E8Group(qs []*qubit.Qubit[A]) error {
	return e.applyNamed(topology.E8Group, qs)
}

// TriangularLattice couples the first three qubits into the directed
// triangle.
func (e *Engine[A, S]) TriangularLattice(qs []*qubit.Qubit[A]) error {
	return e.applyNamed(topology.TriangularLattice, qs)
}

// HexagonalLattice couples the first six qubits into the directed
// hexagon ring.
func (e *Engine[A, S]) HexagonalLattice(qs []*qubit.Qubit[A]) error {
	return e.applyNamed(topology.HexagonalLattice, qs)
}

// HexRhombiLattice couples the first seven qubits into the
// center-and-ring rhombi pattern.
func (e *Engine[A, S]) HexRhombiLattice(qs []*qubit.Qubit[A]) error {
	return e.applyNamed(topology.HexRhombiLattice, qs)
}

// TessellatedTriangles tiles the qubits into triangles, one record per
// triangle; remainder qubits are untouched.
func (e *Engine[A, S]) TessellatedTriangles(qs []*qubit.Qubit[A]) error {
	return e.applyNamed(topology.TessellatedTriangles, qs)
}

// TessellatedHexagons tiles the qubits into hexagon rings.
func (e *Engine[A, S]) TessellatedHexagons(qs []*qubit.Qubit[A]) error {
	return e.applyNamed(topology.TessellatedHexagons, qs)
}

// TessellatedHexRhombi tiles the qubits into 7-slot rhombi units.
func (e *Engine[A, S]) TessellatedHexRhombi(qs []*qubit.Qubit[A]) error {
	return e.applyNamed(topology.TessellatedHexRhombi, qs)
}

// ByName generates and applies a pattern by its tag.
func (e *Engine[A, S]) ByName(name string, qs []*qubit.Qubit[A]) error {
	t, err := topology.ByName(name, len(qs))
	if err != nil {
		return err
	}

	return e.Apply(t, qs)
}

func (e *Engine[A, S]) applyNamed(gen func(int) (topology.Topology, error), qs []*qubit.Qubit[A]) error {
	t, err := gen(len(qs))
	if err != nil {
		return err
	}

	return e.Apply(t, qs)
}
