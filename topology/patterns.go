// SPDX-License-Identifier: MIT
// Package: qweave/topology
//
// patterns.go — the named fixed patterns, each reproducing its
// ancestral edge order exactly.
//
// Contract:
//   • Every pattern validates its minimum slot count first and returns
//     ErrTooFewQubits wrapped with the pattern tag on violation.
//   • A pattern only ever touches its documented slot range; surplus
//     slots beyond the minimum are ignored (single-unit patterns) or
//     grouped (tessellations, remainder dropped).
//   • Edge order within a unit is fixed and load-bearing: the
//     applicator replays it verbatim.

package topology

import "fmt"

// FlowerOfLife builds the 19-node Flower of Life pattern: all 19 slots
// prepared, slot 0 starred to 1..18, the inner six-ring 1..6, and the
// outer twelve-ring 7..18.
func FlowerOfLife(count int) (Topology, error) {
	if count < 19 {
		return Topology{}, fmt.Errorf("%s: count %d: %w", TagFlower, count, ErrTooFewQubits)
	}

	edges := make([]Edge, 0, 18+6+12)
	edges = append(edges, Star(19)...)
	// Inner ring walks 1..6 with the source's (i%6)+1 successor.
	for i := 1; i <= 6; i++ {
		edges = append(edges, Edge{Ctrl: i, Target: (i % 6) + 1})
	}
	// Outer ring walks 7..18 and closes back to 7.
	for i := 7; i < 18; i++ {
		edges = append(edges, Edge{Ctrl: i, Target: i + 1})
	}
	edges = append(edges, Edge{Ctrl: 18, Target: 7})

	return Topology{
		Pattern: TagFlower,
		Units:   []Unit{{Prep: seq(0, 19), Edges: edges}},
	}, nil
}

// MetatronCube builds the 13-node Metatron's Cube pattern: all 13
// slots prepared, slot 0 starred to 1..12, plus the six i→i+6 spokes.
func MetatronCube(count int) (Topology, error) {
	if count < 13 {
		return Topology{}, fmt.Errorf("%s: count %d: %w", TagMetatron, count, ErrTooFewQubits)
	}

	edges := make([]Edge, 0, 12+6)
	edges = append(edges, Star(13)...)
	for i := 1; i <= 6; i++ {
		edges = append(edges, Edge{Ctrl: i, Target: i + 6})
	}

	return Topology{
		Pattern: TagMetatron,
		Units:   []Unit{{Prep: seq(0, 13), Edges: edges}},
	}, nil
}

// E8Group builds the fully connected 8-node pattern: all 8 slots
// prepared and both directed edges for every pair, 56 edges total.
func E8Group(count int) (Topology, error) {
	if count < 8 {
		return Topology{}, fmt.Errorf("%s: count %d: %w", TagE8Group, count, ErrTooFewQubits)
	}

	return Topology{
		Pattern: TagE8Group,
		Units:   []Unit{{Prep: seq(0, 8), Edges: Complete(8)}},
	}, nil
}

// TriangularLattice builds the three-node triangle: only the first slot
// prepared, then the directed 3-cycle 0→1→2→0.
func TriangularLattice(count int) (Topology, error) {
	if count < 3 {
		return Topology{}, fmt.Errorf("%s: count %d: %w", TagTriangle, count, ErrTooFewQubits)
	}

	return Topology{
		Pattern: TagTriangle,
		Units:   []Unit{{Prep: []int{0}, Edges: Ring(0, 3)}},
	}, nil
}

// HexagonalLattice builds the six-node ring: all six slots prepared,
// then the directed 6-cycle.
func HexagonalLattice(count int) (Topology, error) {
	if count < 6 {
		return Topology{}, fmt.Errorf("%s: count %d: %w", TagHexagon, count, ErrTooFewQubits)
	}

	return Topology{
		Pattern: TagHexagon,
		Units:   []Unit{{Prep: seq(0, 6), Edges: Ring(0, 6)}},
	}, nil
}

// HexRhombiLattice builds the center-and-six-ring rhombi pattern at
// slot base 0. Slots 1..6 are prepared (the center is not), each
// interleaved with its center star edge, followed by the rhombi walk.
func HexRhombiLattice(count int) (Topology, error) {
	if count < 7 {
		return Topology{}, fmt.Errorf("%s: count %d: %w", TagHexRhombi, count, ErrTooFewQubits)
	}

	return Topology{
		Pattern: TagHexRhombi,
		Units:   []Unit{hexRhombiUnit(0)},
	}, nil
}

// hexRhombiUnit builds one 7-slot rhombi unit rooted at base: outer
// slots base+1..base+6 prepared and starred to the center, then for
// each outer pair (i, i+1) the rhombus closure i→i+1→center, wrapping
// 6→1 last.
func hexRhombiUnit(base int) Unit {
	prep := seq(base+1, 6)

	edges := make([]Edge, 0, 6+12)
	for i := 1; i <= 6; i++ {
		edges = append(edges, Edge{Ctrl: base, Target: base + i})
	}
	for i := 1; i <= 5; i++ {
		edges = append(edges,
			Edge{Ctrl: base + i, Target: base + i + 1},
			Edge{Ctrl: base + i + 1, Target: base},
		)
	}
	edges = append(edges,
		Edge{Ctrl: base + 6, Target: base + 1},
		Edge{Ctrl: base + 1, Target: base},
	)

	return Unit{Prep: prep, Edges: edges, Anchor: base}
}

// TessellatedTriangles tiles count slots into 3-slot triangle units:
// each group prepares only its first slot, then couples the 3-cycle.
// One record per triangle.
func TessellatedTriangles(count int) (Topology, error) {
	units, err := Tessellation(count, 3, func(base int) Unit {
		return Unit{Prep: []int{base}, Edges: Ring(base, 3), Anchor: base}
	})
	if err != nil {
		return Topology{}, fmt.Errorf("%s: count %d: %w", TagTriTess, count, err)
	}

	return Topology{Pattern: TagTriTess, Units: units}, nil
}

// TessellatedHexagons tiles count slots into 6-slot hexagon rings, all
// six slots of each group prepared. One record per hexagon.
func TessellatedHexagons(count int) (Topology, error) {
	units, err := Tessellation(count, 6, func(base int) Unit {
		return Unit{Prep: seq(base, 6), Edges: Ring(base, 6), Anchor: base}
	})
	if err != nil {
		return Topology{}, fmt.Errorf("%s: count %d: %w", TagHexTess, count, err)
	}

	return Topology{Pattern: TagHexTess, Units: units}, nil
}

// TessellatedHexRhombi tiles count slots into 7-slot rhombi units. One
// record per unit.
func TessellatedHexRhombi(count int) (Topology, error) {
	units, err := Tessellation(count, 7, hexRhombiUnit)
	if err != nil {
		return Topology{}, fmt.Errorf("%s: count %d: %w", TagHexRhomT, count, err)
	}

	return Topology{Pattern: TagHexRhomT, Units: units}, nil
}

// ByName dispatches a pattern tag to its generator. Unknown names
// yield ErrUnknownPattern.
func ByName(name string, count int) (Topology, error) {
	switch name {
	case TagFlower:
		return FlowerOfLife(count)
	case TagMetatron:
		return MetatronCube(count)
	case TagE8Group:
		return E8Group(count)
	case TagTriangle:
		return TriangularLattice(count)
	case TagHexagon:
		return HexagonalLattice(count)
	case TagHexRhombi:
		return HexRhombiLattice(count)
	case TagTriTess:
		return TessellatedTriangles(count)
	case TagHexTess:
		return TessellatedHexagons(count)
	case TagHexRhomT:
		return TessellatedHexRhombi(count)
	default:
		return Topology{}, fmt.Errorf("%q: %w", name, ErrUnknownPattern)
	}
}
