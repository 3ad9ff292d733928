// SPDX-License-Identifier: MIT
// Package: qweave/engine
//
// lattice.go — geometric entry points over positioned qubits.
//
// Contract:
//   • Each lattice carries its own minimum site count, dimensionality
//     and interaction radius; sites within the radius (inclusive, by
//     squared distance) get one control edge, lower index controlling.
//   • All sites are prepared regardless of adjacency; an isolated site
//     still enters superposition.

package engine

import (
	"fmt"

	"github.com/qweave/qweave/qubit"
	"github.com/qweave/qweave/topology"
)

// Per-lattice geometry parameters: dimensionality, minimum site count,
// interaction radius.
const (
	fccDim, fccMin, fccEps     = 3, 14, 1.01
	hcpDim, hcpMin, hcpEps     = 3, 17, 1.01
	e8pDim, e8pMin, e8pEps     = 3, 30, 1.00
	d4Dim, d4Min, d4Eps        = 4, 24, 1.01
	b5Dim, b5Min, b5Eps        = 5, 32, 1.00
	e5pDim, e5pMin, e5pEps     = 5, 40, 1.05
)

// FCCLattice entangles face-centered-cubic sites: 3D, at least 14
// sites, radius 1.01.
func (e *Engine[A, S]) FCCLattice(ps []qubit.Position[A, S]) error {
	return e.applyGeometric(topology.TagFCC, ps, fccDim, fccMin, fccEps)
}

// HCPLattice entangles hexagonal-close-packed sites: 3D, at least 17
// sites, radius 1.01.
func (e *Engine[A, S]) HCPLattice(ps []qubit.Position[A, S]) error {
	return e.applyGeometric(topology.TagHCP, ps, hcpDim, hcpMin, hcpEps)
}

// E8ProjectedLattice entangles 3D projections of E8 roots: at least 30
// sites, radius 1.00.
func (e *Engine[A, S]) E8ProjectedLattice(ps []qubit.Position[A, S]) error {
	return e.applyGeometric(topology.TagE8Projected, ps, e8pDim, e8pMin, e8pEps)
}

// D4Lattice entangles 4D D4 root sites: at least 24 sites, radius
// 1.01.
func (e *Engine[A, S]) D4Lattice(ps []qubit.Position[A, S]) error {
	return e.applyGeometric(topology.TagD4, ps, d4Dim, d4Min, d4Eps)
}

// B5Lattice entangles 5D B5 sites: at least 32 sites, radius 1.00.
func (e *Engine[A, S]) B5Lattice(ps []qubit.Position[A, S]) error {
	return e.applyGeometric(topology.TagB5, ps, b5Dim, b5Min, b5Eps)
}

// E5ProjectedLattice entangles 5D projections of E5 roots: at least 40
// sites, radius 1.05.
func (e *Engine[A, S]) E5ProjectedLattice(ps []qubit.Position[A, S]) error {
	return e.applyGeometric(topology.TagE5Projected, ps, e5pDim, e5pMin, e5pEps)
}

func (e *Engine[A, S]) applyGeometric(pattern string, ps []qubit.Position[A, S], dim, min int, eps float64) error {
	coords := make([][]S, len(ps))
	qs := make([]*qubit.Qubit[A], len(ps))
	for i, p := range ps {
		if p.Qubit == nil {
			return fmt.Errorf("%s: site %d: %w", pattern, i, ErrNilSite)
		}
		coords[i] = p.Coords
		qs[i] = p.Qubit
	}

	t, err := topology.Geometric(pattern, e.sc, coords, dim, min, eps)
	if err != nil {
		return err
	}

	return e.Apply(t, qs)
}
