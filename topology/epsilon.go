// SPDX-License-Identifier: MIT
// Package: qweave/topology
//
// epsilon.go — proximity-based edge generation over coordinates.
//
// Contract:
//   • Squared distances only; the epsilon boundary is compared
//     inclusively against the squared radius.
//   • One directed edge per qualifying pair, lower index as control,
//     pairs in lexicographic order.
//   • Dimensions 3, 4 and 5 are supported; anything else is
//     ErrBadDimension, as is a coordinate row shorter than dim.
// Complexity: O(n² · dim).

package topology

import (
	"fmt"

	"github.com/qweave/qweave/amplitude"
)

// EpsilonNeighbor returns one edge per pair of coordinate rows whose
// squared Euclidean distance is at most epsSq. Distances accumulate
// per-axis squared differences through the scalar backend, so the
// fixed-point and floating generators share this one implementation.
func EpsilonNeighbor[S any](sc amplitude.ScalarOps[S], coords [][]S, dim int, epsSq S) ([]Edge, error) {
	if dim < 3 || dim > 5 {
		return nil, fmt.Errorf("dim %d: %w", dim, ErrBadDimension)
	}
	for i, row := range coords {
		if len(row) < dim {
			return nil, fmt.Errorf("row %d has %d coords, need %d: %w", i, len(row), dim, ErrBadDimension)
		}
	}

	var edges []Edge
	for i := 0; i < len(coords); i++ {
		for j := i + 1; j < len(coords); j++ {
			if sc.LessEq(distSq(sc, coords[i], coords[j], dim), epsSq) {
				edges = append(edges, Edge{Ctrl: i, Target: j})
			}
		}
	}

	return edges, nil
}

// distSq accumulates the squared per-axis differences over dim axes.
func distSq[S any](sc amplitude.ScalarOps[S], a, b []S, dim int) S {
	d2 := sc.Square(sc.Sub(a[0], b[0]))
	for k := 1; k < dim; k++ {
		d2 = sc.Add(d2, sc.Square(sc.Sub(a[k], b[k])))
	}

	return d2
}

// Geometric builds a proximity topology for one named lattice pattern:
// all slots prepared, epsilon edges in one unit. The epsilon is given
// as the interaction radius; its square is formed in the backend so
// the inclusive boundary lands exactly on representable values.
func Geometric[S any](pattern string, sc amplitude.ScalarOps[S], coords [][]S, dim, min int, eps float64) (Topology, error) {
	if len(coords) < min {
		return Topology{}, fmt.Errorf("%s: count %d: %w", pattern, len(coords), ErrTooFewQubits)
	}

	epsSq := sc.Square(sc.FromFloat(eps))
	edges, err := EpsilonNeighbor(sc, coords, dim, epsSq)
	if err != nil {
		return Topology{}, fmt.Errorf("%s: %w", pattern, err)
	}

	return Topology{
		Pattern: pattern,
		Units:   []Unit{{Prep: seq(0, len(coords)), Edges: edges}},
	}, nil
}
