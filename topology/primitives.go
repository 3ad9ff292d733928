// SPDX-License-Identifier: MIT
// Package: qweave/topology
//
// primitives.go — the reusable edge-shape builders the named patterns
// are assembled from.
//
// Contract:
//   • Builders return bare edge slices in a fixed deterministic order;
//     pattern functions wrap them into Units.
//   • Builders do not validate counts; validation belongs to the
//     pattern functions that know their minimums.
// Complexity: Star/Ring O(n), Complete O(n²).

package topology

// Star pairs slot 0 with every slot 1..n-1, in index order.
func Star(n int) []Edge {
	edges := make([]Edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, Edge{Ctrl: 0, Target: i})
	}

	return edges
}

// Ring couples k consecutive slots starting at base with wraparound,
// each slot controlling its successor.
func Ring(base, k int) []Edge {
	edges := make([]Edge, 0, k)
	for i := 0; i < k; i++ {
		edges = append(edges, Edge{Ctrl: base + i, Target: base + (i+1)%k})
	}

	return edges
}

// Complete emits both directed edges for every unordered pair of the
// first n slots: (i,j) then (j,i), pairs in lexicographic order.
func Complete(n int) []Edge {
	edges := make([]Edge, 0, n*(n-1))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, Edge{Ctrl: i, Target: j})
			edges = append(edges, Edge{Ctrl: j, Target: i})
		}
	}

	return edges
}

// Tessellation slices count slots into contiguous groups of k
// (remainder slots are dropped) and builds one Unit per full group.
// The build callback receives the group's base slot index.
func Tessellation(count, k int, build func(base int) Unit) ([]Unit, error) {
	if count < k {
		return nil, ErrTooFewQubits
	}

	groups := count / k
	units := make([]Unit, 0, groups)
	for g := 0; g < groups; g++ {
		units = append(units, build(g*k))
	}

	return units, nil
}

// seq returns the index sequence base..base+k-1, the common Prep list.
func seq(base, k int) []int {
	idx := make([]int, k)
	for i := range idx {
		idx[i] = base + i
	}

	return idx
}
