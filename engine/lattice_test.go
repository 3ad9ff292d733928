package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qweave/qweave/engine"
	"github.com/qweave/qweave/gates"
	"github.com/qweave/qweave/qubit"
	"github.com/qweave/qweave/topology"
)

// chainSites lays n unit-amplitude qubits along one axis, one unit
// apart, padding the coordinate vector to dim.
func chainSites(n, dim int) []qubit.Position[complex128, float64] {
	ps := make([]qubit.Position[complex128, float64], n)
	for i := range ps {
		coords := make([]float64, dim)
		coords[0] = float64(i)
		ps[i] = qubit.Position[complex128, float64]{
			Qubit:  qubit.New[complex128](uint64(i), "site", complex(1, 0)),
			Coords: coords,
		}
	}

	return ps
}

// TestFCCLattice_ChainAdjacency verifies a unit-spaced chain links
// each consecutive pair under the 1.01 radius.
func TestFCCLattice_ChainAdjacency(t *testing.T) {
	eng, rec := newFloatEngine()
	ps := chainSites(14, 3)

	require.NoError(t, eng.FCCLattice(ps))

	assert.Equal(t, 14, countGate(rec, gates.TagHadamard), "every site prepared")
	assert.Equal(t, 13, countGate(rec, gates.TagCNot), "consecutive pairs only")
	assert.Equal(t, 1, countGate(rec, topology.TagFCC), "one lattice record")

	last, _ := rec.Last()
	assert.Equal(t, "FCC lattice entangled", last.Msg, "lattice message")
	assert.Equal(t, uint64(0), last.QubitID, "anchored at site 0")
}

// TestFCCLattice_MinimumSites verifies the 14-site floor.
func TestFCCLattice_MinimumSites(t *testing.T) {
	eng, rec := newFloatEngine()

	err := eng.FCCLattice(chainSites(13, 3))
	assert.ErrorIs(t, err, topology.ErrTooFewQubits, "13 sites must reject")
	assert.Empty(t, rec.Entries, "no gate before validation")
}

// TestLattices_MinimaAndDimensions tables the remaining lattice entry
// points.
func TestLattices_MinimaAndDimensions(t *testing.T) {
	eng, _ := newFloatEngine()

	cases := []struct {
		name  string
		apply func([]qubit.Position[complex128, float64]) error
		min   int
		dim   int
	}{
		{"HCP", eng.HCPLattice, 17, 3},
		{"E8Projected", eng.E8ProjectedLattice, 30, 3},
		{"D4", eng.D4Lattice, 24, 4},
		{"B5", eng.B5Lattice, 32, 5},
		{"E5Projected", eng.E5ProjectedLattice, 40, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.apply(chainSites(tc.min-1, tc.dim)), topology.ErrTooFewQubits,
				"below the minimum must reject")
			assert.NoError(t, tc.apply(chainSites(tc.min, tc.dim)),
				"at the minimum must apply")
		})
	}
}

// TestB5Lattice_InclusiveUnitBoundary verifies the 1.00 radius still
// includes unit-spaced neighbors (inclusive boundary).
func TestB5Lattice_InclusiveUnitBoundary(t *testing.T) {
	eng, rec := newFloatEngine()

	require.NoError(t, eng.B5Lattice(chainSites(32, 5)))
	assert.Equal(t, 31, countGate(rec, gates.TagCNot), "unit spacing sits exactly on ε=1.00")
}

// TestLattice_NilSite verifies site validation precedes the walk.
func TestLattice_NilSite(t *testing.T) {
	eng, rec := newFloatEngine()
	ps := chainSites(14, 3)
	ps[5].Qubit = nil

	err := eng.FCCLattice(ps)
	assert.ErrorIs(t, err, engine.ErrNilSite, "nil site must reject")
	assert.Empty(t, rec.Entries, "no gate before site validation")
}

// TestLattice_ShortCoordinates verifies dimension checking flows from
// the generator.
func TestLattice_ShortCoordinates(t *testing.T) {
	eng, _ := newFloatEngine()
	ps := chainSites(24, 3) // 3 coords where D4 needs 4

	err := eng.D4Lattice(ps)
	assert.ErrorIs(t, err, topology.ErrBadDimension, "short rows must reject")
}
