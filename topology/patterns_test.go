package topology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qweave/qweave/topology"
)

// TestFlowerOfLife_MinimumCount verifies 18 slots reject and 19 build.
func TestFlowerOfLife_MinimumCount(t *testing.T) {
	_, err := topology.FlowerOfLife(18)
	assert.ErrorIs(t, err, topology.ErrTooFewQubits, "18 slots must reject")

	top, err := topology.FlowerOfLife(19)
	require.NoError(t, err, "19 slots must build")
	require.Len(t, top.Units, 1, "single unit")
	assert.Equal(t, topology.TagFlower, top.Pattern, "pattern tag")
	assert.Equal(t, 19, top.PrepCount(), "all 19 slots prepared")
	assert.Equal(t, 18+6+12, top.EdgeCount(), "star + inner ring + outer ring")
}

// TestFlowerOfLife_EdgeOrder pins the load-bearing edge walk: star
// first, then the inner ring with its modular successor, then the
// outer ring closure.
func TestFlowerOfLife_EdgeOrder(t *testing.T) {
	top, err := topology.FlowerOfLife(19)
	require.NoError(t, err)
	edges := top.Units[0].Edges

	assert.Equal(t, topology.Edge{Ctrl: 0, Target: 1}, edges[0], "star starts at 0→1")
	assert.Equal(t, topology.Edge{Ctrl: 0, Target: 18}, edges[17], "star ends at 0→18")
	assert.Equal(t, topology.Edge{Ctrl: 1, Target: 2}, edges[18], "inner ring begins 1→2")
	assert.Equal(t, topology.Edge{Ctrl: 6, Target: 1}, edges[23], "inner ring wraps 6→1")
	assert.Equal(t, topology.Edge{Ctrl: 7, Target: 8}, edges[24], "outer ring begins 7→8")
	assert.Equal(t, topology.Edge{Ctrl: 18, Target: 7}, edges[35], "outer ring closes 18→7")
}

// TestMetatronCube_Shape verifies the star plus the six spokes.
func TestMetatronCube_Shape(t *testing.T) {
	_, err := topology.MetatronCube(12)
	assert.ErrorIs(t, err, topology.ErrTooFewQubits, "12 slots must reject")

	top, err := topology.MetatronCube(13)
	require.NoError(t, err)
	assert.Equal(t, 13, top.PrepCount(), "all 13 slots prepared")
	assert.Equal(t, 12+6, top.EdgeCount(), "star plus spokes")

	edges := top.Units[0].Edges
	assert.Equal(t, topology.Edge{Ctrl: 1, Target: 7}, edges[12], "first spoke 1→7")
	assert.Equal(t, topology.Edge{Ctrl: 6, Target: 12}, edges[17], "last spoke 6→12")
}

// TestE8Group_CompleteBothDirections verifies 56 directed edges.
func TestE8Group_CompleteBothDirections(t *testing.T) {
	_, err := topology.E8Group(7)
	assert.ErrorIs(t, err, topology.ErrTooFewQubits, "7 slots must reject")

	top, err := topology.E8Group(8)
	require.NoError(t, err)
	assert.Equal(t, 8, top.PrepCount(), "all 8 slots prepared")
	assert.Equal(t, 56, top.EdgeCount(), "8·7 directed edges")

	edges := top.Units[0].Edges
	assert.Equal(t, topology.Edge{Ctrl: 0, Target: 1}, edges[0], "pair (0,1) forward")
	assert.Equal(t, topology.Edge{Ctrl: 1, Target: 0}, edges[1], "pair (0,1) backward follows")
}

// TestTriangularLattice_PrepOnlyFirst verifies the asymmetric prep.
func TestTriangularLattice_PrepOnlyFirst(t *testing.T) {
	top, err := topology.TriangularLattice(3)
	require.NoError(t, err)

	assert.Equal(t, []int{0}, top.Units[0].Prep, "only the first slot is prepared")
	assert.Equal(t, []topology.Edge{{Ctrl: 0, Target: 1}, {Ctrl: 1, Target: 2}, {Ctrl: 2, Target: 0}},
		top.Units[0].Edges, "directed 3-cycle")
}

// TestHexRhombiLattice_CenterUnprepared verifies the center slot takes
// no preparation and anchors the record.
func TestHexRhombiLattice_CenterUnprepared(t *testing.T) {
	top, err := topology.HexRhombiLattice(7)
	require.NoError(t, err)

	unit := top.Units[0]
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, unit.Prep, "outer ring prepared, center skipped")
	assert.Equal(t, 0, unit.Anchor, "record anchors at the center")
	assert.Equal(t, 6+12, len(unit.Edges), "star plus rhombi walk")
	assert.Equal(t, topology.Edge{Ctrl: 0, Target: 1}, unit.Edges[0], "star first")
	assert.Equal(t, topology.Edge{Ctrl: 1, Target: 0}, unit.Edges[17], "closing rhombus edge 1→center")
}

// TestTessellations_GroupingAndRemainder verifies group slicing drops
// the remainder.
func TestTessellations_GroupingAndRemainder(t *testing.T) {
	tri, err := topology.TessellatedTriangles(10)
	require.NoError(t, err)
	assert.Len(t, tri.Units, 3, "10/3 full triangles, remainder dropped")
	assert.Equal(t, 6, tri.Units[2].Anchor, "third group based at slot 6")

	hex, err := topology.TessellatedHexagons(13)
	require.NoError(t, err)
	assert.Len(t, hex.Units, 2, "13/6 full hexagons")
	assert.Equal(t, []int{6, 7, 8, 9, 10, 11}, hex.Units[1].Prep, "second group's prep slots")

	rhombi, err := topology.TessellatedHexRhombi(14)
	require.NoError(t, err)
	assert.Len(t, rhombi.Units, 2, "14/7 full rhombi units")
	assert.Equal(t, 7, rhombi.Units[1].Anchor, "second unit anchors at its center")

	_, err = topology.TessellatedTriangles(2)
	assert.ErrorIs(t, err, topology.ErrTooFewQubits, "below one full group must reject")
}

// TestByName_Dispatch verifies the tag dispatch and the unknown-name
// error.
func TestByName_Dispatch(t *testing.T) {
	top, err := topology.ByName(topology.TagHexagon, 6)
	require.NoError(t, err, "known tag dispatches")
	assert.Equal(t, topology.TagHexagon, top.Pattern, "pattern carried through")

	_, err = topology.ByName("MOEBIUS", 100)
	assert.ErrorIs(t, err, topology.ErrUnknownPattern, "unknown tag must reject")

	_, err = topology.ByName(topology.TagFlower, 5)
	assert.ErrorIs(t, err, topology.ErrTooFewQubits, "dispatch preserves count validation")
}

// TestPrimitives_Shapes verifies the exported builders directly.
func TestPrimitives_Shapes(t *testing.T) {
	assert.Len(t, topology.Star(5), 4, "star over n slots has n-1 edges")
	assert.Len(t, topology.Ring(10, 4), 4, "ring over k slots has k edges")
	assert.Equal(t, topology.Edge{Ctrl: 13, Target: 10}, topology.Ring(10, 4)[3], "ring wraps to base")
	assert.Len(t, topology.Complete(4), 12, "complete over n slots has n(n-1) edges")
}
