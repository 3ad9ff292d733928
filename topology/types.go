// SPDX-License-Identifier: MIT
// Package: qweave/topology
//
// types.go — the index structures every generator produces.
//
// Contract:
//   • Edge is directed: Ctrl is the control slot, Target the acted-on
//     slot. Undirected couplings appear as two edges.
//   • A Unit is one application batch: its Prep slots are prepared
//     first, then its Edges coupled in order, then one symbolic record
//     is emitted for the whole unit.
//   • Topologies are transient; the generator allocates, the caller
//     owns, nothing is cached.

package topology

// Edge is one directed control→target coupling between qubit slots.
type Edge struct {
	Ctrl   int
	Target int
}

// Unit is one preparation-and-coupling batch. Prep lists the slots
// receiving a superposition preparation, in order; Edges lists the
// couplings applied afterwards, in order. Anchor is the slot whose
// identity the unit's symbolic record carries (the pattern's root:
// slot 0, a group base, a rhombi center).
type Unit struct {
	Prep   []int
	Edges  []Edge
	Anchor int
}

// Topology is a named pattern instantiated over a concrete slot count:
// the Pattern tag (emitted with the symbolic record) and the ordered
// Units to apply.
type Topology struct {
	Pattern string
	Units   []Unit
}

// Pattern tags, emitted verbatim by the applicator.
const (
	TagFlower    = "FLOWER"
	TagMetatron  = "METATRON"
	TagE8Group   = "E8_GROUP"
	TagTriangle  = "TRI_LATTICE"
	TagHexagon   = "HEX_LATTICE"
	TagHexRhombi = "HEX_RHOMBI"
	TagTriTess   = "TRI_TESS"
	TagHexTess   = "HEX_TESS"
	TagHexRhomT  = "HEX_RHOM_T"

	TagFCC         = "FCC_3D"
	TagHCP         = "HCP_3D"
	TagE8Projected = "E8_PROJECTED"
	TagD4          = "D4_LATTICE"
	TagB5          = "B5_LATTICE"
	TagE5Projected = "E5_PROJECTED"
)

// EdgeCount reports the total number of directed edges across all
// units.
func (t Topology) EdgeCount() int {
	n := 0
	for _, u := range t.Units {
		n += len(u.Edges)
	}

	return n
}

// PrepCount reports the total number of preparation slots across all
// units.
func (t Topology) PrepCount() int {
	n := 0
	for _, u := range t.Units {
		n += len(u.Prep)
	}

	return n
}
