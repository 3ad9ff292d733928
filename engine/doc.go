// Package engine applies topology structures to live qubit slices:
// every preparation slot gets a Hadamard, every directed edge a
// controlled-NOT, then one symbolic record per unit anchored at the
// pattern's root qubit. It is the bridge between the pure generators
// in package topology and the amplitude-mutating catalog in package
// gates.
//
// The package offers the following key components:
//
//   - Engine[A, S]: the applicator, bound to one gate catalog, one
//     scalar backend, and one event recorder.
//   - Adjacency entry points: FlowerOfLife, MetatronCube, E8Group,
//     TriangularLattice, HexagonalLattice, HexRhombiLattice, and the
//     tessellated variants, over plain qubit slices.
//   - Geometric entry points: FCCLattice, HCPLattice,
//     E8ProjectedLattice, D4Lattice, B5Lattice, E5ProjectedLattice,
//     over positioned qubits with per-pattern interaction radii.
//   - Apply: the generic walk for caller-built topologies.
//
// Guarantees:
//
//   - Units are walked in generation order, edges in their fixed order;
//     runs are deterministic and repeatable.
//   - The first failure (out-of-range slot, nil qubit) aborts the walk
//     and propagates; amplitudes already mutated stay mutated. There is
//     no rollback.
//   - Exactly one record per completed unit, tagged with the pattern
//     name.
package engine
