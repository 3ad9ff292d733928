// Package topology generates entanglement adjacency structures: which
// qubit slots get a superposition preparation and which ordered pairs
// get a controlled coupling. Generators are pure functions over counts
// or coordinates; they never touch amplitudes and never log. The
// engine package walks the result and applies the actual gates.
//
// The package offers the following key components:
//
//   - Edge, Unit, Topology: ephemeral index structures (Prep lists and
//     directed Ctrl→Target edges), owned by the caller.
//   - Primitive builders: Star, Ring, Complete, Tessellation.
//   - Named sacred-geometry patterns: FlowerOfLife, MetatronCube,
//     E8Group, TriangularLattice, HexagonalLattice, HexRhombiLattice,
//     and the tessellated variants.
//   - EpsilonNeighbor: all-pairs proximity edges over 3–5 dimensional
//     coordinates, squared distances only.
//   - ByName: dispatch from a pattern name to its generator.
//
// Guarantees:
//
//   - Edge order is deterministic and fixed per pattern; two calls with
//     the same inputs produce identical topologies.
//   - Minimum-count violations yield ErrTooFewQubits before any
//     meaningful allocation.
//   - No square roots anywhere: proximity compares squared distance
//     against squared epsilon, inclusively.
package topology
