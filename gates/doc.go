// Package gates implements the elementary gate catalog over the dual
// amplitude algebra. Every entry is written exactly once against
// amplitude.Ops and therefore runs unchanged on both the floating and
// the fixed-point backend.
//
// The package offers the following key components:
//
//   - Catalog[A, S]: the gate set, bound to one Ops backend and one
//     event.Recorder at construction.
//   - Single-qubit entries: Identity, GlobalPhase, PauliX/Y/Z, PhaseS,
//     SqrtX, Hadamard, PhaseShift, PhaseGate, RotateX/Y/Z, Rotate(axis).
//   - Two-qubit entries: the controlled family (ControlledNot,
//     AntiControlledNot, ControlledZ, ControlledPhase, ControlledPhaseS,
//     ControlledV), the swap family (Swap, ImaginarySwap, SwapPow,
//     SqrtSwap, SqrtISwap), the couplings (XX, YY, ZZ, XYZEntangle,
//     EchoCR, Givens, FermionSim), and the composites (CoreEntangle,
//     Berkeley, Magic, Sycamore, CZSwap, Deutsch).
//   - Three-qubit entries: DoubleControlledNot, Fredkin, Dagwood,
//     Margolis, Peres, Barenco, ControlledFermionSwap.
//
// Guarantees:
//
//   - A nil operand aborts the single gate call with ErrNilQubit before
//     any mutation; gate math itself never fails (all divisors are
//     compile-time constants).
//   - Controlled entries decide on magnitude-squared strictly above the
//     shared 0.25 threshold and always record either the applied or the
//     distinguishable no-action message.
//   - One symbolic record per gate call, through the injected Recorder.
//
// Semantic note: single-qubit entries act on one scalar amplitude, the
// literal semantics of the ancestral implementation (Pauli-X is a
// conjugation, Hadamard a pure 1/√2 scale). This is intentionally not
// textbook gate action on a two-level state vector; there is no second
// basis amplitude in this model.
package gates
