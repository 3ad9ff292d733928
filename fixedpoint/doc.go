// Package fixedpoint implements Q32.32 fixed-point arithmetic for
// execution contexts without native floating-point or transcendental
// support. It is the integer backend beneath the amplitude algebra.
//
// The package offers the following key components:
//
//   - Scalar primitives:
//     – Mul:      the single multiplication primitive (128-bit widened
//       intermediate, shifted back to Q32.32). Every higher layer MUST
//       route products through Mul; two Q32.32 values are never
//       multiplied in native 64-bit width.
//     – Square:   Mul(a, a).
//     – Sin/Cos:  truncated Taylor approximations after reduction of the
//       angle into [-Pi, Pi].
//   - Packed complex type:
//     – Complex:  {Re, Im} pair of Q32.32 values.
//     – MulC, Conj, ExpI: complex product, conjugate, e^(i·theta).
//   - Boundary helpers:
//     – FromFloat / ToFloat for interconversion at the trust boundary.
//
// Guarantees:
//
//   - Determinism: all operations are pure integer arithmetic; identical
//     inputs yield identical outputs on every platform.
//   - Bounded trig error: |Sin(x) − sin(x)|, |Cos(x) − cos(x)| ≤ 1e-3
//     for x in [-Pi/2, Pi/2]; the omitted terms grow toward ±Pi. The
//     truncated series is the contract, not exact trigonometry.
//   - Mul is associative within ≤1 unit in the last place across chains
//     of up to four multiplications.
//   - Angle reduction terminates in O(1) for any finite input.
//
// See individual function documentation for detailed contracts.
package fixedpoint
