// Package amplitude defines the dual complex-amplitude algebra: one
// operation set, two interchangeable backends.
//
// The package offers the following key components:
//
//   - Ops[A, S]: the algebra every gate is written against exactly once.
//     A is the amplitude type, S the backend scalar type.
//   - Float: Ops[complex128, float64] over native floating point, for
//     contexts with transcendental support.
//   - Fixed: Ops[fixedpoint.Complex, fixedpoint.Value] over the Q32.32
//     kernel, for integer-native contexts.
//   - ScalarOps[S]: the scalar subset (add/sub/mul/square/compare) used
//     by geometric topology generators for squared distances.
//   - FloatToFixed / FixedToFloat: boundary interconversion.
//
// Guarantees:
//
//   - No gate or topology code branches on the backend; the interface is
//     the only coupling point.
//   - Multiplication by the imaginary unit (MulI) is the direct
//     (re, im) → (−im, re) rotation in both backends, never a general
//     complex multiply.
//   - ControlActive compares magnitude-squared strictly against the
//     shared 0.25 threshold; no square root in either backend.
//   - Normalization is never assumed or enforced; magnitudes may drift.
package amplitude
