// SPDX-License-Identifier: MIT
// Package: qweave/amplitude
//
// ops.go — the dual algebra interfaces.
//
// Contract:
//   • Ops[A, S] is implemented by exactly two backends (Float, Fixed);
//     gate code holds an Ops value and never inspects which one.
//   • All methods are pure: no hidden state, no allocation beyond the
//     returned value, no panics.
//   • FromPhase(theta) = cos(theta) + i·sin(theta) using whichever trig
//     the backend owns (native math vs the Q32.32 kernel).
//   • ControlActive / AntiControlActive implement the uniform control
//     threshold: magnitude-squared strictly above / below 0.25.

package amplitude

// Ops is the complex-amplitude algebra, polymorphic over the amplitude
// type A and the scalar type S. Every entry in the gate catalog is
// written once against this interface.
type Ops[A, S any] interface {
	// Make builds an amplitude from real and imaginary scalar parts.
	Make(re, im S) A
	// Re returns the real part.
	Re(a A) S
	// Im returns the imaginary part.
	Im(a A) S

	// Conj returns the complex conjugate.
	Conj(a A) A
	// Neg returns −a (both parts negated).
	Neg(a A) A
	// MulI returns i·a via the direct (re, im) → (−im, re) rotation.
	MulI(a A) A

	// Add returns a + b.
	Add(a, b A) A
	// Sub returns a − b.
	Sub(a, b A) A
	// Mul returns the full complex product a·b.
	Mul(a, b A) A
	// Scale returns a scaled by the real scalar s.
	Scale(a A, s S) A

	// MagSq returns |a|² (never the magnitude; no square root exists in
	// the fixed backend).
	MagSq(a A) S
	// FromPhase returns e^(i·theta).
	FromPhase(theta S) A

	// ControlActive reports whether a control amplitude counts as
	// logical "1": MagSq(a) > 0.25.
	ControlActive(a A) bool
	// AntiControlActive reports the strict complement used by the
	// anticontrol gate: MagSq(a) < 0.25.
	AntiControlActive(a A) bool

	// Halve returns theta/2 (used by the rotation gates).
	Halve(theta S) S
	// SMul returns the scalar product s·t in the backend's format.
	SMul(s, t S) S
	// FromFloat converts a float64 constant (a fixed gate angle such as
	// π/6) into the backend scalar. Runtime values never pass through
	// here; the fixed backend only sees compile-time decimal seeds,
	// mirroring how its Q32.32 constants are derived.
	FromFloat(f float64) S

	// One, Half, InvSqrt2 and HalfPi are the scalar constants the
	// catalog needs, in the backend's representation.
	One() S
	Half() S
	InvSqrt2() S
	HalfPi() S
}

// ScalarOps is the scalar subset used for coordinate arithmetic by the
// geometric topology generators: squared Euclidean distances compared
// against a squared radius, without square roots.
type ScalarOps[S any] interface {
	Add(a, b S) S
	Sub(a, b S) S
	Mul(a, b S) S
	Square(a S) S
	// LessEq reports a ≤ b (inclusive compare for the epsilon boundary).
	LessEq(a, b S) bool
	// FromFloat converts a float64 constant (an epsilon, a coordinate
	// seed) into the backend scalar.
	FromFloat(f float64) S
}
