// SPDX-License-Identifier: MIT
// Package: qweave/amplitude
//
// float.go — native floating-point backend.
//
// Contract:
//   • Float implements Ops[complex128, float64] with builtin complex
//     arithmetic and math.Sincos for FromPhase.
//   • FloatScalar implements ScalarOps[float64].
//   • Both types are zero-sized; the zero value is ready to use.

package amplitude

import "math"

// ThresholdSq is the uniform control threshold as magnitude-squared:
// a control amplitude counts as logical "1" when |a|² exceeds this.
// The fixed backend uses the same constant in Q32.32 (fixedpoint.Quarter).
const ThresholdSq = 0.25

// Float is the native floating-point amplitude backend.
type Float struct{}

// Make builds a complex128 from parts.
func (Float) Make(re, im float64) complex128 { return complex(re, im) }

// Re returns the real part.
func (Float) Re(a complex128) float64 { return real(a) }

// Im returns the imaginary part.
func (Float) Im(a complex128) float64 { return imag(a) }

// Conj returns the complex conjugate.
func (Float) Conj(a complex128) complex128 { return complex(real(a), -imag(a)) }

// Neg returns −a.
func (Float) Neg(a complex128) complex128 { return -a }

// MulI returns i·a as the direct quarter-turn (re, im) → (−im, re).
func (Float) MulI(a complex128) complex128 { return complex(-imag(a), real(a)) }

// Add returns a + b.
func (Float) Add(a, b complex128) complex128 { return a + b }

// Sub returns a − b.
func (Float) Sub(a, b complex128) complex128 { return a - b }

// Mul returns the complex product.
func (Float) Mul(a, b complex128) complex128 { return a * b }

// Scale returns a scaled by the real s.
func (Float) Scale(a complex128, s float64) complex128 { return a * complex(s, 0) }

// MagSq returns |a|² without a square root.
func (Float) MagSq(a complex128) float64 { return real(a)*real(a) + imag(a)*imag(a) }

// FromPhase returns e^(i·theta) via native trig.
func (Float) FromPhase(theta float64) complex128 {
	s, c := math.Sincos(theta)
	return complex(c, s)
}

// ControlActive reports |a|² > 0.25.
func (f Float) ControlActive(a complex128) bool { return f.MagSq(a) > ThresholdSq }

// AntiControlActive reports |a|² < 0.25.
func (f Float) AntiControlActive(a complex128) bool { return f.MagSq(a) < ThresholdSq }

// Halve returns theta/2.
func (Float) Halve(theta float64) float64 { return theta / 2 }

// SMul returns s·t.
func (Float) SMul(s, t float64) float64 { return s * t }

// FromFloat is the identity on the floating backend.
func (Float) FromFloat(f float64) float64 { return f }

// One returns 1.
func (Float) One() float64 { return 1 }

// Half returns 0.5.
func (Float) Half() float64 { return 0.5 }

// InvSqrt2 returns 1/√2.
func (Float) InvSqrt2() float64 { return 1 / math.Sqrt2 }

// HalfPi returns π/2.
func (Float) HalfPi() float64 { return math.Pi / 2 }

// FloatScalar is the float64 coordinate algebra for geometric topologies.
type FloatScalar struct{}

func (FloatScalar) Add(a, b float64) float64    { return a + b }
func (FloatScalar) Sub(a, b float64) float64    { return a - b }
func (FloatScalar) Mul(a, b float64) float64    { return a * b }
func (FloatScalar) Square(a float64) float64    { return a * a }
func (FloatScalar) LessEq(a, b float64) bool    { return a <= b }
func (FloatScalar) FromFloat(f float64) float64 { return f }
