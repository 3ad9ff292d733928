// SPDX-License-Identifier: MIT
// Package: qweave/amplitude
//
// fixed.go — Q32.32 integer backend.
//
// Contract:
//   • Fixed implements Ops[fixedpoint.Complex, fixedpoint.Value]; every
//     product goes through the kernel's widened Mul.
//   • FromPhase uses the kernel's truncated-Taylor Sin/Cos; the
//     approximation error budget is owned by fixedpoint (see its doc.go).
//   • The control threshold constant is fixedpoint.Quarter — the same
//     0.25 magnitude-squared cutoff as the float backend, in Q32.32.
//   • FixedScalar implements ScalarOps[fixedpoint.Value].

package amplitude

import "github.com/qweave/qweave/fixedpoint"

// Fixed is the Q32.32 fixed-point amplitude backend.
type Fixed struct{}

// Make builds a fixed-point complex from Q32.32 parts.
func (Fixed) Make(re, im fixedpoint.Value) fixedpoint.Complex {
	return fixedpoint.MakeComplex(re, im)
}

// Re returns the real part.
func (Fixed) Re(a fixedpoint.Complex) fixedpoint.Value { return a.Re }

// Im returns the imaginary part.
func (Fixed) Im(a fixedpoint.Complex) fixedpoint.Value { return a.Im }

// Conj returns the complex conjugate.
func (Fixed) Conj(a fixedpoint.Complex) fixedpoint.Complex { return fixedpoint.Conj(a) }

// Neg returns −a.
func (Fixed) Neg(a fixedpoint.Complex) fixedpoint.Complex {
	return fixedpoint.Complex{Re: -a.Re, Im: -a.Im}
}

// MulI returns i·a as the direct quarter-turn (re, im) → (−im, re).
func (Fixed) MulI(a fixedpoint.Complex) fixedpoint.Complex {
	return fixedpoint.Complex{Re: -a.Im, Im: a.Re}
}

// Add returns a + b.
func (Fixed) Add(a, b fixedpoint.Complex) fixedpoint.Complex {
	return fixedpoint.Complex{Re: a.Re + b.Re, Im: a.Im + b.Im}
}

// Sub returns a − b.
func (Fixed) Sub(a, b fixedpoint.Complex) fixedpoint.Complex {
	return fixedpoint.Complex{Re: a.Re - b.Re, Im: a.Im - b.Im}
}

// Mul returns the complex product through the widened kernel multiply.
func (Fixed) Mul(a, b fixedpoint.Complex) fixedpoint.Complex { return fixedpoint.MulC(a, b) }

// Scale returns a scaled by the Q32.32 real s.
func (Fixed) Scale(a fixedpoint.Complex, s fixedpoint.Value) fixedpoint.Complex {
	return fixedpoint.Complex{Re: fixedpoint.Mul(a.Re, s), Im: fixedpoint.Mul(a.Im, s)}
}

// MagSq returns |a|² in Q32.32.
func (Fixed) MagSq(a fixedpoint.Complex) fixedpoint.Value { return fixedpoint.MagSq(a) }

// FromPhase returns e^(i·theta) via the kernel's Taylor trig.
func (Fixed) FromPhase(theta fixedpoint.Value) fixedpoint.Complex {
	return fixedpoint.ExpI(theta)
}

// ControlActive reports |a|² > 0.25 in Q32.32.
func (Fixed) ControlActive(a fixedpoint.Complex) bool {
	return fixedpoint.MagSq(a) > fixedpoint.Quarter
}

// AntiControlActive reports |a|² < 0.25 in Q32.32.
func (Fixed) AntiControlActive(a fixedpoint.Complex) bool {
	return fixedpoint.MagSq(a) < fixedpoint.Quarter
}

// Halve returns theta/2 (an arithmetic shift preserves Q32.32).
func (Fixed) Halve(theta fixedpoint.Value) fixedpoint.Value { return theta / 2 }

// SMul returns the Q32.32 scalar product through the kernel.
func (Fixed) SMul(s, t fixedpoint.Value) fixedpoint.Value { return fixedpoint.Mul(s, t) }

// FromFloat seeds a Q32.32 constant from a compile-time decimal.
func (Fixed) FromFloat(f float64) fixedpoint.Value { return fixedpoint.FromFloat(f) }

// One returns 1.0 in Q32.32.
func (Fixed) One() fixedpoint.Value { return fixedpoint.One }

// Half returns 0.5 in Q32.32.
func (Fixed) Half() fixedpoint.Value { return fixedpoint.Half }

// InvSqrt2 returns 1/√2 in Q32.32.
func (Fixed) InvSqrt2() fixedpoint.Value { return fixedpoint.InvSqrt2 }

// HalfPi returns π/2 in Q32.32.
func (Fixed) HalfPi() fixedpoint.Value { return fixedpoint.HalfPi }

// FixedScalar is the Q32.32 coordinate algebra for geometric topologies.
type FixedScalar struct{}

func (FixedScalar) Add(a, b fixedpoint.Value) fixedpoint.Value { return a + b }
func (FixedScalar) Sub(a, b fixedpoint.Value) fixedpoint.Value { return a - b }
func (FixedScalar) Mul(a, b fixedpoint.Value) fixedpoint.Value { return fixedpoint.Mul(a, b) }
func (FixedScalar) Square(a fixedpoint.Value) fixedpoint.Value { return fixedpoint.Square(a) }
func (FixedScalar) LessEq(a, b fixedpoint.Value) bool          { return a <= b }
func (FixedScalar) FromFloat(f float64) fixedpoint.Value       { return fixedpoint.FromFloat(f) }
