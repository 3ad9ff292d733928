// SPDX-License-Identifier: MIT
// Package: qweave/fixedpoint
//
// complex.go — packed Q32.32 complex type.
//
// Contract:
//   • Complex carries {Re, Im} as Q32.32 values.
//   • MulC routes every cross term through Mul (the widened primitive);
//     the four partial products are combined after the corrective shift.
//   • ExpI(theta) = {Cos(theta), Sin(theta)}.
//   • All functions are O(1), allocation-free, and never panic.

package fixedpoint

// Complex is a fixed-point complex number in Q32.32 format.
type Complex struct {
	Re Value
	Im Value
}

// MakeComplex builds a Complex from Q32.32 real and imaginary parts.
func MakeComplex(re, im Value) Complex {
	return Complex{Re: re, Im: im}
}

// MulC multiplies two fixed-point complex numbers:
//
//	(a.Re + i·a.Im)(b.Re + i·b.Im) =
//	(a.Re·b.Re − a.Im·b.Im) + i(a.Re·b.Im + a.Im·b.Re)
func MulC(a, b Complex) Complex {
	return Complex{
		Re: Mul(a.Re, b.Re) - Mul(a.Im, b.Im),
		Im: Mul(a.Re, b.Im) + Mul(a.Im, b.Re),
	}
}

// Conj returns the complex conjugate.
func Conj(c Complex) Complex {
	return Complex{Re: c.Re, Im: -c.Im}
}

// ExpI returns e^(i·theta) for a Q32.32 angle: {Cos(theta), Sin(theta)}.
func ExpI(theta Value) Complex {
	return Complex{Re: Cos(theta), Im: Sin(theta)}
}

// MagSq returns |c|² = Re² + Im² as a Q32.32 value. Squares go through
// the widened multiply; no square root is ever taken.
func MagSq(c Complex) Value {
	return Square(c.Re) + Square(c.Im)
}
