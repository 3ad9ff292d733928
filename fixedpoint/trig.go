// SPDX-License-Identifier: MIT
// Package: qweave/fixedpoint
//
// trig.go — truncated Taylor approximations of sine and cosine.
//
// Contract:
//   • Input angles are Q32.32 radians; any finite int64 is accepted.
//   • Reduction into [-Pi, Pi] uses modulo arithmetic on TwoPi so the
//     cost is O(1) even for pathologically large inputs; the
//     post-reduction value matches the repeated add/subtract form.
//   • Cos evaluates 1 − x²/2 + x⁴/24 − x⁶/720.
//   • Sin evaluates x − x³/6 + x⁵/120 − x⁷/5040.
//   • Every power is formed through Mul; term divisors are compile-time
//     integer constants.
//
// Accuracy:
//   • ≤ 1e-3 absolute error against reference trig on [-Pi/2, Pi/2];
//     toward ±Pi the truncation terms grow and the series itself is
//     the accepted contract (see doc.go).

package fixedpoint

// reduce maps theta into [-Pi, Pi], preserving the value modulo TwoPi.
func reduce(theta Value) Value {
	// Fold into (-TwoPi, TwoPi) first; Go's % truncates toward zero so
	// the remainder keeps theta's sign.
	theta %= TwoPi

	// One conditional step lands in [-Pi, Pi].
	if theta > Pi {
		theta -= TwoPi
	} else if theta < -Pi {
		theta += TwoPi
	}

	return theta
}

// Cos returns the cosine of a Q32.32 angle as a Q32.32 value.
func Cos(theta Value) Value {
	x := reduce(theta)

	// Even powers of x, each through the widened multiply.
	x2 := Mul(x, x)
	x4 := Mul(x2, x2)
	x6 := Mul(x4, x2)

	// 1 − x²/2 + x⁴/24 − x⁶/720; dividing a Q32.32 value by an integer
	// constant keeps the format.
	return One - x2/2 + x4/24 - x6/720
}

// Sin returns the sine of a Q32.32 angle as a Q32.32 value.
func Sin(theta Value) Value {
	x := reduce(theta)

	// Odd powers of x.
	x2 := Mul(x, x)
	x3 := Mul(x2, x)
	x5 := Mul(x3, x2)
	x7 := Mul(x5, x2)

	// x − x³/6 + x⁵/120 − x⁷/5040.
	return x - x3/6 + x5/120 - x7/5040
}
