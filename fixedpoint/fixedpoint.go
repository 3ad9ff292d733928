// SPDX-License-Identifier: MIT
// Package: qweave/fixedpoint
//
// fixedpoint.go — Q32.32 scalar primitives.
//
// Contract:
//   • Value is an int64 carrying a Q32.32 quantity (scale 2^32).
//   • Mul widens to 128 bits before the corrective shift; overflow of the
//     intermediate product is impossible for any pair of operands.
//   • Square(a) == Mul(a, a) by definition.
//   • No function here allocates or panics.
//
// Complexity:
//   • All functions are O(1) time, O(1) space.

package fixedpoint

import "math/bits"

// Value is a Q32.32 fixed-point number: 32 integer bits, 32 fractional
// bits, stored in an int64. 1.0 is represented as 1<<32.
type Value = int64

// Fixed-point constants shared by both halves of the engine. The decimal
// seeds match the float backend's math constants so the two backends
// agree at the boundary.
const (
	// Scale is the Q32.32 unit: 1.0 in fixed point.
	Scale Value = 1 << 32
	// One aliases Scale for readability at call sites.
	One Value = Scale
	// Half is 0.5 in Q32.32.
	Half Value = 1 << 31
	// Quarter is 0.25 in Q32.32, the control threshold magnitude-squared.
	Quarter Value = 1 << 30
	// Pi is π in Q32.32.
	Pi Value = 13493037704 // 3.141592653589793 * 2^32
	// TwoPi is 2π in Q32.32.
	TwoPi Value = Pi << 1
	// HalfPi is π/2 in Q32.32.
	HalfPi Value = Pi >> 1
	// InvSqrt2 is 1/√2 in Q32.32.
	InvSqrt2 Value = 3037000499 // 0.7071067811865476 * 2^32
)

// Mul multiplies two Q32.32 values with a 128-bit intermediate and
// returns the Q32.32 product. This is the single multiplication
// primitive of the kernel; callers never form a*b in native width.
func Mul(a, b Value) Value {
	// Record the result sign, then work on magnitudes so the unsigned
	// 128-bit product from bits.Mul64 is exact.
	neg := (a < 0) != (b < 0)
	ua := uint64(a)
	if a < 0 {
		ua = uint64(-a)
	}
	ub := uint64(b)
	if b < 0 {
		ub = uint64(-b)
	}

	// Full 128-bit product, then shift right by the fractional width.
	hi, lo := bits.Mul64(ua, ub)
	r := hi<<32 | lo>>32

	if neg {
		return -Value(r)
	}

	return Value(r)
}

// Square returns Mul(a, a).
func Square(a Value) Value {
	return Mul(a, a)
}

// FromFloat converts a float64 to Q32.32, truncating toward zero.
// Used only at the trust boundary; the kernel itself never touches
// floating point.
func FromFloat(f float64) Value {
	return Value(f * float64(Scale))
}

// ToFloat converts a Q32.32 value to float64.
func ToFloat(v Value) float64 {
	return float64(v) / float64(Scale)
}
