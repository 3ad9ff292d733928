// SPDX-License-Identifier: MIT
// Package: qweave/amplitude
//
// convert.go — boundary interconversion between the two representations.
//
// Contract:
//   • FloatToFixed truncates toward zero per fixedpoint.FromFloat; the
//     round trip Float→Fixed→Float is exact to within 2^-32 per part.
//   • These helpers exist for the marshaling layer only; the engine core
//     never converts mid-computation.

package amplitude

import "github.com/qweave/qweave/fixedpoint"

// FloatToFixed converts a native complex amplitude to Q32.32.
func FloatToFixed(a complex128) fixedpoint.Complex {
	return fixedpoint.Complex{
		Re: fixedpoint.FromFloat(real(a)),
		Im: fixedpoint.FromFloat(imag(a)),
	}
}

// FixedToFloat converts a Q32.32 amplitude to native complex.
func FixedToFloat(a fixedpoint.Complex) complex128 {
	return complex(fixedpoint.ToFloat(a.Re), fixedpoint.ToFloat(a.Im))
}
