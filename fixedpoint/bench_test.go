package fixedpoint_test

import (
	"testing"

	"github.com/qweave/qweave/fixedpoint"
)

var sinkValue fixedpoint.Value

var sinkComplex fixedpoint.Complex

func BenchmarkMul(b *testing.B) {
	x := fixedpoint.FromFloat(1.517)
	y := fixedpoint.FromFloat(-0.733)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkValue = fixedpoint.Mul(x, y)
	}
}

func BenchmarkSin(b *testing.B) {
	theta := fixedpoint.FromFloat(1.1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkValue = fixedpoint.Sin(theta)
	}
}

func BenchmarkCos(b *testing.B) {
	theta := fixedpoint.FromFloat(1.1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkValue = fixedpoint.Cos(theta)
	}
}

func BenchmarkMulC(b *testing.B) {
	x := fixedpoint.Complex{Re: fixedpoint.Half, Im: fixedpoint.InvSqrt2}
	y := fixedpoint.Complex{Re: fixedpoint.InvSqrt2, Im: -fixedpoint.Half}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkComplex = fixedpoint.MulC(x, y)
	}
}

func BenchmarkExpI(b *testing.B) {
	theta := fixedpoint.FromFloat(0.9)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkComplex = fixedpoint.ExpI(theta)
	}
}
