package amplitude_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qweave/qweave/amplitude"
	"github.com/qweave/qweave/fixedpoint"
)

// TestFloat_BasicAlgebra exercises the native backend's primitive set.
func TestFloat_BasicAlgebra(t *testing.T) {
	var ops amplitude.Float
	a := ops.Make(0.6, -0.8)

	assert.Equal(t, 0.6, ops.Re(a), "real part")
	assert.Equal(t, -0.8, ops.Im(a), "imaginary part")
	assert.Equal(t, ops.Make(0.6, 0.8), ops.Conj(a), "conjugate flips Im")
	assert.Equal(t, ops.Make(-0.6, 0.8), ops.Neg(a), "negation flips both")
	assert.Equal(t, ops.Make(0.8, 0.6), ops.MulI(a), "i·a is the quarter turn")
	assert.InDelta(t, 1.0, ops.MagSq(a), 1e-12, "|0.6−0.8i|² = 1")
}

// TestFixed_BasicAlgebra exercises the Q32.32 backend's primitive set.
func TestFixed_BasicAlgebra(t *testing.T) {
	var ops amplitude.Fixed
	a := ops.Make(fixedpoint.Half, -fixedpoint.Half)

	assert.Equal(t, fixedpoint.Half, ops.Re(a), "real part")
	assert.Equal(t, -fixedpoint.Half, ops.Im(a), "imaginary part")
	assert.Equal(t, ops.Make(fixedpoint.Half, fixedpoint.Half), ops.Conj(a), "conjugate flips Im")
	assert.Equal(t, ops.Make(-fixedpoint.Half, fixedpoint.Half), ops.Neg(a), "negation flips both")
	assert.Equal(t, ops.Make(fixedpoint.Half, fixedpoint.Half), ops.MulI(a), "i·a is the quarter turn")
	assert.Equal(t, fixedpoint.Half, ops.MagSq(a), "|0.5−0.5i|² = 0.5 exactly")
}

// TestControlActive_ThresholdStrictness pins the strict > on the 0.25
// magnitude-squared cutoff for both backends.
func TestControlActive_ThresholdStrictness(t *testing.T) {
	var fl amplitude.Float
	var fx amplitude.Fixed

	// |1|² = 1 is active; |0|² = 0 is not; |0.5|² = 0.25 sits exactly on
	// the boundary and must NOT be active.
	assert.True(t, fl.ControlActive(fl.Make(1, 0)), "unit amplitude is active (float)")
	assert.False(t, fl.ControlActive(fl.Make(0, 0)), "zero amplitude is inactive (float)")
	assert.False(t, fl.ControlActive(fl.Make(0.5, 0)), "boundary magnitude stays inactive (float)")

	assert.True(t, fx.ControlActive(fx.Make(fixedpoint.One, 0)), "unit amplitude is active (fixed)")
	assert.False(t, fx.ControlActive(fx.Make(0, 0)), "zero amplitude is inactive (fixed)")
	assert.False(t, fx.ControlActive(fx.Make(fixedpoint.Half, 0)), "boundary magnitude stays inactive (fixed)")
}

// TestAntiControlActive_Complement pins the strict < complement.
func TestAntiControlActive_Complement(t *testing.T) {
	var fl amplitude.Float
	var fx amplitude.Fixed

	assert.True(t, fl.AntiControlActive(fl.Make(0, 0)), "zero amplitude anti-triggers (float)")
	assert.False(t, fl.AntiControlActive(fl.Make(1, 0)), "unit amplitude does not anti-trigger (float)")
	assert.False(t, fl.AntiControlActive(fl.Make(0.5, 0)), "boundary does not anti-trigger (float)")

	assert.True(t, fx.AntiControlActive(fx.Make(0, 0)), "zero amplitude anti-triggers (fixed)")
	assert.False(t, fx.AntiControlActive(fx.Make(fixedpoint.One, 0)), "unit amplitude does not anti-trigger (fixed)")
	assert.False(t, fx.AntiControlActive(fx.Make(fixedpoint.Half, 0)), "boundary does not anti-trigger (fixed)")
}

// TestFromPhase_AgreesAcrossBackends compares e^(iθ) between backends
// within the fixed kernel's trig budget.
func TestFromPhase_AgreesAcrossBackends(t *testing.T) {
	var fl amplitude.Float
	var fx amplitude.Fixed

	for _, theta := range []float64{0, 0.3, -0.9, 1.5} {
		want := fl.FromPhase(theta)
		got := fx.FromPhase(fixedpoint.FromFloat(theta))

		assert.InDelta(t, real(want), fixedpoint.ToFloat(got.Re), 1e-3, "cos part at %v", theta)
		assert.InDelta(t, imag(want), fixedpoint.ToFloat(got.Im), 1e-3, "sin part at %v", theta)
	}
}

// TestConstants_AgreeAcrossBackends pins the shared scalar constants.
func TestConstants_AgreeAcrossBackends(t *testing.T) {
	var fl amplitude.Float
	var fx amplitude.Fixed

	assert.InDelta(t, fl.One(), fixedpoint.ToFloat(fx.One()), 1e-9, "One")
	assert.InDelta(t, fl.Half(), fixedpoint.ToFloat(fx.Half()), 1e-9, "Half")
	assert.InDelta(t, fl.InvSqrt2(), fixedpoint.ToFloat(fx.InvSqrt2()), 1e-9, "InvSqrt2")
	assert.InDelta(t, fl.HalfPi(), fixedpoint.ToFloat(fx.HalfPi()), 1e-9, "HalfPi")
}

// TestScalarOps_Distance exercises the coordinate algebra the epsilon
// generators rely on, both backends.
func TestScalarOps_Distance(t *testing.T) {
	var fl amplitude.FloatScalar
	var fx amplitude.FixedScalar

	// (3,4) → squared distance 25 from the origin.
	d2 := fl.Add(fl.Square(fl.Sub(3, 0)), fl.Square(fl.Sub(4, 0)))
	assert.Equal(t, 25.0, d2, "3-4-5 triangle (float)")
	assert.True(t, fl.LessEq(d2, 25), "inclusive boundary (float)")
	assert.False(t, fl.LessEq(d2, 24.999), "exclusive above (float)")

	three := fx.FromFloat(3)
	four := fx.FromFloat(4)
	fd2 := fx.Add(fx.Square(three), fx.Square(four))
	assert.Equal(t, fx.FromFloat(25), fd2, "3-4-5 triangle is exact in Q32.32")
	assert.True(t, fx.LessEq(fd2, fx.FromFloat(25)), "inclusive boundary (fixed)")
}

// TestConvert_RoundTrip verifies Float→Fixed→Float stays within one
// fractional step per part.
func TestConvert_RoundTrip(t *testing.T) {
	step := 1.0 / float64(fixedpoint.Scale)
	for _, a := range []complex128{0, 1, complex(0.5, -0.25), complex(-1/math.Sqrt2, 1/math.Sqrt2)} {
		back := amplitude.FixedToFloat(amplitude.FloatToFixed(a))

		assert.InDelta(t, real(a), real(back), step, "real part of %v", a)
		assert.InDelta(t, imag(a), imag(back), step, "imaginary part of %v", a)
	}
}
