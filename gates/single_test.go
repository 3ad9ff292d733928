package gates_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qweave/qweave/amplitude"
	"github.com/qweave/qweave/event"
	"github.com/qweave/qweave/fixedpoint"
	"github.com/qweave/qweave/gates"
	"github.com/qweave/qweave/qubit"
)

// floatCatalog builds a float-backend catalog with a capture recorder.
func floatCatalog() (*gates.Catalog[complex128, float64], *event.Capture) {
	rec := &event.Capture{}
	return gates.New[complex128, float64](amplitude.Float{}, rec), rec
}

// fixedCatalog builds a fixed-backend catalog with a capture recorder.
func fixedCatalog() (*gates.Catalog[fixedpoint.Complex, fixedpoint.Value], *event.Capture) {
	rec := &event.Capture{}
	return gates.New[fixedpoint.Complex, fixedpoint.Value](amplitude.Fixed{}, rec), rec
}

// TestIdentity_LeavesAmplitude verifies the identity records but never
// mutates.
func TestIdentity_LeavesAmplitude(t *testing.T) {
	cat, rec := floatCatalog()
	q := qubit.New[complex128](1, "q", complex(0.6, -0.8))

	require.NoError(t, cat.Identity(q))
	assert.Equal(t, complex(0.6, -0.8), q.Amp, "identity must not touch the amplitude")

	last, ok := rec.Last()
	require.True(t, ok, "identity still records")
	assert.Equal(t, gates.TagIdentity, last.Gate, "identity tag")
}

// TestPauliX_ConjugatesTwiceIdentity verifies the scalar-model Pauli-X
// (a conjugation) is an involution.
func TestPauliX_ConjugatesTwiceIdentity(t *testing.T) {
	cat, _ := floatCatalog()
	start := complex(0.3, 0.7)
	q := qubit.New[complex128](1, "q", start)

	require.NoError(t, cat.PauliX(q))
	assert.Equal(t, complex(0.3, -0.7), q.Amp, "single application conjugates")

	require.NoError(t, cat.PauliX(q))
	assert.Equal(t, start, q.Amp, "double application restores exactly")
}

// TestPauliZ_InvolutionBothBackends verifies Z² = identity exactly in
// both representations.
func TestPauliZ_InvolutionBothBackends(t *testing.T) {
	fcat, _ := floatCatalog()
	fq := qubit.New[complex128](1, "f", complex(0.25, -0.5))
	require.NoError(t, fcat.PauliZ(fq))
	require.NoError(t, fcat.PauliZ(fq))
	assert.Equal(t, complex(0.25, -0.5), fq.Amp, "float Z involution is exact")

	xcat, _ := fixedCatalog()
	start := fixedpoint.Complex{Re: fixedpoint.Quarter, Im: -fixedpoint.Half}
	xq := qubit.New(1, "x", start)
	require.NoError(t, xcat.PauliZ(xq))
	require.NoError(t, xcat.PauliZ(xq))
	assert.Equal(t, start, xq.Amp, "fixed Z involution is exact")
}

// TestPauliY_QuarterTurn verifies a single ×i rotation.
func TestPauliY_QuarterTurn(t *testing.T) {
	cat, rec := floatCatalog()
	q := qubit.New[complex128](2, "y", complex(1, 0))

	require.NoError(t, cat.PauliY(q))
	assert.Equal(t, complex(0, 1), q.Amp, "1 rotates to i")

	last, _ := rec.Last()
	assert.Equal(t, "Dream vector rotated", last.Msg, "Pauli-Y message")
}

// TestHadamard_TwiceIsHalfScale verifies H∘H ≡ scale by 0.5 up to
// representation rounding.
func TestHadamard_TwiceIsHalfScale(t *testing.T) {
	fcat, _ := floatCatalog()
	fq := qubit.New[complex128](1, "f", complex(0.9, -0.4))
	require.NoError(t, fcat.Hadamard(fq))
	require.NoError(t, fcat.Hadamard(fq))
	assert.InDelta(t, 0.45, real(fq.Amp), 1e-12, "real part halved")
	assert.InDelta(t, -0.2, imag(fq.Amp), 1e-12, "imaginary part halved")

	xcat, _ := fixedCatalog()
	xq := qubit.New(1, "x", fixedpoint.Complex{Re: fixedpoint.One, Im: 0})
	require.NoError(t, xcat.Hadamard(xq))
	require.NoError(t, xcat.Hadamard(xq))
	assert.InDelta(t, 0.5, fixedpoint.ToFloat(xq.Amp.Re), 1e-6, "fixed real part halved")
	assert.InDelta(t, 0.0, fixedpoint.ToFloat(xq.Amp.Im), 1e-6, "fixed imaginary part stays zero")
}

// TestPhaseS_FourfoldIdentity verifies S⁴ = identity (four quarter
// turns).
func TestPhaseS_FourfoldIdentity(t *testing.T) {
	cat, _ := floatCatalog()
	start := complex(0.6, 0.2)
	q := qubit.New[complex128](1, "s", start)

	for i := 0; i < 4; i++ {
		require.NoError(t, cat.PhaseS(q))
	}
	assert.Equal(t, start, q.Amp, "four S applications restore exactly")
}

// TestSqrtX_TwiceIsQuarterTurnScaled verifies ((1+i)/√2)² = i on the
// float backend.
func TestSqrtX_TwiceIsQuarterTurnScaled(t *testing.T) {
	cat, _ := floatCatalog()
	q := qubit.New[complex128](1, "sx", complex(1, 0))

	require.NoError(t, cat.SqrtX(q))
	require.NoError(t, cat.SqrtX(q))
	assert.InDelta(t, 0.0, real(q.Amp), 1e-12, "real part vanishes")
	assert.InDelta(t, 1.0, imag(q.Amp), 1e-12, "two half-X turns give ×i")
}

// TestPhaseShift_RotatesByTheta verifies the e^(iθ) factor.
func TestPhaseShift_RotatesByTheta(t *testing.T) {
	cat, _ := floatCatalog()
	q := qubit.New[complex128](1, "p", complex(1, 0))
	theta := math.Pi / 3

	require.NoError(t, cat.PhaseShift(q, theta))
	assert.InDelta(t, math.Cos(theta), real(q.Amp), 1e-12, "cos component")
	assert.InDelta(t, math.Sin(theta), imag(q.Amp), 1e-12, "sin component")
}

// TestRotateZ_HalfAngle verifies rotation entries use θ/2.
func TestRotateZ_HalfAngle(t *testing.T) {
	cat, _ := floatCatalog()
	q := qubit.New[complex128](1, "rz", complex(1, 0))
	theta := math.Pi / 2

	require.NoError(t, cat.RotateZ(q, theta))
	assert.InDelta(t, math.Cos(theta/2), real(q.Amp), 1e-12, "half-angle cos")
	assert.InDelta(t, math.Sin(theta/2), imag(q.Amp), 1e-12, "half-angle sin")
}

// TestRotate_AxisDispatch verifies the axis selector and its error.
func TestRotate_AxisDispatch(t *testing.T) {
	cat, _ := floatCatalog()

	for _, axis := range []byte{'X', 'Y', 'Z', 'x', 'y', 'z'} {
		q := qubit.New[complex128](1, "r", complex(1, 0))
		assert.NoError(t, cat.Rotate(q, axis, 0.5), "axis %c must dispatch", axis)
	}

	q := qubit.New[complex128](1, "r", complex(1, 0))
	err := cat.Rotate(q, 'w', 0.5)
	assert.ErrorIs(t, err, gates.ErrUnknownAxis, "unknown axis must error")
	assert.Equal(t, complex(1, 0), q.Amp, "failed dispatch must not mutate")
}

// TestSingleGates_NilOperand verifies the shared nil guard.
func TestSingleGates_NilOperand(t *testing.T) {
	cat, rec := floatCatalog()

	assert.ErrorIs(t, cat.Identity(nil), gates.ErrNilQubit, "identity nil guard")
	assert.ErrorIs(t, cat.PauliX(nil), gates.ErrNilQubit, "pauli-x nil guard")
	assert.ErrorIs(t, cat.Hadamard(nil), gates.ErrNilQubit, "hadamard nil guard")
	assert.ErrorIs(t, cat.RotateY(nil, 0.1), gates.ErrNilQubit, "rotate-y nil guard")
	assert.Empty(t, rec.Entries, "nil operands must not record")
}
