// SPDX-License-Identifier: MIT
// Package: qweave/gates
//
// pair.go — two-qubit catalog entries.
//
// Contract:
//   • Controlled entries evaluate the control's magnitude-squared
//     against the shared threshold exactly once, act on the target only,
//     and always record either the applied or the no-action message.
//   • Swap-family entries exchange or linearly combine the two
//     amplitudes through the algebra; no entry divides by a runtime
//     value.
//   • Composites call already-defined entries in a fixed order; the
//     composite's own record is emitted last.

package gates

import (
	"math"

	"github.com/qweave/qweave/qubit"
)

// ControlledNot flips the target's sign when the control is active.
func (c *Catalog[A, S]) ControlledNot(ctrl, target *qubit.Qubit[A]) error {
	if err := require(TagCNot, ctrl, target); err != nil {
		return err
	}

	if c.ops.ControlActive(ctrl.Amp) {
		target.Amp = c.ops.Neg(target.Amp)
		c.rec.Record(TagCNot, target.ID, target.Tag, "NOT applied via control")
	} else {
		c.rec.Record(TagCNot, target.ID, target.Tag, "No action (control = 0)")
	}

	return nil
}

// AntiControlledNot flips the target's sign when the control is
// inactive (magnitude-squared strictly below the threshold).
func (c *Catalog[A, S]) AntiControlledNot(ctrl, target *qubit.Qubit[A]) error {
	if err := require(TagAntiCNot, ctrl, target); err != nil {
		return err
	}

	if c.ops.AntiControlActive(ctrl.Amp) {
		target.Amp = c.ops.Neg(target.Amp)
		c.rec.Record(TagAntiCNot, target.ID, target.Tag, "Phase flipped due to control")
	} else {
		c.rec.Record(TagAntiCNot, target.ID, target.Tag, "No action (control = 1)")
	}

	return nil
}

// ControlledZ negates the target when the control is active.
func (c *Catalog[A, S]) ControlledZ(ctrl, target *qubit.Qubit[A]) error {
	if err := require(TagCZ, ctrl, target); err != nil {
		return err
	}

	if c.ops.ControlActive(ctrl.Amp) {
		target.Amp = c.ops.Neg(target.Amp)
		c.rec.Record(TagCZ, target.ID, target.Tag, "Z applied via control")
	} else {
		c.rec.Record(TagCZ, target.ID, target.Tag, "No phase shift (control = 0)")
	}

	return nil
}

// ControlledPhase multiplies the target by e^(i·theta) when the control
// is active.
func (c *Catalog[A, S]) ControlledPhase(ctrl, target *qubit.Qubit[A], theta S) error {
	if err := require(TagCPhase, ctrl, target); err != nil {
		return err
	}

	if c.ops.ControlActive(ctrl.Amp) {
		target.Amp = c.ops.Mul(target.Amp, c.ops.FromPhase(theta))
		c.rec.Record(TagCPhase, target.ID, target.Tag, "Controlled phase applied")
	} else {
		c.rec.Record(TagCPhase, target.ID, target.Tag, "No action (control = 0)")
	}

	return nil
}

// ControlledPhaseS multiplies the target by i when the control is
// active.
func (c *Catalog[A, S]) ControlledPhaseS(ctrl, target *qubit.Qubit[A]) error {
	if err := require(TagCPhaseS, ctrl, target); err != nil {
		return err
	}

	if c.ops.ControlActive(ctrl.Amp) {
		target.Amp = c.ops.MulI(target.Amp)
		c.rec.Record(TagCPhaseS, target.ID, target.Tag, "Conditional S phase applied")
	} else {
		c.rec.Record(TagCPhaseS, target.ID, target.Tag, "No action (control = 0)")
	}

	return nil
}

// ControlledV applies the √X factor to the target when the control is
// active.
func (c *Catalog[A, S]) ControlledV(ctrl, target *qubit.Qubit[A]) error {
	if err := require(TagCV, ctrl, target); err != nil {
		return err
	}

	if c.ops.ControlActive(ctrl.Amp) {
		if err := c.SqrtX(target); err != nil {
			return err
		}
		c.rec.Record(TagCV, target.ID, target.Tag, "Controlled-V applied")
	} else {
		c.rec.Record(TagCV, target.ID, target.Tag, "Control=0, no action")
	}

	return nil
}

// Swap exchanges the two amplitudes.
func (c *Catalog[A, S]) Swap(q1, q2 *qubit.Qubit[A]) error {
	if err := require(TagSwap, q1, q2); err != nil {
		return err
	}

	q1.Amp, q2.Amp = q2.Amp, q1.Amp
	c.rec.Record(TagSwap, q1.ID, q1.Tag, "Swapped with pair")

	return nil
}

// ImaginarySwap exchanges the two amplitudes, multiplying each by i.
func (c *Catalog[A, S]) ImaginarySwap(q1, q2 *qubit.Qubit[A]) error {
	if err := require(TagImSwap, q1, q2); err != nil {
		return err
	}

	q1.Amp, q2.Amp = c.ops.MulI(q2.Amp), c.ops.MulI(q1.Amp)
	c.rec.Record(TagImSwap, q1.ID, q1.Tag, "Imaginary mirror swap")

	return nil
}

// SwapPow applies the interpolated swap SWAP^alpha: with
// angle = alpha·π/2, c = cos(angle), s = sin(angle):
//
//	a' = c·a + s·b,  b' = c·b + s·a
func (c *Catalog[A, S]) SwapPow(q1, q2 *qubit.Qubit[A], alpha S) error {
	if err := require(TagSwapPow, q1, q2); err != nil {
		return err
	}

	// cos/sin of the interpolation angle come as one phase value.
	p := c.ops.FromPhase(c.ops.SMul(alpha, c.ops.HalfPi()))
	cs, sn := c.ops.Re(p), c.ops.Im(p)

	a, b := q1.Amp, q2.Amp
	q1.Amp = c.ops.Add(c.ops.Scale(a, cs), c.ops.Scale(b, sn))
	q2.Amp = c.ops.Add(c.ops.Scale(b, cs), c.ops.Scale(a, sn))
	c.rec.Record(TagSwapPow, q1.ID, q1.Tag, "Interpolated SWAP applied")

	return nil
}

// SqrtSwap applies the fixed linear combination
//
//	a' = ½(a + b + i(a − b)),  b' = ½(a + b − i(a − b))
func (c *Catalog[A, S]) SqrtSwap(q1, q2 *qubit.Qubit[A]) error {
	if err := require(TagSqrtSwap, q1, q2); err != nil {
		return err
	}

	a, b := q1.Amp, q2.Amp
	sum := c.ops.Add(a, b)
	idiff := c.ops.MulI(c.ops.Sub(a, b))
	half := c.ops.Half()

	q1.Amp = c.ops.Scale(c.ops.Add(sum, idiff), half)
	q2.Amp = c.ops.Scale(c.ops.Sub(sum, idiff), half)
	c.rec.Record(TagSqrtSwap, q1.ID, q1.Tag, "√SWAP applied")

	return nil
}

// SqrtISwap applies
//
//	a' = (a + i·b)/√2,  b' = (b + i·a)/√2
func (c *Catalog[A, S]) SqrtISwap(q1, q2 *qubit.Qubit[A]) error {
	if err := require(TagSqrtISwap, q1, q2); err != nil {
		return err
	}

	a, b := q1.Amp, q2.Amp
	inv := c.ops.InvSqrt2()

	q1.Amp = c.ops.Scale(c.ops.Add(a, c.ops.MulI(b)), inv)
	q2.Amp = c.ops.Scale(c.ops.Add(b, c.ops.MulI(a)), inv)
	c.rec.Record(TagSqrtISwap, q2.ID, q2.Tag, "√iSWAP applied")

	return nil
}

// XX applies the coupling phase e^(i·theta) to both amplitudes.
func (c *Catalog[A, S]) XX(q1, q2 *qubit.Qubit[A], theta S) error {
	if err := require(TagXX, q1, q2); err != nil {
		return err
	}

	p := c.ops.FromPhase(theta)
	q1.Amp = c.ops.Mul(q1.Amp, p)
	q2.Amp = c.ops.Mul(q2.Amp, p)
	c.rec.Record(TagXX, q1.ID, q1.Tag, "Applied XX interaction with partner")

	return nil
}

// YY applies e^(i·theta) to the first amplitude and its conjugate to
// the second (the YY symmetry).
func (c *Catalog[A, S]) YY(q1, q2 *qubit.Qubit[A], theta S) error {
	if err := require(TagYY, q1, q2); err != nil {
		return err
	}

	p := c.ops.FromPhase(theta)
	q1.Amp = c.ops.Mul(q1.Amp, p)
	q2.Amp = c.ops.Mul(q2.Amp, c.ops.Conj(p))
	c.rec.Record(TagYY, q2.ID, q2.Tag, "Applied YY interaction")

	return nil
}

// ZZ applies the coupling phase e^(i·theta) to both amplitudes.
func (c *Catalog[A, S]) ZZ(q1, q2 *qubit.Qubit[A], theta S) error {
	if err := require(TagZZ, q1, q2); err != nil {
		return err
	}

	p := c.ops.FromPhase(theta)
	q1.Amp = c.ops.Mul(q1.Amp, p)
	q2.Amp = c.ops.Mul(q2.Amp, p)
	c.rec.Record(TagZZ, q2.ID, q2.Tag, "Applied ZZ phase coupling")

	return nil
}

// XYZEntangle applies e^(i·theta) to the first amplitude and its
// conjugate to the second, the combined XX+YY+ZZ form.
func (c *Catalog[A, S]) XYZEntangle(q1, q2 *qubit.Qubit[A], theta S) error {
	if err := require(TagXYZ, q1, q2); err != nil {
		return err
	}

	p := c.ops.FromPhase(theta)
	q1.Amp = c.ops.Mul(q1.Amp, p)
	q2.Amp = c.ops.Mul(q2.Amp, c.ops.Conj(p))
	c.rec.Record(TagXYZ, q1.ID, q1.Tag, "Full XX+YY+ZZ entanglement")

	return nil
}

// EchoCR applies the echoed cross-resonance sequence: p then conj(p) on
// the first qubit, conj(p) then p on the second.
func (c *Catalog[A, S]) EchoCR(q1, q2 *qubit.Qubit[A], theta S) error {
	if err := require(TagEchoCR, q1, q2); err != nil {
		return err
	}

	p := c.ops.FromPhase(theta)
	pc := c.ops.Conj(p)
	q1.Amp = c.ops.Mul(c.ops.Mul(q1.Amp, p), pc)
	q2.Amp = c.ops.Mul(c.ops.Mul(q2.Amp, pc), p)
	c.rec.Record(TagEchoCR, q1.ID, q1.Tag, "ECR interaction applied")

	return nil
}

// Givens applies the plane rotation
//
//	a' = a·cos(theta) − b·sin(theta),  b' = a·sin(theta) + b·cos(theta)
func (c *Catalog[A, S]) Givens(q1, q2 *qubit.Qubit[A], theta S) error {
	if err := require(TagGivens, q1, q2); err != nil {
		return err
	}

	p := c.ops.FromPhase(theta)
	cs, sn := c.ops.Re(p), c.ops.Im(p)

	a, b := q1.Amp, q2.Amp
	q1.Amp = c.ops.Sub(c.ops.Scale(a, cs), c.ops.Scale(b, sn))
	q2.Amp = c.ops.Add(c.ops.Scale(a, sn), c.ops.Scale(b, cs))
	c.rec.Record(TagGivens, q1.ID, q1.Tag, "Givens rotation applied")

	return nil
}

// FermionSim swaps the two amplitudes, then negates the first (the
// fermionic exchange sign).
func (c *Catalog[A, S]) FermionSim(q1, q2 *qubit.Qubit[A]) error {
	if err := require(TagFermion, q1, q2); err != nil {
		return err
	}

	if err := c.Swap(q1, q2); err != nil {
		return err
	}
	q1.Amp = c.ops.Neg(q1.Amp)
	c.rec.Record(TagFermion, q1.ID, q1.Tag, "Fermionic exchange")

	return nil
}

// CoreEntangle prepares the Bell-style pair: Hadamard on the first,
// then ControlledNot with the first as control.
func (c *Catalog[A, S]) CoreEntangle(q1, q2 *qubit.Qubit[A]) error {
	if err := require(TagCoreEnt, q1, q2); err != nil {
		return err
	}

	if err := c.Hadamard(q1); err != nil {
		return err
	}
	if err := c.ControlledNot(q1, q2); err != nil {
		return err
	}
	c.rec.Record(TagCoreEnt, q1.ID, q1.Tag, "Core entanglement applied")

	return nil
}

// Berkeley applies the CNOT–Phase(theta)–CNOT entangler.
func (c *Catalog[A, S]) Berkeley(q1, q2 *qubit.Qubit[A], theta S) error {
	if err := require(TagBerkeley, q1, q2); err != nil {
		return err
	}

	if err := c.ControlledNot(q1, q2); err != nil {
		return err
	}
	if err := c.PhaseGate(q2, theta); err != nil {
		return err
	}
	if err := c.ControlledNot(q1, q2); err != nil {
		return err
	}
	c.rec.Record(TagBerkeley, q1.ID, q1.Tag, "Berkeley entangler applied")

	return nil
}

// Magic applies H–S–CNOT–H.
func (c *Catalog[A, S]) Magic(q1, q2 *qubit.Qubit[A]) error {
	if err := require(TagMagic, q1, q2); err != nil {
		return err
	}

	if err := c.Hadamard(q1); err != nil {
		return err
	}
	if err := c.PhaseS(q1); err != nil {
		return err
	}
	if err := c.ControlledNot(q1, q2); err != nil {
		return err
	}
	if err := c.Hadamard(q1); err != nil {
		return err
	}
	c.rec.Record(TagMagic, q1.ID, q1.Tag, "Magic gate applied")

	return nil
}

// Sycamore applies √iSWAP followed by a π/6 controlled phase.
func (c *Catalog[A, S]) Sycamore(q1, q2 *qubit.Qubit[A]) error {
	if err := require(TagSycamore, q1, q2); err != nil {
		return err
	}

	if err := c.SqrtISwap(q1, q2); err != nil {
		return err
	}
	if err := c.ControlledPhase(q1, q2, c.ops.FromFloat(math.Pi/6)); err != nil {
		return err
	}
	c.rec.Record(TagSycamore, q1.ID, q1.Tag, "Sycamore gate applied")

	return nil
}

// CZSwap applies ControlledZ followed by Swap.
func (c *Catalog[A, S]) CZSwap(q1, q2 *qubit.Qubit[A]) error {
	if err := require(TagCZSwap, q1, q2); err != nil {
		return err
	}

	if err := c.ControlledZ(q1, q2); err != nil {
		return err
	}
	if err := c.Swap(q1, q2); err != nil {
		return err
	}
	c.rec.Record(TagCZSwap, q1.ID, q1.Tag, "CZ+SWAP applied")

	return nil
}

// GateFn is a caller-selected elementary gate, as consumed by Deutsch.
type GateFn[A any] func(*qubit.Qubit[A]) error

// Deutsch applies Hadamard on the first qubit, the caller-selected gate
// f on the second, then Hadamard on the first again.
func (c *Catalog[A, S]) Deutsch(q1, q2 *qubit.Qubit[A], f GateFn[A]) error {
	if err := require(TagDeutsch, q1, q2); err != nil {
		return err
	}
	if f == nil {
		return ErrNilGateFn
	}

	if err := c.Hadamard(q1); err != nil {
		return err
	}
	if err := f(q2); err != nil {
		return err
	}
	if err := c.Hadamard(q1); err != nil {
		return err
	}
	c.rec.Record(TagDeutsch, q1.ID, q1.Tag, "Deutsch gate applied")

	return nil
}
