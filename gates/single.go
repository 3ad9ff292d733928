// SPDX-License-Identifier: MIT
// Package: qweave/gates
//
// single.go — single-qubit catalog entries.
//
// Contract:
//   • Validate first (ErrNilQubit), mutate Amp in place through the
//     algebra, record exactly one symbolic event.
//   • Angles are backend scalars: radians as float64 on the floating
//     backend, Q32.32 radians on the fixed backend.
//   • These are the literal scalar-amplitude semantics (see doc.go);
//     Pauli-X conjugates, Hadamard scales by 1/√2.

package gates

import "github.com/qweave/qweave/qubit"

// Identity leaves the amplitude untouched and records the event.
func (c *Catalog[A, S]) Identity(q *qubit.Qubit[A]) error {
	if err := require(TagIdentity, q); err != nil {
		return err
	}

	c.rec.Record(TagIdentity, q.ID, q.Tag, "State preserved")

	return nil
}

// GlobalPhase multiplies the amplitude by e^(i·theta).
func (c *Catalog[A, S]) GlobalPhase(q *qubit.Qubit[A], theta S) error {
	if err := require(TagGlobalPhase, q); err != nil {
		return err
	}

	q.Amp = c.ops.Mul(q.Amp, c.ops.FromPhase(theta))
	c.rec.Record(TagGlobalPhase, q.ID, q.Tag, "Applied phase shift")

	return nil
}

// PauliX flips the sign of the imaginary part (a conjugation — the
// scalar-model rendition of X, not a basis flip).
func (c *Catalog[A, S]) PauliX(q *qubit.Qubit[A]) error {
	if err := require(TagPauliX, q); err != nil {
		return err
	}

	q.Amp = c.ops.Conj(q.Amp)
	c.rec.Record(TagPauliX, q.ID, q.Tag, "Polarity flipped")

	return nil
}

// PauliY multiplies the amplitude by the imaginary unit.
func (c *Catalog[A, S]) PauliY(q *qubit.Qubit[A]) error {
	if err := require(TagPauliY, q); err != nil {
		return err
	}

	q.Amp = c.ops.MulI(q.Amp)
	c.rec.Record(TagPauliY, q.ID, q.Tag, "Dream vector rotated")

	return nil
}

// PauliZ negates both parts of the amplitude.
func (c *Catalog[A, S]) PauliZ(q *qubit.Qubit[A]) error {
	if err := require(TagPauliZ, q); err != nil {
		return err
	}

	q.Amp = c.ops.Neg(q.Amp)
	c.rec.Record(TagPauliZ, q.ID, q.Tag, "Inverted inner state")

	return nil
}

// PhaseS multiplies the amplitude by i (the S gate, a π/2 phase).
func (c *Catalog[A, S]) PhaseS(q *qubit.Qubit[A]) error {
	if err := require(TagPhaseS, q); err != nil {
		return err
	}

	q.Amp = c.ops.MulI(q.Amp)
	c.rec.Record(TagPhaseS, q.ID, q.Tag, "Applied S gate (π/2 phase)")

	return nil
}

// SqrtX multiplies the amplitude by (1+i)/√2.
func (c *Catalog[A, S]) SqrtX(q *qubit.Qubit[A]) error {
	if err := require(TagSqrtX, q); err != nil {
		return err
	}

	inv := c.ops.InvSqrt2()
	q.Amp = c.ops.Mul(q.Amp, c.ops.Make(inv, inv))
	c.rec.Record(TagSqrtX, q.ID, q.Tag, "Applied √X gate (liminal rotation)")

	return nil
}

// Hadamard scales the amplitude by 1/√2 (the superposition factor; no
// second basis amplitude exists to mix).
func (c *Catalog[A, S]) Hadamard(q *qubit.Qubit[A]) error {
	if err := require(TagHadamard, q); err != nil {
		return err
	}

	q.Amp = c.ops.Scale(q.Amp, c.ops.InvSqrt2())
	c.rec.Record(TagHadamard, q.ID, q.Tag, "Applied H gate (superposition)")

	return nil
}

// PhaseShift multiplies the amplitude by e^(i·theta).
func (c *Catalog[A, S]) PhaseShift(q *qubit.Qubit[A], theta S) error {
	if err := require(TagPhaseShift, q); err != nil {
		return err
	}

	q.Amp = c.ops.Mul(q.Amp, c.ops.FromPhase(theta))
	c.rec.Record(TagPhaseShift, q.ID, q.Tag, "Applied variable phase shift")

	return nil
}

// PhaseGate multiplies the amplitude by e^(i·phi).
func (c *Catalog[A, S]) PhaseGate(q *qubit.Qubit[A], phi S) error {
	if err := require(TagPhaseGate, q); err != nil {
		return err
	}

	q.Amp = c.ops.Mul(q.Amp, c.ops.FromPhase(phi))
	c.rec.Record(TagPhaseGate, q.ID, q.Tag, "Applied symbolic phase gate")

	return nil
}

// RotateX multiplies the amplitude by e^(i·theta/2).
func (c *Catalog[A, S]) RotateX(q *qubit.Qubit[A], theta S) error {
	if err := require(TagRotateX, q); err != nil {
		return err
	}

	q.Amp = c.ops.Mul(q.Amp, c.ops.FromPhase(c.ops.Halve(theta)))
	c.rec.Record(TagRotateX, q.ID, q.Tag, "Applied X-axis rotation")

	return nil
}

// RotateY multiplies the amplitude by e^(i·theta/2). In this scalar
// model the Y rotation shares the phase-multiply form, since only one
// amplitude slot exists.
func (c *Catalog[A, S]) RotateY(q *qubit.Qubit[A], theta S) error {
	if err := require(TagRotateY, q); err != nil {
		return err
	}

	q.Amp = c.ops.Mul(q.Amp, c.ops.FromPhase(c.ops.Halve(theta)))
	c.rec.Record(TagRotateY, q.ID, q.Tag, "Applied Y-axis rotation")

	return nil
}

// RotateZ multiplies the amplitude by e^(i·theta/2).
func (c *Catalog[A, S]) RotateZ(q *qubit.Qubit[A], theta S) error {
	if err := require(TagRotateZ, q); err != nil {
		return err
	}

	q.Amp = c.ops.Mul(q.Amp, c.ops.FromPhase(c.ops.Halve(theta)))
	c.rec.Record(TagRotateZ, q.ID, q.Tag, "Applied Z-axis rotation")

	return nil
}

// Rotate dispatches to the axis rotation selected by axis ('X', 'Y' or
// 'Z', case-insensitive). An unrecognized selector records the unknown
// axis event and returns ErrUnknownAxis without touching the amplitude.
func (c *Catalog[A, S]) Rotate(q *qubit.Qubit[A], axis byte, theta S) error {
	if err := require(TagRotate, q); err != nil {
		return err
	}

	var err error
	switch axis {
	case 'X', 'x':
		err = c.RotateX(q, theta)
	case 'Y', 'y':
		err = c.RotateY(q, theta)
	case 'Z', 'z':
		err = c.RotateZ(q, theta)
	default:
		c.rec.Record(TagRotate, q.ID, q.Tag, "Unknown axis")

		return ErrUnknownAxis
	}
	if err != nil {
		return err
	}

	c.rec.Record(TagRotate, q.ID, q.Tag, "Axis rotation applied")

	return nil
}
