// SPDX-License-Identifier: MIT
// Package: qweave/gates
//
// triple.go — three-qubit catalog entries.
//
// Contract:
//   • Every entry reduces to: evaluate one or two control thresholds,
//     then apply a single already-defined gate (sign flip, Swap, or a
//     caller-selected elementary gate) to the remaining target(s).
//   • Control decisions always emit either the applied or the
//     distinguishable no-action record.

package gates

import "github.com/qweave/qweave/qubit"

// DoubleControlledNot flips the target's sign when both controls are
// active.
func (c *Catalog[A, S]) DoubleControlledNot(ctrl1, ctrl2, target *qubit.Qubit[A]) error {
	if err := require(TagDCNot, ctrl1, ctrl2, target); err != nil {
		return err
	}

	if c.ops.ControlActive(ctrl1.Amp) && c.ops.ControlActive(ctrl2.Amp) {
		target.Amp = c.ops.Neg(target.Amp)
		c.rec.Record(TagDCNot, target.ID, target.Tag, "Double control triggered NOT")
	} else {
		c.rec.Record(TagDCNot, target.ID, target.Tag, "Conditions not met")
	}

	return nil
}

// Fredkin swaps the two targets when the control is active.
func (c *Catalog[A, S]) Fredkin(ctrl, q1, q2 *qubit.Qubit[A]) error {
	if err := require(TagFredkin, ctrl, q1, q2); err != nil {
		return err
	}

	if c.ops.ControlActive(ctrl.Amp) {
		q1.Amp, q2.Amp = q2.Amp, q1.Amp
		c.rec.Record(TagFredkin, q1.ID, q1.Tag, "Control triggered SWAP")
	} else {
		c.rec.Record(TagFredkin, q1.ID, q1.Tag, "Control = 0, no action")
	}

	return nil
}

// Dagwood swaps the second and third qubits (via the Swap entry, which
// records its own event) when the first qubit's control is active.
func (c *Catalog[A, S]) Dagwood(ctrl, q2, q3 *qubit.Qubit[A]) error {
	if err := require(TagDagwood, ctrl, q2, q3); err != nil {
		return err
	}

	if c.ops.ControlActive(ctrl.Amp) {
		if err := c.Swap(q2, q3); err != nil {
			return err
		}
		c.rec.Record(TagDagwood, ctrl.ID, ctrl.Tag, "Dagwood swap applied")
	} else {
		c.rec.Record(TagDagwood, ctrl.ID, ctrl.Tag, "Control=0, no swap")
	}

	return nil
}

// Margolis flips the target's sign when both controls are active.
func (c *Catalog[A, S]) Margolis(ctrl1, ctrl2, target *qubit.Qubit[A]) error {
	if err := require(TagMargolis, ctrl1, ctrl2, target); err != nil {
		return err
	}

	if c.ops.ControlActive(ctrl1.Amp) && c.ops.ControlActive(ctrl2.Amp) {
		target.Amp = c.ops.Neg(target.Amp)
		c.rec.Record(TagMargolis, target.ID, target.Tag, "Margolis gate triggered")
	} else {
		c.rec.Record(TagMargolis, target.ID, target.Tag, "Conditions not met")
	}

	return nil
}

// Peres applies ControlledNot(q1, q3) followed by Margolis(q1, q2, q3).
func (c *Catalog[A, S]) Peres(q1, q2, q3 *qubit.Qubit[A]) error {
	if err := require(TagPeres, q1, q2, q3); err != nil {
		return err
	}

	if err := c.ControlledNot(q1, q3); err != nil {
		return err
	}
	if err := c.Margolis(q1, q2, q3); err != nil {
		return err
	}
	c.rec.Record(TagPeres, q1.ID, q1.Tag, "Peres gate applied")

	return nil
}

// Barenco applies the H–CNOT–S–CNOT–H composite on the third qubit with
// the first two as controls.
func (c *Catalog[A, S]) Barenco(q1, q2, q3 *qubit.Qubit[A]) error {
	if err := require(TagBarenco, q1, q2, q3); err != nil {
		return err
	}

	if err := c.Hadamard(q3); err != nil {
		return err
	}
	if err := c.ControlledNot(q2, q3); err != nil {
		return err
	}
	if err := c.PhaseS(q3); err != nil {
		return err
	}
	if err := c.ControlledNot(q1, q3); err != nil {
		return err
	}
	if err := c.Hadamard(q3); err != nil {
		return err
	}
	c.rec.Record(TagBarenco, q1.ID, q1.Tag, "Barenco composite applied")

	return nil
}

// ControlledFermionSwap applies FermionSim to the pair when the control
// is active.
func (c *Catalog[A, S]) ControlledFermionSwap(ctrl, q1, q2 *qubit.Qubit[A]) error {
	if err := require(TagCFSwap, ctrl, q1, q2); err != nil {
		return err
	}

	if c.ops.ControlActive(ctrl.Amp) {
		if err := c.FermionSim(q1, q2); err != nil {
			return err
		}
		c.rec.Record(TagCFSwap, q1.ID, q1.Tag, "Controlled Fermionic SWAP")
	} else {
		c.rec.Record(TagCFSwap, q1.ID, q1.Tag, "Control=0, no action")
	}

	return nil
}
