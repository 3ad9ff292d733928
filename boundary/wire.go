// SPDX-License-Identifier: MIT
// Package: qweave/boundary
//
// wire.go — the MessagePack wire shapes.
//
// Contract:
//   • Records are flat structs with stable msgpack field names; the
//     wire never carries pointers.
//   • The fixed-point variant carries raw Q32.32 integers so a fixed
//     engine round-trips bit-exactly.

package boundary

import (
	"github.com/qweave/qweave/amplitude"
	"github.com/qweave/qweave/fixedpoint"
	"github.com/qweave/qweave/qubit"
)

// QubitRecord is the floating-point wire shape of one qubit.
type QubitRecord struct {
	ID  uint64  `msgpack:"id"`
	Tag string  `msgpack:"tag"`
	Re  float64 `msgpack:"re"`
	Im  float64 `msgpack:"im"`
}

// FixedQubitRecord is the Q32.32 wire shape of one qubit. Re and Im
// are raw fixed-point integers.
type FixedQubitRecord struct {
	ID  uint64 `msgpack:"id"`
	Tag string `msgpack:"tag"`
	Re  int64  `msgpack:"re"`
	Im  int64  `msgpack:"im"`
}

// PositionRecord is the floating-point wire shape of one positioned
// qubit. Coords holds 3 to 5 values.
type PositionRecord struct {
	Qubit  QubitRecord `msgpack:"qubit"`
	Coords []float64   `msgpack:"coords"`
}

// FixedPositionRecord is the Q32.32 wire shape of one positioned
// qubit.
type FixedPositionRecord struct {
	Qubit  FixedQubitRecord `msgpack:"qubit"`
	Coords []int64          `msgpack:"coords"`
}

func (r QubitRecord) qubit() *qubit.Qubit[complex128] {
	return qubit.New(r.ID, r.Tag, complex(r.Re, r.Im))
}

func (r FixedQubitRecord) qubit() *qubit.Qubit[fixedpoint.Complex] {
	return qubit.New(r.ID, r.Tag, fixedpoint.Complex{Re: r.Re, Im: r.Im})
}

func recordOf(q *qubit.Qubit[complex128]) QubitRecord {
	return QubitRecord{ID: q.ID, Tag: q.Tag, Re: real(q.Amp), Im: imag(q.Amp)}
}

func fixedRecordOf(q *qubit.Qubit[fixedpoint.Complex]) FixedQubitRecord {
	return FixedQubitRecord{ID: q.ID, Tag: q.Tag, Re: q.Amp.Re, Im: q.Amp.Im}
}

// ToFixed converts a floating batch to the fixed-point representation.
// The single sanctioned interconversion point, together with ToFloat.
func ToFixed(qs []*qubit.Qubit[complex128]) []*qubit.Qubit[fixedpoint.Complex] {
	out := make([]*qubit.Qubit[fixedpoint.Complex], len(qs))
	for i, q := range qs {
		out[i] = qubit.New(q.ID, q.Tag, amplitude.FloatToFixed(q.Amp))
	}

	return out
}

// ToFloat converts a fixed-point batch to the floating representation.
func ToFloat(qs []*qubit.Qubit[fixedpoint.Complex]) []*qubit.Qubit[complex128] {
	out := make([]*qubit.Qubit[complex128], len(qs))
	for i, q := range qs {
		out[i] = qubit.New(q.ID, q.Tag, amplitude.FixedToFloat(q.Amp))
	}

	return out
}
