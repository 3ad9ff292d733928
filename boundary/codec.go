// SPDX-License-Identifier: MIT
// Package: qweave/boundary
//
// codec.go — batch transfer in and out of the engine.
//
// Contract:
//   • Inbound: array length first, checked against the limit, then one
//     record at a time into a fresh slice. Any failure discards the
//     slice.
//   • Outbound: the whole batch is encoded into memory, then written
//     with one Write call. No partial record set ever reaches the
//     destination.
// Complexity: O(n) per call, one allocation per record plus the
// outbound buffer.

package boundary

import (
	"bytes"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/qweave/qweave/fixedpoint"
	"github.com/qweave/qweave/qubit"
)

// DefaultRecordLimit bounds inbound batches unless overridden.
const DefaultRecordLimit = 1 << 16

// Codec transfers qubit batches over MessagePack streams. The zero
// value is not usable; construct with NewCodec.
type Codec struct {
	limit int
}

// Option tunes a Codec at construction.
type Option func(*Codec)

// WithRecordLimit overrides the inbound record limit. A non-positive
// limit is constructor misuse and panics.
func WithRecordLimit(n int) Option {
	if n <= 0 {
		panic("boundary.WithRecordLimit: limit must be positive")
	}

	return func(c *Codec) { c.limit = n }
}

// NewCodec builds a Codec with DefaultRecordLimit unless overridden.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{limit: DefaultRecordLimit}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// CopyInFloat decodes a floating-point qubit batch into fresh
// engine-side qubits.
func (c *Codec) CopyInFloat(r io.Reader) ([]*qubit.Qubit[complex128], error) {
	recs, err := copyIn[QubitRecord](c, r)
	if err != nil {
		return nil, err
	}

	out := make([]*qubit.Qubit[complex128], len(recs))
	for i, rec := range recs {
		out[i] = rec.qubit()
	}

	return out, nil
}

// CopyInFixed decodes a Q32.32 qubit batch, bit-exact.
func (c *Codec) CopyInFixed(r io.Reader) ([]*qubit.Qubit[fixedpoint.Complex], error) {
	recs, err := copyIn[FixedQubitRecord](c, r)
	if err != nil {
		return nil, err
	}

	out := make([]*qubit.Qubit[fixedpoint.Complex], len(recs))
	for i, rec := range recs {
		out[i] = rec.qubit()
	}

	return out, nil
}

// CopyInPositions decodes a floating-point positioned batch. Rows with
// fewer than 3 or more than 5 coordinates are rejected.
func (c *Codec) CopyInPositions(r io.Reader) ([]qubit.Position[complex128, float64], error) {
	recs, err := copyIn[PositionRecord](c, r)
	if err != nil {
		return nil, err
	}

	out := make([]qubit.Position[complex128, float64], len(recs))
	for i, rec := range recs {
		if len(rec.Coords) < 3 || len(rec.Coords) > 5 {
			return nil, fmt.Errorf("record %d: %d coords: %w", i, len(rec.Coords), ErrSourceUnreadable)
		}
		out[i] = qubit.Position[complex128, float64]{
			Qubit:  rec.Qubit.qubit(),
			Coords: rec.Coords,
		}
	}

	return out, nil
}

// CopyInFixedPositions decodes a Q32.32 positioned batch.
func (c *Codec) CopyInFixedPositions(r io.Reader) ([]qubit.Position[fixedpoint.Complex, fixedpoint.Value], error) {
	recs, err := copyIn[FixedPositionRecord](c, r)
	if err != nil {
		return nil, err
	}

	out := make([]qubit.Position[fixedpoint.Complex, fixedpoint.Value], len(recs))
	for i, rec := range recs {
		if len(rec.Coords) < 3 || len(rec.Coords) > 5 {
			return nil, fmt.Errorf("record %d: %d coords: %w", i, len(rec.Coords), ErrSourceUnreadable)
		}
		out[i] = qubit.Position[fixedpoint.Complex, fixedpoint.Value]{
			Qubit:  rec.Qubit.qubit(),
			Coords: rec.Coords,
		}
	}

	return out, nil
}

// CopyOutFloat encodes a floating-point batch and writes it in one
// call.
func (c *Codec) CopyOutFloat(w io.Writer, qs []*qubit.Qubit[complex128]) error {
	recs := make([]QubitRecord, len(qs))
	for i, q := range qs {
		recs[i] = recordOf(q)
	}

	return copyOut(w, recs)
}

// CopyOutFixed encodes a Q32.32 batch, bit-exact, in one write.
func (c *Codec) CopyOutFixed(w io.Writer, qs []*qubit.Qubit[fixedpoint.Complex]) error {
	recs := make([]FixedQubitRecord, len(qs))
	for i, q := range qs {
		recs[i] = fixedRecordOf(q)
	}

	return copyOut(w, recs)
}

// CopyOutPositions encodes a floating-point positioned batch in one
// write.
func (c *Codec) CopyOutPositions(w io.Writer, ps []qubit.Position[complex128, float64]) error {
	recs := make([]PositionRecord, len(ps))
	for i, p := range ps {
		recs[i] = PositionRecord{Qubit: recordOf(p.Qubit), Coords: p.Coords}
	}

	return copyOut(w, recs)
}

// CopyOutFixedPositions encodes a Q32.32 positioned batch in one
// write.
func (c *Codec) CopyOutFixedPositions(w io.Writer, ps []qubit.Position[fixedpoint.Complex, fixedpoint.Value]) error {
	recs := make([]FixedPositionRecord, len(ps))
	for i, p := range ps {
		recs[i] = FixedPositionRecord{Qubit: fixedRecordOf(p.Qubit), Coords: p.Coords}
	}

	return copyOut(w, recs)
}

// copyIn decodes the length-checked record array.
func copyIn[R any](c *Codec, r io.Reader) ([]R, error) {
	dec := msgpack.NewDecoder(r)

	n, err := dec.DecodeArrayLen()
	if err != nil {
		return nil, fmt.Errorf("array header: %v: %w", err, ErrSourceUnreadable)
	}
	if n < 0 {
		return nil, fmt.Errorf("nil record array: %w", ErrSourceUnreadable)
	}
	if n > c.limit {
		return nil, fmt.Errorf("%d records over limit %d: %w", n, c.limit, ErrResourceExhausted)
	}

	recs := make([]R, n)
	for i := range recs {
		if err := dec.Decode(&recs[i]); err != nil {
			return nil, fmt.Errorf("record %d: %v: %w", i, err, ErrSourceUnreadable)
		}
	}

	return recs, nil
}

// copyOut encodes the whole batch into memory, then issues the single
// Write.
func copyOut[R any](w io.Writer, recs []R) error {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)

	if err := enc.EncodeArrayLen(len(recs)); err != nil {
		return fmt.Errorf("array header: %v: %w", err, ErrDestUnwritable)
	}
	for i := range recs {
		if err := enc.Encode(&recs[i]); err != nil {
			return fmt.Errorf("record %d: %v: %w", i, err, ErrDestUnwritable)
		}
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write: %v: %w", err, ErrDestUnwritable)
	}

	return nil
}
