// Package boundary moves qubit batches across the engine's edge: it
// decodes caller-supplied byte streams into fresh engine-side slices
// and encodes engine-side slices back out, with MessagePack as the
// wire format. It is the only place the floating and fixed-point
// representations interconvert.
//
// The package offers the following key components:
//
//   - QubitRecord / FixedQubitRecord: the wire shapes, one complex
//     amplitude as two scalar parts plus identity.
//   - PositionRecord / FixedPositionRecord: positioned variants with
//     3–5 coordinate values.
//   - Codec: the transfer object, carrying the record-count limit;
//     CopyIn* and CopyOut* methods per representation.
//   - ToFixed / ToFloat: whole-batch representation converters.
//
// Guarantees:
//
//   - CopyIn never partially populates: a decode failure or an
//     over-limit count returns the sentinel with no slice.
//   - CopyOut encodes the entire batch in memory first and issues a
//     single Write; the destination observes bytes only on success.
//   - Errors are terminal for the call; nothing retries.
package boundary
