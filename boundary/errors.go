// SPDX-License-Identifier: MIT
// Package: qweave/boundary
//
// errors.go — sentinel errors for boundary transfer.
//
// Error policy (explicit and strict):
//   • Only sentinel variables are exposed; callers branch with
//     errors.Is(err, ErrX), never by string comparison.
//   • Direction is encoded in the sentinel: unreadable source on the
//     way in, unwritable destination on the way out.
//   • Callers propagate these unmodified; no retries.

package boundary

import "errors"

// ErrSourceUnreadable indicates the inbound stream could not be
// decoded: truncated data, a malformed record, or a coordinate row
// outside the 3..5 dimension range. Nothing was written to the
// destination slice.
var ErrSourceUnreadable = errors.New("boundary: source unreadable")

// ErrDestUnwritable indicates the single outbound Write failed. The
// destination may hold a partial byte prefix but never a partial
// record set from this package's perspective.
var ErrDestUnwritable = errors.New("boundary: destination unwritable")

// ErrResourceExhausted indicates the inbound batch declares more
// records than the codec's configured limit. The batch is rejected
// before any record is decoded.
var ErrResourceExhausted = errors.New("boundary: record limit exceeded")
