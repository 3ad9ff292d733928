// SPDX-License-Identifier: MIT
// Package: qweave/qrng
//
// qrng.go — symbolic random number generation over a range.
//
// Contract:
//   • Each output slot is one simulated measurement: a superposed
//     symbolic qubit collapses to a single bit, mapping to the range's
//     min (bit 0) or max (bit 1).
//   • One QRNG_BIT record per draw, carrying the slot index as the
//     synthetic qubit id and the literal bit as the message.
//   • The entropy source is injectable; unseeded Fill uses a
//     time-seeded source and is not reproducible.

package qrng

import (
	"errors"
	"math/rand"
	"time"

	"github.com/qweave/qweave/event"
)

// TagQRNG is the gate tag every draw records.
const TagQRNG = "QRNG_BIT"

// ErrInvalidRange indicates an empty output buffer or min ≥ max.
var ErrInvalidRange = errors.New("qrng: invalid range or empty output")

// config carries the injectable collaborators of one Fill call.
type config struct {
	src *rand.Rand
	rec event.Recorder
}

// Option tunes one Fill call.
type Option func(*config)

// WithSeed makes the draw sequence reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) { c.src = rand.New(rand.NewSource(seed)) }
}

// WithRand injects a prepared source. A nil source is constructor
// misuse and panics.
func WithRand(src *rand.Rand) Option {
	if src == nil {
		panic("qrng.WithRand: nil source")
	}

	return func(c *config) { c.src = src }
}

// WithRecorder injects the event sink for the per-draw records.
func WithRecorder(rec event.Recorder) Option {
	return func(c *config) { c.rec = rec }
}

// Fill populates out with one collapsed draw per slot: min on bit 0,
// max on bit 1. The buffer must be non-empty and min strictly below
// max.
func Fill(out []uint64, min, max uint64, opts ...Option) error {
	if len(out) == 0 || min >= max {
		return ErrInvalidRange
	}

	cfg := &config{rec: event.Nop{}}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.src == nil {
		cfg.src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	for i := range out {
		bit := cfg.src.Uint64() & 1

		if bit == 0 {
			out[i] = min
			cfg.rec.Record(TagQRNG, uint64(i), "qrng", "0")
		} else {
			out[i] = max
			cfg.rec.Record(TagQRNG, uint64(i), "qrng", "1")
		}
	}

	return nil
}
