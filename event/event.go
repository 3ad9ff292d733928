// SPDX-License-Identifier: MIT
// Package: qweave/event
//
// event.go — Recorder interface and its implementations.
//
// Contract:
//   • Record is fire-and-forget: no return value, no error, no blocking
//     guarantees demanded of the sink.
//   • Capture is not safe for concurrent writers; it mirrors the
//     engine's synchronous single-call model.

package event

import "github.com/rs/zerolog"

// Recorder receives one symbolic record per completed logical unit of
// gate or topology work.
type Recorder interface {
	// Record emits one symbolic event: the gate tag, the subject qubit's
	// identity and label, and a free-form message.
	Record(gate string, qubitID uint64, qubitTag, msg string)
}

// Nop discards all records. It is the default collaborator.
type Nop struct{}

// Record implements Recorder by doing nothing.
func (Nop) Record(string, uint64, string, string) {}

// Entry is one captured record.
type Entry struct {
	Gate     string
	QubitID  uint64
	QubitTag string
	Msg      string
}

// Capture retains records in order; a test double.
type Capture struct {
	Entries []Entry
}

// Record implements Recorder by appending to Entries.
func (c *Capture) Record(gate string, qubitID uint64, qubitTag, msg string) {
	c.Entries = append(c.Entries, Entry{Gate: gate, QubitID: qubitID, QubitTag: qubitTag, Msg: msg})
}

// Last returns the most recent entry and whether one exists.
func (c *Capture) Last() (Entry, bool) {
	if len(c.Entries) == 0 {
		return Entry{}, false
	}

	return c.Entries[len(c.Entries)-1], true
}

// Sink writes records as structured log lines through an injected
// zerolog.Logger.
type Sink struct {
	log zerolog.Logger
}

// NewSink wraps the given logger as a Recorder.
func NewSink(log zerolog.Logger) *Sink {
	return &Sink{log: log}
}

// Record implements Recorder with one info-level line per event.
func (s *Sink) Record(gate string, qubitID uint64, qubitTag, msg string) {
	s.log.Info().
		Str("gate", gate).
		Uint64("qubit_id", qubitID).
		Str("qubit_tag", qubitTag).
		Msg(msg)
}
