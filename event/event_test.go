package event_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qweave/qweave/event"
)

// TestNop_Discards verifies the default recorder satisfies the
// interface and keeps nothing.
func TestNop_Discards(t *testing.T) {
	var rec event.Recorder = event.Nop{}
	rec.Record("HADAMARD", 1, "q0", "Superposition created")
	// Nothing to observe; the call must simply not panic.
}

// TestCapture_RetainsOrder verifies records accumulate in call order.
func TestCapture_RetainsOrder(t *testing.T) {
	cap := &event.Capture{}

	cap.Record("HADAMARD", 1, "a", "first")
	cap.Record("CNOT", 2, "b", "second")

	require.Len(t, cap.Entries, 2, "two records captured")
	assert.Equal(t, "HADAMARD", cap.Entries[0].Gate, "first gate")
	assert.Equal(t, "CNOT", cap.Entries[1].Gate, "second gate")
	assert.Equal(t, uint64(2), cap.Entries[1].QubitID, "second id")
}

// TestCapture_Last verifies the convenience accessor.
func TestCapture_Last(t *testing.T) {
	cap := &event.Capture{}

	_, ok := cap.Last()
	assert.False(t, ok, "empty capture has no last entry")

	cap.Record("PAULI_Z", 9, "z", "Phase flipped")
	last, ok := cap.Last()
	require.True(t, ok, "entry present after record")
	assert.Equal(t, "PAULI_Z", last.Gate, "last gate")
	assert.Equal(t, "Phase flipped", last.Msg, "last message")
}

// TestSink_StructuredFields verifies the zerolog line carries the
// symbolic fields by name.
func TestSink_StructuredFields(t *testing.T) {
	var buf bytes.Buffer
	sink := event.NewSink(zerolog.New(&buf))

	sink.Record("CNOT", 42, "target", "NOT applied via control")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), "sink must emit one JSON line")
	assert.Equal(t, "CNOT", line["gate"], "gate field")
	assert.Equal(t, float64(42), line["qubit_id"], "qubit_id field")
	assert.Equal(t, "target", line["qubit_tag"], "qubit_tag field")
	assert.Equal(t, "NOT applied via control", line["message"], "message field")
}
