package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleHistory() []Calculation {
	return []Calculation{
		NewCalculation("Addition", decimal.NewFromInt(2), decimal.NewFromInt(3), decimal.NewFromInt(5)),
		NewCalculation("Division", decimal.NewFromInt(10), decimal.NewFromInt(4), decimal.RequireFromString("2.5")),
	}
}

func TestNewHistorySnapshotCopiesHistory(t *testing.T) {
	history := sampleHistory()
	snapshot := NewHistorySnapshot(history)

	require.Len(t, snapshot.History, 2)

	// Mutating the source slice must not leak into the snapshot
	history[0] = NewCalculation("Subtraction", decimal.NewFromInt(1), decimal.NewFromInt(1), decimal.Zero)
	assert.Equal(t, "Addition", snapshot.History[0].Operation)
}

func TestSnapshotMapRoundTrip(t *testing.T) {
	snapshot := NewHistorySnapshot(sampleHistory())

	restored, err := SnapshotFromMap(snapshot.ToMap())
	require.NoError(t, err)

	require.Len(t, restored.History, len(snapshot.History))
	for i := range snapshot.History {
		assert.True(t, snapshot.History[i].Equal(restored.History[i]))
	}
	assert.True(t, snapshot.Timestamp.Truncate(time.Second).Equal(restored.Timestamp.Truncate(time.Second)))
}

func TestSnapshotFromMapEmptyHistory(t *testing.T) {
	snapshot := NewHistorySnapshot(nil)

	restored, err := SnapshotFromMap(snapshot.ToMap())
	require.NoError(t, err)
	assert.Empty(t, restored.History)
}

func TestSnapshotFromMapInvalidTimestamp(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
	}{
		{name: "missing timestamp", data: map[string]any{"history": []map[string]string{}}},
		{name: "malformed timestamp", data: map[string]any{"timestamp": "yesterday"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SnapshotFromMap(tt.data)
			require.Error(t, err)

			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}
}

func TestSnapshotFromMapMalformedRecord(t *testing.T) {
	data := map[string]any{
		"timestamp": time.Now().Format(time.RFC3339Nano),
		"history": []map[string]string{
			{FieldOperation: "", FieldOperand1: "1", FieldOperand2: "2", FieldResult: "3"},
		},
	}

	_, err := SnapshotFromMap(data)
	require.Error(t, err)
}
