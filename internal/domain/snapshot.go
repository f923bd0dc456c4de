package domain

import (
	"time"
)

// HistorySnapshot is an immutable capture of the full calculation
// history at a point in time, used for undo/redo. The records slice is
// an independent copy, never aliased to the live history.
type HistorySnapshot struct {
	History   []Calculation
	Timestamp time.Time
}

// NewHistorySnapshot copies history and stamps the snapshot with the
// current time.
func NewHistorySnapshot(history []Calculation) HistorySnapshot {
	return HistorySnapshot{
		History:   CopyHistory(history),
		Timestamp: time.Now(),
	}
}

// CopyHistory returns an independent copy of a history slice. An empty
// or nil input yields an empty, non-nil slice.
func CopyHistory(history []Calculation) []Calculation {
	out := make([]Calculation, len(history))
	copy(out, history)
	return out
}

// ToMap serializes the snapshot to a structured representation:
// {history: [record...], timestamp: ISO-8601}.
func (s HistorySnapshot) ToMap() map[string]any {
	records := make([]map[string]string, 0, len(s.History))
	for _, calc := range s.History {
		records = append(records, calc.ToRecord())
	}
	return map[string]any{
		"history":   records,
		"timestamp": s.Timestamp.Format(time.RFC3339Nano),
	}
}

// SnapshotFromMap reconstructs a snapshot from its structured form. An
// empty history list is valid. Returns a ValidationError if the
// timestamp is not a valid ISO-8601 date-time string or any record is
// malformed.
func SnapshotFromMap(data map[string]any) (HistorySnapshot, error) {
	rawTimestamp, ok := data["timestamp"].(string)
	if !ok {
		return HistorySnapshot{}, NewValidationError("invalid snapshot: missing timestamp")
	}
	timestamp, err := time.Parse(time.RFC3339Nano, rawTimestamp)
	if err != nil {
		return HistorySnapshot{}, NewValidationError("invalid snapshot: timestamp %q is not a valid ISO-8601 date-time", rawTimestamp)
	}

	history := make([]Calculation, 0)
	if rawHistory, ok := data["history"].([]map[string]string); ok {
		for _, rec := range rawHistory {
			calc, err := CalculationFromRecord(rec)
			if err != nil {
				return HistorySnapshot{}, err
			}
			history = append(history, calc)
		}
	}

	return HistorySnapshot{History: history, Timestamp: timestamp}, nil
}
