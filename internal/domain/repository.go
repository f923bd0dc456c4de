package domain

import (
	"context"
)

// HistoryRepository defines the interface for history persistence operations
type HistoryRepository interface {
	// Save persists the full calculation history, replacing any
	// previously persisted state
	Save(ctx context.Context, history []Calculation) error

	// Load reads the persisted history. The bool reports whether a
	// persisted file existed; a missing file is not an error and
	// yields an empty history
	Load(ctx context.Context) ([]Calculation, bool, error)
}
