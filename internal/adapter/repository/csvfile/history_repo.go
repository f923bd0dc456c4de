// Package csvfile persists calculation history as a CSV table with
// columns operation, operand1, operand2, result, timestamp. Operands
// and results are stored as decimal strings to preserve precision
// across reload.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/simaogato/calctrail/internal/domain"
)

// historyRepository implements domain.HistoryRepository
type historyRepository struct {
	path string
}

// NewHistoryRepository creates a new CSV-backed history repository
// persisting to path.
func NewHistoryRepository(path string) domain.HistoryRepository {
	return &historyRepository{path: path}
}

// Save writes the full history to the CSV file, replacing previous
// contents. Parent directories are created as needed.
func (r *historyRepository) Save(ctx context.Context, history []domain.Calculation) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("failed to create history file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(domain.RecordColumns); err != nil {
		return fmt.Errorf("failed to write history header: %w", err)
	}
	for _, calc := range history {
		if err := w.Write(calc.Row()); err != nil {
			return fmt.Errorf("failed to write history row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush history file: %w", err)
	}
	return f.Close()
}

// Load reads the persisted history. A missing file is reported via the
// bool, not as an error.
func (r *historyRepository) Load(ctx context.Context) ([]domain.Calculation, bool, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to open history file: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, true, fmt.Errorf("failed to read history file: %w", err)
	}
	if len(rows) == 0 {
		return []domain.Calculation{}, true, nil
	}

	header := rows[0]
	history := make([]domain.Calculation, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != len(header) {
			return nil, true, fmt.Errorf("malformed history row: expected %d fields, got %d", len(header), len(row))
		}
		rec := make(map[string]string, len(header))
		for i, col := range header {
			rec[col] = row[i]
		}
		calc, err := domain.CalculationFromRecord(rec)
		if err != nil {
			return nil, true, fmt.Errorf("failed to parse history row: %w", err)
		}
		history = append(history, calc)
	}
	return history, true, nil
}
