// Package calculator implements the calculation engine: it owns the
// live history, the undo/redo snapshot stacks, and the active
// operation, and orchestrates validation, execution, snapshotting, and
// persistence.
package calculator

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/simaogato/calctrail/internal/config"
	"github.com/simaogato/calctrail/internal/domain"
	"github.com/simaogato/calctrail/internal/operation"
)

// Calculator is the calculation engine. Single-threaded by design: one
// transaction at a time, no internal locking.
type Calculator struct {
	cfg       *config.Config
	repo      domain.HistoryRepository
	logger    *zap.Logger
	maxInput  decimal.Decimal
	history   []domain.Calculation
	undoStack []domain.HistorySnapshot
	redoStack []domain.HistorySnapshot
	active    operation.Operation
	observers []Observer
}

// New creates a Calculator with empty history and no active operation.
func New(cfg *config.Config, repo domain.HistoryRepository, logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Calculator{
		cfg:       cfg,
		repo:      repo,
		logger:    logger,
		maxInput:  cfg.MaxInput(),
		history:   make([]domain.Calculation, 0),
		undoStack: make([]domain.HistorySnapshot, 0),
		redoStack: make([]domain.HistorySnapshot, 0),
	}
	c.logger.Info("calculator initialized",
		zap.Int("max_history_size", cfg.MaxHistorySize),
		zap.Int32("precision", cfg.Precision))
	return c
}

// SetOperation replaces the active operation. Always succeeds.
func (c *Calculator) SetOperation(op operation.Operation) {
	c.active = op
	if op != nil {
		c.logger.Debug("operation set", zap.String("operation", op.Name()))
	}
}

// Perform converts both raw operands, executes the active operation,
// records the calculation, and notifies observers. No engine state is
// mutated before validation and execution have succeeded.
func (c *Calculator) Perform(ctx context.Context, rawA, rawB string) (decimal.Decimal, error) {
	if c.active == nil {
		return decimal.Decimal{}, domain.NewOperationError("no operation set", nil)
	}

	a, err := domain.ParseOperand(rawA, c.maxInput)
	if err != nil {
		return decimal.Decimal{}, err
	}
	b, err := domain.ParseOperand(rawB, c.maxInput)
	if err != nil {
		return decimal.Decimal{}, err
	}

	if err := c.active.Validate(a, b); err != nil {
		return decimal.Decimal{}, err
	}
	result, err := c.active.Execute(a, b)
	if err != nil {
		return decimal.Decimal{}, err
	}

	calc := domain.NewCalculation(c.active.Name(), a, b, result)

	// Snapshot pre-state so the calculation can be undone. A new
	// calculation branches the timeline, so redo history is dropped.
	c.undoStack = append(c.undoStack, domain.NewHistorySnapshot(c.history))
	c.redoStack = c.redoStack[:0]

	c.history = append(c.history, calc)
	if len(c.history) > c.cfg.MaxHistorySize {
		c.history = c.history[1:]
	}

	c.logger.Info("calculation performed",
		zap.String("id", calc.ID.String()),
		zap.String("operation", calc.Operation),
		zap.String("operand1", calc.Operand1.String()),
		zap.String("operand2", calc.Operand2.String()),
		zap.String("result", calc.Result.String()))

	c.notifyObservers()

	return result, nil
}

// Undo restores the history state that preceded the most recent
// calculation. Returns false when there is nothing to undo.
func (c *Calculator) Undo() bool {
	if len(c.undoStack) == 0 {
		return false
	}
	c.redoStack = append(c.redoStack, domain.NewHistorySnapshot(c.history))
	snapshot := c.undoStack[len(c.undoStack)-1]
	c.undoStack = c.undoStack[:len(c.undoStack)-1]
	c.history = domain.CopyHistory(snapshot.History)
	c.logger.Debug("undo applied", zap.Int("history_len", len(c.history)))
	return true
}

// Redo re-applies the most recently undone state. Returns false when
// there is nothing to redo.
func (c *Calculator) Redo() bool {
	if len(c.redoStack) == 0 {
		return false
	}
	c.undoStack = append(c.undoStack, domain.NewHistorySnapshot(c.history))
	snapshot := c.redoStack[len(c.redoStack)-1]
	c.redoStack = c.redoStack[:len(c.redoStack)-1]
	c.history = domain.CopyHistory(snapshot.History)
	c.logger.Debug("redo applied", zap.Int("history_len", len(c.history)))
	return true
}

// History returns an independent copy of the live history.
func (c *Calculator) History() []domain.Calculation {
	return domain.CopyHistory(c.history)
}

// UndoDepth reports how many calculations can currently be undone.
func (c *Calculator) UndoDepth() int { return len(c.undoStack) }

// RedoDepth reports how many undone calculations can be re-applied.
func (c *Calculator) RedoDepth() int { return len(c.redoStack) }

// ShowHistory formats the history for display, one line per record.
func (c *Calculator) ShowHistory() []string {
	lines := make([]string, 0, len(c.history))
	for _, calc := range c.history {
		lines = append(lines, calc.String())
	}
	return lines
}

// HistoryTable projects the history into the tabular shape used for
// persistence: a header row followed by one row per calculation.
func (c *Calculator) HistoryTable() [][]string {
	table := make([][]string, 0, len(c.history)+1)
	table = append(table, domain.RecordColumns)
	for _, calc := range c.history {
		table = append(table, calc.Row())
	}
	return table
}

// ClearHistory empties the history and both snapshot stacks.
func (c *Calculator) ClearHistory() {
	c.history = c.history[:0]
	c.undoStack = c.undoStack[:0]
	c.redoStack = c.redoStack[:0]
	c.logger.Info("history cleared")
}

// SaveHistory persists the full history. Underlying I/O failures are
// wrapped as operation errors.
func (c *Calculator) SaveHistory(ctx context.Context) error {
	if err := c.repo.Save(ctx, c.history); err != nil {
		return domain.NewOperationError("failed to save history", err)
	}
	c.logger.Info("history saved", zap.Int("records", len(c.history)))
	return nil
}

// LoadHistory replaces the live history with the persisted state. The
// undo and redo stacks are left untouched. A missing persisted file
// yields an empty history without error; malformed data surfaces as an
// operation error.
func (c *Calculator) LoadHistory(ctx context.Context) error {
	history, found, err := c.repo.Load(ctx)
	if err != nil {
		return domain.NewOperationError("failed to load history", err)
	}
	if !found {
		c.history = make([]domain.Calculation, 0)
		c.logger.Info("no persisted history found")
		return nil
	}
	c.history = history
	c.logger.Info("history loaded", zap.Int("records", len(c.history)))
	return nil
}

// AddObserver registers an observer notified after each successful
// calculation, in registration order.
func (c *Calculator) AddObserver(obs Observer) {
	c.observers = append(c.observers, obs)
}

// RemoveObserver unregisters a previously added observer.
func (c *Calculator) RemoveObserver(obs Observer) {
	for i, registered := range c.observers {
		if registered == obs {
			c.observers = append(c.observers[:i], c.observers[i+1:]...)
			return
		}
	}
}

func (c *Calculator) notifyObservers() {
	for _, obs := range c.observers {
		obs.CalculationPerformed(c)
	}
}
