package calculator

import (
	"context"

	"go.uber.org/zap"
)

// Observer is notified after each successful calculation. Observers may
// read the engine's history but must not mutate engine state from
// within the callback; no reentrancy guarantee is provided.
type Observer interface {
	CalculationPerformed(c *Calculator)
}

// LoggingObserver writes a log line for every calculation.
type LoggingObserver struct {
	logger *zap.Logger
}

// NewLoggingObserver creates a LoggingObserver writing through logger.
func NewLoggingObserver(logger *zap.Logger) *LoggingObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingObserver{logger: logger}
}

func (o *LoggingObserver) CalculationPerformed(c *Calculator) {
	history := c.History()
	if len(history) == 0 {
		return
	}
	latest := history[len(history)-1]
	o.logger.Info("calculation recorded",
		zap.String("operation", latest.Operation),
		zap.String("operands", latest.Operand1.String()+", "+latest.Operand2.String()),
		zap.String("result", latest.Result.String()))
}

// AutoSaveObserver persists the history after every calculation when
// auto-save is enabled. Save failures are logged rather than failing
// the calculation that triggered them.
type AutoSaveObserver struct {
	logger *zap.Logger
}

// NewAutoSaveObserver creates an AutoSaveObserver logging through
// logger.
func NewAutoSaveObserver(logger *zap.Logger) *AutoSaveObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AutoSaveObserver{logger: logger}
}

func (o *AutoSaveObserver) CalculationPerformed(c *Calculator) {
	if !c.cfg.AutoSave {
		return
	}
	if err := c.SaveHistory(context.Background()); err != nil {
		o.logger.Error("auto-save failed", zap.Error(err))
	}
}
