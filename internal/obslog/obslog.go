// Package obslog wires the resolution engine's Observer callback to
// structured logging, following the zap-based logger setup the CLI layer
// of the source system this project is modeled after uses.
package obslog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/resolvekanren/resolvekanren/internal/logic"
)

// New builds a zap logger. Production config is used by default; verbose
// drops the level to Debug.
func New(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

// StepObserver returns a logic.Observer that logs one structured record
// per resolution step. It is an external collaborator only: the kernel
// itself never imports zap or any other logging library.
func StepObserver(logger *zap.Logger) logic.Observer {
	return func(step logic.Step) {
		logger.Debug("resolution step",
			zap.Int("step", step.Index),
			zap.String("parent1", step.Parent1.String()),
			zap.String("parent2", step.Parent2.String()),
			zap.String("lit1", step.Lit1.String()),
			zap.String("lit2", step.Lit2.String()),
			zap.String("substitution", step.Subst.String()),
			zap.String("resolvent", step.Resolvent.String()),
			zap.Bool("empty", step.IsEmpty),
		)
	}
}

// LogOutcome logs a completed run's outcome and statistics at Info level.
// outcome is the outcome's rendered string (RunOutcome.String()) rather
// than the type itself, so callers reporting on an already-finished
// report.Experiment don't need to reconstruct a logic.RunOutcome.
func LogOutcome(logger *zap.Logger, outcome string, stats logic.Statistics) {
	logger.Info("resolution run complete",
		zap.String("outcome", outcome),
		zap.Int("total_steps", stats.TotalSteps),
		zap.Int("total_clauses", stats.TotalClauses),
		zap.Bool("empty_clause_found", stats.EmptyClauseFound),
		zap.Int("history_length", stats.HistoryLength),
	)
}
