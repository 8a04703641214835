package obslog

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/resolvekanren/resolvekanren/internal/logic"
)

func TestStepObserverLogsResolventFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	p := logic.NewProver()
	p.SetObserver(StepObserver(logger))
	p.AddClause(logic.NewClause([]logic.Literal{logic.NewLiteral("P", false)}, logic.InputSource{}))
	p.AddClause(logic.NewClause([]logic.Literal{logic.NewLiteral("P", true)}, logic.InputSource{}))
	p.Run()

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "resolution step", entries[0].Message)
	fields := entries[0].ContextMap()
	require.Equal(t, "□", fields["resolvent"])
	require.Equal(t, true, fields["empty"])
}

func TestLogOutcomeEmitsSummary(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	LogOutcome(logger, "proved", logic.Statistics{TotalSteps: 1, TotalClauses: 2, EmptyClauseFound: true, HistoryLength: 1})

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "resolution run complete", entries[0].Message)
}

func TestNewProducesDebugLevelWhenVerbose(t *testing.T) {
	logger, err := New(true)
	require.NoError(t, err)
	require.NotNil(t, logger)
	require.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	_ = logger.Sync()
}
