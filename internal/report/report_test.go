package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/resolvekanren/resolvekanren/internal/logic"
)

func unitContradiction() []*logic.Clause {
	return []*logic.Clause{
		logic.NewClause([]logic.Literal{logic.NewLiteral("P", false)}, logic.InputSource{}),
		logic.NewClause([]logic.Literal{logic.NewLiteral("P", true)}, logic.InputSource{}),
	}
}

func TestLogRunRecordsExperiment(t *testing.T) {
	l := NewLog()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(5 * time.Millisecond)

	exp := l.Run("unit contradiction", "P and not-P", unitContradiction(), logic.DefaultConfig(), start, end)

	require.Equal(t, "proved", exp.Outcome)
	require.Len(t, exp.Clauses, 2)
	require.NotEmpty(t, exp.Steps)
	require.Equal(t, 5*time.Millisecond, exp.Duration)
	require.Len(t, l.Experiments(), 1)
}

func TestLogTextIncludesOutcomeAndSteps(t *testing.T) {
	l := NewLog()
	start := time.Now()
	l.Run("unit contradiction", "P and not-P", unitContradiction(), logic.DefaultConfig(), start, start)

	text := l.Text()
	require.Contains(t, text, "unit contradiction")
	require.Contains(t, text, "proved")
	require.Contains(t, text, "Resolution steps")
}

func TestLogRecordUsesPrecomputedResults(t *testing.T) {
	p := logic.NewProver()
	for _, c := range unitContradiction() {
		p.AddClause(c)
	}
	outcome := p.Run()

	l := NewLog()
	start := time.Now()
	exp := l.Record("precomputed", "already run", []string{"P()", "¬P()"}, p.History(), outcome.String(), p.Statistics(), start, start)

	require.Equal(t, "proved", exp.Outcome)
	require.Len(t, exp.Steps, len(p.History()))
	require.Len(t, l.Experiments(), 1)
}

func TestDiffExperimentsIsEmptyForDeterministicRepeat(t *testing.T) {
	l1, l2 := NewLog(), NewLog()
	start := time.Now()
	exp1 := l1.Run("unit contradiction", "P and not-P", unitContradiction(), logic.DefaultConfig(), start, start)
	exp2 := l2.Run("unit contradiction", "P and not-P", unitContradiction(), logic.DefaultConfig(), start, start)

	require.Empty(t, DiffExperiments(exp1, exp2))
}

func TestDiffExperimentsReportsOutcomeMismatch(t *testing.T) {
	start := time.Now()
	proved := NewLog().Run("p", "p", unitContradiction(), logic.DefaultConfig(), start, start)
	quiescent := NewLog().Run("q", "q", []*logic.Clause{
		logic.NewClause([]logic.Literal{logic.NewLiteral("Q", false)}, logic.InputSource{}),
	}, logic.DefaultConfig(), start, start)

	require.NotEmpty(t, DiffExperiments(proved, quiescent))
}

func TestLogJSONRoundTrips(t *testing.T) {
	l := NewLog()
	start := time.Now()
	l.Run("unit contradiction", "P and not-P", unitContradiction(), logic.DefaultConfig(), start, start)

	data, err := l.JSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, float64(1), decoded["total_experiments"])
}
