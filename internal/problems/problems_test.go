package problems

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/resolvekanren/resolvekanren/internal/logic"
	"github.com/resolvekanren/resolvekanren/internal/logicerr"
)

func TestHowlingHoundsIsWellFormed(t *testing.T) {
	clauses := HowlingHounds()
	require.Len(t, clauses, 6)
	require.NoError(t, logicerr.Validate(clauses...))
}

func TestHowlingHoundsQuiesceOrRefutes(t *testing.T) {
	// This encoding is not guaranteed refutation-complete; the engine must
	// either derive the empty clause or halt quiescently, never loop.
	p := logic.NewProver()
	for _, c := range HowlingHounds() {
		p.AddClause(c)
	}
	outcome := p.Run()
	require.Contains(t, []logic.RunOutcome{logic.Proved, logic.Quiescent}, outcome)
}

func TestDrugDealerIsWellFormed(t *testing.T) {
	clauses := DrugDealer()
	require.Len(t, clauses, 10)
	require.NoError(t, logicerr.Validate(clauses...))
}

func TestDrugDealerMistranscribedClausePreservedVerbatim(t *testing.T) {
	clauses := DrugDealer()
	mistranscribed := clauses[8]
	require.Len(t, mistranscribed.Literals, 4)
	require.False(t, mistranscribed.Literals[2].Negated,
		"CustomsOfficial(x) must remain positive, the known mistranscription")
}

func TestByName(t *testing.T) {
	_, ok := ByName("howling-hounds")
	require.True(t, ok)
	_, ok = ByName("drug-dealer")
	require.True(t, ok)
	_, ok = ByName("no-such-problem")
	require.False(t, ok)
}

func TestNames(t *testing.T) {
	require.ElementsMatch(t, []string{"howling-hounds", "drug-dealer"}, Names())
}
