package runner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/resolvekanren/resolvekanren/internal/logic"
)

func contradictionJob(name string) Job {
	return Job{
		Name: name,
		Clauses: []*logic.Clause{
			logic.NewClause([]logic.Literal{logic.NewLiteral("P", false)}, logic.InputSource{}),
			logic.NewClause([]logic.Literal{logic.NewLiteral("P", true)}, logic.InputSource{}),
		},
		Config: logic.DefaultConfig(),
	}
}

func TestRunnerRunsAllJobsInOrder(t *testing.T) {
	r := New(4)
	jobs := []Job{contradictionJob("a"), contradictionJob("b"), contradictionJob("c")}

	results, err := r.Run(context.Background(), jobs)

	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, res := range results {
		require.Equal(t, jobs[i].Name, res.Job.Name)
		require.Equal(t, logic.Proved, res.Outcome)
		require.NoError(t, res.Err)
	}
	require.Equal(t, 3, r.Stats().Completed)
}

func TestRunnerDefaultsWorkerCount(t *testing.T) {
	r := New(0)
	require.Greater(t, r.maxWorkers, 0)
}

func TestRunnerRespectsCancelledContext(t *testing.T) {
	r := New(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := r.Run(ctx, []Job{contradictionJob("a")})

	require.Error(t, err)
	require.Len(t, results, 1)
	require.Error(t, results[0].Err)
}

func TestRunnerEmptyJobSet(t *testing.T) {
	r := New(2)
	results, err := r.Run(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestRunnerHandlesManyJobsWithFewWorkers(t *testing.T) {
	r := New(2)
	jobs := make([]Job, 10)
	for i := range jobs {
		jobs[i] = contradictionJob("job")
	}

	start := time.Now()
	results, err := r.Run(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, results, 10)
	require.Less(t, time.Since(start), 5*time.Second)
}
