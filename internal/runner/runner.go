// Package runner runs independent prover instances concurrently. Each
// logic.Prover is itself strictly single-threaded and synchronous; this
// package is the one place concurrency enters the system, fanning a batch
// of independent problems out across a fixed pool of goroutines.
package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/resolvekanren/resolvekanren/internal/logic"
)

// Job is one independent unit of work: a named clause set and the engine
// configuration to run it with.
type Job struct {
	Name        string
	Description string
	Clauses     []*logic.Clause
	Config      logic.Config
}

// Result is the outcome of running a single Job.
type Result struct {
	Job        Job
	Outcome    logic.RunOutcome
	Statistics logic.Statistics
	History    []logic.Step
	Duration   time.Duration
	Err        error
}

// Runner executes a fixed number of Jobs concurrently across a bounded
// pool of goroutines. It carries no dynamic scaling: a batch of provers
// is independent, bounded, short-lived work, not the open-ended search
// fan-out a scaling policy exists to smooth out.
type Runner struct {
	maxWorkers int
	stats      *Stats
}

// New constructs a Runner with the given worker count. A non-positive
// count defaults to the number of available CPUs.
func New(maxWorkers int) *Runner {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}
	return &Runner{maxWorkers: maxWorkers, stats: newStats()}
}

// Run executes every job and returns one Result per job, in the same
// order as jobs. If ctx is cancelled, jobs not yet started are skipped and
// their Result carries ctx.Err(); jobs already running finish. Run returns
// once every worker has stopped, with ctx.Err() as its error.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))
	jobChan := make(chan int, len(jobs))
	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	var wg sync.WaitGroup
	workers := r.maxWorkers
	if workers > len(jobs) && len(jobs) > 0 {
		workers = len(jobs)
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobChan {
				select {
				case <-ctx.Done():
					results[i] = Result{Job: jobs[i], Err: ctx.Err()}
					r.stats.recordCancelled()
					continue
				default:
				}
				results[i] = r.runOne(jobs[i])
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

func (r *Runner) runOne(job Job) Result {
	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			r.stats.recordFailed()
		}
	}()

	p := logic.NewProverWithConfig(job.Config)
	for _, c := range job.Clauses {
		p.AddClause(c)
	}
	outcome := p.Run()
	r.stats.recordCompleted()

	return Result{
		Job:        job,
		Outcome:    outcome,
		Statistics: p.Statistics(),
		History:    p.History(),
		Duration:   time.Since(start),
	}
}

// Stats returns a snapshot of the runner's cumulative statistics.
func (r *Runner) Stats() StatsSnapshot {
	return r.stats.snapshot()
}

// Stats collects counters across every job a Runner has executed.
type Stats struct {
	mu        sync.Mutex
	completed int
	failed    int
	cancelled int
}

func newStats() *Stats { return &Stats{} }

func (s *Stats) recordCompleted() {
	s.mu.Lock()
	s.completed++
	s.mu.Unlock()
}

func (s *Stats) recordFailed() {
	s.mu.Lock()
	s.failed++
	s.mu.Unlock()
}

func (s *Stats) recordCancelled() {
	s.mu.Lock()
	s.cancelled++
	s.mu.Unlock()
}

// StatsSnapshot is an immutable copy of a Stats at one point in time.
type StatsSnapshot struct {
	Completed int
	Failed    int
	Cancelled int
}

func (s *Stats) snapshot() StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return StatsSnapshot{Completed: s.completed, Failed: s.failed, Cancelled: s.cancelled}
}

// String renders the snapshot the way the batch CLI reports it.
func (s StatsSnapshot) String() string {
	return fmt.Sprintf("completed=%d failed=%d cancelled=%d", s.Completed, s.Failed, s.Cancelled)
}
