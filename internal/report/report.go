// Package report accumulates the results of one or more prover runs into
// an experiment log, and renders it as either a human-readable text
// report or a JSON document. It is an external collaborator: the kernel
// never imports this package.
package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/resolvekanren/resolvekanren/internal/logic"
)

// StepRecord is the serializable form of a logic.Step.
type StepRecord struct {
	Step         int    `json:"step"`
	Clause1      string `json:"clause1"`
	Clause2      string `json:"clause2"`
	Literal1     string `json:"literal1"`
	Literal2     string `json:"literal2"`
	Substitution string `json:"substitution"`
	Resolvent    string `json:"resolvent"`
	IsEmpty      bool   `json:"is_empty"`
}

// Experiment records one named run of the prover end to end: the initial
// clause set, every resolution step taken, and the final outcome.
type Experiment struct {
	ProblemName        string           `json:"problem_name"`
	ProblemDescription string           `json:"problem_description"`
	StartedAt          time.Time        `json:"started_at"`
	Duration           time.Duration    `json:"duration_ns"`
	Clauses            []string         `json:"clauses"`
	Steps              []StepRecord     `json:"resolution_steps"`
	Outcome            string           `json:"outcome"`
	Statistics         logic.Statistics `json:"statistics"`
}

// Log accumulates a sequence of experiments, mirroring the run-many,
// report-once workflow a batch of problems is put through.
type Log struct {
	experiments []Experiment
}

// NewLog constructs an empty experiment log.
func NewLog() *Log {
	return &Log{}
}

// Run executes a prover to completion against the given clauses, recording
// every step and the outcome as one experiment, and appends it to the log.
// startedAt is supplied by the caller since the kernel and this package
// never call time.Now themselves at the point of recording an individual
// step; only the caller stamps wall-clock boundaries.
func (l *Log) Run(name, description string, clauses []*logic.Clause, cfg logic.Config, startedAt time.Time, finishedAt time.Time, observers ...logic.Observer) Experiment {
	p := logic.NewProverWithConfig(cfg)
	for _, obs := range observers {
		p.SetObserver(obs)
	}

	clauseStrs := make([]string, 0, len(clauses))
	for _, c := range clauses {
		p.AddClause(c)
		clauseStrs = append(clauseStrs, c.String())
	}

	outcome := p.Run()

	return l.Record(name, description, clauseStrs, p.History(), outcome.String(), p.Statistics(), startedAt, finishedAt)
}

// Record appends an experiment built from an already-completed run, for
// callers (such as a concurrent batch runner) that execute the prover
// themselves and only need this package for accumulation and rendering.
func (l *Log) Record(name, description string, clauseStrs []string, history []logic.Step, outcome string, stats logic.Statistics, startedAt, finishedAt time.Time) Experiment {
	steps := make([]StepRecord, 0, len(history))
	for _, s := range history {
		steps = append(steps, StepRecord{
			Step:         s.Index,
			Clause1:      s.Parent1.String(),
			Clause2:      s.Parent2.String(),
			Literal1:     s.Lit1.String(),
			Literal2:     s.Lit2.String(),
			Substitution: s.Subst.String(),
			Resolvent:    s.Resolvent.String(),
			IsEmpty:      s.IsEmpty,
		})
	}

	exp := Experiment{
		ProblemName:        name,
		ProblemDescription: description,
		StartedAt:          startedAt,
		Duration:           finishedAt.Sub(startedAt),
		Clauses:            clauseStrs,
		Steps:              steps,
		Outcome:            outcome,
		Statistics:         stats,
	}
	l.experiments = append(l.experiments, exp)
	return exp
}

// Experiments returns the recorded experiments in run order.
func (l *Log) Experiments() []Experiment {
	return l.experiments
}

// Text renders the log as the human-readable report.
func (l *Log) Text() string {
	var b strings.Builder
	fmt.Fprintln(&b, "Resolution Theorem Prover experiment report")
	fmt.Fprintln(&b, strings.Repeat("=", 60))
	fmt.Fprintf(&b, "Experiments: %d\n\n", len(l.experiments))

	for i, exp := range l.experiments {
		fmt.Fprintf(&b, "Experiment %d: %s\n", i+1, exp.ProblemName)
		fmt.Fprintf(&b, "Description: %s\n", exp.ProblemDescription)
		fmt.Fprintf(&b, "Started: %s\n", exp.StartedAt.Format(time.RFC3339))
		fmt.Fprintf(&b, "Duration: %s\n", exp.Duration)
		fmt.Fprintf(&b, "Outcome: %s\n", exp.Outcome)
		fmt.Fprintf(&b, "Steps taken: %d\n", exp.Statistics.TotalSteps)
		fmt.Fprintf(&b, "Clauses produced: %d\n", exp.Statistics.TotalClauses)

		fmt.Fprintln(&b, "\nInitial clauses:")
		for j, c := range exp.Clauses {
			fmt.Fprintf(&b, "  %2d. %s\n", j+1, c)
		}

		if len(exp.Steps) > 0 {
			fmt.Fprintf(&b, "\nResolution steps (%d total):\n", len(exp.Steps))
			for _, s := range exp.Steps {
				marker := " "
				if s.IsEmpty {
					marker = "*"
				}
				fmt.Fprintf(&b, "  step %d: %s %s\n", s.Step, marker, s.Resolvent)
			}
		}

		fmt.Fprintln(&b, strings.Repeat("-", 60))
	}

	return b.String()
}

// DiffExperiments reports the structural difference between two
// experiments, ignoring wall-clock fields that are expected to differ
// between repeated runs of the same deterministic problem. An empty
// result means the two runs produced identical clauses, steps, and
// outcome.
func DiffExperiments(a, b Experiment) string {
	return cmp.Diff(a, b, cmpopts.IgnoreFields(Experiment{}, "StartedAt", "Duration"))
}

// JSON renders the log as an indented JSON document.
func (l *Log) JSON() ([]byte, error) {
	return json.MarshalIndent(struct {
		TotalExperiments int          `json:"total_experiments"`
		Experiments      []Experiment `json:"experiments"`
	}{
		TotalExperiments: len(l.experiments),
		Experiments:      l.experiments,
	}, "", "  ")
}
