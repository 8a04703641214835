// Package logicerr collects the error values used at the boundary around
// the resolution kernel. The kernel itself never returns an error — its
// distinguished results (unification failure, run outcome) are ordinary
// values — but the external collaborators that feed it clauses and report
// on its runs need conventional Go errors.
package logicerr

import "errors"

var (
	// ErrMalformedClause is returned by the advisory Validate helper when
	// a predicate is invoked with inconsistent arities across the input.
	// Validate does not look for variables whose names clash with compound
	// functors. Detection is best-effort and opt-in: the
	// kernel itself treats malformed input as undefined behaviour, so
	// this check exists only for callers that want it.
	ErrMalformedClause = errors.New("logicerr: malformed clause")

	// ErrUnknownProblem is returned by the CLI when the problem-encoding
	// registry (problems.ByName) does not know the requested encoding.
	ErrUnknownProblem = errors.New("logicerr: unknown problem encoding")

	// ErrEmptyProblem is returned when a problem encoding would produce
	// no clauses at all, which is never useful to hand to a prover.
	ErrEmptyProblem = errors.New("logicerr: problem encoding produced no clauses")
)
