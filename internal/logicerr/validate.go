package logicerr

import (
	"fmt"

	"github.com/resolvekanren/resolvekanren/internal/logic"
)

// Validate performs an advisory, best-effort arity check: a predicate
// used with inconsistent arities across the input clause set. It never
// runs inside the kernel itself — AddClause accepts whatever it is
// given — callers opt in by calling Validate before handing clauses to
// a Prover.
func Validate(clauses ...*logic.Clause) error {
	arity := make(map[string]int)
	for _, c := range clauses {
		for _, l := range c.Literals {
			if want, seen := arity[l.Predicate]; seen {
				if want != len(l.Args) {
					return fmt.Errorf("%w: predicate %q used with arity %d and %d across the input",
						ErrMalformedClause, l.Predicate, want, len(l.Args))
				}
			} else {
				arity[l.Predicate] = len(l.Args)
			}
		}
	}
	return nil
}
