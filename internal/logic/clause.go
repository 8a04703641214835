package logic

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// ClauseID stably identifies a clause across a proof run. IDs are assigned
// once, on first insertion into an engine's working set, and are never
// derived from pointer identity.
type ClauseID uuid.UUID

func (id ClauseID) String() string { return uuid.UUID(id).String() }

// ClauseSource records how a clause came to exist: either it was supplied
// directly by a caller (InputSource) or it was derived by the resolution
// engine from two parents (ResolvedSource).
type ClauseSource interface {
	isClauseSource()
}

// InputSource marks a clause as caller-supplied.
type InputSource struct{}

func (InputSource) isClauseSource() {}

// ResolvedSource records the ancestry of a derived clause: both parent
// IDs, the two literals resolved away (pre-substitution, as they appeared
// in their own clause), and a copy of the unifying substitution.
type ResolvedSource struct {
	Parent1, Parent2 ClauseID
	Lit1, Lit2       Literal
	Subst            *Substitution
}

func (ResolvedSource) isClauseSource() {}

// Clause is an ordered sequence of literals, read as their disjunction.
// The ordering is an implementation detail only: Clause.Equal compares
// literals as a multiset, matching the logical reading of a clause.
type Clause struct {
	ID       ClauseID
	Literals []Literal
	Source   ClauseSource
}

// NewClause constructs a clause from its literals and source record. The
// clause's ID is left zero; an engine assigns it on insertion.
func NewClause(literals []Literal, source ClauseSource) *Clause {
	return &Clause{Literals: literals, Source: source}
}

// IsEmpty reports whether c is the empty clause ⊥.
func (c *Clause) IsEmpty() bool { return len(c.Literals) == 0 }

// Equal compares two clauses as multisets of literals: order never
// matters to logical meaning, only which literals occur and how often.
func (c *Clause) Equal(other *Clause) bool {
	if len(c.Literals) != len(other.Literals) {
		return false
	}
	used := make([]bool, len(other.Literals))
	for _, l := range c.Literals {
		matched := false
		for j, ol := range other.Literals {
			if used[j] {
				continue
			}
			if l.Equal(ol) {
				used[j] = true
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// IsTautology reports whether the clause contains a syntactic
// complementary pair: same predicate, same argument tuple, opposite
// polarity. No unification is performed — this is the cheap, purely
// syntactic check used for tautology elimination.
func (c *Clause) IsTautology() bool {
	for i := range c.Literals {
		for j := i + 1; j < len(c.Literals); j++ {
			if Complement(c.Literals[i], c.Literals[j]) {
				return true
			}
		}
	}
	return false
}

// String renders the clause as its literals joined by " ∨ "; the empty
// clause renders as "□".
func (c *Clause) String() string {
	if c.IsEmpty() {
		return "□"
	}
	parts := make([]string, len(c.Literals))
	for i, l := range c.Literals {
		parts[i] = l.String()
	}
	return strings.Join(parts, " ∨ ")
}

// CanonicalKey returns the string used by the engine's seen-set to
// suppress duplicate derived clauses. When sortLiterals is true, literals
// are sorted by their printed form first, making the key invariant under
// reordering — the stronger of the two forms. When false, the key
// depends on literal order.
func (c *Clause) CanonicalKey(sortLiterals bool) string {
	parts := make([]string, len(c.Literals))
	for i, l := range c.Literals {
		parts[i] = l.String()
	}
	if sortLiterals {
		sort.Strings(parts)
	}
	return strings.Join(parts, "\x00")
}

// VarCounter generates globally fresh variable names for a single proof
// run. It is threaded through every call to Standardize so that no two
// clauses in the run ever share a variable name by accident.
type VarCounter struct {
	next int64
}

// NewVarCounter returns a counter starting from zero.
func NewVarCounter() *VarCounter {
	return &VarCounter{}
}

// Fresh returns the next fresh variable name.
func (vc *VarCounter) Fresh() string {
	vc.next++
	return fmt.Sprintf("_G%d", vc.next)
}

// Standardize returns a clause identical in structure to c except that
// every variable is renamed to a fresh name drawn from counter. The same
// source name maps to the same fresh name everywhere within c, so shared
// variables stay shared; non-variable subterms are copied unchanged.
func (c *Clause) Standardize(counter *VarCounter) *Clause {
	mapping := make(map[string]string)
	literals := make([]Literal, len(c.Literals))
	for i, l := range c.Literals {
		args := make([]Term, len(l.Args))
		for j, a := range l.Args {
			args[j] = standardizeTerm(a, mapping, counter)
		}
		literals[i] = Literal{Predicate: l.Predicate, Args: args, Negated: l.Negated}
	}
	return &Clause{Literals: literals, Source: c.Source}
}

func standardizeTerm(t Term, mapping map[string]string, counter *VarCounter) Term {
	switch tt := t.(type) {
	case *Variable:
		fresh, ok := mapping[tt.Name]
		if !ok {
			fresh = counter.Fresh()
			mapping[tt.Name] = fresh
		}
		return &Variable{Name: fresh}
	case *Compound:
		if len(tt.Args) == 0 {
			return tt
		}
		args := make([]Term, len(tt.Args))
		for i, a := range tt.Args {
			args[i] = standardizeTerm(a, mapping, counter)
		}
		return &Compound{Functor: tt.Functor, Args: args}
	default:
		return t
	}
}
