package logic

import "github.com/google/uuid"

// Config holds the resolution engine's tunable parameters, consolidated
// into a single engine configuration rather than duplicated across
// separate copies of the search loop.
type Config struct {
	// Budget is the maximum number of resolution steps performed before
	// the engine reports BudgetExhausted. Must be positive.
	Budget int

	// TautologyElimination discards resolvents containing a syntactic
	// complementary pair. Default true.
	TautologyElimination bool

	// CanonicalSort controls whether literals are sorted before computing
	// a clause's duplicate-suppression key. Sorting is the stronger form.
	CanonicalSort bool
}

// DefaultConfig returns the engine's default configuration: a budget of
// 1000 steps, tautology elimination on, and sorted canonical keys.
func DefaultConfig() Config {
	return Config{Budget: 1000, TautologyElimination: true, CanonicalSort: true}
}

// RunOutcome is the distinguished result of a saturation run.
type RunOutcome int

const (
	// Quiescent means a full round produced no new, non-tautological
	// clause: the search completed without finding a proof.
	Quiescent RunOutcome = iota
	// BudgetExhausted means the step counter reached Config.Budget
	// before a proof was found or the search went quiescent.
	BudgetExhausted
	// Proved means the empty clause was derived.
	Proved
)

// String renders the outcome using one of three fixed user-visible
// strings: callers must never conflate BudgetExhausted with Quiescent.
func (o RunOutcome) String() string {
	switch o {
	case Proved:
		return "proved"
	case BudgetExhausted:
		return "budget exhausted"
	default:
		return "no proof found"
	}
}

// Step records one resolution inference for the history log.
type Step struct {
	Index            int
	Parent1, Parent2 *Clause
	Lit1, Lit2       Literal
	Subst            *Substitution
	Resolvent        *Clause
	IsEmpty          bool
}

// Observer receives a callback after every resolution step, instead of
// rebinding the engine's resolve method at runtime to capture steps for
// logging; an explicit callback lets the kernel stay free of any
// particular logger.
type Observer func(Step)

// Statistics summarizes a completed (or in-progress) run.
type Statistics struct {
	TotalSteps       int
	TotalClauses     int
	EmptyClauseFound bool
	HistoryLength    int
}

// Prover is the saturation-based resolution engine. A Prover instance owns
// its working set, seen-set, and history exclusively for the duration of
// one Run call; it is not safe to share a Prover across goroutines. The
// engine performs no I/O beyond appending to its own history log.
type Prover struct {
	config     Config
	counter    *VarCounter
	workingSet []*Clause
	seen       map[string]struct{}
	history    []Step
	steps      int
	emptyFound bool
	observer   Observer
}

// NewProver constructs a Prover with DefaultConfig.
func NewProver() *Prover {
	return NewProverWithConfig(DefaultConfig())
}

// NewProverWithConfig constructs a Prover with an explicit configuration.
func NewProverWithConfig(config Config) *Prover {
	if config.Budget <= 0 {
		config.Budget = DefaultConfig().Budget
	}
	return &Prover{
		config:  config,
		counter: NewVarCounter(),
		seen:    make(map[string]struct{}),
	}
}

// SetObserver installs a callback invoked after each resolution step. Pass
// nil to remove any previously installed observer.
func (p *Prover) SetObserver(obs Observer) {
	p.observer = obs
}

// AddClause standardizes c's variables using the engine-wide counter (so
// names stay globally fresh across every clause ever added) and appends it
// to the working set. Input clauses are not deduplicated against one
// another; duplicate suppression only applies to derived clauses. The
// standardized clause — with its assigned ID — is returned.
func (p *Prover) AddClause(c *Clause) *Clause {
	standardized := c.Standardize(p.counter)
	standardized.ID = newClauseID()
	p.workingSet = append(p.workingSet, standardized)
	return standardized
}

func newClauseID() ClauseID {
	return ClauseID(uuid.New())
}

// Run executes the level-saturation loop until the empty clause is
// derived, the working set goes quiescent, or the step budget is
// exhausted. Run has no suspension points and no cancellation hook by
// design — the kernel is synchronous and single-threaded; a caller
// needing to bound wall-clock time should bound Config.Budget instead.
func (p *Prover) Run() RunOutcome {
	for {
		var newClauses []*Clause
		n := len(p.workingSet)

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				ci, cj := p.workingSet[i], p.workingSet[j]
				if !sharesComplementaryPredicate(ci, cj) {
					continue
				}

				for i1, l1 := range ci.Literals {
					for i2, l2 := range cj.Literals {
						if l1.Predicate != l2.Predicate || l1.Negated == l2.Negated {
							continue
						}

						theta, ok := UnifyLiterals(l1, l2)
						if !ok {
							continue
						}

						resolvent := p.resolve(ci, cj, i1, i2, theta)
						p.steps++
						step := Step{
							Index:     p.steps,
							Parent1:   ci,
							Parent2:   cj,
							Lit1:      l1,
							Lit2:      l2,
							Subst:     theta,
							Resolvent: resolvent,
							IsEmpty:   resolvent.IsEmpty(),
						}
						p.history = append(p.history, step)
						if p.observer != nil {
							p.observer(step)
						}

						if resolvent.IsEmpty() {
							resolvent.ID = newClauseID()
							p.workingSet = append(p.workingSet, resolvent)
							p.emptyFound = true
							return Proved
						}

						if !(p.config.TautologyElimination && resolvent.IsTautology()) {
							key := resolvent.CanonicalKey(p.config.CanonicalSort)
							if _, dup := p.seen[key]; !dup {
								p.seen[key] = struct{}{}
								resolvent.ID = newClauseID()
								newClauses = append(newClauses, resolvent)
							}
						}

						if p.steps >= p.config.Budget {
							return BudgetExhausted
						}
					}
				}
			}
		}

		if len(newClauses) == 0 {
			return Quiescent
		}
		p.workingSet = append(p.workingSet, newClauses...)
	}
}

// resolve implements the binary resolution step: apply theta to every
// literal of both parents, omit the resolved literal pair by position (not
// by equality, so a clause with a literal appearing more than once still
// drops exactly one occurrence), and deduplicate the remaining literals.
func (p *Prover) resolve(c1, c2 *Clause, i1, i2 int, theta *Substitution) *Clause {
	lits := make([]Literal, 0, len(c1.Literals)+len(c2.Literals)-2)
	for i, l := range c1.Literals {
		if i == i1 {
			continue
		}
		lits = append(lits, l.ApplySubstitution(theta))
	}
	for i, l := range c2.Literals {
		if i == i2 {
			continue
		}
		lits = append(lits, l.ApplySubstitution(theta))
	}
	lits = dedupeLiterals(lits)

	source := ResolvedSource{
		Parent1: c1.ID,
		Parent2: c2.ID,
		Lit1:    c1.Literals[i1],
		Lit2:    c2.Literals[i2],
		Subst:   theta,
	}
	return NewClause(lits, source)
}

func dedupeLiterals(lits []Literal) []Literal {
	out := make([]Literal, 0, len(lits))
	for _, l := range lits {
		dup := false
		for _, o := range out {
			if l.Equal(o) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, l)
		}
	}
	return out
}

// sharesComplementaryPredicate is the prefilter from §4.5.3: it compares
// only (predicate, polarity) pairs, never unifiability, and is both sound
// and complete for pair selection because any MGU of two literals'
// arguments preserves their predicate symbols.
func sharesComplementaryPredicate(c1, c2 *Clause) bool {
	set1 := make(map[predPolarity]struct{}, len(c1.Literals))
	for _, l := range c1.Literals {
		set1[l.key()] = struct{}{}
	}
	for _, l := range c2.Literals {
		want := predPolarity{predicate: l.Predicate, negated: !l.Negated}
		if _, ok := set1[want]; ok {
			return true
		}
	}
	return false
}

// Statistics reports the run's current counters.
func (p *Prover) Statistics() Statistics {
	return Statistics{
		TotalSteps:       p.steps,
		TotalClauses:     len(p.workingSet),
		EmptyClauseFound: p.emptyFound,
		HistoryLength:    len(p.history),
	}
}

// History returns the full sequence of resolution steps taken so far.
func (p *Prover) History() []Step {
	return p.history
}

// WorkingSet returns the engine's current clause set. Callers must not
// mutate the returned slice or its elements.
func (p *Prover) WorkingSet() []*Clause {
	return p.workingSet
}
