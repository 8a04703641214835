package logic

// maxUnifyDepth bounds the unifier's recursion into nested compound
// structure. Hitting it is treated as an ordinary unification failure,
// not a panic.
const maxUnifyDepth = 64

// Unify computes a most general unifier of t1 and t2 under the empty
// substitution. It reports (nil, false) if no unifier exists — arity/name
// mismatch, occurs-check failure, or recursion-depth cutoff are all
// reported the same way; callers never need to distinguish them.
func Unify(t1, t2 Term) (*Substitution, bool) {
	return UnifyWith(t1, t2, EmptySubstitution)
}

// UnifyWith computes a most general unifier of t1 and t2 under the input
// substitution theta0.
func UnifyWith(t1, t2 Term, theta0 *Substitution) (*Substitution, bool) {
	return unify(t1, t2, theta0, 0)
}

func unify(t1, t2 Term, theta *Substitution, depth int) (*Substitution, bool) {
	if depth > maxUnifyDepth {
		return nil, false
	}

	t1 = theta.Walk(t1)
	t2 = theta.Walk(t2)

	if t1.Equal(t2) {
		return theta, true
	}

	if v, ok := t1.(*Variable); ok {
		if theta.Apply(t2).ContainsVariable(v.Name) {
			return nil, false
		}
		return theta.Extend(v.Name, t2), true
	}

	if v, ok := t2.(*Variable); ok {
		if theta.Apply(t1).ContainsVariable(v.Name) {
			return nil, false
		}
		return theta.Extend(v.Name, t1), true
	}

	c1, ok1 := t1.(*Compound)
	c2, ok2 := t2.(*Compound)
	if !ok1 || !ok2 {
		return nil, false
	}
	if c1.Functor != c2.Functor || len(c1.Args) != len(c2.Args) {
		return nil, false
	}

	var ok bool
	for i := range c1.Args {
		theta, ok = unify(c1.Args[i], c2.Args[i], theta, depth+1)
		if !ok {
			return nil, false
		}
	}
	return theta, true
}

// UnifyLiterals computes the MGU of two literals' argument tuples. It
// requires equal predicate symbols and equal arities; polarity is ignored
// here — callers that care about complementarity (the resolution engine)
// check it separately before calling UnifyLiterals.
func UnifyLiterals(l1, l2 Literal) (*Substitution, bool) {
	if l1.Predicate != l2.Predicate || len(l1.Args) != len(l2.Args) {
		return nil, false
	}

	theta := EmptySubstitution
	var ok bool
	for i := range l1.Args {
		theta, ok = unify(l1.Args[i], l2.Args[i], theta, 0)
		if !ok {
			return nil, false
		}
	}
	return theta, true
}
