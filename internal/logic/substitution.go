package logic

import "sort"

// Substitution is a persistent mapping from variable name to term.
//
// Rather than cloning a map on every binding, a Substitution is a sparse
// chain: each node adds exactly one binding on top of its parent, so
// extending a substitution is O(1) and independent branches of a search
// can share structure freely. A nil *Substitution is the empty
// substitution.
type Substitution struct {
	parent  *Substitution
	varName string
	value   Term
}

// EmptySubstitution is the substitution with no bindings.
var EmptySubstitution *Substitution

// Extend returns a new substitution identical to s plus one binding
// name ↦ t. It does not check for cycles; callers (the unifier) are
// responsible for the occurs-check.
func (s *Substitution) Extend(name string, t Term) *Substitution {
	return &Substitution{parent: s, varName: name, value: t}
}

// lookup returns the most recent binding for name, if any.
func (s *Substitution) lookup(name string) (Term, bool) {
	for n := s; n != nil; n = n.parent {
		if n.varName == name {
			return n.value, true
		}
	}
	return nil, false
}

// Walk follows variable bindings until it reaches an unbound variable or a
// non-variable term; it does not descend into compound arguments.
func (s *Substitution) Walk(t Term) Term {
	for {
		v, ok := t.(*Variable)
		if !ok {
			return t
		}
		val, found := s.lookup(v.Name)
		if !found {
			return t
		}
		t = val
	}
}

// Apply walks t and then recursively applies s to every argument of a
// compound result, so bindings are chased transitively through nested
// structure. Applying s to a term never mutates that term; every compound
// with arguments is rebuilt as a new Compound, while constants and
// unbound variables are returned as they are.
func (s *Substitution) Apply(t Term) Term {
	t = s.Walk(t)
	c, ok := t.(*Compound)
	if !ok || len(c.Args) == 0 {
		return t
	}
	args := make([]Term, len(c.Args))
	for i, a := range c.Args {
		args[i] = s.Apply(a)
	}
	return &Compound{Functor: c.Functor, Args: args}
}

// Bindings flattens the chain into a name→term map, most recent binding
// per name winning. Used only for display (History rendering); unification
// and Apply never need the flattened form.
func (s *Substitution) Bindings() map[string]Term {
	out := make(map[string]Term)
	for n := s; n != nil; n = n.parent {
		if _, seen := out[n.varName]; !seen {
			out[n.varName] = n.value
		}
	}
	return out
}

// String renders the substitution as a sorted {x=term, ...} map, useful
// for debugging and for step history rendering.
func (s *Substitution) String() string {
	bindings := s.Bindings()
	if len(bindings) == 0 {
		return "{}"
	}
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	out := "{"
	for i, name := range names {
		if i > 0 {
			out += ", "
		}
		out += name + "=" + bindings[name].String()
	}
	out += "}"
	return out
}
