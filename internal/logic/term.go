// Package logic implements the reasoning kernel of a first-order resolution
// theorem prover: terms, literals, clauses, a Robinson-style unifier, and a
// saturation-based resolution engine. The kernel is synchronous and
// single-threaded by design — callers needing concurrency run multiple
// independent Provers rather than sharing one across goroutines.
package logic

import (
	"hash/fnv"
	"strings"
)

// Term is any value in the first-order language: a variable or a compound
// (functor applied to zero or more argument terms; zero arguments is the
// constant case). Term is a closed, two-constructor tagged union —
// Variable and Compound are the only implementations — rather than a
// single struct whose "kind" is a runtime flag.
type Term interface {
	// String renders the term using the prover's printed form.
	String() string

	// Equal reports whether two terms are structurally identical.
	Equal(other Term) bool

	// IsVar reports whether the term is a Variable.
	IsVar() bool

	// Hash returns a value stable across structurally-equal terms, so
	// terms can serve as set members and map keys.
	Hash() uint64

	// ContainsVariable reports whether name occurs anywhere in the term,
	// used by the unifier's occurs-check.
	ContainsVariable(name string) bool

	// DeepCopy returns a term structurally equal to the receiver that
	// shares no mutable state with it. Terms are already immutable, so
	// this mainly documents the contract for callers crossing ownership
	// boundaries (e.g. stashing a term in a Clause's ancestry record).
	DeepCopy() Term
}

// Variable is a named logic variable.
type Variable struct {
	Name string
}

// NewVariable constructs a variable with the given name.
func NewVariable(name string) *Variable {
	return &Variable{Name: name}
}

func (v *Variable) String() string { return v.Name }

// Equal reports whether other is a Variable with the same name. Name
// equality is meaningful only within a single clause or after
// standardization has made names globally unique — see Clause.Standardize.
func (v *Variable) Equal(other Term) bool {
	ov, ok := other.(*Variable)
	return ok && ov.Name == v.Name
}

func (v *Variable) IsVar() bool { return true }

func (v *Variable) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte("var:"))
	h.Write([]byte(v.Name))
	return h.Sum64()
}

func (v *Variable) ContainsVariable(name string) bool { return v.Name == name }

func (v *Variable) DeepCopy() Term { return &Variable{Name: v.Name} }

// Compound is a functor applied to an ordered argument list. A Compound
// with no arguments is a constant; the printer distinguishes that case by
// omitting the parentheses.
type Compound struct {
	Functor string
	Args    []Term
}

// NewCompound constructs a compound term (or, with no args, a constant).
func NewCompound(functor string, args ...Term) *Compound {
	return &Compound{Functor: functor, Args: args}
}

// NewConstant constructs a zero-arity compound, i.e. a constant symbol.
func NewConstant(name string) *Compound {
	return &Compound{Functor: name}
}

func (c *Compound) String() string {
	if len(c.Args) == 0 {
		return c.Functor
	}
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return c.Functor + "(" + strings.Join(parts, ", ") + ")"
}

func (c *Compound) Equal(other Term) bool {
	oc, ok := other.(*Compound)
	if !ok || oc.Functor != c.Functor || len(oc.Args) != len(c.Args) {
		return false
	}
	for i := range c.Args {
		if !c.Args[i].Equal(oc.Args[i]) {
			return false
		}
	}
	return true
}

func (c *Compound) IsVar() bool { return false }

func (c *Compound) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte("cmp:"))
	h.Write([]byte(c.Functor))
	for _, a := range c.Args {
		var buf [8]byte
		v := a.Hash()
		for i := 0; i < 8; i++ {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}
	return h.Sum64()
}

func (c *Compound) ContainsVariable(name string) bool {
	for _, a := range c.Args {
		if a.ContainsVariable(name) {
			return true
		}
	}
	return false
}

func (c *Compound) DeepCopy() Term {
	args := make([]Term, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.DeepCopy()
	}
	return &Compound{Functor: c.Functor, Args: args}
}
