package logic

import "strings"

// Literal is a predicate applied to an argument tuple, with a polarity.
// Arity is fixed per predicate by convention only; the kernel does not
// enforce it.
type Literal struct {
	Predicate string
	Args      []Term
	Negated   bool
}

// NewLiteral constructs a literal. negated=true produces ¬predicate(args...).
func NewLiteral(predicate string, negated bool, args ...Term) Literal {
	return Literal{Predicate: predicate, Args: args, Negated: negated}
}

// String renders the literal in the prover's printed form: a leading ¬ for
// negated literals, then predicate(args, ...). A nullary negative literal
// prints with empty parentheses, e.g. ¬P().
func (l Literal) String() string {
	var b strings.Builder
	if l.Negated {
		b.WriteString("¬")
	}
	b.WriteString(l.Predicate)
	b.WriteByte('(')
	for i, a := range l.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Equal reports syntactic identity: same predicate, same polarity, equal
// argument sequence.
func (l Literal) Equal(other Literal) bool {
	if l.Predicate != other.Predicate || l.Negated != other.Negated || len(l.Args) != len(other.Args) {
		return false
	}
	for i := range l.Args {
		if !l.Args[i].Equal(other.Args[i]) {
			return false
		}
	}
	return true
}

// Complement reports whether a and b are syntactically complementary:
// identical predicate and arguments, opposite polarity.
func Complement(a, b Literal) bool {
	if a.Predicate != b.Predicate || a.Negated == b.Negated || len(a.Args) != len(b.Args) {
		return false
	}
	for i := range a.Args {
		if !a.Args[i].Equal(b.Args[i]) {
			return false
		}
	}
	return true
}

// ApplySubstitution returns a new literal with θ applied to every argument.
func (l Literal) ApplySubstitution(theta *Substitution) Literal {
	args := make([]Term, len(l.Args))
	for i, a := range l.Args {
		args[i] = theta.Apply(a)
	}
	return Literal{Predicate: l.Predicate, Args: args, Negated: l.Negated}
}

// DeepCopy returns a literal sharing no mutable state with the receiver.
func (l Literal) DeepCopy() Literal {
	args := make([]Term, len(l.Args))
	for i, a := range l.Args {
		args[i] = a.DeepCopy()
	}
	return Literal{Predicate: l.Predicate, Args: args, Negated: l.Negated}
}

// key returns the literal's (predicate, polarity) pair as a comparable
// predPolarity value, used by the resolution engine's complementary-predicate
// prefilter.
func (l Literal) key() predPolarity {
	return predPolarity{predicate: l.Predicate, negated: l.Negated}
}

// predPolarity is a (predicate, polarity) pair as used by the resolution
// engine's prefilter: it is compared for equality, never for
// unifiability, which is what makes the prefilter O(1) per pair.
type predPolarity struct {
	predicate string
	negated   bool
}
