package logic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLiteralString(t *testing.T) {
	t.Run("positive literal", func(t *testing.T) {
		l := NewLiteral("P", false, NewConstant("a"))
		require.Equal(t, "P(a)", l.String())
	})

	t.Run("negated literal", func(t *testing.T) {
		l := NewLiteral("P", true, NewConstant("a"))
		require.Equal(t, "¬P(a)", l.String())
	})

	t.Run("nullary negative literal keeps empty parentheses", func(t *testing.T) {
		l := NewLiteral("P", true)
		require.Equal(t, "¬P()", l.String())
	})
}

func TestComplement(t *testing.T) {
	p := NewLiteral("P", false, NewConstant("a"))
	notP := NewLiteral("P", true, NewConstant("a"))
	notQ := NewLiteral("Q", true, NewConstant("a"))
	pB := NewLiteral("P", false, NewConstant("b"))

	require.True(t, Complement(p, notP))
	require.True(t, Complement(notP, p))
	require.False(t, Complement(p, notQ), "different predicate")
	require.False(t, Complement(p, pB), "different arguments")
	require.False(t, Complement(p, p), "same polarity")
}

func TestLiteralApplySubstitution(t *testing.T) {
	theta := EmptySubstitution.Extend("x", NewConstant("a"))
	l := NewLiteral("P", false, NewVariable("x"), NewConstant("b"))

	applied := l.ApplySubstitution(theta)

	require.Equal(t, "P(a, b)", applied.String())
	require.Equal(t, "P(x, b)", l.String(), "ApplySubstitution must not mutate the original literal")
}
