package logic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVariable(t *testing.T) {
	t.Run("String returns its name", func(t *testing.T) {
		v := NewVariable("x")
		require.Equal(t, "x", v.String())
	})

	t.Run("Equal compares by name", func(t *testing.T) {
		require.True(t, NewVariable("x").Equal(NewVariable("x")))
		require.False(t, NewVariable("x").Equal(NewVariable("y")))
		require.False(t, NewVariable("x").Equal(NewConstant("x")))
	})

	t.Run("IsVar is true", func(t *testing.T) {
		require.True(t, NewVariable("x").IsVar())
	})

	t.Run("ContainsVariable matches only its own name", func(t *testing.T) {
		v := NewVariable("x")
		require.True(t, v.ContainsVariable("x"))
		require.False(t, v.ContainsVariable("y"))
	})

	t.Run("DeepCopy produces an equal but distinct value", func(t *testing.T) {
		v := NewVariable("x")
		cp := v.DeepCopy()
		require.True(t, v.Equal(cp))
		require.NotSame(t, v, cp)
	})
}

func TestCompound(t *testing.T) {
	t.Run("nullary compound prints without parentheses", func(t *testing.T) {
		require.Equal(t, "a", NewConstant("a").String())
	})

	t.Run("compound with args prints functor and arg list", func(t *testing.T) {
		f := NewCompound("f", NewConstant("a"), NewVariable("x"))
		require.Equal(t, "f(a, x)", f.String())
	})

	t.Run("Equal requires same functor, arity, and args", func(t *testing.T) {
		a := NewCompound("f", NewConstant("a"), NewConstant("b"))
		b := NewCompound("f", NewConstant("a"), NewConstant("b"))
		c := NewCompound("f", NewConstant("a"), NewConstant("c"))
		d := NewCompound("g", NewConstant("a"), NewConstant("b"))
		require.True(t, a.Equal(b))
		require.False(t, a.Equal(c))
		require.False(t, a.Equal(d))
		require.False(t, a.Equal(NewVariable("f")))
	})

	t.Run("a name alone never determines a term", func(t *testing.T) {
		// Invariant 4: compound terms and variables are never confused by
		// name alone; a constant "x" and a variable "x" are distinct.
		require.False(t, NewConstant("x").Equal(NewVariable("x")))
		require.False(t, NewVariable("x").IsVar() == NewConstant("x").IsVar())
	})

	t.Run("ContainsVariable recurses into arguments", func(t *testing.T) {
		f := NewCompound("f", NewConstant("a"), NewCompound("g", NewVariable("x")))
		require.True(t, f.ContainsVariable("x"))
		require.False(t, f.ContainsVariable("y"))
	})

	t.Run("DeepCopy builds a structurally equal, independent tree", func(t *testing.T) {
		f := NewCompound("f", NewVariable("x"))
		cp := f.DeepCopy().(*Compound)
		require.True(t, f.Equal(cp))
		require.NotSame(t, f, cp)
		require.NotSame(t, f.Args[0], cp.Args[0])
	})

	t.Run("Hash is stable across equal terms", func(t *testing.T) {
		a := NewCompound("f", NewConstant("a"), NewVariable("x"))
		b := NewCompound("f", NewConstant("a"), NewVariable("x"))
		require.Equal(t, a.Hash(), b.Hash())
	})
}
