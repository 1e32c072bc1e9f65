package csp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csolve/csp"
)

// lessThan orders a two-variable scope: first value < second value.
var lessThan = csp.PredicateFunc(func(vals []csp.Value) bool {
	return vals[0].(int) < vals[1].(int)
})

func TestNewConstraint_Errors(t *testing.T) {
	a := csp.NewVariable("A", 1)

	_, err := csp.NewConstraint("empty", nil, lessThan)
	assert.ErrorIs(t, err, csp.ErrEmptyScope)

	_, err = csp.NewConstraint("nopred", []*csp.Variable{a}, nil)
	assert.ErrorIs(t, err, csp.ErrNilPredicate)

	_, err = csp.NewConstraint("nilvar", []*csp.Variable{a, nil}, lessThan)
	assert.ErrorIs(t, err, csp.ErrNilScopeVariable)

	_, err = csp.NewConstraint("dup", []*csp.Variable{a, a}, lessThan)
	assert.ErrorIs(t, err, csp.ErrDuplicateScopeVar)
}

func TestConstraint_ScopeIsCopied(t *testing.T) {
	a := csp.NewVariable("A", 1)
	b := csp.NewVariable("B", 1)
	scope := []*csp.Variable{a, b}
	c, err := csp.NewConstraint("c", scope, lessThan)
	require.NoError(t, err)

	scope[0] = nil // caller mutation must not reach the constraint
	got := c.Scope()
	assert.Equal(t, []*csp.Variable{a, b}, got)

	got[1] = nil // accessor returns a copy too
	assert.Equal(t, []*csp.Variable{a, b}, c.Scope())
}

func TestConstraint_Check_ScopeOrder(t *testing.T) {
	a := csp.NewVariable("A", 1, 2)
	b := csp.NewVariable("B", 1, 2)
	c, err := csp.NewConstraint("lt", []*csp.Variable{a, b}, lessThan)
	require.NoError(t, err)

	require.NoError(t, a.Assign(1))
	require.NoError(t, b.Assign(2))
	sat, err := c.Check()
	require.NoError(t, err)
	assert.True(t, sat)

	require.NoError(t, a.Unassign())
	require.NoError(t, b.Unassign())
	// scope order matters: B=1, A=2 violates A < B
	require.NoError(t, a.Assign(2))
	require.NoError(t, b.Assign(1))
	sat, err = c.Check()
	require.NoError(t, err)
	assert.False(t, sat)
}

func TestConstraint_Check_UnassignedScope(t *testing.T) {
	a := csp.NewVariable("A", 1)
	b := csp.NewVariable("B", 1)
	c, err := csp.NewConstraint("lt", []*csp.Variable{a, b}, lessThan)
	require.NoError(t, err)

	require.NoError(t, a.Assign(1))
	_, err = c.Check()
	assert.ErrorIs(t, err, csp.ErrUnassignedScope)
}

func TestConstraint_Memoization(t *testing.T) {
	calls := 0
	counting := csp.PredicateFunc(func(vals []csp.Value) bool {
		calls++

		return vals[0].(int) < vals[1].(int)
	})
	a := csp.NewVariable("A", 1)
	b := csp.NewVariable("B", 2)
	c, err := csp.NewConstraint("lt", []*csp.Variable{a, b}, counting)
	require.NoError(t, err)

	require.NoError(t, a.Assign(1))
	require.NoError(t, b.Assign(2))
	for i := 0; i < 3; i++ {
		sat, cerr := c.Check()
		require.NoError(t, cerr)
		assert.True(t, sat)
	}
	// purity makes the cached result valid for repeated tuples
	assert.Equal(t, 1, calls)
}

func TestConstraint_HasSupport_Unary(t *testing.T) {
	a := csp.NewVariable("A", 1, 2)
	even := csp.PredicateFunc(func(vals []csp.Value) bool {
		return vals[0].(int)%2 == 0
	})
	c, err := csp.NewConstraint("even", []*csp.Variable{a}, even)
	require.NoError(t, err)

	assert.False(t, c.HasSupport(a, 1))
	assert.True(t, c.HasSupport(a, 2))
}

func TestConstraint_HasSupport_Binary(t *testing.T) {
	a := csp.NewVariable("A", 1, 2)
	b := csp.NewVariable("B", 1, 2)
	c, err := csp.NewConstraint("lt", []*csp.Variable{a, b}, lessThan)
	require.NoError(t, err)

	assert.True(t, c.HasSupport(a, 1), "B=2 supports A=1")
	assert.False(t, c.HasSupport(a, 2), "no B value exceeds 2")
	assert.True(t, c.HasSupport(b, 2))
	assert.False(t, c.HasSupport(b, 1))

	// support is drawn from current domains, so pruning removes it
	require.NoError(t, b.PruneValue(2))
	assert.False(t, c.HasSupport(a, 1))
}

func TestConstraint_HasSupport_RespectsAssignment(t *testing.T) {
	a := csp.NewVariable("A", 1, 2)
	b := csp.NewVariable("B", 1, 2)
	c, err := csp.NewConstraint("lt", []*csp.Variable{a, b}, lessThan)
	require.NoError(t, err)

	// an assigned variable contributes only its assigned value
	require.NoError(t, b.Assign(1))
	assert.False(t, c.HasSupport(a, 1))

	require.NoError(t, b.Unassign())
	assert.True(t, c.HasSupport(a, 1))
}

func TestConstraint_HasSupport_OutOfScope(t *testing.T) {
	a := csp.NewVariable("A", 1)
	b := csp.NewVariable("B", 1)
	x := csp.NewVariable("X", 1)
	c, err := csp.NewConstraint("lt", []*csp.Variable{a, b}, lessThan)
	require.NoError(t, err)

	assert.True(t, c.HasSupport(x, 1))
}

func TestConstraint_UnassignedAccessors(t *testing.T) {
	a := csp.NewVariable("A", 1)
	b := csp.NewVariable("B", 1)
	d := csp.NewVariable("C", 1)
	c, err := csp.NewConstraint("c", []*csp.Variable{a, b, d}, csp.PredicateFunc(func([]csp.Value) bool {
		return true
	}))
	require.NoError(t, err)

	assert.Equal(t, 3, c.Arity())
	assert.Equal(t, 3, c.UnassignedCount())
	assert.Equal(t, []*csp.Variable{a, b, d}, c.UnassignedVars())

	require.NoError(t, b.Assign(1))
	assert.Equal(t, 2, c.UnassignedCount())
	assert.Equal(t, []*csp.Variable{a, d}, c.UnassignedVars())

	assert.True(t, c.InScope(b))
	assert.False(t, c.InScope(csp.NewVariable("Z", 1)))
}
