package propagate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csolve/propagate"
)

func TestBT_RootIsNoOp(t *testing.T) {
	cs, _, _ := lessAB(t)

	ok, pruned, err := propagate.BT(cs, nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, pruned)
}

func TestBT_IgnoresPartiallyAssignedConstraints(t *testing.T) {
	cs, a, _ := lessAB(t)
	require.NoError(t, a.Assign(2)) // doomed, but the constraint is not fully assigned yet

	ok, pruned, err := propagate.BT(cs, a)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, pruned)
}

func TestBT_RejectsViolatedFullAssignment(t *testing.T) {
	cs, a, b := lessAB(t)
	require.NoError(t, a.Assign(2))
	require.NoError(t, b.Assign(1))

	ok, pruned, err := propagate.BT(cs, b)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, pruned, "BT never prunes")
}

func TestBT_AcceptsSatisfiedFullAssignment(t *testing.T) {
	cs, a, b := lessAB(t)
	require.NoError(t, a.Assign(1))
	require.NoError(t, b.Assign(2))

	ok, pruned, err := propagate.BT(cs, b)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, pruned)
}
