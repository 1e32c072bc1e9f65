package model_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csolve/csp"
	"github.com/katalvlaran/csolve/model"
	"github.com/katalvlaran/csolve/propagate"
	"github.com/katalvlaran/csolve/search"
)

const demoProblem = `
name: demo
variables:
  - name: A
    domain: [1, 2]
  - name: B
    domain: [1, 2]
constraints:
  - name: lt
    scope: [A, B]
    expr: "A < B"
`

func TestParse_ExprProblem(t *testing.T) {
	cs, err := model.Parse([]byte(demoProblem))
	require.NoError(t, err)
	assert.Equal(t, "demo", cs.Name())
	require.Len(t, cs.Variables(), 2)
	require.Len(t, cs.Constraints(), 1)

	res, err := search.Solve(cs, propagate.GAC)
	require.NoError(t, err)
	require.True(t, res.Solved)

	av, _ := cs.Variable("A").AssignedValue()
	bv, _ := cs.Variable("B").AssignedValue()
	assert.Equal(t, 1, av, "YAML integers decode as int")
	assert.Equal(t, 2, bv)
}

func TestParse_TableProblem(t *testing.T) {
	src := `
name: table
variables:
  - name: X
    domain: [1, 2, 3]
  - name: Y
    domain: [1, 2, 3]
constraints:
  - scope: [X, Y]
    tuples: [[1, 3], [2, 1]]
`
	cs, err := model.Parse([]byte(src))
	require.NoError(t, err)

	res, err := search.Solve(cs, propagate.FC)
	require.NoError(t, err)
	require.True(t, res.Solved)

	xv, _ := cs.Variable("X").AssignedValue()
	yv, _ := cs.Variable("Y").AssignedValue()
	sat := (xv == 1 && yv == 3) || (xv == 2 && yv == 1)
	assert.True(t, sat, "solution must be a registered tuple, got X=%v Y=%v", xv, yv)
}

func TestParse_StringDomains(t *testing.T) {
	src := `
name: colors
variables:
  - name: L
    domain: [red, green]
  - name: R
    domain: [red, green]
constraints:
  - name: differ
    scope: [L, R]
    expr: "L != R"
`
	cs, err := model.Parse([]byte(src))
	require.NoError(t, err)

	res, err := search.Solve(cs, propagate.GAC)
	require.NoError(t, err)
	require.True(t, res.Solved)

	lv, _ := cs.Variable("L").AssignedValue()
	rv, _ := cs.Variable("R").AssignedValue()
	assert.NotEqual(t, lv, rv)
}

func TestParse_Errors(t *testing.T) {
	_, err := model.Parse([]byte("name: empty\n"))
	assert.ErrorIs(t, err, model.ErrNoVariables)

	_, err = model.Parse([]byte(`
name: p
variables:
  - name: A
    domain: []
`))
	assert.ErrorIs(t, err, model.ErrEmptyDomain)

	_, err = model.Parse([]byte(`
name: p
variables:
  - name: A
    domain: [1]
constraints:
  - scope: [A, Z]
    expr: "A == Z"
`))
	assert.ErrorIs(t, err, model.ErrUnknownScopeName)

	_, err = model.Parse([]byte(`
name: p
variables:
  - name: A
    domain: [1]
constraints:
  - scope: [A]
`))
	assert.ErrorIs(t, err, model.ErrConstraintForm)

	_, err = model.Parse([]byte(`
name: p
variables:
  - name: A
    domain: [1]
constraints:
  - scope: [A]
    expr: "A <"
`))
	assert.ErrorIs(t, err, csp.ErrBadExpression)
}

func TestParse_DefaultConstraintNames(t *testing.T) {
	src := `
name: p
variables:
  - name: A
    domain: [1]
constraints:
  - scope: [A]
    expr: "A == 1"
`
	cs, err := model.Parse([]byte(src))
	require.NoError(t, err)
	require.Len(t, cs.Constraints(), 1)
	assert.Equal(t, "c0", cs.Constraints()[0].Name())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(demoProblem), 0o644))

	cs, err := model.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", cs.Name())

	_, err = model.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
