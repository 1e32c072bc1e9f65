package search_test

import (
	"fmt"

	"github.com/katalvlaran/csolve/csp"
	"github.com/katalvlaran/csolve/propagate"
	"github.com/katalvlaran/csolve/search"
)

// ExampleSolve solves the two-variable puzzle A, B over {1,2} with
// the single constraint "A < B" under arc consistency.
func ExampleSolve() {
	a := csp.NewVariable("A", 1, 2)
	b := csp.NewVariable("B", 1, 2)
	cs, _ := csp.New("demo", a, b)
	lt, _ := csp.NewExprConstraint("lt", []*csp.Variable{a, b}, "A < B")
	_ = cs.AddConstraint(lt)

	res, _ := search.Solve(cs, propagate.GAC)
	fmt.Println(res.Solved)
	fmt.Println(cs.AssignmentString())
	// Output:
	// true
	// A = 1
	// B = 2
}
