package csp

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// exprPredicate evaluates a compiled boolean expression whose
// identifiers are scope Variable names. The program is compiled once;
// each Evaluate builds an environment mapping names to the candidate
// values.
type exprPredicate struct {
	src     string
	names   []string
	program *vm.Program
}

// Evaluate implements Predicate. A runtime evaluation error counts as
// unsatisfied; expressions are expected to be total over the domains
// they constrain.
func (p *exprPredicate) Evaluate(vals []Value) bool {
	env := make(map[string]any, len(p.names))
	for i, name := range p.names {
		env[name] = vals[i]
	}
	out, err := vm.Run(p.program, env)
	if err != nil {
		return false
	}
	sat, ok := out.(bool)

	return ok && sat
}

// NewExprConstraint builds a Constraint whose predicate is the
// compiled expression src, evaluated with each scope Variable's name
// bound to its candidate value:
//
//	lt, err := csp.NewExprConstraint("lt", []*csp.Variable{a, b}, "A < B")
//
// The expression must be pure and yield a boolean; compilation
// failures are reported as ErrBadExpression.
func NewExprConstraint(name string, scope []*Variable, src string) (*Constraint, error) {
	program, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrBadExpression, src, err)
	}
	names := make([]string, len(scope))
	for i, v := range scope {
		if v == nil {
			return nil, fmt.Errorf("%w: %s", ErrNilScopeVariable, name)
		}
		names[i] = v.Name()
	}

	return NewConstraint(name, scope, &exprPredicate{src: src, names: names, program: program})
}
