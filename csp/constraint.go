package csp

import (
	"fmt"
	"strings"
)

// Predicate decides whether one full assignment to a constraint's
// scope is satisfying. Evaluate receives the values in scope order.
//
// Predicates must be pure: a function of the values alone, never of
// Variable identity, time, or external state. Purity is what allows
// Constraint to memoize results per value combination.
type Predicate interface {
	Evaluate(vals []Value) bool
}

// PredicateFunc adapts an ordinary function to the Predicate interface.
type PredicateFunc func(vals []Value) bool

// Evaluate implements Predicate.
func (f PredicateFunc) Evaluate(vals []Value) bool { return f(vals) }

// Constraint couples an ordered scope of distinct Variables with a
// satisfaction Predicate. The scope order is semantically significant:
// predicates and satisfying tuples pair values with scope positions.
// The scope is immutable after construction.
type Constraint struct {
	name  string
	scope []*Variable
	pred  Predicate
	memo  map[string]bool // full-assignment result cache, valid by purity
}

// NewConstraint builds a Constraint over the given ordered scope.
// Returns ErrEmptyScope, ErrNilScopeVariable, ErrDuplicateScopeVar or
// ErrNilPredicate on malformed input. The scope slice is copied.
func NewConstraint(name string, scope []*Variable, pred Predicate) (*Constraint, error) {
	if len(scope) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyScope, name)
	}
	if pred == nil {
		return nil, fmt.Errorf("%w: %s", ErrNilPredicate, name)
	}
	seen := make(map[*Variable]struct{}, len(scope))
	for _, v := range scope {
		if v == nil {
			return nil, fmt.Errorf("%w: %s", ErrNilScopeVariable, name)
		}
		if _, dup := seen[v]; dup {
			return nil, fmt.Errorf("%w: %s contains %v twice", ErrDuplicateScopeVar, name, v)
		}
		seen[v] = struct{}{}
	}
	c := &Constraint{
		name:  name,
		scope: make([]*Variable, len(scope)),
		pred:  pred,
		memo:  make(map[string]bool),
	}
	copy(c.scope, scope)

	return c, nil
}

// Name returns the constraint's name.
func (c *Constraint) Name() string { return c.name }

// Scope returns a copy of the ordered scope.
func (c *Constraint) Scope() []*Variable {
	out := make([]*Variable, len(c.scope))
	copy(out, c.scope)

	return out
}

// Arity returns the scope size.
func (c *Constraint) Arity() int { return len(c.scope) }

// InScope reports whether v belongs to the scope (by identity).
func (c *Constraint) InScope(v *Variable) bool {
	for _, sv := range c.scope {
		if sv == v {
			return true
		}
	}

	return false
}

// UnassignedCount returns the number of unassigned scope Variables.
func (c *Constraint) UnassignedCount() int {
	n := 0
	for _, v := range c.scope {
		if !v.Assigned() {
			n++
		}
	}

	return n
}

// UnassignedVars returns the unassigned scope Variables in scope order.
func (c *Constraint) UnassignedVars() []*Variable {
	out := make([]*Variable, 0, len(c.scope))
	for _, v := range c.scope {
		if !v.Assigned() {
			out = append(out, v)
		}
	}

	return out
}

// Check evaluates the predicate against the current assignment of
// every scope Variable. Every scope Variable must be assigned;
// otherwise Check returns ErrUnassignedScope.
func (c *Constraint) Check() (bool, error) {
	vals := make([]Value, len(c.scope))
	for i, v := range c.scope {
		val, ok := v.AssignedValue()
		if !ok {
			return false, fmt.Errorf("%w: %v in %v", ErrUnassignedScope, v, c)
		}
		vals[i] = val
	}

	return c.evaluate(vals), nil
}

// HasSupport reports whether assigning val to v can be extended to a
// full satisfying assignment of the scope, with every other scope
// Variable drawing from its current domain. A Variable outside the
// scope is trivially supported; a scope of size one degenerates to a
// direct predicate call on val.
//
// The search is a bounded walk of the cross-product of current
// domains, exponential in scope size; scopes are small in practice
// and each full tuple result is memoized.
func (c *Constraint) HasSupport(v *Variable, val Value) bool {
	pos := -1
	for i, sv := range c.scope {
		if sv == v {
			pos = i
			break
		}
	}
	if pos < 0 {
		return true
	}
	if len(c.scope) == 1 {
		return c.evaluate([]Value{val})
	}
	vals := make([]Value, len(c.scope))
	vals[pos] = val

	return c.supported(vals, 0, pos)
}

// supported extends vals from scope position i onward, skipping the
// fixed position, and reports whether any completion satisfies the
// predicate.
func (c *Constraint) supported(vals []Value, i, fixed int) bool {
	if i == len(c.scope) {
		return c.evaluate(vals)
	}
	if i == fixed {
		return c.supported(vals, i+1, fixed)
	}
	for _, val := range c.scope[i].CurrentDomain() {
		vals[i] = val
		if c.supported(vals, i+1, fixed) {
			return true
		}
	}

	return false
}

// evaluate runs the predicate on one full value tuple, consulting and
// filling the memoization cache.
func (c *Constraint) evaluate(vals []Value) bool {
	key := tupleKey(vals)
	if sat, ok := c.memo[key]; ok {
		return sat
	}
	sat := c.pred.Evaluate(vals)
	c.memo[key] = sat

	return sat
}

// String implements fmt.Stringer.
func (c *Constraint) String() string {
	names := make([]string, len(c.scope))
	for i, v := range c.scope {
		names[i] = v.Name()
	}

	return fmt.Sprintf("%s(%s)", c.name, strings.Join(names, ","))
}

// tupleKey renders a value tuple as a cache key. Types are included
// so that, say, int(1) and string("1") never collide.
func tupleKey(vals []Value) string {
	var b strings.Builder
	for _, val := range vals {
		fmt.Fprintf(&b, "%T=%v\x1f", val, val)
	}

	return b.String()
}
