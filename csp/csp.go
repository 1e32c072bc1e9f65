package csp

import (
	"fmt"
	"sort"
	"strings"
)

// CSP aggregates the Variables and Constraints of one problem and
// maintains an index from each Variable to the Constraints whose
// scope contains it. The index is always the exact inverse of the
// scope relation: it grows only in AddConstraint, after the scope has
// been validated.
//
// The CSP owns its Variables and Constraints for one search session;
// they are shared, mutably, by every propagator and the search
// driver. Variables and Constraints are stored in insertion order so
// that search and propagation are deterministic.
type CSP struct {
	name string
	vars []*Variable
	cons []*Constraint

	byName map[string]*Variable
	byVar  map[*Variable][]*Constraint
}

// New constructs a CSP with the given name and optional initial
// Variables. Returns ErrDuplicateVariable if any two initial
// Variables collide by identity or name.
func New(name string, vars ...*Variable) (*CSP, error) {
	cs := &CSP{
		name:   name,
		byName: make(map[string]*Variable),
		byVar:  make(map[*Variable][]*Constraint),
	}
	for _, v := range vars {
		if err := cs.AddVariable(v); err != nil {
			return nil, err
		}
	}

	return cs, nil
}

// Name returns the CSP's name.
func (cs *CSP) Name() string { return cs.name }

// AddVariable registers v. Returns ErrDuplicateVariable if v, or
// another Variable with the same name, is already registered; the
// CSP is unchanged on error.
func (cs *CSP) AddVariable(v *Variable) error {
	if _, ok := cs.byVar[v]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateVariable, v)
	}
	if _, ok := cs.byName[v.Name()]; ok {
		return fmt.Errorf("%w: name %q", ErrDuplicateVariable, v.Name())
	}
	cs.vars = append(cs.vars, v)
	cs.byName[v.Name()] = v
	cs.byVar[v] = nil

	return nil
}

// AddConstraint registers c and indexes it under every scope
// Variable. Every scope member must already be registered; otherwise
// ErrUnknownVariable is returned and the CSP is unchanged.
func (cs *CSP) AddConstraint(c *Constraint) error {
	for _, v := range c.Scope() {
		if _, ok := cs.byVar[v]; !ok {
			return fmt.Errorf("%w: %v in %v", ErrUnknownVariable, v, c)
		}
	}
	cs.cons = append(cs.cons, c)
	for _, v := range c.Scope() {
		cs.byVar[v] = append(cs.byVar[v], c)
	}

	return nil
}

// Variables returns all registered Variables in insertion order.
func (cs *CSP) Variables() []*Variable {
	out := make([]*Variable, len(cs.vars))
	copy(out, cs.vars)

	return out
}

// Variable returns the registered Variable with the given name, or
// nil if none exists.
func (cs *CSP) Variable(name string) *Variable { return cs.byName[name] }

// Constraints returns all registered Constraints in insertion order.
func (cs *CSP) Constraints() []*Constraint {
	out := make([]*Constraint, len(cs.cons))
	copy(out, cs.cons)

	return out
}

// ConstraintsWith returns the Constraints whose scope contains v, in
// registration order.
func (cs *CSP) ConstraintsWith(v *Variable) []*Constraint {
	cons := cs.byVar[v]
	out := make([]*Constraint, len(cons))
	copy(out, cons)

	return out
}

// UnassignedVariables returns the currently unassigned Variables in
// insertion order.
func (cs *CSP) UnassignedVariables() []*Variable {
	out := make([]*Variable, 0, len(cs.vars))
	for _, v := range cs.vars {
		if !v.Assigned() {
			out = append(out, v)
		}
	}

	return out
}

// AssignmentString renders the current assignment, one
// "name = value" line per Variable in name order; unassigned
// Variables render as "name = ?".
func (cs *CSP) AssignmentString() string {
	names := make([]string, 0, len(cs.vars))
	for _, v := range cs.vars {
		names = append(names, v.Name())
	}
	sort.Strings(names)
	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte('\n')
		}
		if val, ok := cs.byName[name].AssignedValue(); ok {
			fmt.Fprintf(&b, "%s = %v", name, val)
		} else {
			fmt.Fprintf(&b, "%s = ?", name)
		}
	}

	return b.String()
}

// String implements fmt.Stringer.
func (cs *CSP) String() string {
	return fmt.Sprintf("CSP(%s: %d variables, %d constraints)", cs.name, len(cs.vars), len(cs.cons))
}
