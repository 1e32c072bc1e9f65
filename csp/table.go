package csp

import "fmt"

// TablePredicate is a Predicate backed by an explicit table of
// satisfying tuples: a tuple satisfies the predicate iff it was
// registered. It is the representational alternative to closure
// predicates for constraints that are easiest to state by
// enumeration, and can be filled incrementally before search starts.
type TablePredicate struct {
	arity int
	rows  map[string]struct{}
}

// NewTablePredicate builds a table predicate of the given arity with
// an optional initial set of satisfying tuples. Returns
// ErrArityMismatch if any tuple length differs from arity.
func NewTablePredicate(arity int, tuples ...[]Value) (*TablePredicate, error) {
	t := &TablePredicate{
		arity: arity,
		rows:  make(map[string]struct{}, len(tuples)),
	}
	if err := t.AddSatisfyingTuples(tuples...); err != nil {
		return nil, err
	}

	return t, nil
}

// Arity returns the tuple length the table accepts.
func (t *TablePredicate) Arity() int { return t.arity }

// AddSatisfyingTuples registers more satisfying tuples. Each tuple
// pairs values positionally with the constraint scope. Returns
// ErrArityMismatch on a length mismatch; previously added tuples are
// kept.
func (t *TablePredicate) AddSatisfyingTuples(tuples ...[]Value) error {
	for _, row := range tuples {
		if len(row) != t.arity {
			return fmt.Errorf("%w: got %d values, want %d", ErrArityMismatch, len(row), t.arity)
		}
		t.rows[tupleKey(row)] = struct{}{}
	}

	return nil
}

// Len returns the number of registered satisfying tuples.
func (t *TablePredicate) Len() int { return len(t.rows) }

// Evaluate implements Predicate by membership test.
func (t *TablePredicate) Evaluate(vals []Value) bool {
	if len(vals) != t.arity {
		return false
	}
	_, ok := t.rows[tupleKey(vals)]

	return ok
}

// NewTableConstraint builds a Constraint whose predicate is a tuple
// table over the given scope. Tuples pair values with scope positions.
func NewTableConstraint(name string, scope []*Variable, tuples ...[]Value) (*Constraint, error) {
	pred, err := NewTablePredicate(len(scope), tuples...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return NewConstraint(name, scope, pred)
}
