package csp

import "fmt"

// Value is a single domain element. Values must be comparable (they
// key prune flags and memoization tables) and are treated as opaque
// by the engine: predicates are functions of Values alone, never of
// Variable identity.
type Value any

// Variable is a named slot with a permanent, append-only domain and a
// prunable current domain.
//
// The current domain is a per-value flag over the permanent domain:
// pruning clears a flag, unpruning sets it back. Assignment is an
// independent view override: while a Variable is assigned, its current
// domain is observably the singleton holding the assigned value, but
// the flags are untouched, so prune/unprune and assign/unassign
// commute during search.
//
// Variables are compared by identity. Not safe for concurrent use.
type Variable struct {
	name   string
	domain []Value        // insertion order; append-only
	live   map[Value]bool // true = not pruned
	nlive  int            // count of true flags, kept in sync

	assigned bool
	value    Value
}

// NewVariable constructs a Variable with the given name and initial
// domain values. Duplicate values are ignored. More values can be
// added later with AddDomainValues; values can never be removed.
func NewVariable(name string, domain ...Value) *Variable {
	v := &Variable{
		name:   name,
		domain: make([]Value, 0, len(domain)),
		live:   make(map[Value]bool, len(domain)),
	}
	v.AddDomainValues(domain...)

	return v
}

// Name returns the Variable's name, unique within its CSP.
func (v *Variable) Name() string { return v.name }

// AddDomainValues extends the permanent domain with vals, initializing
// each new value as present in the current domain. Values already in
// the domain are ignored; removal is not supported.
func (v *Variable) AddDomainValues(vals ...Value) {
	for _, val := range vals {
		if _, ok := v.live[val]; ok {
			continue
		}
		v.domain = append(v.domain, val)
		v.live[val] = true
		v.nlive++
	}
}

// Domain returns a copy of the permanent domain in insertion order.
func (v *Variable) Domain() []Value {
	out := make([]Value, len(v.domain))
	copy(out, v.domain)

	return out
}

// DomainSize returns the size of the permanent domain. O(1).
func (v *Variable) DomainSize() int { return len(v.domain) }

// InDomain reports whether val belongs to the permanent domain.
func (v *Variable) InDomain(val Value) bool {
	_, ok := v.live[val]

	return ok
}

// PruneValue removes val from the current domain. Pruning an already
// pruned value is a no-op; pruning a value outside the permanent
// domain returns ErrValueNotInDomain. The assignment view is not
// affected.
func (v *Variable) PruneValue(val Value) error {
	alive, ok := v.live[val]
	if !ok {
		return fmt.Errorf("%w: %v(%v)", ErrValueNotInDomain, v, val)
	}
	if alive {
		v.live[val] = false
		v.nlive--
	}

	return nil
}

// UnpruneValue restores val to the current domain. Restoring a value
// already present is a no-op; restoring a value outside the permanent
// domain returns ErrValueNotInDomain.
func (v *Variable) UnpruneValue(val Value) error {
	alive, ok := v.live[val]
	if !ok {
		return fmt.Errorf("%w: %v(%v)", ErrValueNotInDomain, v, val)
	}
	if !alive {
		v.live[val] = true
		v.nlive++
	}

	return nil
}

// InCurrentDomain reports whether val is in the current domain. While
// assigned, only the assigned value is current, regardless of flags.
func (v *Variable) InCurrentDomain(val Value) bool {
	if v.assigned {
		return val == v.value
	}

	return v.live[val]
}

// CurrentDomain returns the current domain as a fresh slice. While
// assigned it is the singleton holding the assigned value; otherwise
// it lists the unpruned values in permanent-domain order, so iteration
// order is deterministic.
func (v *Variable) CurrentDomain() []Value {
	if v.assigned {
		return []Value{v.value}
	}
	out := make([]Value, 0, v.nlive)
	for _, val := range v.domain {
		if v.live[val] {
			out = append(out, val)
		}
	}

	return out
}

// CurrentDomainSize returns the current domain size without building
// the slice. O(1).
func (v *Variable) CurrentDomainSize() int {
	if v.assigned {
		return 1
	}

	return v.nlive
}

// RestoreCurrentDomain returns every permanent-domain value to the
// current domain. Used to reset a Variable to its unconstrained state
// between independent search runs, not between branches.
func (v *Variable) RestoreCurrentDomain() {
	for _, val := range v.domain {
		v.live[val] = true
	}
	v.nlive = len(v.domain)
}

// Assigned reports whether the Variable holds an assignment.
func (v *Variable) Assigned() bool { return v.assigned }

// AssignedValue returns the assigned value and whether one is held.
func (v *Variable) AssignedValue() (Value, bool) {
	if !v.assigned {
		return nil, false
	}

	return v.value, true
}

// Assign gives the Variable a tentative value. It returns
// ErrAlreadyAssigned if an assignment is already held, and
// ErrNotInCurrentDomain if val is not in the current domain. The
// prune flags are untouched, so assignment and pruning stay
// independent.
func (v *Variable) Assign(val Value) error {
	if v.assigned {
		return fmt.Errorf("%w: %v", ErrAlreadyAssigned, v)
	}
	if !v.live[val] {
		return fmt.Errorf("%w: %v(%v)", ErrNotInCurrentDomain, v, val)
	}
	v.assigned = true
	v.value = val

	return nil
}

// Unassign clears the tentative value, reverting the current-domain
// view to the prune flags, which are unchanged from before Assign.
// Returns ErrNotAssigned if no assignment is held.
func (v *Variable) Unassign() error {
	if !v.assigned {
		return fmt.Errorf("%w: %v", ErrNotAssigned, v)
	}
	v.assigned = false
	v.value = nil

	return nil
}

// String implements fmt.Stringer.
func (v *Variable) String() string { return fmt.Sprintf("Variable(%s)", v.name) }
