package csp

import "errors"

// Sentinel errors for model operations. All of them report
// programmer-contract breaches; expected search outcomes (domain
// wipe-outs, exhausted search) never surface as errors.
var (
	// ErrValueNotInDomain indicates a prune or unprune of a value the
	// Variable's permanent domain does not contain.
	ErrValueNotInDomain = errors.New("csp: value not in variable domain")
	// ErrAlreadyAssigned indicates an Assign on a Variable that already
	// holds an assignment.
	ErrAlreadyAssigned = errors.New("csp: variable already assigned")
	// ErrNotInCurrentDomain indicates an Assign of a value outside the
	// Variable's current domain.
	ErrNotInCurrentDomain = errors.New("csp: value not in current domain")
	// ErrNotAssigned indicates an Unassign on an unassigned Variable.
	ErrNotAssigned = errors.New("csp: variable not assigned")
	// ErrEmptyScope indicates a Constraint built over no Variables.
	ErrEmptyScope = errors.New("csp: constraint scope is empty")
	// ErrNilScopeVariable indicates a nil Variable in a Constraint scope.
	ErrNilScopeVariable = errors.New("csp: constraint scope contains nil variable")
	// ErrDuplicateScopeVar indicates a Variable appearing twice in one scope.
	ErrDuplicateScopeVar = errors.New("csp: constraint scope contains duplicate variable")
	// ErrNilPredicate indicates a Constraint built without a Predicate.
	ErrNilPredicate = errors.New("csp: constraint predicate is nil")
	// ErrUnassignedScope indicates a Check on a Constraint whose scope
	// is not fully assigned.
	ErrUnassignedScope = errors.New("csp: constraint scope not fully assigned")
	// ErrArityMismatch indicates a satisfying tuple whose length differs
	// from the constraint scope size.
	ErrArityMismatch = errors.New("csp: tuple length does not match scope size")
	// ErrDuplicateVariable indicates adding a Variable whose identity or
	// name is already registered with the CSP.
	ErrDuplicateVariable = errors.New("csp: variable already added to CSP")
	// ErrUnknownVariable indicates adding a Constraint whose scope
	// contains a Variable not registered with the CSP.
	ErrUnknownVariable = errors.New("csp: constraint scope contains unknown variable")
	// ErrBadExpression indicates an expression constraint that failed to
	// compile.
	ErrBadExpression = errors.New("csp: invalid constraint expression")
)
