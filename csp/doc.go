// Package csp defines the constraint-satisfaction data model of
// github.com/katalvlaran/csolve: Variables, Constraints and the CSP
// aggregate that propagators and the search driver operate on.
//
// Key concepts:
//
//   - Variable: a named slot with a permanent, append-only domain and
//     a prunable current domain. A Variable may hold one tentative
//     assignment; while assigned, its current domain is observably the
//     singleton holding the assigned value, without touching the
//     underlying prune flags, so pruning and assignment commute.
//   - Predicate: a pure boolean function of the values assigned to a
//     constraint's scope, in scope order. Purity is what makes
//     memoization of full-assignment results valid. Concrete variants
//     are PredicateFunc (closures), TablePredicate (explicit
//     satisfying tuples), and compiled expressions (NewExprConstraint).
//   - Constraint: an ordered, immutable scope of distinct Variables
//     plus a Predicate. Check evaluates the current full assignment;
//     HasSupport answers whether a (Variable, value) pair can still be
//     extended to a satisfying assignment drawn from current domains.
//   - CSP: the aggregate of Variables and Constraints, maintaining an
//     index from each Variable to the Constraints whose scope contains
//     it. The index is always the exact inverse of the scope relation.
//
// Error model: programmer-contract breaches (assigning an assigned
// Variable, pruning a value outside the domain, registering a
// constraint over an unknown Variable, ...) surface immediately as
// sentinel errors. Expected search outcomes such as domain wipe-outs
// are not errors; they are ordinary boolean results in package
// propagate.
//
// Variables and Constraints are compared by identity, not by value;
// the CSP owns them for one search session and shares them, mutably,
// with every propagator and the driver. Nothing in this package is
// safe for concurrent use.
package csp
