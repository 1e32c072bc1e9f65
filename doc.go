// Package csolve is a constraint-satisfaction-problem (CSP) solving
// engine: a data model for variables with prunable domains, table and
// predicate constraints over ordered scopes, a family of propagators,
// and a depth-first backtracking search driver that combines them.
//
// What csolve brings together:
//
//   - Model: named Variables with append-only domains and a prunable
//     current domain, Constraints as pure predicates (closures,
//     satisfying-tuple tables, or compiled expressions), and a CSP
//     aggregate with a variable-to-constraints index
//   - Propagation: plain backtracking (BT), forward checking (FC),
//     and generalized arc consistency (GAC), all behind one
//     Propagator contract
//   - Search: depth-first backtracking with the minimum-remaining-
//     values heuristic, strict prune/restore bookkeeping, statistics,
//     context cancellation, and structured trace logging
//   - Clients: a tile-matching path puzzle compiled to a CSP, and a
//     YAML problem loader with expression constraints
//
// Everything is organized under small subpackages:
//
//	csp/       — Variable, Constraint, Predicate & CSP aggregate
//	propagate/ — BT, FC, GAC propagators + the Propagator contract
//	search/    — backtracking search driver, options & statistics
//	tileboard/ — tile-path puzzle generator (a csolve client)
//	model/     — declarative YAML problem definitions
//
// Quick example, two variables and one "A < B" constraint:
//
//	a := csp.NewVariable("A", 1, 2)
//	b := csp.NewVariable("B", 1, 2)
//	cs, _ := csp.New("demo", a, b)
//	lt, _ := csp.NewExprConstraint("lt", []*csp.Variable{a, b}, "A < B")
//	_ = cs.AddConstraint(lt)
//	res, _ := search.Solve(cs, propagate.GAC)
//	// res.Solved == true, A=1, B=2
//
//	go get github.com/katalvlaran/csolve
package csolve
