// Package model loads declarative CSP problem definitions from YAML
// into a ready-to-solve csp.CSP.
//
// A problem file names its variables with their domains and its
// constraints over ordered scopes. A constraint body is either an
// expression over the scope variable names or an explicit table of
// satisfying tuples:
//
//	name: demo
//	variables:
//	  - name: A
//	    domain: [1, 2, 3]
//	  - name: B
//	    domain: [1, 2, 3]
//	constraints:
//	  - name: lt
//	    scope: [A, B]
//	    expr: "A < B"
//	  - scope: [A, B]
//	    tuples: [[1, 2], [1, 3]]
//
// YAML integers decode as int, so expression arithmetic and table
// lookups behave uniformly across domains and tuples.
package model
