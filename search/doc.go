// Package search implements the depth-first backtracking search
// driver of github.com/katalvlaran/csolve.
//
// Solve resets every Variable, runs the chosen propagator once at the
// root, then recurses: pick the unassigned Variable with the smallest
// current domain (minimum-remaining-values; ties go to the first such
// Variable in CSP insertion order, so runs are deterministic), try
// each of its current-domain values in domain order, propagate, and
// recurse. A failed branch undoes exactly the prunes its propagator
// call produced, then the assignment, and tries the next value.
//
// The prune/restore symmetry is the safety-critical contract: every
// value a propagator call prunes at a node is restored exactly once,
// when that node's branch is abandoned, and only through the
// propagator's returned prune list. Variables are shared mutable
// state across the whole search; there are no per-branch copies.
//
// Terminal states: on success the CSP is left fully assigned and
// satisfying; on exhaustion it is left fully unassigned with all
// current domains restored, so re-running the same search is
// idempotent. "No solution" is a result, not an error; errors are
// reserved for context cancellation and broken programmer contracts.
//
// Options (functional, teacher-standard WithX form):
//
//   - WithContext(ctx): cancellation is checked between value trials.
//   - WithLogger(l):    zap trace of decisions, prunes and restores at
//     Debug, run summary at Info. Defaults to zap.NewNop().
package search
