// Package propagate implements the constraint propagators of
// github.com/katalvlaran/csolve: plain backtracking (BT), forward
// checking (FC) and generalized arc consistency (GAC), all behind the
// single Propagator contract consumed by package search.
//
// The Propagator contract:
//
//   - Called with newVar == nil exactly once per search run, before
//     any assignment is made, to do whatever root-level processing
//     the algorithm needs.
//   - Called with newVar set immediately after each trial assignment.
//   - Returns ok == false on a domain wipe-out (DWO): some Variable's
//     current domain became empty, so the branch is a dead end.
//   - Returns the exact list of (Variable, Value) pairs the call
//     itself pruned, never values pruned earlier and never a value
//     twice. The search driver undoes precisely this list on
//     backtrack; it is the only channel through which pruning is ever
//     restored.
//
// Pruning strength is monotone: any dead end BT detects, FC detects;
// any dead end FC detects, GAC detects.
//
// Errors are reserved for programmer-contract breaches surfaced by
// the model layer; dead ends are ordinary results, not errors.
package propagate
