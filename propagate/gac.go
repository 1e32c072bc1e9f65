package propagate

import (
	"sort"

	"github.com/katalvlaran/csolve/csp"
)

// GAC is the generalized arc consistency propagator. It maintains a
// FIFO queue of constraints to revise, seeded with the constraints
// touching newVar (or every constraint on the root call) in ascending
// unassigned-variable count. Revising a constraint removes every
// (Variable, value) pair with no supporting assignment; each prune
// re-enqueues the constraints touching the pruned Variable, since arc
// consistency may have been broken there too. A domain wipe-out
// clears the queue and reports a dead end immediately.
//
// On a successful return the CSP is arc-consistent: every surviving
// value of every Variable has support in every constraint touching
// that Variable.
func GAC(cs *csp.CSP, newVar *csp.Variable) (bool, []Pruned, error) {
	cands := cs.Constraints()
	if newVar != nil {
		cands = cs.ConstraintsWith(newVar)
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].UnassignedCount() < cands[j].UnassignedCount()
	})
	queue := newConstraintQueue(cands)

	var pruned []Pruned
	// seen keeps this call's prune list duplicate-free: an assigned
	// Variable keeps presenting its value through the assignment view
	// even after the flag is pruned, so an unsupported pair could
	// otherwise be recorded on every revisit.
	seen := make(map[Pruned]struct{})
	for queue.len() > 0 {
		c := queue.pop()
		scope := c.Scope()
		sort.SliceStable(scope, func(i, j int) bool {
			return scope[i].CurrentDomainSize() < scope[j].CurrentDomainSize()
		})
		for _, v := range scope {
			for _, val := range v.CurrentDomain() {
				if c.HasSupport(v, val) {
					continue
				}
				p := Pruned{Var: v, Val: val}
				if _, dup := seen[p]; dup {
					continue
				}
				if err := v.PruneValue(val); err != nil {
					return false, pruned, err
				}
				seen[p] = struct{}{}
				pruned = append(pruned, p)
				if v.CurrentDomainSize() == 0 {
					queue.clear()

					return false, pruned, nil
				}
				for _, cc := range cs.ConstraintsWith(v) {
					queue.push(cc)
				}
			}
		}
	}

	return true, pruned, nil
}
