package propagate

import (
	"sort"

	"github.com/katalvlaran/csolve/csp"
)

// FC is the forward checking propagator. Its unit of work is a
// constraint with exactly one unassigned scope Variable: for each
// such constraint it trial-assigns every current-domain value of that
// Variable, evaluates the constraint, and prunes the values that
// fail. If a Variable's current domain empties, FC reports a dead end
// immediately with the prunes accumulated so far.
//
// Candidates are the constraints touching newVar, or every constraint
// on the root call, processed in ascending order of the sole
// unassigned Variable's current-domain size (cheapest check first; a
// scheduling heuristic, not a correctness requirement).
func FC(cs *csp.CSP, newVar *csp.Variable) (bool, []Pruned, error) {
	cands := cs.Constraints()
	if newVar != nil {
		cands = cs.ConstraintsWith(newVar)
	}
	units := cands[:0]
	for _, c := range cands {
		if c.UnassignedCount() == 1 {
			units = append(units, c)
		}
	}
	sort.SliceStable(units, func(i, j int) bool {
		return units[i].UnassignedVars()[0].CurrentDomainSize() <
			units[j].UnassignedVars()[0].CurrentDomainSize()
	})

	var pruned []Pruned
	for _, c := range units {
		u := c.UnassignedVars()[0]
		for _, val := range u.CurrentDomain() {
			sat, err := fcCheck(c, u, val)
			if err != nil {
				return false, pruned, err
			}
			if !sat {
				if err = u.PruneValue(val); err != nil {
					return false, pruned, err
				}
				pruned = append(pruned, Pruned{Var: u, Val: val})
			}
		}
		if u.CurrentDomainSize() == 0 {
			return false, pruned, nil
		}
	}

	return true, pruned, nil
}

// fcCheck trial-assigns val to u, evaluates c over the now fully
// assigned scope, and undoes the assignment.
func fcCheck(c *csp.Constraint, u *csp.Variable, val csp.Value) (bool, error) {
	if err := u.Assign(val); err != nil {
		return false, err
	}
	sat, err := c.Check()
	if uerr := u.Unassign(); err == nil {
		err = uerr
	}

	return sat, err
}
