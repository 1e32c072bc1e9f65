package propagate

import "github.com/katalvlaran/csolve/csp"

// BT is the plain backtracking propagator: it never prunes. At the
// root call it does nothing. After an assignment it evaluates every
// constraint touching the new Variable whose scope is fully assigned
// and rejects the branch if any is violated. Rejecting complete and
// near-complete assignments is BT's only leverage.
func BT(cs *csp.CSP, newVar *csp.Variable) (bool, []Pruned, error) {
	if newVar == nil {
		return true, nil, nil
	}
	for _, c := range cs.ConstraintsWith(newVar) {
		if c.UnassignedCount() != 0 {
			continue
		}
		sat, err := c.Check()
		if err != nil {
			return false, nil, err
		}
		if !sat {
			return false, nil, nil
		}
	}

	return true, nil, nil
}
