package propagate

import (
	"fmt"

	"github.com/katalvlaran/csolve/csp"
)

// Pruned records one value removed from one Variable's current domain
// by a propagator call.
type Pruned struct {
	Var *csp.Variable
	Val csp.Value
}

// String implements fmt.Stringer.
func (p Pruned) String() string { return fmt.Sprintf("%s-%v", p.Var.Name(), p.Val) }

// Propagator is a pluggable propagation strategy. newVar is nil for
// the root-level call made before any assignment; otherwise it is the
// just-assigned Variable. ok reports whether search may continue
// (false means a domain wipe-out was detected). pruned is the
// duplicate-free list of values this call removed, which the caller
// must restore, exactly once, when the branch is abandoned. A non-nil
// error reports a broken caller contract, never a dead end.
type Propagator func(cs *csp.CSP, newVar *csp.Variable) (ok bool, pruned []Pruned, err error)
