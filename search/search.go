package search

import (
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/csolve/csp"
	"github.com/katalvlaran/csolve/propagate"
)

// Solve runs depth-first backtracking search over cs with the given
// propagator. It first resets every Variable (unassign, restore full
// current domain), so a CSP can be solved repeatedly.
//
// Returns a Result with Solved=false when the search space is
// exhausted or the root propagation already detects a contradiction;
// in that case the CSP is left fully unassigned and fully restored.
// A non-nil error means the run was aborted (context cancellation or
// a broken propagator/model contract); the CSP is reset before the
// error is returned.
func Solve(cs *csp.CSP, prop propagate.Propagator, opts ...Option) (*Result, error) {
	if cs == nil {
		return nil, ErrNilCSP
	}
	if prop == nil {
		return nil, ErrNilPropagator
	}

	// 1. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	w := &walker{cs: cs, prop: prop, opts: o, log: o.Logger}
	start := time.Now()

	// 2. Reset all Variables to their unconstrained state
	reset(cs)
	w.pool = cs.Variables()

	// 3. Root propagation, before any assignment is made
	ok, rootPrunes, err := prop(cs, nil)
	w.prunes += len(rootPrunes)
	w.log.Debug("root propagation",
		zap.Bool("ok", ok),
		zap.Int("pruned", len(rootPrunes)))
	if err != nil {
		reset(cs)

		return nil, err
	}

	// 4. Recursive search, unless the root already contradicts
	solved := false
	if !ok {
		w.log.Debug("contradiction at root", zap.String("csp", cs.Name()))
	} else {
		if solved, err = w.recurse(1); err != nil {
			reset(cs)

			return nil, err
		}
	}

	// 5. On exhaustion, undo the root prunes; every deeper prune was
	// already restored when its branch was abandoned, so the CSP ends
	// fully unassigned and fully restored.
	if !solved {
		w.restore(rootPrunes)
	}

	res := &Result{
		Solved:    solved,
		Decisions: w.decisions,
		Prunes:    w.prunes,
		Duration:  time.Since(start),
	}
	w.log.Info("search finished",
		zap.String("csp", cs.Name()),
		zap.Bool("solved", res.Solved),
		zap.Int("decisions", res.Decisions),
		zap.Int("prunes", res.Prunes),
		zap.Duration("duration", res.Duration))

	return res, nil
}

// walker encapsulates the mutable state of one search run.
type walker struct {
	cs   *csp.CSP
	prop propagate.Propagator
	opts Options
	log  *zap.Logger

	pool      []*csp.Variable // unassigned-variable pool
	decisions int
	prunes    int
}

// recurse handles one search node at the given depth. It returns true
// as soon as a complete satisfying assignment exists; false means the
// subtree is exhausted and the caller should try its next value.
func (w *walker) recurse(depth int) (bool, error) {
	if len(w.pool) == 0 {
		// Every propagator call so far validated consistency, so a
		// complete assignment is a solution.
		return true, nil
	}

	v := w.extractMRV()
	w.log.Debug("branch", zap.Int("depth", depth), zap.String("var", v.Name()))

	for _, val := range v.CurrentDomain() {
		// Cancellation is only observed between value trials.
		select {
		case <-w.opts.Ctx.Done():
			return false, w.opts.Ctx.Err()
		default:
		}

		if err := v.Assign(val); err != nil {
			return false, err
		}
		w.decisions++
		w.log.Debug("try",
			zap.Int("depth", depth),
			zap.String("var", v.Name()),
			zap.Any("val", val))

		ok, pruned, err := w.prop(w.cs, v)
		w.prunes += len(pruned)
		if err != nil {
			return false, err
		}
		w.log.Debug("propagated",
			zap.Int("depth", depth),
			zap.Bool("ok", ok),
			zap.Int("pruned", len(pruned)))

		if ok {
			solved, rerr := w.recurse(depth + 1)
			if rerr != nil {
				return false, rerr
			}
			if solved {
				return true, nil
			}
		}

		// Branch abandoned: undo exactly this propagator call's
		// prunes, then the assignment, and move to the next value.
		w.restore(pruned)
		if err = v.Unassign(); err != nil {
			return false, err
		}
	}

	w.pool = append(w.pool, v)

	return false, nil
}

// extractMRV removes and returns the pool Variable with the smallest
// current domain. Ties go to the earliest pool entry, which keeps
// runs deterministic.
func (w *walker) extractMRV() *csp.Variable {
	best := 0
	for i := 1; i < len(w.pool); i++ {
		if w.pool[i].CurrentDomainSize() < w.pool[best].CurrentDomainSize() {
			best = i
		}
	}
	v := w.pool[best]
	w.pool = append(w.pool[:best], w.pool[best+1:]...)

	return v
}

// restore returns pruned values to their Variables' current domains.
// The propagator's returned list is the only channel through which
// restoration ever happens.
func (w *walker) restore(pruned []propagate.Pruned) {
	for _, p := range pruned {
		// Values in the list came from the domain, so the only failure
		// mode is a broken Variable, which cannot be recovered here.
		_ = p.Var.UnpruneValue(p.Val)
	}
}

// reset returns every Variable of cs to its fully unassigned,
// fully restored state.
func reset(cs *csp.CSP) {
	for _, v := range cs.Variables() {
		if v.Assigned() {
			_ = v.Unassign()
		}
		v.RestoreCurrentDomain()
	}
}
