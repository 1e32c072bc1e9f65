package propagate

import "github.com/katalvlaran/csolve/csp"

// constraintQueue is the FIFO work queue GAC revises constraints
// from. Membership is tracked so a constraint is never queued twice
// at once; a constraint may be re-enqueued after it has been popped.
type constraintQueue struct {
	items  []*csp.Constraint
	head   int
	member map[*csp.Constraint]struct{}
}

func newConstraintQueue(cons []*csp.Constraint) *constraintQueue {
	q := &constraintQueue{member: make(map[*csp.Constraint]struct{}, len(cons))}
	for _, c := range cons {
		q.push(c)
	}

	return q
}

func (q *constraintQueue) len() int { return len(q.items) - q.head }

func (q *constraintQueue) contains(c *csp.Constraint) bool {
	_, ok := q.member[c]

	return ok
}

// push appends c unless it is already queued.
func (q *constraintQueue) push(c *csp.Constraint) {
	if q.contains(c) {
		return
	}
	q.items = append(q.items, c)
	q.member[c] = struct{}{}
}

// pop removes and returns the front constraint. The caller must check
// len first.
func (q *constraintQueue) pop() *csp.Constraint {
	c := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	delete(q.member, c)
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}

	return c
}

// clear empties the queue. Used on the DWO early exit.
func (q *constraintQueue) clear() {
	q.items = q.items[:0]
	q.head = 0
	q.member = make(map[*csp.Constraint]struct{})
}
