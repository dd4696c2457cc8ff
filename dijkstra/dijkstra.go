package dijkstra

import (
	"fmt"

	"github.com/velkary/wayfind/core"
	"github.com/velkary/wayfind/pqueue"
)

// Dijkstra runs a goal-directed uniform-cost search from start toward goal
// over g and returns the resulting Result.
//
// Nodes are expanded cheapest-first; the run stops as soon as goal is
// dequeued, at which point CostSoFar[goal] is its final minimal cost and
// GoalReached is true. If goal is unreachable the search exhausts the
// reachable region and GoalReached stays false; that is not an error.
//
// Validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be well-formed (ErrOptionViolation).
//
// Negative weights are detected during relaxation and abort the run with
// ErrNegativeWeight naming the edge. On any error the Result is nil.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra[T comparable](g core.WeightedGraph[T], start, goal T, opts ...Option[T]) (*Result[T], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg, err := validate(opts)
	if err != nil {
		return nil, err
	}

	r := &runner[T]{graph: g, cfg: cfg, goal: &goal}

	return r.run(start)
}

// Tree runs an exhaustive uniform-cost search from start over g, producing
// the full shortest-path tree of the reachable (and affordable, under
// MaxCost) region. GoalReached is always false.
//
// Validation and error behavior match Dijkstra.
func Tree[T comparable](g core.WeightedGraph[T], start T, opts ...Option[T]) (*Result[T], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg, err := validate(opts)
	if err != nil {
		return nil, err
	}

	r := &runner[T]{graph: g, cfg: cfg}

	return r.run(start)
}

// runner holds the mutable state of a single search execution.
type runner[T comparable] struct {
	graph core.WeightedGraph[T] // read-only within the run
	cfg   Options[T]
	goal  *T // nil for Tree
	queue pqueue.MinQueue[T]
	res   *Result[T]
}

// run seeds the start node at cost zero and drives the main loop.
func (r *runner[T]) run(start T) (*Result[T], error) {
	r.res = &Result[T]{
		CostSoFar: make(map[T]int64),
		CameFrom:  make(map[T]T),
	}

	// The start is its own predecessor; PathTo stops at this fixed point.
	r.res.CostSoFar[start] = 0
	r.res.CameFrom[start] = start
	r.queue.Push(start, 0)

	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// process repeatedly extracts the cheapest queued entry and relaxes its
// outgoing edges.
//
// Termination: the queue drains, the cheapest entry exceeds MaxCost, the
// goal is dequeued, or the context is canceled.
func (r *runner[T]) process() error {
	for r.queue.Len() > 0 {
		select {
		case <-r.cfg.Ctx.Done():
			return r.cfg.Ctx.Err()
		default:
		}

		item, _ := r.queue.Pop()
		cur, c := item.Node, item.Cost

		// Stale lazy-decrease-key entry: a cheaper duplicate for this node
		// was already expanded.
		if c > r.res.CostSoFar[cur] {
			continue
		}

		// Past the search radius. Pops are non-decreasing, so every
		// remaining entry is at least as costly; stop without visiting.
		if c > r.cfg.MaxCost {
			break
		}

		r.res.Order = append(r.res.Order, cur)
		if r.cfg.OnVisit != nil {
			if err := r.cfg.OnVisit(cur, c); err != nil {
				return fmt.Errorf("dijkstra: OnVisit error at %v: %w", cur, err)
			}
		}

		if r.goal != nil && cur == *r.goal {
			r.res.GoalReached = true
			return nil
		}

		if err := r.relax(cur, c); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the recorded cost of every neighbor of cur,
// where du is cur's final cost.
//
// Admission is strict: a neighbor is (re)queued only when the candidate
// cost beats its recorded best, so equal-cost alternatives never enqueue
// duplicates and zero-weight cycles cannot recirculate.
func (r *runner[T]) relax(cur T, du int64) error {
	for _, n := range r.graph.Neighbors(cur) {
		w := n.Weight

		// Edges at or above the threshold are walls; skip as if absent.
		if w >= r.cfg.InfEdgeThreshold {
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %v→%v weight=%d", ErrNegativeWeight, cur, n.Node, w)
		}

		// Prune before summing. du never exceeds MaxCost here, so the
		// subtraction cannot underflow and the admitted sum cannot wrap.
		if w > r.cfg.MaxCost-du {
			continue
		}
		cand := du + w
		if best, seen := r.res.CostSoFar[n.Node]; seen && cand >= best {
			continue
		}

		r.res.CostSoFar[n.Node] = cand
		r.res.CameFrom[n.Node] = cur
		r.queue.Push(n.Node, cand)
	}

	return nil
}
