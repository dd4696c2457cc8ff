// Package bfs provides breadth-first traversal over a core.WeightedGraph,
// returning visit order, hop-count depths, and parent links.
//
// The walk marks nodes visited as they enter the frontier, with optional
// goal cut-off, hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"fmt"

	"github.com/velkary/wayfind/core"
)

// frontierItem pairs a node with its traversal depth.
type frontierItem[T comparable] struct {
	node  T
	depth int
}

// walker encapsulates mutable traversal state.
type walker[T comparable] struct {
	graph    core.WeightedGraph[T]
	opts     Options[T]
	frontier []frontierItem[T]
	visited  map[T]bool
	res      *Result[T]
}

// BFS walks g starting from start, applying any number of functional
// Options. The start node is always visited, even when the graph knows
// nothing about it. Returns ErrGraphNil for a nil graph,
// ErrOptionViolation for bad options, any user-supplied hook error, or
// the context's error on cancellation. The Result is valid as far as the
// walk progressed, even when an error cut it short.
func BFS[T comparable](g core.WeightedGraph[T], start T, opts ...Option[T]) (*Result[T], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[T]{
		graph:   g,
		opts:    o,
		visited: make(map[T]bool),
		res: &Result[T]{
			Order:  []T{},
			Depth:  make(map[T]int),
			Parent: make(map[T]T),
		},
	}

	// Seed frontier with the start node (no parent)
	w.enqueue(start, 0)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks node visited at depth d, records the depth, calls
// OnEnqueue, and adds the node to the frontier.
func (w *walker[T]) enqueue(node T, d int) {
	w.visited[node] = true
	w.res.Depth[node] = d
	w.opts.OnEnqueue(node, d)
	w.frontier = append(w.frontier, frontierItem[T]{node: node, depth: d})
}

// loop processes the frontier until empty, goal, error, or cancellation.
func (w *walker[T]) loop() error {
	for len(w.frontier) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if w.opts.Goal != nil && item.node == *w.opts.Goal {
			w.res.GoalReached = true

			return nil
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the next item according to the frontier order, invokes
// OnDequeue, and returns it.
func (w *walker[T]) dequeue() frontierItem[T] {
	var item frontierItem[T]
	if w.opts.Order == FrontierLIFO {
		last := len(w.frontier) - 1
		item = w.frontier[last]
		w.frontier = w.frontier[:last]
	} else {
		item = w.frontier[0]
		w.frontier = w.frontier[1:]
	}
	w.opts.OnDequeue(item.node, item.depth)

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker[T]) visit(item frontierItem[T]) error {
	w.res.Order = append(w.res.Order, item.node)
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.node, err)
	}

	return nil
}

// expand asks the graph for neighbors, applies filtering and MaxDepth,
// and enqueues each unseen neighbor. Edge weights are ignored.
func (w *walker[T]) expand(item frontierItem[T]) error {
	for _, nb := range w.graph.Neighbors(item.node) {
		// cancellation check inside neighbor iteration
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		next := nb.Node
		if !w.opts.FilterNeighbor(item.node, next) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		// first time seen?
		if !w.visited[next] {
			w.res.Parent[next] = item.node
			w.enqueue(next, nextDepth)
		}
	}

	return nil
}
