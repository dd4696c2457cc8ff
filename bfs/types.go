// Package bfs defines tunable options, sentinel errors, and the Result
// type for breadth-first traversal over a core.WeightedGraph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for traversal execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo for nodes the walk never reached.
	ErrNoPath = errors.New("bfs: no path to node")
)

// FrontierOrder selects the discipline the frontier releases nodes with.
type FrontierOrder int

const (
	// FrontierFIFO dequeues oldest first: the classic breadth-first sweep.
	FrontierFIFO FrontierOrder = iota

	// FrontierLIFO dequeues newest first, plunging depth-first while keeping
	// the same visited-on-enqueue and goal semantics.
	FrontierLIFO
)

// Option configures traversal behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when BFS is invoked.
type Option[T comparable] func(*Options[T])

// Options holds parameters and callbacks to customize traversal execution.
type Options[T comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Goal, when non-nil, stops the walk as soon as the goal node is
	// dequeued. Result.GoalReached reports whether that happened.
	Goal *T

	// Order selects FIFO (default) or LIFO frontier discipline.
	Order FrontierOrder

	// OnEnqueue is called when a node enters the frontier, before visiting.
	// Receives the node and its depth from the start.
	OnEnqueue func(node T, depth int)

	// OnDequeue is called immediately before visiting a node.
	OnDequeue func(node T, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// the walk aborts and propagates that error.
	OnVisit func(node T, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor T) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - FIFO frontier, no goal
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions[T comparable]() Options[T] {
	return Options[T]{
		Ctx:            context.Background(),
		Goal:           nil,
		Order:          FrontierFIFO,
		OnEnqueue:      func(T, int) {},
		OnDequeue:      func(T, int) {},
		OnVisit:        func(T, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(T, T) bool { return true },
		err:            nil,
	}
}

// WithGoal stops the walk once goal is dequeued and reported.
func WithGoal[T comparable](goal T) Option[T] {
	return func(o *Options[T]) {
		g := goal
		o.Goal = &g
	}
}

// WithFrontierOrder selects FIFO or LIFO frontier discipline.
// Unknown values are invalid and surface as ErrOptionViolation.
func WithFrontierOrder[T comparable](order FrontierOrder) Option[T] {
	return func(o *Options[T]) {
		switch order {
		case FrontierFIFO, FrontierLIFO:
			o.Order = order
		default:
			o.err = fmt.Errorf("%w: unknown frontier order (%d)", ErrOptionViolation, order)
		}
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[T comparable](ctx context.Context) Option[T] {
	return func(o *Options[T]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[T comparable](fn func(node T, depth int)) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[T comparable](fn func(node T, depth int)) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the walk.
func WithOnVisit[T comparable](fn func(node T, depth int) error) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option, surfaces as ErrOptionViolation
func WithMaxDepth[T comparable](d int) Option[T] {
	return func(o *Options[T]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[T comparable](fn func(curr, neighbor T) bool) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: map from node to its distance (in edges) from the start.
//   - Parent: map from node to its predecessor in the traversal tree;
//     the start node has no entry.
//   - GoalReached: true when a configured goal node was dequeued.
type Result[T comparable] struct {
	Order       []T
	Depth       map[T]int
	Parent      map[T]T
	GoalReached bool
}

// PathTo reconstructs the path from the start node to dest by walking
// Parent links. Returns ErrNoPath if dest was never reached.
func (r *Result[T]) PathTo(dest T) ([]T, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
	}
	// build reversed path
	path := []T{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
