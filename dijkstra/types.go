package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Dijkstra, Tree and Result.PathTo.
var (
	// ErrNilGraph is returned when the graph argument is nil.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight is returned when a negative edge weight is
	// encountered during relaxation. The wrapping error names the
	// offending edge.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrOptionViolation is returned when an option carries an invalid
	// argument.
	ErrOptionViolation = errors.New("dijkstra: option violation")

	// ErrNoPath is returned by Result.PathTo for nodes the search never
	// admitted.
	ErrNoPath = errors.New("dijkstra: no path to node")
)

// Options configures a single search run.
//
// Construct via DefaultOptions or the With* helpers rather than by hand;
// the zero value has a nil context and zero limits.
type Options[T comparable] struct {
	// Ctx is checked between expansions; cancellation aborts the run.
	Ctx context.Context

	// MaxCost bounds the search radius. Once the cheapest queued entry
	// exceeds it the run stops, and no node beyond it is admitted.
	MaxCost int64

	// InfEdgeThreshold marks edges with weight >= threshold as impassable;
	// relaxation skips them as if absent.
	InfEdgeThreshold int64

	// OnVisit fires once per visited node with its final cost, in visit
	// order. A non-nil return aborts the search.
	OnVisit func(node T, cost int64) error

	// err records the first constructor violation for validate to surface.
	err error
}

// Option is a functional mutator applied to Options in declaration order.
type Option[T comparable] func(*Options[T])

// DefaultOptions returns the baseline configuration: background context,
// unbounded cost, every finite edge passable, no hook.
func DefaultOptions[T comparable]() Options[T] {
	return Options[T]{
		Ctx:              context.Background(),
		MaxCost:          math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// WithContext installs ctx for cooperative cancellation.
func WithContext[T comparable](ctx context.Context) Option[T] {
	return func(o *Options[T]) { o.Ctx = ctx }
}

// WithMaxCost caps the total path cost the search will admit.
// Negative caps are rejected with ErrOptionViolation.
func WithMaxCost[T comparable](c int64) Option[T] {
	return func(o *Options[T]) {
		if c < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.MaxCost = c
	}
}

// WithInfEdgeThreshold treats edges weighing t or more as impassable.
// The threshold must be positive: zero would block even zero-weight edges.
func WithInfEdgeThreshold[T comparable](t int64) Option[T] {
	return func(o *Options[T]) {
		if t <= 0 {
			o.err = fmt.Errorf("%w: InfEdgeThreshold must be positive (%d)", ErrOptionViolation, t)
			return
		}
		o.InfEdgeThreshold = t
	}
}

// WithOnVisit registers fn to observe each visited node and its final cost.
func WithOnVisit[T comparable](fn func(node T, cost int64) error) Option[T] {
	return func(o *Options[T]) { o.OnVisit = fn }
}

// validate folds opts over the defaults and surfaces the first violation.
func validate[T comparable](opts []Option[T]) (Options[T], error) {
	cfg := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg, cfg.err
	}
	if cfg.Ctx == nil {
		cfg.Ctx = context.Background()
	}
	return cfg, nil
}

// Result carries the outcome of a search.
//
// Maps are populated lazily: a node has entries if and only if the search
// admitted it. Absence means the node was unreachable, pruned by MaxCost,
// or simply past the goal in a goal-directed run.
type Result[T comparable] struct {
	// CostSoFar holds the cheapest known cost from the start per admitted
	// node. For visited nodes the value is final.
	CostSoFar map[T]int64

	// CameFrom holds each admitted node's predecessor on a cheapest path.
	// The start maps to itself.
	CameFrom map[T]T

	// Order lists visited nodes in expansion sequence; costs never
	// decrease along it.
	Order []T

	// GoalReached reports whether a goal-directed run dequeued its goal.
	// Tree always leaves it false.
	GoalReached bool
}

// PathTo reconstructs the cheapest path from the start to dest by walking
// CameFrom backwards until the start's self-loop. It returns ErrNoPath
// when dest was never admitted.
func (r *Result[T]) PathTo(dest T) ([]T, error) {
	if _, ok := r.CostSoFar[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
	}
	var rev []T
	for at := dest; ; {
		rev = append(rev, at)
		prev := r.CameFrom[at]
		if prev == at {
			break
		}
		at = prev
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev, nil
}
