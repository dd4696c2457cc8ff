package core

import "errors"

// ErrNegativeWeight indicates a negative edge weight was supplied to a
// graph constructor. Traversal engines require non-negative weights.
var ErrNegativeWeight = errors.New("core: negative edge weight")

// Neighbor pairs the weight of an outgoing edge with the node it reaches.
type Neighbor[T comparable] struct {
	// Weight is the cost of traversing the edge. Must be non-negative.
	Weight int64

	// Node is the edge's destination.
	Node T
}

// WeightedGraph is the minimal capability a traversal engine needs:
// given a node, produce its outgoing (weight, neighbor) pairs.
//
// Implementations must return an empty (nil) slice for nodes without
// outgoing edges and for nodes unknown to the graph, never an error.
// The slice is derived per call; callers own the returned value.
type WeightedGraph[T comparable] interface {
	Neighbors(node T) []Neighbor[T]
}

// NeighborFunc adapts an ordinary function to the WeightedGraph capability,
// in the manner of http.HandlerFunc. Useful for graphs computed on the fly.
type NeighborFunc[T comparable] func(node T) []Neighbor[T]

// Neighbors calls f(node).
func (f NeighborFunc[T]) Neighbors(node T) []Neighbor[T] { return f(node) }
