package core

import "fmt"

// CostGraph presents an explicit weighted adjacency mapping as a
// WeightedGraph. Use it when edges carry real costs; for unit-weight
// connectivity prefer SimpleGraph.
//
// CostGraph is immutable once built and safe for concurrent readers.
type CostGraph[T comparable] struct {
	adj   map[T][]Neighbor[T]
	edges int
}

// NewCostGraph builds a CostGraph from adj, rejecting any negative edge
// weight with ErrNegativeWeight wrapped with the offending edge. The
// mapping and its slices are deep-copied, so later mutation of adj cannot
// alter the graph.
// Complexity: O(V + E) time and memory.
func NewCostGraph[T comparable](adj map[T][]Neighbor[T]) (*CostGraph[T], error) {
	g := &CostGraph[T]{adj: make(map[T][]Neighbor[T], len(adj))}
	for u, nbrs := range adj {
		for _, n := range nbrs {
			if n.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %v→%v weight=%d", ErrNegativeWeight, u, n.Node, n.Weight)
			}
		}
		cp := make([]Neighbor[T], len(nbrs))
		copy(cp, nbrs)
		g.adj[u] = cp
		g.edges += len(cp)
	}

	return g, nil
}

// Neighbors yields node's outgoing (weight, neighbor) pairs in the order
// of the underlying slice. Unknown nodes yield nil. The returned slice is
// a fresh copy; callers may keep or modify it.
// Complexity: O(deg(node)) per call.
func (g *CostGraph[T]) Neighbors(node T) []Neighbor[T] {
	nbrs, ok := g.adj[node]
	if !ok || len(nbrs) == 0 {
		return nil
	}
	out := make([]Neighbor[T], len(nbrs))
	copy(out, nbrs)

	return out
}

// Nodes returns the graph's nodes (the mapping's keys) in indeterminate order.
func (g *CostGraph[T]) Nodes() []T {
	nodes := make([]T, 0, len(g.adj))
	for u := range g.adj {
		nodes = append(nodes, u)
	}

	return nodes
}

// NodeCount reports the number of nodes. Complexity: O(1).
func (g *CostGraph[T]) NodeCount() int { return len(g.adj) }

// EdgeCount reports the number of directed edges. Complexity: O(1).
func (g *CostGraph[T]) EdgeCount() int { return g.edges }
