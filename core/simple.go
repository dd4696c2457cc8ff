package core

// SimpleGraph presents an adjacency mapping as a WeightedGraph in which
// every edge has weight 1. It suits hop-count problems where only the
// connectivity matters.
//
// The graph's nodes are the mapping's keys. A value that never appears as
// a key is still a legal query target; it simply has no outgoing edges.
// SimpleGraph is immutable once built and safe for concurrent readers.
type SimpleGraph[T comparable] struct {
	adj   map[T][]T
	edges int
}

// NewSimpleGraph builds a SimpleGraph from adj. The mapping and its slices
// are deep-copied, so later mutation of adj cannot alter the graph.
// A nil or empty mapping yields an empty graph.
// Complexity: O(V + E) time and memory.
func NewSimpleGraph[T comparable](adj map[T][]T) *SimpleGraph[T] {
	g := &SimpleGraph[T]{adj: make(map[T][]T, len(adj))}
	for u, nbrs := range adj {
		cp := make([]T, len(nbrs))
		copy(cp, nbrs)
		g.adj[u] = cp
		g.edges += len(cp)
	}

	return g
}

// Neighbors yields {1, v} for each v adjacent to node, preserving the
// order of the underlying slice. Unknown nodes yield nil.
// Complexity: O(deg(node)) per call.
func (g *SimpleGraph[T]) Neighbors(node T) []Neighbor[T] {
	nbrs, ok := g.adj[node]
	if !ok || len(nbrs) == 0 {
		return nil
	}
	out := make([]Neighbor[T], len(nbrs))
	for i, v := range nbrs {
		out[i] = Neighbor[T]{Weight: 1, Node: v}
	}

	return out
}

// Nodes returns the graph's nodes (the mapping's keys) in indeterminate order.
func (g *SimpleGraph[T]) Nodes() []T {
	nodes := make([]T, 0, len(g.adj))
	for u := range g.adj {
		nodes = append(nodes, u)
	}

	return nodes
}

// NodeCount reports the number of nodes. Complexity: O(1).
func (g *SimpleGraph[T]) NodeCount() int { return len(g.adj) }

// EdgeCount reports the number of directed edges. Complexity: O(1).
func (g *SimpleGraph[T]) EdgeCount() int { return g.edges }
