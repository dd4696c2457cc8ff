package gonumgraph

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph"

	"github.com/velkary/wayfind/core"
)

// Wrap snapshots a gonum weighted graph into a CostGraph keyed by the
// source's int64 node ids. Every node is carried over, isolated ones
// included; every edge weight must be a non-negative finite integer or
// Wrap fails with ErrBadWeight naming the edge.
//
// The snapshot is independent of g: later mutations are not visible.
//
// Complexity: O(V + E) time and memory.
func Wrap(g graph.Weighted) (*core.CostGraph[int64], error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	adj := make(map[int64][]core.Neighbor[int64])
	nodes := g.Nodes()
	for nodes.Next() {
		uid := nodes.Node().ID()
		adj[uid] = nil

		to := g.From(uid)
		for to.Next() {
			vid := to.Node().ID()
			w, ok := g.Weight(uid, vid)
			if !ok {
				continue
			}
			if w < 0 || w != math.Trunc(w) || w >= float64(math.MaxInt64) {
				return nil, fmt.Errorf("%w: edge %d→%d weight=%g", ErrBadWeight, uid, vid, w)
			}
			adj[uid] = append(adj[uid], core.Neighbor[int64]{Weight: int64(w), Node: vid})
		}
	}

	return core.NewCostGraph(adj)
}
