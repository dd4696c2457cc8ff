package gonumgraph

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/velkary/wayfind/core"
)

// Mirror materializes the region of g reachable from seeds as a gonum
// weighted directed graph plus the Index mapping node values to the
// assigned ids.
//
// Ids run 0..n-1 in discovery order, seeds first. Self-loops are
// dropped and parallel edges collapse to the cheapest one, since simple
// directed graphs represent neither. A negative weight anywhere in the
// reachable region aborts with ErrBadWeight.
//
// Complexity: O(V + E) time and memory over the mirrored region.
func Mirror[T comparable](g core.WeightedGraph[T], seeds []T) (*simple.WeightedDirectedGraph, *Index[T], error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	dg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	ix := &Index[T]{fw: make(map[T]int64)}

	var queue []T
	admit := func(node T) int64 {
		if id, ok := ix.fw[node]; ok {
			return id
		}
		id := int64(len(ix.bw))
		ix.fw[node] = id
		ix.bw = append(ix.bw, node)
		dg.AddNode(simple.Node(id))
		queue = append(queue, node)
		return id
	}
	for _, s := range seeds {
		admit(s)
	}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		uid := ix.fw[u]

		for _, n := range g.Neighbors(u) {
			if n.Weight < 0 {
				return nil, nil, fmt.Errorf("%w: edge %v→%v weight=%d", ErrBadWeight, u, n.Node, n.Weight)
			}
			vid := admit(n.Node)
			if vid == uid {
				continue
			}
			w := float64(n.Weight)
			if e := dg.WeightedEdge(uid, vid); e != nil && e.Weight() <= w {
				continue
			}
			dg.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(uid), T: simple.Node(vid), W: w})
		}
	}

	return dg, ix, nil
}
