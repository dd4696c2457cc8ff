package gonumgraph_test

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/velkary/wayfind/core"
	"github.com/velkary/wayfind/dijkstra"
	"github.com/velkary/wayfind/gonumgraph"
)

// ExampleWrap snapshots a gonum-built network and runs the native
// uniform-cost engine on it.
func ExampleWrap() {
	// 1) A route network assembled with gonum's simple graph.
	src := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for _, id := range []int64{1, 2, 3} {
		src.AddNode(simple.Node(id))
	}
	src.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(1), T: simple.Node(2), W: 4})
	src.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(2), T: simple.Node(3), W: 2})
	src.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(1), T: simple.Node(3), W: 9})

	// 2) Bring it behind the capability.
	g, err := gonumgraph.Wrap(src)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Search it like any other weighted graph.
	res, err := dijkstra.Dijkstra(g, int64(1), int64(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	route, _ := res.PathTo(3)
	fmt.Println("cost:", res.CostSoFar[3])
	fmt.Println("route:", route)
	// Output:
	// cost: 6
	// route: [1 2 3]
}

// ExampleMirror exports a capability graph to gonum and lets gonum's
// path package answer the shortest-path question.
func ExampleMirror() {
	// 1) A capability-side triangle with a costly direct edge.
	g, err := core.NewCostGraph(map[string][]core.Neighbor[string]{
		"A": {{Weight: 1, Node: "B"}, {Weight: 4, Node: "C"}},
		"B": {{Weight: 2, Node: "C"}},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Mirror the region reachable from A.
	dg, ix, err := gonumgraph.Mirror[string](g, []string{"A"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Ask gonum for A's cheapest cost to C.
	aid, _ := ix.IDOf("A")
	cid, _ := ix.IDOf("C")
	shortest := path.DijkstraFrom(dg.Node(aid), dg)
	fmt.Println("cost:", shortest.WeightTo(cid))
	// Output:
	// cost: 3
}
