package gonumgraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/velkary/wayfind/core"
	"github.com/velkary/wayfind/dijkstra"
	"github.com/velkary/wayfind/gonumgraph"
)

// tripleGraph builds a gonum directed graph with nodes 1,2,3 and edges
// 1→2(4), 2→3(2), 1→3(9).
func tripleGraph(t *testing.T) *simple.WeightedDirectedGraph {
	t.Helper()
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for _, id := range []int64{1, 2, 3} {
		g.AddNode(simple.Node(id))
	}
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(1), T: simple.Node(2), W: 4})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(2), T: simple.Node(3), W: 2})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(1), T: simple.Node(3), W: 9})
	return g
}

func TestWrap_SnapshotsNodesAndEdges(t *testing.T) {
	g, err := gonumgraph.Wrap(tripleGraph(t))
	require.NoError(t, err)

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.ElementsMatch(t,
		[]core.Neighbor[int64]{{Weight: 4, Node: 2}, {Weight: 9, Node: 3}},
		g.Neighbors(1))
	assert.Nil(t, g.Neighbors(3), "sink node has no outgoing edges")
}

func TestWrap_EnginesRunOnSnapshot(t *testing.T) {
	g, err := gonumgraph.Wrap(tripleGraph(t))
	require.NoError(t, err)

	res, err := dijkstra.Tree(g, int64(1))
	require.NoError(t, err)
	assert.Equal(t, map[int64]int64{1: 0, 2: 4, 3: 6}, res.CostSoFar)
}

func TestWrap_KeepsIsolatedNodes(t *testing.T) {
	src := tripleGraph(t)
	src.AddNode(simple.Node(7))

	g, err := gonumgraph.Wrap(src)
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())
	assert.Nil(t, g.Neighbors(7))
}

func TestWrap_SnapshotIsIndependent(t *testing.T) {
	src := tripleGraph(t)
	g, err := gonumgraph.Wrap(src)
	require.NoError(t, err)

	src.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(3), T: simple.Node(1), W: 1})
	assert.Nil(t, g.Neighbors(3), "mutation after Wrap must not leak in")
}

func TestWrap_RejectsUnusableWeights(t *testing.T) {
	cases := []struct {
		name string
		w    float64
	}{
		{"Negative", -1},
		{"Fractional", 1.5},
		{"Infinite", math.Inf(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := simple.NewWeightedDirectedGraph(0, math.Inf(1))
			src.AddNode(simple.Node(1))
			src.AddNode(simple.Node(2))
			src.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(1), T: simple.Node(2), W: tc.w})

			g, err := gonumgraph.Wrap(src)
			require.ErrorIs(t, err, gonumgraph.ErrBadWeight)
			assert.Nil(t, g)
			assert.Contains(t, err.Error(), "1→2")
		})
	}
}

func TestWrap_NilGraph(t *testing.T) {
	g, err := gonumgraph.Wrap(nil)
	require.ErrorIs(t, err, gonumgraph.ErrNilGraph)
	assert.Nil(t, g)
}

func TestMirror_AssignsIdsInDiscoveryOrder(t *testing.T) {
	g, err := core.NewCostGraph(map[string][]core.Neighbor[string]{
		"A": {{Weight: 1, Node: "B"}},
		"B": {{Weight: 1, Node: "C"}},
	})
	require.NoError(t, err)

	dg, ix, err := gonumgraph.Mirror[string](g, []string{"A"})
	require.NoError(t, err)

	require.Equal(t, 3, ix.Len())
	for i, node := range []string{"A", "B", "C"} {
		id, ok := ix.IDOf(node)
		require.True(t, ok, "node %s not mirrored", node)
		assert.Equal(t, int64(i), id)

		back, ok := ix.NodeOf(id)
		require.True(t, ok)
		assert.Equal(t, node, back)
	}
	assert.Equal(t, 3, dg.Nodes().Len())
	require.NotNil(t, dg.WeightedEdge(0, 1))
	assert.Equal(t, 1.0, dg.WeightedEdge(0, 1).Weight())

	_, ok := ix.NodeOf(99)
	assert.False(t, ok)
}

func TestMirror_CollapsesParallelAndSelfEdges(t *testing.T) {
	g := core.NeighborFunc[string](func(node string) []core.Neighbor[string] {
		if node == "A" {
			return []core.Neighbor[string]{
				{Weight: 5, Node: "B"},
				{Weight: 2, Node: "B"},
				{Weight: 1, Node: "A"},
			}
		}
		return nil
	})

	dg, ix, err := gonumgraph.Mirror[string](g, []string{"A"})
	require.NoError(t, err)

	aid, _ := ix.IDOf("A")
	bid, _ := ix.IDOf("B")
	require.NotNil(t, dg.WeightedEdge(aid, bid))
	assert.Equal(t, 2.0, dg.WeightedEdge(aid, bid).Weight(), "parallel edges collapse to the cheapest")
	assert.Nil(t, dg.WeightedEdge(aid, aid), "self-loops are dropped")
}

func TestMirror_OmitsUnreachableNodes(t *testing.T) {
	g, err := core.NewCostGraph(map[string][]core.Neighbor[string]{
		"A": {{Weight: 1, Node: "B"}},
		"D": {},
	})
	require.NoError(t, err)

	_, ix, err := gonumgraph.Mirror[string](g, []string{"A"})
	require.NoError(t, err)
	assert.Equal(t, 2, ix.Len())
	_, ok := ix.IDOf("D")
	assert.False(t, ok)
}

func TestMirror_EmptySeeds(t *testing.T) {
	g := core.NewSimpleGraph(map[string][]string{"A": {"B"}})

	dg, ix, err := gonumgraph.Mirror[string](g, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, ix.Len())
	assert.Equal(t, 0, dg.Nodes().Len())
}

func TestMirror_RejectsNegativeWeights(t *testing.T) {
	g := core.NeighborFunc[string](func(node string) []core.Neighbor[string] {
		if node == "A" {
			return []core.Neighbor[string]{{Weight: -2, Node: "B"}}
		}
		return nil
	})

	dg, ix, err := gonumgraph.Mirror[string](g, []string{"A"})
	require.ErrorIs(t, err, gonumgraph.ErrBadWeight)
	assert.Nil(t, dg)
	assert.Nil(t, ix)
}

func TestMirror_NilGraph(t *testing.T) {
	_, _, err := gonumgraph.Mirror[string](nil, []string{"A"})
	require.ErrorIs(t, err, gonumgraph.ErrNilGraph)
}

// TestMirror_AgreesWithGonumShortestPaths runs the native engine and
// gonum's Dijkstra over the same graph and compares every cost.
func TestMirror_AgreesWithGonumShortestPaths(t *testing.T) {
	g, err := core.NewCostGraph(map[string][]core.Neighbor[string]{
		"A": {{Weight: 1, Node: "C"}, {Weight: 4, Node: "B"}},
		"C": {{Weight: 1, Node: "B"}, {Weight: 5, Node: "D"}},
		"B": {{Weight: 3, Node: "D"}},
	})
	require.NoError(t, err)

	mine, err := dijkstra.Tree(g, "A")
	require.NoError(t, err)

	dg, ix, err := gonumgraph.Mirror[string](g, []string{"A"})
	require.NoError(t, err)
	require.Equal(t, len(mine.CostSoFar), ix.Len())

	aid, ok := ix.IDOf("A")
	require.True(t, ok)
	shortest := path.DijkstraFrom(dg.Node(aid), dg)

	for node, cost := range mine.CostSoFar {
		id, ok := ix.IDOf(node)
		require.True(t, ok, "node %s not mirrored", node)
		assert.Equal(t, float64(cost), shortest.WeightTo(id), "cost to %s", node)
	}
}
