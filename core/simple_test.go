package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velkary/wayfind/core"
)

func TestSimpleGraph_UnitWeights(t *testing.T) {
	g := core.NewSimpleGraph(map[string][]string{
		"A": {"B", "C"},
		"B": {"C"},
	})

	got := g.Neighbors("A")
	want := []core.Neighbor[string]{
		{Weight: 1, Node: "B"},
		{Weight: 1, Node: "C"},
	}
	assert.Equal(t, want, got, "every edge must carry weight 1 in input order")
}

func TestSimpleGraph_UnknownNode(t *testing.T) {
	g := core.NewSimpleGraph(map[string][]string{"A": {"B"}})

	assert.Nil(t, g.Neighbors("Z"), "unknown node yields nil, never an error")
	// B appears only as a neighbor, so it has no outgoing edges of its own.
	assert.Nil(t, g.Neighbors("B"))
}

func TestSimpleGraph_EmptyAndNilInput(t *testing.T) {
	assert.Nil(t, core.NewSimpleGraph[string](nil).Neighbors("A"))

	g := core.NewSimpleGraph(map[string][]string{"A": {}})
	assert.Nil(t, g.Neighbors("A"))
	assert.Equal(t, 1, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestSimpleGraph_DeepCopiesInput(t *testing.T) {
	adj := map[string][]string{"A": {"B"}}
	g := core.NewSimpleGraph(adj)

	// Mutating the source mapping must not leak into the graph.
	adj["A"][0] = "X"
	adj["C"] = []string{"D"}

	assert.Equal(t, []core.Neighbor[string]{{Weight: 1, Node: "B"}}, g.Neighbors("A"))
	assert.Nil(t, g.Neighbors("C"))
	assert.Equal(t, 1, g.NodeCount())
}

func TestSimpleGraph_IntNodes(t *testing.T) {
	g := core.NewSimpleGraph(map[int][]int{1: {2, 3}, 2: {1}})

	assert.Equal(t, []core.Neighbor[int]{{Weight: 1, Node: 2}, {Weight: 1, Node: 3}}, g.Neighbors(1))
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.ElementsMatch(t, []int{1, 2}, g.Nodes())
}
