package pqueue_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velkary/wayfind/pqueue"
)

func TestMinQueue_PopsCheapestFirst(t *testing.T) {
	q := pqueue.New[string]()
	q.Push("slow", 10)
	q.Push("fast", 1)
	q.Push("mid", 5)

	got := drain(q)
	want := []pqueue.Item[string]{
		{Node: "fast", Cost: 1},
		{Node: "mid", Cost: 5},
		{Node: "slow", Cost: 10},
	}
	assert.Equal(t, want, got)
}

func TestMinQueue_EmptyPopAndPeek(t *testing.T) {
	q := pqueue.New[int]()

	_, ok := q.Pop()
	assert.False(t, ok)
	_, ok = q.Peek()
	assert.False(t, ok)
	assert.Equal(t, 0, q.Len())
}

func TestMinQueue_ZeroValueUsable(t *testing.T) {
	var q pqueue.MinQueue[int]
	q.Push(7, 3)

	item, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, pqueue.Item[int]{Node: 7, Cost: 3}, item)
	assert.Equal(t, 1, q.Len(), "Peek must not consume")
}

func TestMinQueue_DuplicateNodesDifferentCosts(t *testing.T) {
	// Lazy decrease-key relies on the same node living in the queue at
	// several costs at once.
	q := pqueue.New[string]()
	q.Push("X", 9)
	q.Push("X", 2)
	q.Push("X", 5)

	first, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, int64(2), first.Cost)
	assert.Equal(t, 2, q.Len(), "stale duplicates stay queued")
}

func TestMinQueue_TiesOrderByCostOnly(t *testing.T) {
	// Equal costs may surface in any node order; only the cost sequence
	// is guaranteed.
	q := pqueue.New[string]()
	q.Push("a", 1)
	q.Push("b", 1)
	q.Push("c", 0)

	items := drain(q)
	costs := make([]int64, len(items))
	nodes := make([]string, len(items))
	for i, it := range items {
		costs[i] = it.Cost
		nodes[i] = it.Node
	}

	assert.Equal(t, []int64{0, 1, 1}, costs)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, nodes)
}

func TestMinQueue_RandomizedHeapOrder(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	q := pqueue.New[int]()

	const n = 500
	pushed := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		c := int64(rnd.Intn(1000))
		pushed = append(pushed, c)
		q.Push(i, c)
	}

	popped := make([]int64, 0, n)
	for it, ok := q.Pop(); ok; it, ok = q.Pop() {
		popped = append(popped, it.Cost)
	}

	require.Len(t, popped, n)
	assert.True(t, sort.SliceIsSorted(popped, func(i, j int) bool { return popped[i] < popped[j] }),
		"pop sequence must be nondecreasing in cost")

	sort.Slice(pushed, func(i, j int) bool { return pushed[i] < pushed[j] })
	assert.Equal(t, pushed, popped, "every pushed cost must come back out")
}

func drain[T comparable](q *pqueue.MinQueue[T]) []pqueue.Item[T] {
	var out []pqueue.Item[T]
	for it, ok := q.Pop(); ok; it, ok = q.Pop() {
		out = append(out, it)
	}

	return out
}
