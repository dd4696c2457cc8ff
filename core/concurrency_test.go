package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velkary/wayfind/core"
)

// TestConcurrentReaders hammers one graph value from many goroutines.
// Construction is the only write, so readers need no locking; run with
// -race to verify.
func TestConcurrentReaders(t *testing.T) {
	g, err := core.NewCostGraph(map[int][]core.Neighbor[int]{
		0: {{Weight: 1, Node: 1}, {Weight: 4, Node: 2}},
		1: {{Weight: 2, Node: 2}},
		2: {{Weight: 3, Node: 0}},
	})
	require.NoError(t, err)

	const readers = 8
	const rounds = 500

	var wg sync.WaitGroup
	wg.Add(readers)
	for r := 0; r < readers; r++ {
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				node := i % 4 // includes an unknown node
				_ = g.Neighbors(node)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, g.NodeCount())
}
