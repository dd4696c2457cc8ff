package matrix

import (
	"errors"
	"fmt"

	"github.com/velkary/wayfind/core"
)

var (
	// ErrInvalidDimensions signals a non-positive matrix size.
	ErrInvalidDimensions = errors.New("matrix: size must be positive")
	// ErrIndexOutOfBounds signals a node index outside 0..n-1.
	ErrIndexOutOfBounds = errors.New("matrix: node index out of range")
	// ErrNegativeWeight signals an attempt to store a negative edge weight.
	ErrNegativeWeight = errors.New("matrix: negative edge weight")
)

// noEdge marks absent cells. Stored weights are non-negative, so any
// negative value is free to carry the mark.
const noEdge int64 = -1

// Dense is a fixed-size adjacency matrix over the nodes 0..n-1.
// Cell (u,v) holds the weight of the edge u→v, or noEdge when absent.
//
// Memory: O(n²), a single flat allocation.
type Dense struct {
	n        int
	directed bool
	// data is row-major: data[u*n+v] is the cell for edge u→v.
	data []int64
}

// NewDense returns an n×n matrix with every edge absent.
// When directed is false, AddEdge and RemoveEdge keep the matrix
// symmetric by writing both mirror cells.
func NewDense(n int, directed bool) (*Dense, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidDimensions, n)
	}
	data := make([]int64, n*n)
	for i := range data {
		data[i] = noEdge
	}

	return &Dense{n: n, directed: directed, data: data}, nil
}

// Size returns the number of nodes.
func (m *Dense) Size() int { return m.n }

// Directed reports whether edge updates write one cell or both mirrors.
func (m *Dense) Directed() bool { return m.directed }

// AddEdge sets the weight of u→v, overwriting any previous value.
// In undirected mode the mirror edge v→u is set as well.
//
// Time Complexity: O(1)
func (m *Dense) AddEdge(u, v int, w int64) error {
	if err := m.checkIndex(u, v); err != nil {
		return err
	}
	if w < 0 {
		return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, v, w)
	}
	m.data[u*m.n+v] = w
	if !m.directed {
		m.data[v*m.n+u] = w
	}

	return nil
}

// RemoveEdge marks u→v absent; in undirected mode the mirror cell is
// cleared too. Removing an edge that was never added is a no-op.
//
// Time Complexity: O(1)
func (m *Dense) RemoveEdge(u, v int) error {
	if err := m.checkIndex(u, v); err != nil {
		return err
	}
	m.data[u*m.n+v] = noEdge
	if !m.directed {
		m.data[v*m.n+u] = noEdge
	}

	return nil
}

// Weight returns the weight of u→v and whether that edge exists.
// Out-of-range indices read as absent.
//
// Time Complexity: O(1)
func (m *Dense) Weight(u, v int) (int64, bool) {
	if u < 0 || u >= m.n || v < 0 || v >= m.n {
		return 0, false
	}
	if w := m.data[u*m.n+v]; w != noEdge {
		return w, true
	}

	return 0, false
}

// Neighbors scans row u and returns its outgoing edges in ascending
// target order. Nodes outside 0..n-1 have no neighbors. The returned
// slice is freshly allocated on every call.
//
// Time Complexity: O(n)
func (m *Dense) Neighbors(u int) []core.Neighbor[int] {
	if u < 0 || u >= m.n {
		return nil
	}
	var out []core.Neighbor[int]
	row := m.data[u*m.n : (u+1)*m.n]
	for v, w := range row {
		if w != noEdge {
			out = append(out, core.Neighbor[int]{Weight: w, Node: v})
		}
	}

	return out
}

// ToCost converts the matrix into a sparse adjacency backend holding
// the same nodes and edges, isolated nodes included.
//
// Time Complexity: O(n²)
func (m *Dense) ToCost() (*core.CostGraph[int], error) {
	adj := make(map[int][]core.Neighbor[int], m.n)
	for u := 0; u < m.n; u++ {
		adj[u] = m.Neighbors(u)
	}

	return core.NewCostGraph(adj)
}

// checkIndex validates that u and v both lie inside 0..n-1.
func (m *Dense) checkIndex(u, v int) error {
	if u < 0 || u >= m.n {
		return fmt.Errorf("%w: u=%d size=%d", ErrIndexOutOfBounds, u, m.n)
	}
	if v < 0 || v >= m.n {
		return fmt.Errorf("%w: v=%d size=%d", ErrIndexOutOfBounds, v, m.n)
	}

	return nil
}
