package gridgraph

import (
	"fmt"
	"math"

	"github.com/velkary/wayfind/core"
)

// Grid wraps a rectangular cost field and exposes it as a weighted graph
// over Cell nodes. It is immutable once built.
type Grid struct {
	// Width and Height are the field dimensions in cells.
	Width, Height int
	// Conn is the adjacency scheme chosen at construction.
	Conn Connectivity
	// WallThreshold is the normalized impassability bound; cells with
	// cost >= WallThreshold are walls.
	WallThreshold int64

	costs   [][]int64
	offsets [][2]int
}

// NewGrid builds a Grid from a non-empty rectangular cost field.
// costs[y][x] is the expense of entering cell (x,y) and must be
// non-negative. The input is deep-copied, so later mutation of costs
// does not affect the Grid.
//
// Complexity: O(W×H) time and memory.
func NewGrid(costs [][]int64, opts GridOptions) (*Grid, error) {
	if len(costs) == 0 || len(costs[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(costs), len(costs[0])

	field := make([][]int64, h)
	for y, row := range costs {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		field[y] = make([]int64, w)
		for x, c := range row {
			if c < 0 {
				return nil, fmt.Errorf("%w: cell (%d,%d) cost=%d", ErrNegativeCost, x, y, c)
			}
			field[y][x] = c
		}
	}

	threshold := opts.WallThreshold
	if threshold <= 0 {
		threshold = math.MaxInt64
	}

	offsets := [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return &Grid{
		Width:         w,
		Height:        h,
		Conn:          opts.Conn,
		WallThreshold: threshold,
		costs:         field,
		offsets:       offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the field.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// CostAt returns the entry cost of cell (x,y); ok is false outside the
// field.
func (g *Grid) CostAt(x, y int) (int64, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}
	return g.costs[y][x], true
}

// Passable reports whether c lies in bounds and below the wall threshold.
func (g *Grid) Passable(c Cell) bool {
	return g.InBounds(c.X, c.Y) && g.costs[c.Y][c.X] < g.WallThreshold
}

// Neighbors yields the passable adjacent cells of c in offset order,
// each weighted by the entered cell's cost. A cell outside the field or
// on a wall has no neighbors.
func (g *Grid) Neighbors(c Cell) []core.Neighbor[Cell] {
	if !g.Passable(c) {
		return nil
	}
	out := make([]core.Neighbor[Cell], 0, len(g.offsets))
	for _, d := range g.offsets {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if !g.Passable(n) {
			continue
		}
		out = append(out, core.Neighbor[Cell]{Weight: g.costs[n.Y][n.X], Node: n})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
