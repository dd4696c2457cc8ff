package gridgraph

import (
	"fmt"

	"github.com/velkary/wayfind/core"
	"github.com/velkary/wayfind/dijkstra"
)

// CarvePath finds the cheapest corridor from src to dst with the wall
// threshold lifted: every in-bounds cell is enterable at its stored
// cost, so expensive walls can be cut through when no cheaper detour
// exists. The returned path includes both endpoints; cost sums the
// entry costs of every cell after src.
//
// Endpoints outside the field yield ErrCellOutOfBounds.
//
// Time:   O(W×H×d log(W×H)).
// Memory: O(W×H).
func (g *Grid) CarvePath(src, dst Cell) ([]Cell, int64, error) {
	if !g.InBounds(src.X, src.Y) {
		return nil, 0, fmt.Errorf("%w: src (%d,%d)", ErrCellOutOfBounds, src.X, src.Y)
	}
	if !g.InBounds(dst.X, dst.Y) {
		return nil, 0, fmt.Errorf("%w: dst (%d,%d)", ErrCellOutOfBounds, dst.X, dst.Y)
	}

	// Thresholdless view over the same cost field.
	open := core.NeighborFunc[Cell](func(c Cell) []core.Neighbor[Cell] {
		if !g.InBounds(c.X, c.Y) {
			return nil
		}
		out := make([]core.Neighbor[Cell], 0, len(g.offsets))
		for _, d := range g.offsets {
			n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
			if !g.InBounds(n.X, n.Y) {
				continue
			}
			out = append(out, core.Neighbor[Cell]{Weight: g.costs[n.Y][n.X], Node: n})
		}
		return out
	})

	res, err := dijkstra.Dijkstra[Cell](open, src, dst)
	if err != nil {
		return nil, 0, err
	}
	path, err := res.PathTo(dst)
	if err != nil {
		return nil, 0, err
	}

	return path, res.CostSoFar[dst], nil
}
