package gridgraph

import "github.com/velkary/wayfind/bfs"

// Components returns the maximal connected regions of passable cells.
// Regions are discovered in row-major scan order; cells within a region
// appear in breadth-first visit order from its first-scanned cell.
//
// Walls form no regions. An all-wall grid yields an empty slice.
//
// Time:   O(W×H×d), d = 4 or 8.
// Memory: O(W×H) for the seen set and the output.
func (g *Grid) Components() [][]Cell {
	seen := make(map[Cell]bool, g.Width*g.Height)
	var comps [][]Cell

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			start := Cell{X: x, Y: y}
			if seen[start] || !g.Passable(start) {
				continue
			}
			// A bare run over a non-nil graph cannot fail.
			res, _ := bfs.BFS[Cell](g, start)
			for _, c := range res.Order {
				seen[c] = true
			}
			comps = append(comps, res.Order)
		}
	}

	return comps
}
