// Package gridgraph exposes a rectangular cost field as a weighted graph
// over Cell nodes, ready for the bfs and dijkstra engines.
//
// What:
//
//   - Grid wraps a [][]int64 cost field; costs[y][x] is the expense of
//     stepping INTO cell (x,y).
//   - Cells at or above GridOptions.WallThreshold are walls: they have no
//     neighbors and never appear as one.
//   - Grid satisfies the core.WeightedGraph[Cell] capability, so any
//     traversal engine runs on it unchanged.
//   - Components groups the passable cells into maximal connected regions.
//   - CarvePath finds the cheapest corridor between two cells with walls
//     made enterable at their stored cost.
//
// Why:
//
//   - Game maps: terrain movement costs, reachable-region detection.
//   - Routing over rasterized fields: elevation, congestion, toll layers.
//   - Planning: cheapest place to breach a barrier (CarvePath).
//
// Complexity:
//
//   - Neighbors:   O(d) per call, d = 4 or 8.
//   - Components:  O(W×H×d) time, O(W×H) memory.
//   - CarvePath:   O(W×H×d log(W×H)) time, O(W×H) memory.
//
// Options (GridOptions, applied at construction):
//
//   - Conn: Conn4 (N/E/S/W) or Conn8 (adds diagonals).
//   - WallThreshold: cells with cost >= threshold are impassable;
//     zero or negative means no walls.
//
// Errors:
//
//   - ErrEmptyGrid:       the field has no rows or no columns.
//   - ErrNonRectangular:  rows differ in length.
//   - ErrNegativeCost:    a cell carries a negative cost.
//   - ErrCellOutOfBounds: CarvePath endpoint outside the grid.
package gridgraph
