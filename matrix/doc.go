// Package matrix provides a dense adjacency-matrix graph backend for
// small integer ID spaces.
//
// What:
//
//	Dense stores the weight of every possible edge of an n-node graph in
//	a flat n×n table. Nodes are the integers 0..n-1. Cell (u,v) holds the
//	weight of the edge u→v, or an internal "no edge" mark when absent.
//	Because zero is a legal edge weight, absence is tracked explicitly
//	rather than by a zero cell.
//
// Why:
//
//	For dense graphs over a compact ID range a matrix beats adjacency
//	lists: edge lookup and update are O(1), and the whole structure is a
//	single allocation. Dense implements the same Neighbors contract as
//	the adjacency backends in core, so every traversal engine runs on it
//	unchanged.
//
// Construction:
//
//  1. NewDense(n, directed) allocates the n×n table with every cell absent.
//  2. AddEdge(u, v, w) sets cell (u,v); in undirected mode the mirror
//     cell (v,u) is set too.
//  3. RemoveEdge(u, v) marks the cell(s) absent again.
//
// Complexity:
//
//   - AddEdge / RemoveEdge / Weight: O(1)
//   - Neighbors: O(n) row scan
//   - ToCost: O(n²)
//   - Memory: O(n²)
//
// Errors:
//
//   - ErrInvalidDimensions: NewDense called with n < 1.
//   - ErrIndexOutOfBounds: a node index outside 0..n-1.
//   - ErrNegativeWeight: AddEdge called with w < 0.
//
// Dense is mutable: build it single-threaded, then share it freely once
// mutation stops. Neighbor slices are freshly allocated on every call.
package matrix
