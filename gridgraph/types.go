package gridgraph

import "math"

// Connectivity selects neighbor adjacency: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional adjacency: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional adjacency: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell identifies one grid position. It is a plain comparable value and
// serves directly as the node type for the traversal engines.
type Cell struct {
	X, Y int
}

// GridOptions carries the tunables applied at construction.
type GridOptions struct {
	// Conn chooses 4- or 8-directional adjacency. Unrecognized values
	// behave as Conn4.
	Conn Connectivity

	// WallThreshold marks cells with cost >= threshold as impassable.
	// Zero or negative means no cell is a wall.
	WallThreshold int64
}

// DefaultGridOptions returns orthogonal adjacency with no walls.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn:          Conn4,
		WallThreshold: math.MaxInt64,
	}
}
