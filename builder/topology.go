package builder

import (
	"fmt"
	"math"
)

// Parameter minima per constructor.
const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 2
	minStarNodes     = 2
	minSparseNodes   = 2
)

// Path returns a constructor for the path graph P_n: the chain
// 0-1-2-...-(n-1), edges emitted in ascending order.
func Path(n int) Constructor {
	return func(d *Draft, cfg Config) error {
		if n < minPathNodes {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			d.LinkBoth(i-1, i, cfg.EdgeWeight())
		}

		return nil
	}
}

// Cycle returns a constructor for the cycle C_n: a ring of n nodes,
// closing edge last.
func Cycle(n int) Constructor {
	return func(d *Draft, cfg Config) error {
		if n < minCycleNodes {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			d.LinkBoth(i, (i+1)%n, cfg.EdgeWeight())
		}

		return nil
	}
}

// Complete returns a constructor for K_n: every pair of the n nodes
// linked, pairs emitted in lexicographic order.
func Complete(n int) Constructor {
	return func(d *Draft, cfg Config) error {
		if n < minCompleteNodes {
			return fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
		}
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				d.LinkBoth(u, v, cfg.EdgeWeight())
			}
		}

		return nil
	}
}

// Star returns a constructor for the star S_n: node 0 as hub, nodes
// 1..n-1 as leaves.
func Star(n int) Constructor {
	return func(d *Draft, cfg Config) error {
		if n < minStarNodes {
			return fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			d.LinkBoth(0, i, cfg.EdgeWeight())
		}

		return nil
	}
}

// Grid returns a constructor for a rows×cols lattice with 4-neighbor
// links. Node IDs are row-major: r*cols+c.
func Grid(rows, cols int) Constructor {
	return func(d *Draft, cfg Config) error {
		if rows < 1 || cols < 1 || rows*cols < 2 {
			return fmt.Errorf("Grid: %dx%d: %w", rows, cols, ErrBadSize)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := r*cols + c
				if c+1 < cols {
					d.LinkBoth(id, id+1, cfg.EdgeWeight())
				}
				if r+1 < rows {
					d.LinkBoth(id, id+cols, cfg.EdgeWeight())
				}
			}
		}

		return nil
	}
}

// RandomSparse returns a constructor that lays a spanning path over
// 0..n-1 to guarantee connectivity, then adds each remaining pair as a
// chord with probability p. It draws from the source armed by WithSeed
// and refuses to run without one; the pair scan order is fixed, so one
// seed always yields one graph.
func RandomSparse(n int, p float64) Constructor {
	return func(d *Draft, cfg Config) error {
		if n < minSparseNodes {
			return fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minSparseNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 || math.IsNaN(p) {
			return fmt.Errorf("RandomSparse: p=%v: %w", p, ErrInvalidProbability)
		}
		rng := cfg.Rand()
		if rng == nil {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		for i := 1; i < n; i++ {
			d.LinkBoth(i-1, i, cfg.EdgeWeight())
		}
		for u := 0; u < n; u++ {
			for v := u + 2; v < n; v++ {
				if rng.Float64() < p {
					d.LinkBoth(u, v, cfg.EdgeWeight())
				}
			}
		}

		return nil
	}
}
