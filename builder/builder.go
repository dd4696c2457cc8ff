package builder

import (
	"fmt"

	"github.com/velkary/wayfind/core"
)

// Build runs the constructors in order over one shared draft and
// finalizes it into an immutable cost graph. Constructors that touch
// the same node IDs compose: their edges merge into one neighborhood,
// duplicates kept as parallel edges.
//
// Build returns the first constructor error wrapped with context, or
// the finalization error if a weight function produced a negative
// weight.
func Build(opts []Option, cons ...Constructor) (*core.CostGraph[int], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	d := &Draft{adj: make(map[int][]core.Neighbor[int])}
	for _, c := range cons {
		if c == nil {
			return nil, fmt.Errorf("%w: nil constructor", ErrConstructFailed)
		}
		if err := c(d, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return core.NewCostGraph(d.adj)
}
