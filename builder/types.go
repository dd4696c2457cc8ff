package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/velkary/wayfind/core"
)

var (
	// ErrTooFewVertices signals a constructor parameter below its minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")
	// ErrBadSize signals unusable grid dimensions.
	ErrBadSize = errors.New("builder: invalid size")
	// ErrInvalidProbability signals a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")
	// ErrNeedRandSource signals a randomized constructor run without WithSeed.
	ErrNeedRandSource = errors.New("builder: rng is required")
	// ErrConstructFailed signals a nil Constructor passed to Build.
	ErrConstructFailed = errors.New("builder: construction failed")
	// ErrOptionViolation signals an option given an unusable value.
	ErrOptionViolation = errors.New("builder: invalid option value")
)

// DefaultEdgeWeight is assigned to every edge unless WithWeightFn
// overrides it.
const DefaultEdgeWeight int64 = 1

// Draft accumulates adjacency while constructors run. It is handed to
// each Constructor in turn and finalized by Build.
type Draft struct {
	adj map[int][]core.Neighbor[int]
}

// Node ensures u exists in the draft even if no edge touches it.
func (d *Draft) Node(u int) {
	if _, ok := d.adj[u]; !ok {
		d.adj[u] = nil
	}
}

// Link records the directed edge u→v with weight w.
func (d *Draft) Link(u, v int, w int64) {
	d.Node(v)
	d.adj[u] = append(d.adj[u], core.Neighbor[int]{Weight: w, Node: v})
}

// LinkBoth records the edge in both directions with the same weight.
func (d *Draft) LinkBoth(u, v int, w int64) {
	d.Link(u, v, w)
	d.Link(v, u, w)
}

// Constructor lays one topology into the draft. Implementations must
// emit edges in a deterministic order and return only sentinel errors
// wrapped with context.
type Constructor func(d *Draft, cfg Config) error

// Config carries the knobs shared by all constructors of one Build run.
type Config struct {
	// rng is nil unless WithSeed armed it.
	rng *rand.Rand
	// weightFn produces the weight for each undirected edge.
	weightFn func(*rand.Rand) int64
	// err records the first option violation for Build to surface.
	err error
}

// Rand exposes the source armed by WithSeed, or nil. Randomized
// constructors must refuse to run on nil.
func (c Config) Rand() *rand.Rand { return c.rng }

// EdgeWeight draws the weight for the next edge from the configured
// weight function.
func (c Config) EdgeWeight() int64 { return c.weightFn(c.rng) }

// Option adjusts how Build runs its constructors.
type Option func(*Config)

// WithSeed arms the shared random source used by randomized
// constructors and custom weight functions. Same seed, same graph.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn replaces the constant DefaultEdgeWeight. fn is called
// once per undirected edge, in emission order, and receives the source
// armed by WithSeed (nil unless seeded).
func WithWeightFn(fn func(*rand.Rand) int64) Option {
	return func(c *Config) {
		if fn == nil {
			c.err = fmt.Errorf("%w: nil weight function", ErrOptionViolation)

			return
		}
		c.weightFn = fn
	}
}

func defaultConfig() Config {
	return Config{
		weightFn: func(*rand.Rand) int64 { return DefaultEdgeWeight },
	}
}
