// Package builder generates graph topologies for tests, benchmarks and
// demos.
//
// What:
//
//	A Constructor is a recipe that lays edges into a shared draft; Build
//	runs any number of them in order and finalizes the draft into an
//	immutable cost graph over integer node IDs. Ready-made constructors
//	cover the classic shapes: Path, Cycle, Complete, Star, Grid and
//	RandomSparse.
//
// Why:
//
//	Traversal code is best exercised on graphs whose structure is known
//	in advance. Hand-wiring a 100-node lattice is noise; Grid(10, 10) is
//	one line, and the expected depths and costs follow from the shape.
//
// Determinism:
//
//	Same inputs, same graph. Constructors emit edges in a fixed order,
//	randomized construction draws from the source armed by WithSeed, and
//	weight functions are invoked once per undirected edge in emission
//	order. Rebuilding with the same seed reproduces the graph exactly.
//
// Composition:
//
//	Constructors passed to one Build call share the draft: overlapping
//	node IDs merge neighborhoods, so Build(nil, Cycle(6), Star(6))
//	threads spokes from node 0 through the ring. Duplicate links are
//	kept as parallel edges; the traversal engines tolerate them.
//
// Options:
//
//   - WithSeed(seed): arm the shared random source. Required by
//     RandomSparse; also feeds custom weight functions.
//   - WithWeightFn(fn): replace the constant weight 1. The function is
//     handed the armed source (nil unless seeded).
//
// Errors:
//
//   - ErrTooFewVertices: a constructor parameter below its minimum.
//   - ErrBadSize: unusable grid dimensions.
//   - ErrInvalidProbability: a probability outside [0,1].
//   - ErrNeedRandSource: a randomized constructor ran without WithSeed.
//   - ErrConstructFailed: a nil Constructor was passed to Build.
//   - ErrOptionViolation: an option was given an unusable value.
package builder
