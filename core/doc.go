// Package core defines the weighted-graph capability that every traversal
// engine in wayfind consumes, plus ready-made adjacency implementations.
//
// What:
//
//   - WeightedGraph[T] is the single capability an engine needs: ask any node
//     for its outgoing (weight, neighbor) pairs.
//   - Neighbor[T] is one such pair; weights are non-negative int64 values.
//   - NeighborFunc[T] adapts a plain function to the capability, so lazy or
//     procedural graphs (implicit state spaces, generated mazes) need no type.
//   - SimpleGraph[T] wraps an adjacency mapping where every edge has weight 1.
//   - CostGraph[T] wraps an explicit weighted adjacency mapping, validated at
//     construction.
//
// Why:
//
//   - Engines stay decoupled from storage: anything that can answer
//     Neighbors(node) works, including adapters over foreign graph libraries.
//   - Nodes are opaque comparable values (strings, ints, structs), so callers
//     model their own domain instead of translating to internal IDs.
//
// Contract:
//
//   - Neighbors never fails: unknown nodes yield an empty (nil) slice.
//   - Implementations in this package deep-copy their input and never mutate
//     afterwards, so a single graph value is safe for concurrent readers.
//   - Weights must be non-negative. CostGraph enforces this at construction;
//     hand-rolled implementations carry the obligation themselves.
//
// Errors:
//
//   - ErrNegativeWeight: a negative edge weight was supplied to a constructor.
package core
