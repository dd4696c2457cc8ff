// Package wayfind is a toolkit for graph traversal over pluggable
// representations — breadth-first exploration and uniform-cost search on
// anything that can name its neighbors.
//
// 🚀 What is wayfind?
//
//	A small, generic library built around one capability:
//		• Core primitives: the WeightedGraph[T] capability + adjacency backends
//		• Traversals: breadth-first search with goals, hooks & depth limits
//		• Shortest paths: uniform-cost Dijkstra, single goal or full tree
//		• Grid worlds: 2D cost fields as graphs, regions & corridor carving
//		• Generators: deterministic topologies for tests and benchmarks
//		• Interop: a two-way bridge to the gonum graph ecosystem
//
// ✨ Why choose wayfind?
//
//   - One interface – implement Neighbors(node) and every engine works
//   - Generic nodes – strings, ints, structs; anything comparable
//   - Deterministic – visit order follows neighbor order, always
//   - Immutable backends – build once, traverse from any goroutine
//
// Everything lives in small, focused subpackages:
//
//	core/       — WeightedGraph capability, SimpleGraph, CostGraph, NeighborFunc
//	bfs/        — breadth-first engine with switchable frontier order
//	dijkstra/   — uniform-cost engine and shortest-path trees
//	pqueue/     — the min-priority ordering the cost engines run on
//	gridgraph/  — rectangular cost fields, connected regions, path carving
//	matrix/     — dense adjacency-matrix backend for small integer ID spaces
//	builder/    — composable topology constructors (paths, rings, stars…)
//	gonumgraph/ — snapshot and mirror bridges to gonum.org/v1/gonum/graph
//
// Quick ASCII example:
//
//	A───B
//	│   │
//	C───D
//
// a unit-weight square: BFS from A fans out to B and C, then D; Dijkstra
// prices every corner and hands back the tree it walked.
//
// Dive into each package's doc.go for contracts, options and errors.
//
//	go get github.com/velkary/wayfind
package wayfind
