// Package gonumgraph bridges the core.WeightedGraph capability and the
// gonum graph ecosystem, in both directions.
//
// What:
//
//   - Wrap snapshots any gonum graph.Weighted into a core.CostGraph over
//     its int64 node ids, so the bfs and dijkstra engines can run on
//     graphs built or generated with gonum.
//   - Mirror walks the region of a capability graph reachable from a
//     seed set and materializes it as a *simple.WeightedDirectedGraph,
//     with an Index translating between node values and the assigned
//     ids. The mirrored graph plugs into gonum's path, topo, network and
//     flow algorithms.
//
// Semantics and limits:
//
//   - Both directions copy: later mutation of the source graph is not
//     reflected in the output.
//   - Wrap demands integral, non-negative, finite weights; anything else
//     is rejected with ErrBadWeight naming the edge.
//   - Mirror assigns ids 0..n-1 in discovery order (seeds first), skips
//     self-loops, and collapses parallel edges to the cheapest one,
//     matching what simple directed graphs can represent.
//   - Costs at or above 2^53 lose precision in gonum's float64 weights.
//
// Errors:
//
//   - ErrNilGraph:  nil source graph.
//   - ErrBadWeight: negative, fractional, or non-finite edge weight.
package gonumgraph
