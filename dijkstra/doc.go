// Package dijkstra implements uniform-cost (Dijkstra) search over any
// core.WeightedGraph with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra is goal-directed: it expands nodes in order of increasing
//     cost from the start and returns as soon as the goal is dequeued, so
//     only the cheaper-than-goal region of the graph is explored.
//   - Tree is the exhaustive variant: it keeps expanding until every
//     reachable node has its final cost, yielding the full shortest-path
//     tree from the start.
//   - Both rely on a min-priority queue (pqueue.MinQueue) to always expand
//     the next-cheapest node.
//
// Key mechanics:
//
//   - Lazy decrease-key: improving a node's cost pushes a fresh queue entry
//     instead of editing the old one. Entries whose cost exceeds the
//     recorded best for their node are stale and skipped on pop.
//   - Strict relaxation: a neighbor is re-admitted only when the candidate
//     cost is strictly lower than its recorded best. Equal-cost candidates
//     are ignored, which keeps the predecessor map a tree and guarantees
//     termination even across zero-weight cycles.
//   - Each popped live entry is final: with non-negative weights no later
//     entry can beat it, so every node is visited at most once.
//
// Results:
//
//   - CostSoFar[v] is the minimal cost from start to v. Only admitted nodes
//     have entries; an absent node was unreachable (or beyond MaxCost).
//   - CameFrom[v] is v's predecessor on a cheapest path; CameFrom[start]
//     is start itself, the fixed point PathTo stops at.
//   - Order lists nodes in visit sequence, costs non-decreasing.
//   - GoalReached reports whether Dijkstra dequeued its goal.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is expanded at most once: V pops that do work.
//   - Each strict improvement pushes one entry: up to E pushes.
//   - Each queue operation costs O(log N), N ≤ V + E.
//   - Space: O(V + E)
//   - O(V) for the cost and predecessor maps.
//   - O(E) worst-case queued entries under lazy decrease-key.
//
// Options:
//
//   - WithContext(ctx):         cooperative cancellation between expansions.
//   - WithMaxCost(c):           stop once the cheapest queued cost exceeds c.
//   - WithInfEdgeThreshold(t):  treat edges with weight ≥ t as impassable.
//   - WithOnVisit(fn):          hook fired per visited node with its final
//     cost; returning an error aborts the search.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil graph passed to Dijkstra or Tree.
//   - ErrNegativeWeight:  a negative edge weight surfaced during relaxation,
//     wrapped with the offending edge. Constructors in core and gridgraph
//     reject negative weights up front; this is the last line of defense
//     for hand-rolled capability implementations.
//   - ErrOptionViolation: invalid option argument (negative MaxCost,
//     non-positive InfEdgeThreshold).
//   - ErrNoPath:          Result.PathTo asked about a node that was never
//     admitted.
//
// On any error the returned Result is nil; an unreachable goal is not an
// error (GoalReached stays false).
package dijkstra
