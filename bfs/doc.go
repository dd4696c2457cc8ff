// Package bfs provides breadth-first traversal over any core.WeightedGraph,
// returning visit order, hop-count depths, and parent links.
//
// What
//
//   - Explore nodes level by level from a start node, marking each node
//     visited the moment it enters the frontier so cycles cannot recur.
//   - Optionally stop early when a configured goal node is dequeued
//     (WithGoal); Result.GoalReached reports whether that happened.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node to its distance (in edges) from the start
//   - Parent: map from node to its predecessor in the traversal tree
//   - GoalReached: whether the configured goal was dequeued
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a node enters the frontier)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit no limit (d==0).
//   - Edge weights are ignored; traversal is purely hop-count driven.
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Discover reachable subgraphs, connected components, and level layering.
//   - Foundation for reachability, matching, and other graph algorithms.
//
// Frontier order
//
//	The frontier is FIFO by default, which yields the classic level-by-level
//	sweep. WithFrontierOrder(FrontierLIFO) switches to stack discipline, so
//	the walk plunges depth-first while keeping the same visited-set and goal
//	semantics. Both orders mark nodes visited on enqueue.
//
// Determinism
//
//	The engine expands neighbors in the order the graph yields them, so the
//	visit sequence is exactly as reproducible as the underlying Neighbors
//	implementation. SimpleGraph and CostGraph preserve input slice order.
//
// Complexity (V = reachable nodes, E = their edges)
//
//   - Time:   O(V + E)   (each node and edge seen at most once)
//   - Memory: O(V)       (frontier, Depth map, Parent map, visited set)
//
// Usage
//
//	g := core.NewSimpleGraph(map[string][]string{
//	    "A": {"B", "C"},
//	    "B": {"D"},
//	})
//
//	// Exhaustive traversal:
//	res, err := bfs.BFS(g, "A")
//
//	// Goal-directed, with a depth cap. Options whose arguments do not
//	// mention the node type need explicit instantiation:
//	res, err = bfs.BFS(g, "A",
//	    bfs.WithGoal("D"),
//	    bfs.WithMaxDepth[string](3),
//	)
//
// Options
//
//   - DefaultOptions(): background Context, FIFO frontier, no goal,
//     no depth limit, no filtering, no-op hooks.
//   - WithGoal(n):             stop as soon as n is dequeued.
//   - WithFrontierOrder(ord):  FrontierFIFO (default) or FrontierLIFO.
//   - WithContext(ctx):        custom context for cancellation.
//   - WithMaxDepth(d):         stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):  skip edges for which fn(curr,neighbor)==false.
//   - WithOnEnqueue(fn):       hook when a node enters the frontier.
//   - WithOnDequeue(fn):       hook immediately before visiting a node.
//   - WithOnVisit(fn):         hook during visit; returning error aborts.
//
// Errors
//
//   - ErrGraphNil        if the graph is nil.
//   - ErrOptionViolation if an invalid Option is supplied (negative
//     MaxDepth, unknown frontier order).
//   - ErrNoPath          from Result.PathTo for nodes the walk never saw.
//   - Wrapped user-supplied hook errors from OnVisit, and context errors
//     when a cancellation fires mid-traversal.
package bfs
