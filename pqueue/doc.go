// Package pqueue provides the min-priority ordering used by cost-driven
// traversal engines: nodes come out cheapest first.
//
// What:
//
//   - Item[T] pairs a node with the cost that orders it.
//   - MinQueue[T] is a binary min-heap of items, built on container/heap.
//
// Semantics:
//
//   - Pop returns the item with the smallest cost; ties are broken
//     arbitrarily, never by node identity.
//   - The same node may be queued several times at different costs. That is
//     deliberate: engines using lazy decrease-key push a fresh entry per
//     improvement and discard stale ones as they surface.
//
// Complexity:
//
//   - Push/Pop: O(log n). Peek/Len: O(1).
//
// MinQueue is not safe for concurrent use; each engine invocation owns its
// own queue.
package pqueue
