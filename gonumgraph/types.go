package gonumgraph

import "errors"

// Sentinel errors returned by Wrap and Mirror.
var (
	// ErrNilGraph is returned when the source graph is nil.
	ErrNilGraph = errors.New("gonumgraph: graph is nil")

	// ErrBadWeight is returned when an edge weight cannot be carried
	// across the bridge. The wrapping error names the edge.
	ErrBadWeight = errors.New("gonumgraph: unusable edge weight")
)

// Index records the id assignment produced by Mirror: node values to
// mirrored int64 ids and back.
type Index[T comparable] struct {
	fw map[T]int64
	bw []T
}

// IDOf returns the id assigned to node; ok is false if the node was
// never mirrored.
func (ix *Index[T]) IDOf(node T) (int64, bool) {
	id, ok := ix.fw[node]
	return id, ok
}

// NodeOf returns the node value behind a mirrored id.
func (ix *Index[T]) NodeOf(id int64) (T, bool) {
	if id < 0 || id >= int64(len(ix.bw)) {
		var zero T
		return zero, false
	}
	return ix.bw[id], true
}

// Len reports how many nodes were mirrored.
func (ix *Index[T]) Len() int { return len(ix.bw) }
