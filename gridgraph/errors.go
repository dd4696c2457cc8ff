package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the cost field has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNegativeCost indicates a cell with a negative entry cost.
	ErrNegativeCost = errors.New("gridgraph: negative cell cost")
	// ErrCellOutOfBounds indicates a cell reference outside the grid.
	ErrCellOutOfBounds = errors.New("gridgraph: cell outside the grid")
)
