package matrix

import "errors"

// Sentinel errors for matrix construction and algorithms.
var (
	// ErrBadShape indicates a negative or overflowing dimension, or a
	// mismatched row length.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare indicates an operation that needs a square matrix.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates a nil *Dense argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrGraphNil indicates a nil *core.Graph argument.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrNegativeCycle indicates that FloydWarshall left a negative entry on
	// the diagonal.
	ErrNegativeCycle = errors.New("matrix: negative cycle detected")
)
