package linalg

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by linalg and its sub-packages.
// Callers should match them with [errors.Is]; the returned values usually
// wrap one of these with the offending index or shape.
var (
	// ErrIndexOutOfRange is returned when a component, row or column index
	// falls outside the dimension of the value being accessed.
	ErrIndexOutOfRange = errors.New("linalg: index out of range")

	// ErrDegenerate is returned when an operation needs a non-zero length,
	// such as normalizing a vector or rotating about a zero axis.
	ErrDegenerate = errors.New("linalg: degenerate vector")

	// ErrSingular is returned when inverting a matrix whose determinant is zero.
	ErrSingular = errors.New("linalg: singular matrix")

	// ErrUnknownMode is returned by the mode-tag constructors for a mode
	// that does not apply to the requested matrix, or for a wrong argument count.
	ErrUnknownMode = errors.New("linalg: unknown construction mode")

	// ErrDimensionMismatch is returned when operand dimensions are incompatible.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNotSquare is returned by operations that need a square matrix.
	ErrNotSquare = errors.New("linalg: matrix is not square")
)

func indexError(i, dim int) error {
	return fmt.Errorf("%w: index %d, dimension %d", ErrIndexOutOfRange, i, dim)
}

func cellError(row, col, dim int) error {
	return fmt.Errorf("%w: cell (%d, %d) of %dx%d matrix", ErrIndexOutOfRange, row, col, dim, dim)
}
