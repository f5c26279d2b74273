package sl2

import "errors"

var (
	// ErrNotUnimodular indicates a 2×2 integer matrix whose determinant
	// is not exactly one, i.e. not an element of SL(2,Z).
	ErrNotUnimodular = errors.New("sl2: matrix determinant is not 1")

	// ErrInvalidMatrix indicates a zero-value or otherwise uninitialized
	// Matrix reached an operation that requires a constructed one.
	ErrInvalidMatrix = errors.New("sl2: uninitialized matrix")
)
