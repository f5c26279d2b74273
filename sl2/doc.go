// Package sl2 provides immutable 2×2 integer matrices of determinant
// one — elements of SL(2,Z) — over arbitrary-precision arithmetic.
//
// Every constructor checks the determinant and rejects anything that
// is not an element of the group: an out-of-group matrix is a caller
// error, never a silent coercion. All operations return fresh values;
// a Matrix is never mutated after construction, so values may be
// shared freely across goroutines.
//
// The zero value of Matrix is NOT valid. Obtain matrices from New,
// NewBig, Identity, S, T or TPow, or as products of those. Boundary
// code that may receive a zero value should call Valid first.
//
// The distinguished generators of SL(2,Z):
//
//	S = | 0 −1 |    T = | 1 1 |
//	    | 1  0 |        | 0 1 |
//
// S has order 4, S² = −I is central, and T generates the integer
// translations.
package sl2
