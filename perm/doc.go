// Package perm provides dense permutations of the finite set {0,…,n−1}
// with exactly the operations the modular-group machinery needs:
// composition, inversion, identity testing, integer powers (including
// arbitrary-precision exponents), the largest moved point, and a
// transitivity test for a generated permutation group.
//
// Representation:
//
//	A Perm is a slice p of length n where p[i] is the image of point i.
//	Points outside the slice are considered fixed, so permutations of
//	different degrees compose freely: every operation silently extends
//	its operands to the larger degree.
//
// Conventions:
//
//   - Points are 0-based in the Go API. The cycle constructor
//     FromCycles and the Cycles decomposition use 1-based point labels,
//     matching the notation of the group-theory literature, so that
//     "(1,2)(3,4)" round-trips through [][]int{{1, 2}, {3, 4}}.
//   - Compose applies its arguments left to right: Compose(p, q) maps
//     i to q[p[i]]. This matches the right action of a group word read
//     left to right, which is how coset actions are evaluated.
//
// Powers with big exponents never materialize the exponent: PowBig and
// ImagePow reduce the exponent modulo each cycle length, so t^k for a
// 300-digit k costs O(n) time.
//
// Errors:
//
//	ErrNotPermutation – an image slice is not a bijection of {0,…,n−1}
//	ErrBadCycle       – a cycle uses a non-positive, duplicate, or
//	                    out-of-degree point label
package perm
