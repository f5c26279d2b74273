package perm

import "errors"

var (
	// ErrNotPermutation indicates that an image slice is not a bijection
	// of {0,…,n−1}: an entry is out of range or appears twice.
	ErrNotPermutation = errors.New("perm: images do not form a permutation")

	// ErrBadCycle indicates a malformed cycle: a point label that is not
	// positive, exceeds the requested degree, or appears in two cycles.
	ErrBadCycle = errors.New("perm: malformed cycle")
)
