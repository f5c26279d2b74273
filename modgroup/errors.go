package modgroup

import "errors"

var (
	// ErrRelationViolated is returned when a pair of permutations does
	// not satisfy the defining relations of SL(2,ℤ) and therefore does
	// not describe a coset action.
	ErrRelationViolated = errors.New("modgroup: permutations violate a defining relation")

	// ErrNotTransitive is returned when the permutations act with more
	// than one orbit, so the points are not the cosets of one subgroup.
	ErrNotTransitive = errors.New("modgroup: coset action is not transitive")

	// ErrWidthSearch is returned if no exponent up to index+1 closes a
	// cusp width search. A valid coset action never triggers it.
	ErrWidthSearch = errors.New("modgroup: cusp width search exhausted")
)
