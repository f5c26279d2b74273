// Package coset turns generator words into a coset permutation action,
// and coset permutation actions back into group elements.
//
// What
//
//   - Enumerate runs a Todd–Coxeter coset enumeration over the
//     presentation ⟨S, T | S⁴, (S³T)³, S²TS⁻²T⁻¹⟩ of SL(2,ℤ) for the
//     subgroup generated by a slice of words, and returns the
//     permutations that S and T induce on the cosets. The subgroup
//     itself is coset 0.
//   - Representatives walks the Schreier tree of a given action and
//     returns one word per coset, with the empty word for coset 0.
//   - SchreierGenerators returns words generating the point stabilizer
//     of coset 0, i.e. the subgroup the action was built from.
//
// Why
//
//   - A finite-index subgroup handed to us as matrices or words has no
//     a-priori coset action; enumeration constructs it, or proves the
//     index is not small by exhausting the coset budget.
//   - Representatives and SchreierGenerators go the other way: they
//     recover explicit group elements from a bare permutation action,
//     which is what cusp enumeration and generator extraction need.
//
// Enumeration strategy
//
//	The enumerator is the HLT variant: every relator is traced at every
//	live coset, defining new cosets to complete a trace and merging
//	cosets when a trace closes onto an existing one. Coincidences are
//	processed eagerly through a union-find with minimum-index
//	representatives, so coset 0 always survives. The table is complete
//	for a finite-index subgroup because the S⁴ trace fills every S-edge
//	and the (S³T)³ trace then fills every T-edge.
//
// Termination
//
//	Enumeration of an infinite-index subgroup never closes, so the
//	number of cosets ever defined (live or merged) is capped by
//	Options.MaxCosets; crossing the cap aborts with ErrCosetLimit.
//	A generator exponent larger than the cap is rejected up front,
//	since tracing T^e alone defines about e cosets.
//
// Usage
//
//	// The theta group ⟨S, T²⟩:
//	gens := []word.Word{
//	    {word.Syl(word.GenS, 1)},
//	    {word.Syl(word.GenT, 2)},
//	}
//	s, t, err := coset.Enumerate(gens, coset.DefaultOptions())
//	// s = (2 3), t = (1 2) on three cosets.
//
// Errors
//
//   - ErrCosetLimit      enumeration (or a generator exponent) exceeded MaxCosets
//   - ErrNotTransitive   Representatives was given a non-transitive action
//   - ErrOptionViolation MaxCosets is not positive
package coset
