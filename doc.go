// Package sl2z computes structural invariants of finite-index subgroups
// of the modular group SL(2,Z), represented by the coset permutation
// action of the two standard generators S (order-4 rotation) and T
// (unipotent shift).
//
// 🚀 What is sl2z?
//
//	An exact-arithmetic toolkit for number theorists that brings together:
//		• SL(2,Z) matrices over math/big with the det = 1 invariant enforced
//		• Words in ⟨S,T | S⁴, (S³T)³, S²TS⁻²T⁻¹⟩ and ST-decomposition
//		  of a matrix by Euclidean reduction of its bottom row
//		• Membership testing via the right coset action
//		• Cusp widths, cusp equivalence, cusp enumeration
//		• The generalized level (LCM of cusp widths)
//		• The congruence-subgroup decision procedure (Wohlfahrt/Hsu)
//		• Coset enumeration with a hard coset cap, coset representatives
//		  and Schreier generator extraction
//
// ✨ Why choose sl2z?
//
//   - Exact – arbitrary-precision integers everywhere, no float drift
//   - Validated – every boundary rejects out-of-group data with sentinel errors
//   - Immutable – subgroups never mutate; derived data is memoized safely
//   - Pure Go – no cgo, no computer-algebra system required
//
// Everything is organized under five subpackages:
//
//	perm/     — dense permutations: compose, invert, powers, transitivity
//	sl2/      — immutable 2×2 integer matrices of determinant one
//	word/     — words over {S,T}, the matrix homomorphism, ST-decomposition
//	coset/    — Todd–Coxeter enumeration, coset representatives, Schreier generators
//	modgroup/ — the modular-subgroup model: index, membership, cusps, level,
//	            congruence test, generator extraction
//
// Quick example, the theta group ⟨S, T²⟩ of index 3:
//
//	s, _ := perm.FromCycles(3, [][]int{{2, 3}})
//	t, _ := perm.FromCycles(3, [][]int{{1, 2}})
//	g, _ := modgroup.New(s, t)
//	g.Index()          // 3
//	g.GeneralizedLevel() // 2
//	g.IsCongruence()   // true
//
// The cmd/sl2z binary reads a YAML subgroup description and prints the
// same invariants from the command line.
//
//	go get github.com/katalvlaran/sl2z
package sl2z
