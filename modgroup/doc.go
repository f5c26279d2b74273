// Package modgroup computes with finite-index subgroups of SL(2,ℤ)
// presented by their coset permutation action.
//
// What
//
//   - A Subgroup is described by two permutations s and t: the action
//     of the generators S = [[0,-1],[1,0]] and T = [[1,1],[0,1]] on the
//     right cosets of the subgroup, with the subgroup itself as coset 0.
//   - New validates an action against the defining relations
//     s⁴ = (s³t)³ = id, s²t = ts² and transitivity; NewFromGenerators
//     builds the action from generating matrices by coset enumeration.
//   - Operations: Index, IsEven (-I membership), IsElementOf
//     (membership of an arbitrary matrix), CuspWidth, CuspsEquivalent,
//     CuspsRedundant, Cusps, GeneralizedLevel, IsCongruence,
//     Generators and CosetRepresentatives.
//
// Why
//
//	The coset action is a finite, exact certificate of a subgroup of
//	infinite ambient order. Membership, cusp data, the generalized
//	level, and even the congruence property all reduce to permutation
//	computations on it, with arbitrary-precision matrix arithmetic only
//	at the boundary.
//
// Membership
//
//	IsElementOf decomposes the candidate matrix into a word in S and T
//	by a Euclidean reduction of its bottom row, then pushes coset 0
//	through the word. The matrix lies in the subgroup exactly when the
//	word fixes coset 0.
//
// Congruence
//
//	IsCongruence implements the Hsu criterion after Wohlfahrt: a
//	subgroup is congruence exactly when it contains Γ(N) for N its
//	generalized level (doubled when -I is absent). The criterion splits
//	on the parity of N: one relation for odd N, four for N a power of
//	two, and seven for the mixed case, all checked on the permutations
//	t and r = s²ts⁻¹t.
//
// Determinism
//
//	Cusps, CuspsRedundant and Generators enumerate cosets along the
//	breadth-first Schreier tree over S, S⁻¹, T, T⁻¹ in that order, so
//	their output order is reproducible.
//
// Usage
//
//	s, _ := perm.FromCycles(3, [][]int{{2, 3}})
//	t, _ := perm.FromCycles(3, [][]int{{1, 2}})
//	g, err := modgroup.New(s, t) // the theta group
//	idx := g.Index()             // 3
//	lvl, _ := g.GeneralizedLevel() // 2
//	ok, _ := g.IsCongruence()      // true
//
// Errors
//
//   - perm.ErrNotPermutation   s or t is not a bijection
//   - ErrRelationViolated      the action breaks a defining relation
//   - ErrNotTransitive         the action has more than one orbit
//   - ErrWidthSearch           no power of T closes a cusp width search
//   - coset.ErrCosetLimit      NewFromGenerators ran out of cosets
package modgroup
