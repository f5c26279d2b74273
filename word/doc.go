// Package word implements words over the generators S and T of the
// modular group presentation
//
//	SL(2,Z) = ⟨S, T | S⁴, (S³T)³, S²TS⁻²T⁻¹⟩
//
// together with the canonical matrix homomorphism (S ↦ [[0,−1],[1,0]],
// T ↦ [[1,1],[0,1]]) and the ST-decomposition of an arbitrary element
// of SL(2,Z) into such a word.
//
// A Word is an ordered sequence of syllables (generator, exponent) and
// is NOT canonical: two words that differ by the defining relations
// evaluate to the same matrix and induce the same coset action, but
// compare unequal as sequences. Consumers must therefore compare words
// only through their evaluations.
//
// The decomposition runs the continued-fraction (Euclidean) reduction
// on the bottom row of the matrix. Quotients truncate toward zero —
// big.Int.Quo semantics — which selects one particular word among the
// many valid ones; any choice is correct up to the relations. The
// identity matrix decomposes to the one-syllable word T⁰, never to the
// empty word.
package word
