package word

import (
	"math/big"

	"github.com/katalvlaran/sl2z/sl2"
)

// STDecomposition expresses m ∈ SL(2,Z) as a word over {S,T} whose
// evaluation through the canonical homomorphism reproduces m exactly.
//
// The algorithm is Euclidean reduction on the bottom row. With
//
//	m = | a b |
//	    | c d |
//
// while c ≠ 0 it takes the truncated quotient k = d quo c, prepends
// the pair S⁻¹ T^k to the word, and replaces m by m·T^(−k)·S, which
// sends the bottom row (c, d) to (d − c·k, −c); |d − c·k| < |c|, so
// the loop terminates like the Euclidean algorithm. Once c = 0 the
// determinant forces m = ±T^r with r the top-right entry, handled by
// prepending T^r (plus sign) or S²·T^(−r) (minus sign). For the plus
// sign T^r is emitted even when r = 0, so the identity matrix yields
// the non-empty word T⁰.
//
// A matrix that is not in SL(2,Z) — including the zero value — is
// rejected before any arithmetic.
func STDecomposition(m sl2.Matrix) (Word, error) {
	if err := m.Valid(); err != nil {
		return nil, err
	}
	a, b, c, d := m.Entries()

	// Quotients in reduction order; the word carries them in reverse.
	var quotients []*big.Int
	tmp := new(big.Int)
	for c.Sign() != 0 {
		k := new(big.Int).Quo(d, c) // truncates toward zero
		quotients = append(quotients, k)

		// m ← m·T^(−k)·S: rows (a,b) ↦ (b−a·k, −a), (c,d) ↦ (d−c·k, −c).
		tmp.Mul(a, k)
		a, b = new(big.Int).Sub(b, tmp), new(big.Int).Neg(a)
		tmp.Mul(c, k)
		c, d = new(big.Int).Sub(d, tmp), new(big.Int).Neg(c)
	}

	w := make(Word, 0, 2*len(quotients)+2)
	if a.Sign() > 0 { // m reduced to T^b
		w = append(w, SylBig(GenT, b))
	} else { // m reduced to −T^(−b) = S²·T^(−b)
		w = append(w, Syl(GenS, 2), SylBig(GenT, new(big.Int).Neg(b)))
	}
	for i := len(quotients) - 1; i >= 0; i-- {
		w = append(w, Syl(GenS, -1), SylBig(GenT, quotients[i]))
	}
	return w, nil
}
