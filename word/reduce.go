package word

import "math/big"

// Reduced returns a copy of w with adjacent syllables on the same
// generator merged and zero-exponent syllables dropped. The result
// evaluates to the same matrix; it may be the empty word. Syllables
// with a nil exponent are kept untouched so that Matrix still reports
// ErrNilExponent on them.
func (w Word) Reduced() Word {
	out := make(Word, 0, len(w))
	for _, s := range w {
		if s.Exp == nil {
			out = append(out, s)
			continue
		}
		if s.Exp.Sign() == 0 {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Gen == s.Gen && out[n-1].Exp != nil {
			sum := new(big.Int).Add(out[n-1].Exp, s.Exp)
			if sum.Sign() == 0 {
				out = out[:n-1]
			} else {
				out[n-1] = Syllable{Gen: s.Gen, Exp: sum}
			}
			continue
		}
		out = append(out, SylBig(s.Gen, s.Exp))
	}
	return out
}
