package word

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/sl2z/sl2"
)

// Gen names one of the two free generators.
type Gen uint8

const (
	// GenS is the order-4 rotation S.
	GenS Gen = iota
	// GenT is the unipotent shift T.
	GenT
)

// String returns "S" or "T".
func (g Gen) String() string {
	if g == GenS {
		return "S"
	}
	return "T"
}

// Syllable is one factor generator^exponent of a word.
type Syllable struct {
	Gen Gen
	Exp *big.Int
}

// Syl builds a syllable with an int64 exponent.
func Syl(g Gen, exp int64) Syllable {
	return Syllable{Gen: g, Exp: big.NewInt(exp)}
}

// SylBig builds a syllable, copying the exponent.
func SylBig(g Gen, exp *big.Int) Syllable {
	return Syllable{Gen: g, Exp: new(big.Int).Set(exp)}
}

// Word is an ordered sequence of syllables, evaluated left to right.
// The empty word is the identity.
type Word []Syllable

// Clone returns a deep copy of w.
func (w Word) Clone() Word {
	out := make(Word, len(w))
	for i, s := range w {
		out[i] = SylBig(s.Gen, s.Exp)
	}
	return out
}

// Inverse returns the group inverse: syllables reversed with negated
// exponents.
func (w Word) Inverse() Word {
	out := make(Word, len(w))
	for i, s := range w {
		out[len(w)-1-i] = Syllable{Gen: s.Gen, Exp: new(big.Int).Neg(s.Exp)}
	}
	return out
}

// Matrix evaluates w through the canonical homomorphism and returns
// the resulting element of SL(2,Z).
func (w Word) Matrix() (sl2.Matrix, error) {
	out := sl2.Identity()
	for _, s := range w {
		if s.Exp == nil {
			return sl2.Matrix{}, ErrNilExponent
		}
		out = out.Mul(genPower(s.Gen, s.Exp))
	}
	return out, nil
}

// genPower returns the matrix of one syllable. S has order 4, so its
// exponent is reduced mod 4; T^k is the translation by k.
func genPower(g Gen, exp *big.Int) sl2.Matrix {
	if g == GenT {
		return sl2.TPow(exp)
	}
	r := new(big.Int).Mod(exp, big.NewInt(4)).Int64() // Euclidean: 0..3
	m := sl2.Identity()
	for i := int64(0); i < r; i++ {
		m = m.Mul(sl2.S())
	}
	return m
}

// String renders w like "S^-1 T^3 S^2", or "ε" for the empty word.
func (w Word) String() string {
	if len(w) == 0 {
		return "ε"
	}
	parts := make([]string, len(w))
	for i, s := range w {
		if s.Exp == nil {
			parts[i] = s.Gen.String() + "^?"
		} else if s.Exp.Cmp(big.NewInt(1)) == 0 {
			parts[i] = s.Gen.String()
		} else {
			parts[i] = fmt.Sprintf("%s^%s", s.Gen, s.Exp)
		}
	}
	return strings.Join(parts, " ")
}
