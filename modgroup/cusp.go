package modgroup

import (
	"math/big"

	"github.com/katalvlaran/sl2z/sl2"
)

// Cusp is a point of P¹(ℚ): a rational number or the point at
// infinity. The zero value is the point at infinity.
type Cusp struct {
	r *big.Rat // nil means ∞
}

// Infinity returns the cusp at infinity.
func Infinity() Cusp { return Cusp{} }

// NewCusp returns the cusp p/q. A zero q yields the cusp at infinity.
func NewCusp(p, q int64) Cusp {
	if q == 0 {
		return Infinity()
	}
	return Cusp{r: big.NewRat(p, q)}
}

// NewCuspRat returns the cusp at r, copying it. A nil r is the cusp
// at infinity.
func NewCuspRat(r *big.Rat) Cusp {
	if r == nil {
		return Infinity()
	}
	return Cusp{r: new(big.Rat).Set(r)}
}

// IsInfinity reports whether c is the cusp at infinity.
func (c Cusp) IsInfinity() bool { return c.r == nil }

// Rat returns the cusp as a rational number, or nil for infinity.
func (c Cusp) Rat() *big.Rat {
	if c.r == nil {
		return nil
	}
	return new(big.Rat).Set(c.r)
}

// Equal reports whether two cusps are the same point of P¹(ℚ).
func (c Cusp) Equal(d Cusp) bool {
	if c.r == nil || d.r == nil {
		return c.r == nil && d.r == nil
	}
	return c.r.Cmp(d.r) == 0
}

// String renders "p/q", "p" for integral cusps, or "infinity".
func (c Cusp) String() string {
	if c.r == nil {
		return "infinity"
	}
	return c.r.RatString()
}

// cuspOf is the image of ∞ under the Möbius action of m: a/c, or ∞
// when the lower-left entry vanishes.
func cuspOf(m sl2.Matrix) Cusp {
	a, _, c, _ := m.Entries()
	if c.Sign() == 0 {
		return Infinity()
	}
	return Cusp{r: new(big.Rat).SetFrac(a, c)}
}

// conjugator returns g ∈ SL(2,ℤ) with g·∞ = c, so that g conjugates
// the stabilizer of ∞ onto the stabilizer of c.
func (c Cusp) conjugator() sl2.Matrix {
	if c.r == nil {
		return sl2.Identity()
	}
	p := c.r.Num() // big.Rat keeps the denominator positive
	q := c.r.Denom()
	if p.Sign() == 0 {
		return sl2.S()
	}

	// xp + yq = 1 with the Bézout pair of |p| and q.
	x, y := new(big.Int), new(big.Int)
	new(big.Int).GCD(x, y, new(big.Int).Abs(p), q)
	if p.Sign() < 0 {
		x.Neg(x)
	}
	g, err := sl2.NewBig(p, new(big.Int).Neg(y), q, x)
	if err != nil {
		// xp + yq = 1 forces det = 1; Rat keeps p/q in lowest terms.
		panic(err)
	}
	return g
}
