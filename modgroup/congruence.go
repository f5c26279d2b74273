package modgroup

import (
	"math/big"

	"github.com/katalvlaran/sl2z/perm"
)

// IsCongruence reports whether the subgroup is a congruence subgroup,
// i.e. contains the principal congruence subgroup Γ(N) for some N.
//
// By Wohlfahrt's theorem it suffices to test N equal to the
// generalized level, doubled when -I is absent. Hsu's criterion then
// reduces the test to relations between the actions of T and of
// R = [[1,0],[1,1]], split by the factorization N = 2^k·m:
// one relation when N is odd, four when N is a power of two, and
// seven in the mixed case.
func (g *Subgroup) IsCongruence() (bool, error) {
	if g.index == 1 {
		return true, nil
	}
	level, err := g.GeneralizedLevel()
	if err != nil {
		return false, err
	}
	n := new(big.Int).Set(level)
	if !g.IsEven() {
		n.Lsh(n, 1)
	}

	tz := n.TrailingZeroBits()
	e := new(big.Int).Lsh(big.NewInt(1), tz) // 2-part of N
	m := new(big.Int).Rsh(n, tz)             // odd part of N

	t := g.t
	r := perm.Compose(g.s, g.s, g.t, g.sInv, g.t) // action of R = S²TS⁻¹T

	one := big.NewInt(1)
	switch {
	case e.Cmp(one) == 0:
		return congruenceOdd(t, r, n), nil
	case m.Cmp(one) == 0:
		return congruenceEven(t, r, n), nil
	default:
		return congruenceMixed(t, r, e, m), nil
	}
}

// cube is p³.
func cube(p perm.Perm) perm.Perm { return perm.Compose(p, p, p) }

// congruenceOdd checks the single odd-level relation
// (r²·t^(-1/2))³ = id, with 1/2 taken mod n.
func congruenceOdd(t, r perm.Perm, n *big.Int) bool {
	inv2 := new(big.Int).ModInverse(big.NewInt(2), n)
	if inv2 == nil {
		return false
	}
	a := perm.Compose(r, r, t.PowBig(inv2.Neg(inv2)))
	return cube(a).IsIdentity()
}

// congruenceEven checks the four relations of the 2-power case, built
// from x = t·r⁻¹·t (the action of S⁻¹) and q = t²⁰·r^(1/5)·t⁻⁴·r⁻¹,
// with 1/5 taken mod n.
func congruenceEven(t, r perm.Perm, n *big.Int) bool {
	inv5 := new(big.Int).ModInverse(big.NewInt(5), n)
	if inv5 == nil {
		return false
	}
	x := perm.Compose(t, r.Inverse(), t)
	q := perm.Compose(t.Pow(20), r.PowBig(inv5), t.Pow(-4), r.Inverse())

	if !perm.Compose(x.Inverse(), q, x, q).IsIdentity() {
		return false
	}
	if !perm.Compose(q.Inverse(), r, q, r.Pow(-25)).IsIdentity() {
		return false
	}
	if !perm.Compose(x, x, cube(perm.Compose(q, r.Pow(5), x)).Inverse()).IsIdentity() {
		return false
	}
	return perm.Compose(x, x, x, x).IsIdentity()
}

// congruenceMixed checks the seven relations of the general case.
// The exponents c and d split t and r into their odd and even parts:
// c ≡ 0 mod e, c ≡ 1 mod m and d ≡ 1 mod e, d ≡ 0 mod m.
func congruenceMixed(t, r perm.Perm, e, m *big.Int) bool {
	n := new(big.Int).Mul(e, m)
	invEM := new(big.Int).ModInverse(e, m)
	invME := new(big.Int).ModInverse(m, e)
	inv2 := new(big.Int).ModInverse(big.NewInt(2), m)
	inv5 := new(big.Int).ModInverse(big.NewInt(5), e)
	if invEM == nil || invME == nil || inv2 == nil || inv5 == nil {
		return false
	}
	c := new(big.Int).Mul(e, invEM)
	c.Mod(c, n)
	d := new(big.Int).Mul(m, invME)
	d.Mod(d, n)

	a := t.PowBig(c)
	b := r.PowBig(c)
	p := t.PowBig(d)
	q := r.PowBig(d)

	y := perm.Compose(a, b.Inverse(), a)
	x := perm.Compose(p, q.Inverse(), p)
	w := perm.Compose(p.Pow(20), q.PowBig(inv5), p.Pow(-4), q.Inverse())

	checks := []perm.Perm{
		perm.Compose(a, q, a.Inverse(), q.Inverse()),
		perm.Compose(y, y, y, y),
		perm.Compose(y, y, cube(perm.Compose(a.Inverse(), b)).Inverse()),
		perm.Compose(y, y, cube(perm.Compose(b, b, a.PowBig(new(big.Int).Neg(inv2)))).Inverse()),
		perm.Compose(x.Inverse(), w, x, w),
		perm.Compose(w.Inverse(), q, w, q.Pow(-25)),
		perm.Compose(x, x, cube(perm.Compose(w, q.Pow(5), x)).Inverse()),
	}
	for _, rel := range checks {
		if !rel.IsIdentity() {
			return false
		}
	}
	return true
}
