package modgroup

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/sl2z/sl2"
)

// CuspWidth returns the width of the cusp c: the least k > 0 such
// that ±g·T^k·g⁻¹ lies in the subgroup, where g carries ∞ to c. The
// width of every cusp divides the index, so the search stops at
// index+1.
func (g *Subgroup) CuspWidth(c Cusp) (*big.Int, error) {
	conj := c.conjugator()
	conjInv := conj.Inverse()
	step := conj.Mul(sl2.T()).Mul(conjInv)

	m := step
	for k := 1; k <= g.index+1; k++ {
		ok, err := g.isElementUpToSign(m)
		if err != nil {
			return nil, err
		}
		if ok {
			return big.NewInt(int64(k)), nil
		}
		m = m.Mul(step)
	}
	return nil, fmt.Errorf("%w: cusp %s", ErrWidthSearch, c)
}

// CuspsEquivalent reports whether some element of the subgroup takes
// c1 to c2. Elements moving c1 to c2 have the form ±g2·T^i·g1⁻¹ with
// gj the conjugator of cj, and i may be taken below the index.
func (g *Subgroup) CuspsEquivalent(c1, c2 Cusp) (bool, error) {
	if c1.IsInfinity() && c2.IsInfinity() {
		return true, nil
	}
	if c1.IsInfinity() {
		c1, c2 = c2, c1
	}

	g1 := c1.conjugator()
	g2 := c2.conjugator()
	step := g1.Mul(sl2.T()).Mul(g1.Inverse())

	m := g2.Mul(g1.Inverse())
	for i := 0; i < g.index; i++ {
		ok, err := g.isElementUpToSign(m)
		if err != nil || ok {
			return ok, err
		}
		m = m.Mul(step)
	}
	return false, nil
}

// CuspsRedundant returns the cusp of every coset representative, in
// Schreier-tree order: the image of ∞ under each representative. The
// list usually repeats equivalent cusps; Cusps deduplicates it.
func (g *Subgroup) CuspsRedundant() ([]Cusp, error) {
	reps, err := g.CosetRepresentatives()
	if err != nil {
		return nil, err
	}
	out := make([]Cusp, len(reps))
	for i, m := range reps {
		out[i] = cuspOf(m)
	}
	return out, nil
}

// Cusps returns one representative per equivalence class of cusps of
// the subgroup, keeping the first coset whose cusp is not equivalent
// to any cusp already kept.
func (g *Subgroup) Cusps() ([]Cusp, error) {
	all, err := g.CuspsRedundant()
	if err != nil {
		return nil, err
	}
	var out []Cusp
	for _, c := range all {
		dup := false
		for _, kept := range out {
			eq, err := g.CuspsEquivalent(kept, c)
			if err != nil {
				return nil, err
			}
			if eq {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, c)
		}
	}
	return out, nil
}

// GeneralizedLevel returns the least common multiple of all cusp
// widths. For a congruence subgroup it coincides with the classical
// level of Klein and Fricke by Wohlfahrt's theorem. The result is
// cached; callers must not mutate it.
func (g *Subgroup) GeneralizedLevel() (*big.Int, error) {
	g.levelOnce.Do(func() {
		cusps, err := g.CuspsRedundant()
		if err != nil {
			g.levelErr = err
			return
		}
		lcm := big.NewInt(1)
		tmp := new(big.Int)
		for _, c := range cusps {
			w, err := g.CuspWidth(c)
			if err != nil {
				g.levelErr = err
				return
			}
			tmp.GCD(nil, nil, lcm, w)
			lcm.Div(lcm.Mul(lcm, w), tmp)
		}
		g.level = lcm
	})
	return g.level, g.levelErr
}
