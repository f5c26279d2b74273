package modgroup

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/katalvlaran/sl2z/coset"
	"github.com/katalvlaran/sl2z/perm"
	"github.com/katalvlaran/sl2z/sl2"
	"github.com/katalvlaran/sl2z/word"
)

// Subgroup is a finite-index subgroup of SL(2,ℤ), represented by the
// action of S and T on its right cosets. Coset 0 is the subgroup.
// All methods are safe for concurrent use; the cusp and generator
// data are computed once and cached.
type Subgroup struct {
	s, t       perm.Perm
	sInv, tInv perm.Perm
	index      int

	gens []sl2.Matrix // as passed to NewFromGenerators, may be nil

	repsOnce sync.Once
	reps     []sl2.Matrix
	repsErr  error

	levelOnce sync.Once
	level     *big.Int
	levelErr  error
}

// Option tweaks NewFromGenerators.
type Option func(*options)

type options struct {
	maxCosets int
}

// WithMaxCosets overrides the coset budget of the enumeration run by
// NewFromGenerators. The default is coset.DefaultMaxCosets.
func WithMaxCosets(n int) Option {
	return func(o *options) { o.maxCosets = n }
}

// DefinesCosetAction reports whether s and t describe the coset action
// of a finite-index subgroup: both must be permutations of the same
// point set satisfying s⁴ = (s³t)³ = id and s²t = ts², acting
// transitively. A nil error means they do.
func DefinesCosetAction(s, t perm.Perm) error {
	if !s.Valid() {
		return fmt.Errorf("%w: s", perm.ErrNotPermutation)
	}
	if !t.Valid() {
		return fmt.Errorf("%w: t", perm.ErrNotPermutation)
	}
	if !perm.Compose(s, s, s, s).IsIdentity() {
		return fmt.Errorf("%w: s⁴ ≠ id", ErrRelationViolated)
	}
	u := perm.Compose(s, s, s, t)
	if !perm.Compose(u, u, u).IsIdentity() {
		return fmt.Errorf("%w: (s³t)³ ≠ id", ErrRelationViolated)
	}
	if !perm.Compose(s, s, t).Equal(perm.Compose(t, s, s)) {
		return fmt.Errorf("%w: s² does not commute with t", ErrRelationViolated)
	}
	if !perm.IsTransitive(actionDegree(s, t), s, t) {
		return ErrNotTransitive
	}
	return nil
}

// actionDegree is the number of cosets the pair acts on: one past the
// largest point moved by either permutation. Trailing fixed points do
// not count, and an identity pair is read as the one-coset action of
// the full group.
func actionDegree(s, t perm.Perm) int {
	n := s.LargestMoved()
	if m := t.LargestMoved(); m > n {
		n = m
	}
	if n < 0 {
		return 1
	}
	return n + 1
}

// New builds a Subgroup from the action of S and T on its cosets.
// The permutations are validated with DefinesCosetAction, copied, and
// trimmed to the action degree, so padded inputs and exact ones yield
// the same subgroup.
func New(s, t perm.Perm) (*Subgroup, error) {
	if err := DefinesCosetAction(s, t); err != nil {
		return nil, err
	}
	n := actionDegree(s, t)
	g := &Subgroup{
		s:     s.Extend(n).Truncate(n),
		t:     t.Extend(n).Truncate(n),
		index: n,
	}
	g.sInv = g.s.Inverse()
	g.tInv = g.t.Inverse()
	return g, nil
}

// NewFromGenerators builds the subgroup generated by the given
// matrices, running a coset enumeration to recover the action. The
// subgroup must have finite index within the coset budget; otherwise
// coset.ErrCosetLimit is returned.
func NewFromGenerators(gens []sl2.Matrix, opts ...Option) (*Subgroup, error) {
	o := options{maxCosets: coset.DefaultMaxCosets}
	for _, opt := range opts {
		opt(&o)
	}

	words := make([]word.Word, len(gens))
	for i, m := range gens {
		w, err := word.STDecomposition(m)
		if err != nil {
			return nil, err
		}
		words[i] = w
	}
	s, t, err := coset.Enumerate(words, coset.Options{MaxCosets: o.maxCosets})
	if err != nil {
		return nil, err
	}
	g, err := New(s, t)
	if err != nil {
		return nil, err
	}
	g.gens = append([]sl2.Matrix(nil), gens...)
	return g, nil
}

// Index is the index of the subgroup in SL(2,ℤ).
func (g *Subgroup) Index() int { return g.index }

// S returns the action of S on the cosets.
func (g *Subgroup) S() perm.Perm { return g.s.Clone() }

// T returns the action of T on the cosets.
func (g *Subgroup) T() perm.Perm { return g.t.Clone() }

// IsEven reports whether -I lies in the subgroup. -I acts as s², so
// it is a member exactly when s² fixes coset 0.
func (g *Subgroup) IsEven() bool {
	return g.s.Image(g.s.Image(0)) == 0
}

// IsElementOf reports whether m lies in the subgroup: m is decomposed
// into a word in S and T, and membership holds exactly when the word
// fixes coset 0.
func (g *Subgroup) IsElementOf(m sl2.Matrix) (bool, error) {
	w, err := word.STDecomposition(m)
	if err != nil {
		return false, err
	}
	return g.wordFixesBase(w), nil
}

// wordFixesBase pushes coset 0 through w. An empty word is accepted
// only for the trivial action, where every word fixes the base.
func (g *Subgroup) wordFixesBase(w word.Word) bool {
	if len(w) == 0 {
		return g.s.IsIdentity() && g.t.IsIdentity()
	}
	c := 0
	for _, s := range w {
		if s.Gen == word.GenS {
			c = g.s.ImagePow(c, s.Exp)
		} else {
			c = g.t.ImagePow(c, s.Exp)
		}
	}
	return c == 0
}

// isElementUpToSign tests membership of ±m. When -I is a member the
// two signs coincide and only one decomposition is run.
func (g *Subgroup) isElementUpToSign(m sl2.Matrix) (bool, error) {
	ok, err := g.IsElementOf(m)
	if err != nil || ok || g.IsEven() {
		return ok, err
	}
	return g.IsElementOf(m.Neg())
}

// CosetRepresentatives returns one matrix per coset, with the
// identity for coset 0, following the breadth-first Schreier tree of
// the action. The result is cached; callers must not mutate it.
func (g *Subgroup) CosetRepresentatives() ([]sl2.Matrix, error) {
	g.repsOnce.Do(func() {
		words, err := coset.Representatives(g.s, g.t)
		if err != nil {
			g.repsErr = err
			return
		}
		g.reps = make([]sl2.Matrix, len(words))
		for i, w := range words {
			if g.reps[i], err = w.Matrix(); err != nil {
				g.repsErr = err
				return
			}
		}
	})
	return g.reps, g.repsErr
}

// Generators returns matrices generating the subgroup: the ones the
// subgroup was built from, or else the Schreier generators of its
// action.
func (g *Subgroup) Generators() ([]sl2.Matrix, error) {
	if g.gens != nil {
		return append([]sl2.Matrix(nil), g.gens...), nil
	}
	words, err := coset.SchreierGenerators(g.s, g.t)
	if err != nil {
		return nil, err
	}
	out := make([]sl2.Matrix, len(words))
	for i, w := range words {
		if out[i], err = w.Matrix(); err != nil {
			return nil, err
		}
	}
	return out, nil
}
