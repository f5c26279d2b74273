package coset

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/sl2z/perm"
	"github.com/katalvlaran/sl2z/word"
)

// Table letters. Inverse letters pair up by flipping the low bit.
const (
	letS    = 0 // S
	letSInv = 1 // S⁻¹
	letT    = 2 // T
	letTInv = 3 // T⁻¹

	nLetters = 4
)

func invLetter(x int) int { return x ^ 1 }

// relators is the defining presentation of SL(2,ℤ):
// S⁴, (S³T)³ and the commutation relation S²TS⁻²T⁻¹.
var relators = [][]int{
	{letS, letS, letS, letS},
	{letS, letS, letS, letT, letS, letS, letS, letT, letS, letS, letS, letT},
	{letS, letS, letT, letSInv, letSInv, letTInv},
}

// DefaultMaxCosets is the coset budget used by DefaultOptions.
const DefaultMaxCosets = 1 << 14

// Options configure Enumerate.
type Options struct {
	// MaxCosets caps the total number of cosets the enumerator may
	// define, counting cosets later merged away. Must be positive.
	MaxCosets int
}

// DefaultOptions returns Options with MaxCosets set to DefaultMaxCosets.
func DefaultOptions() Options {
	return Options{MaxCosets: DefaultMaxCosets}
}

// enumerator holds the coset table, a union-find over coset indices,
// and the queue of cosets awaiting coincidence processing. Undefined
// table entries are -1.
type enumerator struct {
	limit int
	next  [][nLetters]int
	par   []int
	queue []int
}

// define appends a fresh coset and returns its index.
func (e *enumerator) define() (int, error) {
	if len(e.next) >= e.limit {
		return 0, fmt.Errorf("%w: more than %d cosets", ErrCosetLimit, e.limit)
	}
	n := len(e.next)
	e.next = append(e.next, [nLetters]int{-1, -1, -1, -1})
	e.par = append(e.par, n)
	return n, nil
}

func (e *enumerator) find(a int) int {
	for e.par[a] != a {
		e.par[a] = e.par[e.par[a]]
		a = e.par[a]
	}
	return a
}

func (e *enumerator) isAlive(a int) bool { return e.par[a] == a }

// set records a·x = b together with the mirror entry b·x⁻¹ = a.
func (e *enumerator) set(a, x, b int) {
	e.next[a][x] = b
	e.next[b][invLetter(x)] = a
}

// merge unites the classes of a and b, keeping the smaller index as
// representative so coset 0 is never replaced.
func (e *enumerator) merge(a, b int) {
	a, b = e.find(a), e.find(b)
	if a == b {
		return
	}
	if a > b {
		a, b = b, a
	}
	e.par[b] = a
	e.queue = append(e.queue, b)
}

// coincide identifies cosets a and b and transfers every table entry
// of a dying coset onto its representative, merging further whenever
// two entries collide.
func (e *enumerator) coincide(a, b int) {
	e.merge(a, b)
	for len(e.queue) > 0 {
		dead := e.queue[0]
		e.queue = e.queue[1:]
		for x := 0; x < nLetters; x++ {
			d := e.next[dead][x]
			if d < 0 {
				continue
			}
			e.next[dead][x] = -1
			e.next[d][invLetter(x)] = -1
			mu, nu := e.find(dead), e.find(d)
			switch {
			case e.next[mu][x] >= 0:
				e.merge(nu, e.next[mu][x])
			case e.next[nu][invLetter(x)] >= 0:
				e.merge(mu, e.next[nu][invLetter(x)])
			default:
				e.set(mu, x, nu)
			}
		}
	}
}

// scanAndFill traces the letter word w starting and ending at alpha,
// defining new cosets wherever the trace runs into undefined entries.
func (e *enumerator) scanAndFill(alpha int, w []int) error {
	f, b := alpha, alpha
	i, j := 0, len(w)-1
	for {
		for i <= j && e.next[f][w[i]] >= 0 {
			f = e.next[f][w[i]]
			i++
		}
		if i > j {
			if f != b {
				e.coincide(f, b)
			}
			return nil
		}
		for j >= i && e.next[b][invLetter(w[j])] >= 0 {
			b = e.next[b][invLetter(w[j])]
			j--
		}
		switch {
		case j < i:
			e.coincide(f, b)
			return nil
		case j == i:
			e.set(f, w[i], b)
			return nil
		default:
			n, err := e.define()
			if err != nil {
				return err
			}
			e.set(f, w[i], n)
		}
	}
}

// lettersOf flattens a syllable word into table letters. Exponents
// beyond the coset budget are rejected: tracing T^e defines about e
// cosets, so such a word cannot close within the limit anyway.
func (e *enumerator) lettersOf(w word.Word) ([]int, error) {
	var out []int
	for _, s := range w {
		if s.Exp == nil {
			return nil, word.ErrNilExponent
		}
		abs := new(big.Int).Abs(s.Exp)
		if !abs.IsInt64() || abs.Int64() > int64(e.limit) {
			return nil, fmt.Errorf("%w: generator exponent %s", ErrCosetLimit, s.Exp)
		}
		x := letS
		if s.Gen == word.GenT {
			x = letT
		}
		if s.Exp.Sign() < 0 {
			x = invLetter(x)
		}
		for k := int64(0); k < abs.Int64(); k++ {
			out = append(out, x)
		}
	}
	return out, nil
}

// permutations compresses the live cosets into 0..n-1 and reads the
// S and T columns off the completed table.
func (e *enumerator) permutations() (perm.Perm, perm.Perm, error) {
	idx := make([]int, len(e.next))
	n := 0
	for a := range e.next {
		if e.isAlive(a) {
			idx[a] = n
			n++
		}
	}
	s := make(perm.Perm, n)
	t := make(perm.Perm, n)
	for a := range e.next {
		if !e.isAlive(a) {
			continue
		}
		is, it := e.next[a][letS], e.next[a][letT]
		if is < 0 || it < 0 {
			return nil, nil, fmt.Errorf("coset: internal: incomplete table at coset %d", a)
		}
		s[idx[a]] = idx[e.find(is)]
		t[idx[a]] = idx[e.find(it)]
	}
	return s, t, nil
}

// Enumerate runs the Todd–Coxeter enumeration for the subgroup of
// SL(2,ℤ) generated by gens and returns the permutations induced by
// S and T on its cosets. Coset 0 is the subgroup itself. An empty
// gens slice describes the trivial subgroup, which has infinite
// index, so enumeration exhausts the budget and fails.
func Enumerate(gens []word.Word, opts Options) (s, t perm.Perm, err error) {
	if opts.MaxCosets <= 0 {
		return nil, nil, fmt.Errorf("%w: MaxCosets %d", ErrOptionViolation, opts.MaxCosets)
	}
	e := &enumerator{limit: opts.MaxCosets}
	if _, err = e.define(); err != nil {
		return nil, nil, err
	}

	// Every subgroup generator stabilizes coset 0.
	for _, g := range gens {
		w, lerr := e.lettersOf(g)
		if lerr != nil {
			return nil, nil, lerr
		}
		if serr := e.scanAndFill(0, w); serr != nil {
			return nil, nil, serr
		}
	}

	// HLT main loop: trace every relator at every live coset. New
	// cosets get larger indices, so the loop visits them too.
	for a := 0; a < len(e.next); a++ {
		if !e.isAlive(a) {
			continue
		}
		for _, r := range relators {
			if serr := e.scanAndFill(a, r); serr != nil {
				return nil, nil, serr
			}
			if !e.isAlive(a) {
				break
			}
		}
	}
	return e.permutations()
}
