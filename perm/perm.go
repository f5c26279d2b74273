package perm

import (
	"fmt"
	"math/big"
)

// Perm is a permutation of {0,…,n−1}: p[i] is the image of point i.
// Points at or beyond len(p) are fixed. The zero value (nil) is the
// identity permutation of degree 0.
type Perm []int

// Identity returns the identity permutation of degree n.
func Identity(n int) Perm {
	p := make(Perm, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// New validates images as a bijection of {0,…,len(images)−1} and
// returns a defensive copy.
func New(images []int) (Perm, error) {
	seen := make([]bool, len(images))
	for i, v := range images {
		if v < 0 || v >= len(images) {
			return nil, fmt.Errorf("image %d of point %d out of range: %w", v, i, ErrNotPermutation)
		}
		if seen[v] {
			return nil, fmt.Errorf("image %d repeated: %w", v, ErrNotPermutation)
		}
		seen[v] = true
	}
	p := make(Perm, len(images))
	copy(p, images)
	return p, nil
}

// FromCycles builds a permutation of the given degree from disjoint
// cycles written with 1-based point labels, e.g. {{1,2},{3,4}} for
// (1,2)(3,4). A degree of 0 means "use the largest mentioned point".
func FromCycles(degree int, cycles [][]int) (Perm, error) {
	max := degree
	for _, c := range cycles {
		for _, pt := range c {
			if pt < 1 {
				return nil, fmt.Errorf("point %d: %w", pt, ErrBadCycle)
			}
			if pt > max {
				if degree > 0 {
					return nil, fmt.Errorf("point %d exceeds degree %d: %w", pt, degree, ErrBadCycle)
				}
				max = pt
			}
		}
	}
	p := Identity(max)
	moved := make([]bool, max)
	for _, c := range cycles {
		if len(c) == 0 {
			continue
		}
		for i, pt := range c {
			if moved[pt-1] {
				return nil, fmt.Errorf("point %d in two cycles: %w", pt, ErrBadCycle)
			}
			moved[pt-1] = true
			p[pt-1] = c[(i+1)%len(c)] - 1
		}
	}
	return p, nil
}

// Valid reports whether p is a bijection of {0,…,len(p)−1}.
func (p Perm) Valid() bool {
	_, err := New(p)
	return err == nil
}

// Degree returns the length of the underlying image slice.
func (p Perm) Degree() int { return len(p) }

// Clone returns an independent copy of p.
func (p Perm) Clone() Perm {
	q := make(Perm, len(p))
	copy(q, p)
	return q
}

// Image returns the image of point i, treating points beyond the
// degree as fixed.
func (p Perm) Image(i int) int {
	if i < 0 || i >= len(p) {
		return i
	}
	return p[i]
}

// IsIdentity reports whether p fixes every point.
func (p Perm) IsIdentity() bool {
	for i, v := range p {
		if v != i {
			return false
		}
	}
	return true
}

// LargestMoved returns the largest point moved by p, or −1 if p is the
// identity.
func (p Perm) LargestMoved() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != i {
			return i
		}
	}
	return -1
}

// Extend returns p padded with fixed points up to degree n. If p is
// already at least that long, a plain copy is returned.
func (p Perm) Extend(n int) Perm {
	if n < len(p) {
		n = len(p)
	}
	q := Identity(n)
	copy(q, p)
	return q
}

// Truncate returns the restriction of p to {0,…,n−1}. Every point at
// or beyond n must be fixed by p; Truncate is used to drop fixed tails
// after the index of a coset action has been determined.
func (p Perm) Truncate(n int) Perm {
	if n >= len(p) {
		return p.Clone()
	}
	q := make(Perm, n)
	copy(q, p[:n])
	return q
}

// Inverse returns the permutation q with q[p[i]] = i.
func (p Perm) Inverse() Perm {
	q := make(Perm, len(p))
	for i, v := range p {
		q[v] = i
	}
	return q
}

// Compose applies its arguments left to right: the result maps i
// through ps[0], then ps[1], and so on. With no arguments it returns
// the identity of degree 0.
func Compose(ps ...Perm) Perm {
	n := 0
	for _, p := range ps {
		if len(p) > n {
			n = len(p)
		}
	}
	q := make(Perm, n)
	for i := range q {
		v := i
		for _, p := range ps {
			v = p.Image(v)
		}
		q[i] = v
	}
	return q
}

// Equal reports whether p and q agree on every point, ignoring trailing
// fixed points.
func (p Perm) Equal(q Perm) bool {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	for i := 0; i < n; i++ {
		if p.Image(i) != q.Image(i) {
			return false
		}
	}
	return true
}

// Pow returns p raised to the integer power k, with negative k meaning
// powers of the inverse.
func (p Perm) Pow(k int) Perm {
	return p.PowBig(big.NewInt(int64(k)))
}

// PowBig returns p^k for an arbitrary-precision exponent. Each cycle of
// length L is rotated by k mod L, so the cost is O(degree) regardless
// of the size of k.
func (p Perm) PowBig(k *big.Int) Perm {
	q := Identity(len(p))
	done := make([]bool, len(p))
	cycle := make([]int, 0, len(p))
	l := new(big.Int)
	for start := range p {
		if done[start] {
			continue
		}
		cycle = cycle[:0]
		for i := start; !done[i]; i = p[i] {
			done[i] = true
			cycle = append(cycle, i)
		}
		l.SetInt64(int64(len(cycle)))
		shift := int(new(big.Int).Mod(k, l).Int64()) // Mod is Euclidean: 0 ≤ shift < L
		for j, pt := range cycle {
			q[pt] = cycle[(j+shift)%len(cycle)]
		}
	}
	return q
}

// ImagePow returns the image of point i under p^k without building the
// power permutation.
func (p Perm) ImagePow(i int, k *big.Int) int {
	if i < 0 || i >= len(p) || p[i] == i {
		return i
	}
	cycle := []int{i}
	for j := p[i]; j != i; j = p[j] {
		cycle = append(cycle, j)
	}
	l := big.NewInt(int64(len(cycle)))
	shift := int(new(big.Int).Mod(k, l).Int64())
	return cycle[shift%len(cycle)]
}

// Cycles returns the nontrivial cycles of p with 1-based point labels,
// each cycle starting at its smallest point, cycles ordered by that
// point. The inverse of FromCycles up to that normalization.
func (p Perm) Cycles() [][]int {
	var out [][]int
	done := make([]bool, len(p))
	for start := range p {
		if done[start] || p[start] == start {
			done[start] = true
			continue
		}
		var cycle []int
		for i := start; !done[i]; i = p[i] {
			done[i] = true
			cycle = append(cycle, i+1)
		}
		out = append(out, cycle)
	}
	return out
}

// IsTransitive reports whether the group generated by gens acts
// transitively on {0,…,n−1}. Inverses need not be supplied: every
// permutation has finite order, so forward orbits already close under
// the generated group.
func IsTransitive(n int, gens ...Perm) bool {
	if n <= 0 {
		return true
	}
	seen := make([]bool, n)
	seen[0] = true
	stack := []int{0}
	count := 1
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, g := range gens {
			j := g.Image(i)
			if j < n && !seen[j] {
				seen[j] = true
				count++
				stack = append(stack, j)
			}
		}
	}
	return count == n
}

// String renders p in cycle notation, "()" for the identity.
func (p Perm) String() string {
	cycles := p.Cycles()
	if len(cycles) == 0 {
		return "()"
	}
	s := ""
	for _, c := range cycles {
		s += "("
		for i, pt := range c {
			if i > 0 {
				s += ","
			}
			s += fmt.Sprintf("%d", pt)
		}
		s += ")"
	}
	return s
}
