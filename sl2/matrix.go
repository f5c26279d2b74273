package sl2

import (
	"fmt"
	"math/big"
)

// Matrix is an element of SL(2,Z):
//
//	| a b |
//	| c d |
//
// with a·d − b·c = 1. Entries are unexported and never mutated; use
// Entries for copies. The zero value is invalid (see Valid).
type Matrix struct {
	a, b, c, d *big.Int
}

// mat wraps entries without copying or checking. Internal use only:
// callers guarantee determinant one.
func mat(a, b, c, d *big.Int) Matrix {
	return Matrix{a: a, b: b, c: c, d: d}
}

// New builds a matrix from int64 entries, rejecting determinants ≠ 1.
func New(a, b, c, d int64) (Matrix, error) {
	return NewBig(big.NewInt(a), big.NewInt(b), big.NewInt(c), big.NewInt(d))
}

// NewBig builds a matrix from big.Int entries (copied), rejecting
// determinants ≠ 1.
func NewBig(a, b, c, d *big.Int) (Matrix, error) {
	if a == nil || b == nil || c == nil || d == nil {
		return Matrix{}, ErrInvalidMatrix
	}
	m := mat(new(big.Int).Set(a), new(big.Int).Set(b), new(big.Int).Set(c), new(big.Int).Set(d))
	if m.det().Cmp(one) != 0 {
		return Matrix{}, fmt.Errorf("det(%s) = %s: %w", m, m.det(), ErrNotUnimodular)
	}
	return m, nil
}

var one = big.NewInt(1)

// Identity returns the identity matrix.
func Identity() Matrix {
	return mat(big.NewInt(1), big.NewInt(0), big.NewInt(0), big.NewInt(1))
}

// S returns the order-4 rotation generator [[0,−1],[1,0]].
func S() Matrix {
	return mat(big.NewInt(0), big.NewInt(-1), big.NewInt(1), big.NewInt(0))
}

// T returns the unipotent shift generator [[1,1],[0,1]].
func T() Matrix {
	return mat(big.NewInt(1), big.NewInt(1), big.NewInt(0), big.NewInt(1))
}

// TPow returns T^k = [[1,k],[0,1]] for an arbitrary-precision k.
func TPow(k *big.Int) Matrix {
	return mat(big.NewInt(1), new(big.Int).Set(k), big.NewInt(0), big.NewInt(1))
}

// Valid reports whether m was properly constructed and has determinant
// one. It is the boundary check for values of unknown provenance.
func (m Matrix) Valid() error {
	if m.a == nil || m.b == nil || m.c == nil || m.d == nil {
		return ErrInvalidMatrix
	}
	if m.det().Cmp(one) != 0 {
		return fmt.Errorf("det(%s) = %s: %w", m, m.det(), ErrNotUnimodular)
	}
	return nil
}

func (m Matrix) det() *big.Int {
	ad := new(big.Int).Mul(m.a, m.d)
	bc := new(big.Int).Mul(m.b, m.c)
	return ad.Sub(ad, bc)
}

// Entries returns copies of the four entries in row-major order.
func (m Matrix) Entries() (a, b, c, d *big.Int) {
	return new(big.Int).Set(m.a), new(big.Int).Set(m.b),
		new(big.Int).Set(m.c), new(big.Int).Set(m.d)
}

// Mul returns the matrix product m·n.
func (m Matrix) Mul(n Matrix) Matrix {
	a := new(big.Int).Mul(m.a, n.a)
	a.Add(a, new(big.Int).Mul(m.b, n.c))
	b := new(big.Int).Mul(m.a, n.b)
	b.Add(b, new(big.Int).Mul(m.b, n.d))
	c := new(big.Int).Mul(m.c, n.a)
	c.Add(c, new(big.Int).Mul(m.d, n.c))
	d := new(big.Int).Mul(m.c, n.b)
	d.Add(d, new(big.Int).Mul(m.d, n.d))
	return mat(a, b, c, d)
}

// Inverse returns m⁻¹ = [[d,−b],[−c,a]], exact because det m = 1.
func (m Matrix) Inverse() Matrix {
	return mat(new(big.Int).Set(m.d), new(big.Int).Neg(m.b),
		new(big.Int).Neg(m.c), new(big.Int).Set(m.a))
}

// Neg returns −m, the product with the central element −I.
func (m Matrix) Neg() Matrix {
	return mat(new(big.Int).Neg(m.a), new(big.Int).Neg(m.b),
		new(big.Int).Neg(m.c), new(big.Int).Neg(m.d))
}

// IsIdentity reports whether m is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.a.Cmp(one) == 0 && m.b.Sign() == 0 && m.c.Sign() == 0 && m.d.Cmp(one) == 0
}

// Equal reports entry-wise equality.
func (m Matrix) Equal(n Matrix) bool {
	return m.a.Cmp(n.a) == 0 && m.b.Cmp(n.b) == 0 && m.c.Cmp(n.c) == 0 && m.d.Cmp(n.d) == 0
}

// String renders m as [[a,b],[c,d]].
func (m Matrix) String() string {
	if m.a == nil {
		return "[[?,?],[?,?]]"
	}
	return fmt.Sprintf("[[%s,%s],[%s,%s]]", m.a, m.b, m.c, m.d)
}
