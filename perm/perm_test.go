package perm_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sl2z/perm"
)

func mustCycles(t *testing.T, degree int, cycles [][]int) perm.Perm {
	t.Helper()
	p, err := perm.FromCycles(degree, cycles)
	require.NoError(t, err)
	return p
}

// ------------------------------------------------------------------
// Construction
// ------------------------------------------------------------------

func TestNew_Validates(t *testing.T) {
	p, err := perm.New([]int{1, 2, 0})
	require.NoError(t, err)
	assert.Equal(t, 1, p.Image(0))

	_, err = perm.New([]int{0, 0})
	require.ErrorIs(t, err, perm.ErrNotPermutation)
	_, err = perm.New([]int{0, 3})
	require.ErrorIs(t, err, perm.ErrNotPermutation)
	_, err = perm.New([]int{-1})
	require.ErrorIs(t, err, perm.ErrNotPermutation)
}

func TestNew_CopiesInput(t *testing.T) {
	images := []int{1, 0}
	p, err := perm.New(images)
	require.NoError(t, err)
	images[0] = 0
	assert.Equal(t, 1, p.Image(0))
}

func TestFromCycles(t *testing.T) {
	p := mustCycles(t, 4, [][]int{{1, 2}, {3, 4}})
	assert.Equal(t, perm.Perm{1, 0, 3, 2}, p)

	// Degree 0 infers the largest point.
	p = mustCycles(t, 0, [][]int{{2, 5}})
	assert.Equal(t, 5, p.Degree())
	assert.Equal(t, 4, p.Image(1))

	_, err := perm.FromCycles(3, [][]int{{0, 1}})
	require.ErrorIs(t, err, perm.ErrBadCycle, "labels are 1-based")
	_, err = perm.FromCycles(2, [][]int{{1, 3}})
	require.ErrorIs(t, err, perm.ErrBadCycle)
	_, err = perm.FromCycles(3, [][]int{{1, 2}, {2, 3}})
	require.ErrorIs(t, err, perm.ErrBadCycle, "cycles must be disjoint")
}

func TestCycles_RoundTrip(t *testing.T) {
	want := [][]int{{1, 2}, {3, 4, 5}}
	p := mustCycles(t, 6, want)
	assert.Equal(t, want, p.Cycles(), "fixed points are omitted")
	assert.Empty(t, perm.Identity(4).Cycles())
}

// ------------------------------------------------------------------
// Algebra
// ------------------------------------------------------------------

func TestCompose_LeftToRight(t *testing.T) {
	p := mustCycles(t, 3, [][]int{{1, 2}})
	q := mustCycles(t, 3, [][]int{{2, 3}})
	// 1 →p 2 →q 3.
	assert.Equal(t, 2, perm.Compose(p, q).Image(0))
	assert.Equal(t, 1, perm.Compose(q, p).Image(0))
}

func TestCompose_MixedDegrees(t *testing.T) {
	p := mustCycles(t, 2, [][]int{{1, 2}})
	q := mustCycles(t, 4, [][]int{{2, 3, 4}})
	r := perm.Compose(p, q)
	assert.Equal(t, 4, r.Degree())
	assert.Equal(t, 2, r.Image(0), "short operands act as fixed beyond their degree")
}

func TestInverse(t *testing.T) {
	p := mustCycles(t, 4, [][]int{{1, 2, 3}})
	assert.True(t, perm.Compose(p, p.Inverse()).IsIdentity())
	assert.True(t, perm.Compose(p.Inverse(), p).IsIdentity())
}

func TestEqual_IgnoresPadding(t *testing.T) {
	p := mustCycles(t, 2, [][]int{{1, 2}})
	q := mustCycles(t, 5, [][]int{{1, 2}})
	assert.True(t, p.Equal(q))
	assert.False(t, p.Equal(perm.Identity(2)))
}

func TestExtendTruncate(t *testing.T) {
	p := mustCycles(t, 2, [][]int{{1, 2}})
	e := p.Extend(5)
	assert.Equal(t, 5, e.Degree())
	assert.True(t, e.Equal(p))
	assert.Equal(t, 2, e.Truncate(2).Degree())
	assert.Equal(t, 1, e.LargestMoved())
	assert.Equal(t, -1, perm.Identity(3).LargestMoved())
}

// ------------------------------------------------------------------
// Powers
// ------------------------------------------------------------------

func TestPow(t *testing.T) {
	p := mustCycles(t, 5, [][]int{{1, 2, 3, 4, 5}})
	assert.True(t, p.Pow(5).IsIdentity())
	assert.True(t, p.Pow(0).IsIdentity())
	assert.True(t, p.Pow(-1).Equal(p.Inverse()))
	assert.True(t, p.Pow(7).Equal(p.Pow(2)))
}

func TestPowBig_ReducesModCycleLength(t *testing.T) {
	p := mustCycles(t, 6, [][]int{{1, 2}, {3, 4, 5}})

	// k = 10^30: even, and ≡ 1 mod 3 (digit sum 1).
	k, ok := new(big.Int).SetString("1000000000000000000000000000000", 10)
	require.True(t, ok)
	q := p.PowBig(k)
	assert.Equal(t, 0, q.Image(0), "the 2-cycle is back at the start")
	assert.Equal(t, 3, q.Image(2), "the 3-cycle advanced once")

	neg := p.PowBig(big.NewInt(-1))
	assert.True(t, neg.Equal(p.Inverse()), "Euclidean reduction handles negatives")
}

func TestImagePow(t *testing.T) {
	p := mustCycles(t, 5, [][]int{{1, 2, 3, 4, 5}})
	assert.Equal(t, 2, p.ImagePow(0, big.NewInt(2)))
	assert.Equal(t, 4, p.ImagePow(0, big.NewInt(-1)))
	assert.Equal(t, 7, p.ImagePow(7, big.NewInt(3)), "points beyond the degree stay fixed")
	for k := int64(-6); k <= 6; k++ {
		kb := big.NewInt(k)
		assert.Equal(t, p.PowBig(kb).Image(1), p.ImagePow(1, kb), "k = %d", k)
	}
}

// ------------------------------------------------------------------
// Transitivity and rendering
// ------------------------------------------------------------------

func TestIsTransitive(t *testing.T) {
	s := mustCycles(t, 3, [][]int{{2, 3}})
	tt := mustCycles(t, 3, [][]int{{1, 2}})
	assert.True(t, perm.IsTransitive(3, s, tt))
	assert.False(t, perm.IsTransitive(3, s), "s alone fixes point 1")
	assert.True(t, perm.IsTransitive(1))
	assert.False(t, perm.IsTransitive(2, perm.Identity(2), perm.Identity(2)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "()", perm.Identity(3).String())
	assert.Equal(t, "(1,2)(3,4,5)", mustCycles(t, 5, [][]int{{1, 2}, {3, 4, 5}}).String())
}
