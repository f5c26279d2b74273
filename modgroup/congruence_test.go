package modgroup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sl2z/modgroup"
	"github.com/katalvlaran/sl2z/perm"
	"github.com/katalvlaran/sl2z/sl2"
)

// TestIsCongruence_FullGroup: SL(2,ℤ) contains every Γ(N).
func TestIsCongruence_FullGroup(t *testing.T) {
	ok, err := fullGroup(t).IsCongruence()
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestIsCongruence_Theta exercises the 2-power branch: the theta
// group has level 2 and contains Γ(2).
func TestIsCongruence_Theta(t *testing.T) {
	ok, err := theta(t).IsCongruence()
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestIsCongruence_IndexTwo: the kernel of SL(2,ℤ) → ℤ/2 with
// S, T ↦ 1 also lands in the 2-power branch.
func TestIsCongruence_IndexTwo(t *testing.T) {
	flip := perm.Perm{1, 0}
	g, err := modgroup.New(flip, flip)
	require.NoError(t, err)
	require.Equal(t, 2, g.Index())

	ok, err := g.IsCongruence()
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestIsCongruence_Gamma03 exercises the odd branch: level 3.
func TestIsCongruence_Gamma03(t *testing.T) {
	ok, err := gamma03(t).IsCongruence()
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestIsCongruence_Commutator exercises the mixed branch: the
// commutator subgroup has level 6 and no -I, so N = 12; it contains
// Γ(12) because SL(2,ℤ/12) already realizes the full abelianization.
func TestIsCongruence_Commutator(t *testing.T) {
	g := commutator(t)
	require.False(t, g.IsEven())

	ok, err := g.IsCongruence()
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestIsCongruence_SevenPoint: an index-7 subgroup of level 6 cannot
// contain Γ(6), since 7 does not divide [SL(2,ℤ):Γ(6)] = 144; the
// mixed relations must reject it.
func TestIsCongruence_SevenPoint(t *testing.T) {
	g := sevenPoint(t)
	require.True(t, g.IsEven())

	ok, err := g.IsCongruence()
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestIsCongruence_PrincipalLevel2: Γ(2) built from its generators is
// trivially congruence.
func TestIsCongruence_PrincipalLevel2(t *testing.T) {
	mk := func(a, b, c, d int64) sl2.Matrix {
		m, err := sl2.New(a, b, c, d)
		require.NoError(t, err)
		return m
	}
	g, err := modgroup.NewFromGenerators([]sl2.Matrix{
		mk(-1, 0, 0, -1), mk(1, 2, 0, 1), mk(1, 0, 2, 1),
	})
	require.NoError(t, err)

	cusps, err := g.Cusps()
	require.NoError(t, err)
	assert.Len(t, cusps, 3, "Γ(2) has the cusps ∞, 0 and 1")

	ok, err := g.IsCongruence()
	require.NoError(t, err)
	assert.True(t, ok)
}
