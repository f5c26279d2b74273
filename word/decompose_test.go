package word_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sl2z/sl2"
	"github.com/katalvlaran/sl2z/word"
)

func mustMatrix(t *testing.T, a, b, c, d int64) sl2.Matrix {
	t.Helper()
	m, err := sl2.New(a, b, c, d)
	require.NoError(t, err)
	return m
}

// TestSTDecomposition_RoundTrip: evaluating the decomposition always
// reproduces the input matrix, sign included.
func TestSTDecomposition_RoundTrip(t *testing.T) {
	big1 := new(big.Int)
	big1.SetString("1000000000000000000000003", 10)
	tBig := sl2.TPow(big1)

	cases := []sl2.Matrix{
		sl2.Identity(),
		sl2.Identity().Neg(),
		sl2.S(),
		sl2.S().Inverse(),
		sl2.T(),
		sl2.T().Neg(),
		sl2.TPow(big.NewInt(-5)),
		tBig,
		mustMatrix(t, 1, 0, 1, 1),
		mustMatrix(t, 2, 1, 1, 1),
		mustMatrix(t, 5, 3, 3, 2),
		mustMatrix(t, 2, -1, 5, -2),
		mustMatrix(t, 17, -29, -7, 12),
	}
	for _, m := range cases {
		w, err := word.STDecomposition(m)
		require.NoError(t, err, "%s", m)
		require.NotEmpty(t, w, "decompositions are never the empty word")
		got, err := w.Matrix()
		require.NoError(t, err)
		assert.True(t, got.Equal(m), "%s decomposed to %s", m, w)
	}
}

// TestSTDecomposition_Identity: the identity reduces to T⁰, not ε.
func TestSTDecomposition_Identity(t *testing.T) {
	w, err := word.STDecomposition(sl2.Identity())
	require.NoError(t, err)
	require.Len(t, w, 1)
	assert.Equal(t, word.GenT, w[0].Gen)
	assert.Zero(t, w[0].Exp.Sign())
}

// TestSTDecomposition_Translations: T^k decomposes to the single
// syllable T^k.
func TestSTDecomposition_Translations(t *testing.T) {
	for _, k := range []int64{1, -1, 40, -40} {
		w, err := word.STDecomposition(sl2.TPow(big.NewInt(k)))
		require.NoError(t, err)
		require.Len(t, w, 1)
		assert.Zero(t, w[0].Exp.Cmp(big.NewInt(k)))
	}
}

// TestSTDecomposition_Rejects invalid input before any arithmetic.
func TestSTDecomposition_Rejects(t *testing.T) {
	var zero sl2.Matrix
	_, err := word.STDecomposition(zero)
	require.ErrorIs(t, err, sl2.ErrInvalidMatrix)
}
