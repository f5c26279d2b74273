package coset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sl2z/coset"
	"github.com/katalvlaran/sl2z/perm"
	"github.com/katalvlaran/sl2z/word"
)

// wordsOf is a shorthand for building generator slices in tests.
func wordsOf(ws ...word.Word) []word.Word { return ws }

// TestEnumerate_FullGroup: ⟨S, T⟩ is the whole group, one coset.
func TestEnumerate_FullGroup(t *testing.T) {
	s, tt, err := coset.Enumerate(wordsOf(
		word.Word{word.Syl(word.GenS, 1)},
		word.Word{word.Syl(word.GenT, 1)},
	), coset.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, s.Degree(), "index of the full group")
	assert.True(t, s.IsIdentity())
	assert.True(t, tt.IsIdentity())
}

// TestEnumerate_ThetaGroup: ⟨S, T²⟩ has index 3; S fixes the base
// coset and swaps the other two, T² acts trivially.
func TestEnumerate_ThetaGroup(t *testing.T) {
	s, tt, err := coset.Enumerate(wordsOf(
		word.Word{word.Syl(word.GenS, 1)},
		word.Word{word.Syl(word.GenT, 2)},
	), coset.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 3, s.Degree(), "index of the theta group")

	assert.Equal(t, 0, s.Image(0), "S lies in the subgroup")
	assert.NotEqual(t, 0, tt.Image(0), "T does not lie in the subgroup")
	assert.True(t, perm.Compose(s, s).IsIdentity(), "S² = -I acts trivially")
	assert.True(t, perm.Compose(tt, tt).IsIdentity(), "T² lies in every coset stabilizer")

	// ST has order 3 in PSL(2,Z); here it must be a 3-cycle.
	u := perm.Compose(s, tt)
	assert.False(t, u.IsIdentity())
	assert.True(t, perm.Compose(u, u, u).IsIdentity())
}

// TestEnumerate_PrincipalLevel2: Γ(2) = ⟨-I, T², R²⟩ has index 6,
// with R² = S⁻¹T⁻²S.
func TestEnumerate_PrincipalLevel2(t *testing.T) {
	s, tt, err := coset.Enumerate(wordsOf(
		word.Word{word.Syl(word.GenS, 2)},
		word.Word{word.Syl(word.GenT, 2)},
		word.Word{word.Syl(word.GenS, -1), word.Syl(word.GenT, -2), word.Syl(word.GenS, 1)},
	), coset.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 6, s.Degree(), "index of Γ(2)")
	assert.True(t, perm.Compose(s, s).IsIdentity(), "-I lies in Γ(2)")
	assert.True(t, perm.Compose(tt, tt).IsIdentity(), "T² lies in Γ(2)")
	assert.True(t, perm.IsTransitive(s.Degree(), s, tt))
}

// TestEnumerate_Defining relations hold on every enumerated action.
func TestEnumerate_RelationsHold(t *testing.T) {
	s, tt, err := coset.Enumerate(wordsOf(
		word.Word{word.Syl(word.GenS, 1)},
		word.Word{word.Syl(word.GenT, 2)},
	), coset.DefaultOptions())
	require.NoError(t, err)

	s4 := perm.Compose(s, s, s, s)
	assert.True(t, s4.IsIdentity(), "s⁴ = id")

	s3t := perm.Compose(s, s, s, tt)
	assert.True(t, perm.Compose(s3t, s3t, s3t).IsIdentity(), "(s³t)³ = id")

	comm := perm.Compose(s, s, tt, s.Inverse(), s.Inverse(), tt.Inverse())
	assert.True(t, comm.IsIdentity(), "s² commutes with t")
}

// TestEnumerate_TrivialSubgroup: no generators means the trivial
// subgroup, whose index is infinite; the coset budget must trip.
func TestEnumerate_TrivialSubgroup(t *testing.T) {
	_, _, err := coset.Enumerate(nil, coset.Options{MaxCosets: 128})
	require.ErrorIs(t, err, coset.ErrCosetLimit)
}

// TestEnumerate_ThinSubgroup: ⟨S, T³⟩ has infinite index, so the
// enumeration can never close.
func TestEnumerate_ThinSubgroup(t *testing.T) {
	_, _, err := coset.Enumerate(wordsOf(
		word.Word{word.Syl(word.GenS, 1)},
		word.Word{word.Syl(word.GenT, 3)},
	), coset.Options{MaxCosets: 512})
	require.ErrorIs(t, err, coset.ErrCosetLimit)
}

// TestEnumerate_HugeExponent: an exponent beyond the coset budget is
// rejected before any tracing starts.
func TestEnumerate_HugeExponent(t *testing.T) {
	_, _, err := coset.Enumerate(wordsOf(
		word.Word{word.Syl(word.GenT, 1 << 40)},
	), coset.Options{MaxCosets: 1024})
	require.ErrorIs(t, err, coset.ErrCosetLimit)
}

// TestEnumerate_OptionViolation rejects a non-positive budget.
func TestEnumerate_OptionViolation(t *testing.T) {
	_, _, err := coset.Enumerate(nil, coset.Options{MaxCosets: 0})
	require.ErrorIs(t, err, coset.ErrOptionViolation)
}

// TestEnumerate_NilExponent propagates the word-level sentinel.
func TestEnumerate_NilExponent(t *testing.T) {
	_, _, err := coset.Enumerate(wordsOf(
		word.Word{{Gen: word.GenT}},
	), coset.DefaultOptions())
	require.ErrorIs(t, err, word.ErrNilExponent)
}
