package brand

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimilarityIdentity(t *testing.T) {
	for _, s := range []string{"SUSANTE", "Levite", "ab", "bidón"} {
		require.Equal(t, 1.0, Similarity(s, s), "identical strings must score 1.0: %q", s)
	}
}

func TestSimilaritySymmetry(t *testing.T) {
	pairs := [][2]string{
		{"SUSANTE", "SUZANTE"},
		{"Levite", "LEVITA"},
		{"abc", "abcdef"},
		{"agua", "aguila"},
		{"x", "xyzzy"},
	}
	for _, p := range pairs {
		require.Equal(t, Similarity(p[0], p[1]), Similarity(p[1], p[0]),
			"similarity must be symmetric for %q / %q", p[0], p[1])
	}
}

func TestSimilarityCaseInsensitive(t *testing.T) {
	require.Equal(t, 1.0, Similarity("susante", "SUSANTE"))
	require.Equal(t, Similarity("Levite", "levita"), Similarity("LEVITE", "LEVITA"))
}

func TestSimilaritySubstringBonus(t *testing.T) {
	// Both length >= 4 and one contained in the other
	require.Equal(t, 0.85, Similarity("SUSAN", "SUSANTE"))
	require.Equal(t, 0.85, Similarity("SUSANTE", "SUSAN"))

	// Short substrings do not get the bonus
	require.NotEqual(t, 0.85, Similarity("SUS", "SUSANTE"))
}

func TestSimilarityOCRMisread(t *testing.T) {
	// One substituted character out of seven: positional 6/7, shared set 6/7
	got := Similarity("SUZANTE", "SUSANTE")
	require.InDelta(t, 6.0/7.0, got, 1e-9)
	require.Greater(t, got, 0.65, "a single misread character must stay above the fuzzy threshold")
}

func TestSimilarityLengthPenalty(t *testing.T) {
	// Same positional prefix, but the longer token is penalized
	require.Greater(t, Similarity("LEVITA", "LEVITE"), Similarity("LEV", "LEVITE"))
}

func TestSimilarityEmptyInput(t *testing.T) {
	require.Equal(t, 0.0, Similarity("", ""))
	require.Equal(t, 0.0, Similarity("", "SUSANTE"))
	require.Equal(t, 0.0, Similarity("SUSANTE", ""))
}

func TestSimilarityDisjoint(t *testing.T) {
	require.Equal(t, 0.0, Similarity("ABC", "XYZ"))
}
