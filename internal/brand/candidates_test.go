package brand

import (
	"testing"

	"github.com/stretchr/testify/require"

	"shelfscan/internal/ocr"
)

func TestExtractCandidatesFiltersNoise(t *testing.T) {
	vocab := DefaultVocabulary()
	samples := []ocr.Sample{
		{Text: "Agua Mineral Levite 500ml", Confidence: 0.9},
	}

	candidates := ExtractCandidates(samples, vocab)

	require.Len(t, candidates, 1)
	require.Equal(t, "LEVITE", candidates[0].Token)
	require.Equal(t, 6, candidates[0].Length)
	// 0.9 confidence plus the capitalization bonus
	require.InDelta(t, 1.1, candidates[0].Score, 1e-9)
}

func TestExtractCandidatesConfidenceFloor(t *testing.T) {
	vocab := DefaultVocabulary()
	samples := []ocr.Sample{
		{Text: "Levite", Confidence: 0.29},
		{Text: "Susante", Confidence: 0.3},
	}

	candidates := ExtractCandidates(samples, vocab)

	require.Len(t, candidates, 1)
	require.Equal(t, "SUSANTE", candidates[0].Token)
}

func TestExtractCandidatesShortTokens(t *testing.T) {
	vocab := DefaultVocabulary()

	// Token length 2 never tokenizes; length 3 tokenizes but is below the
	// candidate floor of 4.
	samples := []ocr.Sample{{Text: "xy abz", Confidence: 0.9}}
	require.Empty(t, ExtractCandidates(samples, vocab))
}

func TestExtractCandidatesDescriptors(t *testing.T) {
	vocab := DefaultVocabulary()

	// Packaging words survive the length floor but are known non-brands
	samples := []ocr.Sample{{Text: "Retornable Botella Envasada", Confidence: 0.95}}
	require.Empty(t, ExtractCandidates(samples, vocab))
}

func TestExtractCandidatesCapitalBonus(t *testing.T) {
	vocab := DefaultVocabulary()
	samples := []ocr.Sample{
		{Text: "susante", Confidence: 0.5},
		{Text: "Levite", Confidence: 0.5},
	}

	candidates := ExtractCandidates(samples, vocab)
	require.Len(t, candidates, 2)

	byToken := map[string]Candidate{}
	for _, c := range candidates {
		byToken[c.Token] = c
	}
	require.InDelta(t, 0.5, byToken["SUSANTE"].Score, 1e-9)
	require.InDelta(t, 0.7, byToken["LEVITE"].Score, 1e-9)
}

func TestExtractCandidatesAccentedLetters(t *testing.T) {
	vocab := DefaultVocabulary()
	samples := []ocr.Sample{{Text: "Peñaflor premium", Confidence: 0.8}}

	candidates := ExtractCandidates(samples, vocab)
	require.Len(t, candidates, 2)
	require.Equal(t, "PEÑAFLOR", candidates[0].Token)
}

func TestExtractCandidatesKeepsDuplicates(t *testing.T) {
	vocab := DefaultVocabulary()
	samples := []ocr.Sample{
		{Text: "Levite", Confidence: 0.8},
		{Text: "Levite", Confidence: 0.6},
	}

	// Both survive here; deduplication is the matcher's job
	require.Len(t, ExtractCandidates(samples, vocab), 2)
}

func TestLooksLikeCode(t *testing.T) {
	require.True(t, looksLikeCode("12345"))
	require.True(t, looksLikeCode("500ML"))
	require.True(t, looksLikeCode("SKU123"))
	require.False(t, looksLikeCode("LEVITE"))
}
