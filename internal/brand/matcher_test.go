package brand

import (
	"testing"

	"github.com/stretchr/testify/require"

	"shelfscan/internal/ocr"
)

func TestMatchKnownBrandExact(t *testing.T) {
	m := NewMatcher(nil)
	samples := []ocr.Sample{{Text: "agua SUSANTE sin gas", Confidence: 0.9}}

	got := m.Match(samples, []string{"Susante", "Levite"})
	require.Equal(t, "Susante", got, "exact substring must return the brand as listed")
}

func TestMatchKnownBrandPriority(t *testing.T) {
	m := NewMatcher(nil)

	// "Coramina" is a longer, capitalized token the generic path would
	// prefer, but the known brand is authoritative.
	samples := []ocr.Sample{{Text: "Coramina Susante", Confidence: 0.95}}

	require.Equal(t, "Susante", m.Match(samples, []string{"Susante"}))
	require.Equal(t, "Coramina", m.Match(samples, nil))
}

func TestMatchKnownBrandListOrder(t *testing.T) {
	m := NewMatcher(nil)
	samples := []ocr.Sample{{Text: "SUSANTE LEVITE", Confidence: 0.9}}

	// Both appear; caller-supplied list order is the tie-break
	require.Equal(t, "Levite", m.Match(samples, []string{"Levite", "Susante"}))
	require.Equal(t, "Susante", m.Match(samples, []string{"Susante", "Levite"}))
}

func TestMatchKnownBrandFuzzy(t *testing.T) {
	m := NewMatcher(nil)

	// OCR misread S as Z; similarity 6/7 exceeds the 0.65 threshold
	samples := []ocr.Sample{{Text: "SUZANTE", Confidence: 0.9}}
	require.Equal(t, "Susante", m.Match(samples, []string{"Susante"}))
}

func TestMatchKnownBrandFuzzyLengthBounds(t *testing.T) {
	m := NewMatcher(nil)

	// Token and brand differ by more than two characters; the fuzzy pass
	// skips the pair and the generic path takes over.
	samples := []ocr.Sample{{Text: "Susantisima", Confidence: 0.9}}
	require.Equal(t, "Susantisima", m.Match(samples, []string{"Susante"}))
}

func TestMatchFallsThroughToGeneric(t *testing.T) {
	m := NewMatcher(nil)

	// A known-brand list that matches nothing must not suppress the
	// generic fallback.
	samples := []ocr.Sample{{Text: "Villavicencio", Confidence: 0.9}}
	require.Equal(t, "Villavicencio", m.Match(samples, []string{"Susante"}))
}

func TestMatchGenericExtraction(t *testing.T) {
	m := NewMatcher(nil)
	samples := []ocr.Sample{{Text: "Agua Mineral Levite 500ml", Confidence: 0.9}}

	require.Equal(t, "Levite", m.Match(samples, nil))
}

func TestMatchGenericCapitalization(t *testing.T) {
	m := NewMatcher(nil)
	samples := []ocr.Sample{{Text: "LEVITE", Confidence: 0.9}}

	// Result is rendered with only the first character upper-cased
	require.Equal(t, "Levite", m.Match(samples, nil))
}

func TestMatchNoCandidates(t *testing.T) {
	m := NewMatcher(nil)

	require.Equal(t, "", m.Match(nil, nil))
	require.Equal(t, "", m.Match([]ocr.Sample{}, nil))
	require.Equal(t, "", m.Match([]ocr.Sample{{Text: "xy", Confidence: 0.9}}, nil))
	require.Equal(t, "", m.Match([]ocr.Sample{{Text: "Levite", Confidence: 0.1}}, nil))
}

func TestMatchGenericDeduplication(t *testing.T) {
	m := NewMatcher(nil)

	// Two near-identical re-reads of the same word plus one distinct token.
	// The re-reads collapse; the best surviving candidate wins.
	samples := []ocr.Sample{
		{Text: "Levite", Confidence: 0.9},
		{Text: "Levita", Confidence: 0.5},
		{Text: "susante", Confidence: 0.6},
	}

	require.Equal(t, "Levite", m.Match(samples, nil))
}

// The known-brand fuzzy pass accepts tokens of length 3 while the generic
// extractor floors candidates at length 4. The asymmetry is inherited
// behavior; this test pins it down so a change is deliberate.
func TestMatchLengthThresholdAsymmetry(t *testing.T) {
	m := NewMatcher(nil)
	samples := []ocr.Sample{{Text: "abz", Confidence: 0.9}}

	// Length-3 token fuzzy-matches a length-3 known brand
	require.Equal(t, "abc", m.Match(samples, []string{"abc"}))

	// The same token is too short to be a generic candidate
	require.Equal(t, "", m.Match(samples, nil))
}
