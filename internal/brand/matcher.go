package brand

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"shelfscan/internal/ocr"
)

// Matcher resolves a brand name for one detection's OCR samples. Known
// brands are authoritative ground truth and always take priority over the
// generic heuristic; the generic path only exists to surface a plausible
// label when no ground truth is supplied.
type Matcher struct {
	vocab *Vocabulary
}

// NewMatcher creates a Matcher using the given vocabulary.
func NewMatcher(vocab *Vocabulary) *Matcher {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Matcher{vocab: vocab}
}

// Match returns the resolved brand for the samples, or "" when none is
// identified. With a non-empty knownBrands list it first tries exact and
// fuzzy matches against the list (in list order); otherwise, or when that
// finds nothing, it falls back to generic candidate extraction.
func (m *Matcher) Match(samples []ocr.Sample, knownBrands []string) string {
	if len(samples) == 0 {
		return ""
	}

	if len(knownBrands) > 0 {
		if brand := m.matchKnown(samples, knownBrands); brand != "" {
			return brand
		}
	}

	return m.matchGeneric(samples)
}

// matchKnown searches the concatenated sample text for a known brand.
// Exact substring matches win in list order; failing that, the single
// best-scoring fuzzy (token, brand) pair above the threshold wins, ties
// resolving to the first pair evaluated.
func (m *Matcher) matchKnown(samples []ocr.Sample, knownBrands []string) string {
	fullText := ocr.JoinTexts(samples)
	upperText := strings.ToUpper(fullText)

	for _, known := range knownBrands {
		if strings.Contains(upperText, strings.ToUpper(known)) {
			return known
		}
	}

	tokens := tokenPattern.FindAllString(fullText, -1)

	bestScore := 0.0
	bestBrand := ""
	for _, known := range knownBrands {
		knownLen := utf8.RuneCountInString(known)
		if knownLen < 3 {
			continue
		}
		for _, token := range tokens {
			tokenLen := utf8.RuneCountInString(token)
			diff := tokenLen - knownLen
			if diff < 0 {
				diff = -diff
			}
			if tokenLen < 3 || diff > 2 {
				continue
			}
			score := Similarity(token, known)
			if score > m.vocab.FuzzyMatchThreshold && score > bestScore {
				bestScore = score
				bestBrand = known
			}
		}
	}

	return bestBrand
}

// matchGeneric picks the most plausible brand candidate from the samples.
func (m *Matcher) matchGeneric(samples []ocr.Sample) string {
	candidates := ExtractCandidates(samples, m.vocab)
	if len(candidates) == 0 {
		return ""
	}

	// Higher score wins, longer token breaks ties. Stable so that equal
	// candidates keep extraction order.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Length > candidates[j].Length
	})

	// Collapse near-duplicate OCR re-reads of the same physical word
	var kept []Candidate
	for _, cand := range candidates {
		duplicate := false
		for _, existing := range kept {
			if Similarity(cand.Token, existing.Token) > m.vocab.DedupeThreshold {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, cand)
		}
	}

	if len(kept) == 0 {
		return ""
	}
	return capitalize(kept[0].Token)
}

// capitalize renders a token with only its first character upper-cased.
func capitalize(token string) string {
	runes := []rune(strings.ToLower(token))
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
