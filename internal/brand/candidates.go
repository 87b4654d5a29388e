package brand

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"shelfscan/internal/ocr"
)

// Candidate is a heuristically-extracted token considered as a possible
// brand name in the absence of ground truth.
type Candidate struct {
	Token  string  // upper-cased
	Score  float64 // sample confidence plus capitalization bonus
	Length int     // token length in runes
}

// ExtractCandidates turns raw OCR samples into plausible brand-name tokens.
// Output order follows sample/token order and may contain the same token
// more than once; deduplication happens during matching.
func ExtractCandidates(samples []ocr.Sample, vocab *Vocabulary) []Candidate {
	var candidates []Candidate

	for _, sample := range samples {
		if sample.Confidence < vocab.MinSampleConfidence {
			continue
		}

		for _, token := range tokenPattern.FindAllString(sample.Text, -1) {
			upper := strings.ToUpper(token)

			if vocab.StopWords[upper] {
				continue
			}
			if looksLikeCode(upper) {
				continue
			}
			if vocab.Descriptors[upper] {
				continue
			}

			length := utf8.RuneCountInString(upper)
			if length < vocab.MinCandidateLength {
				continue
			}

			score := sample.Confidence
			if first, _ := utf8.DecodeRuneInString(token); unicode.IsUpper(first) {
				score += vocab.CapitalBonus
			}

			candidates = append(candidates, Candidate{
				Token:  upper,
				Score:  score,
				Length: length,
			})
		}
	}

	return candidates
}
