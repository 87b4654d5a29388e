// Package brand identifies product brands from OCR text extracted out of
// detection regions. It operates on already-recognized text tokens; it does
// not perform OCR itself.
package brand

import (
	"regexp"
	"strings"
)

// Token filtering patterns. Labels mix Spanish and English, so the token
// class includes the Spanish accented letters.
var (
	tokenPattern    = regexp.MustCompile(`[A-Za-zÁÉÍÓÚáéíóúÑñ]{3,}`)
	numberPattern   = regexp.MustCompile(`^\d+$`)
	quantityPattern = regexp.MustCompile(`(?i)^\d+(?:ML|LT|KG|GR|CM|MM|G|L|M)$`)
	skuCodePattern  = regexp.MustCompile(`^[A-Z]{2,}\d+$`)
)

// Vocabulary is the read-only token-filtering configuration for candidate
// extraction and brand matching. It is established once per run and safe for
// concurrent reads.
type Vocabulary struct {
	// StopWords are upper-cased words that never name a brand: articles,
	// prepositions, unit abbreviations, and generic product descriptors.
	StopWords map[string]bool

	// Descriptors are upper-cased packaging words long enough to survive the
	// candidate length floor but known not to be brands.
	Descriptors map[string]bool

	// MinSampleConfidence is the OCR confidence floor below which a sample
	// is discarded entirely.
	MinSampleConfidence float64

	// MinCandidateLength is the minimum token length (in runes) for a
	// generic brand candidate.
	MinCandidateLength int

	// CapitalBonus is added to a candidate's score when the token's original
	// first character was upper-case. Brands are usually proper nouns.
	CapitalBonus float64

	// FuzzyMatchThreshold is the similarity a (token, known brand) pair must
	// exceed for a fuzzy known-brand match.
	FuzzyMatchThreshold float64

	// DedupeThreshold is the similarity above which two candidates are
	// treated as OCR re-reads of the same physical word. Deliberately
	// separate from FuzzyMatchThreshold: collapsing re-reads and accepting a
	// fuzzy match are different decisions.
	DedupeThreshold float64
}

// DefaultVocabulary returns the stock Spanish/English vocabulary.
func DefaultVocabulary() *Vocabulary {
	stop := []string{
		// Spanish articles and prepositions
		"EL", "LA", "LOS", "LAS", "UN", "UNA", "DE", "DEL", "EN", "CON", "POR", "PARA",
		// Unit abbreviations
		"ML", "LT", "L", "KG", "G", "GR", "CM", "M", "MM",
		// English articles and prepositions
		"THE", "A", "AN", "AND", "OR", "OF", "IN", "ON", "AT", "TO", "FOR",
		// Generic product descriptors
		"AGUA", "WATER", "MINERAL", "BEBIDA", "DRINK", "PRODUCTO", "PRODUCT",
		"RETORNABLE", "NO", "YES", "SI", "ENVASAD", "ENVASADA", "ENVASE",
		"BOTELLA", "BOTTLE", "BIDON", "BIDÓN",
	}
	descriptors := []string{
		"RETORNABLE", "ENVASAD", "ENVASADA", "BOTELLA", "BIDON", "BIDÓN",
	}

	v := &Vocabulary{
		StopWords:           make(map[string]bool, len(stop)),
		Descriptors:         make(map[string]bool, len(descriptors)),
		MinSampleConfidence: 0.3,
		MinCandidateLength:  4,
		CapitalBonus:        0.2,
		FuzzyMatchThreshold: 0.65,
		DedupeThreshold:     0.8,
	}
	for _, w := range stop {
		v.StopWords[w] = true
	}
	for _, w := range descriptors {
		v.Descriptors[w] = true
	}
	return v
}

// IsStopWord reports whether the token (any case) is in the stop-word set.
func (v *Vocabulary) IsStopWord(token string) bool {
	return v.StopWords[strings.ToUpper(token)]
}

// IsDescriptor reports whether the token (any case) is a known packaging
// descriptor.
func (v *Vocabulary) IsDescriptor(token string) bool {
	return v.Descriptors[strings.ToUpper(token)]
}

// looksLikeCode reports whether an upper-cased token has a code-like shape:
// a bare number, a quantity like "500ML", or a SKU code like "SKU123".
func looksLikeCode(token string) bool {
	return numberPattern.MatchString(token) ||
		quantityPattern.MatchString(token) ||
		skuCodePattern.MatchString(token)
}
