package brand

import (
	"strings"
)

// Similarity weighting. Positional agreement dominates; the character-set
// term credits transposed reads like "SUASNTE" for "SUSANTE".
const (
	substringScore   = 0.85
	positionalWeight = 0.6
	charsetWeight    = 0.4
)

// Similarity scores how alike two short tokens are, in [0,1], tolerating the
// kinds of errors OCR makes (dropped characters, misreads, transpositions).
// Case-insensitive and symmetric. Empty input scores 0.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0.0
	}

	ra := []rune(strings.ToUpper(a))
	rb := []rune(strings.ToUpper(b))
	ua, ub := string(ra), string(rb)

	if ua == ub {
		return 1.0
	}

	// A substring relation at length >= 4 usually means OCR dropped a prefix
	// or suffix. Shorter overlaps are too easy to hit by accident.
	if len(ra) >= 4 && len(rb) >= 4 {
		if strings.Contains(ua, ub) || strings.Contains(ub, ua) {
			return substringScore
		}
	}

	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}

	// Positional: matching characters at the same index, over the overlap
	overlap := len(ra)
	if len(rb) < overlap {
		overlap = len(rb)
	}
	samePos := 0
	for i := 0; i < overlap; i++ {
		if ra[i] == rb[i] {
			samePos++
		}
	}
	positional := float64(samePos) / float64(maxLen)

	// Character set: shared characters regardless of position
	setA := make(map[rune]bool, len(ra))
	for _, r := range ra {
		setA[r] = true
	}
	setB := make(map[rune]bool, len(rb))
	for _, r := range rb {
		setB[r] = true
	}
	shared := 0
	for r := range setA {
		if setB[r] {
			shared++
		}
	}
	setMax := len(setA)
	if len(setB) > setMax {
		setMax = len(setB)
	}
	charset := float64(shared) / float64(setMax)

	score := positionalWeight*positional + charsetWeight*charset

	// Penalize length mismatch, mildly
	lenDiff := len(ra) - len(rb)
	if lenDiff < 0 {
		lenDiff = -lenDiff
	}
	if lenDiff > 0 {
		score *= 1.0 - float64(lenDiff)/float64(2*maxLen)
	}

	return score
}
