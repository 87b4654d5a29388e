package detect

import (
	"gocv.io/x/gocv"

	"shelfscan/internal/brand"
	"shelfscan/internal/ocr"
)

// DefaultBrandClasses are the container classes that can carry a legible
// brand label. Other classes skip OCR entirely.
var DefaultBrandClasses = []string{"bottle", "cup", "bowl", "can", "jar"}

// Enricher resolves a brand identity for each detection. A nil OCR sampler
// is a capability downgrade, not an error: every detection passes through
// unbranded.
type Enricher struct {
	sampler      ocr.Sampler
	matcher      *brand.Matcher
	knownBrands  []string
	brandClasses map[string]bool
}

// NewEnricher creates an Enricher. brandClasses nil selects
// DefaultBrandClasses; knownBrands may be empty.
func NewEnricher(sampler ocr.Sampler, matcher *brand.Matcher, knownBrands []string, brandClasses []string) *Enricher {
	if matcher == nil {
		matcher = brand.NewMatcher(nil)
	}
	if brandClasses == nil {
		brandClasses = DefaultBrandClasses
	}
	classes := make(map[string]bool, len(brandClasses))
	for _, c := range brandClasses {
		classes[c] = true
	}
	return &Enricher{
		sampler:      sampler,
		matcher:      matcher,
		knownBrands:  knownBrands,
		brandClasses: classes,
	}
}

// EnrichFrame enriches every detection of one frame, in detector-output
// order. It always returns one EnrichedDetection per Detection.
func (e *Enricher) EnrichFrame(img gocv.Mat, detections []Detection) []EnrichedDetection {
	enriched := make([]EnrichedDetection, 0, len(detections))
	for _, d := range detections {
		enriched = append(enriched, e.enrichOne(img, d))
	}
	return enriched
}

func (e *Enricher) enrichOne(img gocv.Mat, d Detection) EnrichedDetection {
	enriched := EnrichedDetection{
		Detection: d,
		Identity:  Identity(d.ClassLabel, ""),
	}

	if !e.brandClasses[d.ClassLabel] || e.sampler == nil {
		return enriched
	}

	samples, err := e.sampler.RegionSamples(img, d.Box)
	if err != nil {
		// OCR failure degrades to an unbranded detection
		return enriched
	}

	enriched.ExtractedText = ocr.JoinTexts(samples)
	enriched.Brand = e.matcher.Match(samples, e.knownBrands)
	enriched.Identity = Identity(d.ClassLabel, enriched.Brand)
	return enriched
}
