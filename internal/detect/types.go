// Package detect localizes products in shelf frames and folds per-detection
// brand identities into per-SKU counts.
package detect

import (
	"shelfscan/pkg/geometry"
)

// IdentitySeparator joins a class label and a brand into a composite identity.
const IdentitySeparator = "_"

// Detection is one object instance localized by the detector within one
// frame. Immutable after creation.
type Detection struct {
	ClassLabel string        `json:"class"`
	Confidence float64       `json:"confidence"`
	Box        geometry.Rect `json:"bbox"`
	FrameID    string        `json:"frame"`
}

// EnrichedDetection is a Detection plus its resolved brand identity.
// Identity is the aggregation key downstream.
type EnrichedDetection struct {
	Detection
	ExtractedText string `json:"extracted_text,omitempty"`
	Brand         string `json:"brand,omitempty"`
	Identity      string `json:"identity"`
}

// Identity computes the aggregation key for a (class label, brand) pair.
// Two detections with the same pair always share a key.
func Identity(classLabel, brand string) string {
	if brand == "" {
		return classLabel
	}
	return classLabel + IdentitySeparator + brand
}
