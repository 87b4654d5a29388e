package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"shelfscan/internal/detect"
)

// Metadata summarizes a detection run for machine consumption.
type Metadata struct {
	Date            string          `json:"date"`
	TotalFrames     int             `json:"total_frames"`
	TotalIdentities int             `json:"total_identities"`
	TotalDetections int             `json:"total_detections"`
	Counts          detect.CountMap `json:"counts"`
	AnnotatedImages []string        `json:"annotated_images"`
}

// NewMetadata builds run metadata from the final count map.
func NewMetadata(counts detect.CountMap, totalFrames int, annotatedImages []string) Metadata {
	if annotatedImages == nil {
		annotatedImages = []string{}
	}
	return Metadata{
		Date:            time.Now().Format(time.RFC3339),
		TotalFrames:     totalFrames,
		TotalIdentities: len(counts),
		TotalDetections: counts.Total(),
		Counts:          counts,
		AnnotatedImages: annotatedImages,
	}
}

// WriteMetadata writes the metadata as indented JSON.
func WriteMetadata(path string, meta Metadata) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize metadata: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
