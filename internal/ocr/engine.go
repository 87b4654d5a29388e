// Package ocr reads label text from product detection regions.
package ocr

import (
	"fmt"
	"image"
	"strings"

	"shelfscan/pkg/geometry"

	"github.com/otiai10/gosseract/v2"
	"gocv.io/x/gocv"
)

// Sample is a single piece of text read by the OCR engine, with its
// recognition confidence in [0,1].
type Sample struct {
	Text       string
	Confidence float64
}

// JoinTexts concatenates sample texts with spaces, for audit output.
func JoinTexts(samples []Sample) string {
	parts := make([]string, 0, len(samples))
	for _, s := range samples {
		parts = append(parts, s.Text)
	}
	return strings.Join(parts, " ")
}

// Sampler provides OCR text samples for a region of an image.
// An empty or out-of-bounds region yields an empty sample list, never an error.
type Sampler interface {
	RegionSamples(img gocv.Mat, box geometry.Rect) ([]Sample, error)
	Close() error
}

// Engine is a Tesseract-backed Sampler.
type Engine struct {
	client *gosseract.Client
}

// NewEngine creates an OCR engine configured for product labels.
// Labels mix Spanish and English, so both language packs are loaded.
func NewEngine() (*Engine, error) {
	client := gosseract.NewClient()

	if err := client.SetLanguage("spa", "eng"); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set OCR languages: %w", err)
	}

	return &Engine{client: client}, nil
}

// Close releases OCR resources.
func (e *Engine) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

// RegionSamples performs word-level OCR on a bounding-box region of an image.
// The box is clipped to the image bounds; a region with no area yields an
// empty sample list.
func (e *Engine) RegionSamples(img gocv.Mat, box geometry.Rect) ([]Sample, error) {
	if img.Empty() {
		return nil, nil
	}

	bounds := box.Clip(img.Cols(), img.Rows()).Round()
	if bounds.Empty() {
		return nil, nil
	}

	region := img.Region(image.Rect(bounds.X1, bounds.Y1, bounds.X2, bounds.Y2))
	defer region.Close()

	return e.recognize(region)
}

// ImageSamples performs word-level OCR on an entire image.
func (e *Engine) ImageSamples(img gocv.Mat) ([]Sample, error) {
	if img.Empty() {
		return nil, nil
	}
	return e.recognize(img)
}

func (e *Engine) recognize(region gocv.Mat) ([]Sample, error) {
	processed := preprocessForOCR(region)
	defer processed.Close()

	buf, err := gocv.IMEncode(gocv.PNGFileExt, processed)
	if err != nil {
		return nil, fmt.Errorf("failed to encode region: %w", err)
	}
	defer buf.Close()

	// Sparse text mode: label words are scattered, not a uniform block
	if err := e.client.SetPageSegMode(gosseract.PSM_SPARSE_TEXT); err != nil {
		return nil, fmt.Errorf("failed to set PSM: %w", err)
	}

	if err := e.client.SetImageFromBytes(buf.GetBytes()); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := e.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	var samples []Sample
	for _, box := range boxes {
		text := strings.TrimSpace(box.Word)
		if text == "" {
			continue
		}
		samples = append(samples, Sample{
			Text:       text,
			Confidence: box.Confidence / 100.0,
		})
	}

	return samples, nil
}
