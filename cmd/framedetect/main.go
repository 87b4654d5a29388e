// Command framedetect runs product detection and brand identification over a
// directory of extracted frames and prints the aggregated counts.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gocv.io/x/gocv"

	"shelfscan/internal/brand"
	"shelfscan/internal/detect"
	"shelfscan/internal/ocr"
)

func main() {
	framesDir := flag.String("frames", "", "Directory of frame images")
	modelPath := flag.String("model", "yolov8n.onnx", "ONNX detection model")
	confidence := flag.Float64("confidence", detect.DefaultMinConfidence, "Detection confidence threshold")
	brandsFile := flag.String("brands", "", "Known brands list, one per line")
	noBrands := flag.Bool("no-brands", false, "Skip OCR brand identification")
	flag.Parse()

	if *framesDir == "" {
		fmt.Println("Usage: framedetect -frames <dir> [-model yolov8n.onnx] [-confidence 0.25] [-brands file] [-no-brands]")
		os.Exit(1)
	}

	frames, err := listFrames(*framesDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to list frames: %v\n", err)
		os.Exit(1)
	}
	if len(frames) == 0 {
		fmt.Fprintf(os.Stderr, "No frame images found in %s\n", *framesDir)
		os.Exit(1)
	}
	fmt.Printf("Found %d frames\n", len(frames))

	params := detect.DefaultParams()
	params.MinConfidence = *confidence
	detector, err := detect.NewONNXDetector(*modelPath, params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load model: %v\n", err)
		os.Exit(1)
	}
	defer detector.Close()

	var sampler ocr.Sampler
	if !*noBrands {
		engine, err := ocr.NewEngine()
		if err != nil {
			fmt.Fprintf(os.Stderr, "OCR unavailable: %v\n", err)
		} else {
			sampler = engine
			defer engine.Close()
		}
	}

	var knownBrands []string
	if *brandsFile != "" {
		knownBrands, err = brand.LoadKnownBrands(*brandsFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load brands: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Loaded %d known brands\n", len(knownBrands))
	}

	enricher := detect.NewEnricher(sampler, nil, knownBrands, nil)
	counts := make(detect.CountMap)

	for _, framePath := range frames {
		frameID := filepath.Base(framePath)
		img := gocv.IMRead(framePath, gocv.IMReadColor)
		if img.Empty() {
			fmt.Fprintf(os.Stderr, "Skipping unreadable frame %s\n", frameID)
			continue
		}

		detections, err := detector.Detect(img, frameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Detection failed on %s: %v\n", frameID, err)
			img.Close()
			continue
		}

		enriched := enricher.EnrichFrame(img, detections)
		img.Close()

		fmt.Printf("%s: %d detections\n", frameID, len(enriched))
		for _, d := range enriched {
			counts.Add(d.Identity)
			if d.Brand != "" {
				fmt.Printf("  %s (%.2f) brand=%s text=%q\n", d.ClassLabel, d.Confidence, d.Brand, d.ExtractedText)
			} else {
				fmt.Printf("  %s (%.2f)\n", d.ClassLabel, d.Confidence)
			}
		}
	}

	fmt.Printf("\nAggregated counts (%d total detections):\n", counts.Total())
	identities := make([]string, 0, len(counts))
	for identity := range counts {
		identities = append(identities, identity)
	}
	sort.Strings(identities)
	for _, identity := range identities {
		fmt.Printf("  %-30s %d\n", identity, counts[identity])
	}
}

// listFrames returns the image files of a directory in name order, which for
// extracted frames is chronological order.
func listFrames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var frames []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".jpg", ".jpeg", ".png":
			frames = append(frames, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(frames)
	return frames, nil
}
