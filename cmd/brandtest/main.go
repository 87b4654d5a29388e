// Command brandtest runs the OCR and brand-identification stages on a single
// product image and shows every intermediate result, for tuning the
// vocabulary and thresholds.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"gocv.io/x/gocv"

	"shelfscan/internal/brand"
	"shelfscan/internal/ocr"

	_ "golang.org/x/image/tiff"
)

func main() {
	imagePath := flag.String("image", "", "Path to product image (TIFF, PNG, or JPEG)")
	brandsFile := flag.String("brands", "", "Known brands list, one per line")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: brandtest -image <path> [-brands file]")
		os.Exit(1)
	}

	// Load image
	f, err := os.Open(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open image: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to decode image: %v\n", err)
		os.Exit(1)
	}

	bounds := img.Bounds()
	fmt.Printf("Loaded %s image: %dx%d pixels\n", format, bounds.Dx(), bounds.Dy())

	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to convert image: %v\n", err)
		os.Exit(1)
	}
	defer mat.Close()

	engine, err := ocr.NewEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start OCR: %v\n", err)
		os.Exit(1)
	}
	defer engine.Close()

	samples, err := engine.ImageSamples(mat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "OCR failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nOCR samples (%d):\n", len(samples))
	for _, s := range samples {
		fmt.Printf("  %-20q conf=%.2f\n", s.Text, s.Confidence)
	}

	vocab := brand.DefaultVocabulary()
	candidates := brand.ExtractCandidates(samples, vocab)
	fmt.Printf("\nBrand candidates (%d):\n", len(candidates))
	for _, c := range candidates {
		fmt.Printf("  %-20s score=%.2f len=%d\n", c.Token, c.Score, c.Length)
	}

	var knownBrands []string
	if *brandsFile != "" {
		knownBrands, err = brand.LoadKnownBrands(*brandsFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load brands: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nKnown brands: %d loaded\n", len(knownBrands))
	}

	matcher := brand.NewMatcher(vocab)
	result := matcher.Match(samples, knownBrands)
	if result == "" {
		fmt.Println("\nNo brand identified")
	} else {
		fmt.Printf("\nIdentified brand: %s\n", result)
	}
}
