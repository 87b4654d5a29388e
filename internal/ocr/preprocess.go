package ocr

import (
	"image"

	"gocv.io/x/gocv"
)

// minRegionDim is the smallest region dimension fed to Tesseract. Product
// labels in shelf video frames are often only a few dozen pixels tall;
// upscaling them markedly improves recognition.
const minRegionDim = 50

// preprocessForOCR prepares a detection region for OCR: grayscale, contrast
// enhancement, and cubic upscaling of small regions.
func preprocessForOCR(region gocv.Mat) gocv.Mat {
	// Convert to grayscale
	var gray gocv.Mat
	if region.Channels() >= 3 {
		gray = gocv.NewMat()
		gocv.CvtColor(region, &gray, gocv.ColorBGRToGray)
	} else {
		gray = region.Clone()
	}

	// CLAHE evens out the uneven shelf lighting that washes out label text
	clahe := gocv.NewCLAHEWithParams(2.0, image.Point{X: 8, Y: 8})
	defer clahe.Close()

	enhanced := gocv.NewMat()
	clahe.Apply(gray, &enhanced)
	gray.Close()

	h, w := enhanced.Rows(), enhanced.Cols()
	minDim := h
	if w < minDim {
		minDim = w
	}
	if minDim > 0 && minDim < minRegionDim {
		scale := float64(minRegionDim) / float64(minDim)
		scaled := gocv.NewMat()
		gocv.Resize(enhanced, &scaled, image.Point{}, scale, scale, gocv.InterpolationCubic)
		enhanced.Close()
		return scaled
	}

	return enhanced
}
