package report

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"gocv.io/x/gocv"

	"shelfscan/internal/detect"
	"shelfscan/pkg/colorutil"
)

// AnnotatedName returns the output file name for an annotated frame, e.g.
// "frame_0001_t1.00s.jpg" -> "frame_0001_t1.00s_detected.jpg".
func AnnotatedName(framePath string) string {
	base := filepath.Base(framePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + "_detected.jpg"
}

// AnnotateFrame draws labeled bounding boxes on a frame image and writes the
// result to outPath. Box colors are a deterministic function of the identity
// so the same product looks the same across frames.
func AnnotateFrame(framePath string, detections []detect.EnrichedDetection, outPath string) error {
	img := gocv.IMRead(framePath, gocv.IMReadColor)
	if img.Empty() {
		return fmt.Errorf("failed to read frame %s", framePath)
	}
	defer img.Close()

	for _, d := range detections {
		box := d.Box.Round()
		rect := image.Rect(box.X1, box.Y1, box.X2, box.Y2)
		col := colorutil.Distinct(d.Identity)

		gocv.Rectangle(&img, rect, col, 2)

		label := fmt.Sprintf("%s %.2f", d.Identity, d.Confidence)
		textSize := gocv.GetTextSize(label, gocv.FontHersheySimplex, 0.6, 2)

		// Filled background behind the label so it stays readable
		bg := image.Rect(box.X1, box.Y1-textSize.Y-10, box.X1+textSize.X, box.Y1)
		gocv.Rectangle(&img, bg, col, -1)
		gocv.PutText(&img, label, image.Pt(box.X1, box.Y1-5),
			gocv.FontHersheySimplex, 0.6, colorutil.White, 2)
	}

	if ok := gocv.IMWrite(outPath, img); !ok {
		return fmt.Errorf("failed to write annotated frame %s", outPath)
	}
	return nil
}
