// Package video probes shelf-survey videos and extracts frames for analysis.
package video

import (
	"fmt"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/stat"
)

// Brightness/contrast quality bounds used for capture hints.
const (
	MinUsableBrightness = 100.0
	MaxUsableBrightness = 200.0
	MinUsableContrast   = 30.0
)

// Info describes a video file.
type Info struct {
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	FPS        float64 `json:"fps"`
	FrameCount int     `json:"frame_count"`
	Duration   float64 `json:"duration"`
	Portrait   bool    `json:"portrait"`
}

// FrameStats holds basic image metrics for one sampled frame.
type FrameStats struct {
	Frame      int     `json:"frame"`
	Timestamp  float64 `json:"timestamp"`
	Brightness float64 `json:"brightness"`
	Contrast   float64 `json:"contrast"`
}

// Analysis is the result of probing a video: stream properties plus image
// quality metrics over a handful of key frames.
type Analysis struct {
	Info          Info         `json:"video_info"`
	KeyFrames     []FrameStats `json:"frames_analysis"`
	AvgBrightness float64      `json:"avg_brightness"`
	AvgContrast   float64      `json:"avg_contrast"`
}

// Probe opens a video and measures stream properties and frame quality at
// five key positions (start, quartiles, end).
func Probe(path string) (*Analysis, error) {
	capture, err := gocv.OpenVideoCapture(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open video %s: %w", path, err)
	}
	defer capture.Close()

	fps := capture.Get(gocv.VideoCaptureFPS)
	frameCount := int(capture.Get(gocv.VideoCaptureFrameCount))
	width := int(capture.Get(gocv.VideoCaptureFrameWidth))
	height := int(capture.Get(gocv.VideoCaptureFrameHeight))

	duration := 0.0
	if fps > 0 {
		duration = float64(frameCount) / fps
	}

	analysis := &Analysis{
		Info: Info{
			Width:      width,
			Height:     height,
			FPS:        fps,
			FrameCount: frameCount,
			Duration:   duration,
			Portrait:   height > width,
		},
	}

	indices := []int{0, frameCount / 4, frameCount / 2, 3 * frameCount / 4, frameCount - 1}

	frame := gocv.NewMat()
	defer frame.Close()
	gray := gocv.NewMat()
	defer gray.Close()

	var brightnesses, contrasts []float64
	for _, idx := range indices {
		if idx < 0 {
			continue
		}
		capture.Set(gocv.VideoCapturePosFrames, float64(idx))
		if !capture.Read(&frame) || frame.Empty() {
			continue
		}

		gocv.CvtColor(frame, &gray, gocv.ColorBGRToGray)
		brightness, contrast := grayStats(gray)

		timestamp := 0.0
		if fps > 0 {
			timestamp = float64(idx) / fps
		}
		analysis.KeyFrames = append(analysis.KeyFrames, FrameStats{
			Frame:      idx,
			Timestamp:  timestamp,
			Brightness: brightness,
			Contrast:   contrast,
		})
		brightnesses = append(brightnesses, brightness)
		contrasts = append(contrasts, contrast)
	}

	if len(brightnesses) == 0 {
		return nil, fmt.Errorf("no readable frames in %s", path)
	}

	analysis.AvgBrightness = stat.Mean(brightnesses, nil)
	analysis.AvgContrast = stat.Mean(contrasts, nil)

	return analysis, nil
}

// grayStats computes mean brightness and contrast (stddev) of a grayscale
// frame. Pixels are subsampled; exact statistics are not needed for a
// quality hint.
func grayStats(gray gocv.Mat) (brightness, contrast float64) {
	const stride = 16

	raw := gray.ToBytes()
	if len(raw) == 0 {
		return 0, 0
	}

	pixels := make([]float64, 0, len(raw)/stride+1)
	for i := 0; i < len(raw); i += stride {
		pixels = append(pixels, float64(raw[i]))
	}

	brightness = stat.Mean(pixels, nil)
	contrast = stat.StdDev(pixels, nil)
	return brightness, contrast
}

// Hints returns human-readable capture quality warnings, empty when the
// video looks fine.
func (a *Analysis) Hints() []string {
	var hints []string
	if a.AvgBrightness < MinUsableBrightness {
		hints = append(hints, "low brightness - consider adjusting exposure")
	} else if a.AvgBrightness > MaxUsableBrightness {
		hints = append(hints, "high brightness - possible overexposure")
	}
	if a.AvgContrast < MinUsableContrast {
		hints = append(hints, "low contrast - may hurt detection accuracy")
	}
	if a.Info.Portrait {
		hints = append(hints, "portrait video - consider the rotate option")
	}
	return hints
}
