package video

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gocv.io/x/gocv"
)

// DefaultExtractionFPS is how many frames per second of video are sampled.
// One per second is enough for a slow walking pass along a shelf.
const DefaultExtractionFPS = 1.0

// ExtractFrames samples frames from a video into outDir as JPEG files and
// returns the written paths in frame order. extractFPS controls the sampling
// rate; rotate turns each frame 90° clockwise for portrait captures.
func ExtractFrames(path, outDir string, extractFPS float64, rotate bool) ([]string, error) {
	if extractFPS <= 0 {
		extractFPS = DefaultExtractionFPS
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create frames directory: %w", err)
	}

	capture, err := gocv.OpenVideoCapture(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open video %s: %w", path, err)
	}
	defer capture.Close()

	videoFPS := capture.Get(gocv.VideoCaptureFPS)
	interval := 1
	if videoFPS > 0 {
		interval = int(videoFPS / extractFPS)
		if interval < 1 {
			interval = 1
		}
	}

	frame := gocv.NewMat()
	defer frame.Close()
	rotated := gocv.NewMat()
	defer rotated.Close()

	var paths []string
	frameNum := 0
	saved := 0

	for {
		if !capture.Read(&frame) || frame.Empty() {
			break
		}

		if frameNum%interval == 0 {
			out := frame
			if rotate {
				gocv.Rotate(frame, &rotated, gocv.Rotate90Clockwise)
				out = rotated
			}

			timestamp := 0.0
			if videoFPS > 0 {
				timestamp = float64(frameNum) / videoFPS
			}
			name := fmt.Sprintf("frame_%04d_t%.2fs.jpg", saved, timestamp)
			full := filepath.Join(outDir, name)

			if ok := gocv.IMWrite(full, out); !ok {
				return paths, fmt.Errorf("failed to write frame %s", full)
			}
			paths = append(paths, full)
			saved++
		}

		frameNum++
	}

	return paths, nil
}

// frameIndex is the JSON sidecar describing an extraction run.
type frameIndex struct {
	TotalFrames int      `json:"total_frames"`
	Frames      []string `json:"frames"`
	Directory   string   `json:"directory"`
}

// WriteFrameIndex writes frames_info.json next to the extracted frames.
func WriteFrameIndex(outDir string, paths []string) error {
	index := frameIndex{
		TotalFrames: len(paths),
		Frames:      make([]string, 0, len(paths)),
		Directory:   outDir,
	}
	for _, p := range paths {
		index.Frames = append(index.Frames, filepath.Base(p))
	}

	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize frame index: %w", err)
	}
	return os.WriteFile(filepath.Join(outDir, "frames_info.json"), data, 0644)
}
