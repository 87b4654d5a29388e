// Package pipeline drives a full shelf-survey run: probe the video, extract
// frames, detect and brand-identify products, and write the inventory.
package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cyclopcam/logs"
	"gocv.io/x/gocv"

	"shelfscan/internal/brand"
	"shelfscan/internal/detect"
	"shelfscan/internal/ocr"
	"shelfscan/internal/report"
	"shelfscan/internal/video"
)

// Options configures a pipeline run.
type Options struct {
	VideoPath     string
	ModelPath     string  // ONNX detection model
	OutputDir     string  // parent of the per-run session directory
	ExtractFPS    float64 // frames sampled per second of video
	MinConfidence float64 // detection confidence floor
	Rotate        bool    // rotate portrait frames 90° clockwise
	SkipDetect    bool    // extract frames only
	SkipAnnotate  bool    // no annotated images
	SkipBrands    bool    // detection without OCR brand identification
	BrandsFile    string  // optional known-brands list, one per line
}

// Result summarizes a completed run.
type Result struct {
	SessionDir      string
	FramePaths      []string
	Counts          detect.CountMap
	AnnotatedImages []string
	CSVPath         string
	MetadataPath    string
}

// Runner executes the survey pipeline.
type Runner struct {
	log  logs.Log
	opts Options
}

// NewRunner creates a Runner. A nil logger panics; callers own logger setup.
func NewRunner(log logs.Log, opts Options) *Runner {
	if opts.ExtractFPS <= 0 {
		opts.ExtractFPS = video.DefaultExtractionFPS
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	return &Runner{log: log, opts: opts}
}

// Run executes the whole pipeline and returns the run summary. Per-frame
// analysis failures are logged and skipped; only orchestration-level
// failures abort the run.
func (r *Runner) Run() (*Result, error) {
	sessionDir, err := r.makeSessionDir()
	if err != nil {
		return nil, err
	}
	r.log.Infof("Session directory: %s", sessionDir)

	result := &Result{SessionDir: sessionDir}

	analysis, err := video.Probe(r.opts.VideoPath)
	if err != nil {
		return nil, fmt.Errorf("video probe failed: %w", err)
	}
	r.log.Infof("Video: %dx%d, %.1f fps, %.1fs",
		analysis.Info.Width, analysis.Info.Height, analysis.Info.FPS, analysis.Info.Duration)
	for _, hint := range analysis.Hints() {
		r.log.Warnf("Capture quality: %s", hint)
	}
	if err := writeAnalysis(filepath.Join(sessionDir, "video_analysis.json"), analysis); err != nil {
		return nil, err
	}

	framesDir := filepath.Join(sessionDir, "frames")
	framePaths, err := video.ExtractFrames(r.opts.VideoPath, framesDir, r.opts.ExtractFPS, r.opts.Rotate)
	if err != nil {
		return nil, fmt.Errorf("frame extraction failed: %w", err)
	}
	if err := video.WriteFrameIndex(framesDir, framePaths); err != nil {
		return nil, err
	}
	r.log.Infof("Extracted %d frames to %s", len(framePaths), framesDir)
	result.FramePaths = framePaths

	if r.opts.SkipDetect {
		r.log.Infof("Detection disabled, run complete")
		return result, nil
	}

	knownBrands, err := r.loadKnownBrands()
	if err != nil {
		return nil, err
	}

	counts, annotated, err := r.detectAll(sessionDir, framePaths, knownBrands)
	if err != nil {
		return nil, err
	}
	result.Counts = counts
	result.AnnotatedImages = annotated

	records := report.Assemble(counts, knownBrands)
	result.CSVPath = filepath.Join(sessionDir, "inventario.csv")
	if err := report.WriteCSV(result.CSVPath, records); err != nil {
		return nil, err
	}

	meta := report.NewMetadata(counts, len(framePaths), annotated)
	result.MetadataPath = filepath.Join(sessionDir, "metadata.json")
	if err := report.WriteMetadata(result.MetadataPath, meta); err != nil {
		return nil, err
	}

	r.log.Infof("Inventory: %d identities, %d detections over %d frames",
		meta.TotalIdentities, meta.TotalDetections, meta.TotalFrames)
	return result, nil
}

// detectAll runs detection, OCR and brand identification over every frame in
// order and aggregates the identity counts.
func (r *Runner) detectAll(sessionDir string, framePaths []string, knownBrands []string) (detect.CountMap, []string, error) {
	detector, err := detect.NewONNXDetector(r.opts.ModelPath, r.detectParams())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load detection model: %w", err)
	}
	defer detector.Close()

	var sampler ocr.Sampler
	if !r.opts.SkipBrands {
		engine, err := ocr.NewEngine()
		if err != nil {
			r.log.Warnf("OCR unavailable, continuing without brand identification: %v", err)
		} else {
			sampler = engine
			defer engine.Close()
		}
	}

	enricher := detect.NewEnricher(sampler, nil, knownBrands, nil)

	annotatedDir := filepath.Join(sessionDir, "annotated")
	if !r.opts.SkipAnnotate {
		if err := os.MkdirAll(annotatedDir, 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create annotated directory: %w", err)
		}
	}

	counts := make(detect.CountMap)
	var annotated []string

	for _, framePath := range framePaths {
		frameID := filepath.Base(framePath)

		img := gocv.IMRead(framePath, gocv.IMReadColor)
		if img.Empty() {
			r.log.Warnf("Skipping unreadable frame %s", frameID)
			continue
		}

		detections, err := detector.Detect(img, frameID)
		if err != nil {
			r.log.Warnf("Detection failed on %s: %v", frameID, err)
			img.Close()
			continue
		}

		enriched := enricher.EnrichFrame(img, detections)
		img.Close()

		for _, d := range enriched {
			counts.Add(d.Identity)
		}
		r.log.Infof("%s: %d detections", frameID, len(enriched))

		if !r.opts.SkipAnnotate && len(enriched) > 0 {
			outPath := filepath.Join(annotatedDir, report.AnnotatedName(framePath))
			if err := report.AnnotateFrame(framePath, enriched, outPath); err != nil {
				r.log.Warnf("Annotation failed on %s: %v", frameID, err)
				continue
			}
			annotated = append(annotated, filepath.Base(outPath))
		}
	}

	return counts, annotated, nil
}

func (r *Runner) detectParams() detect.Params {
	params := detect.DefaultParams()
	if r.opts.MinConfidence > 0 {
		params.MinConfidence = r.opts.MinConfidence
	}
	return params
}

func (r *Runner) loadKnownBrands() ([]string, error) {
	if r.opts.BrandsFile == "" {
		return nil, nil
	}
	brands, err := brand.LoadKnownBrands(r.opts.BrandsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load brands file: %w", err)
	}
	return brands, nil
}

// makeSessionDir creates <output>/<videostem>_<timestamp>/.
func (r *Runner) makeSessionDir() (string, error) {
	base := filepath.Base(r.opts.VideoPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	name := fmt.Sprintf("%s_%s", stem, time.Now().Format("20060102_150405"))
	dir := filepath.Join(r.opts.OutputDir, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create session directory: %w", err)
	}
	return dir, nil
}

func writeAnalysis(path string, analysis *video.Analysis) error {
	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize video analysis: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
