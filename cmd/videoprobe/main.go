// Command videoprobe analyzes a shelf-survey video and reports whether it is
// suitable for product detection. Optionally extracts the sampled frames.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"shelfscan/internal/video"
)

func main() {
	videoPath := flag.String("video", "", "Path to video file")
	jsonOut := flag.String("json", "", "Write the full analysis as JSON to this path")
	extract := flag.String("extract", "", "Extract frames into this directory")
	fps := flag.Float64("fps", video.DefaultExtractionFPS, "Frames per second to extract")
	rotate := flag.Bool("rotate", false, "Rotate extracted frames 90 degrees clockwise")
	flag.Parse()

	if *videoPath == "" {
		fmt.Println("Usage: videoprobe -video <path> [-json out.json] [-extract dir] [-fps 1.0] [-rotate]")
		os.Exit(1)
	}

	analysis, err := video.Probe(*videoPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Probe failed: %v\n", err)
		os.Exit(1)
	}

	info := analysis.Info
	fmt.Printf("Resolution: %dx%d\n", info.Width, info.Height)
	fmt.Printf("FPS:        %.2f\n", info.FPS)
	fmt.Printf("Frames:     %d\n", info.FrameCount)
	fmt.Printf("Duration:   %.1fs\n", info.Duration)
	fmt.Printf("Portrait:   %v\n", info.Portrait)
	fmt.Printf("Brightness: %.1f (avg over %d key frames)\n", analysis.AvgBrightness, len(analysis.KeyFrames))
	fmt.Printf("Contrast:   %.1f\n", analysis.AvgContrast)

	hints := analysis.Hints()
	if len(hints) == 0 {
		fmt.Println("\nVideo looks suitable for detection")
	} else {
		fmt.Println("\nCapture quality hints:")
		for _, h := range hints {
			fmt.Printf("  - %s\n", h)
		}
	}

	if *jsonOut != "" {
		data, err := json.MarshalIndent(analysis, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to serialize analysis: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*jsonOut, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", *jsonOut, err)
			os.Exit(1)
		}
		fmt.Printf("Analysis written to %s\n", *jsonOut)
	}

	if *extract != "" {
		paths, err := video.ExtractFrames(*videoPath, *extract, *fps, *rotate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Frame extraction failed: %v\n", err)
			os.Exit(1)
		}
		if err := video.WriteFrameIndex(*extract, paths); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write frame index: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Extracted %d frames to %s\n", len(paths), *extract)
	}
}
