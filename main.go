// shelfscan turns a walking shelf-survey video into a product inventory.
// It extracts frames, detects products with an ONNX model, reads label text
// with Tesseract to identify brands, and writes inventario.csv plus run
// metadata into a per-run session directory.
package main

import (
	"fmt"
	"os"

	"github.com/akamensky/argparse"
	"github.com/cyclopcam/logs"

	"shelfscan/internal/pipeline"
	"shelfscan/internal/version"
	"shelfscan/internal/video"
)

func main() {
	parser := argparse.NewParser("shelfscan", "Shelf-survey video product inventory")
	videoPath := parser.String("v", "video", &argparse.Options{Help: "Shelf-survey video file"})
	modelPath := parser.String("m", "model", &argparse.Options{Help: "ONNX detection model", Default: "yolov8n.onnx"})
	outputDir := parser.String("o", "output", &argparse.Options{Help: "Output directory for session results", Default: "results"})
	confidence := parser.Float("c", "confidence", &argparse.Options{Help: "Detection confidence threshold", Default: 0.25})
	fps := parser.Float("f", "fps", &argparse.Options{Help: "Frames sampled per second of video", Default: video.DefaultExtractionFPS})
	rotate := parser.Flag("r", "rotate", &argparse.Options{Help: "Rotate frames 90 degrees clockwise (portrait captures)", Default: false})
	brandsFile := parser.String("b", "brands-file", &argparse.Options{Help: "Known brands list, one per line", Default: ""})
	noDetect := parser.Flag("", "no-detect", &argparse.Options{Help: "Extract frames only, skip detection", Default: false})
	noAnnotate := parser.Flag("", "no-annotate", &argparse.Options{Help: "Skip annotated frame images", Default: false})
	noBrands := parser.Flag("", "no-brands", &argparse.Options{Help: "Skip OCR brand identification", Default: false})
	showVersion := parser.Flag("", "version", &argparse.Options{Help: "Print version and exit", Default: false})
	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	if *showVersion {
		fmt.Println(version.String())
		return
	}
	if *videoPath == "" {
		fmt.Print(parser.Usage("the --video argument is required"))
		os.Exit(1)
	}

	logger, err := logs.NewLog()
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	runner := pipeline.NewRunner(logger, pipeline.Options{
		VideoPath:     *videoPath,
		ModelPath:     *modelPath,
		OutputDir:     *outputDir,
		ExtractFPS:    *fps,
		MinConfidence: *confidence,
		Rotate:        *rotate,
		SkipDetect:    *noDetect,
		SkipAnnotate:  *noAnnotate,
		SkipBrands:    *noBrands,
		BrandsFile:    *brandsFile,
	})

	result, err := runner.Run()
	if err != nil {
		logger.Errorf("Run failed: %v", err)
		os.Exit(1)
	}

	fmt.Printf("Results written to %s\n", result.SessionDir)
	if result.CSVPath != "" {
		fmt.Printf("Inventory: %s\n", result.CSVPath)
	}
}
