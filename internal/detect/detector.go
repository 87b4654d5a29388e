package detect

import (
	"fmt"
	"image"
	"os"

	"shelfscan/pkg/geometry"

	"gocv.io/x/gocv"
)

// Default detection thresholds.
const (
	DefaultMinConfidence = 0.25
	DefaultNMSThreshold  = 0.45
	DefaultInputSize     = 640
)

// Detector finds products in a single frame. The class-label vocabulary is
// detector-defined and open.
type Detector interface {
	Detect(img gocv.Mat, frameID string) ([]Detection, error)
	Close() error
}

// Params configures an ONNX detector.
type Params struct {
	MinConfidence float64  // detections below this are discarded
	NMSThreshold  float64  // IoU threshold for non-maximum suppression
	InputSize     int      // square network input size in pixels
	Classes       []string // class names, indexed by model output row
}

// DefaultParams returns detection parameters for a COCO-trained model.
func DefaultParams() Params {
	return Params{
		MinConfidence: DefaultMinConfidence,
		NMSThreshold:  DefaultNMSThreshold,
		InputSize:     DefaultInputSize,
		Classes:       COCOClasses,
	}
}

// ONNXDetector runs a YOLO-style ONNX model through the OpenCV DNN module.
type ONNXDetector struct {
	net    gocv.Net
	params Params
}

// NewONNXDetector loads an ONNX model from disk.
func NewONNXDetector(modelPath string, params Params) (*ONNXDetector, error) {
	if _, err := os.Stat(modelPath); err != nil {
		return nil, fmt.Errorf("model not found at %s: %w", modelPath, err)
	}

	net := gocv.ReadNetFromONNX(modelPath)
	if net.Empty() {
		return nil, fmt.Errorf("failed to load ONNX model from %s", modelPath)
	}

	if params.InputSize <= 0 {
		params.InputSize = DefaultInputSize
	}
	if params.MinConfidence <= 0 {
		params.MinConfidence = DefaultMinConfidence
	}
	if params.NMSThreshold <= 0 {
		params.NMSThreshold = DefaultNMSThreshold
	}
	if len(params.Classes) == 0 {
		params.Classes = COCOClasses
	}

	return &ONNXDetector{net: net, params: params}, nil
}

// Close releases the network.
func (d *ONNXDetector) Close() error {
	return d.net.Close()
}

// Detect runs the model on one frame and returns detections above the
// confidence floor, after non-maximum suppression. Boxes are in original
// image pixel coordinates.
func (d *ONNXDetector) Detect(img gocv.Mat, frameID string) ([]Detection, error) {
	if img.Empty() {
		return nil, fmt.Errorf("empty frame %s", frameID)
	}

	size := d.params.InputSize
	blob := gocv.BlobFromImage(img, 1.0/255.0, image.Pt(size, size),
		gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	d.net.SetInput(blob, "")
	output := d.net.Forward("")
	defer output.Close()

	return d.decode(output, img.Cols(), img.Rows(), frameID)
}

// decode converts YOLO output of shape [1, 4+numClasses, numAnchors] into
// detections scaled back to image coordinates.
func (d *ONNXDetector) decode(output gocv.Mat, imgW, imgH int, frameID string) ([]Detection, error) {
	dims := output.Size()
	if len(dims) != 3 {
		return nil, fmt.Errorf("unexpected model output shape %v", dims)
	}
	rows := dims[1]
	anchors := dims[2]
	numClasses := rows - 4
	if numClasses <= 0 {
		return nil, fmt.Errorf("unexpected model output shape %v", dims)
	}

	data, err := output.DataPtrFloat32()
	if err != nil {
		return nil, fmt.Errorf("failed to read model output: %w", err)
	}
	at := func(row, col int) float32 {
		return data[row*anchors+col]
	}

	scaleX := float64(imgW) / float64(d.params.InputSize)
	scaleY := float64(imgH) / float64(d.params.InputSize)

	var boxes []image.Rectangle
	var scores []float32
	var classIDs []int

	for a := 0; a < anchors; a++ {
		bestClass := -1
		bestScore := float32(0)
		for c := 0; c < numClasses; c++ {
			if s := at(4+c, a); s > bestScore {
				bestScore = s
				bestClass = c
			}
		}
		if bestClass < 0 || float64(bestScore) < d.params.MinConfidence {
			continue
		}

		// Output boxes are center/size in network input coordinates
		cx := float64(at(0, a))
		cy := float64(at(1, a))
		w := float64(at(2, a))
		h := float64(at(3, a))

		x1 := (cx - w/2) * scaleX
		y1 := (cy - h/2) * scaleY
		x2 := (cx + w/2) * scaleX
		y2 := (cy + h/2) * scaleY

		boxes = append(boxes, image.Rect(int(x1), int(y1), int(x2), int(y2)))
		scores = append(scores, bestScore)
		classIDs = append(classIDs, bestClass)
	}

	if len(boxes) == 0 {
		return nil, nil
	}

	keep := gocv.NMSBoxes(boxes, scores, float32(d.params.MinConfidence), float32(d.params.NMSThreshold))

	detections := make([]Detection, 0, len(keep))
	for _, idx := range keep {
		classID := classIDs[idx]
		label := fmt.Sprintf("class%d", classID)
		if classID < len(d.params.Classes) {
			label = d.params.Classes[classID]
		}
		box := boxes[idx]
		detections = append(detections, Detection{
			ClassLabel: label,
			Confidence: float64(scores[idx]),
			Box: geometry.NewRect(
				float64(box.Min.X), float64(box.Min.Y),
				float64(box.Max.X), float64(box.Max.Y),
			).Clip(imgW, imgH),
			FrameID: frameID,
		})
	}

	return detections, nil
}
