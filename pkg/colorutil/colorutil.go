// Package colorutil provides colors for annotated frame overlays.
package colorutil

import (
	"hash/fnv"
	"image/color"
)

// Overlay colors.
var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Distinct derives a stable, visually spread color from a key. The same
// key always yields the same color, so one product identity keeps its
// color across every annotated frame.
func Distinct(key string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(key))
	v := h.Sum32() % 256
	return color.RGBA{
		R: uint8(v * 7 % 256),
		G: uint8(v * 11 % 256),
		B: uint8(v * 13 % 256),
		A: 255,
	}
}
