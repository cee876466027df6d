// Package render converts iteration-count grids into grayscale images.
// It consumes the fractal kernel's output without touching its semantics:
// counts are normalized to the 0-255 intensity range and written as PNG.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
)

// Grayscale maps counts onto a width x height grayscale image. Counts are
// expected in row-major order, the grid builder's layout; intensity is
// round(count / max(counts) * 255). An all-zero grid renders black.
func Grayscale(counts []int, width, height int) (*image.Gray, error) {
	if len(counts) != width*height {
		return nil, fmt.Errorf("render: %d counts for %dx%d image", len(counts), width, height)
	}

	maxCount := 0
	for _, n := range counts {
		if n > maxCount {
			maxCount = n
		}
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	if maxCount == 0 {
		return img, nil
	}

	scale := 255.0 / float64(maxCount)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			n := counts[y*width+x]
			img.SetGray(x, y, color.Gray{Y: uint8(math.Round(float64(n) * scale))})
		}
	}

	return img, nil
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}
