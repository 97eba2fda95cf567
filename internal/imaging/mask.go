package imaging

import (
	"errors"
	"image"

	"github.com/disintegration/imaging"
)

// ErrEmptyMask is returned when a mask excludes every pixel of the image.
var ErrEmptyMask = errors.New("mask excludes all pixels")

// maskThreshold is the grayscale cutoff: mask pixels at or above this value
// keep the corresponding image pixel, darker pixels exclude it.
const maskThreshold = 128

// Mask marks which pixels of an image participate in extraction.
type Mask struct {
	width  int
	height int
	keep   []bool
	kept   int
}

// NewMask builds a mask sized width x height from a mask image. The mask
// image is resized with nearest-neighbor to match (a mask must not grow
// soft edges), converted to grayscale, and thresholded at 128.
func NewMask(maskImg image.Image, width, height int) (*Mask, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New("mask target dimensions must be positive")
	}

	resized := maskImg
	b := maskImg.Bounds()
	if b.Dx() != width || b.Dy() != height {
		resized = imaging.Resize(maskImg, width, height, imaging.NearestNeighbor)
	}
	gray := imaging.Grayscale(resized)

	m := &Mask{
		width:  width,
		height: height,
		keep:   make([]bool, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Grayscale output has equal channels; red carries the value.
			v := gray.NRGBAAt(x, y).R
			if v >= maskThreshold {
				m.keep[y*width+x] = true
				m.kept++
			}
		}
	}

	if m.kept == 0 {
		return nil, ErrEmptyMask
	}
	return m, nil
}

// Keep reports whether the pixel at (x, y) participates in extraction.
// Coordinates outside the mask report false.
func (m *Mask) Keep(x, y int) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false
	}
	return m.keep[y*m.width+x]
}

// Kept returns the number of pixels the mask admits.
func (m *Mask) Kept() int { return m.kept }

// Bounds returns the mask dimensions.
func (m *Mask) Bounds() (width, height int) { return m.width, m.height }
