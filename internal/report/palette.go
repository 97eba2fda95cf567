package report

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/marearts/xcolor"
)

// Default swatch geometry for rendered palettes.
const (
	defaultSwatchWidth  = 150
	defaultSwatchHeight = 100
)

// RenderPalette draws the palette as a horizontal strip of solid swatches,
// one per color, each swatchWidth x swatchHeight pixels.
func RenderPalette(colors []xcolor.Color, swatchWidth, swatchHeight int) (image.Image, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("cannot render an empty palette")
	}
	if swatchWidth <= 0 {
		swatchWidth = defaultSwatchWidth
	}
	if swatchHeight <= 0 {
		swatchHeight = defaultSwatchHeight
	}

	strip := imaging.New(swatchWidth*len(colors), swatchHeight, color.NRGBA{255, 255, 255, 255})
	for i, c := range colors {
		swatch := imaging.New(swatchWidth, swatchHeight, color.NRGBA{c.RGB[0], c.RGB[1], c.RGB[2], 255})
		strip = imaging.Paste(strip, swatch, image.Pt(i*swatchWidth, 0))
	}
	return strip, nil
}

// SavePalette renders the palette with default swatch geometry and saves
// it to path; the format follows the file extension (PNG, JPEG, GIF...).
func SavePalette(colors []xcolor.Color, path string) error {
	img, err := RenderPalette(colors, defaultSwatchWidth, defaultSwatchHeight)
	if err != nil {
		return err
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save palette image: %w", err)
	}
	return nil
}
