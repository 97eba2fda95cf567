package imaging

import (
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"

	"github.com/marearts/xcolor/internal/colorspace"
)

// Preprocessing constants. The CLAHE parameters follow the common
// contrast-enhancement recipe for color analysis: an 8x8 tile grid with a
// clip limit of 3.0, applied to the L channel only so chroma is untouched.
const (
	claheTilesX    = 8
	claheTilesY    = 8
	claheClipLimit = 3.0

	bilateralRadius     = 2    // 5x5 window
	bilateralSigmaSpace = 2.0  // spatial falloff in pixels
	bilateralSigmaRange = 25.0 // intensity falloff on the 0-255 scale
)

// Preprocess runs the denoise and local-contrast stages ahead of
// clustering. Denoising keeps sensor noise from seeding spurious clusters;
// CLAHE evens out lighting so shadowed regions contribute their true color.
//
// The low quality tier substitutes a cheap median filter for the bilateral
// filter; both preserve edges, which matters because a plain blur would
// invent blend colors along region boundaries.
func Preprocess(img image.Image, q Quality) image.Image {
	var denoised image.Image
	if q == QualityLow {
		denoised = effect.Median(img, 1.0)
	} else {
		denoised = bilateral(img, bilateralRadius, bilateralSigmaSpace, bilateralSigmaRange)
	}
	return clahe(denoised, claheTilesX, claheTilesY, claheClipLimit)
}

// bilateral applies an edge-preserving smoothing filter. Each output pixel
// is a weighted average of its window, where weights fall off with both
// spatial distance and luminance difference, so averaging never crosses a
// strong edge.
func bilateral(img image.Image, radius int, sigmaSpace, sigmaRange float64) image.Image {
	src := imaging.Clone(img)
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))

	// Luminance guide for the range weight (ITU-R BT.601).
	guide := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := src.NRGBAAt(x, y)
			guide[y*w+x] = 0.299*float64(p.R) + 0.587*float64(p.G) + 0.114*float64(p.B)
		}
	}

	// Spatial weights are fixed per offset; precompute the kernel.
	size := 2*radius + 1
	spatial := make([]float64, size*size)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			d2 := float64(dx*dx + dy*dy)
			spatial[(dy+radius)*size+(dx+radius)] = math.Exp(-d2 / (2 * sigmaSpace * sigmaSpace))
		}
	}
	rangeDenom := 2 * sigmaRange * sigmaRange

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			center := guide[y*w+x]
			var sumR, sumG, sumB, sumW float64

			for dy := -radius; dy <= radius; dy++ {
				py := clampInt(y+dy, 0, h-1)
				for dx := -radius; dx <= radius; dx++ {
					px := clampInt(x+dx, 0, w-1)
					diff := guide[py*w+px] - center
					weight := spatial[(dy+radius)*size+(dx+radius)] *
						math.Exp(-(diff*diff)/rangeDenom)

					p := src.NRGBAAt(px, py)
					sumR += weight * float64(p.R)
					sumG += weight * float64(p.G)
					sumB += weight * float64(p.B)
					sumW += weight
				}
			}

			orig := src.NRGBAAt(x, y)
			dst.SetNRGBA(x, y, toNRGBA(sumR/sumW, sumG/sumW, sumB/sumW, orig.A))
		}
	}
	return dst
}

// clahe performs contrast-limited adaptive histogram equalization on the
// L channel in Lab space. The image is divided into a tile grid; each tile
// gets its own clipped-histogram equalization mapping, and per-pixel
// results bilinearly interpolate between the four nearest tile mappings to
// avoid visible tile seams.
func clahe(img image.Image, tilesX, tilesY int, clipLimit float64) image.Image {
	src := imaging.Clone(img)
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	// Per-pixel Lab and the L channel binned to 0-255.
	labs := make([][3]float64, w*h)
	lbins := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := src.NRGBAAt(x, y)
			lab := colorspace.RGB{p.R, p.G, p.B}.ToLab()
			labs[y*w+x] = lab
			lbins[y*w+x] = uint8(clampInt(int(math.Round(lab[0]*255.0/100.0)), 0, 255))
		}
	}

	tileW := (w + tilesX - 1) / tilesX
	tileH := (h + tilesY - 1) / tilesY

	// One equalization mapping per tile.
	mappings := make([][256]uint8, tilesX*tilesY)
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			x0, y0 := tx*tileW, ty*tileH
			x1, y1 := minInt(x0+tileW, w), minInt(y0+tileH, h)

			var hist [256]int
			pixels := 0
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					hist[lbins[y*w+x]]++
					pixels++
				}
			}
			if pixels == 0 {
				continue
			}

			clipHistogram(&hist, pixels, clipLimit)

			var mapping [256]uint8
			cum := 0
			for i := 0; i < 256; i++ {
				cum += hist[i]
				mapping[i] = uint8(cum * 255 / pixels)
			}
			mappings[ty*tilesX+tx] = mapping
		}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		// Fractional tile position; tile centers anchor the interpolation.
		gy := (float64(y)+0.5)/float64(tileH) - 0.5
		ty0 := clampInt(int(math.Floor(gy)), 0, tilesY-1)
		ty1 := clampInt(ty0+1, 0, tilesY-1)
		fy := clampFloat(gy-float64(ty0), 0, 1)

		for x := 0; x < w; x++ {
			gx := (float64(x)+0.5)/float64(tileW) - 0.5
			tx0 := clampInt(int(math.Floor(gx)), 0, tilesX-1)
			tx1 := clampInt(tx0+1, 0, tilesX-1)
			fx := clampFloat(gx-float64(tx0), 0, 1)

			bin := lbins[y*w+x]
			v00 := float64(mappings[ty0*tilesX+tx0][bin])
			v01 := float64(mappings[ty0*tilesX+tx1][bin])
			v10 := float64(mappings[ty1*tilesX+tx0][bin])
			v11 := float64(mappings[ty1*tilesX+tx1][bin])
			top := v00*(1-fx) + v01*fx
			bottom := v10*(1-fx) + v11*fx
			newBin := top*(1-fy) + bottom*fy

			lab := labs[y*w+x]
			rgb := colorspace.FromLab([3]float64{newBin * 100.0 / 255.0, lab[1], lab[2]})
			a := src.NRGBAAt(x, y).A
			dst.SetNRGBA(x, y, toNRGBA(float64(rgb[0]), float64(rgb[1]), float64(rgb[2]), a))
		}
	}
	return dst
}

// clipHistogram caps each bin at the clip limit (scaled to the tile's
// pixel count) and redistributes the excess evenly, which is what bounds
// the contrast amplification in CLAHE.
func clipHistogram(hist *[256]int, pixels int, clipLimit float64) {
	limit := int(clipLimit * float64(pixels) / 256.0)
	if limit < 1 {
		limit = 1
	}

	excess := 0
	for i := 0; i < 256; i++ {
		if hist[i] > limit {
			excess += hist[i] - limit
			hist[i] = limit
		}
	}

	share := excess / 256
	remainder := excess % 256
	for i := 0; i < 256; i++ {
		hist[i] += share
		if i < remainder {
			hist[i]++
		}
	}
}

func toNRGBA(r, g, b float64, a uint8) color.NRGBA {
	return color.NRGBA{
		R: uint8(clampInt(int(math.Round(r)), 0, 255)),
		G: uint8(clampInt(int(math.Round(g)), 0, 255)),
		B: uint8(clampInt(int(math.Round(b)), 0, 255)),
		A: a,
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
