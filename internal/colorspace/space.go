package colorspace

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit sRGB triple in R, G, B order.
type RGB [3]uint8

// Hex formats the color as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}

// ParseHex parses a "#rrggbb" (or "#rgb") string into an RGB triple.
func ParseHex(s string) (RGB, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := col.RGB255()
	return RGB{r, g, b}, nil
}

// toColorful converts an 8-bit triple to a normalized colorful.Color.
func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c[0]) / 255.0,
		G: float64(c[1]) / 255.0,
		B: float64(c[2]) / 255.0,
	}
}

// ToLab converts the color to CIE-L*a*b* on the classic scale
// (L* 0-100, a*/b* approximately -128..128, D65 white point).
func (c RGB) ToLab() [3]float64 {
	l, a, b := toColorful(c).Lab()
	return [3]float64{l * 100.0, a * 100.0, b * 100.0}
}

// FromLab converts a classic-scale Lab triple back to 8-bit sRGB.
// Out-of-gamut values are clamped to the nearest representable color.
func FromLab(lab [3]float64) RGB {
	col := colorful.Lab(lab[0]/100.0, lab[1]/100.0, lab[2]/100.0).Clamped()
	r, g, b := col.RGB255()
	return RGB{r, g, b}
}

// ToFloat returns the color as a float triple on the 0-255 scale.
// Used when clustering directly in RGB space.
func (c RGB) ToFloat() [3]float64 {
	return [3]float64{float64(c[0]), float64(c[1]), float64(c[2])}
}

// FromFloat converts a 0-255 scale float triple back to 8-bit sRGB,
// rounding and clamping each component.
func FromFloat(v [3]float64) RGB {
	var c RGB
	for i := 0; i < 3; i++ {
		x := math.Round(v[i])
		if x < 0 {
			x = 0
		}
		if x > 255 {
			x = 255
		}
		c[i] = uint8(x)
	}
	return c
}

// DeltaE76 returns the CIE76 color difference: Euclidean distance in
// classic-scale Lab space. Fast and adequate for similarity thresholds.
func DeltaE76(a, b RGB) float64 {
	la := a.ToLab()
	lb := b.ToLab()
	dl := la[0] - lb[0]
	da := la[1] - lb[1]
	db := la[2] - lb[2]
	return math.Sqrt(dl*dl + da*da + db*db)
}

// DeltaE2000 returns the CIEDE2000 color difference, which corrects the
// perceptual non-uniformities of CIE76 at a higher computational cost.
func DeltaE2000(a, b RGB) float64 {
	return toColorful(a).DistanceCIEDE2000(toColorful(b))
}
