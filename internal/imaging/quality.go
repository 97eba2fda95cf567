package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Quality selects the speed/fidelity trade-off for extraction. Each tier
// caps the longest image side before clustering; dominant colors survive
// downsampling almost untouched while the pixel count drops quadratically.
type Quality string

const (
	QualityLow    Quality = "low"    // max side 100 px
	QualityMedium Quality = "medium" // max side 200 px
	QualityHigh   Quality = "high"   // max side 400 px
)

// maxSide returns the pixel cap for the tier's longest image side.
func (q Quality) maxSide() int {
	switch q {
	case QualityLow:
		return 100
	case QualityHigh:
		return 400
	default:
		return 200
	}
}

// ParseQuality validates a quality string.
func ParseQuality(s string) (Quality, error) {
	switch Quality(s) {
	case QualityLow, QualityMedium, QualityHigh:
		return Quality(s), nil
	case "":
		return QualityMedium, nil
	default:
		return "", fmt.Errorf("unknown quality %q (valid: low, medium, high)", s)
	}
}

// ResizeForQuality downsamples the image so its longest side does not
// exceed the tier's cap. Images already within the cap are returned as-is.
func ResizeForQuality(img image.Image, q Quality) image.Image {
	max := q.maxSide()
	b := img.Bounds()
	if b.Dx() <= max && b.Dy() <= max {
		return img
	}
	return imaging.Fit(img, max, max, imaging.Lanczos)
}
