package xcolor

import (
	"errors"
	"fmt"
	"image"

	"github.com/marearts/xcolor/internal/accel"
	"github.com/marearts/xcolor/internal/cluster"
	"github.com/marearts/xcolor/internal/colorspace"
	"github.com/marearts/xcolor/internal/imaging"
)

// ErrGPUUnavailable is returned when Options.GPU is "force" but the build
// has no GPU device.
var ErrGPUUnavailable = accel.ErrGPUUnavailable

// ErrEmptyMask is returned when a mask excludes every pixel.
var ErrEmptyMask = imaging.ErrEmptyMask

// ErrNoPixels is returned when an image contributes no opaque pixels to
// cluster (for example a fully transparent PNG).
var ErrNoPixels = errors.New("image has no pixels to analyze")

// Extractor extracts dominant color palettes from images. It is safe for
// concurrent use; the underlying image cache synchronizes access and the
// per-call pipeline is otherwise stateless.
type Extractor struct {
	opts  Options
	cache *imaging.Cache
}

// New creates an Extractor after validating the options.
func New(opts Options) (*Extractor, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return &Extractor{
		opts:  opts,
		cache: imaging.NewCache(),
	}, nil
}

// NewDefault creates an Extractor with DefaultOptions.
func NewDefault() *Extractor {
	ex, err := New(DefaultOptions())
	if err != nil {
		// DefaultOptions always validates.
		panic(err)
	}
	return ex
}

// Options returns a copy of the extractor's configuration.
func (e *Extractor) Options() Options { return e.opts }

// ClearCache drops all cached decoded images.
func (e *Extractor) ClearCache() { e.cache.Clear() }

// Extract loads an image file and returns its dominant colors, sorted by
// descending percentage.
func (e *Extractor) Extract(path string) ([]Color, error) {
	img, err := e.cache.Load(path)
	if err != nil {
		return nil, err
	}
	return e.ExtractImage(img)
}

// ExtractWithMask loads an image and a grayscale mask file and extracts
// colors only from the region the mask admits (mask value >= 128).
func (e *Extractor) ExtractWithMask(path, maskPath string) ([]Color, error) {
	img, err := e.cache.Load(path)
	if err != nil {
		return nil, err
	}
	maskImg, err := e.cache.Load(maskPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load mask: %w", err)
	}
	return e.ExtractImageMasked(img, maskImg)
}

// ExtractImage extracts dominant colors from an in-memory image.
func (e *Extractor) ExtractImage(img image.Image) ([]Color, error) {
	return e.extract(img, nil)
}

// ExtractImageMasked extracts dominant colors from an in-memory image,
// restricted to the region the mask image admits. The mask is resized to
// the working resolution automatically.
func (e *Extractor) ExtractImageMasked(img, maskImg image.Image) ([]Color, error) {
	if maskImg == nil {
		return e.extract(img, nil)
	}
	return e.extract(img, maskImg)
}

// extract runs the full pipeline: downsample, preprocess, mask, convert,
// cluster, aggregate.
func (e *Extractor) extract(src image.Image, maskImg image.Image) ([]Color, error) {
	q := imaging.Quality(e.opts.Quality)

	img := imaging.ResizeForQuality(src, q)
	if e.opts.Preprocess {
		img = imaging.Preprocess(img, q)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	var mask *imaging.Mask
	if maskImg != nil {
		var err error
		mask, err = imaging.NewMask(maskImg, w, h)
		if err != nil {
			return nil, err
		}
	}

	// Collect point-space values for every participating pixel.
	vals := make([][3]float64, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mask != nil && !mask.Keep(x, y) {
				continue
			}
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if a == 0 {
				continue
			}
			rgb := colorspace.RGB{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
			if e.opts.UseLab {
				vals = append(vals, rgb.ToLab())
			} else {
				vals = append(vals, rgb.ToFloat())
			}
		}
	}
	if len(vals) == 0 {
		return nil, ErrNoPixels
	}
	total := len(vals)

	points := cluster.BuildPoints(vals, e.quantizeStep())

	clusters, err := e.clusterPoints(points)
	if err != nil {
		return nil, err
	}

	colors := make([]Color, 0, len(clusters))
	for _, c := range clusters {
		var rgb colorspace.RGB
		if e.opts.UseLab {
			rgb = colorspace.FromLab(c.Center)
		} else {
			rgb = colorspace.FromFloat(c.Center)
		}
		colors = append(colors, Color{
			RGB:        [3]uint8(rgb),
			Hex:        rgb.Hex(),
			Percentage: float64(c.Weight) / float64(total) * 100.0,
		})
	}
	return colors, nil
}

// quantizeStep returns the pre-clustering bucket size for the active
// space. Lab units are perceptual, so a small step suffices; RGB needs a
// coarser one to get the same collapse ratio.
func (e *Extractor) quantizeStep() float64 {
	if e.opts.UseLab {
		return 2.0
	}
	return 8.0
}

// clusterPoints dispatches to the configured algorithm.
func (e *Extractor) clusterPoints(points []cluster.Point) ([]cluster.Cluster, error) {
	mode, _ := accel.ParseMode(string(e.opts.GPU))

	switch e.opts.Algorithm {
	case AlgorithmDBSCAN:
		// DBSCAN runs on quantized points; its grid index makes the
		// backend's assignment fan-out unnecessary, but the GPU contract
		// (force must fail without a device) still applies.
		if _, err := accel.Select(mode); err != nil {
			return nil, err
		}
		eps := e.opts.Eps
		if eps <= 0 {
			if e.opts.UseLab {
				eps = 10.0
			} else {
				eps = 16.0
			}
		}
		clusters, err := cluster.DBSCAN(points, cluster.DBSCANConfig{
			Eps:       eps,
			MinWeight: e.opts.MinPoints,
		})
		if err != nil {
			return nil, fmt.Errorf("dbscan clustering: %w", err)
		}
		if len(clusters) > e.opts.NumColors {
			clusters = clusters[:e.opts.NumColors]
		}
		return clusters, nil

	default: // AlgorithmKMeans
		backend, err := accel.Select(mode)
		if err != nil {
			return nil, err
		}
		clusters, err := cluster.KMeans(points, cluster.KMeansConfig{
			K:             e.opts.NumColors,
			MaxIterations: e.opts.MaxIterations,
			Seed:          e.opts.Seed,
		}, backend)
		if err != nil {
			return nil, fmt.Errorf("kmeans clustering: %w", err)
		}
		return clusters, nil
	}
}

// DeviceInfo describes the acceleration device available to this process.
type DeviceInfo struct {
	Available bool   `json:"available"` // true when a GPU device is present
	Backend   string `json:"backend"`   // "gpu" or "cpu"
	Device    string `json:"device"`    // human-readable device description
	Workers   int    `json:"workers"`   // parallelism of the CPU fallback
}

// GPUInfo reports the acceleration device this build can use.
func GPUInfo() DeviceInfo {
	info := accel.Info()
	return DeviceInfo{
		Available: info.Available,
		Backend:   info.Backend,
		Device:    info.Device,
		Workers:   info.Workers,
	}
}
