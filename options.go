package xcolor

import (
	"fmt"

	"github.com/marearts/xcolor/internal/accel"
	"github.com/marearts/xcolor/internal/imaging"
)

// Algorithm selects the clustering algorithm.
type Algorithm string

const (
	// AlgorithmKMeans partitions pixels into exactly NumColors clusters.
	// Predictable output size; the right default for palette extraction.
	AlgorithmKMeans Algorithm = "kmeans"

	// AlgorithmDBSCAN groups pixels by density and discards sparse noise.
	// Returns at most NumColors clusters; fewer when the image has fewer
	// dense color regions.
	AlgorithmDBSCAN Algorithm = "dbscan"
)

// ParseAlgorithm validates an algorithm name.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case AlgorithmKMeans, AlgorithmDBSCAN:
		return Algorithm(s), nil
	case "":
		return AlgorithmKMeans, nil
	default:
		return "", fmt.Errorf("unknown algorithm %q (valid: kmeans, dbscan)", s)
	}
}

// Quality selects the speed/fidelity trade-off. Higher tiers cluster more
// pixels: low caps the longest image side at 100 px, medium at 200,
// high at 400.
type Quality string

const (
	QualityLow    Quality = "low"
	QualityMedium Quality = "medium"
	QualityHigh   Quality = "high"
)

// GPUMode controls acceleration: "auto" uses a GPU when available and
// falls back to the parallel CPU backend, "never" always uses the CPU,
// "force" fails with ErrGPUUnavailable when no GPU is present.
type GPUMode string

const (
	GPUAuto  GPUMode = "auto"
	GPUNever GPUMode = "never"
	GPUForce GPUMode = "force"
)

// Options configures an Extractor.
type Options struct {
	// Algorithm is the clustering algorithm (default kmeans).
	Algorithm Algorithm

	// NumColors is the maximum palette size (default 5).
	NumColors int

	// Quality is the speed/fidelity tier (default medium).
	Quality Quality

	// Preprocess enables the denoise + CLAHE stages (default true).
	Preprocess bool

	// UseLab clusters in CIE-Lab space instead of raw RGB (default true).
	// Lab distances track perception, so clusters split where eyes see
	// different colors rather than where channel values happen to differ.
	UseLab bool

	// GPU is the acceleration mode (default auto).
	GPU GPUMode

	// MaxIterations caps k-means Lloyd iterations (default 30).
	MaxIterations int

	// Eps is the DBSCAN neighborhood radius. Zero picks a per-space
	// default: 10.0 in Lab units, 16.0 on the RGB 0-255 scale.
	Eps float64

	// MinPoints is the pixel weight a DBSCAN neighborhood needs to form a
	// cluster core (default 4).
	MinPoints int

	// Seed drives k-means++ initialization; runs with equal seeds and
	// inputs produce identical palettes.
	Seed int64
}

// DefaultOptions returns the standard configuration: 5 colors, k-means in
// Lab space, medium quality, preprocessing on.
func DefaultOptions() Options {
	return Options{
		Algorithm:     AlgorithmKMeans,
		NumColors:     5,
		Quality:       QualityMedium,
		Preprocess:    true,
		UseLab:        true,
		GPU:           GPUAuto,
		MaxIterations: 30,
		MinPoints:     4,
		Seed:          1,
	}
}

// FastOptions trades fidelity for speed: low quality tier, no
// preprocessing.
func FastOptions() Options {
	opts := DefaultOptions()
	opts.Quality = QualityLow
	opts.Preprocess = false
	return opts
}

// HighQualityOptions spends more pixels and iterations on the palette.
func HighQualityOptions() Options {
	opts := DefaultOptions()
	opts.Quality = QualityHigh
	opts.MaxIterations = 50
	return opts
}

// WithAlgorithm returns a copy with the clustering algorithm set.
func (o Options) WithAlgorithm(alg Algorithm) Options {
	o.Algorithm = alg
	return o
}

// WithNumColors returns a copy with the palette size set.
func (o Options) WithNumColors(n int) Options {
	o.NumColors = n
	return o
}

// WithQuality returns a copy with the quality tier set.
func (o Options) WithQuality(q Quality) Options {
	o.Quality = q
	return o
}

// WithoutPreprocessing returns a copy with denoise and CLAHE disabled.
func (o Options) WithoutPreprocessing() Options {
	o.Preprocess = false
	return o
}

// WithGPU returns a copy with the acceleration mode set.
func (o Options) WithGPU(mode GPUMode) Options {
	o.GPU = mode
	return o
}

// WithRGBSpace returns a copy that clusters in raw RGB instead of Lab.
func (o Options) WithRGBSpace() Options {
	o.UseLab = false
	return o
}

// WithSeed returns a copy with the k-means seed set.
func (o Options) WithSeed(seed int64) Options {
	o.Seed = seed
	return o
}

// validate checks the options and normalizes empty strings to defaults.
func (o *Options) validate() error {
	alg, err := ParseAlgorithm(string(o.Algorithm))
	if err != nil {
		return err
	}
	o.Algorithm = alg

	q, err := imaging.ParseQuality(string(o.Quality))
	if err != nil {
		return err
	}
	o.Quality = Quality(q)

	if _, err := accel.ParseMode(string(o.GPU)); err != nil {
		return err
	}
	if o.GPU == "" {
		o.GPU = GPUAuto
	}

	if o.NumColors < 1 {
		return fmt.Errorf("num colors must be >= 1, got %d", o.NumColors)
	}
	if o.Eps < 0 {
		return fmt.Errorf("eps must be >= 0, got %g", o.Eps)
	}
	return nil
}
