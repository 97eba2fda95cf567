package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/marearts/xcolor"
)

// Settings records the extraction configuration used for a run.
type Settings struct {
	NumColors     int    `json:"n_colors"`
	Algorithm     string `json:"algorithm"`
	Quality       string `json:"quality"`
	Preprocessing bool   `json:"preprocessing"`
	UseLab        bool   `json:"use_lab_space"`
	GPUMode       string `json:"gpu_mode"`
}

// SettingsFromOptions converts extractor options into report settings.
func SettingsFromOptions(opts xcolor.Options) Settings {
	return Settings{
		NumColors:     opts.NumColors,
		Algorithm:     string(opts.Algorithm),
		Quality:       string(opts.Quality),
		Preprocessing: opts.Preprocess,
		UseLab:        opts.UseLab,
		GPUMode:       string(opts.GPU),
	}
}

// BatchConfig describes a batch run's directories and settings.
type BatchConfig struct {
	InputDir  string   `json:"input_dir"`
	OutputDir string   `json:"output_dir"`
	Settings  Settings `json:"settings"`
}

// ImageResult is one image's outcome within a batch run.
type ImageResult struct {
	Filename  string         `json:"filename"`
	Colors    []xcolor.Color `json:"colors,omitempty"`
	Timestamp string         `json:"timestamp"`
	Error     string         `json:"error,omitempty"`
}

// BatchReport aggregates a full batch run.
type BatchReport struct {
	Config         BatchConfig   `json:"config"`
	TotalProcessed int           `json:"total_processed"`
	Results        []ImageResult `json:"results"`
}

// WriteJSON marshals v with two-space indentation to path.
func WriteJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// MethodAnalysis summarizes one algorithm's result in a comparison report.
type MethodAnalysis struct {
	Colors           []xcolor.Color `json:"colors"`
	DominantColor    *xcolor.Color  `json:"dominant_color"`
	PaletteDiversity int            `json:"palette_diversity"`
}

// ComparisonStats are the cross-method statistics of a comparison report.
type ComparisonStats struct {
	TotalColorsFound int      `json:"total_colors_found"`
	CommonColors     []string `json:"common_colors"`
}

// Comparison is a side-by-side k-means vs DBSCAN analysis of one image.
type Comparison struct {
	Image      string                    `json:"image"`
	Timestamp  string                    `json:"timestamp"`
	Analysis   map[string]MethodAnalysis `json:"analysis"`
	Statistics ComparisonStats           `json:"statistics"`
}

// Compare builds a comparison report from the palettes two algorithms
// produced for the same image.
func Compare(image string, kmeansColors, dbscanColors []xcolor.Color) *Comparison {
	kmHexes := hexSet(kmeansColors)
	dbHexes := hexSet(dbscanColors)

	union := make(map[string]struct{}, len(kmHexes)+len(dbHexes))
	common := make([]string, 0)
	for hex := range kmHexes {
		union[hex] = struct{}{}
		if _, ok := dbHexes[hex]; ok {
			common = append(common, hex)
		}
	}
	for hex := range dbHexes {
		union[hex] = struct{}{}
	}

	return &Comparison{
		Image:     image,
		Timestamp: time.Now().Format(time.RFC3339),
		Analysis: map[string]MethodAnalysis{
			"kmeans": methodAnalysis(kmeansColors),
			"dbscan": methodAnalysis(dbscanColors),
		},
		Statistics: ComparisonStats{
			TotalColorsFound: len(union),
			CommonColors:     common,
		},
	}
}

func methodAnalysis(colors []xcolor.Color) MethodAnalysis {
	analysis := MethodAnalysis{
		Colors:           colors,
		PaletteDiversity: len(hexSet(colors)),
	}
	if len(colors) > 0 {
		dominant := colors[0]
		analysis.DominantColor = &dominant
	}
	return analysis
}

func hexSet(colors []xcolor.Color) map[string]struct{} {
	set := make(map[string]struct{}, len(colors))
	for _, c := range colors {
		set[c.Hex] = struct{}{}
	}
	return set
}
