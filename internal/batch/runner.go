package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/marearts/xcolor"
	"github.com/marearts/xcolor/internal/accel"
	"github.com/marearts/xcolor/internal/report"
)

// ReportFilename is the aggregate report written to the output directory.
const ReportFilename = "batch_report.json"

// Runner processes a directory of images through a shared extractor.
type Runner struct {
	extractor *xcolor.Extractor
	workers   int
	log       *logrus.Logger
}

// New creates a Runner. workers <= 0 sizes the pool to the CPU count;
// a nil logger discards output.
func New(extractor *xcolor.Extractor, workers int, log *logrus.Logger) *Runner {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Runner{extractor: extractor, workers: workers, log: log}
}

// Run extracts colors from every image in inputDir, writes
// "<stem>_palette.json" per image and an aggregate report to outputDir,
// and returns the report. Context cancellation stops scheduling new
// images; in-flight images finish.
func (r *Runner) Run(ctx context.Context, inputDir, outputDir string) (*report.BatchReport, error) {
	files, err := listImages(inputDir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no images found in %s", inputDir)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	pool := accel.NewPool(r.workers)
	defer pool.Close()

	var mu sync.Mutex
	results := make([]report.ImageResult, 0, len(files))

	for _, name := range files {
		if ctx.Err() != nil {
			break
		}
		name := name
		pool.Submit(func() {
			if ctx.Err() != nil {
				return
			}
			res := r.processOne(inputDir, outputDir, name)
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
		})
	}
	pool.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Pool completion order is arbitrary; report order should not be.
	sort.Slice(results, func(i, j int) bool {
		return results[i].Filename < results[j].Filename
	})

	rep := &report.BatchReport{
		Config: report.BatchConfig{
			InputDir:  inputDir,
			OutputDir: outputDir,
			Settings:  report.SettingsFromOptions(r.extractor.Options()),
		},
		TotalProcessed: len(results),
		Results:        results,
	}
	if err := report.WriteJSON(filepath.Join(outputDir, ReportFilename), rep); err != nil {
		return nil, err
	}

	r.log.WithFields(logrus.Fields{
		"images": len(results),
		"output": outputDir,
	}).Info("batch run complete")

	return rep, nil
}

// processOne extracts a single image and writes its palette file.
func (r *Runner) processOne(inputDir, outputDir, name string) report.ImageResult {
	res := report.ImageResult{
		Filename:  name,
		Timestamp: time.Now().Format(time.RFC3339),
	}

	colors, err := r.extractor.Extract(filepath.Join(inputDir, name))
	if err != nil {
		res.Error = err.Error()
		r.log.WithError(err).WithField("image", name).Warn("extraction failed")
		return res
	}
	res.Colors = colors

	stem := strings.TrimSuffix(name, filepath.Ext(name))
	palettePath := filepath.Join(outputDir, stem+"_palette.json")
	if err := report.WriteJSON(palettePath, colors); err != nil {
		res.Error = err.Error()
		r.log.WithError(err).WithField("image", name).Warn("palette write failed")
		return res
	}

	r.log.WithFields(logrus.Fields{
		"image":  name,
		"colors": len(colors),
	}).Debug("image processed")
	return res
}

// listImages returns the processable image filenames in dir, sorted.
// Mask files (any name containing "mask") are skipped.
func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		lower := strings.ToLower(name)
		if strings.Contains(lower, "mask") {
			continue
		}
		switch filepath.Ext(lower) {
		case ".jpg", ".jpeg", ".png", ".gif":
			files = append(files, name)
		}
	}
	sort.Strings(files)
	return files, nil
}
