package main

import (
	"github.com/spf13/cobra"

	"github.com/marearts/xcolor"
)

// addExtractionFlags registers the flags shared by every command that runs
// the extraction pipeline.
func addExtractionFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("colors", "n", 5, "Number of colors to extract")
	cmd.Flags().String("algorithm", "kmeans", "Clustering algorithm (kmeans, dbscan)")
	cmd.Flags().String("quality", "medium", "Quality tier (low, medium, high)")
	cmd.Flags().String("gpu", "auto", "GPU mode (auto, never, force)")
	cmd.Flags().Bool("fast", false, "Skip preprocessing (denoise + CLAHE)")
	cmd.Flags().Bool("rgb", false, "Cluster in raw RGB instead of Lab space")
	cmd.Flags().Int64("seed", 1, "Seed for k-means initialization")
}

// optionsFromFlags builds extractor options from the shared flags. The
// options are validated by xcolor.New, not here.
func optionsFromFlags(cmd *cobra.Command) xcolor.Options {
	numColors, _ := cmd.Flags().GetInt("colors")
	algorithm, _ := cmd.Flags().GetString("algorithm")
	quality, _ := cmd.Flags().GetString("quality")
	gpu, _ := cmd.Flags().GetString("gpu")
	fast, _ := cmd.Flags().GetBool("fast")
	rgb, _ := cmd.Flags().GetBool("rgb")
	seed, _ := cmd.Flags().GetInt64("seed")

	opts := xcolor.DefaultOptions()
	opts.NumColors = numColors
	opts.Algorithm = xcolor.Algorithm(algorithm)
	opts.Quality = xcolor.Quality(quality)
	opts.GPU = xcolor.GPUMode(gpu)
	opts.Preprocess = !fast
	opts.UseLab = !rgb
	opts.Seed = seed
	return opts
}
