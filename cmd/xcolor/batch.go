package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/marearts/xcolor"
	"github.com/marearts/xcolor/internal/batch"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Extract colors from every image in a directory",
	Long: `Processes every JPEG, PNG, and GIF in the input directory (skipping
mask files), writing one "<name>_palette.json" per image plus an aggregate
batch_report.json to the output directory.`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringP("input-dir", "d", "", "Directory of images to process")
	batchCmd.Flags().StringP("output-dir", "o", "", "Directory for palette files and the batch report")
	batchCmd.Flags().Int("workers", 0, "Worker count (0 = number of CPUs)")
	addExtractionFlags(batchCmd)
	batchCmd.MarkFlagRequired("input-dir")
	batchCmd.MarkFlagRequired("output-dir")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	inputDir, _ := cmd.Flags().GetString("input-dir")
	outputDir, _ := cmd.Flags().GetString("output-dir")
	workers, _ := cmd.Flags().GetInt("workers")

	ex, err := xcolor.New(optionsFromFlags(cmd))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := batch.New(ex, workers, log)
	rep, err := runner.Run(ctx, inputDir, outputDir)
	if err != nil {
		return fmt.Errorf("batch run: %w", err)
	}

	failed := 0
	for _, r := range rep.Results {
		if r.Error != "" {
			failed++
		}
	}
	fmt.Printf("Processed %d images (%d failed)\n", rep.TotalProcessed, failed)
	fmt.Printf("Report: %s/%s\n", outputDir, batch.ReportFilename)
	return nil
}
