package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marearts/xcolor"
	"github.com/marearts/xcolor/internal/report"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare k-means and DBSCAN palettes for one image",
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().StringP("input", "i", "", "Input image file")
	compareCmd.Flags().StringP("output", "o", "", "Output JSON file (default: print to stdout)")
	addExtractionFlags(compareCmd)
	compareCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")

	base := optionsFromFlags(cmd)

	kmEx, err := xcolor.New(base.WithAlgorithm(xcolor.AlgorithmKMeans))
	if err != nil {
		return err
	}
	dbEx, err := xcolor.New(base.WithAlgorithm(xcolor.AlgorithmDBSCAN))
	if err != nil {
		return err
	}

	kmColors, err := kmEx.Extract(inputPath)
	if err != nil {
		return fmt.Errorf("kmeans extraction: %w", err)
	}
	dbColors, err := dbEx.Extract(inputPath)
	if err != nil {
		return fmt.Errorf("dbscan extraction: %w", err)
	}

	comparison := report.Compare(inputPath, kmColors, dbColors)

	if outputPath != "" {
		return report.WriteJSON(outputPath, comparison)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(comparison)
}
