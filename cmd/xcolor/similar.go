package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marearts/xcolor"
	"github.com/marearts/xcolor/internal/report"
)

var similarCmd = &cobra.Command{
	Use:   "similar",
	Short: "Find extracted colors similar to a target color",
	Long: `Extracts the dominant colors of an image, then filters them down to
those within a Delta-E threshold of the target color. Useful for checking
whether a brand color appears in an image.`,
	RunE: runSimilar,
}

func init() {
	similarCmd.Flags().StringP("input", "i", "", "Input image file")
	similarCmd.Flags().String("target", "", "Target color as #rrggbb")
	similarCmd.Flags().Float64("threshold", 50.0, "Maximum Delta-E distance")
	similarCmd.Flags().StringP("output", "o", "", "Output JSON file (default: print to stdout)")
	addExtractionFlags(similarCmd)
	similarCmd.MarkFlagRequired("input")
	similarCmd.MarkFlagRequired("target")
	rootCmd.AddCommand(similarCmd)
}

func runSimilar(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	targetHex, _ := cmd.Flags().GetString("target")
	threshold, _ := cmd.Flags().GetFloat64("threshold")
	outputPath, _ := cmd.Flags().GetString("output")

	target, err := xcolor.ParseHex(targetHex)
	if err != nil {
		return err
	}

	ex, err := xcolor.New(optionsFromFlags(cmd))
	if err != nil {
		return err
	}

	colors, err := ex.Extract(inputPath)
	if err != nil {
		return fmt.Errorf("extraction: %w", err)
	}

	matches := xcolor.FindSimilar(colors, target, threshold)

	if outputPath != "" {
		return report.WriteJSON(outputPath, matches)
	}

	if len(matches) == 0 {
		fmt.Printf("No colors within Delta-E %.1f of %s\n", threshold, targetHex)
		return nil
	}
	for _, m := range matches {
		fmt.Printf("%s  %.1f%%  distance %.2f\n", m.Hex, m.Percentage, m.Distance)
	}
	return nil
}
