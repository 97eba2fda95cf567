package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marearts/xcolor"
	"github.com/marearts/xcolor/internal/report"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract dominant colors from an image",
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringP("input", "i", "", "Input image file")
	extractCmd.Flags().String("mask", "", "Grayscale mask image (pixels >= 128 are analyzed)")
	extractCmd.Flags().StringP("output", "o", "", "Output file (default: print to stdout)")
	extractCmd.Flags().String("format", "json", "Output format for -o (json, css, scss)")
	extractCmd.Flags().String("palette", "", "Also render the palette as a swatch image (PNG)")
	addExtractionFlags(extractCmd)
	extractCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	maskPath, _ := cmd.Flags().GetString("mask")
	outputPath, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	palettePath, _ := cmd.Flags().GetString("palette")

	ex, err := xcolor.New(optionsFromFlags(cmd))
	if err != nil {
		return err
	}

	var colors []xcolor.Color
	if maskPath != "" {
		colors, err = ex.ExtractWithMask(inputPath, maskPath)
	} else {
		colors, err = ex.Extract(inputPath)
	}
	if err != nil {
		return fmt.Errorf("extraction: %w", err)
	}

	if palettePath != "" {
		if err := report.SavePalette(colors, palettePath); err != nil {
			return err
		}
		log.WithField("path", palettePath).Info("palette image written")
	}

	if outputPath == "" {
		printColors(colors)
		return nil
	}

	switch format {
	case "json":
		if err := report.WriteJSON(outputPath, colors); err != nil {
			return err
		}
	case "css":
		if err := os.WriteFile(outputPath, []byte(report.CSS(colors)), 0o644); err != nil {
			return fmt.Errorf("writing css: %w", err)
		}
	case "scss":
		if err := os.WriteFile(outputPath, []byte(report.SCSS(colors)), 0o644); err != nil {
			return fmt.Errorf("writing scss: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q (valid: json, css, scss)", format)
	}

	log.WithField("path", outputPath).Info("palette written")
	return nil
}

// printColors writes a human-readable palette listing to stdout.
func printColors(colors []xcolor.Color) {
	for i, c := range colors {
		fmt.Printf("Color %d: %s  rgb(%d, %d, %d)  %.2f%%\n",
			i+1, c.Hex, c.RGB[0], c.RGB[1], c.RGB[2], c.Percentage)
	}
}
