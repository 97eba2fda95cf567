// Package colorspace provides the color math used by the extraction
// pipeline: conversions between 8-bit sRGB and CIE-L*a*b*, hex formatting,
// and perceptual color difference (Delta-E) metrics.
//
// # Scales
//
// Lab triples use the classic scale throughout this module: L* in [0, 100]
// and a*/b* roughly in [-128, 128]. This keeps Delta-E values on the scale
// practitioners expect (a Delta-E of ~2.3 is a just-noticeable difference,
// values above ~50 are clearly different colors).
//
// Conversions are backed by github.com/lucasb-eyer/go-colorful, which works
// on a normalized 0-1 scale internally; this package handles the scaling.
package colorspace
