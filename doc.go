// Package xcolor extracts dominant colors from images.
//
// The extraction pipeline loads an image, optionally downsamples and
// preprocesses it (edge-preserving denoise plus CLAHE local contrast),
// converts pixels to a perceptual color space, clusters them with k-means
// or DBSCAN, and returns an ordered palette of color records carrying an
// RGB triple, a hex string, and the percentage of analyzed pixels each
// color covers.
//
// # Basic usage
//
//	ex, err := xcolor.New(xcolor.DefaultOptions().WithNumColors(5))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	colors, err := ex.Extract("photo.jpg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, c := range colors {
//	    fmt.Printf("%s  %.1f%%\n", c.Hex, c.Percentage)
//	}
//
// # Masks
//
// ExtractWithMask restricts extraction to the region a grayscale mask
// admits: mask pixels at or above 128 keep the corresponding image pixel,
// darker pixels exclude it.
//
// # GPU modes
//
// Options.GPU follows the auto/never/force contract. This build carries no
// GPU binding, so "auto" resolves to a multi-goroutine CPU backend and
// "force" fails with ErrGPUUnavailable. Call GPUInfo to inspect the device
// selection at runtime.
package xcolor
