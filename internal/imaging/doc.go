// Package imaging implements the image-handling half of the extraction
// pipeline: cached loading, quality-tier downsampling, mask application,
// and the preprocessing stages (denoise and CLAHE local contrast).
//
// # Pipeline order
//
// The extractor applies stages in a fixed order:
//
//  1. Load (cached, PNG/JPEG/GIF)
//  2. Downsample to the quality tier's maximum side
//  3. Optional preprocessing: edge-preserving denoise, then CLAHE on the
//     L channel in Lab space
//  4. Mask application (pixels where the mask is darker than 128 are
//     excluded from clustering)
//
// # Thread safety
//
// Cache is safe for concurrent use. The stateless functions in this
// package can be called concurrently on different images.
package imaging
