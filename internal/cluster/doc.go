// Package cluster implements the clustering algorithms behind dominant
// color extraction: weighted k-means (with k-means++ seeding) and a
// grid-indexed DBSCAN.
//
// Both algorithms operate on weighted points rather than raw pixels.
// Pixels are first bucketed into weighted points by BuildPoints, which
// collapses near-identical colors and keeps the working set small enough
// that even DBSCAN's neighborhood queries stay cheap on large images.
//
// The point space is whatever the caller provides: classic-scale Lab
// triples when perceptual clustering is requested, or 0-255 RGB floats.
package cluster
