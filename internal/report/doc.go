// Package report serializes extraction results: per-image palette files,
// batch reports, k-means/DBSCAN comparison reports, CSS and SCSS palette
// exports, and rendered palette swatch images.
//
// JSON layouts are stable and intended for downstream tooling; field names
// use snake_case throughout.
package report
