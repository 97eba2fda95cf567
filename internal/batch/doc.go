// Package batch runs color extraction over every image in a directory on
// a worker pool, writing one palette JSON per image plus an aggregate
// batch_report.json.
//
// Files named like masks (any filename containing "mask") are skipped, so
// a directory holding images next to their mask files processes cleanly.
// Per-image failures are logged and recorded in the report rather than
// aborting the run.
package batch
