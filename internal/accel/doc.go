// Package accel selects the compute backend used for the hot loops of
// clustering and batch processing.
//
// The public contract mirrors the three GPU modes exposed by the extractor:
//
//   - auto: use a GPU device when one is available, otherwise fall back to
//     the multi-goroutine CPU backend.
//   - never: always use the CPU backend.
//   - force: require a GPU device; selection fails with ErrGPUUnavailable
//     when none is present.
//
// This build carries no GPU binding, so Info() always reports the device as
// unavailable and "auto" resolves to the CPU backend, which spreads nearest
// centroid assignment across runtime.NumCPU() workers.
package accel
