package accel

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Mode controls how a compute backend is chosen.
type Mode int

const (
	// Auto uses a GPU when available and falls back to the CPU backend.
	Auto Mode = iota

	// Never always uses the CPU backend.
	Never

	// Force requires a GPU; backend selection fails when none is present.
	Force
)

// ErrGPUUnavailable is returned by Select when Force is requested but no
// GPU device is present in this build.
var ErrGPUUnavailable = errors.New("gpu acceleration forced but no gpu device is available")

// ParseMode parses a mode string ("auto", "never", "force").
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return Auto, nil
	case "never":
		return Never, nil
	case "force":
		return Force, nil
	default:
		return Auto, fmt.Errorf("unknown gpu mode %q (valid: auto, never, force)", s)
	}
}

// String returns the canonical name of the mode.
func (m Mode) String() string {
	switch m {
	case Never:
		return "never"
	case Force:
		return "force"
	default:
		return "auto"
	}
}

// DeviceInfo describes the acceleration device available to this process.
type DeviceInfo struct {
	Available bool   `json:"available"` // true when a GPU device is present
	Backend   string `json:"backend"`   // "gpu" or "cpu"
	Device    string `json:"device"`    // human-readable device description
	Workers   int    `json:"workers"`   // parallelism of the CPU fallback
}

// Info reports the acceleration device for this build. Without a GPU
// binding compiled in, the device is always the parallel CPU backend.
func Info() DeviceInfo {
	n := runtime.NumCPU()
	return DeviceInfo{
		Available: false,
		Backend:   "cpu",
		Device:    fmt.Sprintf("cpu (%d hardware threads)", n),
		Workers:   n,
	}
}

// Backend executes the nearest-centroid assignment step of clustering.
//
// Implementations must be safe for reuse across calls but are not required
// to be safe for concurrent calls on the same value.
type Backend interface {
	// Name identifies the backend ("cpu", "cpu-serial").
	Name() string

	// AssignPoints returns, for every point, the index of the nearest
	// centroid by squared Euclidean distance. len(result) == len(points).
	AssignPoints(points, centroids [][3]float64) []int
}

// Select resolves a Mode to a concrete backend.
func Select(mode Mode) (Backend, error) {
	info := Info()
	switch mode {
	case Force:
		if !info.Available {
			return nil, ErrGPUUnavailable
		}
		// Unreachable in this build; kept for the gpu-enabled variant.
		return newParallelBackend(info.Workers), nil
	case Never:
		return newParallelBackend(info.Workers), nil
	default: // Auto
		return newParallelBackend(info.Workers), nil
	}
}

// serialBackend assigns points on the calling goroutine. Used directly for
// small point sets where goroutine fan-out costs more than it saves.
type serialBackend struct{}

func (serialBackend) Name() string { return "cpu-serial" }

func (serialBackend) AssignPoints(points, centroids [][3]float64) []int {
	out := make([]int, len(points))
	for i, p := range points {
		out[i] = nearest(p, centroids)
	}
	return out
}

// nearest returns the index of the centroid closest to p.
func nearest(p [3]float64, centroids [][3]float64) int {
	best := 0
	bestDist := sqDist(p, centroids[0])
	for j := 1; j < len(centroids); j++ {
		if d := sqDist(p, centroids[j]); d < bestDist {
			best = j
			bestDist = d
		}
	}
	return best
}

func sqDist(a, b [3]float64) float64 {
	d0 := a[0] - b[0]
	d1 := a[1] - b[1]
	d2 := a[2] - b[2]
	return d0*d0 + d1*d1 + d2*d2
}
