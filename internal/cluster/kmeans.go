package cluster

import (
	"errors"
	"math"
	"math/rand"

	"github.com/marearts/xcolor/internal/accel"
)

// KMeansConfig tunes the k-means run.
type KMeansConfig struct {
	K             int     // number of clusters requested
	MaxIterations int     // Lloyd iteration cap; <= 0 means 30
	Tolerance     float64 // centroid shift below which the run converges; <= 0 means 0.01
	Seed          int64   // seed for k-means++ initialization
}

// ErrNoPoints is returned when clustering is asked to run on an empty set.
var ErrNoPoints = errors.New("no points to cluster")

// KMeans clusters weighted points with Lloyd's algorithm, seeded by
// k-means++. The nearest-centroid assignment step runs on the supplied
// backend. Returned clusters are sorted by descending weight.
//
// When K exceeds the number of distinct points, one cluster per point is
// returned.
func KMeans(points []Point, cfg KMeansConfig, backend accel.Backend) ([]Cluster, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	if cfg.K < 1 {
		return nil, errors.New("k must be >= 1")
	}

	k := cfg.K
	if k > len(points) {
		k = len(points)
	}
	maxIter := cfg.MaxIterations
	if maxIter <= 0 {
		maxIter = 30
	}
	tol := cfg.Tolerance
	if tol <= 0 {
		tol = 0.01
	}

	vals := make([][3]float64, len(points))
	for i, p := range points {
		vals[i] = p.V
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	centroids := seedPlusPlus(points, k, rng)

	var assignment []int
	for iter := 0; iter < maxIter; iter++ {
		assignment = backend.AssignPoints(vals, centroids)

		next := make([][3]float64, k)
		weights := make([]int, k)
		for i, p := range points {
			c := assignment[i]
			w := float64(p.Weight)
			next[c][0] += p.V[0] * w
			next[c][1] += p.V[1] * w
			next[c][2] += p.V[2] * w
			weights[c] += p.Weight
		}

		shift := 0.0
		for c := 0; c < k; c++ {
			if weights[c] == 0 {
				// Reseed an empty cluster at the point farthest from its
				// current centroid so every requested cluster survives.
				next[c] = farthestPoint(points, centroids, assignment)
				weights[c] = 0
			} else {
				w := float64(weights[c])
				next[c][0] /= w
				next[c][1] /= w
				next[c][2] /= w
			}
			if d := math.Sqrt(sqDist3(next[c], centroids[c])); d > shift {
				shift = d
			}
		}
		centroids = next

		if shift < tol {
			break
		}
	}

	// Final assignment against the converged centroids.
	assignment = backend.AssignPoints(vals, centroids)
	weights := make([]int, k)
	for i, p := range points {
		weights[assignment[i]] += p.Weight
	}

	clusters := make([]Cluster, 0, k)
	for c := 0; c < k; c++ {
		if weights[c] == 0 {
			continue
		}
		clusters = append(clusters, Cluster{Center: centroids[c], Weight: weights[c]})
	}
	sortClusters(clusters)
	return clusters, nil
}

// seedPlusPlus picks k initial centroids with the k-means++ strategy:
// the first is drawn weighted by pixel count, each subsequent centroid
// weighted by pixel count times squared distance to the nearest chosen one.
func seedPlusPlus(points []Point, k int, rng *rand.Rand) [][3]float64 {
	centroids := make([][3]float64, 0, k)
	centroids = append(centroids, points[weightedPick(points, nil, rng)].V)

	dists := make([]float64, len(points))
	for len(centroids) < k {
		for i, p := range points {
			d := sqDist3(p.V, centroids[0])
			for _, c := range centroids[1:] {
				if d2 := sqDist3(p.V, c); d2 < d {
					d = d2
				}
			}
			dists[i] = d
		}
		centroids = append(centroids, points[weightedPick(points, dists, rng)].V)
	}
	return centroids
}

// weightedPick draws a point index with probability proportional to
// weight (and, when dists is non-nil, weight * dists[i]).
func weightedPick(points []Point, dists []float64, rng *rand.Rand) int {
	total := 0.0
	for i, p := range points {
		w := float64(p.Weight)
		if dists != nil {
			w *= dists[i]
		}
		total += w
	}
	if total <= 0 {
		return rng.Intn(len(points))
	}

	target := rng.Float64() * total
	acc := 0.0
	for i, p := range points {
		w := float64(p.Weight)
		if dists != nil {
			w *= dists[i]
		}
		acc += w
		if acc >= target {
			return i
		}
	}
	return len(points) - 1
}

// farthestPoint finds the point with the greatest distance to its assigned
// centroid. Used to reseed clusters that lost all members.
func farthestPoint(points []Point, centroids [][3]float64, assignment []int) [3]float64 {
	best := points[0].V
	bestDist := -1.0
	for i, p := range points {
		if d := sqDist3(p.V, centroids[assignment[i]]); d > bestDist {
			bestDist = d
			best = p.V
		}
	}
	return best
}

func sqDist3(a, b [3]float64) float64 {
	d0 := a[0] - b[0]
	d1 := a[1] - b[1]
	d2 := a[2] - b[2]
	return d0*d0 + d1*d1 + d2*d2
}
