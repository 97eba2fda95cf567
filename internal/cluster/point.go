package cluster

import (
	"math"
	"sort"
)

// Point is a weighted sample in a 3-component color space.
type Point struct {
	V      [3]float64 // coordinates (Lab or RGB floats)
	Weight int        // number of pixels collapsed into this point
}

// Cluster is the result of grouping points: a center and the total pixel
// weight it represents.
type Cluster struct {
	Center [3]float64
	Weight int
}

// BuildPoints buckets raw triples at the given step per component and
// returns one weighted point per occupied bucket. The point coordinate is
// the mean of the bucket's members, not the bucket corner, so quantization
// does not bias cluster centers.
//
// Output order is deterministic (sorted by bucket key) so that seeded
// clustering runs reproduce exactly.
func BuildPoints(values [][3]float64, step float64) []Point {
	if step <= 0 {
		step = 1
	}

	type key [3]int32
	type accum struct {
		sum    [3]float64
		weight int
	}

	buckets := make(map[key]*accum)
	for _, v := range values {
		k := key{
			int32(math.Floor(v[0] / step)),
			int32(math.Floor(v[1] / step)),
			int32(math.Floor(v[2] / step)),
		}
		a, ok := buckets[k]
		if !ok {
			a = &accum{}
			buckets[k] = a
		}
		a.sum[0] += v[0]
		a.sum[1] += v[1]
		a.sum[2] += v[2]
		a.weight++
	}

	keys := make([]key, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		if a[1] != b[1] {
			return a[1] < b[1]
		}
		return a[2] < b[2]
	})

	points := make([]Point, 0, len(keys))
	for _, k := range keys {
		a := buckets[k]
		w := float64(a.weight)
		points = append(points, Point{
			V:      [3]float64{a.sum[0] / w, a.sum[1] / w, a.sum[2] / w},
			Weight: a.weight,
		})
	}
	return points
}

// totalWeight sums the pixel weight of a point set.
func totalWeight(points []Point) int {
	total := 0
	for _, p := range points {
		total += p.Weight
	}
	return total
}

// sortClusters orders clusters by descending weight, breaking ties by
// center to keep output stable.
func sortClusters(clusters []Cluster) {
	sort.Slice(clusters, func(i, j int) bool {
		if clusters[i].Weight != clusters[j].Weight {
			return clusters[i].Weight > clusters[j].Weight
		}
		a, b := clusters[i].Center, clusters[j].Center
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		if a[1] != b[1] {
			return a[1] < b[1]
		}
		return a[2] < b[2]
	})
}
