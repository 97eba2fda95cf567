package cluster

import (
	"errors"
	"math"
)

// DBSCANConfig tunes the density-based run.
type DBSCANConfig struct {
	Eps       float64 // neighborhood radius in point-space units
	MinWeight int     // minimum pixel weight in a neighborhood for a core point; <= 0 means 4
}

// DBSCAN groups weighted points by density. Points whose eps-neighborhood
// carries at least MinWeight pixels are core points; clusters grow from
// core points through density reachability. Points reachable from no core
// point are noise and appear in no cluster.
//
// Cluster centers are the weighted mean of their members. Returned
// clusters are sorted by descending weight; the caller truncates to the
// number of colors requested.
func DBSCAN(points []Point, cfg DBSCANConfig) ([]Cluster, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	if cfg.Eps <= 0 {
		return nil, errors.New("eps must be > 0")
	}
	minWeight := cfg.MinWeight
	if minWeight <= 0 {
		minWeight = 4
	}

	idx := newGridIndex(points, cfg.Eps)

	const (
		unvisited = -2
		noise     = -1
	)
	labels := make([]int, len(points))
	for i := range labels {
		labels[i] = unvisited
	}

	clusterID := 0
	for i := range points {
		if labels[i] != unvisited {
			continue
		}

		neighbors := idx.query(i)
		if neighborWeight(points, neighbors) < minWeight {
			labels[i] = noise
			continue
		}

		labels[i] = clusterID
		// Expand: classic seed-set walk. Noise points reachable from a
		// core point get adopted as border points.
		queue := append([]int(nil), neighbors...)
		for qi := 0; qi < len(queue); qi++ {
			j := queue[qi]
			if labels[j] == noise {
				labels[j] = clusterID
			}
			if labels[j] != unvisited {
				continue
			}
			labels[j] = clusterID

			jn := idx.query(j)
			if neighborWeight(points, jn) >= minWeight {
				queue = append(queue, jn...)
			}
		}
		clusterID++
	}

	if clusterID == 0 {
		return nil, nil
	}

	sums := make([][3]float64, clusterID)
	weights := make([]int, clusterID)
	for i, p := range points {
		c := labels[i]
		if c < 0 {
			continue
		}
		w := float64(p.Weight)
		sums[c][0] += p.V[0] * w
		sums[c][1] += p.V[1] * w
		sums[c][2] += p.V[2] * w
		weights[c] += p.Weight
	}

	clusters := make([]Cluster, 0, clusterID)
	for c := 0; c < clusterID; c++ {
		if weights[c] == 0 {
			continue
		}
		w := float64(weights[c])
		clusters = append(clusters, Cluster{
			Center: [3]float64{sums[c][0] / w, sums[c][1] / w, sums[c][2] / w},
			Weight: weights[c],
		})
	}
	sortClusters(clusters)
	return clusters, nil
}

// neighborWeight sums pixel weight over a neighbor index list.
func neighborWeight(points []Point, neighbors []int) int {
	total := 0
	for _, j := range neighbors {
		total += points[j].Weight
	}
	return total
}

// gridIndex buckets points into eps-sized cells so that a neighborhood
// query only inspects the 27 surrounding cells instead of every point.
type gridIndex struct {
	points []Point
	eps    float64
	epsSq  float64
	cells  map[[3]int32][]int
}

func newGridIndex(points []Point, eps float64) *gridIndex {
	g := &gridIndex{
		points: points,
		eps:    eps,
		epsSq:  eps * eps,
		cells:  make(map[[3]int32][]int),
	}
	for i, p := range points {
		k := g.cellOf(p.V)
		g.cells[k] = append(g.cells[k], i)
	}
	return g
}

func (g *gridIndex) cellOf(v [3]float64) [3]int32 {
	return [3]int32{
		int32(math.Floor(v[0] / g.eps)),
		int32(math.Floor(v[1] / g.eps)),
		int32(math.Floor(v[2] / g.eps)),
	}
}

// query returns the indices of every point within eps of point i,
// including i itself.
func (g *gridIndex) query(i int) []int {
	center := g.points[i].V
	cell := g.cellOf(center)

	var out []int
	for dx := int32(-1); dx <= 1; dx++ {
		for dy := int32(-1); dy <= 1; dy++ {
			for dz := int32(-1); dz <= 1; dz++ {
				k := [3]int32{cell[0] + dx, cell[1] + dy, cell[2] + dz}
				for _, j := range g.cells[k] {
					if sqDist3(center, g.points[j].V) <= g.epsSq {
						out = append(out, j)
					}
				}
			}
		}
	}
	return out
}
