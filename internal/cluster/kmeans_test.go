package cluster

import (
	"math"
	"testing"

	"github.com/marearts/xcolor/internal/accel"
)

// testBackend returns the backend used by clustering tests.
func testBackend(t *testing.T) accel.Backend {
	t.Helper()
	backend, err := accel.Select(accel.Never)
	if err != nil {
		t.Fatalf("backend selection failed: %v", err)
	}
	return backend
}

// twoBlobs builds two well-separated weighted groups: a heavy one near
// (10,10,10) and a lighter one near (80,80,80).
func twoBlobs() []Point {
	return []Point{
		{V: [3]float64{9, 10, 10}, Weight: 30},
		{V: [3]float64{10, 11, 9}, Weight: 30},
		{V: [3]float64{11, 9, 11}, Weight: 20},
		{V: [3]float64{79, 80, 81}, Weight: 10},
		{V: [3]float64{81, 80, 79}, Weight: 10},
	}
}

func TestKMeans_TwoClusters(t *testing.T) {
	clusters, err := KMeans(twoBlobs(), KMeansConfig{K: 2, Seed: 1}, testBackend(t))
	if err != nil {
		t.Fatalf("KMeans failed: %v", err)
	}
	if len(clusters) != 2 {
		t.Fatalf("expected 2 clusters, got %d", len(clusters))
	}

	// Heaviest cluster first.
	if clusters[0].Weight != 80 || clusters[1].Weight != 20 {
		t.Errorf("weights: got %d/%d, want 80/20", clusters[0].Weight, clusters[1].Weight)
	}

	// Centers should land near the blob means.
	if d := dist3(clusters[0].Center, [3]float64{10, 10, 10}); d > 2 {
		t.Errorf("heavy center %v too far from blob mean", clusters[0].Center)
	}
	if d := dist3(clusters[1].Center, [3]float64{80, 80, 80}); d > 2 {
		t.Errorf("light center %v too far from blob mean", clusters[1].Center)
	}
}

func TestKMeans_Deterministic(t *testing.T) {
	cfg := KMeansConfig{K: 2, Seed: 42}

	first, err := KMeans(twoBlobs(), cfg, testBackend(t))
	if err != nil {
		t.Fatalf("KMeans failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := KMeans(twoBlobs(), cfg, testBackend(t))
		if err != nil {
			t.Fatalf("run %d failed: %v", i, err)
		}
		if len(again) != len(first) {
			t.Fatalf("run %d: cluster count changed", i)
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("run %d: cluster %d differs: %v vs %v", i, j, first[j], again[j])
			}
		}
	}
}

func TestKMeans_KExceedsPoints(t *testing.T) {
	points := []Point{
		{V: [3]float64{0, 0, 0}, Weight: 5},
		{V: [3]float64{100, 100, 100}, Weight: 5},
	}

	clusters, err := KMeans(points, KMeansConfig{K: 10, Seed: 1}, testBackend(t))
	if err != nil {
		t.Fatalf("KMeans failed: %v", err)
	}
	if len(clusters) != 2 {
		t.Errorf("expected one cluster per point, got %d", len(clusters))
	}
}

func TestKMeans_SinglePoint(t *testing.T) {
	points := []Point{{V: [3]float64{42, 0, 0}, Weight: 100}}

	clusters, err := KMeans(points, KMeansConfig{K: 3, Seed: 1}, testBackend(t))
	if err != nil {
		t.Fatalf("KMeans failed: %v", err)
	}
	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}
	if clusters[0].Weight != 100 {
		t.Errorf("weight: got %d, want 100", clusters[0].Weight)
	}
}

func TestKMeans_Errors(t *testing.T) {
	backend := testBackend(t)

	if _, err := KMeans(nil, KMeansConfig{K: 2}, backend); err == nil {
		t.Error("expected error for empty point set")
	}
	points := []Point{{V: [3]float64{1, 1, 1}, Weight: 1}}
	if _, err := KMeans(points, KMeansConfig{K: 0}, backend); err == nil {
		t.Error("expected error for k < 1")
	}
}

func dist3(a, b [3]float64) float64 {
	return math.Sqrt(sqDist3(a, b))
}
