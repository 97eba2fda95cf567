package cluster

import (
	"testing"
)

func TestBuildPoints_CollapsesIdenticalValues(t *testing.T) {
	values := [][3]float64{
		{10, 10, 10},
		{10, 10, 10},
		{10, 10, 10},
		{50, 50, 50},
	}

	points := BuildPoints(values, 4.0)
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if totalWeight(points) != 4 {
		t.Errorf("total weight: got %d, want 4", totalWeight(points))
	}
}

func TestBuildPoints_CenterIsBucketMean(t *testing.T) {
	// Two values in the same bucket; the point should sit at their mean,
	// not at the bucket corner.
	values := [][3]float64{
		{10, 0, 0},
		{12, 0, 0},
	}

	points := BuildPoints(values, 8.0)
	if len(points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(points))
	}
	if points[0].V[0] != 11 {
		t.Errorf("bucket mean: got %f, want 11", points[0].V[0])
	}
	if points[0].Weight != 2 {
		t.Errorf("weight: got %d, want 2", points[0].Weight)
	}
}

func TestBuildPoints_DeterministicOrder(t *testing.T) {
	values := [][3]float64{
		{90, 1, 2}, {10, 3, 4}, {50, 5, 6}, {10, 3, 4}, {90, 1, 2},
	}

	first := BuildPoints(values, 2.0)
	for i := 0; i < 10; i++ {
		again := BuildPoints(values, 2.0)
		if len(again) != len(first) {
			t.Fatalf("run %d: length changed", i)
		}
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("run %d: point %d differs: %v vs %v", i, j, first[j], again[j])
			}
		}
	}
}

func TestBuildPoints_NegativeCoordinates(t *testing.T) {
	// Lab a/b channels go negative; bucketing must not fold -1 and +1
	// into the same bucket.
	values := [][3]float64{
		{50, -20, 0},
		{50, 20, 0},
	}

	points := BuildPoints(values, 8.0)
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
}
