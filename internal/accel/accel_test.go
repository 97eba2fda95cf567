package accel

import (
	"errors"
	"math/rand"
	"sync"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"auto", Auto, false},
		{"never", Never, false},
		{"force", Force, false},
		{"AUTO", Auto, false},
		{"", Auto, false},
		{"maybe", Auto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseMode(%q) should fail", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMode(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelect_ForceWithoutGPU(t *testing.T) {
	_, err := Select(Force)
	if !errors.Is(err, ErrGPUUnavailable) {
		t.Errorf("expected ErrGPUUnavailable, got %v", err)
	}
}

func TestSelect_AutoFallsBack(t *testing.T) {
	backend, err := Select(Auto)
	if err != nil {
		t.Fatalf("Select(Auto) failed: %v", err)
	}
	if backend.Name() != "cpu" {
		t.Errorf("backend: got %s, want cpu", backend.Name())
	}
}

func TestInfo(t *testing.T) {
	info := Info()
	if info.Available {
		t.Error("this build should report no GPU")
	}
	if info.Backend != "cpu" {
		t.Errorf("backend: got %s, want cpu", info.Backend)
	}
	if info.Workers < 1 {
		t.Errorf("workers: got %d, want >= 1", info.Workers)
	}
}

func TestAssignPoints_SerialMatchesParallel(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	// Enough points to trigger the parallel path.
	points := make([][3]float64, parallelThreshold*2)
	for i := range points {
		points[i] = [3]float64{rng.Float64() * 100, rng.Float64() * 100, rng.Float64() * 100}
	}
	centroids := [][3]float64{
		{10, 10, 10},
		{50, 50, 50},
		{90, 90, 90},
	}

	serial := serialBackend{}.AssignPoints(points, centroids)
	parallel := newParallelBackend(4).AssignPoints(points, centroids)

	if len(serial) != len(parallel) {
		t.Fatalf("length mismatch: %d vs %d", len(serial), len(parallel))
	}
	for i := range serial {
		if serial[i] != parallel[i] {
			t.Fatalf("assignment %d differs: serial %d, parallel %d", i, serial[i], parallel[i])
		}
	}
}

func TestAssignPoints_NearestWins(t *testing.T) {
	points := [][3]float64{{0, 0, 0}, {99, 99, 99}, {52, 48, 50}}
	centroids := [][3]float64{{1, 1, 1}, {50, 50, 50}, {100, 100, 100}}

	got := serialBackend{}.AssignPoints(points, centroids)
	want := []int{0, 2, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d: got centroid %d, want %d", i, got[i], want[i])
		}
	}
}

func TestPool(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	var mu sync.Mutex
	count := 0
	for i := 0; i < 100; i++ {
		pool.Submit(func() {
			mu.Lock()
			count++
			mu.Unlock()
		})
	}
	pool.Wait()

	if count != 100 {
		t.Errorf("completed jobs: got %d, want 100", count)
	}
}

func TestPool_ReuseAfterWait(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	var mu sync.Mutex
	count := 0
	job := func() {
		mu.Lock()
		count++
		mu.Unlock()
	}

	pool.Submit(job)
	pool.Wait()
	pool.Submit(job)
	pool.Submit(job)
	pool.Wait()

	if count != 3 {
		t.Errorf("completed jobs: got %d, want 3", count)
	}
}

func TestPool_DefaultWorkers(t *testing.T) {
	pool := NewPool(0)
	defer pool.Close()
	if pool.Workers() < 1 {
		t.Errorf("workers: got %d, want >= 1", pool.Workers())
	}
}
