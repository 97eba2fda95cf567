package accel

import (
	"runtime"
	"sync"
)

// Pool is a fixed-size worker pool for CPU-bound jobs. It backs the
// parallel backend and the batch runner.
type Pool struct {
	workers int
	jobs    chan func()
	wg      sync.WaitGroup
	once    sync.Once
	closed  sync.Once
}

// NewPool creates a pool with the given number of workers. A value <= 0
// uses runtime.NumCPU().
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pool{
		workers: workers,
		jobs:    make(chan func(), workers*2),
	}
}

// Workers returns the pool's worker count.
func (p *Pool) Workers() int { return p.workers }

// start launches the workers exactly once.
func (p *Pool) start() {
	p.once.Do(func() {
		for i := 0; i < p.workers; i++ {
			go func() {
				for job := range p.jobs {
					job()
					p.wg.Done()
				}
			}()
		}
	})
}

// Submit queues a job. The pool starts lazily on first submit.
func (p *Pool) Submit(job func()) {
	p.start()
	p.wg.Add(1)
	p.jobs <- job
}

// Wait blocks until every submitted job has finished.
func (p *Pool) Wait() {
	p.wg.Wait()
}

// Close stops the workers. The pool cannot be reused after Close.
func (p *Pool) Close() {
	p.closed.Do(func() { close(p.jobs) })
}

// parallelBackend fans nearest-centroid assignment out across a worker
// pool. Small inputs take the serial path to avoid fan-out overhead.
type parallelBackend struct {
	workers int
}

// parallelThreshold is the point count below which fan-out is not worth it.
const parallelThreshold = 2048

func newParallelBackend(workers int) *parallelBackend {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &parallelBackend{workers: workers}
}

func (b *parallelBackend) Name() string { return "cpu" }

func (b *parallelBackend) AssignPoints(points, centroids [][3]float64) []int {
	if len(points) < parallelThreshold || b.workers < 2 {
		return serialBackend{}.AssignPoints(points, centroids)
	}

	out := make([]int, len(points))
	chunk := (len(points) + b.workers - 1) / b.workers

	var wg sync.WaitGroup
	for start := 0; start < len(points); start += chunk {
		end := start + chunk
		if end > len(points) {
			end = len(points)
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				out[i] = nearest(points[i], centroids)
			}
		}(start, end)
	}
	wg.Wait()

	return out
}
