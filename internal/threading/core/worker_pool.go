package core

import (
	"runtime"
	"sync"

	"raycaster/internal/mathutil"
)

// WorkerPool manages a pool of worker goroutines for parallel processing.
// Wait covers every job submitted to the pool, so one pool serves one
// producer at a time.
type WorkerPool struct {
	numWorkers int
	jobQueue   chan func()
	wg         sync.WaitGroup
	quit       chan struct{}
	stopOnce   sync.Once
}

// NewWorkerPool creates a new worker pool with the specified number of
// workers. Zero or less uses one worker per CPU.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		numWorkers: numWorkers,
		jobQueue:   make(chan func(), numWorkers*2),
		quit:       make(chan struct{}),
	}
}

// Start initializes and starts all worker goroutines
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		go wp.worker()
	}
}

// worker is the goroutine that processes jobs from the queue
func (wp *WorkerPool) worker() {
	for {
		select {
		case job := <-wp.jobQueue:
			job()
			wp.wg.Done()
		case <-wp.quit:
			return
		}
	}
}

// Submit adds a job to the worker queue
func (wp *WorkerPool) Submit(job func()) {
	wp.wg.Add(1)
	wp.jobQueue <- job
}

// Wait waits for all currently queued jobs to complete
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

// Stop shuts down the worker pool. It is safe to call more than once.
func (wp *WorkerPool) Stop() {
	wp.stopOnce.Do(func() { close(wp.quit) })
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Chunks splits [0, total) into at most n contiguous ranges of near-equal
// size, in ascending order
func Chunks(total, n int) [][2]int {
	if total <= 0 {
		return nil
	}
	n = mathutil.IntClamp(n, 1, total)
	chunks := make([][2]int, 0, n)
	base, extra := total/n, total%n
	start := 0
	for i := 0; i < n; i++ {
		size := base
		if i < extra {
			size++
		}
		chunks = append(chunks, [2]int{start, start + size})
		start += size
	}
	return chunks
}

// ParallelChunks runs fn once per contiguous chunk of [0, total), one chunk
// per worker, and returns when all chunks are done. chunk numbers follow
// range order, so results stored by chunk can be joined back in order.
func (wp *WorkerPool) ParallelChunks(total int, fn func(chunk, start, end int)) {
	for i, c := range Chunks(total, wp.numWorkers) {
		chunk, start, end := i, c[0], c[1]
		wp.Submit(func() { fn(chunk, start, end) })
	}
	wp.Wait()
}
