package concurrent

import (
	"sync"
)

type JobFunc[T any, G any] func(job T) G

type Job[T any] struct {
	ID      int
	Payload T
}

type Result[G any] struct {
	ID    int
	Value G
}

// WorkerPool. every job gets the id of its submission order, so results that come back
// out of order can be put back in place by the caller.
type WorkerPool[T any, G any] struct {
	numWorkers int
	jobQueue   chan Job[T]
	results    chan Result[G]
	wg         sync.WaitGroup
	nextID     int
}

func NewWorkerPool[T any, G any](numWorkers, jobQueueSize int) *WorkerPool[T, G] {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan Job[T], jobQueueSize),
		results:    make(chan Result[G], jobQueueSize),
	}
}

func (wp *WorkerPool[T, G]) worker(jobFunc JobFunc[T, G]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		wp.results <- Result[G]{ID: job.ID, Value: jobFunc(job.Payload)}
	}
}

func (wp *WorkerPool[T, G]) Start(jobFunc JobFunc[T, G]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(jobFunc)
	}
}

func (wp *WorkerPool[T, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

// AddJob. not safe for concurrent producers.
func (wp *WorkerPool[T, G]) AddJob(payload T) int {
	id := wp.nextID
	wp.nextID++
	wp.jobQueue <- Job[T]{ID: id, Payload: payload}
	return id
}

func (wp *WorkerPool[T, G]) CollectResults() chan Result[G] {
	return wp.results
}

func (wp *WorkerPool[T, G]) Close() {
	close(wp.jobQueue)
}

// ProcessOrdered runs jobFunc over jobs on numWorkers goroutines. out[i] = jobFunc(jobs[i]).
func ProcessOrdered[T any, G any](numWorkers int, jobs []T, jobFunc JobFunc[T, G]) []G {
	out := make([]G, len(jobs))
	if len(jobs) == 0 {
		return out
	}

	wp := NewWorkerPool[T, G](numWorkers, len(jobs))
	wp.Start(jobFunc)

	go func() {
		for _, job := range jobs {
			wp.AddJob(job)
		}
		wp.Close()
		wp.Wait()
	}()

	for res := range wp.CollectResults() {
		out[res.ID] = res.Value
	}
	return out
}
