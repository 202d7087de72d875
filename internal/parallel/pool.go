// Package parallel runs independent canvas jobs on a fixed set of goroutines.
//
// Each job owns a disjoint region of the destination canvas, so jobs need no
// locking between them. The pool only guarantees that ExecuteAll returns after
// every submitted job has finished.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Job is a unit of work, typically the paste of one row of tiles.
type Job func()

// WorkerPool is a pool of goroutines with one queue per worker.
// An idle worker steals from the other queues before blocking on its own.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queues  []chan Job
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool

	// closeMu keeps Close from shutting workers down mid-submission.
	closeMu sync.RWMutex
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan Job, workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan Job, queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.loop(i)
	}
	return p
}

func (p *WorkerPool) loop(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case job := <-own:
			run(job)
		default:
			if job := p.steal(id); job != nil {
				run(job)
				continue
			}
			select {
			case <-p.done:
				p.drain(own)
				return
			case job := <-own:
				run(job)
			}
		}
	}
}

func run(job Job) {
	if job != nil {
		job()
	}
}

func (p *WorkerPool) drain(queue chan Job) {
	for {
		select {
		case job := <-queue:
			run(job)
		default:
			return
		}
	}
}

// steal takes one job from another worker's queue, or returns nil.
func (p *WorkerPool) steal(id int) Job {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case job := <-p.queues[i]:
			return job
		default:
		}
	}
	return nil
}

// ExecuteAll distributes jobs round-robin and waits for all of them.
// Jobs submitted after Close run on the calling goroutine, so every job
// runs exactly once regardless of the pool state.
func (p *WorkerPool) ExecuteAll(jobs []Job) {
	if len(jobs) == 0 {
		return
	}

	p.closeMu.RLock()
	if !p.running.Load() {
		p.closeMu.RUnlock()
		for _, job := range jobs {
			run(job)
		}
		return
	}

	var pending sync.WaitGroup
	pending.Add(len(jobs))
	for i, job := range jobs {
		p.queues[i%p.workers] <- func() {
			defer pending.Done()
			run(job)
		}
	}
	p.closeMu.RUnlock()

	pending.Wait()
}

// Close stops the workers after their queues are drained.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.closeMu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.closeMu.Unlock()
		return
	}
	close(p.done)
	p.closeMu.Unlock()

	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
