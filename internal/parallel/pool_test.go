package parallel

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("pool should be running after creation")
	}
}

func TestWorkerPool_DefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -5} {
		pool := NewWorkerPool(n)
		if got, want := pool.Workers(), runtime.GOMAXPROCS(0); got != want {
			t.Errorf("NewWorkerPool(%d).Workers() = %d, want %d", n, got, want)
		}
		pool.Close()
	}
}

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	jobs := make([]Job, 100)
	for i := range jobs {
		jobs[i] = func() { counter.Add(1) }
	}

	pool.ExecuteAll(jobs)

	if got := counter.Load(); got != 100 {
		t.Errorf("counter = %d, want 100", got)
	}
}

func TestWorkerPool_ExecuteAllDisjointWrites(t *testing.T) {
	pool := NewWorkerPool(3)
	defer pool.Close()

	out := make([]int, 257)
	jobs := make([]Job, len(out))
	for i := range jobs {
		jobs[i] = func() { out[i] = i * 2 }
	}

	pool.ExecuteAll(jobs)

	for i, v := range out {
		if v != i*2 {
			t.Fatalf("out[%d] = %d, want %d", i, v, i*2)
		}
	}
}

func TestWorkerPool_ExecuteAllEmpty(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	pool.ExecuteAll(nil)
	pool.ExecuteAll([]Job{})
}

func TestWorkerPool_NilJob(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	var ran atomic.Bool
	pool.ExecuteAll([]Job{nil, func() { ran.Store(true) }})

	if !ran.Load() {
		t.Error("non-nil job did not run")
	}
}

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("pool should not be running after Close")
	}
}

func TestWorkerPool_ExecuteAfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()

	var counter atomic.Int64
	jobs := []Job{
		func() { counter.Add(1) },
		func() { counter.Add(1) },
	}
	pool.ExecuteAll(jobs)

	if got := counter.Load(); got != 2 {
		t.Errorf("counter = %d, want 2 (jobs run inline after Close)", got)
	}
}

func TestWorkerPool_SingleWorker(t *testing.T) {
	pool := NewWorkerPool(1)
	defer pool.Close()

	var order []int
	jobs := make([]Job, 10)
	for i := range jobs {
		jobs[i] = func() { order = append(order, i) }
	}
	pool.ExecuteAll(jobs)

	if len(order) != 10 {
		t.Fatalf("ran %d jobs, want 10", len(order))
	}
	for i, v := range order {
		if v != i {
			t.Errorf("order[%d] = %d, want %d", i, v, i)
		}
	}
}
