// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package jobpool implements the fixed-size worker pool of spec.md §5.2:
// W worker goroutines each loop "pop job, run it synchronously, mark
// done" over a bounded multi-producer/multi-consumer queue with the same
// mutex/condition-variable close semantics as logging.LogBus.
package jobpool

import (
	"context"
	"sync"

	"github.com/cpmech/gosl/chk"
	"golang.org/x/sync/errgroup"
)

// Job is anything a JobPool can run synchronously on a worker. sim.Simulation
// implements Job via its Run method; JobPool itself has no dependency on
// package sim, matching the teacher's small-interface, no-upward-reference
// style.
type Job interface {
	Run()
}

// Status is a consistent snapshot of the pool's counters, per spec.md §6:
// waiting = queued - started, running = started - completed.
type Status struct {
	Queued    int
	Waiting   int
	Started   int
	Running   int
	Completed int
}

// JobPool runs W workers draining a bounded job queue.
type JobPool struct {
	mu       sync.Mutex
	cond     *sync.Cond
	queue    []Job
	capacity int
	closed   bool

	queuedCount    int
	startedCount   int
	completedCount int

	group *errgroup.Group
}

// New starts workers goroutines, each draining the queue (bounded to
// capacity) until Close has been called and the queue is empty.
func New(workers, capacity int) (*JobPool, error) {
	if workers <= 0 {
		return nil, chk.Err("worker count must be positive, got %d", workers)
	}
	if capacity <= 0 {
		return nil, chk.Err("queue capacity must be positive, got %d", capacity)
	}
	p := &JobPool{capacity: capacity}
	p.cond = sync.NewCond(&p.mu)

	group, _ := errgroup.WithContext(context.Background())
	p.group = group
	for i := 0; i < workers; i++ {
		group.Go(func() error {
			p.workerLoop()
			return nil
		})
	}
	return p, nil
}

// Submit enqueues job, blocking while the queue is at capacity. It
// returns an error if the pool has been closed.
func (p *JobPool) Submit(job Job) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for len(p.queue) >= p.capacity && !p.closed {
		p.cond.Wait()
	}
	if p.closed {
		return chk.Err("cannot submit to a closed job pool")
	}
	p.queue = append(p.queue, job)
	p.queuedCount++
	p.cond.Broadcast()
	return nil
}

// Close stops accepting new jobs. Jobs already queued are still drained
// and run; it does not interrupt an in-progress job (spec.md §5).
func (p *JobPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.cond.Broadcast()
}

// Wait closes the pool, then blocks until every worker has drained the
// queue and returned.
func (p *JobPool) Wait() {
	p.Close()
	p.group.Wait()
}

// Status returns a consistent snapshot of the pool's counters.
func (p *JobPool) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Status{
		Queued:    p.queuedCount,
		Waiting:   p.queuedCount - p.startedCount,
		Started:   p.startedCount,
		Running:   p.startedCount - p.completedCount,
		Completed: p.completedCount,
	}
}

// workerLoop pops one job at a time, blocking while the queue is empty
// and open, and returns once the queue is both empty and closed.
func (p *JobPool) workerLoop() {
	for {
		job, ok := p.pop()
		if !ok {
			return
		}
		job.Run()
		p.mu.Lock()
		p.completedCount++
		p.mu.Unlock()
	}
}

func (p *JobPool) pop() (Job, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for len(p.queue) == 0 && !p.closed {
		p.cond.Wait()
	}
	if len(p.queue) == 0 {
		return nil, false
	}
	job := p.queue[0]
	p.queue = p.queue[1:]
	p.startedCount++
	p.cond.Broadcast() // wake any Submit blocked on a full queue
	return job, true
}
