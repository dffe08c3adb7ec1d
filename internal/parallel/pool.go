// Package parallel distributes row bands of a frame across goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// task is one band queued for a worker, with the completion group of the
// Run call that queued it.
type task struct {
	band Band
	fn   func(Band)
	done *sync.WaitGroup
}

func (t task) run() {
	defer t.done.Done()
	t.fn(t.band)
}

// Pool runs bands on a fixed set of workers.
//
// Each worker owns a queue and steals from the others when its own queue
// is empty, so a band crossing the sphere does not hold up the frame while
// workers that drew background sit idle.
//
// Pool is safe for concurrent use. Close waits for Run calls in flight.
type Pool struct {
	queues []chan task
	done   chan struct{}
	wg     sync.WaitGroup

	// mu is held shared by Run and exclusively by Close, so no band is
	// queued once the workers may have drained and exited.
	mu      sync.RWMutex
	running atomic.Bool
	stolen  atomic.Int64
}

// NewPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		queues: make([]chan task, workers),
		done:   make(chan struct{}),
	}
	depth := max(workers*4, 8)
	for i := range p.queues {
		p.queues[i] = make(chan task, depth)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.loop(i)
	}
	return p
}

func (p *Pool) loop(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case <-p.done:
			drain(own)
			return
		case t := <-own:
			t.run()
			continue
		default:
		}

		if t, ok := p.steal(id); ok {
			p.stolen.Add(1)
			t.run()
			continue
		}

		select {
		case <-p.done:
			drain(own)
			return
		case t := <-own:
			t.run()
		}
	}
}

func drain(q chan task) {
	for {
		select {
		case t := <-q:
			t.run()
		default:
			return
		}
	}
}

// steal takes one task from another worker's queue.
func (p *Pool) steal(id int) (task, bool) {
	n := len(p.queues)
	for i := 1; i < n; i++ {
		select {
		case t := <-p.queues[(id+i)%n]:
			return t, true
		default:
		}
	}
	return task{}, false
}

// Run calls fn once for every band and returns when all calls have
// finished. Bands are dealt to workers round-robin. A closed pool runs
// nothing.
func (p *Pool) Run(bands []Band, fn func(Band)) {
	if len(bands) == 0 {
		return
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.running.Load() {
		return
	}

	var done sync.WaitGroup
	done.Add(len(bands))
	for i, b := range bands {
		p.queues[i%len(p.queues)] <- task{band: b, fn: fn, done: &done}
	}
	done.Wait()
}

// Close waits for running Run calls, then stops the workers. It is safe
// to call more than once.
func (p *Pool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.mu.Unlock()
	p.wg.Wait()
}

// Workers returns the number of workers.
func (p *Pool) Workers() int {
	return len(p.queues)
}

// Running reports whether the pool still accepts bands.
func (p *Pool) Running() bool {
	return p.running.Load()
}

// Stolen returns how many bands were run by a worker other than the one
// they were dealt to.
func (p *Pool) Stolen() int64 {
	return p.stolen.Load()
}
