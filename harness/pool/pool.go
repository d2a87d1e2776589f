// Package pool bounds the number of benchmark runs in flight.
package pool

import "sync"

// Pool is a counting-semaphore worker gate. Each adapter instance runs in
// its own goroutine; the pool only limits how many are active at once.
type Pool struct {
	sem chan struct{}
	wg  sync.WaitGroup
}

func New(size int) *Pool {
	if size <= 0 {
		size = 1
	}
	return &Pool{sem: make(chan struct{}, size)}
}

// Go blocks until a slot is free, then runs fn in its own goroutine.
func (p *Pool) Go(fn func()) {
	p.sem <- struct{}{}
	p.wg.Add(1)
	go func() {
		defer func() {
			<-p.sem
			p.wg.Done()
		}()
		fn()
	}()
}

// Wait blocks until all queued work completes.
func (p *Pool) Wait() {
	p.wg.Wait()
}
