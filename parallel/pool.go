// Package parallel collects mappings from a source split into ordered chunks
// evaluated concurrently. Chunk results are private until the final combine
// pass, so no locking is involved, and tie-breaking always follows the
// original source order rather than goroutine completion order.
package parallel

import (
	"sync"
	"sync/atomic"
)

// Pool runs tasks on at most limit goroutines at a time.
type Pool struct {
	slots chan struct{}
	wg    sync.WaitGroup
	done  atomic.Uint32
}

func NewPool(limit int) *Pool {
	if limit <= 0 {
		limit = 1
	}
	return &Pool{slots: make(chan struct{}, limit)}
}

// Go schedules task, blocking while the pool is at its limit.
func (p *Pool) Go(task func()) {
	p.slots <- struct{}{}
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer func() { <-p.slots }()
		defer p.done.Add(1)
		task()
	}()
}

// Wait blocks until every scheduled task finished and returns their count.
func (p *Pool) Wait() int {
	p.wg.Wait()
	return int(p.done.Load())
}
