package executor

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// Pool runs submitted tasks with a fixed concurrency bound. Submission never
// blocks the caller: tasks past the bound queue until a slot frees up. A
// panicking task is logged and released; it cannot take the process down.
type Pool struct {
	sem *semaphore.Weighted
	wg  sync.WaitGroup
}

// New creates a pool that runs at most size tasks concurrently.
func New(size int) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{sem: semaphore.NewWeighted(int64(size))}
}

// Submit schedules task and returns immediately.
func (p *Pool) Submit(task func()) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		// Acquire with Background cannot fail; it only waits for a slot.
		_ = p.sem.Acquire(context.Background(), 1)
		defer p.sem.Release(1)
		defer func() {
			if r := recover(); r != nil {
				zap.L().Error("executor task panicked", zap.Any("panic", r))
			}
		}()
		task()
	}()
}

// Wait blocks until every task submitted so far has finished. Used during
// shutdown and in tests.
func (p *Pool) Wait() {
	p.wg.Wait()
}
