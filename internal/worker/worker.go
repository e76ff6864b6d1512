package worker

import (
	"context"
	"errors"
	"sync"
)

// ErrStopped is returned when work is submitted after Stop.
var ErrStopped = errors.New("worker: pool stopped")

// Task represents a unit of work executed by the pool.
type Task func()

// Pool bounds how many tasks run at once.
type Pool interface {
	// Submit blocks until a worker accepts t or ctx is done.
	Submit(ctx context.Context, t Task) error
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task), done: make(chan struct{})}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case job := <-p.jobs:
					if job != nil {
						job()
					}
				case <-p.done:
					return
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	done chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

func (p *pool) Submit(ctx context.Context, t Task) error {
	select {
	case <-p.done:
		return ErrStopped
	default:
	}
	select {
	case p.jobs <- t:
		return nil
	case <-p.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop waits for running tasks; tasks not yet accepted are rejected.
func (p *pool) Stop() {
	p.once.Do(func() { close(p.done) })
	p.wg.Wait()
}

// Do runs fn on the pool and waits for its result.
func Do[T any](ctx context.Context, p Pool, fn func() (T, error)) (T, error) {
	type result struct {
		val T
		err error
	}
	ch := make(chan result, 1)
	if err := p.Submit(ctx, func() {
		v, err := fn()
		ch <- result{v, err}
	}); err != nil {
		var zero T
		return zero, err
	}
	select {
	case r := <-ch:
		return r.val, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
