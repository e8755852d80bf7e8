package pool

import (
	"context"

	"github.com/rprtr258/poolreuse/flow/result"
)

// Future is a handle to the result of a submitted task.
type Future[A any] struct {
	done chan struct{}
	res  result.Result[A]
}

// Submit schedules task on p. A panic in task is turned into an error.
func Submit[A any](p Pool, task func() (A, error)) (*Future[A], error) {
	f := &Future[A]{done: make(chan struct{})}
	if err := p.Go(func() {
		f.res = result.Eval(task)
		close(f.done)
	}); err != nil {
		return nil, err
	}
	return f, nil
}

// Done is closed once the task has finished.
func (f *Future[A]) Done() <-chan struct{} {
	return f.done
}

// Get blocks until the task finishes or ctx is done.
// In the latter case ctx.Err() is returned and the task keeps running.
func (f *Future[A]) Get(ctx context.Context) (A, error) {
	select {
	case <-f.done:
		return f.res.Get()
	case <-ctx.Done():
		var zero A
		return zero, ctx.Err()
	}
}
