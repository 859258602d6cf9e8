package async

import (
	"context"
	"fmt"
	"time"
)

// Future is the eventual result of an asynchronous call.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Async calls fn(ctx, param) in a new goroutine. A panic in fn is recovered
// and reported as an error wrapping ErrPanic.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.err = fmt.Errorf("%w: %v", ErrPanic, r)
			}
		}()

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}
		f.result, f.err = fn(ctx, param)
	}()

	return f
}

// Await blocks until the call returns.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout waits at most timeout and returns ErrTimeout after that.
// A non-positive timeout waits indefinitely.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	if timeout <= 0 {
		return f.Await()
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-f.done:
		return f.result, f.err
	case <-timer.C:
		var zero U
		return zero, ErrTimeout
	}
}
