// Package async runs a call in its own goroutine and lets the caller wait for
// it with a deadline.
//
// It exists for collaborators that may not honour context cancellation: the
// caller stops waiting at the deadline even if the callee keeps running.
//
//	f := async.Async(ctx, ip, provider.Lookup)
//	loc, err := f.AwaitWithTimeout(2 * time.Second)
//	if errors.Is(err, async.ErrTimeout) {
//		// use a default
//	}
//
// A context cancelled before the goroutine starts completes the Future with
// the context error without calling the function.
package async
