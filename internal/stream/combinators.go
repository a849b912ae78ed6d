package stream

import (
	"context"
	"sync"
)

// CombineLatest emits fn(a, b) every time either input emits, once both
// inputs have produced a value. The output closes when ctx is done or when
// either input closes.
func CombineLatest[A, B, R any](ctx context.Context, a <-chan A, b <-chan B, fn func(A, B) R) <-chan R {
	out := make(chan R)
	go func() {
		defer close(out)
		var (
			va         A
			vb         B
			hasA, hasB bool
		)
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-a:
				if !ok {
					return
				}
				va, hasA = v, true
			case v, ok := <-b:
				if !ok {
					return
				}
				vb, hasB = v, true
			}
			if !hasA || !hasB {
				continue
			}
			select {
			case out <- fn(va, vb):
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Map applies fn to every value of in.
func Map[T, R any](ctx context.Context, in <-chan T, fn func(T) R) <-chan R {
	out := make(chan R)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					return
				}
				select {
				case out <- fn(v):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

type generation[R any] struct {
	gen int
	val R
}

// SwitchMap runs fn for each value of in. A new input cancels the context of
// the previous run and its result is dropped, so only the result for the
// latest input is ever emitted. The output closes when ctx is done or in
// closes; runs still in flight at that point are cancelled.
func SwitchMap[T, R any](ctx context.Context, in <-chan T, fn func(context.Context, T) R) <-chan R {
	out := make(chan R)
	go func() {
		defer close(out)

		var (
			wg      sync.WaitGroup
			gen     int
			pending *R
		)
		results := make(chan generation[R])
		cancelRun := context.CancelFunc(func() {})
		defer func() {
			cancelRun()
			wg.Wait()
		}()

		for {
			var (
				send chan<- R
				next R
			)
			if pending != nil {
				send, next = out, *pending
			}

			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					return
				}
				cancelRun()
				gen++
				pending = nil

				runCtx, cancel := context.WithCancel(ctx)
				cancelRun = cancel
				wg.Add(1)
				go func(g int) {
					defer wg.Done()
					r := fn(runCtx, v)
					select {
					case results <- generation[R]{gen: g, val: r}:
					case <-runCtx.Done():
					}
				}(gen)
			case r := <-results:
				if r.gen == gen {
					pending = &r.val
				}
			case send <- next:
				pending = nil
			}
		}
	}()
	return out
}
