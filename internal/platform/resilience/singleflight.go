package resilience

import "sync"

// Group collapses concurrent calls sharing a key into one execution. Results are not
// retained once the call returns.
type Group[T any] struct {
	mu    sync.Mutex
	calls map[string]*flight[T]
}

type flight[T any] struct {
	wg  sync.WaitGroup
	val T
	err error
}

// Result is delivered by DoChan. Shared is true for callers that joined another's call.
type Result[T any] struct {
	Val    T
	Err    error
	Shared bool
}

func (g *Group[T]) Do(key string, fn func() (T, error)) (T, error, bool) {
	f, leader := g.join(key)
	if !leader {
		f.wg.Wait()
		return f.val, f.err, true
	}

	g.run(key, f, fn)
	return f.val, f.err, false
}

// DoChan is Do without blocking the caller, so a waiter can give up on its own context
// while the shared call keeps running for the others. The channel is buffered and always
// receives exactly one Result.
func (g *Group[T]) DoChan(key string, fn func() (T, error)) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	f, leader := g.join(key)
	go func() {
		if leader {
			g.run(key, f, fn)
		} else {
			f.wg.Wait()
		}
		ch <- Result[T]{Val: f.val, Err: f.err, Shared: !leader}
	}()
	return ch
}

func (g *Group[T]) join(key string) (*flight[T], bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.calls == nil {
		g.calls = make(map[string]*flight[T])
	}
	if f, ok := g.calls[key]; ok {
		return f, false
	}

	f := &flight[T]{}
	f.wg.Add(1)
	g.calls[key] = f
	return f, true
}

func (g *Group[T]) run(key string, f *flight[T], fn func() (T, error)) {
	defer func() {
		g.mu.Lock()
		delete(g.calls, key)
		g.mu.Unlock()
		f.wg.Done()
	}()

	f.val, f.err = fn()
}
