package resolver

import "sync"

// inflightGroup coalesces concurrent Resolve calls for the same
// reference into a single in-flight resolution, the same duty
// golang.org/x/sync/singleflight.Group performs for a string-keyed
// call. Group itself only accepts string keys, and a reference type T
// is merely comparable: projecting it to a string (fmt.Sprint, a
// custom Stringer) can collide for distinct values, letting one
// caller's Resolve return a value resolved for somebody else's
// reference. Keying the map directly on T, which is comparable by
// construction, removes that projection step entirely.
type inflightGroup[T comparable] struct {
	mu    sync.Mutex
	calls map[T]*inflightCall
}

type inflightCall struct {
	wg  sync.WaitGroup
	val result
}

// do runs fn for key if no call for key is already in flight, or
// waits for and returns the in-flight call's result otherwise. Every
// caller sharing a key observes the same result.
func (g *inflightGroup[T]) do(key T, fn func() result) result {
	g.mu.Lock()
	if c, ok := g.calls[key]; ok {
		g.mu.Unlock()
		c.wg.Wait()
		return c.val
	}
	c := &inflightCall{}
	c.wg.Add(1)
	if g.calls == nil {
		g.calls = make(map[T]*inflightCall)
	}
	g.calls[key] = c
	g.mu.Unlock()

	c.val = fn()
	c.wg.Done()

	g.mu.Lock()
	delete(g.calls, key)
	g.mu.Unlock()

	return c.val
}
