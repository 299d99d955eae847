package resolver

import "sync"

// cache is the resolver's optional, process-lifetime, concurrent
// result cache. It stores nullable results: "resolved to nothing"
// (ok == false) is stored and distinguishable from "never resolved"
// (key absent), which preserves negative caching across calls.
type cache[T comparable] struct {
	entries sync.Map // T -> result
}

func (c *cache[T]) get(ref T) (result, bool) {
	v, ok := c.entries.Load(ref)
	if !ok {
		return result{}, false
	}
	return v.(result), true
}

// merge performs the bulk upsert of a completed resolution batch.
// Readers may observe entries trickling in one at a time, but every
// individual entry is always a fully computed result – never a
// half-constructed value.
func (c *cache[T]) merge(batch map[T]result) {
	for ref, res := range batch {
		c.entries.Store(ref, res)
	}
}
