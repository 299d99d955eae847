package resolver

// RecursiveResolver resolves a reference whose bound template may
// itself contain placeholders that resolve to further templates,
// transitively. It is safe for concurrent use when the Linking,
// Lookup and RecursionFailureHandler it was built with are themselves
// safe and return stable results for equal inputs.
type RecursiveResolver[T comparable] struct {
	linking Linking[T]
	lookup  Lookup[T]
	onCycle RecursionFailureHandler[T]

	caching bool
	cache   *cache[T]
	group   inflightGroup[T]
}

// Option configures a RecursiveResolver at construction time.
type Option[T comparable] func(*RecursiveResolver[T])

// WithCaching enables a concurrent, process-lifetime result cache
// shared across every call to Resolve. The cache stores nullable
// results, so a reference in a resolved batch that resolved to
// "nothing" is cached as such and never re-decomposed. A top-level
// reference whose Lookup fails is not cached.
func WithCaching[T comparable](enabled bool) Option[T] {
	return func(r *RecursiveResolver[T]) { r.caching = enabled }
}

// WithRecursionFailureHandler overrides the default behavior for
// vertices found on a dependency cycle, which otherwise resolve to
// their own template's Definition().
func WithRecursionFailureHandler[T comparable](h RecursionFailureHandler[T]) Option[T] {
	return func(r *RecursiveResolver[T]) { r.onCycle = h }
}

// New builds a RecursiveResolver from a Lookup and a Linking function
// plus any Options.
func New[T comparable](lookup Lookup[T], linking Linking[T], opts ...Option[T]) *RecursiveResolver[T] {
	r := &RecursiveResolver[T]{
		linking: linking,
		lookup:  lookup,
		onCycle: keepDefinition[T],
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.caching {
		r.cache = &cache[T]{}
	}
	return r
}

// Resolve is the top-level operation of spec.md §4.6: an absent
// reference (nil) resolves to nothing; a cache hit (including a
// negative one) returns immediately; a failed Lookup leaves the
// placeholder unresolved; otherwise a private dependency graph is
// built and solved, and – if caching is enabled – the whole resolved
// batch is merged into the cache in one bulk upsert.
func (r *RecursiveResolver[T]) Resolve(reference *T) (string, bool) {
	if reference == nil {
		return "", false
	}
	ref := *reference
	if r.caching {
		if res, ok := r.cache.get(ref); ok {
			return res.value, res.ok
		}
	}

	out := r.group.do(ref, func() result {
		binding, ok := r.lookup(ref)
		if !ok {
			return result{}
		}
		res := newResolution(r.linking, r.lookup, r.onCycle, r.cache)
		value, resolved := res.resolve(ref, binding)
		if r.caching {
			r.cache.merge(res.resolved)
		}
		return result{value, resolved}
	})
	return out.value, out.ok
}
