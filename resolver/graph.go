package resolver

import "sort"

// result is the nullable outcome of resolving one reference: ok is
// false for "resolved to nothing" (an unresolved placeholder or a
// failed lookup), which must stay distinguishable from "not yet
// present in resolved" while a resolution is in flight.
type result struct {
	value string
	ok    bool
}

// vertex is one node of the dependency graph built for a single
// top-level Resolve call: a Binding together with the distinct
// placeholder names its template decomposed into.
type vertex[T comparable] struct {
	binding      Binding[T]
	placeholders []string
}

// resolution is the private, per-call graph-build-and-solve state
// described in spec.md §3/§4.6. It is allocated fresh for every
// top-level Resolve and discarded when Resolve returns; it is never
// shared across goroutines.
type resolution[T comparable] struct {
	linking Linking[T]
	lookup  Lookup[T]
	onCycle RecursionFailureHandler[T]
	cache   *cache[T]

	nextID      int
	vertices    map[int]*vertex[T]
	refToVertex map[T]int
	vertexToRef map[int]T
	incoming    map[int]map[int]struct{}
	outgoing    map[int]map[int]struct{}
	resolved    map[T]result
}

// newResolution allocates one graph-build-and-solve pass. cache may be
// nil (caching disabled); when non-nil, every dependency dereferenced
// during graph construction is checked against it before falling back
// to lookup, not just the top-level reference passed to Resolve.
func newResolution[T comparable](linking Linking[T], lookup Lookup[T], onCycle RecursionFailureHandler[T], cache *cache[T]) *resolution[T] {
	return &resolution[T]{
		linking:     linking,
		lookup:      lookup,
		onCycle:     onCycle,
		cache:       cache,
		vertices:    make(map[int]*vertex[T]),
		refToVertex: make(map[T]int),
		vertexToRef: make(map[int]T),
		incoming:    make(map[int]map[int]struct{}),
		outgoing:    make(map[int]map[int]struct{}),
		resolved:    make(map[T]result),
	}
}

// resolve runs phases A (graph construction), B (topological solve)
// and, if needed, C (cycle handling) for the seeded reference and
// returns its final value.
func (r *resolution[T]) resolve(ref T, binding Binding[T]) (string, bool) {
	r.addVertex(ref, binding)
	r.solve()
	res := r.resolved[ref]
	return res.value, res.ok
}

// addVertex is phase A: it decomposes binding's template, short-
// circuits templates with no placeholders as terminal vertices, and
// otherwise inserts a vertex and recursively dereferences every
// placeholder's linking target. It returns the vertex id, or -1 when
// ref was resolved directly as a terminal (no vertex created).
//
// Memoization: a reference already present in refToVertex or resolved
// is never decomposed twice within one resolution – first lookup
// wins for a reference reachable through more than one path.
func (r *resolution[T]) addVertex(ref T, binding Binding[T]) int {
	if id, ok := r.refToVertex[ref]; ok {
		return id
	}
	if _, ok := r.resolved[ref]; ok {
		return -1
	}

	var names []string
	seen := make(map[string]struct{})
	projection := binding.Template.Apply(func(name string) (string, bool) {
		if _, dup := seen[name]; !dup {
			seen[name] = struct{}{}
			names = append(names, name)
		}
		return "", false
	})
	if len(names) == 0 {
		r.resolved[ref] = result{projection, true}
		return -1
	}

	id := r.nextID
	r.nextID++
	r.refToVertex[ref] = id
	r.vertexToRef[id] = ref
	r.vertices[id] = &vertex[T]{binding: binding, placeholders: names}
	r.incoming[id] = make(map[int]struct{})
	if _, ok := r.outgoing[id]; !ok {
		r.outgoing[id] = make(map[int]struct{})
	}

	for _, p := range names {
		target := r.linking(p, binding.Context)
		if target == nil {
			continue
		}
		depID, ok := r.dereference(*target)
		if !ok {
			continue
		}
		r.incoming[id][depID] = struct{}{}
		if _, ok := r.outgoing[depID]; !ok {
			r.outgoing[depID] = make(map[int]struct{})
		}
		r.outgoing[depID][id] = struct{}{}
	}
	return id
}

// dereference resolves one dependency reference encountered while
// decomposing a vertex's placeholders. It checks, in order: a vertex
// already built for ref in this resolution; a result already settled
// in resolved; the shared cache (if caching is enabled); and only on
// a full miss does it call lookup and decompose ref into a fresh
// vertex.
//
// The cache check happens here, not only for the top-level reference
// RecursiveResolver.Resolve is called with, so that a dependency
// reused across many top-level resolutions is decomposed at most
// once process-wide rather than once per resolution that reaches it.
func (r *resolution[T]) dereference(ref T) (int, bool) {
	if id, ok := r.refToVertex[ref]; ok {
		return id, true
	}
	if _, ok := r.resolved[ref]; ok {
		return -1, false
	}
	if r.cache != nil {
		if res, ok := r.cache.get(ref); ok {
			r.resolved[ref] = res
			return -1, false
		}
	}
	binding, ok := r.lookup(ref)
	if !ok {
		return -1, false
	}
	id := r.addVertex(ref, binding)
	return id, id >= 0
}

// solve runs phase B to a fixed point, alternating with phase C
// (breakCycles) whenever a full pass makes no progress, until the
// graph is empty.
func (r *resolution[T]) solve() {
	for len(r.vertices) > 0 {
		if r.solvePass() {
			continue
		}
		r.breakCycles()
	}
}

// solvePass repeatedly resolves every vertex with an empty incoming
// set until none remain ready; it reports whether it resolved at
// least one vertex.
func (r *resolution[T]) solvePass() bool {
	progressed := false
	for {
		id, ok := r.ready()
		if !ok {
			return progressed
		}
		r.resolveVertex(id)
		progressed = true
	}
}

// ready returns the lowest-numbered vertex id with an empty incoming
// set, for deterministic iteration order.
func (r *resolution[T]) ready() (int, bool) {
	best := -1
	for id, deps := range r.incoming {
		if len(deps) == 0 && (best < 0 || id < best) {
			best = id
		}
	}
	return best, best >= 0
}

func (r *resolution[T]) resolveVertex(id int) {
	v := r.vertices[id]
	ref := r.vertexToRef[id]
	value := v.binding.Template.Apply(func(name string) (string, bool) {
		return r.resolvePlaceholder(name, v.binding.Context)
	})
	r.resolved[ref] = result{value, true}
	r.cut(id)
}

func (r *resolution[T]) resolvePlaceholder(name string, context *T) (string, bool) {
	target := r.linking(name, context)
	if target == nil {
		return "", false
	}
	res, ok := r.resolved[*target]
	if !ok {
		return "", false
	}
	return res.value, res.ok
}

// cut removes vertex id from the graph, severing it from every
// vertex that depended on it.
func (r *resolution[T]) cut(id int) {
	for dep := range r.outgoing[id] {
		delete(r.incoming[dep], id)
	}
	delete(r.incoming, id)
	delete(r.outgoing, id)
	delete(r.vertices, id)
}

// breakCycles is phase C: it discovers the set of vertices lying on
// some cycle, routes each through the RecursionFailureHandler, and
// cuts them out exactly like an ordinary solved vertex.
//
// A handler that declines (returns false) stores an unresolved entry,
// not the vertex's own template text: a declined vertex must behave,
// to every placeholder that names it, exactly like any other
// unresolved reference – falling back to the referencing Reference
// fragment's own definition rather than substituting the cyclic
// vertex's template in its place.
func (r *resolution[T]) breakCycles() {
	onCycle := r.findCycleVertices()
	for _, id := range onCycle {
		v := r.vertices[id]
		ref := r.vertexToRef[id]
		value, ok := r.onCycle(ref, v.binding, func(t T) (string, bool) {
			res, found := r.resolved[t]
			if !found {
				return "", false
			}
			return res.value, res.ok
		})
		r.resolved[ref] = result{value, ok}
		r.cut(id)
	}
}

// findCycleVertices runs the DFS of spec.md §4.6 over the incoming
// (dependency) edges: a vertex v found already on the current path at
// depth k means every vertex from depth k onward lies on a cycle.
func (r *resolution[T]) findCycleVertices() []int {
	ids := make([]int, 0, len(r.vertices))
	for id := range r.vertices {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	visited := make(map[int]bool, len(ids))
	onPath := make(map[int]int)
	onCycle := make(map[int]bool)
	var path []int

	var visit func(v int)
	visit = func(v int) {
		if visited[v] {
			return
		}
		if depth, inPath := onPath[v]; inPath {
			for _, p := range path[depth:] {
				onCycle[p] = true
			}
			return
		}
		onPath[v] = len(path)
		path = append(path, v)
		deps := make([]int, 0, len(r.incoming[v]))
		for d := range r.incoming[v] {
			deps = append(deps, d)
		}
		sort.Ints(deps)
		for _, d := range deps {
			visit(d)
		}
		path = path[:len(path)-1]
		delete(onPath, v)
		visited[v] = true
	}
	for _, id := range ids {
		visit(id)
	}

	result := make([]int, 0, len(onCycle))
	for id := range onCycle {
		result = append(result, id)
	}
	sort.Ints(result)
	return result
}
