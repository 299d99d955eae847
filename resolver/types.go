package resolver

import "git.fractalqb.de/fractalqb/interpol"

// Binding pairs a parsed template with the context its reference was
// looked up in. Binding is the vertex payload of the resolver's
// internal dependency graph.
type Binding[T comparable] struct {
	Template interpol.Template
	Context  *T
}

// Linking maps a textual placeholder, together with the enclosing
// template's context (nil when the template carries none), to the
// absolute reference the Lookup function understands. Returning nil
// means "leave this placeholder unresolved": it will fall back to its
// own definition text.
type Linking[T comparable] func(placeholder string, context *T) *T

// Lookup fetches the Binding for a reference. Returning false means
// the reference is simply unknown; the caller-visible effect is the
// same as an unresolved placeholder.
type Lookup[T comparable] func(reference T) (Binding[T], bool)

// Resolved looks up the already-computed value of a reference while a
// RecursionFailureHandler is deciding what to substitute for a vertex
// on a cycle. It reports false for references that have not been
// resolved yet (including references outside the cycle being broken,
// and references still waiting on a cycle that resolves later).
type Resolved[T comparable] func(reference T) (string, bool)

// RecursionFailureHandler supplies a replacement for a template that
// lies on a dependency cycle. Returning false leaves the vertex
// unresolved: every placeholder naming it keeps its own definition
// text at the referencing site.
type RecursionFailureHandler[T comparable] func(reference T, binding Binding[T], resolved Resolved[T]) (string, bool)

// keepDefinition is the default RecursionFailureHandler: it always
// declines, so placeholders naming a cycle vertex keep their own
// definition text.
func keepDefinition[T comparable](T, Binding[T], Resolved[T]) (string, bool) {
	return "", false
}
