// Package resolver resolves a placeholder whose value is itself an
// interpol.Template that may contain further placeholders, transitively.
//
// A Linking maps a placeholder name, together with the enclosing
// template's context, to an absolute reference the Lookup function
// understands. A RecursiveResolver builds a private dependency graph
// over referenced templates for each top-level Resolve call,
// resolves every vertex that is not on a dependency cycle via
// ordinary topological substitution, and routes every vertex that is
// on a cycle through a caller-supplied RecursionFailureHandler.
// Resolution never raises for an unresolved placeholder or a missing
// lookup – it leaves the original template text in place – but
// propagates any error a caller's own Linking, Lookup or failure
// handler chooses to raise.
package resolver
