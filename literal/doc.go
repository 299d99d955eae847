// Package literal provides the thin collaborators spec.md lists as
// out of scope for the core: convenience equality wrappers over
// interpol.Template, a lazily-parsed "unparsed on demand" wrapper, a
// Text tagging a source string as literal-or-template without always
// parsing it, a Source that composes "constant", "template" and
// "fallback" lookup functions into a single resolver.Lookup, and a
// deprecated testing helper. None of these carry algorithmic weight of
// their own; they are glue over package interpol and package resolver.
package literal
