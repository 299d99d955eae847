package literal

import (
	"git.fractalqb.de/fractalqb/interpol"
	"git.fractalqb.de/fractalqb/interpol/resolver"
)

// Source composes three lookup functions – constants, templates and a
// fallback – plus an interpol.InterpolationFormat and an optional
// parsing-failure handler, into a resolver.Lookup. Every field may be
// left nil except Format; a nil Constants/Templates/Fallback is
// treated as "no match".
//
// Lookup's algorithm, for a reference r:
//
//  1. If Constants(r) yields a value, return it as a Literal binding.
//  2. Else if Templates(r) yields a definition, parse it with Format
//     (or with Parse, when overridden). On success, return the parsed
//     binding. On failure, call OnParsingFailure; if it supplies a
//     replacement, return that as a Literal binding; otherwise fall
//     through to the next step.
//  3. Else if Fallback(r) yields a value, return it as a Literal
//     binding.
//  4. Otherwise report no binding.
type Source[T comparable] struct {
	Constants func(T) (string, bool)
	Templates func(T) (string, bool)
	Fallback  func(T) (string, bool)

	Format interpol.InterpolationFormat

	// Parse overrides how a template definition is turned into an
	// interpol.Template. Most callers leave this nil, which parses
	// with Format (a total operation that never fails). Set it to
	// impose additional syntactic constraints that can fail.
	Parse func(format interpol.InterpolationFormat, definition string) (interpol.Template, error)

	OnParsingFailure func(reference T, definition string, err error) (string, bool)
}

// Lookup has the shape of a resolver.Lookup[T] and can be used as one
// directly: resolver.Lookup[T](src.Lookup).
func (s Source[T]) Lookup(reference T) (resolver.Binding[T], bool) {
	if v, ok := call(s.Constants, reference); ok {
		return resolver.Binding[T]{Template: interpol.Literal(v)}, true
	}
	if def, ok := call(s.Templates, reference); ok {
		tmpl, err := s.parse(def)
		if err == nil {
			return resolver.Binding[T]{Template: tmpl}, true
		}
		if s.OnParsingFailure != nil {
			if v, ok := s.OnParsingFailure(reference, def, err); ok {
				return resolver.Binding[T]{Template: interpol.Literal(v)}, true
			}
		}
	}
	if v, ok := call(s.Fallback, reference); ok {
		return resolver.Binding[T]{Template: interpol.Literal(v)}, true
	}
	return resolver.Binding[T]{}, false
}

func (s Source[T]) parse(definition string) (interpol.Template, error) {
	if s.Parse != nil {
		return s.Parse(s.Format, definition)
	}
	return s.Format.Parse(definition), nil
}

func call[T comparable](f func(T) (string, bool), ref T) (string, bool) {
	if f == nil {
		return "", false
	}
	return f(ref)
}
