// Package interpol implements string templates: strings interspersed
// with named placeholders that get replaced with values computed by a
// caller-supplied function.
//
// An InterpolationFormat describes how placeholders look in the
// source text – their opening, closing and escaping sequences – and
// acts as a factory for TemplateParser and for the parsed Template
// tree. A Template is nothing but a sequence of literal, constant and
// reference fragments; Apply walks the sequence and asks the supplied
// resolver function for a value of every reference it finds.
//
//	std := interpol.Standard()
//	tmpl := std.Parse("Hello ${name}!")
//	tmpl.Apply(func(name string) (string, bool) {
//		if name == "name" {
//			return "World", true
//		}
//		return "", false
//	})
//
// Resolving placeholders whose value is itself a template containing
// further placeholders – i.e. recursive resolution with cycle
// detection and optional caching – is the job of the sibling package
// resolver. Composing "constant", "template" and "fallback" lookup
// functions into a single resolver.Lookup is the job of the sibling
// package literal.
//
// This package performs no file or network I/O and applies no
// locale-, encoding- or schema-specific formatting; it is not a
// templating language – placeholders carry no typed arguments,
// filters, conditionals or loops.
package interpol
