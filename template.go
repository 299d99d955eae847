package interpol

import "strings"

// Resolver supplies the value for a named placeholder while a
// Template is being applied. A resolver returning false leaves the
// placeholder's original definition in the output.
type Resolver func(name string) (string, bool)

type templateKind int

const (
	kindLiteral templateKind = iota
	kindConstant
	kindReference
	kindSequence
)

// Template is a parsed template fragment: a Literal, a Constant, a
// Reference, or a Sequence of the former three. Templates are
// immutable once constructed and compare structurally with Equal.
//
// The zero Template is the empty literal.
type Template struct {
	kind       templateKind
	text       string // Literal text, or Reference/Constant value
	definition string // Constant/Reference definition
	fragments  []Template
}

// Literal builds a Template whose Apply and Definition both equal
// text.
func Literal(text string) Template {
	return Template{kind: kindLiteral, text: text}
}

// Constant builds a Template modeling an escaped symbol: Apply always
// returns value, regardless of the resolver; Definition returns
// definition (the original, still-escaped source text).
func Constant(definition, value string) Template {
	return Template{kind: kindConstant, text: value, definition: definition}
}

// Reference builds a Template modeling an unresolved placeholder with
// the given source definition and placeholder name.
func Reference(definition, name string) Template {
	return Template{kind: kindReference, text: name, definition: definition}
}

// Sequence builds a Template concatenating fragments in order. The
// result is canonicalized: an empty fragments slice yields the empty
// literal, a single fragment is returned unwrapped, and any fragment
// that is itself a Sequence is flattened so Sequence never nests.
func Sequence(fragments []Template) Template {
	flat := make([]Template, 0, len(fragments))
	for _, f := range fragments {
		if f.kind == kindSequence {
			flat = append(flat, f.fragments...)
		} else {
			flat = append(flat, f)
		}
	}
	switch len(flat) {
	case 0:
		return Literal("")
	case 1:
		return flat[0]
	default:
		return Template{kind: kindSequence, fragments: flat}
	}
}

// IsLiteral reports whether t is a Literal fragment.
func (t Template) IsLiteral() bool { return t.kind == kindLiteral }

// IsConstant reports whether t is a Constant fragment.
func (t Template) IsConstant() bool { return t.kind == kindConstant }

// IsReference reports whether t is a Reference fragment.
func (t Template) IsReference() bool { return t.kind == kindReference }

// IsSequence reports whether t is a Sequence fragment.
func (t Template) IsSequence() bool { return t.kind == kindSequence }

// Name returns the placeholder name of a Reference fragment, or the
// empty string for any other kind.
func (t Template) Name() string {
	if t.kind == kindReference {
		return t.text
	}
	return ""
}

// Fragments returns the sub-fragments of a Sequence, or nil for any
// other kind.
func (t Template) Fragments() []Template {
	if t.kind == kindSequence {
		return t.fragments
	}
	return nil
}

// Apply resolves every Reference in t via r and returns the fully
// substituted string. Literal and Constant fragments are emitted
// verbatim; an unresolved Reference (r returns false) falls back to
// its Definition.
func (t Template) Apply(r Resolver) string {
	switch t.kind {
	case kindLiteral, kindConstant:
		return t.text
	case kindReference:
		if v, ok := r(t.text); ok {
			return v
		}
		return t.definition
	case kindSequence:
		var b strings.Builder
		for _, f := range t.fragments {
			b.WriteString(f.Apply(r))
		}
		return b.String()
	default:
		return ""
	}
}

// Definition reconstructs the original source text that produced t.
// For every InterpolationFormat F and every string s,
// F.Parse(s).Definition() == s (the round-trip law).
func (t Template) Definition() string {
	switch t.kind {
	case kindLiteral:
		return t.text
	case kindConstant, kindReference:
		return t.definition
	case kindSequence:
		var b strings.Builder
		for _, f := range t.fragments {
			b.WriteString(f.Definition())
		}
		return b.String()
	default:
		return ""
	}
}

// PureLiteral reports whether t is built entirely from Literal
// fragments, with no Constant or Reference anywhere in it: the test
// that decides whether a piece of template source can be used
// verbatim without ever calling Apply.
func (t Template) PureLiteral() bool {
	switch t.kind {
	case kindLiteral:
		return true
	case kindSequence:
		for _, f := range t.fragments {
			if !f.PureLiteral() {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Equal reports whether t and other are structurally equivalent.
func (t Template) Equal(other Template) bool {
	if t.kind != other.kind {
		return false
	}
	switch t.kind {
	case kindLiteral, kindConstant, kindReference:
		return t.text == other.text && t.definition == other.definition
	case kindSequence:
		if len(t.fragments) != len(other.fragments) {
			return false
		}
		for i := range t.fragments {
			if !t.fragments[i].Equal(other.fragments[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
