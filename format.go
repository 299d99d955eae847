package interpol

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrUnsupportedOperation is returned by Constant when the format has
// no escaping sequence, so there is no way to produce a string that
// reproduces an arbitrary value verbatim.
var ErrUnsupportedOperation = errors.New("interpol: format has no escaping sequence")

// InterpolationFormat describes placeholder syntax: an opening
// sequence, either a closing sequence or a predicate deciding where a
// placeholder name ends, and an escaping sequence (possibly empty,
// meaning "no escaping"). Values are immutable and safe for
// concurrent use once constructed.
type InterpolationFormat struct {
	opening          string
	closing          string
	closingPredicate func(rune) bool
	escaping         string
}

// Standard returns the format used throughout this package's own
// examples: "${name}" with "$" as the escape, so "$${name}" is a
// literal "${name}".
func Standard() InterpolationFormat {
	f, err := With("${", "}", "$")
	if err != nil {
		panic(err)
	}
	return f
}

// Reduced returns a predicate-closing format: "$name" where name is
// any run of ASCII letters, digits or underscore, escaped by
// doubling the dollar sign ("$$name" is a literal "$name").
func Reduced() InterpolationFormat {
	f, err := WithPredicate("$", isNameRune, "$")
	if err != nil {
		panic(err)
	}
	return f
}

func isNameRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// With builds a format with a bracketed closing sequence. opening and
// closing must be non-empty. escaping may be empty (no escaping), may
// equal opening (doubled-opening escape), or otherwise must not
// contain opening.
func With(opening, closing, escaping string) (InterpolationFormat, error) {
	if opening == "" {
		return InterpolationFormat{}, errors.New("interpol: opening sequence must not be empty")
	}
	if closing == "" {
		return InterpolationFormat{}, errors.New("interpol: closing sequence must not be empty")
	}
	if err := checkEscaping(opening, escaping); err != nil {
		return InterpolationFormat{}, err
	}
	return InterpolationFormat{opening: opening, closing: closing, escaping: escaping}, nil
}

// WithPredicate builds a format whose placeholder name runs as long
// as predicate accepts the current rune (and the position does not
// start a new opening or escaped-opening sequence). opening must be
// non-empty and predicate must not be nil; escaping follows the same
// rules as With.
func WithPredicate(opening string, predicate func(rune) bool, escaping string) (InterpolationFormat, error) {
	if opening == "" {
		return InterpolationFormat{}, errors.New("interpol: opening sequence must not be empty")
	}
	if predicate == nil {
		return InterpolationFormat{}, errors.New("interpol: closing predicate must not be nil")
	}
	if err := checkEscaping(opening, escaping); err != nil {
		return InterpolationFormat{}, err
	}
	return InterpolationFormat{opening: opening, closingPredicate: predicate, escaping: escaping}, nil
}

func checkEscaping(opening, escaping string) error {
	if escaping == "" || escaping == opening {
		return nil
	}
	if strings.Contains(escaping, opening) {
		return errors.Errorf("interpol: escaping sequence %q must not contain opening sequence %q", escaping, opening)
	}
	return nil
}

// Opening returns the format's opening sequence.
func (f InterpolationFormat) Opening() string { return f.opening }

// Closing returns the format's bracketed closing sequence, or the
// empty string when the format closes placeholders via a predicate.
func (f InterpolationFormat) Closing() string { return f.closing }

// Escaping returns the format's escaping sequence, or the empty
// string when the format supports no escaping.
func (f InterpolationFormat) Escaping() string { return f.escaping }

func (f InterpolationFormat) scanner() SymbolScanner {
	return SymbolScanner{
		Opening:          f.opening,
		Closing:          f.closing,
		ClosingPredicate: f.closingPredicate,
		Escaping:         f.escaping,
	}
}

// Parser returns a new stateful cursor walking template.
func (f InterpolationFormat) Parser(template string) *TemplateParser {
	return NewTemplateParser(f.scanner(), template)
}

// Parse drives a parser to completion, collecting its fragments into
// a canonical Template. For every format and every input s,
// Parse(s).Definition() == s.
func (f InterpolationFormat) Parse(template string) Template {
	p := f.Parser(template)
	var fragments []Template
	for {
		frag, ok := p.NextFragment()
		if !ok {
			break
		}
		fragments = append(fragments, frag)
	}
	return Sequence(fragments)
}

// Resolve is a streaming shortcut equivalent to
// Parse(template).Apply(resolve), but it never builds an
// intermediate Template tree: each fragment's resolved value is
// appended directly to the result as it is recognized.
func (f InterpolationFormat) Resolve(template string, resolve Resolver) string {
	p := f.Parser(template)
	var b strings.Builder
	for {
		frag, ok := p.NextFragment()
		if !ok {
			break
		}
		b.WriteString(frag.Apply(resolve))
	}
	return b.String()
}

// Constant produces a string that, when parsed by f, yields a
// Template whose Apply equals s regardless of the resolver – i.e. it
// escapes every occurrence of f's opening sequence in s. It returns
// ErrUnsupportedOperation when f has no escaping sequence.
func (f InterpolationFormat) Constant(s string) (string, error) {
	if f.escaping == "" {
		return "", ErrUnsupportedOperation
	}
	return strings.ReplaceAll(s, f.opening, f.escaping+f.opening), nil
}

// Reproduction is the nil-safe form of Constant: it returns false
// instead of an error when f has no escaping sequence.
func (f InterpolationFormat) Reproduction(s string) (string, bool) {
	out, err := f.Constant(s)
	if err != nil {
		return "", false
	}
	return out, true
}

// Binding is a template format paired with a single resolver, reusable
// across many calls without passing the resolver each time.
type Binding func(template string) string

// Bind returns the Binding equivalent to repeatedly calling
// f.Resolve(template, resolve).
func (f InterpolationFormat) Bind(resolve Resolver) Binding {
	return func(template string) string {
		return f.Resolve(template, resolve)
	}
}
