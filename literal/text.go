package literal

import "git.fractalqb.de/fractalqb/interpol"

// Text is a source string tagged with whether it should be treated as
// a literal (used verbatim) or as a template (needing Parse before
// use). Unlike Optional, which always parses, Text lets a caller skip
// parsing entirely for the (common) case where the source is already
// known to carry no placeholders.
type Text struct {
	value     string
	isLiteral bool
}

// AsLiteral tags value as a literal.
func AsLiteral(value string) Text { return Text{value: value, isLiteral: true} }

// AsTemplate tags value as a template requiring Parse.
func AsTemplate(value string) Text { return Text{value: value, isLiteral: false} }

// ParseText classifies value against format by parsing it once and
// checking whether the result decomposes into anything but Literal
// fragments: value is a literal when it does not.
func ParseText(format interpol.InterpolationFormat, value string) Text {
	return Text{value: value, isLiteral: format.Parse(value).PureLiteral()}
}

// IsLiteral reports whether t is tagged as a literal.
func (t Text) IsLiteral() bool { return t.isLiteral }

// IsTemplate reports whether t is tagged as a template.
func (t Text) IsTemplate() bool { return !t.isLiteral }

// Literal returns t's value and true when t is tagged as a literal,
// or "", false otherwise.
func (t Text) Literal() (string, bool) {
	if t.isLiteral {
		return t.value, true
	}
	return "", false
}

// Template returns t's value and true when t is tagged as a template,
// or "", false otherwise.
func (t Text) Template() (string, bool) {
	if t.isLiteral {
		return "", false
	}
	return t.value, true
}

// ToTemplate returns the interpol.Template t represents: an
// interpol.Literal built directly from value when t is tagged as a
// literal (skipping Parse entirely), or format.Parse(value) otherwise.
func (t Text) ToTemplate(format interpol.InterpolationFormat) interpol.Template {
	if t.isLiteral {
		return interpol.Literal(t.value)
	}
	return format.Parse(t.value)
}

// String returns t's underlying value regardless of its tag.
func (t Text) String() string { return t.value }
