package literal

import "git.fractalqb.de/fractalqb/interpol"

// Literal is a comparable value wrapper over interpol.Literal. Unlike
// interpol.Template (which holds a slice and so is not comparable
// with ==), Literal can be used as a map key or compared directly –
// useful for callers that only ever deal in already-resolved,
// placeholder-free text.
type Literal struct {
	text string
}

// NewLiteral wraps text as a Literal.
func NewLiteral(text string) Literal { return Literal{text} }

// Template returns the equivalent interpol.Template.
func (l Literal) Template() interpol.Template { return interpol.Literal(l.text) }

// String returns the wrapped text.
func (l Literal) String() string { return l.text }

// Constant is a comparable value wrapper over interpol.Constant,
// pairing an escaped source definition with the value it decodes to.
type Constant struct {
	definition, value string
}

// NewConstant wraps a definition/value pair as a Constant.
func NewConstant(definition, value string) Constant {
	return Constant{definition: definition, value: value}
}

// Template returns the equivalent interpol.Template.
func (c Constant) Template() interpol.Template {
	return interpol.Constant(c.definition, c.value)
}

// Definition returns the original, still-escaped source text.
func (c Constant) Definition() string { return c.definition }

// Value returns the decoded value the Constant always resolves to.
func (c Constant) Value() string { return c.value }
