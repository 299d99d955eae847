package literal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"git.fractalqb.de/fractalqb/interpol"
)

func TestLiteralComparable(t *testing.T) {
	a := NewLiteral("hi")
	b := NewLiteral("hi")
	c := NewLiteral("bye")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, "hi", a.String())
}

func TestLiteralTemplate(t *testing.T) {
	l := NewLiteral("hi")
	tmpl := l.Template()
	assert.True(t, tmpl.IsLiteral())
	assert.Equal(t, "hi", tmpl.Definition())
}

func TestConstantComparable(t *testing.T) {
	a := NewConstant("$${", "${")
	b := NewConstant("$${", "${")
	assert.Equal(t, a, b)
	assert.Equal(t, "$${", a.Definition())
	assert.Equal(t, "${", a.Value())
}

func TestConstantTemplate(t *testing.T) {
	c := NewConstant("$${", "${")
	tmpl := c.Template()
	assert.True(t, tmpl.IsConstant())
	assert.Equal(t, "${", tmpl.Apply(func(string) (string, bool) { return "ignored", true }))
	assert.Equal(t, "$${", tmpl.Definition())
}

func TestMustParseDelegatesToFormat(t *testing.T) {
	f := interpol.Standard()
	tmpl := MustParse(f, "hi ${name}")
	assert.Equal(t, "hi ${name}", tmpl.Definition())
}
