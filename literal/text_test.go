package literal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"git.fractalqb.de/fractalqb/interpol"
)

func TestTextAsLiteralTag(t *testing.T) {
	txt := AsLiteral("plain text")
	assert.True(t, txt.IsLiteral())
	assert.False(t, txt.IsTemplate())
	v, ok := txt.Literal()
	assert.True(t, ok)
	assert.Equal(t, "plain text", v)
	_, ok = txt.Template()
	assert.False(t, ok)
}

func TestTextAsTemplateTag(t *testing.T) {
	txt := AsTemplate("hi ${name}")
	assert.False(t, txt.IsLiteral())
	assert.True(t, txt.IsTemplate())
	v, ok := txt.Template()
	assert.True(t, ok)
	assert.Equal(t, "hi ${name}", v)
}

func TestParseTextClassifiesByPlaceholders(t *testing.T) {
	format := interpol.Standard()

	plain := ParseText(format, "no placeholders here")
	assert.True(t, plain.IsLiteral())

	escaped := ParseText(format, "$${name} is escaped")
	assert.True(t, escaped.IsLiteral(), "an escaped placeholder is a constant, not a reference, so the text is still pure literal")

	withRef := ParseText(format, "hi ${name}")
	assert.True(t, withRef.IsTemplate())
}

func TestTextToTemplateSkipsParsingForLiterals(t *testing.T) {
	format := interpol.Standard()
	txt := AsLiteral("${not a placeholder because we said so}")
	tmpl := txt.ToTemplate(format)
	assert.True(t, tmpl.IsLiteral())
	assert.Equal(t, "${not a placeholder because we said so}", tmpl.Apply(nil))
}

func TestTextToTemplateParsesTemplates(t *testing.T) {
	format := interpol.Standard()
	txt := AsTemplate("hi ${name}")
	tmpl := txt.ToTemplate(format)
	out := tmpl.Apply(func(name string) (string, bool) {
		if name == "name" {
			return "Ada", true
		}
		return "", false
	})
	assert.Equal(t, "hi Ada", out)
}
