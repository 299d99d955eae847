package interpol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"git.fractalqb.de/fractalqb/interpol"
)

func TestScenarioLiteralIdentity(t *testing.T) {
	f := interpol.Standard()
	out := f.Resolve("no placeholders", func(string) (string, bool) { return "", false })
	assert.Equal(t, "no placeholders", out)
}

func TestScenarioSimpleReference(t *testing.T) {
	f := interpol.Standard()
	values := map[string]string{"name": "Kitty", "color": "pink"}
	out := f.Resolve("Hello ${name}! Do you like ${color}?", func(n string) (string, bool) {
		v, ok := values[n]
		return v, ok
	})
	assert.Equal(t, "Hello Kitty! Do you like pink?", out)
}

func TestScenarioPreserveUnresolved(t *testing.T) {
	f := interpol.Standard()
	values := map[string]string{"name": "Kitty", "color": "pink"}
	out := f.Resolve("And ${meal}?", func(n string) (string, bool) {
		v, ok := values[n]
		return v, ok
	})
	assert.Equal(t, "And ${meal}?", out)
}

func TestScenarioEscapeRoundTrip(t *testing.T) {
	f := interpol.Standard()
	escaped, err := f.Constant("Hello ${name}!")
	assert.NoError(t, err)
	assert.Equal(t, "Hello $${name}!", escaped)

	out := f.Resolve(escaped, func(string) (string, bool) { return "", false })
	assert.Equal(t, "Hello ${name}!", out)
}

// For every format and every escape-free input s, resolving s with a
// resolver that answers every placeholder with None reproduces s
// exactly: there are no escape sequences to decode, so every fragment
// is either a Literal or an unresolved Reference, both of which emit
// their original text. Inputs containing an escape sequence are
// covered instead by the escape round-trip law (see
// TestScenarioEscapeRoundTrip), since a Constant always yields its
// decoded value rather than its definition.
func TestIdentityResolverOverEscapeFreeInput(t *testing.T) {
	f := interpol.Standard()
	for _, s := range []string{
		"",
		"plain text",
		"${a}${b}${c}",
		"mix of ${x} and text",
	} {
		out := f.Resolve(s, func(string) (string, bool) { return "", false })
		assert.Equal(t, s, out, "identity resolve of %q", s)
	}
}

func TestLosslessParseForEveryInput(t *testing.T) {
	for _, f := range []interpol.InterpolationFormat{interpol.Standard(), interpol.Reduced()} {
		for _, s := range []string{
			"",
			"plain",
			"$name and ${other}",
			"$${escaped}",
			"dangling $",
		} {
			assert.Equal(t, s, f.Parse(s).Definition())
		}
	}
}
