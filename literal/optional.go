package literal

import (
	"sync"

	"git.fractalqb.de/fractalqb/interpol"
)

// Optional is a template that is parsed only on first use ("unparsed
// on demand"): construction is a pure string copy, and the first call
// to Template parses it with the format given to NewOptional and
// memoizes the result for every
// later call.
type Optional struct {
	format interpol.InterpolationFormat
	raw    string

	once   sync.Once
	parsed interpol.Template
}

// NewOptional wraps raw for lazy parsing with format.
func NewOptional(format interpol.InterpolationFormat, raw string) *Optional {
	return &Optional{format: format, raw: raw}
}

// Definition returns the original, unparsed source text.
func (o *Optional) Definition() string { return o.raw }

// Template parses Definition() on first call and returns the same
// parsed interpol.Template on every subsequent call.
func (o *Optional) Template() interpol.Template {
	o.once.Do(func() {
		o.parsed = o.format.Parse(o.raw)
	})
	return o.parsed
}
