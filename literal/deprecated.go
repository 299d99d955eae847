package literal

import "git.fractalqb.de/fractalqb/interpol"

// MustParse parses definition with format. It never panics, since
// format.Parse cannot fail.
//
// Deprecated: format.Parse is total and never fails; MustParse exists
// only to keep old call sites that predate that guarantee compiling.
// New code should call format.Parse directly.
func MustParse(format interpol.InterpolationFormat, definition string) interpol.Template {
	return format.Parse(definition)
}
