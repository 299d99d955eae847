package interpol

// Visitor receives exactly one callback per call to Next, matching
// the single fragment kind recognized at the cursor's current
// position. Its return value is threaded back out of Next verbatim,
// so R can be anything a caller's walk needs to accumulate.
type Visitor[R any] interface {
	Literal(text string) R
	Constant(definition, value string) R
	Reference(definition, name string) R
	None() R
}

// TemplateParser is a stateful cursor over one input string, emitting
// literal, constant and reference fragments in source order. A new
// parser starts at position 0; Done reports whether the whole input
// has been consumed.
type TemplateParser struct {
	scanner TokenScanner
	src     string

	position int

	cachedOpen    int
	cachedEnd     int
	cachedSymbol  Symbol
	cachedFound   bool
	cacheValid    bool
	done          bool
	emittedEmpty  bool
}

// NewTemplateParser creates a parser walking input with scanner.
func NewTemplateParser(scanner TokenScanner, input string) *TemplateParser {
	return &TemplateParser{scanner: scanner, src: input}
}

// Done reports whether the parser has emitted its final fragment.
func (p *TemplateParser) Done() bool { return p.done }

// Position returns the parser's current offset into Input, always
// satisfying 0 <= Position() <= len(Input()).
func (p *TemplateParser) Position() int { return p.position }

// Input returns the string the parser walks.
func (p *TemplateParser) Input() string { return p.src }

// Next consumes the next fragment and invokes exactly one method of
// v: Literal, Constant or Reference for a recognized fragment, or
// None once the input is exhausted. Every call emits at most one
// fragment; literal fragments concatenate to exactly the non-symbol
// parts of the input, and symbol fragments cover their own bounds –
// together they partition Input() exactly. The empty input is a
// special case: it yields one Literal("") followed by one None().
func Next[R any](p *TemplateParser, v Visitor[R]) R {
	if p.done {
		return v.None()
	}
	if p.position == len(p.src) {
		if len(p.src) == 0 && !p.emittedEmpty {
			p.emittedEmpty = true
			return v.Literal("")
		}
		p.done = true
		return v.None()
	}
	if !p.cacheValid || p.position == p.cachedEnd {
		if tok, ok := p.scanner.Find(p.src, p.position); ok {
			p.cachedOpen, p.cachedEnd, p.cachedSymbol, p.cachedFound = tok.From, tok.To, tok.Value, true
		} else {
			p.cachedOpen, p.cachedEnd, p.cachedFound = len(p.src), len(p.src), false
		}
		p.cacheValid = true
	}
	if p.position == p.cachedOpen && p.cachedFound {
		sym := p.cachedSymbol
		p.position = p.cachedEnd
		if sym.IsConstant {
			return v.Constant(sym.Definition, sym.Value)
		}
		return v.Reference(sym.Definition, sym.Value)
	}
	text := p.src[p.position:p.cachedOpen]
	p.position = p.cachedOpen
	return v.Literal(text)
}

type fragment struct {
	template Template
	ok       bool
}

type fragmentVisitor struct{}

func (fragmentVisitor) Literal(text string) fragment { return fragment{Literal(text), true} }

func (fragmentVisitor) Constant(definition, value string) fragment {
	return fragment{Constant(definition, value), true}
}

func (fragmentVisitor) Reference(definition, name string) fragment {
	return fragment{Reference(definition, name), true}
}

func (fragmentVisitor) None() fragment { return fragment{} }

// NextFragment is the streaming adapter yielding Template fragments:
// it wraps Next so callers that want a Template rather than four
// separate callbacks can simply loop until ok is false.
func (p *TemplateParser) NextFragment() (tmpl Template, ok bool) {
	f := Next[fragment](p, fragmentVisitor{})
	return f.template, f.ok
}
