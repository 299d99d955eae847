package interpol

import (
	"strings"
	"unicode/utf8"
)

// TokenScanner finds the next Symbol in input starting at or after
// offset. Implementations must be deterministic and pure over
// (input, offset): no state may leak between calls. offset always
// satisfies 0 <= offset <= len(input); Find returns false when no
// symbol occurs at or after offset, otherwise a Token t with
// offset <= t.From <= t.To <= len(input).
type TokenScanner interface {
	Find(input string, offset int) (Token[Symbol], bool)
}

// SymbolScanner is the TokenScanner behind every InterpolationFormat.
// It is configured with an opening sequence, a closing sequence (or,
// alternatively, a predicate deciding where a placeholder name ends)
// and an escaping sequence.
//
// Construction invariants (enforced by InterpolationFormat, not by
// SymbolScanner itself): Opening is non-empty; exactly one of Closing
// or ClosingPredicate is set; Escaping is either empty, equal to
// Opening, or contains no occurrence of Opening.
type SymbolScanner struct {
	Opening          string
	Closing          string
	ClosingPredicate func(rune) bool
	Escaping         string
}

// Find implements TokenScanner.
func (s SymbolScanner) Find(input string, offset int) (Token[Symbol], bool) {
	rel := strings.Index(input[offset:], s.Opening)
	if rel < 0 {
		return Token[Symbol]{}, false
	}
	p := offset + rel
	if tok, ok := s.escapeAt(input, offset, p); ok {
		return tok, true
	}
	return s.referenceAt(input, p)
}

// escapeAt checks the escape tie-break rules of an opening sequence
// found at p. When Escaping equals Opening the escape is a doubled
// opening ("$$"), detected by looking forward from p. Otherwise an
// escape is the Escaping sequence immediately preceding p, detected
// by looking backward – but never further back than offset, since a
// byte before offset was already consumed by a previous token and
// reusing it here would hand Find's caller a token starting before
// the position it asked to scan from.
func (s SymbolScanner) escapeAt(input string, offset, p int) (Token[Symbol], bool) {
	if s.Escaping == "" {
		return Token[Symbol]{}, false
	}
	if s.Escaping == s.Opening {
		after := p + len(s.Opening)
		if strings.HasPrefix(input[after:], s.Opening) {
			to := after + len(s.Opening)
			return Token[Symbol]{
				From: p, To: to,
				Value: Symbol{Definition: input[p:to], Value: s.Opening, IsConstant: true},
			}, true
		}
		return Token[Symbol]{}, false
	}
	from := p - len(s.Escaping)
	if from >= offset && input[from:p] == s.Escaping {
		to := p + len(s.Opening)
		return Token[Symbol]{
			From: from, To: to,
			Value: Symbol{Definition: input[from:to], Value: s.Opening, IsConstant: true},
		}, true
	}
	return Token[Symbol]{}, false
}

// referenceAt builds the reference (or dangling-open constant) token
// for the opening sequence found at p.
func (s SymbolScanner) referenceAt(input string, p int) (Token[Symbol], bool) {
	start := p + len(s.Opening)
	var q, closingLen int
	if s.ClosingPredicate != nil {
		q = s.scanPredicate(input, start)
		closingLen = 0
	} else {
		rel := strings.Index(input[start:], s.Closing)
		if rel < 0 {
			to := start
			return Token[Symbol]{
				From: p, To: to,
				Value: Symbol{Definition: input[p:to], Value: s.Opening, IsConstant: true},
			}, true
		}
		q = start + rel
		closingLen = len(s.Closing)
	}
	to := q + closingLen
	return Token[Symbol]{
		From: p, To: to,
		Value: Symbol{
			Definition: input[p:to],
			Value:      input[start:q],
			IsConstant: false,
		},
	}, true
}

// scanPredicate scans forward from start while ClosingPredicate
// accepts the current rune and the current position does not start a
// new opening (or escaped opening) sequence.
func (s SymbolScanner) scanPredicate(input string, start int) int {
	q := start
	for q < len(input) {
		if strings.HasPrefix(input[q:], s.Opening) {
			break
		}
		if s.Escaping != "" && strings.HasPrefix(input[q:], s.Escaping+s.Opening) {
			break
		}
		r, size := utf8.DecodeRuneInString(input[q:])
		if !s.ClosingPredicate(r) {
			break
		}
		q += size
	}
	return q
}
