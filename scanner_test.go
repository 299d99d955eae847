package interpol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func bracketScanner() SymbolScanner {
	return SymbolScanner{Opening: "${", Closing: "}", Escaping: "$"}
}

func TestScannerFindsReference(t *testing.T) {
	s := bracketScanner()
	tok, ok := s.Find("hello ${name}!", 0)
	require := assert.New(t)
	require.True(ok)
	require.Equal(6, tok.From)
	require.Equal(13, tok.To)
	require.False(tok.Value.IsConstant)
	require.Equal("${name}", tok.Value.Definition)
	require.Equal("name", tok.Value.Value)
}

func TestScannerNoOpening(t *testing.T) {
	s := bracketScanner()
	_, ok := s.Find("nothing here", 0)
	assert.False(t, ok)
}

func TestScannerDanglingOpen(t *testing.T) {
	s := bracketScanner()
	tok, ok := s.Find("oops ${forever", 0)
	require := assert.New(t)
	require.True(ok)
	require.Equal(5, tok.From)
	require.Equal(7, tok.To)
	require.True(tok.Value.IsConstant)
	require.Equal("${", tok.Value.Definition)
	require.Equal("${", tok.Value.Value)
}

func TestScannerEscapeDistinctFromOpening(t *testing.T) {
	s := bracketScanner()
	tok, ok := s.Find("price is $${n} dollars", 0)
	require := assert.New(t)
	require.True(ok)
	require.True(tok.Value.IsConstant)
	require.Equal(9, tok.From)
	require.Equal("$${", tok.Value.Definition)
	require.Equal("${", tok.Value.Value)
}

func TestScannerDoubledOpeningEscape(t *testing.T) {
	s := SymbolScanner{Opening: "$", Closing: "}", Escaping: "$"}
	tok, ok := s.Find("cost: $$5", 0)
	require := assert.New(t)
	require.True(ok)
	require.True(tok.Value.IsConstant)
	require.Equal("$$", tok.Value.Definition)
	require.Equal("$", tok.Value.Value)
	require.Equal(6, tok.From)
	require.Equal(8, tok.To)
}

func TestScannerPredicateClosing(t *testing.T) {
	s := SymbolScanner{Opening: "$", ClosingPredicate: isNameRune, Escaping: "$"}
	tok, ok := s.Find("hi $name!", 0)
	require := assert.New(t)
	require.True(ok)
	require.False(tok.Value.IsConstant)
	require.Equal("name", tok.Value.Value)
	require.Equal("$name", tok.Value.Definition)
}

func TestScannerPredicateStopsAtNewOpening(t *testing.T) {
	s := SymbolScanner{Opening: "$", ClosingPredicate: isNameRune, Escaping: "$"}
	tok, ok := s.Find("$first$second", 0)
	require := assert.New(t)
	require.True(ok)
	require.Equal("$first", tok.Value.Definition)
	require.Equal(6, tok.To)
}

func TestScannerNoEscapingConfigured(t *testing.T) {
	s := SymbolScanner{Opening: "${", Closing: "}"}
	tok, ok := s.Find("keep $${x} literal-ish", 0)
	require := assert.New(t)
	require.True(ok)
	require.False(tok.Value.IsConstant)
	require.Equal("x", tok.Value.Value)
}
