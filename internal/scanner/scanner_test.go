package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohsen1/tsz-sub013/internal/scanner"
	"github.com/mohsen1/tsz-sub013/internal/token"
)

func scanAll(src string) []token.SyntaxKind {
	s := scanner.New(src, nil)
	var kinds []token.SyntaxKind
	for {
		kinds = append(kinds, s.GetToken())
		if s.GetToken() == token.EndOfFile {
			break
		}
		s.Scan()
	}
	return kinds
}

func TestScanIdentifiersAndKeywords(t *testing.T) {
	kinds := scanAll("let x = foo")
	assert.Equal(t, []token.SyntaxKind{
		token.LetKeyword, token.Identifier, token.EqualsToken, token.Identifier, token.EndOfFile,
	}, kinds)
}

func TestScanNumericLiterals(t *testing.T) {
	s := scanner.New("3.14", nil)
	require.Equal(t, token.NumericLiteral, s.GetToken())
	assert.Equal(t, "3.14", s.GetTokenValueRef())
}

func TestScanNumericLiteralWithSeparators(t *testing.T) {
	s := scanner.New("1_000", nil)
	require.Equal(t, token.NumericLiteral, s.GetToken())
	assert.Equal(t, "1000", s.GetTokenValueRef())
}

func TestScanStringLiteralWithEscapes(t *testing.T) {
	s := scanner.New(`"a\nb"`, nil)
	require.Equal(t, token.StringLiteral, s.GetToken())
	assert.Equal(t, "a\nb", s.GetTokenValueRef())
}

func TestUnterminatedStringSetsFlag(t *testing.T) {
	s := scanner.New(`"abc`, nil)
	assert.True(t, s.IsUnterminated())
}

func TestTemplateHeadAndTail(t *testing.T) {
	s := scanner.New("`a${b}c`", nil)
	require.Equal(t, token.TemplateHead, s.GetToken())
	assert.Equal(t, "a", s.GetTokenValueRef())

	s.Scan() // identifier b
	require.Equal(t, token.Identifier, s.GetToken())

	s.Scan() // `}` is lexed as CloseBraceToken until rescanned
	require.Equal(t, token.CloseBraceToken, s.GetToken())

	s.ReScanTemplateToken(false)
	require.Equal(t, token.TemplateTail, s.GetToken())
	assert.Equal(t, "c", s.GetTokenValueRef())
}

func TestPunctuatorLongestMatchFirst(t *testing.T) {
	kinds := scanAll(">>>=")
	assert.Equal(t, []token.SyntaxKind{token.GreaterThanGreaterThanGreaterThanEqualsToken, token.EndOfFile}, kinds)
}

func TestSaveStateRestoreStateRoundTrip(t *testing.T) {
	s := scanner.New("a b c", nil)
	snap := s.SaveState()
	s.Scan()
	s.Scan()
	assert.Equal(t, token.EndOfFile, func() token.SyntaxKind { s.Scan(); return s.GetToken() }())

	s.RestoreState(snap)
	assert.Equal(t, token.Identifier, s.GetToken())
	assert.Equal(t, "a", s.GetTokenValueRef())
}

func TestHasPrecedingLineBreak(t *testing.T) {
	s := scanner.New("a\nb", nil)
	assert.False(t, s.HasPrecedingLineBreak())
	s.Scan()
	assert.True(t, s.HasPrecedingLineBreak())
}

func TestJsxTextRescan(t *testing.T) {
	s := scanner.New("hello{x}", nil)
	kind := s.ReScanJSXToken(false)
	assert.Equal(t, token.JsxText, kind)
	assert.Equal(t, "hello", s.GetTokenValueRef())
}

func TestPrivateIdentifier(t *testing.T) {
	s := scanner.New("#field", nil)
	assert.Equal(t, token.PrivateIdentifier, s.GetToken())
	assert.Equal(t, "#field", s.GetTokenValueRef())
}
