// Package parser implements a recursive-descent, speculative-lookahead
// parser over internal/scanner tokens, building internal/ast.Arena nodes
// directly rather than an intermediate parse tree. The grammar follows
// TypeScript's own parser in spirit: Pratt-style precedence climbing for
// expressions, scanner-state save/restore for the handful of constructs
// that cannot be told apart by a single token of lookahead (arrow function
// vs. parenthesized expression, type assertion vs. JSX), and structured
// recovery that synthesizes Missing nodes instead of aborting on malformed
// input.
package parser

import (
	"github.com/mohsen1/tsz-sub013/internal/ast"
	"github.com/mohsen1/tsz-sub013/internal/atom"
	"github.com/mohsen1/tsz-sub013/internal/diagnostic"
	"github.com/mohsen1/tsz-sub013/internal/scanner"
	"github.com/mohsen1/tsz-sub013/internal/token"
)

// Parser owns one scanner, one arena, and the diagnostics accumulated
// while turning the former into the latter.
type Parser struct {
	s        *scanner.Scanner
	arena    *ast.Arena
	diags    *diagnostic.Bag
	fileName string

	// isJSX is true for .tsx-style input, enabling `<` to open a JSX
	// element in expression position instead of only a type-argument list.
	isJSX bool

	// inDisallowInContext is set while a for-statement initializer
	// expression is parsed, so `in` is not folded in as a binary operator
	// there.
	inDisallowInContext bool
}

// New returns a Parser ready to parse text as fileName. JSX element syntax
// is enabled when fileName ends in ".tsx" or ".jsx" (mirroring the scanner/parser
// split spec.md §6.1 draws: the parser, not the scanner, owns this policy
// choice).
func New(text, fileName string) *Parser {
	interner := atom.New()
	sc := scanner.New(text, interner)
	p := &Parser{
		s:        sc,
		arena:    ast.New(interner),
		diags:    &diagnostic.Bag{},
		fileName: fileName,
	}
	p.isJSX = hasSuffix(fileName, ".tsx") || hasSuffix(fileName, ".jsx")
	return p
}

func hasSuffix(s, suffix string) bool {
	if len(s) < len(suffix) {
		return false
	}
	return s[len(s)-len(suffix):] == suffix
}

// Arena returns the arena built so far without transferring ownership.
func (p *Parser) Arena() *ast.Arena { return p.arena }

// IntoArena transfers ownership of the built arena to the caller, handing
// the scanner's interner along with it (spec.md §6.1, §4.1).
func (p *Parser) IntoArena() *ast.Arena {
	p.arena.Interner = p.s.TakeInterner()
	return p.arena
}

// Diagnostics returns the diagnostics accumulated so far.
func (p *Parser) Diagnostics() *diagnostic.Bag { return p.diags }

// IntoParts is the terminal call of the public contract (spec.md §4.3.3):
// hand back the arena and diagnostics together, consuming the Parser.
func (p *Parser) IntoParts() (*ast.Arena, *diagnostic.Bag) {
	return p.IntoArena(), p.diags
}

// --- token-level helpers -----------------------------------------------

func (p *Parser) token() token.SyntaxKind { return p.s.GetToken() }
func (p *Parser) pos() uint32            { return p.s.TokenPos() }
func (p *Parser) end() uint32            { return p.s.TokenEnd() }
func (p *Parser) text() string           { return p.s.GetTokenValueRef() }

func (p *Parser) next() { p.s.Scan() }

// at reports whether the current token is kind.
func (p *Parser) at(kind token.SyntaxKind) bool { return p.token() == kind }

// parseOptional consumes and returns true if the current token is kind.
func (p *Parser) parseOptional(kind token.SyntaxKind) bool {
	if p.at(kind) {
		p.next()
		return true
	}
	return false
}

// expect consumes kind, or records a diagnostic and returns a zero-width
// span at the current position, consuming nothing, if the token does not
// match (spec.md §7's "nothing in the core panics on malformed input").
func (p *Parser) expect(kind token.SyntaxKind) (pos, end uint32) {
	if p.at(kind) {
		pos, end = p.pos(), p.end()
		p.next()
		return pos, end
	}
	at := p.pos()
	p.diags.Add(diagnostic.Diagnostic{
		Code:     diagnostic.CodeExpectedToken,
		Category: diagnostic.CategoryError,
		Pos:      int(at),
		End:      int(at),
		Message:  "expected " + kind.String() + " but found " + p.token().String(),
	})
	return at, at
}

// expectIdentifierName consumes an Identifier (or a contextual keyword
// used in name position) and returns its node, synthesizing a Missing
// identifier on failure so callers always get a usable NodeIndex.
func (p *Parser) expectIdentifierName() ast.NodeIndex {
	if p.at(token.Identifier) || isContextualKeyword(p.token()) {
		pos, end, txt := p.pos(), p.end(), p.text()
		p.next()
		return p.arena.AddIdentifier(pos, end, txt)
	}
	at := p.pos()
	p.diags.Add(diagnostic.Diagnostic{
		Code:     diagnostic.CodeExpectedIdentifier,
		Category: diagnostic.CategoryError,
		Pos:      int(at),
		End:      int(at),
		Message:  "expected identifier but found " + p.token().String(),
	})
	return p.arena.AddIdentifier(at, at, "")
}

func isContextualKeyword(k token.SyntaxKind) bool {
	switch k {
	case token.AsKeyword, token.AssertsKeyword, token.AsyncKeyword, token.AwaitKeyword,
		token.DeclareKeyword, token.GetKeyword, token.GlobalKeyword, token.InferKeyword,
		token.IsKeyword, token.KeyOfKeyword, token.ModuleKeyword, token.NamespaceKeyword,
		token.ReadonlyKeyword, token.SetKeyword, token.StaticKeyword, token.TypeKeyword,
		token.FromKeyword, token.OfKeyword, token.AbstractKeyword, token.InterfaceKeyword,
		token.ImplementsKeyword, token.PrivateKeyword, token.ProtectedKeyword, token.PublicKeyword,
		token.YieldKeyword, token.LetKeyword, token.UndefinedKeyword, token.UniqueKeyword,
		token.SatisfiesKeyword:
		return true
	default:
		return false
	}
}

// canParseSemicolon reports whether the statement terminator is satisfied:
// an explicit `;`, a `}` that closes the enclosing block, end of file, or
// automatic semicolon insertion across a line break (spec.md §4.3's
// "ASI-adjacent" edge case).
func (p *Parser) canParseSemicolon() bool {
	return p.at(token.SemicolonToken) || p.at(token.CloseBraceToken) ||
		p.at(token.EndOfFile) || p.s.HasPrecedingLineBreak()
}

func (p *Parser) parseSemicolon() {
	if p.parseOptional(token.SemicolonToken) {
		return
	}
	if !p.canParseSemicolon() {
		p.expect(token.SemicolonToken)
	}
}

// nodeList packages a parsed element slice into a NodeList with position
// info, the uniform representation spec.md §3.2 requires for every
// syntactic list.
func nodeList(nodes []ast.NodeIndex, pos, end uint32, trailingComma bool) ast.NodeList {
	if nodes == nil {
		nodes = []ast.NodeIndex{}
	}
	return ast.NodeList{Nodes: nodes, Pos: pos, End: end, HasTrailingComma: trailingComma}
}

// ParseSourceFile parses the whole input as a single TypeScript source
// file and returns the SourceFile node (spec.md §4.3.3's entry point).
func (p *Parser) ParseSourceFile() ast.NodeIndex {
	startPos := p.pos()
	var statements []ast.NodeIndex
	for !p.at(token.EndOfFile) {
		before := p.pos()
		stmt := p.parseStatement()
		statements = append(statements, stmt)
		if p.pos() == before {
			// Defensive progress guard: a statement parse that consumed
			// nothing would loop forever over malformed input.
			p.next()
		}
	}
	eofPos := p.pos()
	eof := p.arena.AddKeywordExpr(token.EndOfFile, eofPos, eofPos)
	sf := p.arena.AddSourceFile(startPos, eofPos, ast.SourceFileData{
		Statements:     nodeList(statements, startPos, eofPos, false),
		EndOfFileToken: eof,
		FileName:       p.fileName,
	})
	for _, st := range statements {
		p.arena.SetParent(st, sf)
	}
	return sf
}
