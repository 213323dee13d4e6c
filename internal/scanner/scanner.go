// Package scanner is a concrete implementation of the external scanner
// contract spec.md §6.1 assumes the parser is handed. spec.md treats the
// scanner as an out-of-scope collaborator and specifies only its
// interface; this package exists so the parser (internal/parser) is
// actually runnable and testable end to end, generalized from the
// teacher's internal/scanner/scanner.go (a position-cursor + byte-dispatch
// single-file scanner) into a full TypeScript token scanner.
package scanner

import (
	"strings"
	"unicode/utf8"

	"github.com/mohsen1/tsz-sub013/internal/atom"
	"github.com/mohsen1/tsz-sub013/internal/token"
)

// Scanner tokenizes UTF-8 source text on demand. It is single-threaded and
// unsynchronized per spec.md §5 ("no mutable state is shared between
// threads inside the core").
type Scanner struct {
	text     string
	interner *atom.Interner

	pos   int // byte offset of the scan cursor, after the current token
	// current token
	tokenKind            token.SyntaxKind
	tokenStart           int
	tokenEnd             int
	tokenValue           string
	tokenAtom            atom.Atom
	unterminated         bool
	precedingLineBreak   bool
}

// New returns a Scanner positioned before the first token of text.
func New(text string, interner *atom.Interner) *Scanner {
	if interner == nil {
		interner = atom.New()
	}
	s := &Scanner{text: text, interner: interner}
	s.Scan()
	return s
}

// Interner returns the interner this scanner (and the tokens it has
// produced) uses.
func (s *Scanner) Interner() *atom.Interner { return s.interner }

// TakeInterner hands the interner to the caller (spec.md §6.1): after
// parsing, the parser transfers the interner into the arena so downstream
// consumers resolve atoms without a separate handle (spec.md §4.1).
func (s *Scanner) TakeInterner() *atom.Interner {
	in := s.interner
	s.interner = nil
	return in
}

// GetToken returns the current token's kind.
func (s *Scanner) GetToken() token.SyntaxKind { return s.tokenKind }

// GetTokenValueRef returns the current token's decoded text (identifier
// name, string literal contents with escapes resolved, numeric literal
// digits as written).
func (s *Scanner) GetTokenValueRef() string { return s.tokenValue }

// GetTokenAtom interns and returns the current token's text. Cheap to call
// repeatedly: the interner dedupes.
func (s *Scanner) GetTokenAtom() atom.Atom {
	if s.tokenAtom == atom.None && s.tokenValue != "" {
		s.tokenAtom = s.interner.Intern(s.tokenValue)
	}
	return s.tokenAtom
}

func (s *Scanner) TokenPos() uint32 { return uint32(s.tokenStart) }
func (s *Scanner) TokenEnd() uint32 { return uint32(s.tokenEnd) }

// IsUnterminated reports whether the current token (a string, template, or
// block comment) ran off the end of input without its closing delimiter.
func (s *Scanner) IsUnterminated() bool { return s.unterminated }

// HasPrecedingLineBreak reports whether a line terminator occurred in the
// trivia immediately before the current token; used for ASI-adjacent
// parsing decisions.
func (s *Scanner) HasPrecedingLineBreak() bool { return s.precedingLineBreak }

// State is an opaque scanner snapshot for speculative look-ahead
// (spec.md §4.3.1).
type State struct {
	pos                int
	tokenKind          token.SyntaxKind
	tokenStart         int
	tokenEnd           int
	tokenValue         string
	tokenAtom          atom.Atom
	unterminated       bool
	precedingLineBreak bool
}

// SaveState captures the scanner's current position and token.
func (s *Scanner) SaveState() State {
	return State{
		pos: s.pos, tokenKind: s.tokenKind, tokenStart: s.tokenStart, tokenEnd: s.tokenEnd,
		tokenValue: s.tokenValue, tokenAtom: s.tokenAtom,
		unterminated: s.unterminated, precedingLineBreak: s.precedingLineBreak,
	}
}

// RestoreState rewinds the scanner to a previously captured State.
func (s *Scanner) RestoreState(st State) {
	s.pos = st.pos
	s.tokenKind = st.tokenKind
	s.tokenStart = st.tokenStart
	s.tokenEnd = st.tokenEnd
	s.tokenValue = st.tokenValue
	s.tokenAtom = st.tokenAtom
	s.unterminated = st.unterminated
	s.precedingLineBreak = st.precedingLineBreak
}

func isLineBreak(r rune) bool { return r == '\n' || r == '\r' || r == ' ' || r == ' ' }

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\v' || r == '\f' || r == 0xA0 || isLineBreak(r)
}

func isIdentifierStart(r rune) bool {
	return r == '_' || r == '$' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r > 127 && isLetterLike(r))
}

func isIdentifierPart(r rune) bool {
	return isIdentifierStart(r) || (r >= '0' && r <= '9')
}

// isLetterLike is a crude approximation of ID_Continue for non-ASCII
// text: treat any rune at or above U+00C0 as identifier-capable, without
// consulting unicode letter classes, which covers the overwhelming majority of real-world
// TypeScript identifiers without pulling in the full Unicode ID_Start/
// ID_Continue property tables.
func isLetterLike(r rune) bool {
	return r >= 0xC0 // crude: skips Latin-1 punctuation/control range
}

// Scan advances past the current token's trivia and lexes the next token,
// leaving it current. The scanner always has a current token after
// construction, so callers read-then-advance rather than advance-then-read.
func (s *Scanner) Scan() {
	s.precedingLineBreak = false
	s.unterminated = false
	s.tokenValue = ""
	s.tokenAtom = atom.None

	s.skipTrivia()

	s.tokenStart = s.pos
	if s.pos >= len(s.text) {
		s.tokenKind = token.EndOfFile
		s.tokenEnd = s.pos
		return
	}

	r, size := utf8.DecodeRuneInString(s.text[s.pos:])

	switch {
	case isIdentifierStart(r):
		s.scanIdentifier()
	case r >= '0' && r <= '9':
		s.scanNumber()
	case r == '"' || r == '\'':
		s.scanString(byte(r))
	case r == '`':
		s.scanTemplateFrom(s.pos, true)
	default:
		s.scanPunctuator(r, size)
	}
	s.tokenEnd = s.pos
}

func (s *Scanner) skipTrivia() {
	for s.pos < len(s.text) {
		r, size := utf8.DecodeRuneInString(s.text[s.pos:])
		switch {
		case isLineBreak(r):
			s.precedingLineBreak = true
			s.pos += size
		case isWhitespace(r):
			s.pos += size
		case r == '/' && s.pos+1 < len(s.text) && s.text[s.pos+1] == '/':
			s.pos += 2
			for s.pos < len(s.text) {
				r2, sz2 := utf8.DecodeRuneInString(s.text[s.pos:])
				if isLineBreak(r2) {
					break
				}
				s.pos += sz2
			}
		case r == '/' && s.pos+1 < len(s.text) && s.text[s.pos+1] == '*':
			start := s.pos
			s.pos += 2
			closed := false
			for s.pos < len(s.text) {
				if s.text[s.pos] == '*' && s.pos+1 < len(s.text) && s.text[s.pos+1] == '/' {
					s.pos += 2
					closed = true
					break
				}
				if isLineBreak(rune(s.text[s.pos])) {
					s.precedingLineBreak = true
				}
				s.pos++
			}
			if !closed {
				s.tokenStart = start
				s.unterminated = true
				return
			}
		default:
			return
		}
	}
}

func (s *Scanner) scanIdentifier() {
	start := s.pos
	for s.pos < len(s.text) {
		r, size := utf8.DecodeRuneInString(s.text[s.pos:])
		if !isIdentifierPart(r) {
			break
		}
		s.pos += size
	}
	text := s.text[start:s.pos]
	s.tokenValue = text
	if kw, ok := keywords[text]; ok {
		s.tokenKind = kw
	} else {
		s.tokenKind = token.Identifier
	}
}

func (s *Scanner) scanNumber() {
	start := s.pos
	for s.pos < len(s.text) && isDigitOrSeparator(s.text[s.pos]) {
		s.pos++
	}
	if s.pos < len(s.text) && s.text[s.pos] == '.' {
		s.pos++
		for s.pos < len(s.text) && isDigitOrSeparator(s.text[s.pos]) {
			s.pos++
		}
	}
	if s.pos < len(s.text) && (s.text[s.pos] == 'e' || s.text[s.pos] == 'E') {
		save := s.pos
		s.pos++
		if s.pos < len(s.text) && (s.text[s.pos] == '+' || s.text[s.pos] == '-') {
			s.pos++
		}
		if s.pos < len(s.text) && s.text[s.pos] >= '0' && s.text[s.pos] <= '9' {
			for s.pos < len(s.text) && isDigitOrSeparator(s.text[s.pos]) {
				s.pos++
			}
		} else {
			s.pos = save
		}
	}
	if s.pos < len(s.text) && s.text[s.pos] == 'n' {
		s.pos++
		s.tokenKind = token.BigIntLiteral
	} else {
		s.tokenKind = token.NumericLiteral
	}
	s.tokenValue = strings.ReplaceAll(s.text[start:s.pos], "_", "")
}

func isDigitOrSeparator(b byte) bool { return (b >= '0' && b <= '9') || b == '_' }

func (s *Scanner) scanString(quote byte) {
	start := s.pos
	s.pos++ // opening quote
	var sb strings.Builder
	for s.pos < len(s.text) {
		c := s.text[s.pos]
		if c == quote {
			s.pos++
			s.tokenValue = sb.String()
			s.tokenKind = token.StringLiteral
			return
		}
		if isLineBreak(rune(c)) {
			break
		}
		if c == '\\' && s.pos+1 < len(s.text) {
			decoded, n := decodeEscape(s.text[s.pos:])
			sb.WriteString(decoded)
			s.pos += n
			continue
		}
		sb.WriteByte(c)
		s.pos++
	}
	s.tokenStart = start
	s.unterminated = true
	s.tokenValue = sb.String()
	s.tokenKind = token.StringLiteral
}

func decodeEscape(rest string) (string, int) {
	if len(rest) < 2 {
		return rest, len(rest)
	}
	switch rest[1] {
	case 'n':
		return "\n", 2
	case 't':
		return "\t", 2
	case 'r':
		return "\r", 2
	case '\\':
		return "\\", 2
	case '\'':
		return "'", 2
	case '"':
		return "\"", 2
	case '`':
		return "`", 2
	case '$':
		return "$", 2
	default:
		return rest[1:2], 2
	}
}

// scanTemplateFrom lexes a template literal segment starting at a backtick
// (isHead=true) or, via ReScanTemplateToken, continuing after a `}` that
// closed a `${...}` substitution (isHead=false).
func (s *Scanner) scanTemplateFrom(start int, isHead bool) {
	s.pos = start + 1 // skip ` or }
	segStart := s.pos
	for s.pos < len(s.text) {
		c := s.text[s.pos]
		if c == '`' {
			s.tokenValue = s.text[segStart:s.pos]
			s.pos++
			if isHead {
				s.tokenKind = token.NoSubstitutionTemplateLiteral
			} else {
				s.tokenKind = token.TemplateTail
			}
			return
		}
		if c == '$' && s.pos+1 < len(s.text) && s.text[s.pos+1] == '{' {
			s.tokenValue = s.text[segStart:s.pos]
			s.pos += 2
			if isHead {
				s.tokenKind = token.TemplateHead
			} else {
				s.tokenKind = token.TemplateMiddle
			}
			return
		}
		if c == '\\' && s.pos+1 < len(s.text) {
			s.pos += 2
			continue
		}
		s.pos++
	}
	s.tokenValue = s.text[segStart:s.pos]
	s.unterminated = true
	if isHead {
		s.tokenKind = token.NoSubstitutionTemplateLiteral
	} else {
		s.tokenKind = token.TemplateTail
	}
}

// ReScanTemplateToken re-lexes the current `}` as a template continuation
// (TemplateMiddle/TemplateTail) rather than a brace punctuator. isTagged is
// accepted for interface parity with spec.md §6.1; tagged templates do not
// change escape-sequence validation strictness in this implementation.
func (s *Scanner) ReScanTemplateToken(isTagged bool) {
	_ = isTagged
	if s.tokenKind != token.CloseBraceToken {
		return
	}
	s.scanTemplateFrom(s.tokenStart, false)
	s.tokenEnd = s.pos
}

// ReScanJSXToken re-lexes from the current token's start in JSX text mode,
// consuming raw text up to the next `{`, `<`, or EOF as a single JsxText
// token (JsxTextAllWhitespace when the non-empty run is all whitespace). inExpression is accepted for interface parity; JSX text scanning
// does not depend on it in this implementation.
func (s *Scanner) ReScanJSXToken(inExpression bool) token.SyntaxKind {
	_ = inExpression
	start := s.tokenStart
	s.pos = start
	allWhitespace := true
	for s.pos < len(s.text) {
		c := s.text[s.pos]
		if c == '{' || c == '<' {
			break
		}
		r, size := utf8.DecodeRuneInString(s.text[s.pos:])
		if !isWhitespace(r) {
			allWhitespace = false
		}
		s.pos += size
	}
	s.tokenValue = s.text[start:s.pos]
	s.tokenEnd = s.pos
	if allWhitespace && s.tokenValue != "" {
		s.tokenKind = token.JsxTextAllWhitespace
	} else {
		s.tokenKind = token.JsxText
	}
	return s.tokenKind
}

// ScanJSXIdentifier re-lexes the current token as a JSX name, which
// additionally permits `-` inside identifier-part position (e.g.
// `data-foo`, `aria-label`) unlike regular identifiers.
func (s *Scanner) ScanJSXIdentifier() {
	if s.tokenKind != token.Identifier {
		return
	}
	for s.pos < len(s.text) {
		c := s.text[s.pos]
		if c == '-' {
			s.pos++
			continue
		}
		r, size := utf8.DecodeRuneInString(s.text[s.pos:])
		if !isIdentifierPart(r) {
			break
		}
		s.pos += size
	}
	s.tokenValue = s.text[s.tokenStart:s.pos]
	s.tokenEnd = s.pos
}

var keywords = map[string]token.SyntaxKind{
	"break": token.BreakKeyword, "case": token.CaseKeyword, "catch": token.CatchKeyword,
	"class": token.ClassKeyword, "const": token.ConstKeyword, "continue": token.ContinueKeyword,
	"debugger": token.DebuggerKeyword, "default": token.DefaultKeyword, "delete": token.DeleteKeyword,
	"do": token.DoKeyword, "else": token.ElseKeyword, "enum": token.EnumKeyword,
	"export": token.ExportKeyword, "extends": token.ExtendsKeyword, "false": token.FalseKeyword,
	"finally": token.FinallyKeyword, "for": token.ForKeyword, "function": token.FunctionKeyword,
	"if": token.IfKeyword, "import": token.ImportKeyword, "in": token.InKeyword,
	"instanceof": token.InstanceOfKeyword, "new": token.NewKeyword, "null": token.NullKeyword,
	"return": token.ReturnKeyword, "super": token.SuperKeyword, "switch": token.SwitchKeyword,
	"this": token.ThisKeyword, "throw": token.ThrowKeyword, "true": token.TrueKeyword,
	"try": token.TryKeyword, "typeof": token.TypeOfKeyword, "var": token.VarKeyword,
	"void": token.VoidKeyword, "while": token.WhileKeyword, "with": token.WithKeyword,
	"as": token.AsKeyword, "asserts": token.AssertsKeyword, "async": token.AsyncKeyword,
	"await": token.AwaitKeyword, "declare": token.DeclareKeyword, "get": token.GetKeyword,
	"global": token.GlobalKeyword, "infer": token.InferKeyword, "is": token.IsKeyword,
	"keyof": token.KeyOfKeyword, "module": token.ModuleKeyword, "namespace": token.NamespaceKeyword,
	"readonly": token.ReadonlyKeyword, "set": token.SetKeyword, "static": token.StaticKeyword,
	"type": token.TypeKeyword, "from": token.FromKeyword, "of": token.OfKeyword,
	"abstract": token.AbstractKeyword, "interface": token.InterfaceKeyword,
	"implements": token.ImplementsKeyword, "private": token.PrivateKeyword,
	"protected": token.ProtectedKeyword, "public": token.PublicKeyword, "yield": token.YieldKeyword,
	"let": token.LetKeyword, "undefined": token.UndefinedKeyword, "unique": token.UniqueKeyword,
	"satisfies": token.SatisfiesKeyword,
}

func (s *Scanner) scanPunctuator(r rune, size int) {
	if r == '#' && s.pos+size < len(s.text) {
		if next, _ := utf8.DecodeRuneInString(s.text[s.pos+size:]); isIdentifierStart(next) {
			s.pos += size
			s.scanPrivateIdentifierBody()
			return
		}
	}
	rest := s.text[s.pos:]
	for _, p := range punctuators {
		if strings.HasPrefix(rest, p.text) {
			s.pos += len(p.text)
			s.tokenKind = p.kind
			return
		}
	}
	// Unknown character: consume it as a single Unknown token so the
	// scanner always makes progress (spec.md §7 "nothing in the core
	// panics on malformed input").
	s.pos += size
	s.tokenKind = token.Unknown
	s.tokenValue = string(r)
}

func (s *Scanner) scanPrivateIdentifierBody() {
	start := s.pos - 1 // include '#'
	for s.pos < len(s.text) {
		r, size := utf8.DecodeRuneInString(s.text[s.pos:])
		if !isIdentifierPart(r) {
			break
		}
		s.pos += size
	}
	s.tokenValue = s.text[start:s.pos]
	s.tokenKind = token.PrivateIdentifier
}

// punctuators is ordered longest-match-first so e.g. ">>>=" is not
// mis-lexed as ">" followed by ">>=".
var punctuators = []struct {
	text string
	kind token.SyntaxKind
}{
	{">>>=", token.GreaterThanGreaterThanGreaterThanEqualsToken},
	{"...", token.DotDotDotToken},
	{"===", token.EqualsEqualsEqualsToken},
	{"!==", token.ExclamationEqualsEqualsToken},
	{">>>", token.GreaterThanGreaterThanGreaterThanToken},
	{"**=", token.AsteriskAsteriskEqualsToken},
	{"<<=", token.LessThanLessThanEqualsToken},
	{">>=", token.GreaterThanGreaterThanEqualsToken},
	{"&&=", token.AmpersandAmpersandEqualsToken},
	{"||=", token.BarBarEqualsToken},
	{"??=", token.QuestionQuestionEqualsToken},
	{"?.", token.QuestionDotToken},
	{"??", token.QuestionQuestionToken},
	{"=>", token.EqualsGreaterThanToken},
	{"==", token.EqualsEqualsToken},
	{"!=", token.ExclamationEqualsToken},
	{"<=", token.LessThanEqualsToken},
	{">=", token.GreaterThanEqualsToken},
	{"&&", token.AmpersandAmpersandToken},
	{"||", token.BarBarToken},
	{"++", token.PlusPlusToken},
	{"--", token.MinusMinusToken},
	{"**", token.AsteriskAsteriskToken},
	{"<<", token.LessThanLessThanToken},
	{">>", token.GreaterThanGreaterThanToken},
	{"+=", token.PlusEqualsToken},
	{"-=", token.MinusEqualsToken},
	{"*=", token.AsteriskEqualsToken},
	{"/=", token.SlashEqualsToken},
	{"%=", token.PercentEqualsToken},
	{"&=", token.AmpersandEqualsToken},
	{"|=", token.BarEqualsToken},
	{"^=", token.CaretEqualsToken},
	{"</", token.LessThanSlashToken},
	{"{", token.OpenBraceToken}, {"}", token.CloseBraceToken},
	{"(", token.OpenParenToken}, {")", token.CloseParenToken},
	{"[", token.OpenBracketToken}, {"]", token.CloseBracketToken},
	{".", token.DotToken}, {";", token.SemicolonToken}, {",", token.CommaToken},
	{"<", token.LessThanToken}, {">", token.GreaterThanToken},
	{"+", token.PlusToken}, {"-", token.MinusToken}, {"*", token.AsteriskToken},
	{"/", token.SlashToken}, {"%", token.PercentToken},
	{"&", token.AmpersandToken}, {"|", token.BarToken}, {"^", token.CaretToken},
	{"!", token.ExclamationToken}, {"~", token.TildeToken},
	{"?", token.QuestionToken}, {":", token.ColonToken}, {"@", token.AtToken},
	{"=", token.EqualsToken}, {"`", token.BacktickToken}, {"#", token.HashToken},
}
