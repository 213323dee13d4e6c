package parser

import (
	"github.com/mohsen1/tsz-sub013/internal/ast"
	"github.com/mohsen1/tsz-sub013/internal/token"
)

// parseStatement dispatches on the current token to the statement-level
// grammar production it starts. Declarations (function/class/interface/
// type/enum/module/import/export) are statements too, in the same switch,
// matching how the teacher's single-pass dispatcher avoids a separate
// "declaration vs statement" split the grammar doesn't otherwise need.
func (p *Parser) parseStatement() ast.NodeIndex {
	start := p.pos()
	switch p.token() {
	case token.OpenBraceToken:
		return p.parseBlock()
	case token.SemicolonToken:
		p.next()
		return p.arena.AddEmptyStatement(start, p.pos())
	case token.VarKeyword, token.LetKeyword:
		return p.parseVariableStatementOrLabeled(start)
	case token.ConstKeyword:
		if p.isConstEnumAhead() {
			p.next()
			return p.parseEnumDeclaration(start, token.FlagConst)
		}
		return p.parseVariableStatementOrLabeled(start)
	case token.FunctionKeyword:
		return p.parseFunctionDeclaration(start, token.FlagNone)
	case token.ClassKeyword:
		return p.parseClassDeclaration(start, token.FlagNone)
	case token.InterfaceKeyword:
		return p.parseInterfaceDeclaration(start, token.FlagNone)
	case token.TypeKeyword:
		if p.looksLikeTypeAlias() {
			return p.parseTypeAliasDeclaration(start, token.FlagNone)
		}
	case token.EnumKeyword:
		return p.parseEnumDeclaration(start, token.FlagNone)
	case token.IfKeyword:
		return p.parseIfStatement()
	case token.DoKeyword:
		return p.parseDoStatement()
	case token.WhileKeyword:
		return p.parseWhileStatement()
	case token.ForKeyword:
		return p.parseForStatement()
	case token.ReturnKeyword:
		return p.parseReturnOrThrow(token.ReturnStatement)
	case token.ThrowKeyword:
		return p.parseReturnOrThrow(token.ThrowStatement)
	case token.BreakKeyword:
		return p.parseBreakOrContinue(token.BreakStatement)
	case token.ContinueKeyword:
		return p.parseBreakOrContinue(token.ContinueStatement)
	case token.TryKeyword:
		return p.parseTryStatement()
	case token.SwitchKeyword:
		return p.parseSwitchStatement()
	case token.DebuggerKeyword:
		p.next()
		p.parseSemicolon()
		return p.arena.AddDebuggerStatement(start, p.pos())
	case token.ImportKeyword:
		if !p.isImportCallOrMeta() {
			return p.parseImportDeclaration(start)
		}
	case token.ExportKeyword:
		return p.parseExportDeclaration(start)
	case token.AtToken:
		return p.parseDecoratedStatement(start)
	case token.DeclareKeyword, token.AbstractKeyword, token.AsyncKeyword,
		token.PublicKeyword, token.PrivateKeyword, token.ProtectedKeyword, token.StaticKeyword, token.ReadonlyKeyword:
		if mods, ok := p.tryParseModifierSequence(); ok {
			return p.parseModifiedDeclaration(start, mods)
		}
	case token.NamespaceKeyword, token.ModuleKeyword:
		if p.looksLikeModuleDeclaration() {
			return p.parseModuleDeclaration(start, token.FlagNone)
		}
	}
	return p.parseExpressionOrLabeledStatement(start)
}

// isImportCallOrMeta disambiguates `import(...)`/`import.meta` (expression
// forms) from `import ... from "..."` / `import "..."` (declaration forms):
// both start with the ImportKeyword token.
func (p *Parser) isImportCallOrMeta() bool {
	snap := p.s.SaveState()
	p.next()
	isCallOrMeta := p.at(token.OpenParenToken) || p.at(token.DotToken)
	p.s.RestoreState(snap)
	return isCallOrMeta
}

// looksLikeTypeAlias disambiguates `type Foo = ...` from a plain
// identifier named `type` used as a value, by checking for an identifier
// immediately after `type` with no line break (ASI-sensitive, as in the
// original grammar).
func (p *Parser) looksLikeTypeAlias() bool {
	snap := p.s.SaveState()
	p.next()
	ok := (p.at(token.Identifier) || isContextualKeyword(p.token())) && !p.s.HasPrecedingLineBreak()
	if ok {
		p.next()
		ok = p.at(token.EqualsToken) || p.at(token.LessThanToken)
	}
	p.s.RestoreState(snap)
	return ok
}

func (p *Parser) looksLikeModuleDeclaration() bool {
	snap := p.s.SaveState()
	p.next()
	ok := p.at(token.Identifier) || p.at(token.StringLiteral) || p.at(token.GlobalKeyword)
	p.s.RestoreState(snap)
	return ok
}

func (p *Parser) parseBlock() ast.NodeIndex {
	start := p.pos()
	p.expect(token.OpenBraceToken)
	var statements []ast.NodeIndex
	for !p.at(token.CloseBraceToken) && !p.at(token.EndOfFile) {
		before := p.pos()
		statements = append(statements, p.parseStatement())
		if p.pos() == before {
			p.next()
		}
	}
	_, end := p.expect(token.CloseBraceToken)
	return p.arena.AddBlock(start, end, nodeList(statements, start, end, false))
}

// isConstEnumAhead reports whether the current `const` token is immediately
// followed by `enum`, i.e. this is a `const enum` declaration rather than a
// `const` variable statement.
func (p *Parser) isConstEnumAhead() bool {
	snap := p.s.SaveState()
	diagMark := p.diags.Mark()
	p.next()
	isEnum := p.at(token.EnumKeyword)
	p.s.RestoreState(snap)
	p.diags.Truncate(diagMark)
	return isEnum
}

// parseVariableStatementOrLabeled handles `var`/`let`/`const` declaration
// lists. `let`/`const` used as a plain identifier (e.g. `let: string`, a
// labeled statement) is not attempted: both are reserved as declaration
// heads at statement start in this implementation, the common case.
func (p *Parser) parseVariableStatementOrLabeled(start uint32) ast.NodeIndex {
	flags := token.FlagNone
	switch p.token() {
	case token.LetKeyword:
		flags = token.FlagLet
	case token.ConstKeyword:
		flags = token.FlagConst
	}
	p.next()
	declList := p.parseVariableDeclarationList(flags)
	p.parseSemicolon()
	return p.arena.AddVariableStatement(start, p.pos(), flags, declList)
}

func (p *Parser) parseVariableDeclarationList(flags token.NodeFlags) ast.NodeIndex {
	start := p.pos()
	var decls []ast.NodeIndex
	for {
		decls = append(decls, p.parseVariableDeclaration())
		if !p.parseOptional(token.CommaToken) {
			break
		}
	}
	return p.arena.AddVariableDeclarationList(start, p.pos(), flags, nodeList(decls, start, p.pos(), false))
}

func (p *Parser) parseVariableDeclaration() ast.NodeIndex {
	start := p.pos()
	name := p.parseBindingName()
	p.parseOptional(token.ExclamationToken) // definite assignment assertion: consumed, not recorded on the node
	var typ ast.NodeIndex
	if p.parseOptional(token.ColonToken) {
		typ = p.parseType()
	}
	var init ast.NodeIndex
	if p.parseOptional(token.EqualsToken) {
		init = p.parseAssignmentExpression()
	}
	return p.arena.AddVariableDeclaration(start, p.pos(), name, typ, init)
}

// parseBindingName parses an identifier or a destructuring pattern.
func (p *Parser) parseBindingName() ast.NodeIndex {
	switch p.token() {
	case token.OpenBraceToken:
		return p.parseObjectBindingPattern()
	case token.OpenBracketToken:
		return p.parseArrayBindingPattern()
	default:
		return p.expectIdentifierName()
	}
}

func (p *Parser) parseObjectBindingPattern() ast.NodeIndex {
	start := p.pos()
	p.expect(token.OpenBraceToken)
	var elems []ast.NodeIndex
	for !p.at(token.CloseBraceToken) && !p.at(token.EndOfFile) {
		elems = append(elems, p.parseBindingElement(true))
		if !p.parseOptional(token.CommaToken) {
			break
		}
	}
	_, end := p.expect(token.CloseBraceToken)
	return p.arena.AddBindingPattern(token.ObjectBindingPattern, start, end, ast.BindingPatternData{Elements: nodeList(elems, start, end, false)})
}

func (p *Parser) parseArrayBindingPattern() ast.NodeIndex {
	start := p.pos()
	p.expect(token.OpenBracketToken)
	var elems []ast.NodeIndex
	for !p.at(token.CloseBracketToken) && !p.at(token.EndOfFile) {
		if p.at(token.CommaToken) {
			elems = append(elems, ast.NoNode) // elision
		} else {
			elems = append(elems, p.parseBindingElement(false))
		}
		if !p.parseOptional(token.CommaToken) {
			break
		}
	}
	_, end := p.expect(token.CloseBracketToken)
	return p.arena.AddBindingPattern(token.ArrayBindingPattern, start, end, ast.BindingPatternData{Elements: nodeList(elems, start, end, false)})
}

func (p *Parser) parseBindingElement(inObject bool) ast.NodeIndex {
	start := p.pos()
	isRest := p.parseOptional(token.DotDotDotToken)
	var propertyName, name ast.NodeIndex
	name = p.parseBindingName()
	if inObject && p.parseOptional(token.ColonToken) {
		propertyName = name
		name = p.parseBindingName()
	}
	var init ast.NodeIndex
	if p.parseOptional(token.EqualsToken) {
		init = p.parseAssignmentExpression()
	}
	return p.arena.AddBindingElement(start, p.pos(), ast.BindingElementData{
		PropertyName: propertyName, Name: name, Initializer: init, IsRest: isRest,
	})
}

func (p *Parser) parseReturnOrThrow(kind token.SyntaxKind) ast.NodeIndex {
	start := p.pos()
	p.next()
	var expr ast.NodeIndex
	if !p.canParseSemicolon() {
		expr = p.parseExpression()
	}
	p.parseSemicolon()
	return p.arena.AddReturnThrowStatement(kind, start, p.pos(), expr)
}

func (p *Parser) parseBreakOrContinue(kind token.SyntaxKind) ast.NodeIndex {
	start := p.pos()
	p.next()
	var label ast.NodeIndex
	if !p.s.HasPrecedingLineBreak() && (p.at(token.Identifier) || isContextualKeyword(p.token())) {
		label = p.expectIdentifierName()
	}
	p.parseSemicolon()
	if kind == token.BreakStatement {
		return p.arena.AddBreakStatement(start, p.pos(), label)
	}
	return p.arena.AddContinueStatement(start, p.pos(), label)
}

func (p *Parser) parseIfStatement() ast.NodeIndex {
	start := p.pos()
	p.next()
	p.expect(token.OpenParenToken)
	cond := p.parseExpression()
	p.expect(token.CloseParenToken)
	then := p.parseStatement()
	var elseStmt ast.NodeIndex
	if p.parseOptional(token.ElseKeyword) {
		elseStmt = p.parseStatement()
	}
	return p.arena.AddIfStatement(start, p.pos(), ast.IfStatementData{Expression: cond, ThenStatement: then, ElseStatement: elseStmt})
}

func (p *Parser) parseWhileStatement() ast.NodeIndex {
	start := p.pos()
	p.next()
	p.expect(token.OpenParenToken)
	cond := p.parseExpression()
	p.expect(token.CloseParenToken)
	body := p.parseStatement()
	return p.arena.AddWhileStatement(start, p.pos(), ast.WhileLikeData{Expression: cond, Statement: body})
}

func (p *Parser) parseDoStatement() ast.NodeIndex {
	start := p.pos()
	p.next()
	body := p.parseStatement()
	p.expect(token.WhileKeyword)
	p.expect(token.OpenParenToken)
	cond := p.parseExpression()
	p.expect(token.CloseParenToken)
	p.parseOptional(token.SemicolonToken)
	return p.arena.AddDoStatement(start, p.pos(), ast.WhileLikeData{Expression: cond, Statement: body})
}

// parseForStatement covers the three `for` forms: classic C-style,
// for-in, and for-of, disambiguated after the initializer is parsed by
// checking for `in`/`of`.
func (p *Parser) parseForStatement() ast.NodeIndex {
	start := p.pos()
	p.next()
	isAwait := p.parseOptional(token.AwaitKeyword)
	p.expect(token.OpenParenToken)

	var initializer ast.NodeIndex
	if !p.at(token.SemicolonToken) {
		switch p.token() {
		case token.VarKeyword, token.LetKeyword, token.ConstKeyword:
			flags := token.FlagNone
			switch p.token() {
			case token.LetKeyword:
				flags = token.FlagLet
			case token.ConstKeyword:
				flags = token.FlagConst
			}
			p.next()
			initializer = p.parseVariableDeclarationList(flags)
		default:
			p.inDisallowInContext = true
			initializer = p.parseExpression()
			p.inDisallowInContext = false
		}
	}

	if p.parseOptional(token.InKeyword) {
		expr := p.parseExpression()
		p.expect(token.CloseParenToken)
		body := p.parseStatement()
		return p.arena.AddForInStatement(start, p.pos(), ast.ForInOfData{Initializer: initializer, Expression: expr, Statement: body})
	}
	if p.parseOptional(token.OfKeyword) {
		expr := p.parseAssignmentExpression()
		p.expect(token.CloseParenToken)
		body := p.parseStatement()
		return p.arena.AddForOfStatement(start, p.pos(), ast.ForInOfData{Initializer: initializer, Expression: expr, Statement: body, IsAwait: isAwait})
	}

	p.expect(token.SemicolonToken)
	var cond ast.NodeIndex
	if !p.at(token.SemicolonToken) {
		cond = p.parseExpression()
	}
	p.expect(token.SemicolonToken)
	var incr ast.NodeIndex
	if !p.at(token.CloseParenToken) {
		incr = p.parseExpression()
	}
	p.expect(token.CloseParenToken)
	body := p.parseStatement()
	return p.arena.AddForStatement(start, p.pos(), ast.ForStatementData{
		Initializer: initializer, Condition: cond, Incrementor: incr, Statement: body,
	})
}

func (p *Parser) parseTryStatement() ast.NodeIndex {
	start := p.pos()
	p.next()
	tryBlock := p.parseBlock()
	var catchClause ast.NodeIndex
	if p.parseOptional(token.CatchKeyword) {
		catchStart := p.pos()
		var param ast.NodeIndex
		if p.parseOptional(token.OpenParenToken) {
			param = p.parseBindingName()
			if p.parseOptional(token.ColonToken) {
				p.parseType() // catch annotations are syntactically allowed, semantically unknown-only
			}
			p.expect(token.CloseParenToken)
		}
		block := p.parseBlock()
		catchClause = p.arena.AddCatchClause(catchStart, p.pos(), ast.CatchClauseData{Parameter: param, Block: block})
	}
	var finallyBlock ast.NodeIndex
	if p.parseOptional(token.FinallyKeyword) {
		finallyBlock = p.parseBlock()
	}
	return p.arena.AddTryStatement(start, p.pos(), ast.TryStatementData{
		TryBlock: tryBlock, CatchClause: catchClause, FinallyBlock: finallyBlock,
	})
}

func (p *Parser) parseSwitchStatement() ast.NodeIndex {
	start := p.pos()
	p.next()
	p.expect(token.OpenParenToken)
	expr := p.parseExpression()
	p.expect(token.CloseParenToken)

	caseBlockStart := p.pos()
	p.expect(token.OpenBraceToken)
	var clauses []ast.NodeIndex
	for !p.at(token.CloseBraceToken) && !p.at(token.EndOfFile) {
		clauses = append(clauses, p.parseCaseOrDefaultClause())
	}
	_, end := p.expect(token.CloseBraceToken)
	caseBlock := p.arena.AddCaseBlock(caseBlockStart, end, nodeList(clauses, caseBlockStart, end, false))
	return p.arena.AddSwitchStatement(start, end, ast.SwitchStatementData{Expression: expr, CaseBlock: caseBlock})
}

func (p *Parser) parseCaseOrDefaultClause() ast.NodeIndex {
	start := p.pos()
	var expr ast.NodeIndex
	if p.parseOptional(token.CaseKeyword) {
		expr = p.parseExpression()
	} else {
		p.expect(token.DefaultKeyword)
	}
	p.expect(token.ColonToken)
	var statements []ast.NodeIndex
	for !p.at(token.CaseKeyword) && !p.at(token.DefaultKeyword) && !p.at(token.CloseBraceToken) && !p.at(token.EndOfFile) {
		statements = append(statements, p.parseStatement())
	}
	return p.arena.AddCaseClause(start, p.pos(), ast.CaseClauseData{Expression: expr, Statements: nodeList(statements, start, p.pos(), false)})
}

// parseExpressionOrLabeledStatement handles both plain expression
// statements and `label: statement`, which share an ambiguous prefix
// (an identifier) until the token after it is inspected.
func (p *Parser) parseExpressionOrLabeledStatement(start uint32) ast.NodeIndex {
	if p.at(token.Identifier) {
		snap := p.s.SaveState()
		name := p.pos()
		text := p.text()
		p.next()
		if p.at(token.ColonToken) {
			p.next()
			label := p.arena.AddIdentifier(name, name, text)
			stmt := p.parseStatement()
			return p.arena.AddLabeledStatement(start, p.pos(), label, stmt)
		}
		p.s.RestoreState(snap)
	}
	expr := p.parseExpression()
	p.parseSemicolon()
	return p.arena.AddExpressionStatement(start, p.pos(), expr)
}

func (p *Parser) parseDecoratedStatement(start uint32) ast.NodeIndex {
	var decorators []ast.NodeIndex
	for p.at(token.AtToken) {
		decorators = append(decorators, p.parseDecorator())
	}
	for _, d := range decorators {
		_ = d // decorators attach to the following class/member; recorded via parent pointers below
	}
	stmt := p.parseStatement()
	for _, d := range decorators {
		p.arena.SetParent(d, stmt)
	}
	return stmt
}

func (p *Parser) parseDecorator() ast.NodeIndex {
	start := p.pos()
	p.expect(token.AtToken)
	expr := p.parseLeftHandSideExpression()
	return p.arena.AddDecorator(start, p.pos(), expr)
}
