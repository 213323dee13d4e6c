package parser

import (
	"github.com/mohsen1/tsz-sub013/internal/ast"
	"github.com/mohsen1/tsz-sub013/internal/diagnostic"
	"github.com/mohsen1/tsz-sub013/internal/token"
)

// parseExpression parses the comma operator's full production: one or more
// assignment expressions joined by `,`, folding left (spec.md's grammar
// treats `,` as the lowest-precedence binary operator).
func (p *Parser) parseExpression() ast.NodeIndex {
	expr := p.parseAssignmentExpression()
	for p.at(token.CommaToken) {
		start := p.pos()
		p.next()
		right := p.parseAssignmentExpression()
		expr = p.arena.AddBinaryExpr(start, p.pos(), ast.BinaryExprData{Left: expr, OperatorToken: token.CommaToken, Right: right})
	}
	return expr
}

// isAssignmentOperator reports whether k is one of the closed set of tokens
// that make an expression an assignment rather than a conditional expression.
func isAssignmentOperator(k token.SyntaxKind) bool {
	switch k {
	case token.EqualsToken, token.PlusEqualsToken, token.MinusEqualsToken, token.AsteriskEqualsToken,
		token.AsteriskAsteriskEqualsToken, token.SlashEqualsToken, token.PercentEqualsToken,
		token.LessThanLessThanEqualsToken, token.GreaterThanGreaterThanEqualsToken,
		token.GreaterThanGreaterThanGreaterThanEqualsToken, token.AmpersandEqualsToken,
		token.BarEqualsToken, token.CaretEqualsToken, token.BarBarEqualsToken,
		token.AmpersandAmpersandEqualsToken, token.QuestionQuestionEqualsToken:
		return true
	default:
		return false
	}
}

// parseAssignmentExpression is the parser's busiest entry point: it must
// first rule out an arrow function (which shares its opening token with a
// parenthesized expression or a bare identifier), then fall through to the
// conditional-expression grammar and fold in a trailing assignment
// operator if present.
func (p *Parser) parseAssignmentExpression() ast.NodeIndex {
	if arrow, ok := p.tryParseArrowFunction(); ok {
		return arrow
	}
	if p.at(token.YieldKeyword) {
		return p.parseYieldExpression()
	}

	left := p.parseConditionalExpression()
	if isAssignmentOperator(p.token()) {
		start := p.pos()
		op := p.token()
		p.next()
		right := p.parseAssignmentExpression()
		return p.arena.AddBinaryExpr(start, p.pos(), ast.BinaryExprData{Left: left, OperatorToken: op, Right: right})
	}
	return left
}

func (p *Parser) parseYieldExpression() ast.NodeIndex {
	start := p.pos()
	p.next()
	p.parseOptional(token.AsteriskToken)
	var arg ast.NodeIndex
	if !p.canParseSemicolon() && !p.at(token.CloseParenToken) && !p.at(token.CloseBracketToken) && !p.at(token.CloseBraceToken) && !p.at(token.CommaToken) {
		arg = p.parseAssignmentExpression()
	}
	return p.arena.AddUnaryExpr(token.YieldExpr, start, p.pos(), ast.UnaryExprData{Operator: token.YieldKeyword, Operand: arg})
}

// tryParseArrowFunction speculatively parses `(params) => body` or
// `identifier => body` (optionally preceded by `async`), restoring the
// scanner and returning ok=false if the head is not followed by `=>`. This
// is the canonical example of spec.md §4.3.1's "bounded speculative
// look-ahead": one parameter list's worth of tokens, never unbounded.
func (p *Parser) tryParseArrowFunction() (ast.NodeIndex, bool) {
	if !p.at(token.OpenParenToken) && !p.at(token.Identifier) && !p.at(token.LessThanToken) && !p.at(token.AsyncKeyword) {
		return ast.NoNode, false
	}
	snap := p.s.SaveState()
	diagMark := p.diags.Mark()
	arenaMark := p.arena.Mark()
	start := p.pos()

	isAsync := false
	if p.at(token.AsyncKeyword) {
		ahead := p.s.SaveState()
		p.next()
		if p.s.HasPrecedingLineBreak() || (!p.at(token.OpenParenToken) && !p.at(token.Identifier) && !p.at(token.LessThanToken)) {
			p.s.RestoreState(ahead)
		} else {
			isAsync = true
		}
	}

	typeParams := p.parseOptionalTypeParameters()

	var params ast.NodeList
	if p.at(token.OpenParenToken) {
		params = p.parseParameterList()
	} else if p.at(token.Identifier) {
		paramStart := p.pos()
		name := p.expectIdentifierName()
		param := p.arena.AddParameter(paramStart, p.pos(), token.FlagNone, ast.ParameterData{Name: name})
		params = nodeList([]ast.NodeIndex{param}, paramStart, p.pos(), false)
	} else {
		p.s.RestoreState(snap)
		p.diags.Truncate(diagMark)
		p.arena.Truncate(arenaMark)
		return ast.NoNode, false
	}

	var returnType ast.NodeIndex
	if p.at(token.ColonToken) {
		p.next()
		returnType = p.parseType()
	}

	if !p.at(token.EqualsGreaterThanToken) {
		p.s.RestoreState(snap)
		p.diags.Truncate(diagMark)
		p.arena.Truncate(arenaMark)
		return ast.NoNode, false
	}
	p.next() // =>

	flags := token.FlagNone
	if isAsync {
		flags = token.FlagAsync
	}
	var body ast.NodeIndex
	if p.at(token.OpenBraceToken) {
		body = p.parseBlock()
	} else {
		body = p.parseAssignmentExpression()
	}
	fn := p.arena.AddFunctionLike(token.ArrowFunction, start, p.pos(), flags, ast.FunctionLikeData{
		TypeParameters: typeParams, Parameters: params, ReturnType: returnType, Body: body,
	})
	return fn, true
}

func (p *Parser) parseConditionalExpression() ast.NodeIndex {
	cond := p.parseBinaryExpression(0)
	if p.at(token.QuestionToken) {
		start := p.pos()
		p.next()
		whenTrue := p.parseAssignmentExpression()
		p.expect(token.ColonToken)
		whenFalse := p.parseAssignmentExpression()
		return p.arena.AddConditionalExpr(start, p.pos(), ast.ConditionalExprData{Condition: cond, WhenTrue: whenTrue, WhenFalse: whenFalse})
	}
	return cond
}

// binaryPrecedence mirrors the language's standard operator precedence
// table. 0 means "not a binary operator at this grammar level" and ends
// precedence climbing.
func binaryPrecedence(k token.SyntaxKind, disallowIn bool) int {
	switch k {
	case token.QuestionQuestionToken, token.BarBarToken:
		return 4
	case token.AmpersandAmpersandToken:
		return 5
	case token.BarToken:
		return 6
	case token.CaretToken:
		return 7
	case token.AmpersandToken:
		return 8
	case token.EqualsEqualsToken, token.ExclamationEqualsToken, token.EqualsEqualsEqualsToken, token.ExclamationEqualsEqualsToken:
		return 9
	case token.LessThanToken, token.GreaterThanToken, token.LessThanEqualsToken, token.GreaterThanEqualsToken, token.InstanceOfKeyword:
		return 10
	case token.InKeyword:
		if disallowIn {
			return 0
		}
		return 10
	case token.AsKeyword, token.SatisfiesKeyword:
		return 10
	case token.LessThanLessThanToken, token.GreaterThanGreaterThanToken, token.GreaterThanGreaterThanGreaterThanToken:
		return 11
	case token.PlusToken, token.MinusToken:
		return 12
	case token.AsteriskToken, token.SlashToken, token.PercentToken:
		return 13
	case token.AsteriskAsteriskToken:
		return 14
	default:
		return 0
	}
}

// parseBinaryExpression implements precedence climbing: it parses a unary
// expression, then repeatedly folds in binary operators whose precedence
// is strictly greater than minPrecedence, recursing at the operator's own
// precedence (left associative) except for `**`, which recurses one level
// lower (right associative).
func (p *Parser) parseBinaryExpression(minPrecedence int) ast.NodeIndex {
	left := p.parseUnaryExpression()
	for {
		prec := binaryPrecedence(p.token(), p.inDisallowInContext)
		if prec == 0 || prec <= minPrecedence {
			return left
		}
		start := p.pos()
		op := p.token()
		p.next()

		if op == token.AsKeyword || op == token.SatisfiesKeyword {
			typ := p.parseType()
			kind := token.AsExpr
			if op == token.SatisfiesKeyword {
				kind = token.SatisfiesExpr
			}
			left = p.arena.AddUnaryExpr(kind, start, p.pos(), ast.UnaryExprData{Operator: op, Operand: left})
			p.arena.SetParent(typ, left)
			continue
		}

		nextMin := prec
		if op == token.AsteriskAsteriskToken {
			nextMin = prec - 1
		}
		right := p.parseBinaryExpression(nextMin)
		left = p.arena.AddBinaryExpr(start, p.pos(), ast.BinaryExprData{Left: left, OperatorToken: op, Right: right})
	}
}

func isUnaryOperator(k token.SyntaxKind) bool {
	switch k {
	case token.PlusToken, token.MinusToken, token.TildeToken, token.ExclamationToken,
		token.PlusPlusToken, token.MinusMinusToken, token.TypeOfKeyword, token.VoidKeyword, token.DeleteKeyword, token.AwaitKeyword:
		return true
	default:
		return false
	}
}

func (p *Parser) parseUnaryExpression() ast.NodeIndex {
	if p.at(token.LessThanToken) && !p.isJSX {
		return p.parseTypeAssertion()
	}
	if isUnaryOperator(p.token()) {
		start := p.pos()
		op := p.token()
		p.next()
		operand := p.parseUnaryExpression()
		kind := token.PrefixUnaryExpr
		switch op {
		case token.TypeOfKeyword:
			kind = token.TypeOfExpr
		case token.VoidKeyword:
			kind = token.VoidExpr
		case token.DeleteKeyword:
			kind = token.DeleteExpr
		case token.AwaitKeyword:
			kind = token.AwaitExpr
		}
		return p.arena.AddUnaryExpr(kind, start, p.pos(), ast.UnaryExprData{Operator: op, Operand: operand})
	}
	return p.parsePostfixExpression()
}

// parseTypeAssertion handles the legacy `<Type>expr` cast form, available
// only in non-JSX files (spec.md's ambiguity with JSX is resolved the same
// way the original grammar resolves it: by file extension).
func (p *Parser) parseTypeAssertion() ast.NodeIndex {
	start := p.pos()
	p.next()
	typ := p.parseType()
	p.expect(token.GreaterThanToken)
	expr := p.parseUnaryExpression()
	node := p.arena.AddUnaryExpr(token.TypeAssertionExpr, start, p.pos(), ast.UnaryExprData{Operator: token.LessThanToken, Operand: expr})
	p.arena.SetParent(typ, node)
	return node
}

func (p *Parser) parsePostfixExpression() ast.NodeIndex {
	expr := p.parseLeftHandSideExpression()
	if (p.at(token.PlusPlusToken) || p.at(token.MinusMinusToken)) && !p.s.HasPrecedingLineBreak() {
		start := p.pos()
		op := p.token()
		p.next()
		return p.arena.AddUnaryExpr(token.PostfixUnaryExpr, start, p.pos(), ast.UnaryExprData{Operator: op, Operand: expr})
	}
	return expr
}

// parseLeftHandSideExpression parses a primary expression followed by any
// chain of member access, element access, call, tagged template, or
// non-null assertion suffixes.
func (p *Parser) parseLeftHandSideExpression() ast.NodeIndex {
	var expr ast.NodeIndex
	if p.at(token.NewKeyword) {
		expr = p.parseNewExpression()
	} else {
		expr = p.parsePrimaryExpression()
	}
	return p.parseCallAndMemberChain(expr)
}

func (p *Parser) parseNewExpression() ast.NodeIndex {
	start := p.pos()
	p.next()
	if p.at(token.DotToken) {
		// `new.target`
		p.next()
		meta := p.expectIdentifierName()
		return p.arena.AddPropertyAccess(start, p.pos(), ast.AccessData{Expression: p.arena.AddKeywordExpr(token.NewKeyword, start, start), Name: meta})
	}
	callee := p.parseLeftHandSideExpressionNoCall()
	var typeArgs ast.NodeList
	if p.at(token.LessThanToken) {
		if args, ok := p.tryParseTypeArguments(); ok {
			typeArgs = args
		}
	}
	var args ast.NodeList
	if p.at(token.OpenParenToken) {
		args = p.parseArgumentList()
	}
	return p.arena.AddNewExpr(start, p.pos(), ast.CallExprData{Expression: callee, TypeArguments: typeArgs, Arguments: args})
}

// parseLeftHandSideExpressionNoCall parses the callee of a `new`
// expression: member/element access chains, but stopping before a call
// so `new Foo().bar()` attaches the call to the right operand.
func (p *Parser) parseLeftHandSideExpressionNoCall() ast.NodeIndex {
	var expr ast.NodeIndex
	if p.at(token.NewKeyword) {
		expr = p.parseNewExpression()
	} else {
		expr = p.parsePrimaryExpression()
	}
	for {
		switch {
		case p.at(token.DotToken):
			start := p.pos()
			p.next()
			name := p.expectIdentifierName()
			expr = p.arena.AddPropertyAccess(start, p.pos(), ast.AccessData{Expression: expr, Name: name})
		case p.at(token.OpenBracketToken):
			start := p.pos()
			p.next()
			index := p.parseExpression()
			p.expect(token.CloseBracketToken)
			expr = p.arena.AddElementAccess(start, p.pos(), ast.AccessData{Expression: expr, ArgumentExpr: index})
		default:
			return expr
		}
	}
}

func (p *Parser) parseCallAndMemberChain(expr ast.NodeIndex) ast.NodeIndex {
	for {
		switch {
		case p.at(token.DotToken):
			start := p.pos()
			p.next()
			name := p.expectIdentifierName()
			expr = p.arena.AddPropertyAccess(start, p.pos(), ast.AccessData{Expression: expr, Name: name})
		case p.at(token.QuestionDotToken):
			start := p.pos()
			p.next()
			if p.at(token.OpenParenToken) {
				args := p.parseArgumentList()
				expr = p.arena.AddCallExpr(start, p.pos(), ast.CallExprData{Expression: expr, Arguments: args, IsOptionalCall: true})
				continue
			}
			if p.at(token.OpenBracketToken) {
				p.next()
				index := p.parseExpression()
				p.expect(token.CloseBracketToken)
				expr = p.arena.AddElementAccess(start, p.pos(), ast.AccessData{Expression: expr, ArgumentExpr: index, IsOptionalChain: true})
				continue
			}
			name := p.expectIdentifierName()
			expr = p.arena.AddPropertyAccess(start, p.pos(), ast.AccessData{Expression: expr, Name: name, IsOptionalChain: true})
		case p.at(token.OpenBracketToken):
			start := p.pos()
			p.next()
			index := p.parseExpression()
			p.expect(token.CloseBracketToken)
			expr = p.arena.AddElementAccess(start, p.pos(), ast.AccessData{Expression: expr, ArgumentExpr: index})
		case p.at(token.OpenParenToken):
			start := p.pos()
			args := p.parseArgumentList()
			expr = p.arena.AddCallExpr(start, p.pos(), ast.CallExprData{Expression: expr, Arguments: args})
		case p.at(token.ExclamationToken) && !p.s.HasPrecedingLineBreak():
			start := p.pos()
			p.next()
			expr = p.arena.AddUnaryExpr(token.NonNullExpr, start, p.pos(), ast.UnaryExprData{Operator: token.ExclamationToken, Operand: expr})
		case p.at(token.LessThanToken):
			snap := p.s.SaveState()
			if args, ok := p.tryParseTypeArguments(); ok && p.at(token.OpenParenToken) {
				start := p.pos()
				callArgs := p.parseArgumentList()
				expr = p.arena.AddCallExpr(start, p.pos(), ast.CallExprData{Expression: expr, TypeArguments: args, Arguments: callArgs})
				continue
			}
			p.s.RestoreState(snap)
			return expr
		case p.at(token.NoSubstitutionTemplateLiteral) || p.at(token.TemplateHead):
			tmpl := p.parseTemplateLiteral()
			start := p.pos()
			expr = p.arena.AddUnaryExpr(token.TaggedTemplateExpr, start, p.pos(), ast.UnaryExprData{Operand: expr})
			p.arena.SetParent(tmpl, expr)
		default:
			return expr
		}
	}
}

// tryParseTypeArguments speculatively parses `<T, U>` as a type-argument
// list, restoring on failure: `<` is also the less-than operator, so this
// is inherently ambiguous without lookahead (spec.md §4.3's "array vs.
// indexed-access" sibling ambiguity, generalized to call sites).
func (p *Parser) tryParseTypeArguments() (ast.NodeList, bool) {
	snap := p.s.SaveState()
	diagMark := p.diags.Mark()
	arenaMark := p.arena.Mark()
	start := p.pos()
	p.next()
	var args []ast.NodeIndex
	for !p.at(token.GreaterThanToken) {
		if p.at(token.EndOfFile) || p.at(token.SemicolonToken) || p.at(token.OpenBraceToken) {
			p.s.RestoreState(snap)
			p.diags.Truncate(diagMark)
			p.arena.Truncate(arenaMark)
			return ast.NodeList{}, false
		}
		args = append(args, p.parseType())
		if !p.parseOptional(token.CommaToken) {
			break
		}
	}
	if !p.at(token.GreaterThanToken) {
		p.s.RestoreState(snap)
		p.diags.Truncate(diagMark)
		p.arena.Truncate(arenaMark)
		return ast.NodeList{}, false
	}
	end := p.end()
	p.next()
	return nodeList(args, start, end, false), true
}

func (p *Parser) parseArgumentList() ast.NodeList {
	start := p.pos()
	p.expect(token.OpenParenToken)
	var args []ast.NodeIndex
	for !p.at(token.CloseParenToken) && !p.at(token.EndOfFile) {
		if p.at(token.DotDotDotToken) {
			spreadStart := p.pos()
			p.next()
			operand := p.parseAssignmentExpression()
			args = append(args, p.arena.AddUnaryExpr(token.SpreadElement, spreadStart, p.pos(), ast.UnaryExprData{Operand: operand}))
		} else {
			args = append(args, p.parseAssignmentExpression())
		}
		if !p.parseOptional(token.CommaToken) {
			break
		}
	}
	_, end := p.expect(token.CloseParenToken)
	return nodeList(args, start, end, false)
}

// parsePrimaryExpression parses an expression with no operators: literals,
// identifiers, parenthesized expressions, array/object literals, function
// and class expressions, template literals, and (in .tsx files) JSX.
func (p *Parser) parsePrimaryExpression() ast.NodeIndex {
	start := p.pos()
	switch p.token() {
	case token.NumericLiteral, token.BigIntLiteral:
		txt := p.text()
		end := p.end()
		p.next()
		return p.arena.AddNumericLiteral(start, end, txt)
	case token.StringLiteral:
		txt := p.text()
		end := p.end()
		p.next()
		return p.arena.AddStringLiteral(start, end, txt)
	case token.RegularExpressionLiteral:
		txt := p.text()
		end := p.end()
		p.next()
		return p.arena.AddRegularExpressionLiteral(start, end, txt)
	case token.NoSubstitutionTemplateLiteral, token.TemplateHead:
		return p.parseTemplateLiteral()
	case token.TrueKeyword, token.FalseKeyword, token.NullKeyword, token.ThisKeyword, token.SuperKeyword, token.UndefinedKeyword:
		kind := p.token()
		end := p.end()
		p.next()
		return p.arena.AddKeywordExpr(kind, start, end)
	case token.OpenParenToken:
		return p.parseParenthesizedExpression()
	case token.OpenBracketToken:
		return p.parseArrayLiteral()
	case token.OpenBraceToken:
		return p.parseObjectLiteral()
	case token.FunctionKeyword:
		return p.parseFunctionExpression()
	case token.ClassKeyword:
		return p.parseClassLike(start, token.FlagNone, token.ClassExpr)
	case token.AsyncKeyword:
		return p.parseFunctionExpression()
	case token.ImportKeyword:
		p.next()
		if p.parseOptional(token.DotToken) {
			meta := p.expectIdentifierName()
			return p.arena.AddPropertyAccess(start, p.pos(), ast.AccessData{Expression: p.arena.AddKeywordExpr(token.ImportKeyword, start, start), Name: meta})
		}
		args := p.parseArgumentList()
		return p.arena.AddCallExpr(start, p.pos(), ast.CallExprData{Expression: p.arena.AddKeywordExpr(token.ImportKeyword, start, start), Arguments: args})
	case token.LessThanToken:
		if p.isJSX {
			return p.parseJsxElementOrFragment()
		}
		return p.parseTypeAssertion()
	default:
		if p.at(token.Identifier) || isContextualKeyword(p.token()) {
			return p.expectIdentifierName()
		}
		// Recovery: synthesize Missing and make progress so callers never spin.
		p.diags.Errorf(diagnostic.CodeUnexpectedToken, int(start), int(start), "unexpected token %s", p.token().String())
		if !p.at(token.EndOfFile) {
			p.next()
		}
		return p.arena.AddMissing(start, start)
	}
}

func (p *Parser) parseFunctionExpression() ast.NodeIndex {
	start := p.pos()
	isAsync := p.parseOptional(token.AsyncKeyword)
	p.expect(token.FunctionKeyword)
	p.parseOptional(token.AsteriskToken)
	var name ast.NodeIndex
	if p.at(token.Identifier) {
		name = p.expectIdentifierName()
	}
	typeParams := p.parseOptionalTypeParameters()
	params := p.parseParameterList()
	var returnType ast.NodeIndex
	if p.parseOptional(token.ColonToken) {
		returnType = p.parseType()
	}
	body := p.parseBlock()
	flags := token.FlagNone
	if isAsync {
		flags = token.FlagAsync
	}
	return p.arena.AddFunctionLike(token.FunctionExpr, start, p.pos(), flags, ast.FunctionLikeData{
		Name: name, TypeParameters: typeParams, Parameters: params, ReturnType: returnType, Body: body,
	})
}

// parseParenthesizedExpression parses `(expr)`. Arrow functions are ruled
// out before this is ever called (tryParseArrowFunction runs first in
// parseAssignmentExpression), so a bare `(` here always starts either a
// grouped expression or, rarely, an empty/invalid one.
func (p *Parser) parseParenthesizedExpression() ast.NodeIndex {
	start := p.pos()
	p.expect(token.OpenParenToken)
	expr := p.parseExpression()
	_, end := p.expect(token.CloseParenToken)
	return p.arena.AddUnaryExpr(token.ParenthesizedExpr, start, end, ast.UnaryExprData{Operand: expr})
}

func (p *Parser) parseArrayLiteral() ast.NodeIndex {
	start := p.pos()
	p.expect(token.OpenBracketToken)
	var elems []ast.NodeIndex
	trailingComma := false
	for !p.at(token.CloseBracketToken) && !p.at(token.EndOfFile) {
		if p.at(token.CommaToken) {
			elems = append(elems, p.arena.AddKeywordExpr(token.OmittedExpr, p.pos(), p.pos()))
			p.next()
			continue
		}
		if p.at(token.DotDotDotToken) {
			spreadStart := p.pos()
			p.next()
			operand := p.parseAssignmentExpression()
			elems = append(elems, p.arena.AddUnaryExpr(token.SpreadElement, spreadStart, p.pos(), ast.UnaryExprData{Operand: operand}))
		} else {
			elems = append(elems, p.parseAssignmentExpression())
		}
		if !p.parseOptional(token.CommaToken) {
			break
		}
		trailingComma = p.at(token.CloseBracketToken)
	}
	_, end := p.expect(token.CloseBracketToken)
	return p.arena.AddBindingPattern(token.ArrayLiteralExpr, start, end, ast.BindingPatternData{Elements: nodeList(elems, start, end, trailingComma)})
}

// parseObjectLiteral folds property assignments, shorthand properties, and
// spreads into a single list; it reuses BindingPatternData (Elements) the
// same way the array-literal path does rather than introducing a
// dedicated one-field pool for "list of expression nodes".
func (p *Parser) parseObjectLiteral() ast.NodeIndex {
	start := p.pos()
	p.expect(token.OpenBraceToken)
	var props []ast.NodeIndex
	trailingComma := false
	for !p.at(token.CloseBraceToken) && !p.at(token.EndOfFile) {
		props = append(props, p.parseObjectLiteralElement())
		if !p.parseOptional(token.CommaToken) {
			break
		}
		trailingComma = p.at(token.CloseBraceToken)
	}
	_, end := p.expect(token.CloseBraceToken)
	return p.arena.AddBindingPattern(token.ObjectLiteralExpr, start, end, ast.BindingPatternData{Elements: nodeList(props, start, end, trailingComma)})
}

func (p *Parser) parseObjectLiteralElement() ast.NodeIndex {
	start := p.pos()
	if p.at(token.DotDotDotToken) {
		p.next()
		expr := p.parseAssignmentExpression()
		return p.arena.AddUnaryExpr(token.SpreadAssignment, start, p.pos(), ast.UnaryExprData{Operand: expr})
	}
	isAsync := p.parseOptional(token.AsyncKeyword)
	p.parseOptional(token.AsteriskToken)
	if p.at(token.GetKeyword) || p.at(token.SetKeyword) {
		snap := p.s.SaveState()
		kw := p.token()
		p.next()
		if !p.at(token.ColonToken) && !p.at(token.CommaToken) && !p.at(token.CloseBraceToken) && !p.at(token.OpenParenToken) {
			name := p.parsePropertyName()
			kind := token.GetAccessor
			if kw == token.SetKeyword {
				kind = token.SetAccessor
			}
			params := p.parseParameterList()
			var returnType ast.NodeIndex
			if p.parseOptional(token.ColonToken) {
				returnType = p.parseType()
			}
			body := p.parseBlock()
			return p.arena.AddFunctionLike(kind, start, p.pos(), token.FlagNone, ast.FunctionLikeData{Name: name, Parameters: params, ReturnType: returnType, Body: body})
		}
		p.s.RestoreState(snap)
	}
	name := p.parsePropertyName()
	if p.at(token.OpenParenToken) || p.at(token.LessThanToken) {
		typeParams := p.parseOptionalTypeParameters()
		params := p.parseParameterList()
		var returnType ast.NodeIndex
		if p.parseOptional(token.ColonToken) {
			returnType = p.parseType()
		}
		body := p.parseBlock()
		flags := token.FlagNone
		if isAsync {
			flags = token.FlagAsync
		}
		return p.arena.AddFunctionLike(token.MethodDeclaration, start, p.pos(), flags, ast.FunctionLikeData{
			Name: name, TypeParameters: typeParams, Parameters: params, ReturnType: returnType, Body: body,
		})
	}
	if p.parseOptional(token.ColonToken) {
		value := p.parseAssignmentExpression()
		// Object-literal property assignments reuse PropertySignatureData
		// outside its usual interface-member role: Initializer holds the
		// value expression (this node never appears as an interface/
		// type-literal member, so Type is always empty here).
		prop := p.arena.AddPropertySignature(start, p.pos(), token.FlagNone, ast.PropertySignatureData{Name: name, Initializer: value})
		p.arena.SetParent(value, prop)
		return prop
	}
	// Shorthand property: `{ x }` or `{ x = default }` (the latter only
	// valid in a destructuring-assignment position; parsed permissively
	// and left for the binder to reject if used as a value).
	if p.parseOptional(token.EqualsToken) {
		def := p.parseAssignmentExpression()
		return p.arena.AddBindingElement(start, p.pos(), ast.BindingElementData{Name: name, Initializer: def})
	}
	return name
}

// parseTemplateLiteral parses either a no-substitution template or a
// template expression with one or more `${...}` spans, re-scanning each
// `}` as a template continuation via the scanner's dedicated entry point
// (spec.md §6.1's template-literal rescan contract).
func (p *Parser) parseTemplateLiteral() ast.NodeIndex {
	start := p.pos()
	if p.at(token.NoSubstitutionTemplateLiteral) {
		txt := p.text()
		end := p.end()
		p.next()
		return p.arena.AddNoSubstitutionTemplateLiteral(start, end, txt)
	}
	headTxt := p.text()
	headEnd := p.end()
	head := p.arena.AddTemplateLiteralPart(token.TemplateHead, start, headEnd, headTxt)
	p.next()

	var spans []ast.NodeIndex
	for {
		spanStart := p.pos()
		expr := p.parseExpression()
		p.s.ReScanTemplateToken(false)
		partTxt := p.text()
		partEnd := p.end()
		isTail := p.at(token.TemplateTail)
		kind := token.TemplateMiddle
		if isTail {
			kind = token.TemplateTail
		}
		part := p.arena.AddTemplateLiteralPart(kind, spanStart, partEnd, partTxt)
		spans = append(spans, p.arena.AddTemplateSpan(spanStart, partEnd, expr, part))
		p.next()
		if isTail {
			break
		}
		if p.at(token.EndOfFile) {
			break
		}
	}
	return p.arena.AddTemplateExpr(start, p.pos(), head, spans)
}
