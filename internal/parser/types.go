package parser

import (
	"github.com/mohsen1/tsz-sub013/internal/ast"
	"github.com/mohsen1/tsz-sub013/internal/token"
)

// parseType is the type-grammar entry point: a conditional type, which in
// turn threads through union, intersection, and postfix-operator types
// before bottoming out at parsePrimaryType. The structure mirrors
// parseBinaryExpression's precedence climbing but types have a fixed,
// small number of levels rather than a table, so it is written out
// directly (spec.md §4.3's "union/intersection/conditional types").
func (p *Parser) parseType() ast.NodeIndex {
	if p.looksLikeFunctionOrConstructorType() {
		return p.parseFunctionOrConstructorType()
	}
	if p.at(token.NewKeyword) {
		return p.parseFunctionOrConstructorType()
	}
	start := p.pos()
	checkType := p.parseUnionType()
	if p.parseOptional(token.ExtendsKeyword) {
		extendsType := p.parseUnionType()
		p.expect(token.QuestionToken)
		trueType := p.parseType()
		p.expect(token.ColonToken)
		falseType := p.parseType()
		return p.arena.AddConditionalType(start, p.pos(), ast.ConditionalTypeData{
			CheckType: checkType, ExtendsType: extendsType, TrueType: trueType, FalseType: falseType,
		})
	}
	return checkType
}

// looksLikeFunctionOrConstructorType distinguishes `(params) => Type` (a
// function type) from `(Type)` (a parenthesized type) by checking whether
// the parenthesized group is followed by `=>`, using the same bounded
// save/restore approach as arrow-function disambiguation in expression
// position.
func (p *Parser) looksLikeFunctionOrConstructorType() bool {
	if !p.at(token.OpenParenToken) && !p.at(token.LessThanToken) {
		return false
	}
	snap := p.s.SaveState()
	defer p.s.RestoreState(snap)

	if p.at(token.LessThanToken) {
		p.parseOptionalTypeParameters()
	}
	if !p.at(token.OpenParenToken) {
		return false
	}
	depth := 0
	for {
		switch p.token() {
		case token.OpenParenToken:
			depth++
		case token.CloseParenToken:
			depth--
			if depth == 0 {
				p.next()
				return p.at(token.EqualsGreaterThanToken)
			}
		case token.EndOfFile:
			return false
		}
		p.next()
	}
}

func (p *Parser) parseFunctionOrConstructorType() ast.NodeIndex {
	start := p.pos()
	kind := token.FunctionType
	if p.parseOptional(token.NewKeyword) {
		kind = token.ConstructorType
	}
	typeParams := p.parseOptionalTypeParameters()
	params := p.parseParameterList()
	p.expect(token.EqualsGreaterThanToken)
	returnType := p.parseType()
	return p.arena.AddFunctionType(kind, start, p.pos(), ast.FunctionTypeData{TypeParameters: typeParams, Parameters: params, ReturnType: returnType})
}

func (p *Parser) parseUnionType() ast.NodeIndex {
	p.parseOptional(token.BarToken) // optional leading `|`
	first := p.parseIntersectionType()
	if !p.at(token.BarToken) {
		return first
	}
	start := p.pos()
	types := []ast.NodeIndex{first}
	for p.parseOptional(token.BarToken) {
		types = append(types, p.parseIntersectionType())
	}
	return p.arena.AddUnionOrIntersectionType(token.UnionType, start, p.pos(), ast.UnionOrIntersectionTypeData{Types: nodeList(types, start, p.pos(), false)})
}

func (p *Parser) parseIntersectionType() ast.NodeIndex {
	p.parseOptional(token.AmpersandToken)
	first := p.parseTypeOperatorOrPrimary()
	if !p.at(token.AmpersandToken) {
		return first
	}
	start := p.pos()
	types := []ast.NodeIndex{first}
	for p.parseOptional(token.AmpersandToken) {
		types = append(types, p.parseTypeOperatorOrPrimary())
	}
	return p.arena.AddUnionOrIntersectionType(token.IntersectionType, start, p.pos(), ast.UnionOrIntersectionTypeData{Types: nodeList(types, start, p.pos(), false)})
}

func (p *Parser) parseTypeOperatorOrPrimary() ast.NodeIndex {
	switch p.token() {
	case token.KeyOfKeyword, token.UniqueKeyword, token.ReadonlyKeyword:
		start := p.pos()
		op := p.token()
		p.next()
		operand := p.parseTypeOperatorOrPrimary()
		return p.arena.AddTypeOperator(start, p.pos(), ast.TypeOperatorData{Operator: op, Type: operand})
	case token.InferKeyword:
		start := p.pos()
		p.next()
		param := p.parseTypeParameter()
		return p.arena.AddInferType(start, p.pos(), param)
	}
	return p.parsePostfixType()
}

// parsePostfixType folds in `[]` (array type) and `[IndexType]` (indexed
// access type) suffixes, left-to-right, after a primary type.
func (p *Parser) parsePostfixType() ast.NodeIndex {
	typ := p.parsePrimaryType()
	for {
		if p.s.HasPrecedingLineBreak() {
			return typ
		}
		if !p.at(token.OpenBracketToken) {
			return typ
		}
		start := p.pos()
		p.next()
		if p.at(token.CloseBracketToken) {
			end := p.end()
			p.next()
			typ = p.arena.AddArrayType(start, end, typ)
			continue
		}
		index := p.parseType()
		_, end := p.expect(token.CloseBracketToken)
		typ = p.arena.AddIndexedAccessType(start, end, ast.IndexedAccessTypeData{ObjectType: typ, IndexType: index})
	}
}

func (p *Parser) parsePrimaryType() ast.NodeIndex {
	start := p.pos()
	switch p.token() {
	case token.OpenParenToken:
		p.next()
		inner := p.parseType()
		p.expect(token.CloseParenToken)
		return inner
	case token.OpenBracketToken:
		return p.parseTupleType()
	case token.OpenBraceToken:
		return p.parseMappedOrTypeLiteral()
	case token.TypeOfKeyword:
		p.next()
		exprName := p.parseEntityName()
		return p.arena.AddTypeQuery(start, p.pos(), exprName)
	case token.StringLiteral, token.NumericLiteral, token.TrueKeyword, token.FalseKeyword, token.NullKeyword:
		kind := p.token()
		txt := p.text()
		end := p.end()
		p.next()
		if kind == token.StringLiteral {
			return p.arena.AddStringLiteral(start, end, txt)
		}
		if kind == token.NumericLiteral {
			return p.arena.AddNumericLiteral(start, end, txt)
		}
		return p.arena.AddKeywordExpr(kind, start, end)
	case token.NoSubstitutionTemplateLiteral, token.TemplateHead:
		return p.parseTemplateLiteral()
	case token.VoidKeyword, token.UndefinedKeyword:
		kind := p.token()
		end := p.end()
		p.next()
		return p.arena.AddKeywordExpr(kind, start, end)
	case token.AssertsKeyword:
		snap := p.s.SaveState()
		p.next()
		if p.at(token.Identifier) || p.at(token.ThisKeyword) {
			param := p.parseThisOrIdentifier()
			var typ ast.NodeIndex
			if p.parseOptional(token.IsKeyword) {
				typ = p.parseType()
			}
			return p.arena.AddTypePredicate(start, p.pos(), ast.TypePredicateData{AssertsModifier: true, ParameterName: param, Type: typ})
		}
		p.s.RestoreState(snap)
	case token.ThisKeyword:
		param := p.parseThisOrIdentifier()
		if p.parseOptional(token.IsKeyword) {
			typ := p.parseType()
			return p.arena.AddTypePredicate(start, p.pos(), ast.TypePredicateData{ParameterName: param, Type: typ})
		}
		return p.arena.AddTypeReference(start, p.pos(), ast.TypeReferenceData{TypeName: param})
	}
	if p.at(token.Identifier) || isContextualKeyword(p.token()) {
		name := p.parseEntityName()
		if p.at(token.IsKeyword) {
			p.next()
			typ := p.parseType()
			return p.arena.AddTypePredicate(start, p.pos(), ast.TypePredicateData{ParameterName: name, Type: typ})
		}
		return p.parseTypeReferenceTail(start, name)
	}
	return p.arena.AddTypeReference(start, p.pos(), ast.TypeReferenceData{TypeName: p.expectIdentifierName()})
}

func (p *Parser) parseThisOrIdentifier() ast.NodeIndex {
	if p.at(token.ThisKeyword) {
		start, end := p.pos(), p.end()
		p.next()
		return p.arena.AddIdentifier(start, end, "this")
	}
	return p.expectIdentifierName()
}

// parseEntityName parses a possibly dotted name (`A.B.C`), used for both
// `typeof` query targets and bare type references.
func (p *Parser) parseEntityName() ast.NodeIndex {
	left := p.expectIdentifierName()
	for p.at(token.DotToken) {
		start := p.pos()
		p.next()
		right := p.expectIdentifierName()
		left = p.arena.AddQualifiedName(start, p.pos(), left, right)
	}
	return left
}

func (p *Parser) parseTypeReferenceTail(start uint32, name ast.NodeIndex) ast.NodeIndex {
	var typeArgs ast.NodeList
	if p.at(token.LessThanToken) {
		if args, ok := p.tryParseTypeArguments(); ok {
			typeArgs = args
		}
	}
	return p.arena.AddTypeReference(start, p.pos(), ast.TypeReferenceData{TypeName: name, TypeArguments: typeArgs})
}

// parseTypeReferenceOrExpressionWithTypeArgs parses a heritage clause
// element: an expression (often just a dotted name) with optional type
// arguments, represented as a TypeReference since the binder only needs
// the name and type argument list to resolve it.
func (p *Parser) parseTypeReferenceOrExpressionWithTypeArgs() ast.NodeIndex {
	start := p.pos()
	name := p.parseEntityName()
	return p.parseTypeReferenceTail(start, name)
}

func (p *Parser) parseTupleType() ast.NodeIndex {
	start := p.pos()
	p.expect(token.OpenBracketToken)
	var elems []ast.NodeIndex
	for !p.at(token.CloseBracketToken) && !p.at(token.EndOfFile) {
		elems = append(elems, p.parseTupleElement())
		if !p.parseOptional(token.CommaToken) {
			break
		}
	}
	_, end := p.expect(token.CloseBracketToken)
	return p.arena.AddTupleType(start, end, nodeList(elems, start, end, false))
}

func (p *Parser) parseTupleElement() ast.NodeIndex {
	start := p.pos()
	isRest := p.parseOptional(token.DotDotDotToken)

	// Named tuple member lookahead: `name(?)?: Type` vs. a bare type.
	if p.at(token.Identifier) {
		snap := p.s.SaveState()
		namePos, nameEnd, nameTxt := p.pos(), p.end(), p.text()
		p.next()
		optional := p.parseOptional(token.QuestionToken)
		if p.parseOptional(token.ColonToken) {
			name := p.arena.AddIdentifier(namePos, nameEnd, nameTxt)
			typ := p.parseType()
			return p.arena.AddNamedTupleMember(start, p.pos(), ast.NamedTupleMemberData{Name: name, Type: typ, Optional: optional, IsRest: isRest})
		}
		p.s.RestoreState(snap)
	}

	typ := p.parseType()
	if isRest {
		return p.arena.AddRestType(start, p.pos(), typ)
	}
	if p.parseOptional(token.QuestionToken) {
		return p.arena.AddOptionalType(start, p.pos(), typ)
	}
	return typ
}

// parseMappedOrTypeLiteral disambiguates `{ [K in Keys]: T }` (a mapped
// type) from a plain `{ member; member }` type literal by checking for the
// `[` ... `in` pattern immediately inside the brace.
func (p *Parser) parseMappedOrTypeLiteral() ast.NodeIndex {
	if p.looksLikeMappedType() {
		return p.parseMappedType()
	}
	start := p.pos()
	members := p.parseTypeMemberList()
	return p.arena.AddTypeLiteral(start, p.pos(), ast.InterfaceData{Members: members})
}

func (p *Parser) looksLikeMappedType() bool {
	snap := p.s.SaveState()
	defer p.s.RestoreState(snap)
	p.next() // {
	p.parseOptional(token.ReadonlyKeyword)
	if p.parseOptional(token.PlusToken) || p.parseOptional(token.MinusToken) {
		p.parseOptional(token.ReadonlyKeyword)
	}
	if !p.at(token.OpenBracketToken) {
		return false
	}
	p.next()
	if !p.at(token.Identifier) {
		return false
	}
	p.next()
	return p.at(token.InKeyword)
}

func (p *Parser) parseMappedType() ast.NodeIndex {
	start := p.pos()
	p.expect(token.OpenBraceToken)
	readonlyTok := token.Unknown
	switch {
	case p.parseOptional(token.ReadonlyKeyword):
		readonlyTok = token.ReadonlyKeyword
	case p.parseOptional(token.PlusToken):
		p.expect(token.ReadonlyKeyword)
		readonlyTok = token.PlusToken
	case p.parseOptional(token.MinusToken):
		p.expect(token.ReadonlyKeyword)
		readonlyTok = token.MinusToken
	}
	p.expect(token.OpenBracketToken)
	tpStart := p.pos()
	tpName := p.expectIdentifierName()
	p.expect(token.InKeyword)
	constraint := p.parseType()
	typeParam := p.arena.AddTypeParameter(tpStart, p.pos(), ast.TypeParameterData{Name: tpName, Constraint: constraint})
	var nameType ast.NodeIndex
	if p.parseOptional(token.AsKeyword) {
		nameType = p.parseType()
	}
	p.expect(token.CloseBracketToken)
	questionTok := token.Unknown
	switch {
	case p.parseOptional(token.QuestionToken):
		questionTok = token.QuestionToken
	case p.parseOptional(token.PlusToken):
		p.expect(token.QuestionToken)
		questionTok = token.PlusToken
	case p.parseOptional(token.MinusToken):
		p.expect(token.QuestionToken)
		questionTok = token.MinusToken
	}
	p.expect(token.ColonToken)
	typ := p.parseType()
	p.parseOptional(token.SemicolonToken)
	_, end := p.expect(token.CloseBraceToken)
	return p.arena.AddMappedType(start, end, ast.MappedTypeData{
		TypeParameter: typeParam, NameType: nameType, Type: typ, ReadonlyToken: readonlyTok, QuestionToken: questionTok,
	})
}

// parseTypeMemberList parses the member list shared by interface bodies
// and object type literals: property/method signatures and index
// signatures, separated by `;` or `,` or a line break (ASI-like).
func (p *Parser) parseTypeMemberList() ast.NodeList {
	start := p.pos()
	p.expect(token.OpenBraceToken)
	var members []ast.NodeIndex
	for !p.at(token.CloseBraceToken) && !p.at(token.EndOfFile) {
		members = append(members, p.parseTypeMember())
		if !p.parseOptional(token.SemicolonToken) {
			p.parseOptional(token.CommaToken)
		}
	}
	_, end := p.expect(token.CloseBraceToken)
	return nodeList(members, start, end, false)
}

func (p *Parser) parseTypeMember() ast.NodeIndex {
	start := p.pos()
	if p.at(token.OpenBracketToken) {
		if idx, ok := p.tryParseIndexSignature(start); ok {
			return idx
		}
	}
	if p.at(token.NewKeyword) {
		p.next()
		typeParams := p.parseOptionalTypeParameters()
		params := p.parseParameterList()
		var returnType ast.NodeIndex
		if p.parseOptional(token.ColonToken) {
			returnType = p.parseType()
		}
		return p.arena.AddMethodSignature(start, p.pos(), token.FlagNone, ast.MethodSignatureData{
			TypeParameters: typeParams, Parameters: params, ReturnType: returnType,
		})
	}
	if p.at(token.OpenParenToken) || p.at(token.LessThanToken) {
		typeParams := p.parseOptionalTypeParameters()
		params := p.parseParameterList()
		var returnType ast.NodeIndex
		if p.parseOptional(token.ColonToken) {
			returnType = p.parseType()
		}
		return p.arena.AddMethodSignature(start, p.pos(), token.FlagNone, ast.MethodSignatureData{
			TypeParameters: typeParams, Parameters: params, ReturnType: returnType,
		})
	}
	flags := token.FlagNone
	if p.parseOptional(token.ReadonlyKeyword) {
		flags |= token.FlagReadonly
	}
	name := p.parsePropertyName()
	optional := p.parseOptional(token.QuestionToken)
	if p.at(token.OpenParenToken) || p.at(token.LessThanToken) {
		typeParams := p.parseOptionalTypeParameters()
		params := p.parseParameterList()
		var returnType ast.NodeIndex
		if p.parseOptional(token.ColonToken) {
			returnType = p.parseType()
		}
		return p.arena.AddMethodSignature(start, p.pos(), flags, ast.MethodSignatureData{
			Name: name, TypeParameters: typeParams, Parameters: params, ReturnType: returnType, Optional: optional,
		})
	}
	var typ ast.NodeIndex
	if p.parseOptional(token.ColonToken) {
		typ = p.parseType()
	}
	return p.arena.AddPropertySignature(start, p.pos(), flags, ast.PropertySignatureData{Name: name, Type: typ, Optional: optional})
}

func (p *Parser) tryParseIndexSignature(start uint32) (ast.NodeIndex, bool) {
	snap := p.s.SaveState()
	diagMark := p.diags.Mark()
	arenaMark := p.arena.Mark()
	p.next()
	if !p.at(token.Identifier) {
		p.s.RestoreState(snap)
		p.diags.Truncate(diagMark)
		p.arena.Truncate(arenaMark)
		return ast.NoNode, false
	}
	paramStart := p.pos()
	nameText := p.text()
	namePos, nameEnd := p.pos(), p.end()
	p.next()
	if !p.parseOptional(token.ColonToken) {
		p.s.RestoreState(snap)
		p.diags.Truncate(diagMark)
		p.arena.Truncate(arenaMark)
		return ast.NoNode, false
	}
	keyType := p.parseType()
	if !p.parseOptional(token.CloseBracketToken) {
		p.s.RestoreState(snap)
		p.diags.Truncate(diagMark)
		p.arena.Truncate(arenaMark)
		return ast.NoNode, false
	}
	p.expect(token.ColonToken)
	valueType := p.parseType()
	name := p.arena.AddIdentifier(namePos, nameEnd, nameText)
	param := p.arena.AddParameter(paramStart, p.pos(), token.FlagNone, ast.ParameterData{Name: name, Type: keyType})
	return p.arena.AddIndexSignature(start, p.pos(), token.FlagNone, ast.IndexSignatureData{
		Parameters: nodeList([]ast.NodeIndex{param}, paramStart, p.pos(), false), Type: valueType,
	}), true
}
