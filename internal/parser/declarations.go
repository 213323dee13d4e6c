package parser

import (
	"github.com/mohsen1/tsz-sub013/internal/ast"
	"github.com/mohsen1/tsz-sub013/internal/token"
)

// tryParseModifierSequence consumes a run of modifier keywords
// (export/default/declare/public/private/protected/static/abstract/
// async/readonly) and reports whether what follows still looks like a
// declaration, so a bare expression statement starting with e.g. an
// identifier named `static` used as a value is never misparsed.
func (p *Parser) tryParseModifierSequence() (token.NodeFlags, bool) {
	snap := p.s.SaveState()
	flags := token.FlagNone
	consumedAny := false
	for {
		var bit token.NodeFlags
		switch p.token() {
		case token.ExportKeyword:
			bit = token.FlagExport
		case token.DefaultKeyword:
			bit = token.FlagDefault
		case token.DeclareKeyword:
			bit = token.FlagAmbient
		case token.PublicKeyword:
			bit = token.FlagPublic
		case token.PrivateKeyword:
			bit = token.FlagPrivate
		case token.ProtectedKeyword:
			bit = token.FlagProtected
		case token.StaticKeyword:
			bit = token.FlagStatic
		case token.AbstractKeyword:
			bit = token.FlagAbstract
		case token.AsyncKeyword:
			bit = token.FlagAsync
		case token.ReadonlyKeyword:
			bit = token.FlagReadonly
		default:
			bit = 0
		}
		if bit == 0 {
			break
		}
		flags |= bit
		consumedAny = true
		p.next()
	}
	if !consumedAny {
		return token.FlagNone, false
	}
	switch p.token() {
	case token.FunctionKeyword, token.ClassKeyword, token.InterfaceKeyword, token.EnumKeyword,
		token.VarKeyword, token.LetKeyword, token.ConstKeyword, token.Identifier,
		token.AsteriskToken, token.OpenBracketToken, token.OpenParenToken, token.NamespaceKeyword, token.ModuleKeyword:
		return flags, true
	case token.TypeKeyword:
		if p.looksLikeTypeAlias() {
			return flags, true
		}
	}
	p.s.RestoreState(snap)
	return token.FlagNone, false
}

func (p *Parser) parseModifiedDeclaration(start uint32, flags token.NodeFlags) ast.NodeIndex {
	switch p.token() {
	case token.FunctionKeyword:
		return p.parseFunctionDeclaration(start, flags)
	case token.ClassKeyword:
		return p.parseClassDeclaration(start, flags)
	case token.InterfaceKeyword:
		return p.parseInterfaceDeclaration(start, flags)
	case token.TypeKeyword:
		return p.parseTypeAliasDeclaration(start, flags)
	case token.EnumKeyword:
		return p.parseEnumDeclaration(start, flags)
	case token.NamespaceKeyword, token.ModuleKeyword:
		return p.parseModuleDeclaration(start, flags)
	case token.ConstKeyword:
		if p.isConstEnumAhead() {
			p.next()
			return p.parseEnumDeclaration(start, flags|token.FlagConst)
		}
		p.next()
		declFlags := flags | token.FlagConst
		declList := p.parseVariableDeclarationList(declFlags)
		p.parseSemicolon()
		return p.arena.AddVariableStatement(start, p.pos(), declFlags, declList)
	case token.VarKeyword, token.LetKeyword:
		declFlags := flags
		if p.token() == token.LetKeyword {
			declFlags |= token.FlagLet
		}
		p.next()
		declList := p.parseVariableDeclarationList(declFlags)
		p.parseSemicolon()
		return p.arena.AddVariableStatement(start, p.pos(), declFlags, declList)
	default:
		// `export default <expr>` and `export =` assignment forms.
		if flags.Has(token.FlagExport) {
			return p.parseExportAssignmentBody(start, flags)
		}
		return p.parseExpressionOrLabeledStatement(start)
	}
}

func (p *Parser) parseFunctionDeclaration(start uint32, flags token.NodeFlags) ast.NodeIndex {
	p.expect(token.FunctionKeyword)
	p.parseOptional(token.AsteriskToken) // generator marker: not separately flagged, mirrors async's FlagAsync treatment
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
	var body ast.NodeIndex
	if p.at(token.OpenBraceToken) {
		body = p.parseBlock()
	} else {
		p.parseSemicolon() // overload signature / ambient declaration: no body
	}
	return p.arena.AddFunctionLike(token.FunctionDeclaration, start, p.pos(), flags, ast.FunctionLikeData{
		Name: name, TypeParameters: typeParams, Parameters: params, ReturnType: returnType, Body: body,
	})
}

func (p *Parser) parseParameterList() ast.NodeList {
	start := p.pos()
	p.expect(token.OpenParenToken)
	var params []ast.NodeIndex
	for !p.at(token.CloseParenToken) && !p.at(token.EndOfFile) {
		params = append(params, p.parseParameter())
		if !p.parseOptional(token.CommaToken) {
			break
		}
	}
	_, end := p.expect(token.CloseParenToken)
	return nodeList(params, start, end, false)
}

func (p *Parser) parseParameter() ast.NodeIndex {
	start := p.pos()
	flags, _ := p.tryParseParameterModifiers()
	for _, d := range p.parseDecoratorsOnly() {
		_ = d
	}
	isRest := p.parseOptional(token.DotDotDotToken)
	name := p.parseBindingName()
	isOptional := p.parseOptional(token.QuestionToken)
	var typ ast.NodeIndex
	if p.parseOptional(token.ColonToken) {
		typ = p.parseType()
	}
	var init ast.NodeIndex
	if p.parseOptional(token.EqualsToken) {
		init = p.parseAssignmentExpression()
	}
	return p.arena.AddParameter(start, p.pos(), flags, ast.ParameterData{
		Name: name, Type: typ, Initializer: init, IsRest: isRest, IsOptional: isOptional,
	})
}

// tryParseParameterModifiers consumes TypeScript's parameter-property
// modifiers (public/private/protected/readonly), meaningful only inside a
// constructor parameter list; elsewhere they are simply absent.
func (p *Parser) tryParseParameterModifiers() (token.NodeFlags, bool) {
	flags := token.FlagNone
	any := false
	for {
		var bit token.NodeFlags
		switch p.token() {
		case token.PublicKeyword:
			bit = token.FlagPublic
		case token.PrivateKeyword:
			bit = token.FlagPrivate
		case token.ProtectedKeyword:
			bit = token.FlagProtected
		case token.ReadonlyKeyword:
			bit = token.FlagReadonly
		default:
			bit = 0
		}
		if bit == 0 {
			break
		}
		flags |= bit
		any = true
		p.next()
	}
	return flags, any
}

func (p *Parser) parseDecoratorsOnly() []ast.NodeIndex {
	var decs []ast.NodeIndex
	for p.at(token.AtToken) {
		decs = append(decs, p.parseDecorator())
	}
	return decs
}

func (p *Parser) parseOptionalTypeParameters() ast.NodeList {
	if !p.at(token.LessThanToken) {
		return ast.NodeList{}
	}
	start := p.pos()
	p.next()
	var params []ast.NodeIndex
	for !p.at(token.GreaterThanToken) && !p.at(token.EndOfFile) {
		params = append(params, p.parseTypeParameter())
		if !p.parseOptional(token.CommaToken) {
			break
		}
	}
	_, end := p.expect(token.GreaterThanToken)
	return nodeList(params, start, end, false)
}

func (p *Parser) parseTypeParameter() ast.NodeIndex {
	start := p.pos()
	name := p.expectIdentifierName()
	var constraint, def ast.NodeIndex
	if p.parseOptional(token.ExtendsKeyword) {
		constraint = p.parseType()
	}
	if p.parseOptional(token.EqualsToken) {
		def = p.parseType()
	}
	return p.arena.AddTypeParameter(start, p.pos(), ast.TypeParameterData{Name: name, Constraint: constraint, Default: def})
}

func (p *Parser) parseClassDeclaration(start uint32, flags token.NodeFlags) ast.NodeIndex {
	return p.parseClassLike(start, flags, token.ClassDeclaration)
}

func (p *Parser) parseClassLike(start uint32, flags token.NodeFlags, kind token.SyntaxKind) ast.NodeIndex {
	p.expect(token.ClassKeyword)
	var name ast.NodeIndex
	if p.at(token.Identifier) {
		name = p.expectIdentifierName()
	}
	typeParams := p.parseOptionalTypeParameters()
	heritageStart := p.pos()
	var heritage []ast.NodeIndex
	for p.at(token.ExtendsKeyword) || p.at(token.ImplementsKeyword) {
		heritage = append(heritage, p.parseHeritageClause())
	}
	p.expect(token.OpenBraceToken)
	var members []ast.NodeIndex
	for !p.at(token.CloseBraceToken) && !p.at(token.EndOfFile) {
		if p.parseOptional(token.SemicolonToken) {
			continue
		}
		members = append(members, p.parseClassMember())
	}
	_, end := p.expect(token.CloseBraceToken)
	return p.arena.AddClassLike(kind, start, end, flags, ast.ClassLikeData{
		Name: name, TypeParameters: typeParams,
		HeritageClauses: nodeList(heritage, heritageStart, p.pos(), false),
		Members:         nodeList(members, heritageStart, end, false),
	})
}

func (p *Parser) parseHeritageClause() ast.NodeIndex {
	start := p.pos()
	kw := p.token()
	p.next()
	var types []ast.NodeIndex
	for {
		types = append(types, p.parseTypeReferenceOrExpressionWithTypeArgs())
		if !p.parseOptional(token.CommaToken) {
			break
		}
	}
	return p.arena.AddHeritageClause(start, p.pos(), ast.HeritageClauseData{Token: kw, Types: nodeList(types, start, p.pos(), false)})
}

func (p *Parser) parseClassMember() ast.NodeIndex {
	start := p.pos()
	decorators := p.parseDecoratorsOnly()
	flags := token.FlagNone
	for {
		var bit token.NodeFlags
		switch p.token() {
		case token.PublicKeyword:
			bit = token.FlagPublic
		case token.PrivateKeyword:
			bit = token.FlagPrivate
		case token.ProtectedKeyword:
			bit = token.FlagProtected
		case token.StaticKeyword:
			bit = token.FlagStatic
		case token.AbstractKeyword:
			bit = token.FlagAbstract
		case token.ReadonlyKeyword:
			bit = token.FlagReadonly
		case token.AsyncKeyword:
			bit = token.FlagAsync
		default:
			bit = 0
		}
		if bit == 0 {
			break
		}
		flags |= bit
		p.next()
	}

	isGetSet := token.SyntaxKind(0)
	if p.at(token.GetKeyword) {
		snap := p.s.SaveState()
		p.next()
		if !p.at(token.OpenParenToken) {
			isGetSet = token.GetAccessor
		} else {
			p.s.RestoreState(snap)
		}
	} else if p.at(token.SetKeyword) {
		snap := p.s.SaveState()
		p.next()
		if !p.at(token.OpenParenToken) {
			isGetSet = token.SetAccessor
		} else {
			p.s.RestoreState(snap)
		}
	}
	p.parseOptional(token.AsteriskToken)

	isComputed := p.at(token.OpenBracketToken)
	name := p.parsePropertyName()
	isOptional := p.parseOptional(token.QuestionToken)
	_ = isComputed

	if p.isConstructorName(name) && isGetSet == 0 {
		typeParams := p.parseOptionalTypeParameters()
		params := p.parseParameterList()
		var body ast.NodeIndex
		if p.at(token.OpenBraceToken) {
			body = p.parseBlock()
		} else {
			p.parseSemicolon()
		}
		ctor := p.arena.AddFunctionLike(token.Constructor, start, p.pos(), flags, ast.FunctionLikeData{
			Name: name, TypeParameters: typeParams, Parameters: params, Body: body,
		})
		p.attachDecorators(decorators, ctor)
		return ctor
	}

	if p.at(token.OpenParenToken) || p.at(token.LessThanToken) {
		kind := token.MethodDeclaration
		if isGetSet != 0 {
			kind = isGetSet
		}
		typeParams := p.parseOptionalTypeParameters()
		params := p.parseParameterList()
		var returnType ast.NodeIndex
		if p.parseOptional(token.ColonToken) {
			returnType = p.parseType()
		}
		var body ast.NodeIndex
		if p.at(token.OpenBraceToken) {
			body = p.parseBlock()
		} else {
			p.parseSemicolon()
		}
		m := p.arena.AddFunctionLike(kind, start, p.pos(), flags, ast.FunctionLikeData{
			Name: name, TypeParameters: typeParams, Parameters: params, ReturnType: returnType, Body: body,
		})
		p.attachDecorators(decorators, m)
		return m
	}

	// Property declaration: optional type annotation and initializer.
	var typ ast.NodeIndex
	if p.parseOptional(token.ColonToken) {
		typ = p.parseType()
	}
	var init ast.NodeIndex
	if p.parseOptional(token.EqualsToken) {
		init = p.parseAssignmentExpression()
	}
	p.parseSemicolon()
	prop := p.arena.AddPropertySignature(start, p.pos(), flags, ast.PropertySignatureData{Name: name, Type: typ, Optional: isOptional, Initializer: init})
	if init != ast.NoNode {
		p.arena.SetParent(init, prop)
	}
	p.attachDecorators(decorators, prop)
	return prop
}

func (p *Parser) attachDecorators(decorators []ast.NodeIndex, owner ast.NodeIndex) {
	for _, d := range decorators {
		p.arena.SetParent(d, owner)
	}
}

func (p *Parser) isConstructorName(name ast.NodeIndex) bool {
	return p.arena.NameText(name) == "constructor"
}

func (p *Parser) parsePropertyName() ast.NodeIndex {
	switch p.token() {
	case token.StringLiteral:
		pos, end, txt := p.pos(), p.end(), p.text()
		p.next()
		return p.arena.AddStringLiteral(pos, end, txt)
	case token.NumericLiteral:
		pos, end, txt := p.pos(), p.end(), p.text()
		p.next()
		return p.arena.AddNumericLiteral(pos, end, txt)
	case token.OpenBracketToken:
		start := p.pos()
		p.next()
		expr := p.parseAssignmentExpression()
		_, end := p.expect(token.CloseBracketToken)
		return p.arena.AddComputedPropertyName(start, end, expr)
	default:
		return p.expectIdentifierName()
	}
}

func (p *Parser) parseInterfaceDeclaration(start uint32, flags token.NodeFlags) ast.NodeIndex {
	p.expect(token.InterfaceKeyword)
	name := p.expectIdentifierName()
	typeParams := p.parseOptionalTypeParameters()
	heritageStart := p.pos()
	var heritage []ast.NodeIndex
	for p.at(token.ExtendsKeyword) {
		heritage = append(heritage, p.parseHeritageClause())
	}
	members := p.parseTypeMemberList()
	return p.arena.AddInterfaceDeclaration(start, p.pos(), flags, ast.InterfaceData{
		Name: name, TypeParameters: typeParams,
		HeritageClauses: nodeList(heritage, heritageStart, p.pos(), false),
		Members:         members,
	})
}

func (p *Parser) parseTypeAliasDeclaration(start uint32, flags token.NodeFlags) ast.NodeIndex {
	p.expect(token.TypeKeyword)
	name := p.expectIdentifierName()
	typeParams := p.parseOptionalTypeParameters()
	p.expect(token.EqualsToken)
	typ := p.parseType()
	p.parseSemicolon()
	return p.arena.AddTypeAliasDeclaration(start, p.pos(), flags, ast.TypeAliasData{Name: name, TypeParameters: typeParams, Type: typ})
}

func (p *Parser) parseEnumDeclaration(start uint32, flags token.NodeFlags) ast.NodeIndex {
	p.expect(token.EnumKeyword)
	name := p.expectIdentifierName()
	membersStart := p.pos()
	p.expect(token.OpenBraceToken)
	var members []ast.NodeIndex
	for !p.at(token.CloseBraceToken) && !p.at(token.EndOfFile) {
		members = append(members, p.parseEnumMember())
		if !p.parseOptional(token.CommaToken) {
			break
		}
	}
	_, end := p.expect(token.CloseBraceToken)
	return p.arena.AddEnumDeclaration(start, end, flags, ast.EnumData{Name: name, Members: nodeList(members, membersStart, end, false)})
}

func (p *Parser) parseEnumMember() ast.NodeIndex {
	start := p.pos()
	name := p.parsePropertyName()
	var init ast.NodeIndex
	if p.parseOptional(token.EqualsToken) {
		init = p.parseAssignmentExpression()
	}
	return p.arena.AddEnumMember(start, p.pos(), ast.EnumMemberData{Name: name, Initializer: init})
}

func (p *Parser) parseModuleDeclaration(start uint32, flags token.NodeFlags) ast.NodeIndex {
	p.next() // `module` or `namespace`
	var name ast.NodeIndex
	isGlobalAugmentation := false
	switch p.token() {
	case token.StringLiteral:
		pos, end, txt := p.pos(), p.end(), p.text()
		p.next()
		name = p.arena.AddStringLiteral(pos, end, txt)
	case token.GlobalKeyword:
		pos, end := p.pos(), p.end()
		p.next()
		name = p.arena.AddIdentifier(pos, end, "global")
		isGlobalAugmentation = true
	default:
		name = p.parseQualifiedModuleName()
	}
	var body ast.NodeIndex
	if p.at(token.OpenBraceToken) {
		body = p.parseModuleBlock()
	} else {
		p.parseSemicolon()
	}
	return p.arena.AddModuleDeclaration(start, p.pos(), flags, ast.ModuleData{Name: name, Body: body, IsGlobalAugmentation: isGlobalAugmentation})
}

func (p *Parser) parseQualifiedModuleName() ast.NodeIndex {
	left := p.expectIdentifierName()
	for p.parseOptional(token.DotToken) {
		start := p.pos()
		right := p.expectIdentifierName()
		left = p.arena.AddQualifiedName(start, p.pos(), left, right)
	}
	return left
}

func (p *Parser) parseModuleBlock() ast.NodeIndex {
	start := p.pos()
	p.expect(token.OpenBraceToken)
	var statements []ast.NodeIndex
	for !p.at(token.CloseBraceToken) && !p.at(token.EndOfFile) {
		statements = append(statements, p.parseStatement())
	}
	_, end := p.expect(token.CloseBraceToken)
	return p.arena.AddBlock(start, end, nodeList(statements, start, end, false))
}

// --- import / export -----------------------------------------------------

func (p *Parser) parseImportDeclaration(start uint32) ast.NodeIndex {
	p.expect(token.ImportKeyword)

	// `import x = require("...")` / `import x = Other.Name`
	if p.at(token.Identifier) {
		snap := p.s.SaveState()
		name := p.expectIdentifierName()
		if p.parseOptional(token.EqualsToken) {
			moduleRef := p.parseQualifiedModuleName()
			p.parseSemicolon()
			return p.arena.AddImportEqualsDeclaration(start, p.pos(), token.FlagNone, ast.ImportEqualsData{Name: name, ModuleRef: moduleRef})
		}
		p.s.RestoreState(snap)
	}

	flags := token.FlagNone
	if p.at(token.TypeKeyword) {
		snap := p.s.SaveState()
		p.next()
		if !p.at(token.FromKeyword) && !p.at(token.CommaToken) {
			flags |= token.FlagTypeOnly
		} else {
			p.s.RestoreState(snap)
		}
	}

	// Bare `import "module";`
	if p.at(token.StringLiteral) {
		pos, end, txt := p.pos(), p.end(), p.text()
		p.next()
		spec := p.arena.AddStringLiteral(pos, end, txt)
		p.parseSemicolon()
		return p.arena.AddImportDeclaration(start, p.pos(), flags, ast.ImportDeclarationData{ModuleSpecifier: spec})
	}

	clauseStart := p.pos()
	var defaultName, namedBindings ast.NodeIndex
	if p.at(token.Identifier) {
		defaultName = p.expectIdentifierName()
		p.parseOptional(token.CommaToken)
	}
	if p.at(token.AsteriskToken) {
		nsStart := p.pos()
		p.next()
		p.expect(token.AsKeyword)
		nsName := p.expectIdentifierName()
		namedBindings = p.arena.AddNamespaceImport(nsStart, p.pos(), nsName)
	} else if p.at(token.OpenBraceToken) {
		namedBindings = p.parseNamedImportsOrExports(true)
	}
	clause := p.arena.AddImportClause(clauseStart, p.pos(), flags, ast.ImportClauseData{Name: defaultName, NamedBindings: namedBindings})

	p.expect(token.FromKeyword)
	pos, end, txt := p.pos(), p.end(), p.text()
	p.parseOptional(token.StringLiteral)
	spec := p.arena.AddStringLiteral(pos, end, txt)
	p.parseSemicolon()
	return p.arena.AddImportDeclaration(start, p.pos(), flags, ast.ImportDeclarationData{ImportClause: clause, ModuleSpecifier: spec})
}

func (p *Parser) parseNamedImportsOrExports(isImport bool) ast.NodeIndex {
	start := p.pos()
	p.expect(token.OpenBraceToken)
	var specs []ast.NodeIndex
	for !p.at(token.CloseBraceToken) && !p.at(token.EndOfFile) {
		specs = append(specs, p.parseImportOrExportSpecifier(isImport))
		if !p.parseOptional(token.CommaToken) {
			break
		}
	}
	_, end := p.expect(token.CloseBraceToken)
	if isImport {
		return p.arena.AddNamedImports(start, end, nodeList(specs, start, end, false))
	}
	return p.arena.AddNamedExports(start, end, nodeList(specs, start, end, false))
}

func (p *Parser) parseImportOrExportSpecifier(isImport bool) ast.NodeIndex {
	start := p.pos()
	first := p.expectIdentifierName()
	var propertyName, name ast.NodeIndex
	if p.parseOptional(token.AsKeyword) {
		propertyName = first
		name = p.expectIdentifierName()
	} else {
		name = first
	}
	if isImport {
		return p.arena.AddImportSpecifier(start, p.pos(), token.FlagNone, ast.ImportSpecifierData{PropertyName: propertyName, Name: name})
	}
	return p.arena.AddExportSpecifier(start, p.pos(), token.FlagNone, ast.ExportSpecifierData{PropertyName: propertyName, Name: name})
}

func (p *Parser) parseExportDeclaration(start uint32) ast.NodeIndex {
	p.expect(token.ExportKeyword)

	if p.parseOptional(token.EqualsToken) {
		expr := p.parseAssignmentExpression()
		p.parseSemicolon()
		return p.arena.AddExportAssignment(start, p.pos(), ast.ExportAssignmentData{Expression: expr, IsExportEquals: true})
	}
	if p.at(token.DefaultKeyword) {
		return p.parseExportAssignmentBody(start, token.FlagExport)
	}

	flags := token.FlagExport
	if p.at(token.TypeKeyword) {
		snap := p.s.SaveState()
		p.next()
		if p.at(token.OpenBraceToken) || p.at(token.AsteriskToken) {
			flags |= token.FlagTypeOnly
		} else {
			p.s.RestoreState(snap)
		}
	}

	if p.at(token.AsteriskToken) {
		p.next()
		var exportClause ast.NodeIndex
		isWildcard := true
		if p.parseOptional(token.AsKeyword) {
			name := p.expectIdentifierName()
			exportClause = name
			isWildcard = false
		}
		p.expect(token.FromKeyword)
		pos, end, txt := p.pos(), p.end(), p.text()
		p.parseOptional(token.StringLiteral)
		spec := p.arena.AddStringLiteral(pos, end, txt)
		p.parseSemicolon()
		return p.arena.AddExportDeclaration(start, p.pos(), flags, ast.ExportDeclarationData{ExportClause: exportClause, ModuleSpecifier: spec, IsWildcard: isWildcard})
	}

	if p.at(token.OpenBraceToken) {
		namedExports := p.parseNamedImportsOrExports(false)
		var spec ast.NodeIndex
		if p.parseOptional(token.FromKeyword) {
			pos, end, txt := p.pos(), p.end(), p.text()
			p.parseOptional(token.StringLiteral)
			spec = p.arena.AddStringLiteral(pos, end, txt)
		}
		p.parseSemicolon()
		return p.arena.AddExportDeclaration(start, p.pos(), flags, ast.ExportDeclarationData{ExportClause: namedExports, ModuleSpecifier: spec})
	}

	// `export <declaration>`
	return p.parseModifiedDeclaration(start, flags)
}

// parseExportAssignmentBody handles `export default <expr|decl>`.
func (p *Parser) parseExportAssignmentBody(start uint32, flags token.NodeFlags) ast.NodeIndex {
	p.parseOptional(token.DefaultKeyword)
	flags |= token.FlagDefault
	switch p.token() {
	case token.FunctionKeyword:
		return p.parseFunctionDeclaration(start, flags)
	case token.ClassKeyword:
		return p.parseClassDeclaration(start, flags)
	default:
		expr := p.parseAssignmentExpression()
		p.parseSemicolon()
		return p.arena.AddExportAssignment(start, p.pos(), ast.ExportAssignmentData{Expression: expr})
	}
}
