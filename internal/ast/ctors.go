package ast

import (
	"github.com/mohsen1/tsz-sub013/internal/atom"
	"github.com/mohsen1/tsz-sub013/internal/token"
)

// addWithData appends data to *pool and a ThinNode referencing it to the
// main node sequence, returning the new NodeIndex. Every typed
// constructor below is a one-line call to this so adding a new node kind
// never requires touching the append/DataIndex bookkeeping by hand.
func addWithData[T any](a *Arena, pool *[]T, kind token.SyntaxKind, pos, end uint32, flags token.NodeFlags, data T) NodeIndex {
	*pool = append(*pool, data)
	dataIndex := uint32(len(*pool) - 1)
	return a.push(ThinNode{Kind: kind, Flags: flags, Pos: pos, End: end, DataIndex: dataIndex})
}

// addBare appends a node whose kind carries its full meaning via
// Kind/Pos/End alone (keywords used as expressions, punctuator-only
// statements such as `;`, recovery-synthesized Missing nodes).
func (a *Arena) addBare(kind token.SyntaxKind, pos, end uint32, flags token.NodeFlags) NodeIndex {
	return a.push(ThinNode{Kind: kind, Flags: flags, Pos: pos, End: end})
}

func (a *Arena) AddMissing(pos, end uint32) NodeIndex {
	return a.addBare(token.Missing, pos, end, token.FlagSynthesized)
}

func (a *Arena) AddKeywordExpr(kind token.SyntaxKind, pos, end uint32) NodeIndex {
	return a.addBare(kind, pos, end, token.FlagNone)
}

func (a *Arena) AddEmptyStatement(pos, end uint32) NodeIndex {
	return a.addBare(token.EmptyStatement, pos, end, token.FlagNone)
}

func (a *Arena) AddDebuggerStatement(pos, end uint32) NodeIndex {
	return a.addBare(token.DebuggerStatement, pos, end, token.FlagNone)
}

func (a *Arena) AddBreakStatement(pos, end uint32, label NodeIndex) NodeIndex {
	return addWithData(a, &a.labeledStatements, token.BreakStatement, pos, end, token.FlagNone, LabeledStatementData{Label: label})
}

func (a *Arena) AddContinueStatement(pos, end uint32, label NodeIndex) NodeIndex {
	return addWithData(a, &a.labeledStatements, token.ContinueStatement, pos, end, token.FlagNone, LabeledStatementData{Label: label})
}

func (a *Arena) AddIdentifier(pos, end uint32, text string) NodeIndex {
	at := atom.None
	if a.Interner != nil {
		at = a.Interner.Intern(text)
	}
	flags := token.NodeFlags(0)
	if text == "" {
		flags = token.FlagSynthesized
	}
	return addWithData(a, &a.identifiers, token.Identifier, pos, end, flags, IdentifierData{Text: at})
}

func (a *Arena) AddPrivateIdentifier(pos, end uint32, text string) NodeIndex {
	at := atom.None
	if a.Interner != nil {
		at = a.Interner.Intern(text)
	}
	return addWithData(a, &a.identifiers, token.PrivateIdentifier, pos, end, token.FlagNone, IdentifierData{Text: at})
}

func (a *Arena) AddNumericLiteral(pos, end uint32, text string) NodeIndex {
	return addWithData(a, &a.literals, token.NumericLiteralExpr, pos, end, token.FlagNone, LiteralData{Text: text})
}

func (a *Arena) AddStringLiteral(pos, end uint32, text string) NodeIndex {
	return addWithData(a, &a.literals, token.StringLiteralExpr, pos, end, token.FlagNone, LiteralData{Text: text})
}

func (a *Arena) AddRegularExpressionLiteral(pos, end uint32, text string) NodeIndex {
	return addWithData(a, &a.literals, token.RegularExpressionLiteralExpr, pos, end, token.FlagNone, LiteralData{Text: text})
}

func (a *Arena) AddNoSubstitutionTemplateLiteral(pos, end uint32, text string) NodeIndex {
	return addWithData(a, &a.literals, token.NoSubstitutionTemplateLiteralExpr, pos, end, token.FlagNone, LiteralData{Text: text})
}

func (a *Arena) AddTemplateLiteralPart(kind token.SyntaxKind, pos, end uint32, text string) NodeIndex {
	return addWithData(a, &a.literals, kind, pos, end, token.FlagNone, LiteralData{Text: text})
}

func (a *Arena) AddTemplateExpr(pos, end uint32, head NodeIndex, spans []NodeIndex) NodeIndex {
	return addWithData(a, &a.templates, token.TemplateExpr, pos, end, token.FlagNone, TemplateData{Head: head, Spans: spans})
}

func (a *Arena) AddTemplateSpan(pos, end uint32, expr, literal NodeIndex) NodeIndex {
	return addWithData(a, &a.templateSpans, token.TemplateSpan, pos, end, token.FlagNone, TemplateSpanData{Expression: expr, Literal: literal})
}

func (a *Arena) AddVariableDeclaration(pos, end uint32, name, typ, init NodeIndex) NodeIndex {
	return addWithData(a, &a.varDecls, token.VariableDeclaration, pos, end, token.FlagNone, VariableDeclarationData{Name: name, Type: typ, Initializer: init})
}

func (a *Arena) AddVariableDeclarationList(pos, end uint32, flags token.NodeFlags, decls NodeList) NodeIndex {
	return addWithData(a, &a.varDeclLists, token.VariableDeclarationList, pos, end, flags, VariableDeclarationListData{Declarations: decls})
}

func (a *Arena) AddVariableStatement(pos, end uint32, flags token.NodeFlags, declList NodeIndex) NodeIndex {
	return addWithData(a, &a.labeledStatements, token.VariableStatement, pos, end, flags, LabeledStatementData{Label: declList})
}

func (a *Arena) AddFunctionLike(kind token.SyntaxKind, pos, end uint32, flags token.NodeFlags, data FunctionLikeData) NodeIndex {
	return addWithData(a, &a.functions, kind, pos, end, flags, data)
}

func (a *Arena) AddClassLike(kind token.SyntaxKind, pos, end uint32, flags token.NodeFlags, data ClassLikeData) NodeIndex {
	return addWithData(a, &a.classes, kind, pos, end, flags, data)
}

func (a *Arena) AddInterfaceDeclaration(pos, end uint32, flags token.NodeFlags, data InterfaceData) NodeIndex {
	return addWithData(a, &a.interfaces, token.InterfaceDeclaration, pos, end, flags, data)
}

// AddTypeLiteral covers anonymous `{ ... }` object type literals, which
// share InterfaceData's Members list with named interfaces (Name is NoNode).
func (a *Arena) AddTypeLiteral(pos, end uint32, data InterfaceData) NodeIndex {
	return addWithData(a, &a.interfaces, token.TypeLiteral, pos, end, token.FlagNone, data)
}

func (a *Arena) AddTypeAliasDeclaration(pos, end uint32, flags token.NodeFlags, data TypeAliasData) NodeIndex {
	return addWithData(a, &a.typeAliases, token.TypeAliasDeclaration, pos, end, flags, data)
}

func (a *Arena) AddEnumDeclaration(pos, end uint32, flags token.NodeFlags, data EnumData) NodeIndex {
	return addWithData(a, &a.enums, token.EnumDeclaration, pos, end, flags, data)
}

func (a *Arena) AddEnumMember(pos, end uint32, data EnumMemberData) NodeIndex {
	return addWithData(a, &a.enumMembers, token.EnumMember, pos, end, token.FlagNone, data)
}

func (a *Arena) AddBinaryExpr(pos, end uint32, data BinaryExprData) NodeIndex {
	return addWithData(a, &a.binaryExprs, token.BinaryExpr, pos, end, token.FlagNone, data)
}

func (a *Arena) AddUnaryExpr(kind token.SyntaxKind, pos, end uint32, data UnaryExprData) NodeIndex {
	return addWithData(a, &a.unaryExprs, kind, pos, end, token.FlagNone, data)
}

func (a *Arena) AddCallExpr(pos, end uint32, data CallExprData) NodeIndex {
	return addWithData(a, &a.callExprs, token.CallExpr, pos, end, token.FlagNone, data)
}

func (a *Arena) AddNewExpr(pos, end uint32, data CallExprData) NodeIndex {
	return addWithData(a, &a.callExprs, token.NewExpr, pos, end, token.FlagNone, data)
}

func (a *Arena) AddPropertyAccess(pos, end uint32, data AccessData) NodeIndex {
	return addWithData(a, &a.accesses, token.PropertyAccessExpr, pos, end, token.FlagNone, data)
}

func (a *Arena) AddElementAccess(pos, end uint32, data AccessData) NodeIndex {
	return addWithData(a, &a.accesses, token.ElementAccessExpr, pos, end, token.FlagNone, data)
}

func (a *Arena) AddConditionalExpr(pos, end uint32, data ConditionalExprData) NodeIndex {
	return addWithData(a, &a.conditionals, token.ConditionalExpr, pos, end, token.FlagNone, data)
}

func (a *Arena) AddParameter(pos, end uint32, flags token.NodeFlags, data ParameterData) NodeIndex {
	return addWithData(a, &a.parameters, token.Parameter, pos, end, flags, data)
}

func (a *Arena) AddBindingPattern(kind token.SyntaxKind, pos, end uint32, data BindingPatternData) NodeIndex {
	return addWithData(a, &a.bindingPatterns, kind, pos, end, token.FlagNone, data)
}

func (a *Arena) AddBindingElement(pos, end uint32, data BindingElementData) NodeIndex {
	return addWithData(a, &a.bindingElements, token.BindingElement, pos, end, token.FlagNone, data)
}

func (a *Arena) AddDecorator(pos, end uint32, expr NodeIndex) NodeIndex {
	return addWithData(a, &a.decorators, token.Decorator, pos, end, token.FlagNone, DecoratorData{Expression: expr})
}

func (a *Arena) AddModuleDeclaration(pos, end uint32, flags token.NodeFlags, data ModuleData) NodeIndex {
	return addWithData(a, &a.modules, token.ModuleDeclaration, pos, end, flags, data)
}

func (a *Arena) AddImportDeclaration(pos, end uint32, flags token.NodeFlags, data ImportDeclarationData) NodeIndex {
	return addWithData(a, &a.importDecls, token.ImportDeclaration, pos, end, flags, data)
}

func (a *Arena) AddImportClause(pos, end uint32, flags token.NodeFlags, data ImportClauseData) NodeIndex {
	return addWithData(a, &a.importClauses, token.ImportClause, pos, end, flags, data)
}

func (a *Arena) AddImportEqualsDeclaration(pos, end uint32, flags token.NodeFlags, data ImportEqualsData) NodeIndex {
	return addWithData(a, &a.importEquals, token.ImportEqualsDeclaration, pos, end, flags, data)
}

func (a *Arena) AddNamespaceImport(pos, end uint32, name NodeIndex) NodeIndex {
	return addWithData(a, &a.namespaceImports, token.NamespaceImport, pos, end, token.FlagNone, NamespaceImportData{Name: name})
}

func (a *Arena) AddNamedImports(pos, end uint32, specs NodeList) NodeIndex {
	return addWithData(a, &a.varDeclLists, token.NamedImports, pos, end, token.FlagNone, VariableDeclarationListData{Declarations: specs})
}

func (a *Arena) AddImportSpecifier(pos, end uint32, flags token.NodeFlags, data ImportSpecifierData) NodeIndex {
	return addWithData(a, &a.importSpecifiers, token.ImportSpecifier, pos, end, flags, data)
}

func (a *Arena) AddExportDeclaration(pos, end uint32, flags token.NodeFlags, data ExportDeclarationData) NodeIndex {
	return addWithData(a, &a.exportDecls, token.ExportDeclaration, pos, end, flags, data)
}

func (a *Arena) AddNamedExports(pos, end uint32, specs NodeList) NodeIndex {
	return addWithData(a, &a.varDeclLists, token.NamedExports, pos, end, token.FlagNone, VariableDeclarationListData{Declarations: specs})
}

func (a *Arena) AddExportSpecifier(pos, end uint32, flags token.NodeFlags, data ExportSpecifierData) NodeIndex {
	return addWithData(a, &a.exportSpecifiers, token.ExportSpecifier, pos, end, flags, data)
}

func (a *Arena) AddExportAssignment(pos, end uint32, data ExportAssignmentData) NodeIndex {
	return addWithData(a, &a.exportAssignments, token.ExportAssignment, pos, end, token.FlagNone, data)
}

func (a *Arena) AddHeritageClause(pos, end uint32, data HeritageClauseData) NodeIndex {
	return addWithData(a, &a.heritageClauses, token.HeritageClause, pos, end, token.FlagNone, data)
}

func (a *Arena) AddTypeReference(pos, end uint32, data TypeReferenceData) NodeIndex {
	return addWithData(a, &a.typeReferences, token.TypeReference, pos, end, token.FlagNone, data)
}

func (a *Arena) AddUnionOrIntersectionType(kind token.SyntaxKind, pos, end uint32, data UnionOrIntersectionTypeData) NodeIndex {
	return addWithData(a, &a.unionIntersections, kind, pos, end, token.FlagNone, data)
}

func (a *Arena) AddArrayType(pos, end uint32, elem NodeIndex) NodeIndex {
	return addWithData(a, &a.arrayTypes, token.ArrayType, pos, end, token.FlagNone, ArrayTypeData{ElementType: elem})
}

func (a *Arena) AddTupleType(pos, end uint32, elems NodeList) NodeIndex {
	return addWithData(a, &a.tupleTypes, token.TupleType, pos, end, token.FlagNone, TupleTypeData{Elements: elems})
}

func (a *Arena) AddNamedTupleMember(pos, end uint32, data NamedTupleMemberData) NodeIndex {
	return addWithData(a, &a.namedTupleMembers, token.NamedTupleMember, pos, end, token.FlagNone, data)
}

func (a *Arena) AddIndexedAccessType(pos, end uint32, data IndexedAccessTypeData) NodeIndex {
	return addWithData(a, &a.indexedAccessTypes, token.IndexedAccessType, pos, end, token.FlagNone, data)
}

func (a *Arena) AddMappedType(pos, end uint32, data MappedTypeData) NodeIndex {
	return addWithData(a, &a.mappedTypes, token.MappedType, pos, end, token.FlagNone, data)
}

func (a *Arena) AddConditionalType(pos, end uint32, data ConditionalTypeData) NodeIndex {
	return addWithData(a, &a.conditionalTypes, token.ConditionalType, pos, end, token.FlagNone, data)
}

func (a *Arena) AddInferType(pos, end uint32, typeParam NodeIndex) NodeIndex {
	return addWithData(a, &a.inferTypes, token.InferType, pos, end, token.FlagNone, InferTypeData{TypeParameter: typeParam})
}

func (a *Arena) AddTypeOperator(pos, end uint32, data TypeOperatorData) NodeIndex {
	return addWithData(a, &a.typeOperators, token.TypeOperator, pos, end, token.FlagNone, data)
}

// AddOptionalType and AddRestType cover tuple member modifiers (`T?`,
// `...T`); they share TypeOperatorData's single Type field with
// AddTypeOperator rather than getting dedicated pools.
func (a *Arena) AddOptionalType(pos, end uint32, typ NodeIndex) NodeIndex {
	return addWithData(a, &a.typeOperators, token.OptionalType, pos, end, token.FlagNone, TypeOperatorData{Type: typ})
}

func (a *Arena) AddRestType(pos, end uint32, typ NodeIndex) NodeIndex {
	return addWithData(a, &a.typeOperators, token.RestType, pos, end, token.FlagNone, TypeOperatorData{Type: typ})
}

func (a *Arena) AddTypeParameter(pos, end uint32, data TypeParameterData) NodeIndex {
	return addWithData(a, &a.typeParameters, token.TypeParameter, pos, end, token.FlagNone, data)
}

func (a *Arena) AddTypePredicate(pos, end uint32, data TypePredicateData) NodeIndex {
	return addWithData(a, &a.typePredicates, token.TypePredicate, pos, end, token.FlagNone, data)
}

func (a *Arena) AddTypeQuery(pos, end uint32, exprName NodeIndex) NodeIndex {
	return addWithData(a, &a.typeQueries, token.TypeQuery, pos, end, token.FlagNone, TypeQueryData{ExprName: exprName})
}

func (a *Arena) AddFunctionType(kind token.SyntaxKind, pos, end uint32, data FunctionTypeData) NodeIndex {
	return addWithData(a, &a.functionTypes, kind, pos, end, token.FlagNone, data)
}

func (a *Arena) AddPropertySignature(pos, end uint32, flags token.NodeFlags, data PropertySignatureData) NodeIndex {
	return addWithData(a, &a.propertySignatures, token.PropertySignature, pos, end, flags, data)
}

func (a *Arena) AddMethodSignature(pos, end uint32, flags token.NodeFlags, data MethodSignatureData) NodeIndex {
	return addWithData(a, &a.methodSignatures, token.MethodSignature, pos, end, flags, data)
}

func (a *Arena) AddIndexSignature(pos, end uint32, flags token.NodeFlags, data IndexSignatureData) NodeIndex {
	return addWithData(a, &a.indexSignatures, token.IndexSignature, pos, end, flags, data)
}

func (a *Arena) AddSwitchStatement(pos, end uint32, data SwitchStatementData) NodeIndex {
	return addWithData(a, &a.switchStatements, token.SwitchStatement, pos, end, token.FlagNone, data)
}

func (a *Arena) AddCaseBlock(pos, end uint32, clauses NodeList) NodeIndex {
	return addWithData(a, &a.caseBlocks, token.CaseBlock, pos, end, token.FlagNone, CaseBlockData{Clauses: clauses})
}

func (a *Arena) AddCaseClause(pos, end uint32, data CaseClauseData) NodeIndex {
	kind := token.CaseClause
	if data.Expression == NoNode {
		kind = token.DefaultClause
	}
	return addWithData(a, &a.caseClauses, kind, pos, end, token.FlagNone, data)
}

func (a *Arena) AddTryStatement(pos, end uint32, data TryStatementData) NodeIndex {
	return addWithData(a, &a.tryStatements, token.TryStatement, pos, end, token.FlagNone, data)
}

func (a *Arena) AddCatchClause(pos, end uint32, data CatchClauseData) NodeIndex {
	return addWithData(a, &a.catchClauses, token.CatchClause, pos, end, token.FlagNone, data)
}

func (a *Arena) AddLabeledStatement(pos, end uint32, label, stmt NodeIndex) NodeIndex {
	return addWithData(a, &a.labeledStatements, token.LabeledStatement, pos, end, token.FlagNone, LabeledStatementData{Label: label, Statement: stmt})
}

func (a *Arena) AddWhileStatement(pos, end uint32, data WhileLikeData) NodeIndex {
	return addWithData(a, &a.whileLikes, token.WhileStatement, pos, end, token.FlagNone, data)
}

func (a *Arena) AddDoStatement(pos, end uint32, data WhileLikeData) NodeIndex {
	return addWithData(a, &a.whileLikes, token.DoStatement, pos, end, token.FlagNone, data)
}

func (a *Arena) AddForStatement(pos, end uint32, data ForStatementData) NodeIndex {
	return addWithData(a, &a.forStatements, token.ForStatement, pos, end, token.FlagNone, data)
}

func (a *Arena) AddForInStatement(pos, end uint32, data ForInOfData) NodeIndex {
	return addWithData(a, &a.forInOfs, token.ForInStatement, pos, end, token.FlagNone, data)
}

func (a *Arena) AddForOfStatement(pos, end uint32, data ForInOfData) NodeIndex {
	flags := token.FlagNone
	if data.IsAwait {
		flags = token.FlagAsync
	}
	return addWithData(a, &a.forInOfs, token.ForOfStatement, pos, end, flags, data)
}

func (a *Arena) AddIfStatement(pos, end uint32, data IfStatementData) NodeIndex {
	return addWithData(a, &a.ifStatements, token.IfStatement, pos, end, token.FlagNone, data)
}

func (a *Arena) AddBlock(pos, end uint32, statements NodeList) NodeIndex {
	return addWithData(a, &a.blocks, token.Block, pos, end, token.FlagNone, statements)
}

func (a *Arena) AddExpressionStatement(pos, end uint32, expr NodeIndex) NodeIndex {
	return addWithData(a, &a.labeledStatements, token.ExpressionStatement, pos, end, token.FlagNone, LabeledStatementData{Label: expr})
}

func (a *Arena) AddReturnThrowStatement(kind token.SyntaxKind, pos, end uint32, expr NodeIndex) NodeIndex {
	return addWithData(a, &a.labeledStatements, kind, pos, end, token.FlagNone, LabeledStatementData{Label: expr})
}

func (a *Arena) AddJsxOpeningElement(kind token.SyntaxKind, pos, end uint32, data JsxOpeningData) NodeIndex {
	return addWithData(a, &a.jsxOpenings, kind, pos, end, token.FlagNone, data)
}

func (a *Arena) AddJsxClosingElement(pos, end uint32, tagName NodeIndex) NodeIndex {
	return addWithData(a, &a.jsxClosings, token.JsxClosingElement, pos, end, token.FlagNone, JsxClosingData{TagName: tagName})
}

func (a *Arena) AddJsxElement(kind token.SyntaxKind, pos, end uint32, data JsxElementData) NodeIndex {
	return addWithData(a, &a.jsxElements, kind, pos, end, token.FlagNone, data)
}

func (a *Arena) AddJsxAttribute(pos, end uint32, data JsxAttributeData) NodeIndex {
	return addWithData(a, &a.jsxAttributes, token.JsxAttribute, pos, end, token.FlagNone, data)
}

func (a *Arena) AddJsxSpreadAttribute(pos, end uint32, expr NodeIndex) NodeIndex {
	return addWithData(a, &a.jsxSpreadAttributes, token.JsxSpreadAttribute, pos, end, token.FlagNone, JsxSpreadAttributeData{Expression: expr})
}

func (a *Arena) AddJsxExpression(pos, end uint32, data JsxExpressionData) NodeIndex {
	return addWithData(a, &a.jsxExpressions, token.JsxExpression, pos, end, token.FlagNone, data)
}

func (a *Arena) AddQualifiedName(pos, end uint32, left, right NodeIndex) NodeIndex {
	return addWithData(a, &a.qualifiedNames, token.QualifiedName, pos, end, token.FlagNone, QualifiedNameData{Left: left, Right: right})
}

func (a *Arena) AddComputedPropertyName(pos, end uint32, expr NodeIndex) NodeIndex {
	return addWithData(a, &a.computedPropertyNames, token.ComputedPropertyName, pos, end, token.FlagNone, ComputedPropertyNameData{Expression: expr})
}

func (a *Arena) AddSourceFile(pos, end uint32, data SourceFileData) NodeIndex {
	return addWithData(a, &a.sourceFiles, token.SourceFile, pos, end, token.FlagNone, data)
}
