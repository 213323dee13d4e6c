package ast

import "github.com/mohsen1/tsz-sub013/internal/token"

// getFromPool fetches pool[node.DataIndex] if node.Kind == want, returning
// ok=false on any mismatch. Every typed accessor below is a one-liner over
// this so a caller that guesses the wrong kind gets a clean zero value
// instead of an out-of-bounds panic (spec.md §4.2 failure model).
func getFromPool[T any](a *Arena, n NodeIndex, want token.SyntaxKind, pool []T) (T, bool) {
	var zero T
	node, ok := a.Get(n)
	if !ok || node.Kind != want {
		return zero, false
	}
	if int(node.DataIndex) >= len(pool) {
		return zero, false
	}
	return pool[node.DataIndex], true
}

func (a *Arena) GetIdentifier(n NodeIndex) (IdentifierData, bool) {
	node, ok := a.Get(n)
	if !ok || (node.Kind != token.Identifier && node.Kind != token.PrivateIdentifier) {
		return IdentifierData{}, false
	}
	if int(node.DataIndex) >= len(a.identifiers) {
		return IdentifierData{}, false
	}
	return a.identifiers[node.DataIndex], true
}

func (a *Arena) GetLiteral(n NodeIndex) (LiteralData, bool) {
	node, ok := a.Get(n)
	if !ok {
		return LiteralData{}, false
	}
	switch node.Kind {
	case token.NumericLiteralExpr, token.StringLiteralExpr, token.RegularExpressionLiteralExpr,
		token.NoSubstitutionTemplateLiteralExpr, token.TemplateHead, token.TemplateMiddle, token.TemplateTail:
		if int(node.DataIndex) >= len(a.literals) {
			return LiteralData{}, false
		}
		return a.literals[node.DataIndex], true
	default:
		return LiteralData{}, false
	}
}

func (a *Arena) GetTemplateExpr(n NodeIndex) (TemplateData, bool) {
	return getFromPool(a, n, token.TemplateExpr, a.templates)
}

func (a *Arena) GetTemplateSpan(n NodeIndex) (TemplateSpanData, bool) {
	return getFromPool(a, n, token.TemplateSpan, a.templateSpans)
}

func (a *Arena) GetVariableDeclaration(n NodeIndex) (VariableDeclarationData, bool) {
	return getFromPool(a, n, token.VariableDeclaration, a.varDecls)
}

func (a *Arena) GetVariableDeclarationList(n NodeIndex) (VariableDeclarationListData, bool) {
	return getFromPool(a, n, token.VariableDeclarationList, a.varDeclLists)
}

func (a *Arena) GetVariableStatement(n NodeIndex) (declList NodeIndex, ok bool) {
	d, ok := getFromPool(a, n, token.VariableStatement, a.labeledStatements)
	return d.Label, ok
}

func (a *Arena) GetFunctionLike(n NodeIndex) (FunctionLikeData, bool) {
	node, ok := a.Get(n)
	if !ok {
		return FunctionLikeData{}, false
	}
	switch node.Kind {
	case token.FunctionDeclaration, token.FunctionExpr, token.ArrowFunction,
		token.Constructor, token.MethodDeclaration, token.GetAccessor, token.SetAccessor:
		if int(node.DataIndex) >= len(a.functions) {
			return FunctionLikeData{}, false
		}
		return a.functions[node.DataIndex], true
	default:
		return FunctionLikeData{}, false
	}
}

func (a *Arena) GetClassLike(n NodeIndex) (ClassLikeData, bool) {
	node, ok := a.Get(n)
	if !ok || (node.Kind != token.ClassDeclaration && node.Kind != token.ClassExpr) {
		return ClassLikeData{}, false
	}
	if int(node.DataIndex) >= len(a.classes) {
		return ClassLikeData{}, false
	}
	return a.classes[node.DataIndex], true
}

func (a *Arena) GetInterfaceDeclaration(n NodeIndex) (InterfaceData, bool) {
	return getFromPool(a, n, token.InterfaceDeclaration, a.interfaces)
}

// GetTypeLiteral reads an anonymous object type literal back from the
// same pool GetInterfaceDeclaration uses.
func (a *Arena) GetTypeLiteral(n NodeIndex) (InterfaceData, bool) {
	return getFromPool(a, n, token.TypeLiteral, a.interfaces)
}

func (a *Arena) GetTypeAliasDeclaration(n NodeIndex) (TypeAliasData, bool) {
	return getFromPool(a, n, token.TypeAliasDeclaration, a.typeAliases)
}

func (a *Arena) GetEnumDeclaration(n NodeIndex) (EnumData, bool) {
	return getFromPool(a, n, token.EnumDeclaration, a.enums)
}

func (a *Arena) GetEnumMember(n NodeIndex) (EnumMemberData, bool) {
	return getFromPool(a, n, token.EnumMember, a.enumMembers)
}

func (a *Arena) GetBinaryExpr(n NodeIndex) (BinaryExprData, bool) {
	return getFromPool(a, n, token.BinaryExpr, a.binaryExprs)
}

// GetUnaryExpr covers every single-operand wrapper kind that shares the
// unaryExprs pool: true unary operators plus the operand-only wrappers
// (parenthesized, non-null, tagged template, type assertion, spread).
func (a *Arena) GetUnaryExpr(n NodeIndex) (UnaryExprData, bool) {
	node, ok := a.Get(n)
	if !ok {
		return UnaryExprData{}, false
	}
	switch node.Kind {
	case token.PrefixUnaryExpr, token.PostfixUnaryExpr, token.DeleteExpr, token.TypeOfExpr,
		token.VoidExpr, token.AwaitExpr, token.YieldExpr, token.ParenthesizedExpr, token.NonNullExpr,
		token.TaggedTemplateExpr, token.TypeAssertionExpr, token.SpreadElement, token.SpreadAssignment,
		token.AsExpr, token.SatisfiesExpr:
	default:
		return UnaryExprData{}, false
	}
	if int(node.DataIndex) >= len(a.unaryExprs) {
		return UnaryExprData{}, false
	}
	return a.unaryExprs[node.DataIndex], true
}

func (a *Arena) GetCallExpr(n NodeIndex) (CallExprData, bool) {
	node, ok := a.Get(n)
	if !ok || (node.Kind != token.CallExpr && node.Kind != token.NewExpr) {
		return CallExprData{}, false
	}
	if int(node.DataIndex) >= len(a.callExprs) {
		return CallExprData{}, false
	}
	return a.callExprs[node.DataIndex], true
}

func (a *Arena) GetAccess(n NodeIndex) (AccessData, bool) {
	node, ok := a.Get(n)
	if !ok || (node.Kind != token.PropertyAccessExpr && node.Kind != token.ElementAccessExpr) {
		return AccessData{}, false
	}
	if int(node.DataIndex) >= len(a.accesses) {
		return AccessData{}, false
	}
	return a.accesses[node.DataIndex], true
}

func (a *Arena) GetConditionalExpr(n NodeIndex) (ConditionalExprData, bool) {
	return getFromPool(a, n, token.ConditionalExpr, a.conditionals)
}

func (a *Arena) GetParameter(n NodeIndex) (ParameterData, bool) {
	return getFromPool(a, n, token.Parameter, a.parameters)
}

func (a *Arena) GetBindingPattern(n NodeIndex) (BindingPatternData, bool) {
	node, ok := a.Get(n)
	if !ok || (node.Kind != token.ObjectBindingPattern && node.Kind != token.ArrayBindingPattern) {
		return BindingPatternData{}, false
	}
	if int(node.DataIndex) >= len(a.bindingPatterns) {
		return BindingPatternData{}, false
	}
	return a.bindingPatterns[node.DataIndex], true
}

// GetArrayOrObjectLiteral covers ArrayLiteralExpr and ObjectLiteralExpr,
// which reuse BindingPatternData's Elements list for their element/property
// sequence rather than a dedicated one-field pool.
func (a *Arena) GetArrayOrObjectLiteral(n NodeIndex) (BindingPatternData, bool) {
	node, ok := a.Get(n)
	if !ok || (node.Kind != token.ArrayLiteralExpr && node.Kind != token.ObjectLiteralExpr) {
		return BindingPatternData{}, false
	}
	if int(node.DataIndex) >= len(a.bindingPatterns) {
		return BindingPatternData{}, false
	}
	return a.bindingPatterns[node.DataIndex], true
}

func (a *Arena) GetBindingElement(n NodeIndex) (BindingElementData, bool) {
	return getFromPool(a, n, token.BindingElement, a.bindingElements)
}

func (a *Arena) GetDecorator(n NodeIndex) (DecoratorData, bool) {
	return getFromPool(a, n, token.Decorator, a.decorators)
}

func (a *Arena) GetModuleDeclaration(n NodeIndex) (ModuleData, bool) {
	return getFromPool(a, n, token.ModuleDeclaration, a.modules)
}

func (a *Arena) GetImportDeclaration(n NodeIndex) (ImportDeclarationData, bool) {
	return getFromPool(a, n, token.ImportDeclaration, a.importDecls)
}

func (a *Arena) GetImportClause(n NodeIndex) (ImportClauseData, bool) {
	return getFromPool(a, n, token.ImportClause, a.importClauses)
}

func (a *Arena) GetImportEqualsDeclaration(n NodeIndex) (ImportEqualsData, bool) {
	return getFromPool(a, n, token.ImportEqualsDeclaration, a.importEquals)
}

func (a *Arena) GetNamespaceImport(n NodeIndex) (NamespaceImportData, bool) {
	return getFromPool(a, n, token.NamespaceImport, a.namespaceImports)
}

func (a *Arena) GetNamedImportsOrExports(n NodeIndex) (NodeList, bool) {
	node, ok := a.Get(n)
	if !ok || (node.Kind != token.NamedImports && node.Kind != token.NamedExports) {
		return NodeList{}, false
	}
	if int(node.DataIndex) >= len(a.varDeclLists) {
		return NodeList{}, false
	}
	return a.varDeclLists[node.DataIndex].Declarations, true
}

func (a *Arena) GetImportSpecifier(n NodeIndex) (ImportSpecifierData, bool) {
	return getFromPool(a, n, token.ImportSpecifier, a.importSpecifiers)
}

func (a *Arena) GetExportDeclaration(n NodeIndex) (ExportDeclarationData, bool) {
	return getFromPool(a, n, token.ExportDeclaration, a.exportDecls)
}

func (a *Arena) GetExportSpecifier(n NodeIndex) (ExportSpecifierData, bool) {
	return getFromPool(a, n, token.ExportSpecifier, a.exportSpecifiers)
}

func (a *Arena) GetExportAssignment(n NodeIndex) (ExportAssignmentData, bool) {
	return getFromPool(a, n, token.ExportAssignment, a.exportAssignments)
}

func (a *Arena) GetHeritageClause(n NodeIndex) (HeritageClauseData, bool) {
	return getFromPool(a, n, token.HeritageClause, a.heritageClauses)
}

func (a *Arena) GetTypeReference(n NodeIndex) (TypeReferenceData, bool) {
	return getFromPool(a, n, token.TypeReference, a.typeReferences)
}

func (a *Arena) GetUnionOrIntersectionType(n NodeIndex) (UnionOrIntersectionTypeData, bool) {
	node, ok := a.Get(n)
	if !ok || (node.Kind != token.UnionType && node.Kind != token.IntersectionType) {
		return UnionOrIntersectionTypeData{}, false
	}
	if int(node.DataIndex) >= len(a.unionIntersections) {
		return UnionOrIntersectionTypeData{}, false
	}
	return a.unionIntersections[node.DataIndex], true
}

func (a *Arena) GetArrayType(n NodeIndex) (ArrayTypeData, bool) {
	return getFromPool(a, n, token.ArrayType, a.arrayTypes)
}

func (a *Arena) GetTupleType(n NodeIndex) (TupleTypeData, bool) {
	return getFromPool(a, n, token.TupleType, a.tupleTypes)
}

func (a *Arena) GetNamedTupleMember(n NodeIndex) (NamedTupleMemberData, bool) {
	return getFromPool(a, n, token.NamedTupleMember, a.namedTupleMembers)
}

func (a *Arena) GetIndexedAccessType(n NodeIndex) (IndexedAccessTypeData, bool) {
	return getFromPool(a, n, token.IndexedAccessType, a.indexedAccessTypes)
}

func (a *Arena) GetMappedType(n NodeIndex) (MappedTypeData, bool) {
	return getFromPool(a, n, token.MappedType, a.mappedTypes)
}

func (a *Arena) GetConditionalType(n NodeIndex) (ConditionalTypeData, bool) {
	return getFromPool(a, n, token.ConditionalType, a.conditionalTypes)
}

func (a *Arena) GetInferType(n NodeIndex) (InferTypeData, bool) {
	return getFromPool(a, n, token.InferType, a.inferTypes)
}

// GetTypeOperator covers TypeOperator (keyof/unique/readonly), and the
// tuple-member modifiers OptionalType/RestType, which reuse its single-Type
// payload shape.
func (a *Arena) GetTypeOperator(n NodeIndex) (TypeOperatorData, bool) {
	node, ok := a.Get(n)
	if !ok || (node.Kind != token.TypeOperator && node.Kind != token.OptionalType && node.Kind != token.RestType) {
		return TypeOperatorData{}, false
	}
	if int(node.DataIndex) >= len(a.typeOperators) {
		return TypeOperatorData{}, false
	}
	return a.typeOperators[node.DataIndex], true
}

func (a *Arena) GetTypeParameter(n NodeIndex) (TypeParameterData, bool) {
	return getFromPool(a, n, token.TypeParameter, a.typeParameters)
}

func (a *Arena) GetTypePredicate(n NodeIndex) (TypePredicateData, bool) {
	return getFromPool(a, n, token.TypePredicate, a.typePredicates)
}

func (a *Arena) GetTypeQuery(n NodeIndex) (TypeQueryData, bool) {
	return getFromPool(a, n, token.TypeQuery, a.typeQueries)
}

func (a *Arena) GetFunctionType(n NodeIndex) (FunctionTypeData, bool) {
	node, ok := a.Get(n)
	if !ok || (node.Kind != token.FunctionType && node.Kind != token.ConstructorType) {
		return FunctionTypeData{}, false
	}
	if int(node.DataIndex) >= len(a.functionTypes) {
		return FunctionTypeData{}, false
	}
	return a.functionTypes[node.DataIndex], true
}

func (a *Arena) GetPropertySignature(n NodeIndex) (PropertySignatureData, bool) {
	return getFromPool(a, n, token.PropertySignature, a.propertySignatures)
}

func (a *Arena) GetMethodSignature(n NodeIndex) (MethodSignatureData, bool) {
	return getFromPool(a, n, token.MethodSignature, a.methodSignatures)
}

func (a *Arena) GetIndexSignature(n NodeIndex) (IndexSignatureData, bool) {
	return getFromPool(a, n, token.IndexSignature, a.indexSignatures)
}

func (a *Arena) GetSwitchStatement(n NodeIndex) (SwitchStatementData, bool) {
	return getFromPool(a, n, token.SwitchStatement, a.switchStatements)
}

func (a *Arena) GetCaseBlock(n NodeIndex) (CaseBlockData, bool) {
	return getFromPool(a, n, token.CaseBlock, a.caseBlocks)
}

func (a *Arena) GetCaseClause(n NodeIndex) (CaseClauseData, bool) {
	node, ok := a.Get(n)
	if !ok || (node.Kind != token.CaseClause && node.Kind != token.DefaultClause) {
		return CaseClauseData{}, false
	}
	if int(node.DataIndex) >= len(a.caseClauses) {
		return CaseClauseData{}, false
	}
	return a.caseClauses[node.DataIndex], true
}

func (a *Arena) GetTryStatement(n NodeIndex) (TryStatementData, bool) {
	return getFromPool(a, n, token.TryStatement, a.tryStatements)
}

func (a *Arena) GetCatchClause(n NodeIndex) (CatchClauseData, bool) {
	return getFromPool(a, n, token.CatchClause, a.catchClauses)
}

func (a *Arena) GetLabeledStatement(n NodeIndex) (LabeledStatementData, bool) {
	return getFromPool(a, n, token.LabeledStatement, a.labeledStatements)
}

// GetBreakOrContinueLabel returns the optional target label of a break/continue
// statement (NoNode when unlabeled).
func (a *Arena) GetBreakOrContinueLabel(n NodeIndex) (NodeIndex, bool) {
	node, ok := a.Get(n)
	if !ok || (node.Kind != token.BreakStatement && node.Kind != token.ContinueStatement) {
		return NoNode, false
	}
	if int(node.DataIndex) >= len(a.labeledStatements) {
		return NoNode, false
	}
	return a.labeledStatements[node.DataIndex].Label, true
}

// GetSimpleStatement handles every node kind stored in labeledStatements
// with only Label meaningful: ExpressionStatement, ReturnStatement,
// ThrowStatement, VariableStatement, Break/ContinueStatement.
func (a *Arena) GetSimpleStatement(n NodeIndex) (NodeIndex, bool) {
	node, ok := a.Get(n)
	if !ok {
		return NoNode, false
	}
	switch node.Kind {
	case token.ExpressionStatement, token.ReturnStatement, token.ThrowStatement,
		token.VariableStatement, token.BreakStatement, token.ContinueStatement:
	default:
		return NoNode, false
	}
	if int(node.DataIndex) >= len(a.labeledStatements) {
		return NoNode, false
	}
	return a.labeledStatements[node.DataIndex].Label, true
}

func (a *Arena) GetWhileLike(n NodeIndex) (WhileLikeData, bool) {
	node, ok := a.Get(n)
	if !ok || (node.Kind != token.WhileStatement && node.Kind != token.DoStatement) {
		return WhileLikeData{}, false
	}
	if int(node.DataIndex) >= len(a.whileLikes) {
		return WhileLikeData{}, false
	}
	return a.whileLikes[node.DataIndex], true
}

func (a *Arena) GetForStatement(n NodeIndex) (ForStatementData, bool) {
	return getFromPool(a, n, token.ForStatement, a.forStatements)
}

func (a *Arena) GetForInOf(n NodeIndex) (ForInOfData, bool) {
	node, ok := a.Get(n)
	if !ok || (node.Kind != token.ForInStatement && node.Kind != token.ForOfStatement) {
		return ForInOfData{}, false
	}
	if int(node.DataIndex) >= len(a.forInOfs) {
		return ForInOfData{}, false
	}
	return a.forInOfs[node.DataIndex], true
}

func (a *Arena) GetIfStatement(n NodeIndex) (IfStatementData, bool) {
	return getFromPool(a, n, token.IfStatement, a.ifStatements)
}

func (a *Arena) GetBlock(n NodeIndex) (NodeList, bool) {
	return getFromPool(a, n, token.Block, a.blocks)
}

func (a *Arena) GetJsxOpeningElement(n NodeIndex) (JsxOpeningData, bool) {
	node, ok := a.Get(n)
	if !ok || (node.Kind != token.JsxOpeningElement && node.Kind != token.JsxSelfClosingElement) {
		return JsxOpeningData{}, false
	}
	if int(node.DataIndex) >= len(a.jsxOpenings) {
		return JsxOpeningData{}, false
	}
	return a.jsxOpenings[node.DataIndex], true
}

func (a *Arena) GetJsxClosingElement(n NodeIndex) (JsxClosingData, bool) {
	return getFromPool(a, n, token.JsxClosingElement, a.jsxClosings)
}

func (a *Arena) GetJsxElement(n NodeIndex) (JsxElementData, bool) {
	node, ok := a.Get(n)
	if !ok || (node.Kind != token.JsxElement && node.Kind != token.JsxFragment) {
		return JsxElementData{}, false
	}
	if int(node.DataIndex) >= len(a.jsxElements) {
		return JsxElementData{}, false
	}
	return a.jsxElements[node.DataIndex], true
}

func (a *Arena) GetJsxAttribute(n NodeIndex) (JsxAttributeData, bool) {
	return getFromPool(a, n, token.JsxAttribute, a.jsxAttributes)
}

func (a *Arena) GetJsxSpreadAttribute(n NodeIndex) (JsxSpreadAttributeData, bool) {
	return getFromPool(a, n, token.JsxSpreadAttribute, a.jsxSpreadAttributes)
}

func (a *Arena) GetJsxExpression(n NodeIndex) (JsxExpressionData, bool) {
	return getFromPool(a, n, token.JsxExpression, a.jsxExpressions)
}

func (a *Arena) GetQualifiedName(n NodeIndex) (QualifiedNameData, bool) {
	return getFromPool(a, n, token.QualifiedName, a.qualifiedNames)
}

func (a *Arena) GetComputedPropertyName(n NodeIndex) (ComputedPropertyNameData, bool) {
	return getFromPool(a, n, token.ComputedPropertyName, a.computedPropertyNames)
}

func (a *Arena) GetSourceFile(n NodeIndex) (SourceFileData, bool) {
	return getFromPool(a, n, token.SourceFile, a.sourceFiles)
}

// NameText is a convenience used throughout the binder: resolve an
// Identifier node straight to its interned text.
func (a *Arena) NameText(n NodeIndex) string {
	id, ok := a.GetIdentifier(n)
	if !ok || a.Interner == nil {
		return ""
	}
	return a.Interner.Resolve(id.Text)
}
