package token

// Synthetic AST-only kinds. These never come out of the scanner; the
// parser assigns them to ThinNode.Kind when it builds a composite
// construct (an expression, statement, or declaration) out of one or more
// tokens. They share the SyntaxKind numeric space (spec.md §6.1's
// "syntax_kind_ext") starting well above the token range so a stray
// off-by-one never collides with a real token kind.
const (
	SourceFile SyntaxKind = 1000 + iota
	Identifier_ // reserved; scanner's Identifier token is reused directly for name nodes

	// Expressions.
	NumericLiteralExpr
	StringLiteralExpr
	NoSubstitutionTemplateLiteralExpr
	TemplateExpr
	TemplateSpan
	RegularExpressionLiteralExpr
	ArrayLiteralExpr
	ObjectLiteralExpr
	PropertyAssignment
	ShorthandPropertyAssignment
	SpreadAssignment
	PropertyAccessExpr
	ElementAccessExpr
	CallExpr
	NewExpr
	TaggedTemplateExpr
	TypeAssertionExpr
	ParenthesizedExpr
	FunctionExpr
	ArrowFunction
	DeleteExpr
	TypeOfExpr
	VoidExpr
	AwaitExpr
	PrefixUnaryExpr
	PostfixUnaryExpr
	BinaryExpr
	ConditionalExpr
	SpreadElement
	ClassExpr
	AsExpr
	SatisfiesExpr
	NonNullExpr
	YieldExpr
	OmittedExpr

	// JSX.
	JsxElement
	JsxSelfClosingElement
	JsxFragment
	JsxOpeningElement
	JsxClosingElement
	JsxOpeningFragment
	JsxClosingFragment
	JsxAttribute
	JsxAttributes
	JsxSpreadAttribute
	JsxExpression
	JsxNamespacedName

	// Declarations and statements.
	Block
	VariableStatement
	VariableDeclarationList
	VariableDeclaration
	ExpressionStatement
	IfStatement
	DoStatement
	WhileStatement
	ForStatement
	ForInStatement
	ForOfStatement
	ContinueStatement
	BreakStatement
	ReturnStatement
	WithStatement
	SwitchStatement
	CaseBlock
	CaseClause
	DefaultClause
	LabeledStatement
	ThrowStatement
	TryStatement
	CatchClause
	DebuggerStatement
	EmptyStatement
	FunctionDeclaration
	ClassDeclaration
	InterfaceDeclaration
	TypeAliasDeclaration
	EnumDeclaration
	EnumMember
	ModuleDeclaration
	ModuleBlock
	ImportEqualsDeclaration
	ImportDeclaration
	ImportClause
	NamespaceImport
	NamedImports
	ImportSpecifier
	ExportAssignment
	ExportDeclaration
	NamedExports
	ExportSpecifier
	NamespaceExport

	// Class members.
	Constructor
	PropertyDeclaration
	MethodDeclaration
	GetAccessor
	SetAccessor
	Parameter
	Decorator
	HeritageClause
	ExpressionWithTypeArguments

	// Binding patterns.
	ObjectBindingPattern
	ArrayBindingPattern
	BindingElement

	// Types.
	TypeReference
	FunctionType
	ConstructorType
	TypeLiteral
	ArrayType
	TupleType
	NamedTupleMember
	OptionalType
	RestType
	UnionType
	IntersectionType
	ConditionalType
	InferType
	ParenthesizedType
	TypeOperator
	IndexedAccessType
	MappedType
	LiteralType
	TemplateLiteralType
	TemplateLiteralTypeSpan
	TypePredicate
	TypeQuery
	ImportType
	PropertySignature
	MethodSignature
	IndexSignature
	CallSignature
	ConstructSignature
	TypeParameter

	// Misc / recovery.
	QualifiedName
	ComputedPropertyName
	Missing
)
