package ast

import (
	"github.com/mohsen1/tsz-sub013/internal/atom"
	"github.com/mohsen1/tsz-sub013/internal/token"
)

// Side-pool payload types. Every struct here is addressed by a ThinNode's
// DataIndex field from the pool matching the node's Kind. None of these
// are exhaustive per spec.md §3.3 ("examples, not exhaustive") but they
// cover every operation spec.md's testable properties and the binder
// exercise (§8 S1-S6).

type IdentifierData struct {
	Text atom.Atom
}

type LiteralData struct {
	Text string
}

type TemplateData struct {
	Head  NodeIndex
	Spans []NodeIndex // TemplateSpan nodes
}

type TemplateSpanData struct {
	Expression NodeIndex
	Literal    NodeIndex // TemplateMiddle or TemplateTail text node
}

type VariableDeclarationData struct {
	Name        NodeIndex
	Type        NodeIndex
	Initializer NodeIndex
}

type VariableDeclarationListData struct {
	Declarations NodeList
}

type FunctionLikeData struct {
	Name           NodeIndex
	TypeParameters NodeList
	Parameters     NodeList
	ReturnType     NodeIndex
	Body           NodeIndex
}

type ClassLikeData struct {
	Name            NodeIndex
	TypeParameters  NodeList
	HeritageClauses NodeList
	Members         NodeList
}

type InterfaceData struct {
	Name            NodeIndex
	TypeParameters  NodeList
	HeritageClauses NodeList
	Members         NodeList
}

type TypeAliasData struct {
	Name           NodeIndex
	TypeParameters NodeList
	Type           NodeIndex
}

type EnumData struct {
	Name    NodeIndex
	Members NodeList
}

type EnumMemberData struct {
	Name        NodeIndex
	Initializer NodeIndex
}

type BinaryExprData struct {
	Left          NodeIndex
	OperatorToken token.SyntaxKind
	Right         NodeIndex
}

type UnaryExprData struct {
	Operator token.SyntaxKind
	Operand  NodeIndex
}

type CallExprData struct {
	Expression     NodeIndex
	TypeArguments  NodeList
	Arguments      NodeList
	IsOptionalCall bool
}

// AccessData covers both PropertyAccessExpr (Name set, ArgumentExpr NoNode)
// and ElementAccessExpr (ArgumentExpr set, Name NoNode).
type AccessData struct {
	Expression      NodeIndex
	Name            NodeIndex
	ArgumentExpr    NodeIndex
	IsOptionalChain bool
}

type ConditionalExprData struct {
	Condition NodeIndex
	WhenTrue  NodeIndex
	WhenFalse NodeIndex
}

type ParameterData struct {
	Name         NodeIndex
	Type         NodeIndex
	Initializer  NodeIndex
	IsRest       bool
	IsOptional   bool
}

type BindingPatternData struct {
	Elements NodeList // ObjectBindingPattern / ArrayBindingPattern
}

type BindingElementData struct {
	PropertyName NodeIndex
	Name         NodeIndex
	Initializer  NodeIndex
	IsRest       bool
}

type DecoratorData struct {
	Expression NodeIndex
}

type ModuleData struct {
	Name NodeIndex
	Body NodeIndex // ModuleBlock, or NoNode for `declare module "x";`
	IsGlobalAugmentation bool
}

type ImportDeclarationData struct {
	ImportClause    NodeIndex
	ModuleSpecifier NodeIndex // StringLiteralExpr
}

type ImportClauseData struct {
	Name          NodeIndex // default import binding, or NoNode
	NamedBindings NodeIndex // NamespaceImport or NamedImports, or NoNode
}

type ImportEqualsData struct {
	Name       NodeIndex
	ModuleRef  NodeIndex
}

type NamespaceImportData struct {
	Name NodeIndex
}

type ImportSpecifierData struct {
	PropertyName NodeIndex // original exported name, or NoNode
	Name         NodeIndex // local binding name
}

type ExportDeclarationData struct {
	ExportClause   NodeIndex // NamedExports, or NoNode for `export * from`
	ModuleSpecifier NodeIndex
	IsWildcard     bool
}

type ExportSpecifierData struct {
	PropertyName NodeIndex // original local name, or NoNode
	Name         NodeIndex // exported-as name
}

type ExportAssignmentData struct {
	Expression     NodeIndex
	IsExportEquals bool
}

type HeritageClauseData struct {
	Token token.SyntaxKind // ExtendsKeyword or ImplementsKeyword
	Types NodeList
}

type TypeReferenceData struct {
	TypeName      NodeIndex
	TypeArguments NodeList
}

type UnionOrIntersectionTypeData struct {
	Types NodeList
}

type ArrayTypeData struct {
	ElementType NodeIndex
}

type TupleTypeData struct {
	Elements NodeList
}

type NamedTupleMemberData struct {
	Name     NodeIndex
	Type     NodeIndex
	Optional bool
	IsRest   bool
}

type IndexedAccessTypeData struct {
	ObjectType NodeIndex
	IndexType  NodeIndex
}

type MappedTypeData struct {
	TypeParameter NodeIndex
	NameType      NodeIndex // `as` clause, or NoNode
	Type          NodeIndex
	ReadonlyToken token.SyntaxKind // Unknown if absent
	QuestionToken token.SyntaxKind // Unknown if absent
}

type ConditionalTypeData struct {
	CheckType   NodeIndex
	ExtendsType NodeIndex
	TrueType    NodeIndex
	FalseType   NodeIndex
}

type InferTypeData struct {
	TypeParameter NodeIndex
}

type TypeOperatorData struct {
	Operator token.SyntaxKind // KeyOfKeyword, UniqueKeyword, ReadonlyKeyword
	Type     NodeIndex
}

type TypeParameterData struct {
	Name       NodeIndex
	Constraint NodeIndex
	Default    NodeIndex
}

type TypePredicateData struct {
	AssertsModifier bool
	ParameterName   NodeIndex
	Type            NodeIndex // NoNode when there is no asserted type
}

type TypeQueryData struct {
	ExprName NodeIndex
}

type FunctionTypeData struct {
	TypeParameters NodeList
	Parameters     NodeList
	ReturnType     NodeIndex
}

type PropertySignatureData struct {
	Name     NodeIndex
	Type     NodeIndex
	Optional bool
	// Initializer is NoNode for a plain interface/type-literal member. Class
	// property declarations populate it with the `= expr` initializer, and
	// object-literal property assignments (which reuse this pool instead of
	// a dedicated one, same as array/object literals reuse BindingPatternData)
	// populate it with the value expression in place of Name's usual meaning
	// pairing with Type.
	Initializer NodeIndex
}

type MethodSignatureData struct {
	Name           NodeIndex
	TypeParameters NodeList
	Parameters     NodeList
	ReturnType     NodeIndex
	Optional       bool
}

type IndexSignatureData struct {
	Parameters NodeList
	Type       NodeIndex
}

type SwitchStatementData struct {
	Expression NodeIndex
	CaseBlock  NodeIndex
}

type CaseBlockData struct {
	Clauses NodeList
}

type CaseClauseData struct {
	Expression NodeIndex // NoNode for `default:`
	Statements NodeList
}

type TryStatementData struct {
	TryBlock     NodeIndex
	CatchClause  NodeIndex // NoNode if absent
	FinallyBlock NodeIndex // NoNode if absent
}

type CatchClauseData struct {
	Parameter NodeIndex // NoNode for `catch {`
	Block     NodeIndex
}

// LabeledStatementData backs LabeledStatement (Label+Statement both set)
// and, with only Label populated, every other single-child construct that
// would otherwise need its own one-field pool: ExpressionStatement,
// ReturnStatement, ThrowStatement, VariableStatement (Label holds the
// declaration list), and Break/ContinueStatement (Label holds the
// optional target label, NoNode if unlabeled).
type LabeledStatementData struct {
	Label     NodeIndex
	Statement NodeIndex
}

type WhileLikeData struct {
	Expression NodeIndex
	Statement  NodeIndex
}

type ForStatementData struct {
	Initializer NodeIndex // VariableDeclarationList or expression, or NoNode
	Condition   NodeIndex
	Incrementor NodeIndex
	Statement   NodeIndex
}

type ForInOfData struct {
	Initializer NodeIndex
	Expression  NodeIndex
	Statement   NodeIndex
	IsAwait     bool
}

type IfStatementData struct {
	Expression    NodeIndex
	ThenStatement NodeIndex
	ElseStatement NodeIndex // NoNode if absent
}

type JsxOpeningData struct {
	TagName    NodeIndex
	Attributes NodeList
	SelfClosing bool
}

type JsxClosingData struct {
	TagName NodeIndex
}

type JsxElementData struct {
	OpeningElement NodeIndex
	Children       NodeList
	ClosingElement NodeIndex
}

type JsxAttributeData struct {
	Name        NodeIndex
	Initializer NodeIndex // NoNode for a valueless boolean attribute
}

type JsxSpreadAttributeData struct {
	Expression NodeIndex
}

type JsxExpressionData struct {
	Expression NodeIndex // NoNode for an empty `{}` / `{/* comment */}`
	DotDotDot  bool
}

type QualifiedNameData struct {
	Left  NodeIndex
	Right NodeIndex
}

type ComputedPropertyNameData struct {
	Expression NodeIndex
}

type SourceFileData struct {
	Statements    NodeList
	EndOfFileToken NodeIndex
	FileName      string
}

// Extended is the parent-pointer sidecar (spec.md §3.3, §4.2): populated
// lazily so straight-line parses that never need "parent of" queries pay
// nothing for it.
type Extended struct {
	Parent NodeIndex
}
