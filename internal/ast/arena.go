package ast

import "github.com/mohsen1/tsz-sub013/internal/atom"

// Arena owns every ThinNode produced while parsing one source file, plus
// the typed side pools their DataIndex fields address. Allocation is
// append-only and O(1) amortized; no NodeIndex is ever reused once
// issued (spec.md §3.3 invariant).
type Arena struct {
	Interner *atom.Interner

	nodes    []ThinNode
	extended []Extended // parallel to nodes; Extended{NoNode} until parent is recorded

	identifiers []IdentifierData
	literals    []LiteralData
	templates   []TemplateData
	templateSpans []TemplateSpanData

	varDecls     []VariableDeclarationData
	varDeclLists []VariableDeclarationListData
	functions    []FunctionLikeData
	classes      []ClassLikeData
	interfaces   []InterfaceData
	typeAliases  []TypeAliasData
	enums        []EnumData
	enumMembers  []EnumMemberData

	binaryExprs []BinaryExprData
	unaryExprs  []UnaryExprData
	callExprs   []CallExprData
	accesses    []AccessData
	conditionals []ConditionalExprData

	parameters    []ParameterData
	bindingPatterns []BindingPatternData
	bindingElements []BindingElementData
	decorators    []DecoratorData

	modules       []ModuleData
	importDecls   []ImportDeclarationData
	importClauses []ImportClauseData
	importEquals  []ImportEqualsData
	namespaceImports []NamespaceImportData
	importSpecifiers []ImportSpecifierData
	exportDecls   []ExportDeclarationData
	exportSpecifiers []ExportSpecifierData
	exportAssignments []ExportAssignmentData

	heritageClauses []HeritageClauseData

	typeReferences []TypeReferenceData
	unionIntersections []UnionOrIntersectionTypeData
	arrayTypes    []ArrayTypeData
	tupleTypes    []TupleTypeData
	namedTupleMembers []NamedTupleMemberData
	indexedAccessTypes []IndexedAccessTypeData
	mappedTypes   []MappedTypeData
	conditionalTypes []ConditionalTypeData
	inferTypes    []InferTypeData
	typeOperators []TypeOperatorData
	typeParameters []TypeParameterData
	typePredicates []TypePredicateData
	typeQueries   []TypeQueryData
	functionTypes []FunctionTypeData
	propertySignatures []PropertySignatureData
	methodSignatures   []MethodSignatureData
	indexSignatures    []IndexSignatureData

	switchStatements []SwitchStatementData
	caseBlocks    []CaseBlockData
	caseClauses   []CaseClauseData
	tryStatements []TryStatementData
	catchClauses  []CatchClauseData
	labeledStatements []LabeledStatementData
	whileLikes    []WhileLikeData
	forStatements []ForStatementData
	forInOfs      []ForInOfData
	ifStatements  []IfStatementData
	blocks        []NodeList

	jsxOpenings []JsxOpeningData
	jsxClosings []JsxClosingData
	jsxElements []JsxElementData
	jsxAttributes []JsxAttributeData
	jsxSpreadAttributes []JsxSpreadAttributeData
	jsxExpressions []JsxExpressionData

	qualifiedNames []QualifiedNameData
	computedPropertyNames []ComputedPropertyNameData
	sourceFiles []SourceFileData
}

// New returns an empty Arena. Node 0 (NoNode) is pre-allocated as a dead
// sentinel slot so real nodes start at index 1 and NoNode never addresses
// live data. Side pools have no such reservation: a node whose kind
// carries no payload (bare keyword/token nodes such as `this`) simply
// never has an Add* constructor that touches a pool, and its DataIndex is
// meaningless for that kind.
func New(interner *atom.Interner) *Arena {
	a := &Arena{Interner: interner}
	// nodes[0] is the NoNode sentinel slot; never returned by an Add* call.
	a.nodes = append(a.nodes, ThinNode{})
	a.extended = append(a.extended, Extended{Parent: NoNode})
	return a
}

// Len reports how many real nodes (excluding the sentinel) have been allocated.
func (a *Arena) Len() int {
	return len(a.nodes) - 1
}

// Get returns the ThinNode at n, or false if n is NoNode or out of range.
func (a *Arena) Get(n NodeIndex) (ThinNode, bool) {
	if n == NoNode || int(n) >= len(a.nodes) {
		return ThinNode{}, false
	}
	return a.nodes[n], true
}

// ParentOf returns the parent recorded for n, or NoNode if n has none or
// parent tracking has not been populated for it yet.
func (a *Arena) ParentOf(n NodeIndex) NodeIndex {
	if n == NoNode || int(n) >= len(a.extended) {
		return NoNode
	}
	return a.extended[n].Parent
}

// SetParent records parent as the parent of child. Safe to call multiple
// times; the last call wins, matching the teacher's "populated lazily"
// allowance in spec.md §4.2.
func (a *Arena) SetParent(child, parent NodeIndex) {
	if child == NoNode || int(child) >= len(a.extended) {
		return
	}
	a.extended[child].Parent = parent
}

// push appends node and returns its NodeIndex, extending the parent
// sidecar in lockstep so the two slices never drift out of sync.
func (a *Arena) push(node ThinNode) NodeIndex {
	idx := NodeIndex(len(a.nodes))
	a.nodes = append(a.nodes, node)
	a.extended = append(a.extended, Extended{Parent: NoNode})
	return idx
}

// Mark returns the arena's current node allocation high-water mark, for use
// with Truncate to roll back a failed speculative parse.
func (a *Arena) Mark() int {
	return len(a.nodes)
}

// Truncate discards every node appended since mark, restoring the arena to
// the state Mark captured. Side-pool entries addressed only by a discarded
// node become unreachable garbage; nothing ever addresses them again since
// no surviving NodeIndex points at them.
func (a *Arena) Truncate(mark int) {
	if mark < len(a.nodes) {
		a.nodes = a.nodes[:mark]
		a.extended = a.extended[:mark]
	}
}
