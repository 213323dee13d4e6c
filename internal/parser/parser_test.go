package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohsen1/tsz-sub013/internal/ast"
	"github.com/mohsen1/tsz-sub013/internal/parser"
	"github.com/mohsen1/tsz-sub013/internal/token"
)

func parseFile(t *testing.T, src, fileName string) (*ast.Arena, ast.NodeIndex) {
	t.Helper()
	p := parser.New(src, fileName)
	root := p.ParseSourceFile()
	arena := p.IntoArena()
	return arena, root
}

func sourceStatements(t *testing.T, arena *ast.Arena, root ast.NodeIndex) []ast.NodeIndex {
	t.Helper()
	sf, ok := arena.GetSourceFile(root)
	require.True(t, ok)
	return sf.Statements.Nodes
}

func TestParseVariableStatement(t *testing.T) {
	arena, root := parseFile(t, "let x: number = 1;", "a.ts")
	stmts := sourceStatements(t, arena, root)
	require.Len(t, stmts, 1)

	node, ok := arena.Get(stmts[0])
	require.True(t, ok)
	assert.Equal(t, token.VariableStatement, node.Kind)

	declListNode, ok := arena.GetSimpleStatement(stmts[0])
	require.True(t, ok)
	declListThinNode, ok := arena.Get(declListNode)
	require.True(t, ok)
	assert.True(t, declListThinNode.Flags.Has(token.FlagLet))

	declList, ok := arena.GetVariableDeclarationList(declListNode)
	require.True(t, ok)
	require.Len(t, declList.Declarations.Nodes, 1)

	decl, ok := arena.GetVariableDeclaration(declList.Declarations.Nodes[0])
	require.True(t, ok)
	name, ok := arena.GetIdentifier(decl.Name)
	require.True(t, ok)
	assert.Equal(t, "x", arena.Interner.Resolve(name.Text))

	typeRef, ok := arena.GetTypeReference(decl.Type)
	require.True(t, ok)
	typeName, ok := arena.GetIdentifier(typeRef.TypeName)
	require.True(t, ok)
	assert.Equal(t, "number", arena.Interner.Resolve(typeName.Text))

	lit, ok := arena.GetLiteral(decl.Initializer)
	require.True(t, ok)
	assert.Equal(t, "1", lit.Text)
}

func TestParseFunctionDeclaration(t *testing.T) {
	arena, root := parseFile(t, "function add(a: number, b: number): number { return a + b; }", "a.ts")
	stmts := sourceStatements(t, arena, root)
	require.Len(t, stmts, 1)

	fn, ok := arena.GetFunctionLike(stmts[0])
	require.True(t, ok)
	name, ok := arena.GetIdentifier(fn.Name)
	require.True(t, ok)
	assert.Equal(t, "add", arena.Interner.Resolve(name.Text))
	require.Len(t, fn.Parameters.Nodes, 2)

	block, ok := arena.GetBlock(fn.Body)
	require.True(t, ok)
	require.Len(t, block.Nodes, 1)

	retExpr, ok := arena.GetSimpleStatement(block.Nodes[0])
	require.True(t, ok)
	bin, ok := arena.GetBinaryExpr(retExpr)
	require.True(t, ok)
	assert.Equal(t, token.PlusToken, bin.OperatorToken)
}

func TestParseArrowFunctionExpression(t *testing.T) {
	arena, root := parseFile(t, "const f = (x: number): number => x + 1;", "a.ts")
	stmts := sourceStatements(t, arena, root)
	require.Len(t, stmts, 1)

	declListNode, ok := arena.GetSimpleStatement(stmts[0])
	require.True(t, ok)
	declList, ok := arena.GetVariableDeclarationList(declListNode)
	require.True(t, ok)
	decl, ok := arena.GetVariableDeclaration(declList.Declarations.Nodes[0])
	require.True(t, ok)

	arrowNode, ok := arena.Get(decl.Initializer)
	require.True(t, ok)
	assert.Equal(t, token.ArrowFunction, arrowNode.Kind)

	arrow, ok := arena.GetFunctionLike(decl.Initializer)
	require.True(t, ok)
	require.Len(t, arrow.Parameters.Nodes, 1)
}

func TestParseIfElseStatement(t *testing.T) {
	arena, root := parseFile(t, "if (a) { b(); } else { c(); }", "a.ts")
	stmts := sourceStatements(t, arena, root)
	require.Len(t, stmts, 1)

	ifStmt, ok := arena.GetIfStatement(stmts[0])
	require.True(t, ok)
	assert.NotEqual(t, ast.NoNode, ifStmt.ThenStatement)
	assert.NotEqual(t, ast.NoNode, ifStmt.ElseStatement)
}

func TestParseForOfStatement(t *testing.T) {
	arena, root := parseFile(t, "for (const x of xs) { use(x); }", "a.ts")
	stmts := sourceStatements(t, arena, root)
	require.Len(t, stmts, 1)

	node, ok := arena.Get(stmts[0])
	require.True(t, ok)
	assert.Equal(t, token.ForOfStatement, node.Kind)

	forOf, ok := arena.GetForInOf(stmts[0])
	require.True(t, ok)
	assert.NotEqual(t, ast.NoNode, forOf.Initializer)
	assert.NotEqual(t, ast.NoNode, forOf.Expression)
}

func TestParseClassWithHeritageAndMembers(t *testing.T) {
	src := `class Box extends Base implements Sized {
		private value: number;
		constructor(value: number) { this.value = value; }
		get size(): number { return this.value; }
	}`
	arena, root := parseFile(t, src, "a.ts")
	stmts := sourceStatements(t, arena, root)
	require.Len(t, stmts, 1)

	cls, ok := arena.GetClassLike(stmts[0])
	require.True(t, ok)
	require.Len(t, cls.HeritageClauses.Nodes, 2)
	require.Len(t, cls.Members.Nodes, 3)
}

func TestParseInterfaceDeclaration(t *testing.T) {
	arena, root := parseFile(t, "interface Point { x: number; y: number; readonly label?: string; }", "a.ts")
	stmts := sourceStatements(t, arena, root)
	require.Len(t, stmts, 1)

	iface, ok := arena.GetInterfaceDeclaration(stmts[0])
	require.True(t, ok)
	require.Len(t, iface.Members.Nodes, 3)

	last, ok := arena.GetPropertySignature(iface.Members.Nodes[2])
	require.True(t, ok)
	assert.True(t, last.Optional)
}

func TestParseUnionAndConditionalType(t *testing.T) {
	arena, root := parseFile(t, "type T<A> = A extends string ? \"s\" : A | number;", "a.ts")
	stmts := sourceStatements(t, arena, root)
	require.Len(t, stmts, 1)

	node, ok := arena.Get(stmts[0])
	require.True(t, ok)
	assert.Equal(t, token.TypeAliasDeclaration, node.Kind)
}

func TestParseTupleType(t *testing.T) {
	arena, root := parseFile(t, "type T = [first: string, second?: number, ...rest: boolean[]];", "a.ts")
	stmts := sourceStatements(t, arena, root)
	require.Len(t, stmts, 1)

	alias, ok := arena.GetTypeAliasDeclaration(stmts[0])
	require.True(t, ok)
	tuple, ok := arena.GetTupleType(alias.Type)
	require.True(t, ok)
	require.Len(t, tuple.Elements.Nodes, 3)

	first, ok := arena.GetNamedTupleMember(tuple.Elements.Nodes[0])
	require.True(t, ok)
	assert.False(t, first.Optional)

	rest, ok := arena.GetNamedTupleMember(tuple.Elements.Nodes[2])
	require.True(t, ok)
	_ = rest
}

func TestParseMappedType(t *testing.T) {
	arena, root := parseFile(t, "type T = { readonly [K in keyof U]?: U[K] };", "a.ts")
	stmts := sourceStatements(t, arena, root)
	require.Len(t, stmts, 1)

	alias, ok := arena.GetTypeAliasDeclaration(stmts[0])
	require.True(t, ok)
	mapped, ok := arena.GetMappedType(alias.Type)
	require.True(t, ok)
	assert.Equal(t, token.ReadonlyKeyword, mapped.ReadonlyToken)
	assert.Equal(t, token.QuestionToken, mapped.QuestionToken)
}

func TestParseTemplateLiteralExpression(t *testing.T) {
	arena, root := parseFile(t, "const s = `a${b}c${d}`;", "a.ts")
	stmts := sourceStatements(t, arena, root)
	require.Len(t, stmts, 1)

	declListNode, ok := arena.GetSimpleStatement(stmts[0])
	require.True(t, ok)
	declList, ok := arena.GetVariableDeclarationList(declListNode)
	require.True(t, ok)
	decl, ok := arena.GetVariableDeclaration(declList.Declarations.Nodes[0])
	require.True(t, ok)

	tmpl, ok := arena.GetTemplateExpr(decl.Initializer)
	require.True(t, ok)
	require.Len(t, tmpl.Spans, 2)
}

func TestParseJsxElement(t *testing.T) {
	arena, root := parseFile(t, `const el = <div className="box"><span>{value}</span></div>;`, "a.tsx")
	stmts := sourceStatements(t, arena, root)
	require.Len(t, stmts, 1)

	declListNode, ok := arena.GetSimpleStatement(stmts[0])
	require.True(t, ok)
	declList, ok := arena.GetVariableDeclarationList(declListNode)
	require.True(t, ok)
	decl, ok := arena.GetVariableDeclaration(declList.Declarations.Nodes[0])
	require.True(t, ok)

	jsxNode, ok := arena.Get(decl.Initializer)
	require.True(t, ok)
	assert.Equal(t, token.JsxElement, jsxNode.Kind)

	el, ok := arena.GetJsxElement(decl.Initializer)
	require.True(t, ok)
	opening, ok := arena.GetJsxOpeningElement(el.OpeningElement)
	require.True(t, ok)
	require.Len(t, opening.Attributes.Nodes, 1)
	require.Len(t, el.Children.Nodes, 1)
}

func TestParseJsxFragment(t *testing.T) {
	arena, root := parseFile(t, "const el = <><A/><B/></>;", "a.tsx")
	stmts := sourceStatements(t, arena, root)
	require.Len(t, stmts, 1)

	declListNode, ok := arena.GetSimpleStatement(stmts[0])
	require.True(t, ok)
	declList, ok := arena.GetVariableDeclarationList(declListNode)
	require.True(t, ok)
	decl, ok := arena.GetVariableDeclaration(declList.Declarations.Nodes[0])
	require.True(t, ok)

	node, ok := arena.Get(decl.Initializer)
	require.True(t, ok)
	assert.Equal(t, token.JsxFragment, node.Kind)
}

func TestParseImportAndExportDeclarations(t *testing.T) {
	arena, root := parseFile(t, `import Default, { a, b as c } from "mod";
export { c as d };
export default Default;`, "a.ts")
	stmts := sourceStatements(t, arena, root)
	require.Len(t, stmts, 3)

	imp, ok := arena.GetImportDeclaration(stmts[0])
	require.True(t, ok)
	clause, ok := arena.GetImportClause(imp.ImportClause)
	require.True(t, ok)
	assert.NotEqual(t, ast.NoNode, clause.Name)
	assert.NotEqual(t, ast.NoNode, clause.NamedBindings)

	exp, ok := arena.GetExportDeclaration(stmts[1])
	require.True(t, ok)
	specs, ok := arena.GetNamedImportsOrExports(exp.ExportClause)
	require.True(t, ok)
	require.Len(t, specs.Nodes, 1)
}

func TestParserRecoversFromUnexpectedToken(t *testing.T) {
	p := parser.New("let x = ;", "a.ts")
	p.ParseSourceFile()
	assert.NotEmpty(t, p.Diagnostics().All())
}

func TestParseDoesNotHangOnGarbageInput(t *testing.T) {
	arena, root := parseFile(t, ")]}{{{", "a.ts")
	stmts := sourceStatements(t, arena, root)
	assert.NotNil(t, stmts)
}
