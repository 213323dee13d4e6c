package binder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohsen1/tsz-sub013/internal/ast"
	"github.com/mohsen1/tsz-sub013/internal/binder"
	"github.com/mohsen1/tsz-sub013/internal/parser"
	"github.com/mohsen1/tsz-sub013/internal/symbol"
)

func bindSource(t *testing.T, src string) (*ast.Arena, ast.NodeIndex, *binder.State) {
	t.Helper()
	p := parser.New(src, "a.ts")
	root := p.ParseSourceFile()
	arena := p.IntoArena()
	state := binder.Bind(arena, root, "a.ts")
	return arena, root, state
}

func rootSymbol(t *testing.T, arena *ast.Arena, state *binder.State, name string) *symbol.Symbol {
	t.Helper()
	require.NotNil(t, state.FileLocals)
	id, ok := state.FileLocals.Get(arena.Interner.Intern(name))
	require.True(t, ok, "expected %q to be declared at file scope", name)
	sym := state.Symbols.Get(id)
	require.NotNil(t, sym)
	return sym
}

func TestBindVariableStatementDeclaresBlockScopedVariable(t *testing.T) {
	arena, _, state := bindSource(t, "let x = 1;")
	sym := rootSymbol(t, arena, state, "x")
	assert.True(t, sym.Flags.Has(symbol.FlagBlockScopedVariable))
}

func TestBindFunctionDeclarationHoistsAboveUse(t *testing.T) {
	arena, _, state := bindSource(t, "f(); function f() {}")
	sym := rootSymbol(t, arena, state, "f")
	assert.True(t, sym.Flags.Has(symbol.FlagFunction))
}

func TestBindClassDeclarationDeclaresItsOwnSymbol(t *testing.T) {
	arena, _, state := bindSource(t, "class C {}")
	sym := rootSymbol(t, arena, state, "C")
	assert.True(t, sym.Flags.Has(symbol.FlagClass))
}

func TestBindClassMembersDeclareIntoClassScope(t *testing.T) {
	arena, root, state := bindSource(t, "class C { greet() {} }")
	sf, ok := arena.GetSourceFile(root)
	require.True(t, ok)
	classNode := sf.Statements.Nodes[0]

	scopeID, ok := state.NodeScopeIds[classNode]
	require.True(t, ok, "class declaration should own a scope")
	scope, ok := state.Scopes.Get(scopeID)
	require.True(t, ok)
	_, found := scope.Table.Get(arena.Interner.Intern("greet"))
	assert.True(t, found)
}

func TestBindInterfaceDeclaresSymbol(t *testing.T) {
	arena, _, state := bindSource(t, "interface I { x: number }")
	sym := rootSymbol(t, arena, state, "I")
	assert.True(t, sym.Flags.Has(symbol.FlagInterface))
}

func TestBindInterfaceDeclarationPopulatesMembers(t *testing.T) {
	arena, _, state := bindSource(t, "interface K { a: number }")
	sym := rootSymbol(t, arena, state, "K")
	require.NotNil(t, sym.Members)
	_, ok := sym.Members.Get(arena.Interner.Intern("a"))
	assert.True(t, ok)
}

func TestBindMergesTwoInterfaceDeclarationsIntoOneSymbolWithBothMembers(t *testing.T) {
	arena, _, state := bindSource(t, "interface K { a: number } interface K { b: number }")
	sym := rootSymbol(t, arena, state, "K")
	assert.Len(t, sym.Declarations, 2)
	require.NotNil(t, sym.Members)
	_, hasA := sym.Members.Get(arena.Interner.Intern("a"))
	_, hasB := sym.Members.Get(arena.Interner.Intern("b"))
	assert.True(t, hasA)
	assert.True(t, hasB)
}

func TestBindEnumMembersPopulateExports(t *testing.T) {
	arena, _, state := bindSource(t, "enum Color { Red, Green }")
	sym := rootSymbol(t, arena, state, "Color")
	require.NotNil(t, sym.Exports)
	_, ok := sym.Exports.Get(arena.Interner.Intern("Red"))
	assert.True(t, ok)
}

func TestBindNamespaceDeclaresNestedSegments(t *testing.T) {
	arena, _, state := bindSource(t, "namespace A.B { export const x = 1; }")
	sym := rootSymbol(t, arena, state, "A")
	require.NotNil(t, sym.Exports)
	_, ok := sym.Exports.Get(arena.Interner.Intern("B"))
	assert.True(t, ok, "A.B should declare B inside A's exports table")
}

func TestBindImportDeclarationCreatesAlias(t *testing.T) {
	arena, _, state := bindSource(t, `import { x } from "./mod";`)
	sym := rootSymbol(t, arena, state, "x")
	assert.True(t, sym.Flags.Has(symbol.FlagAlias))
	assert.Equal(t, "./mod", sym.ImportModule)
}

func TestBindRenamedImportRecordsOriginalName(t *testing.T) {
	arena, _, state := bindSource(t, `import { x as y } from "./mod";`)
	sym := rootSymbol(t, arena, state, "y")
	assert.True(t, sym.Flags.Has(symbol.FlagAlias))
	assert.Equal(t, "x", arena.Interner.Resolve(sym.ImportName))
}

func TestBindExportDeclarationMarksExported(t *testing.T) {
	arena, _, state := bindSource(t, "const x = 1; export { x };")
	sym := rootSymbol(t, arena, state, "x")
	assert.True(t, sym.IsExported)
}

func TestBindDirectExportModifierMarksExported(t *testing.T) {
	arena, _, state := bindSource(t, "export function f() {}")
	sym := rootSymbol(t, arena, state, "f")
	assert.True(t, sym.IsExported)
}

func TestBindReexportRecordsTarget(t *testing.T) {
	_, _, state := bindSource(t, `export { x } from "./mod";`)
	target, ok := state.Reexports["a.ts"]["x"]
	require.True(t, ok)
	assert.Equal(t, binder.ModuleSpecifier("./mod"), target.SourceModule)
}

func TestBindWildcardReexportRecordsStar(t *testing.T) {
	_, _, state := bindSource(t, `export * from "./mod";`)
	target, ok := state.Reexports["a.ts"]["*"]
	require.True(t, ok)
	assert.Equal(t, binder.ModuleSpecifier("./mod"), target.SourceModule)
}
