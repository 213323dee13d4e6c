package binder_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohsen1/tsz-sub013/internal/ast"
	"github.com/mohsen1/tsz-sub013/internal/binder"
	"github.com/mohsen1/tsz-sub013/internal/parser"
)

// parseAndBind parses src as fileName and binds it as that module, for
// tests that need more than one file to build a Program.
func parseAndBind(t *testing.T, src, fileName string) (*ast.Arena, ast.NodeIndex, *binder.State) {
	t.Helper()
	p := parser.New(src, fileName)
	root := p.ParseSourceFile()
	arena := p.IntoArena()
	state := binder.Bind(arena, root, binder.ModuleSpecifier(fileName))
	return arena, root, state
}

func TestResolveIdentifierFindsFileScopeDeclaration(t *testing.T) {
	arena, root, state := bindSource(t, "let x = 1; x;")
	sf, ok := arena.GetSourceFile(root)
	require.True(t, ok)
	exprStmt := sf.Statements.Nodes[1]
	exprNode, ok := arena.GetSimpleStatement(exprStmt)
	require.True(t, ok)

	id, ok := state.ResolveIdentifier(exprNode)
	require.True(t, ok)

	declListNode, ok := arena.GetSimpleStatement(sf.Statements.Nodes[0])
	require.True(t, ok)
	declList, ok := arena.GetVariableDeclarationList(declListNode)
	require.True(t, ok)
	decl, ok := arena.GetVariableDeclaration(declList.Declarations.Nodes[0])
	require.True(t, ok)

	declaringID, ok := state.NodeSymbols[decl.Name]
	require.True(t, ok)
	assert.Equal(t, declaringID, id)
}

func TestResolveIdentifierReturnsFalseForUnknownName(t *testing.T) {
	arena, root, state := bindSource(t, "y;")
	sf, ok := arena.GetSourceFile(root)
	require.True(t, ok)
	exprNode, ok := arena.GetSimpleStatement(sf.Statements.Nodes[0])
	require.True(t, ok)

	_, ok = state.ResolveIdentifier(exprNode)
	assert.False(t, ok)
}

func TestResolveIdentifierPrefersInnermostScope(t *testing.T) {
	arena, root, state := bindSource(t, "let x = 1; function f() { let x = 2; return x; }")
	sf, ok := arena.GetSourceFile(root)
	require.True(t, ok)

	fn, ok := arena.GetFunctionLike(sf.Statements.Nodes[1])
	require.True(t, ok)
	block, ok := arena.GetBlock(fn.Body)
	require.True(t, ok)
	returnNode, ok := arena.GetSimpleStatement(block.Nodes[1])
	require.True(t, ok)

	innerDeclListNode, ok := arena.GetSimpleStatement(block.Nodes[0])
	require.True(t, ok)
	innerDeclList, ok := arena.GetVariableDeclarationList(innerDeclListNode)
	require.True(t, ok)
	innerDecl, ok := arena.GetVariableDeclaration(innerDeclList.Declarations.Nodes[0])
	require.True(t, ok)
	innerID, ok := state.NodeSymbols[innerDecl.Name]
	require.True(t, ok)

	resolvedID, ok := state.ResolveIdentifier(returnNode)
	require.True(t, ok)
	assert.Equal(t, innerID, resolvedID, "the function's own x should shadow the file-scope x")
}

func TestProgramResolveIdentifierFollowsImportChain(t *testing.T) {
	// S1 (spec.md §8): a.ts exports x; b.ts re-exports it; c.ts imports it.
	aArena, aRoot, aState := parseAndBind(t, "export const x = 1;", "./a")
	_, _, bState := parseAndBind(t, `export { x } from "./a";`, "./b")
	cArena, cRoot, cState := parseAndBind(t, `import { x } from "./b";`, "./c")

	program := binder.NewProgram([]*binder.State{aState, bState, cState})

	sf, ok := cArena.GetSourceFile(cRoot)
	require.True(t, ok)
	importDecl, ok := cArena.GetImportDeclaration(sf.Statements.Nodes[0])
	require.True(t, ok)
	clause, ok := cArena.GetImportClause(importDecl.ImportClause)
	require.True(t, ok)
	namedBindings, ok := cArena.GetNamedImportsOrExports(clause.NamedBindings)
	require.True(t, ok)
	importSpec, ok := cArena.GetImportSpecifier(namedBindings.Nodes[0])
	require.True(t, ok)

	// Resolve the alias via the program's cross-file chase using the import
	// specifier's own name node, which is what bindImportDeclaration binds
	// as the ALIAS's reference.
	resolvedID, resolvedState, ok := program.ResolveIdentifier("./c", importSpec.Name)
	require.True(t, ok)
	assert.Same(t, aState, resolvedState)

	aSF, ok := aArena.GetSourceFile(aRoot)
	require.True(t, ok)
	aDeclListNode, ok := aArena.GetSimpleStatement(aSF.Statements.Nodes[0])
	require.True(t, ok)
	aDeclList, ok := aArena.GetVariableDeclarationList(aDeclListNode)
	require.True(t, ok)
	aDecl, ok := aArena.GetVariableDeclaration(aDeclList.Declarations.Nodes[0])
	require.True(t, ok)
	aID, ok := aState.NodeSymbols[aDecl.Name]
	require.True(t, ok)

	assert.Equal(t, aID, resolvedID)
}

func TestProgramResolveIdentifierDetectsWildcardCycle(t *testing.T) {
	aArena, aRoot, aState := parseAndBind(t, `export * from "./b";`, "./a")
	_, _, bState := parseAndBind(t, `export * from "./a";`, "./b")
	cArena, cRoot, cState := parseAndBind(t, `import { missing } from "./a";`, "./c")

	program := binder.NewProgram([]*binder.State{aState, bState, cState})

	cSF, ok := cArena.GetSourceFile(cRoot)
	require.True(t, ok)
	importDecl, ok := cArena.GetImportDeclaration(cSF.Statements.Nodes[0])
	require.True(t, ok)
	clause, ok := cArena.GetImportClause(importDecl.ImportClause)
	require.True(t, ok)
	namedBindings, ok := cArena.GetNamedImportsOrExports(clause.NamedBindings)
	require.True(t, ok)
	importSpec, ok := cArena.GetImportSpecifier(namedBindings.Nodes[0])
	require.True(t, ok)

	_ = aRoot
	done := make(chan bool, 1)
	go func() {
		_, _, ok := program.ResolveIdentifier("./c", importSpec.Name)
		done <- ok
	}()
	select {
	case ok := <-done:
		assert.False(t, ok, "a wildcard chain with no matching export must terminate with None, not find a phantom symbol")
	case <-time.After(2 * time.Second):
		t.Fatal("ResolveIdentifier did not terminate on a wildcard re-export cycle")
	}
}
