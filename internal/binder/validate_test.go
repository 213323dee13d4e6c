package binder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohsen1/tsz-sub013/internal/ast"
)

func TestValidateSymbolTableCleanOnFreshBind(t *testing.T) {
	_, _, state := bindSource(t, "let x = 1; function f() {} class C {}")
	errs := state.ValidateSymbolTable()
	assert.Empty(t, errs, "a freshly bound program should have no validation errors")
}

func TestValidateSymbolTableDetectsBrokenSymbolLink(t *testing.T) {
	arena, root, state := bindSource(t, "let x = 1;")
	sf, ok := arena.GetSourceFile(root)
	require.True(t, ok)
	declListNode, ok := arena.GetSimpleStatement(sf.Statements.Nodes[0])
	require.True(t, ok)
	declList, ok := arena.GetVariableDeclarationList(declListNode)
	require.True(t, ok)
	decl, ok := arena.GetVariableDeclaration(declList.Declarations.Nodes[0])
	require.True(t, ok)

	// Point node_symbols at a symbol id that was never allocated.
	state.NodeSymbols[decl.Name] = 9999

	errs := state.ValidateSymbolTable()
	found := false
	for _, e := range errs {
		if e.Kind == "BrokenSymbolLink" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidateSymbolTableDetectsOrphanedSymbol(t *testing.T) {
	arena, _, state := bindSource(t, "let x = 1;")
	sym := rootSymbol(t, arena, state, "x")
	sym.Declarations = nil

	errs := state.ValidateSymbolTable()
	found := false
	for _, e := range errs {
		if e.Kind == "OrphanedSymbol" && e.Name == "x" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidateSymbolTableDetectsInvalidValueDeclaration(t *testing.T) {
	arena, _, state := bindSource(t, "let x = 1;")
	sym := rootSymbol(t, arena, state, "x")
	sym.ValueDeclaration = ast.NodeIndex(424242)

	errs := state.ValidateSymbolTable()
	found := false
	for _, e := range errs {
		if e.Kind == "InvalidValueDeclaration" && e.Name == "x" {
			found = true
		}
	}
	assert.True(t, found)
}
