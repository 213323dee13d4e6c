package binder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohsen1/tsz-sub013/internal/ast"
)

func TestBindSourceFileIncrementalDropsDeclarationsFromRemovedSuffix(t *testing.T) {
	arena, root, state := bindSource(t, "let x = 1; let y = 2;")
	sf, ok := arena.GetSourceFile(root)
	require.True(t, ok)
	require.Len(t, sf.Statements.Nodes, 2)

	xStmt, yStmt := sf.Statements.Nodes[0], sf.Statements.Nodes[1]
	yNode, ok := arena.Get(yStmt)
	require.True(t, ok)

	_, ok = state.FileLocals.Get(arena.Interner.Intern("y"))
	require.True(t, ok, "precondition: y must be bound before the incremental rebind")

	state.BindSourceFileIncremental(
		[]ast.NodeIndex{xStmt},
		[]ast.NodeIndex{yStmt},
		nil,
		yNode.Pos,
	)

	_, ok = state.FileLocals.Get(arena.Interner.Intern("x"))
	assert.True(t, ok, "the prefix's declaration must survive the rebind")

	_, ok = state.FileLocals.Get(arena.Interner.Intern("y"))
	assert.False(t, ok, "a declaration only the removed suffix introduced must be unwound")

	_, ok = state.TopLevelFlow[yStmt]
	assert.False(t, ok, "top_level_flow for the removed statement must be pruned")
}

func TestBindSourceFileIncrementalKeepsPrefixDeclarationWhenNameReintroduced(t *testing.T) {
	arena, root, state := bindSource(t, "let x = 1; let y = 2;")
	sf, ok := arena.GetSourceFile(root)
	require.True(t, ok)
	xStmt, yStmt := sf.Statements.Nodes[0], sf.Statements.Nodes[1]
	yNode, ok := arena.Get(yStmt)
	require.True(t, ok)

	xID, ok := state.FileLocals.Get(arena.Interner.Intern("x"))
	require.True(t, ok)

	state.BindSourceFileIncremental(
		[]ast.NodeIndex{xStmt},
		[]ast.NodeIndex{yStmt},
		nil,
		yNode.Pos,
	)

	xIDAfter, ok := state.FileLocals.Get(arena.Interner.Intern("x"))
	require.True(t, ok, "x belongs to the prefix and must be untouched by the rebind")
	assert.Equal(t, xID, xIDAfter)
}
