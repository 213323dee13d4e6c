package ast_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohsen1/tsz-sub013/internal/ast"
	"github.com/mohsen1/tsz-sub013/internal/atom"
	"github.com/mohsen1/tsz-sub013/internal/token"
)

func TestThinNodeIsSixteenBytes(t *testing.T) {
	// spec.md §3.3's hard design constraint: four nodes per 64-byte cache line.
	require.Equal(t, uintptr(16), unsafe.Sizeof(ast.ThinNode{}))
}

func TestNoNodeNeverAddressesLiveData(t *testing.T) {
	a := ast.New(atom.New())
	_, ok := a.Get(ast.NoNode)
	assert.False(t, ok)
}

func TestAddIdentifierRoundTrips(t *testing.T) {
	a := ast.New(atom.New())
	id := a.AddIdentifier(0, 3, "foo")

	node, ok := a.Get(id)
	require.True(t, ok)
	assert.Equal(t, token.Identifier, node.Kind)
	assert.LessOrEqual(t, node.Pos, node.End)
	assert.Equal(t, "foo", a.NameText(id))
}

func TestTypedAccessorReturnsFalseOnKindMismatch(t *testing.T) {
	a := ast.New(atom.New())
	id := a.AddIdentifier(0, 3, "foo")

	_, ok := a.GetBinaryExpr(id)
	assert.False(t, ok, "asking for BinaryExpr data from an Identifier node must fail cleanly, not panic")
}

func TestRecoverySynthesizedIdentifierHasEmptyText(t *testing.T) {
	a := ast.New(atom.New())
	id := a.AddIdentifier(5, 5, "")

	node, _ := a.Get(id)
	assert.True(t, node.Flags.Has(token.FlagSynthesized))
	assert.Equal(t, "", a.NameText(id))
	assert.Equal(t, node.Pos, node.End, "recovery nodes may be zero-width")
}

func TestParentPointersAreLazyButQueryable(t *testing.T) {
	a := ast.New(atom.New())
	child := a.AddIdentifier(0, 1, "x")
	assert.Equal(t, ast.NoNode, a.ParentOf(child), "unset parent reads as NoNode")

	parent := a.AddExpressionStatement(0, 1, child)
	a.SetParent(child, parent)
	assert.Equal(t, parent, a.ParentOf(child))
}

func TestArenaIsAppendOnlyIndicesNeverReused(t *testing.T) {
	a := ast.New(atom.New())
	first := a.AddIdentifier(0, 1, "a")
	second := a.AddIdentifier(1, 2, "b")
	assert.NotEqual(t, first, second)
	assert.Less(t, uint32(first), uint32(second))
}

func TestBinaryExprAccessor(t *testing.T) {
	a := ast.New(atom.New())
	left := a.AddIdentifier(0, 1, "a")
	right := a.AddIdentifier(4, 5, "b")
	bin := a.AddBinaryExpr(0, 5, ast.BinaryExprData{Left: left, OperatorToken: token.PlusToken, Right: right})

	data, ok := a.GetBinaryExpr(bin)
	require.True(t, ok)
	assert.Equal(t, left, data.Left)
	assert.Equal(t, right, data.Right)
	assert.Equal(t, token.PlusToken, data.OperatorToken)
}

func TestSourceFileAlwaysConstructible(t *testing.T) {
	a := ast.New(atom.New())
	eof := a.AddKeywordExpr(token.EndOfFile, 0, 0)
	sf := a.AddSourceFile(0, 0, ast.SourceFileData{EndOfFileToken: eof, FileName: "empty.ts"})

	data, ok := a.GetSourceFile(sf)
	require.True(t, ok)
	assert.Empty(t, data.Statements.Nodes)
	assert.Equal(t, "empty.ts", data.FileName)
}
