package binder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohsen1/tsz-sub013/internal/ast"
	"github.com/mohsen1/tsz-sub013/internal/binder"
	"github.com/mohsen1/tsz-sub013/internal/parser"
)

func bindTsx(t *testing.T, src string) (*ast.Arena, ast.NodeIndex, *binder.State) {
	t.Helper()
	p := parser.New(src, "a.tsx")
	root := p.ParseSourceFile()
	arena := p.IntoArena()
	state := binder.Bind(arena, root, "a.tsx")
	return arena, root, state
}

// variableInitializer returns the statementIndex'th top-level variable
// statement's single declarator's initializer node.
func variableInitializer(t *testing.T, arena *ast.Arena, root ast.NodeIndex, statementIndex int) ast.NodeIndex {
	t.Helper()
	sf, ok := arena.GetSourceFile(root)
	require.True(t, ok)
	require.Greater(t, len(sf.Statements.Nodes), statementIndex)

	declList, ok := arena.GetVariableStatement(sf.Statements.Nodes[statementIndex])
	require.True(t, ok)
	list, ok := arena.GetVariableDeclarationList(declList)
	require.True(t, ok)
	require.Len(t, list.Declarations.Nodes, 1)

	decl, ok := arena.GetVariableDeclaration(list.Declarations.Nodes[0])
	require.True(t, ok)
	return decl.Initializer
}

func TestBindJsxSelfClosingElementResolvesTagNameToValueDeclaration(t *testing.T) {
	arena, root, state := bindTsx(t, "const X = 1; const v = <X/>;")

	jsxNode := variableInitializer(t, arena, root, 1)
	opening, ok := arena.GetJsxOpeningElement(jsxNode)
	require.True(t, ok, "expected a JSX self-closing opening element")

	gotID, ok := state.ResolveIdentifier(opening.TagName)
	require.True(t, ok, "expected the JSX tag name to resolve")

	wantID, ok := state.FileLocals.Get(arena.Interner.Intern("X"))
	require.True(t, ok)
	assert.Equal(t, wantID, gotID)
}

func TestBindJsxAttributeExpressionIsBoundAsAReference(t *testing.T) {
	arena, root, state := bindTsx(t, "const label = 1; const v = <X text={label}/>;")

	jsxNode := variableInitializer(t, arena, root, 1)
	opening, ok := arena.GetJsxOpeningElement(jsxNode)
	require.True(t, ok)
	require.Len(t, opening.Attributes.Nodes, 1)

	attr, ok := arena.GetJsxAttribute(opening.Attributes.Nodes[0])
	require.True(t, ok)
	jsxExpr, ok := arena.GetJsxExpression(attr.Initializer)
	require.True(t, ok)

	gotID, ok := state.ResolveIdentifier(jsxExpr.Expression)
	require.True(t, ok, "expected {label} to resolve as a reference")

	wantID, ok := state.FileLocals.Get(arena.Interner.Intern("label"))
	require.True(t, ok)
	assert.Equal(t, wantID, gotID)
}
