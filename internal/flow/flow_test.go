package flow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohsen1/tsz-sub013/internal/ast"
	"github.com/mohsen1/tsz-sub013/internal/flow"
)

func TestNewArenaSeedsUnreachableSentinel(t *testing.T) {
	a := flow.NewArena()
	node, ok := a.Get(flow.Unreachable)
	require.True(t, ok)
	assert.True(t, node.Flags.Has(flow.FlagUnreachable))
	assert.True(t, a.IsUnreachable(flow.Unreachable))
	assert.Equal(t, 1, a.Len())
}

func TestNewAllocatesDistinctIds(t *testing.T) {
	a := flow.NewArena()
	start := a.New(flow.FlagStart, ast.NoNode)
	assign := a.New(flow.FlagAssignment, ast.NodeIndex(7), start)

	assert.NotEqual(t, start, assign)

	node, ok := a.Get(assign)
	require.True(t, ok)
	assert.Equal(t, flow.FlagAssignment, node.Flags)
	assert.Equal(t, ast.NodeIndex(7), node.Node)
	require.Len(t, node.Antecedent, 1)
	assert.Equal(t, start, node.Antecedent[0])
}

func TestLabelAndAddAntecedentWireLoopBackEdge(t *testing.T) {
	a := flow.NewArena()
	pre := a.New(flow.FlagStart, ast.NoNode)
	loop := a.Label(flow.FlagLoopLabel)
	a.AddAntecedent(loop, pre)

	body := a.New(flow.FlagAssignment, ast.NodeIndex(3), loop)
	a.AddAntecedent(loop, body) // back-edge

	node, ok := a.Get(loop)
	require.True(t, ok)
	require.Len(t, node.Antecedent, 2)
	assert.Equal(t, pre, node.Antecedent[0])
	assert.Equal(t, body, node.Antecedent[1])
}

func TestGetUnknownIdIsNotOk(t *testing.T) {
	a := flow.NewArena()
	_, ok := a.Get(flow.Id(999))
	assert.False(t, ok)

	_, ok = a.Get(flow.NoFlow)
	assert.False(t, ok)
}

func TestFlagsHasAndAny(t *testing.T) {
	f := flow.FlagTrueCondition | flow.FlagAssignment
	assert.True(t, f.Has(flow.FlagTrueCondition))
	assert.False(t, f.Has(flow.FlagCall))
	assert.True(t, f.Any(flow.FlagCall|flow.FlagTrueCondition))
}

func TestIsUnreachablePropagatesFromFlags(t *testing.T) {
	a := flow.NewArena()
	reachable := a.New(flow.FlagStart, ast.NoNode)
	assert.False(t, a.IsUnreachable(reachable))

	deadBranch := a.New(flow.FlagUnreachable, ast.NoNode)
	assert.True(t, a.IsUnreachable(deadBranch))
}
