package dataflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohsen1/tsz-sub013/internal/ast"
	"github.com/mohsen1/tsz-sub013/internal/dataflow"
	"github.com/mohsen1/tsz-sub013/internal/flow"
	"github.com/mohsen1/tsz-sub013/internal/symbol"
)

func TestMergeTableMatchesSpecLattice(t *testing.T) {
	assert.Equal(t, dataflow.Unassigned, dataflow.Merge(dataflow.Unassigned, dataflow.Unassigned))
	assert.Equal(t, dataflow.MaybeAssigned, dataflow.Merge(dataflow.Unassigned, dataflow.DefinitelyAssigned))
	assert.Equal(t, dataflow.MaybeAssigned, dataflow.Merge(dataflow.DefinitelyAssigned, dataflow.Unassigned))
	assert.Equal(t, dataflow.DefinitelyAssigned, dataflow.Merge(dataflow.DefinitelyAssigned, dataflow.DefinitelyAssigned))
	assert.Equal(t, dataflow.MaybeAssigned, dataflow.Merge(dataflow.MaybeAssigned, dataflow.DefinitelyAssigned))
}

// identityResolver treats a flow node's associated ast.NodeIndex directly as
// a symbol.Id, letting tests build tiny CFGs without a real binder.
func identityResolver(n ast.NodeIndex) (symbol.Id, bool) {
	if n == ast.NoNode {
		return symbol.NoSymbol, false
	}
	return symbol.Id(n), true
}

func TestLinearAssignmentBecomesDefinitelyAssignedAfterwards(t *testing.T) {
	arena := flow.NewArena()
	start := arena.New(flow.FlagStart, ast.NoNode)
	assign := arena.New(flow.FlagAssignment, ast.NodeIndex(1), start)
	after := arena.New(flow.FlagCall, ast.NoNode, assign)

	an := dataflow.New(arena, []symbol.Id{1}, identityResolver)
	states := an.Run(start)

	assert.Equal(t, dataflow.Unassigned, states[start].Get(1))
	assert.Equal(t, dataflow.DefinitelyAssigned, states[assign].Get(1))
	assert.Equal(t, dataflow.DefinitelyAssigned, states[after].Get(1))
}

func TestBranchMergeDowngradesToMaybeAssignedWhenOnlyOneSideAssigns(t *testing.T) {
	arena := flow.NewArena()
	start := arena.New(flow.FlagStart, ast.NoNode)
	assignedBranch := arena.New(flow.FlagAssignment, ast.NodeIndex(1), start)
	skippedBranch := arena.New(flow.FlagTrueCondition, ast.NoNode, start)
	join := arena.Label(flow.FlagBranchLabel)
	arena.AddAntecedent(join, assignedBranch)
	arena.AddAntecedent(join, skippedBranch)

	an := dataflow.New(arena, []symbol.Id{1}, identityResolver)
	states := an.Run(start)

	assert.Equal(t, dataflow.MaybeAssigned, states[join].Get(1))
}

func TestBranchMergeStaysDefinitelyAssignedWhenBothSidesAssign(t *testing.T) {
	arena := flow.NewArena()
	start := arena.New(flow.FlagStart, ast.NoNode)
	left := arena.New(flow.FlagAssignment, ast.NodeIndex(1), start)
	right := arena.New(flow.FlagAssignment, ast.NodeIndex(1), start)
	join := arena.Label(flow.FlagBranchLabel)
	arena.AddAntecedent(join, left)
	arena.AddAntecedent(join, right)

	an := dataflow.New(arena, []symbol.Id{1}, identityResolver)
	states := an.Run(start)

	assert.Equal(t, dataflow.DefinitelyAssigned, states[join].Get(1))
}

func TestLoopBackEdgeReachesFixedPointWithoutHanging(t *testing.T) {
	arena := flow.NewArena()
	start := arena.New(flow.FlagStart, ast.NoNode)
	loop := arena.Label(flow.FlagLoopLabel)
	arena.AddAntecedent(loop, start)
	body := arena.New(flow.FlagAssignment, ast.NodeIndex(1), loop)
	arena.AddAntecedent(loop, body) // back-edge

	an := dataflow.New(arena, []symbol.Id{1}, identityResolver)
	states := an.Run(start)

	require.Contains(t, states, loop)
	// The loop label merges start's Unassigned with body's DefinitelyAssigned
	// (via the back-edge), so it settles at MaybeAssigned.
	assert.Equal(t, dataflow.MaybeAssigned, states[loop].Get(1))
	assert.Equal(t, dataflow.DefinitelyAssigned, states[body].Get(1))
}

func TestUntrackedVariableIsNeverPromoted(t *testing.T) {
	arena := flow.NewArena()
	start := arena.New(flow.FlagStart, ast.NoNode)
	assign := arena.New(flow.FlagAssignment, ast.NodeIndex(1), start)

	an := dataflow.New(arena, []symbol.Id{2}, identityResolver) // tracking a different var
	states := an.Run(start)

	assert.Equal(t, dataflow.Unassigned, states[assign].Get(1))
}

func TestIsDefinitelyAssignedReturnsFalseForUnreachedFlowNode(t *testing.T) {
	arena := flow.NewArena()
	start := arena.New(flow.FlagStart, ast.NoNode)
	unreached := arena.New(flow.FlagCall, ast.NoNode) // no antecedent wired to start

	an := dataflow.New(arena, []symbol.Id{1}, identityResolver)
	states := an.Run(start)

	assert.False(t, dataflow.IsDefinitelyAssigned(states, unreached, 1))
}
