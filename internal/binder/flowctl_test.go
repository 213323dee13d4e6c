package binder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohsen1/tsz-sub013/internal/ast"
	"github.com/mohsen1/tsz-sub013/internal/binder"
	"github.com/mohsen1/tsz-sub013/internal/flow"
)

// lastTopLevelFlow returns top_level_flow recorded after the source file's
// last statement, the simplest probe point for "what did binding this
// program leave current_flow as".
func lastTopLevelFlow(t *testing.T, arena *ast.Arena, root ast.NodeIndex, state *binder.State) flow.Id {
	t.Helper()
	sf, ok := arena.GetSourceFile(root)
	require.True(t, ok)
	require.NotEmpty(t, sf.Statements.Nodes)
	last := sf.Statements.Nodes[len(sf.Statements.Nodes)-1]
	id, ok := state.TopLevelFlow[last]
	require.True(t, ok)
	return id
}

func TestBindIfStatementJoinsBothBranches(t *testing.T) {
	arena, root, state := bindSource(t, "let x = 1; if (x) { x = 2; } else { x = 3; }")

	last := lastTopLevelFlow(t, arena, root, state)
	node, ok := state.Flow.Get(last)
	require.True(t, ok)
	assert.True(t, node.Flags.Has(flow.FlagBranchLabel))
	assert.Len(t, node.Antecedent, 2)
}

func TestBindIfStatementNarrowsTrueAndFalseBranchesDistinctly(t *testing.T) {
	arena, root, state := bindSource(t,
		"function f(v) { if (typeof v === 'string') { v; } else { v; } }")

	sf, ok := arena.GetSourceFile(root)
	require.True(t, ok)
	fn, ok := arena.GetFunctionLike(sf.Statements.Nodes[0])
	require.True(t, ok)
	body, ok := arena.GetBlock(fn.Body)
	require.True(t, ok)

	ifData, ok := arena.GetIfStatement(body.Nodes[0])
	require.True(t, ok)

	thenBlock, ok := arena.GetBlock(ifData.ThenStatement)
	require.True(t, ok)
	thenExpr, ok := arena.GetSimpleStatement(thenBlock.Nodes[0])
	require.True(t, ok)

	elseBlock, ok := arena.GetBlock(ifData.ElseStatement)
	require.True(t, ok)
	elseExpr, ok := arena.GetSimpleStatement(elseBlock.Nodes[0])
	require.True(t, ok)

	thenFlowID, ok := state.NodeFlow[thenExpr]
	require.True(t, ok)
	thenFlow, ok := state.Flow.Get(thenFlowID)
	require.True(t, ok)
	assert.True(t, thenFlow.Flags.Has(flow.FlagTrueCondition))

	elseFlowID, ok := state.NodeFlow[elseExpr]
	require.True(t, ok)
	elseFlow, ok := state.Flow.Get(elseFlowID)
	require.True(t, ok)
	assert.True(t, elseFlow.Flags.Has(flow.FlagFalseCondition))
}

func TestBindIfStatementWithoutElseWiresFalseConditionDirectly(t *testing.T) {
	arena, root, state := bindSource(t, "let x = 1; if (x) { x = 2; }")

	last := lastTopLevelFlow(t, arena, root, state)
	node, ok := state.Flow.Get(last)
	require.True(t, ok)
	assert.True(t, node.Flags.Has(flow.FlagBranchLabel))
	require.Len(t, node.Antecedent, 2)
}

func TestBindWhileLoopCreatesLoopLabelWithBackEdge(t *testing.T) {
	_, _, state := bindSource(t, "let x = 1; while (x) { x = 2; }")

	foundLoopLabel := false
	for id := flow.Unreachable + 1; int(id) <= state.Flow.Len(); id++ {
		node, ok := state.Flow.Get(id)
		if ok && node.Flags.Has(flow.FlagLoopLabel) {
			foundLoopLabel = true
			assert.GreaterOrEqual(t, len(node.Antecedent), 2, "loop label needs pre-entry and back-edge antecedents")
		}
	}
	assert.True(t, foundLoopLabel)
}

func TestBindSwitchRecordsClauseToSwitchLink(t *testing.T) {
	arena, root, state := bindSource(t, "let x = 1; switch (x) { case 1: break; default: break; }")
	sf, ok := arena.GetSourceFile(root)
	require.True(t, ok)
	switchNode := sf.Statements.Nodes[1]

	found := false
	for _, sw := range state.SwitchClauseToSwitch {
		if sw == switchNode {
			found = true
		}
	}
	assert.True(t, found, "expected at least one case/default clause linked back to the switch statement")
}

func TestBindSwitchFallthroughClauseHasPreSwitchAndPriorClauseAsAntecedents(t *testing.T) {
	arena, root, state := bindSource(t,
		"function a() {} function b() {} function c() {} let x = 1; switch (x) { case 1: a(); case 2: b(); default: c(); }")

	sf, ok := arena.GetSourceFile(root)
	require.True(t, ok)
	switchNode := sf.Statements.Nodes[4]

	switchData, ok := arena.GetSwitchStatement(switchNode)
	require.True(t, ok)
	caseBlock, ok := arena.GetCaseBlock(switchData.CaseBlock)
	require.True(t, ok)
	require.Len(t, caseBlock.Clauses.Nodes, 3)

	case2Flow := findSwitchClauseFlow(t, state, caseBlock.Clauses.Nodes[1])
	assert.Len(t, case2Flow.Antecedent, 2, "case 2 should carry pre-switch and the post-a() fallthrough edge")

	defaultFlow := findSwitchClauseFlow(t, state, caseBlock.Clauses.Nodes[2])
	assert.Len(t, defaultFlow.Antecedent, 2, "default should carry pre-switch and the post-b() fallthrough edge")
}

// findSwitchClauseFlow locates the FlagSwitchClause flow node bound to
// clause's own first statement's flow entry, by scanning the whole flow
// arena for a SWITCH_CLAUSE node whose Node field is clause.
func findSwitchClauseFlow(t *testing.T, state *binder.State, clause ast.NodeIndex) flow.Node {
	t.Helper()
	for i := 0; i < state.Flow.Len(); i++ {
		id := flow.Id(i)
		node, ok := state.Flow.Get(id)
		if !ok || !node.Flags.Has(flow.FlagSwitchClause) {
			continue
		}
		if node.Node == clause {
			return node
		}
	}
	require.Fail(t, "no SWITCH_CLAUSE flow node found for clause")
	return flow.Node{}
}

func TestBindCallExpressionInsertsCallFlow(t *testing.T) {
	arena, root, state := bindSource(t, "function f() {} f();")
	last := lastTopLevelFlow(t, arena, root, state)
	node, ok := state.Flow.Get(last)
	require.True(t, ok)
	assert.True(t, node.Flags.Has(flow.FlagCall))
}

func TestBindMutableArrayMethodCallInsertsArrayMutationFlow(t *testing.T) {
	arena, root, state := bindSource(t, "let a = [1]; a.push(2);")
	last := lastTopLevelFlow(t, arena, root, state)
	node, ok := state.Flow.Get(last)
	require.True(t, ok)
	assert.True(t, node.Flags.Has(flow.FlagArrayMutation))
}

func TestBindNonMutatingMethodCallDoesNotInsertArrayMutationFlow(t *testing.T) {
	arena, root, state := bindSource(t, "let a = [1]; a.slice(0);")
	last := lastTopLevelFlow(t, arena, root, state)
	node, ok := state.Flow.Get(last)
	require.True(t, ok)
	assert.False(t, node.Flags.Has(flow.FlagArrayMutation))
	assert.True(t, node.Flags.Has(flow.FlagCall))
}

func TestBindArrowFunctionGetsFreshStartFlow(t *testing.T) {
	arena, root, state := bindSource(t, "const f = () => { return 1; };")
	sf, ok := arena.GetSourceFile(root)
	require.True(t, ok)
	declListNode, ok := arena.GetSimpleStatement(sf.Statements.Nodes[0])
	require.True(t, ok)
	declList, ok := arena.GetVariableDeclarationList(declListNode)
	require.True(t, ok)
	decl, ok := arena.GetVariableDeclaration(declList.Declarations.Nodes[0])
	require.True(t, ok)

	_, ok = arena.GetFunctionLike(decl.Initializer)
	require.True(t, ok)

	closureStart := findFlowByNode(t, state, decl.Initializer, flow.FlagStart)
	require.Len(t, closureStart.Antecedent, 1, "the closure's START node should carry exactly the enclosing flow as its antecedent")
	assert.Equal(t, state.EntryFlow, closureStart.Antecedent[0],
		"the closure's START antecedent should be the flow in effect where the closure was bound (here, the file's entry flow, since nothing precedes this declaration)")
}

// findFlowByNode scans the whole flow arena for a node carrying flags whose
// Node field is target, the same probe style as findSwitchClauseFlow.
func findFlowByNode(t *testing.T, state *binder.State, target ast.NodeIndex, flags flow.Flags) flow.Node {
	t.Helper()
	for i := 0; i < state.Flow.Len(); i++ {
		id := flow.Id(i)
		node, ok := state.Flow.Get(id)
		if !ok || !node.Flags.Has(flags) {
			continue
		}
		if node.Node == target {
			return node
		}
	}
	require.Fail(t, "no flow node found for target with the requested flags")
	return flow.Node{}
}
