package binder

import (
	"github.com/mohsen1/tsz-sub013/internal/ast"
	"github.com/mohsen1/tsz-sub013/internal/atom"
	"github.com/mohsen1/tsz-sub013/internal/flow"
	"github.com/mohsen1/tsz-sub013/internal/symbol"
	"github.com/mohsen1/tsz-sub013/internal/token"
)

// bindIfStatement implements spec.md §4.4.2's If-statement contract: save
// pre; descend condition; then-branch starts at TRUE_CONDITION(pre, cond),
// else-branch at FALSE_CONDITION(pre, cond); the join is a BRANCH_LABEL
// with both antecedents. Missing else wires the else antecedent directly
// to the condition's FALSE_CONDITION.
func (s *State) bindIfStatement(n ast.NodeIndex) {
	data, ok := s.Arena.GetIfStatement(n)
	if !ok {
		return
	}
	pre := s.currentFlow
	s.bindExpression(data.Expression)

	trueStart := s.Flow.New(flow.FlagTrueCondition, data.Expression, pre)
	s.currentFlow = trueStart
	s.bindStatement(data.ThenStatement)
	afterThen := s.currentFlow

	falseStart := s.Flow.New(flow.FlagFalseCondition, data.Expression, pre)
	afterElse := falseStart
	if data.ElseStatement != ast.NoNode {
		s.currentFlow = falseStart
		s.bindStatement(data.ElseStatement)
		afterElse = s.currentFlow
	}

	join := s.Flow.Label(flow.FlagBranchLabel)
	s.Flow.AddAntecedent(join, afterThen)
	s.Flow.AddAntecedent(join, afterElse)
	s.currentFlow = join
}

// bindWhileStatement implements the While/do-while contract: a LOOP_LABEL
// is created; pre flows into it; the body flows back into the label; the
// exit is the FALSE_CONDITION.
func (s *State) bindWhileStatement(n ast.NodeIndex, isDo bool) {
	data, ok := s.Arena.GetWhileLike(n)
	if !ok {
		return
	}
	pre := s.currentFlow
	label := s.Flow.Label(flow.FlagLoopLabel)
	s.Flow.AddAntecedent(label, pre)

	if isDo {
		// do { body } while (cond): body runs before the condition is
		// first tested.
		s.currentFlow = label
		s.pushLoop(atom.None, label)
		s.bindStatement(data.Statement)
		s.popLoop()
		s.bindExpression(data.Expression)
		s.Flow.AddAntecedent(label, s.currentFlow) // back-edge
		exit := s.Flow.New(flow.FlagFalseCondition, data.Expression, s.currentFlow)
		s.currentFlow = exit
		return
	}

	s.currentFlow = label
	s.bindExpression(data.Expression)
	bodyStart := s.Flow.New(flow.FlagTrueCondition, data.Expression, s.currentFlow)
	exit := s.Flow.New(flow.FlagFalseCondition, data.Expression, s.currentFlow)

	s.currentFlow = bodyStart
	s.pushLoop(atom.None, exit)
	s.bindStatement(data.Statement)
	s.popLoop()
	s.Flow.AddAntecedent(label, s.currentFlow) // back-edge
	s.currentFlow = exit
}

// bindForStatement implements the for-loop contract: initializer, condition,
// body, and incrementer participate in order (condition before body,
// incrementer after body but before the back-edge).
func (s *State) bindForStatement(n ast.NodeIndex) {
	data, ok := s.Arena.GetForStatement(n)
	if !ok {
		return
	}
	loopScope := false
	if data.Initializer != ast.NoNode {
		if thin, ok := s.Arena.Get(data.Initializer); ok && thin.Kind == token.VariableDeclarationList {
			s.pushScope(symbol.ScopeBlock, ast.NoNode) // transient; for-loop let/const live only in the loop
			loopScope = true
			s.bindVariableDeclarationList(data.Initializer)
		} else {
			s.bindExpression(data.Initializer)
		}
	}
	pre := s.currentFlow
	label := s.Flow.Label(flow.FlagLoopLabel)
	s.Flow.AddAntecedent(label, pre)
	s.currentFlow = label

	var exit flow.Id
	if data.Condition != ast.NoNode {
		s.bindExpression(data.Condition)
		bodyStart := s.Flow.New(flow.FlagTrueCondition, data.Condition, s.currentFlow)
		exit = s.Flow.New(flow.FlagFalseCondition, data.Condition, s.currentFlow)
		s.currentFlow = bodyStart
	} else {
		exit = s.Flow.Label(flow.FlagBranchLabel) // `for(;;)`: exit only reachable via break
	}

	s.pushLoop(atom.None, exit)
	s.bindStatement(data.Statement)
	s.popLoop()

	if data.Incrementor != ast.NoNode {
		s.bindExpression(data.Incrementor)
	}
	s.Flow.AddAntecedent(label, s.currentFlow) // back-edge

	if node, _ := s.Flow.Get(exit); len(node.Antecedent) == 0 {
		s.currentFlow = flow.Unreachable
	} else {
		s.currentFlow = exit
	}
	if loopScope {
		s.popScope()
	}
}

// bindForInOfStatement implements the for-in/for-of contract: the iteration
// variable's position receives an ASSIGNMENT flow each trip.
func (s *State) bindForInOfStatement(n ast.NodeIndex, isOf bool) {
	data, ok := s.Arena.GetForInOf(n)
	if !ok {
		return
	}
	s.bindExpression(data.Expression)
	pre := s.currentFlow
	label := s.Flow.Label(flow.FlagLoopLabel)
	s.Flow.AddAntecedent(label, pre)
	s.currentFlow = label

	if data.Initializer != ast.NoNode {
		if thin, ok := s.Arena.Get(data.Initializer); ok && thin.Kind == token.VariableDeclarationList {
			declList, ok := s.Arena.GetVariableDeclarationList(data.Initializer)
			if ok {
				isBlockScoped := thin.Flags.Has(token.FlagLet) || thin.Flags.Has(token.FlagConst)
				for _, d := range declList.Declarations.Nodes {
					decl, ok := s.Arena.GetVariableDeclaration(d)
					if !ok {
						continue
					}
					if isBlockScoped {
						s.declareBindingNames(decl.Name, symbol.FlagBlockScopedVariable)
					}
					s.recordAssignmentFlow(decl.Name)
				}
			}
		} else {
			s.recordAssignmentFlow(data.Initializer)
		}
	}

	exit := s.Flow.New(flow.FlagFalseCondition, data.Expression, s.currentFlow)
	s.pushLoop(atom.None, exit)
	s.bindStatement(data.Statement)
	s.popLoop()
	s.Flow.AddAntecedent(label, s.currentFlow) // back-edge
	s.currentFlow = exit
}

// bindSwitchStatement implements the switch contract: each clause receives
// a SWITCH_CLAUSE flow node linked to pre and, on fallthrough, to the
// previous clause's flow. switch_clause_to_switch records the owning
// switch for later lookup.
func (s *State) bindSwitchStatement(n ast.NodeIndex) {
	data, ok := s.Arena.GetSwitchStatement(n)
	if !ok {
		return
	}
	s.bindExpression(data.Expression)
	pre := s.currentFlow
	cb, ok := s.Arena.GetCaseBlock(data.CaseBlock)
	if !ok {
		return
	}

	exit := s.Flow.Label(flow.FlagBranchLabel)
	s.pushLoop(atom.None, exit) // `break` inside switch targets exit
	var prevFlow flow.Id
	fellThrough := false
	for _, clause := range cb.Clauses.Nodes {
		s.SwitchClauseToSwitch[clause] = n
		clauseFlow := s.Flow.New(flow.FlagSwitchClause, clause, pre)
		if fellThrough {
			s.Flow.AddAntecedent(clauseFlow, prevFlow)
		}
		cc, ok := s.Arena.GetCaseClause(clause)
		if !ok {
			continue
		}
		if cc.Expression != ast.NoNode {
			s.bindExpression(cc.Expression)
		}
		s.currentFlow = clauseFlow
		for _, st := range cc.Statements.Nodes {
			s.bindStatement(st)
		}
		prevFlow = s.currentFlow
		fellThrough = !s.endsWithTerminator(cc.Statements.Nodes)
	}
	if fellThrough {
		s.Flow.AddAntecedent(exit, prevFlow)
	}
	s.popLoop()
	s.currentFlow = exit
}

// endsWithTerminator reports whether the last statement in stmts is a
// break/return/throw/continue, i.e. the clause does not fall through.
func (s *State) endsWithTerminator(stmts []ast.NodeIndex) bool {
	if len(stmts) == 0 {
		return false
	}
	thin, ok := s.Arena.Get(stmts[len(stmts)-1])
	if !ok {
		return false
	}
	switch thin.Kind {
	case token.BreakStatement, token.ReturnStatement, token.ThrowStatement, token.ContinueStatement:
		return true
	}
	return false
}

// bindTryStatement implements the try/catch/finally contract: try-block
// runs from pre; catch starts from pre (any point in try may throw); both
// join at a BRANCH_LABEL; finally runs from the join.
func (s *State) bindTryStatement(n ast.NodeIndex) {
	data, ok := s.Arena.GetTryStatement(n)
	if !ok {
		return
	}
	pre := s.currentFlow
	s.bindStatement(data.TryBlock)
	afterTry := s.currentFlow

	afterCatch := pre
	if data.CatchClause != ast.NoNode {
		cc, ok := s.Arena.GetCatchClause(data.CatchClause)
		if ok {
			s.currentFlow = pre
			scope := s.pushScope(symbol.ScopeBlock, data.CatchClause)
			if cc.Parameter != ast.NoNode {
				if sc, ok := s.Scopes.Get(scope); ok {
					if name := s.identifierAtom(cc.Parameter); name != atom.None {
						s.declareSymbol(sc.Table, name, symbol.FlagBlockScopedVariable, cc.Parameter)
					}
				}
			}
			s.bindStatement(cc.Block)
			s.popScope()
			afterCatch = s.currentFlow
		}
	}

	join := s.Flow.Label(flow.FlagBranchLabel)
	s.Flow.AddAntecedent(join, afterTry)
	s.Flow.AddAntecedent(join, afterCatch)
	s.currentFlow = join

	if data.FinallyBlock != ast.NoNode {
		s.bindStatement(data.FinallyBlock)
	}
}

func (s *State) bindLabeledStatement(n ast.NodeIndex) {
	data, ok := s.Arena.GetLabeledStatement(n)
	if !ok {
		return
	}
	s.bindStatement(data.Statement)
}

func (s *State) bindBreakOrContinue(n ast.NodeIndex, isContinue bool) {
	if _, ok := s.Arena.GetBreakOrContinueLabel(n); ok {
		// label target resolution across labeled statements is left to the
		// checker; the flow effect here is the same either way: the
		// current straight-line path ends.
	}
	if len(s.loopStack) > 0 {
		top := s.loopStack[len(s.loopStack)-1]
		if isContinue {
			s.Flow.AddAntecedent(top.continueTo, s.currentFlow)
		} else {
			s.Flow.AddAntecedent(top.breakFlow, s.currentFlow)
		}
	}
	s.currentFlow = flow.Unreachable
}

func (s *State) pushLoop(label atom.Atom, exitOrContinue flow.Id) {
	s.loopStack = append(s.loopStack, loopContext{label: label, breakFlow: exitOrContinue, continueTo: exitOrContinue})
}

func (s *State) popLoop() {
	s.loopStack = s.loopStack[:len(s.loopStack)-1]
}
