package binder

import (
	"github.com/mohsen1/tsz-sub013/internal/ast"
	"github.com/mohsen1/tsz-sub013/internal/atom"
	"github.com/mohsen1/tsz-sub013/internal/symbol"
	"github.com/mohsen1/tsz-sub013/internal/token"
)

// hoistEntry is one pending hoisted declaration discovered by
// collectHoistable, bound once the real walk reaches the enclosing
// function/file scope (spec.md §4.4.1 "Hoisting").
type hoistEntry struct {
	decl ast.NodeIndex
	fn   bool // true: function declaration (FUNCTION); false: var name (FUNCTION_SCOPED_VARIABLE)
}

// collectHoistable scans stmts for (a) function declarations and (b)
// var-declared names, including those nested in blocks, loops, and
// if-branches, without descending into nested function/class bodies (those
// hoist into their own scope when bound).
func (s *State) collectHoistable(stmts []ast.NodeIndex) []hoistEntry {
	var out []hoistEntry
	for _, stmt := range stmts {
		s.collectHoistableFrom(stmt, &out)
	}
	return out
}

func (s *State) collectHoistableFrom(n ast.NodeIndex, out *[]hoistEntry) {
	node, ok := s.Arena.Get(n)
	if !ok {
		return
	}
	switch node.Kind {
	case token.FunctionDeclaration:
		*out = append(*out, hoistEntry{decl: n, fn: true})
	case token.VariableStatement:
		declListNode, ok := s.Arena.GetSimpleStatement(n)
		if !ok {
			return
		}
		declListThin, ok := s.Arena.Get(declListNode)
		if !ok || declListThin.Flags.Has(token.FlagLet) || declListThin.Flags.Has(token.FlagConst) {
			return // let/const are block-scoped, bound at their declaration point
		}
		declList, ok := s.Arena.GetVariableDeclarationList(declListNode)
		if !ok {
			return
		}
		for _, d := range declList.Declarations.Nodes {
			decl, ok := s.Arena.GetVariableDeclaration(d)
			if !ok {
				continue
			}
			s.collectHoistableNames(decl.Name, out)
		}
	case token.Block:
		block, ok := s.Arena.GetBlock(n)
		if !ok {
			return
		}
		for _, child := range block.Nodes {
			s.collectHoistableFrom(child, out)
		}
	case token.IfStatement:
		ifStmt, ok := s.Arena.GetIfStatement(n)
		if !ok {
			return
		}
		s.collectHoistableFrom(ifStmt.ThenStatement, out)
		s.collectHoistableFrom(ifStmt.ElseStatement, out)
	case token.WhileStatement, token.DoStatement:
		wl, ok := s.Arena.GetWhileLike(n)
		if !ok {
			return
		}
		s.collectHoistableFrom(wl.Statement, out)
	case token.ForStatement:
		fs, ok := s.Arena.GetForStatement(n)
		if !ok {
			return
		}
		s.collectHoistableVarInit(fs.Initializer, out)
		s.collectHoistableFrom(fs.Statement, out)
	case token.ForInStatement, token.ForOfStatement:
		f, ok := s.Arena.GetForInOf(n)
		if !ok {
			return
		}
		s.collectHoistableVarInit(f.Initializer, out)
		s.collectHoistableFrom(f.Statement, out)
	case token.TryStatement:
		ts, ok := s.Arena.GetTryStatement(n)
		if !ok {
			return
		}
		s.collectHoistableFrom(ts.TryBlock, out)
		if ts.CatchClause != ast.NoNode {
			if cc, ok := s.Arena.GetCatchClause(ts.CatchClause); ok {
				s.collectHoistableFrom(cc.Block, out)
			}
		}
		s.collectHoistableFrom(ts.FinallyBlock, out)
	case token.SwitchStatement:
		sw, ok := s.Arena.GetSwitchStatement(n)
		if !ok {
			return
		}
		cb, ok := s.Arena.GetCaseBlock(sw.CaseBlock)
		if !ok {
			return
		}
		for _, clause := range cb.Clauses.Nodes {
			cc, ok := s.Arena.GetCaseClause(clause)
			if !ok {
				continue
			}
			for _, st := range cc.Statements.Nodes {
				s.collectHoistableFrom(st, out)
			}
		}
	case token.LabeledStatement:
		ls, ok := s.Arena.GetLabeledStatement(n)
		if !ok {
			return
		}
		s.collectHoistableFrom(ls.Statement, out)
	}
}

// collectHoistableVarInit handles a `for (var x ...; ...)` initializer,
// which is a VariableDeclarationList node directly, not a VariableStatement.
func (s *State) collectHoistableVarInit(n ast.NodeIndex, out *[]hoistEntry) {
	if n == ast.NoNode {
		return
	}
	thin, ok := s.Arena.Get(n)
	if !ok || thin.Kind != token.VariableDeclarationList || thin.Flags.Has(token.FlagLet) || thin.Flags.Has(token.FlagConst) {
		return
	}
	declList, ok := s.Arena.GetVariableDeclarationList(n)
	if !ok {
		return
	}
	for _, d := range declList.Declarations.Nodes {
		decl, ok := s.Arena.GetVariableDeclaration(d)
		if !ok {
			continue
		}
		s.collectHoistableNames(decl.Name, out)
	}
}

// collectHoistableNames records every bound name reachable from a binding
// target, descending through object/array destructuring patterns.
func (s *State) collectHoistableNames(name ast.NodeIndex, out *[]hoistEntry) {
	thin, ok := s.Arena.Get(name)
	if !ok {
		return
	}
	switch thin.Kind {
	case token.Identifier:
		*out = append(*out, hoistEntry{decl: name, fn: false})
	case token.ObjectBindingPattern, token.ArrayBindingPattern:
		pattern, ok := s.Arena.GetBindingPattern(name)
		if !ok {
			return
		}
		for _, el := range pattern.Elements.Nodes {
			be, ok := s.Arena.GetBindingElement(el)
			if !ok {
				continue
			}
			s.collectHoistableNames(be.Name, out)
		}
	}
}

// bindHoisted declares every collected hoist entry into the given
// function/file scope's table, before the real statement walk runs.
func (s *State) bindHoisted(scope symbol.ScopeId, entries []hoistEntry) {
	sc, ok := s.Scopes.Get(scope)
	if !ok {
		return
	}
	for _, e := range entries {
		if e.fn {
			fn, ok := s.Arena.GetFunctionLike(e.decl)
			if !ok || fn.Name == ast.NoNode {
				continue
			}
			name := s.identifierAtom(fn.Name)
			if name == atom.None {
				continue
			}
			s.declareSymbol(sc.Table, name, symbol.FlagFunction, e.decl)
		} else {
			name := s.identifierAtom(e.decl)
			if name == atom.None {
				continue
			}
			s.declareSymbol(sc.Table, name, symbol.FlagFunctionScopedVariable, e.decl)
		}
	}
}
