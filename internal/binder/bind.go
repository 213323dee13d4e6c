package binder

import (
	"github.com/mohsen1/tsz-sub013/internal/ast"
	"github.com/mohsen1/tsz-sub013/internal/atom"
	"github.com/mohsen1/tsz-sub013/internal/flow"
	"github.com/mohsen1/tsz-sub013/internal/symbol"
	"github.com/mohsen1/tsz-sub013/internal/token"
)

// mutableArrayMethods is the hard-coded name set spec.md's §4.4.2/§9 calls
// out: a call to one of these (resolved or not) inserts an ARRAY_MUTATION
// flow in addition to the CALL flow, per the Open Question's "yes, to
// preserve narrowing safety" resolution.
var mutableArrayMethods = map[string]bool{
	"copyWithin": true, "fill": true, "pop": true, "push": true,
	"reverse": true, "shift": true, "sort": true, "splice": true, "unshift": true,
}

// Bind runs the two-pass binder over a freshly parsed source file,
// producing a fully populated State (spec.md §4.4).
func Bind(a *ast.Arena, sourceFile ast.NodeIndex, module ModuleSpecifier) *State {
	s := New(a, module)
	s.RootScope = s.pushScope(symbol.ScopeSourceFile, sourceFile)
	if root, ok := s.Scopes.Get(s.RootScope); ok {
		s.FileLocals = root.Table
	}

	startFlow := s.Flow.New(flow.FlagStart, ast.NoNode)
	s.currentFlow = startFlow
	s.EntryFlow = startFlow

	sf, ok := a.GetSourceFile(sourceFile)
	if !ok {
		s.popScope()
		return s
	}

	s.bindStatementListHoisted(sf.Statements.Nodes, s.RootScope)
	s.popScope()
	return s
}

// bindStatementListHoisted hoists function/var declarations into scope's
// table, then walks every statement in order, recording top_level_flow
// after each one directly under the source-file scope (spec.md §4.4.1,
// §4.4.3's incremental-rebind anchor requirement).
func (s *State) bindStatementListHoisted(stmts []ast.NodeIndex, scope symbol.ScopeId) {
	entries := s.collectHoistable(stmts)
	s.bindHoisted(scope, entries)
	topLevel := scope == s.RootScope
	for _, stmt := range stmts {
		s.bindStatement(stmt)
		if topLevel {
			s.TopLevelFlow[stmt] = s.currentFlow
			s.maybeMarkExportedStatement(stmt)
		}
	}
}

// maybeMarkExportedStatement marks every name a top-level declaration with
// an `export` modifier introduces as exported (spec.md §3.4 "is_exported"),
// covering the direct-modifier export forms (`export const x`, `export
// function f() {}`, ...) as opposed to `export { ... }` declarations,
// which bindExportDeclaration handles directly.
func (s *State) maybeMarkExportedStatement(stmt ast.NodeIndex) {
	node, ok := s.Arena.Get(stmt)
	if !ok || !node.Flags.Has(token.FlagExport) {
		return
	}
	switch node.Kind {
	case token.VariableStatement:
		declListNode, ok := s.Arena.GetSimpleStatement(stmt)
		if !ok {
			return
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
			s.markExportedNames(decl.Name)
		}
	case token.FunctionDeclaration:
		if fn, ok := s.Arena.GetFunctionLike(stmt); ok {
			s.markExported(fn.Name)
		}
	case token.ClassDeclaration:
		if cl, ok := s.Arena.GetClassLike(stmt); ok {
			s.markExported(cl.Name)
		}
	case token.InterfaceDeclaration:
		if iface, ok := s.Arena.GetInterfaceDeclaration(stmt); ok {
			s.markExported(iface.Name)
		}
	case token.TypeAliasDeclaration:
		if ta, ok := s.Arena.GetTypeAliasDeclaration(stmt); ok {
			s.markExported(ta.Name)
		}
	case token.EnumDeclaration:
		if en, ok := s.Arena.GetEnumDeclaration(stmt); ok {
			s.markExported(en.Name)
		}
	case token.ModuleDeclaration:
		if mod, ok := s.Arena.GetModuleDeclaration(stmt); ok {
			for _, seg := range s.flattenQualifiedName(mod.Name) {
				s.markExported(seg)
			}
		}
	}
}

// markExportedNames marks every simple identifier in a (possibly
// destructured) binding target as exported.
func (s *State) markExportedNames(name ast.NodeIndex) {
	thin, ok := s.Arena.Get(name)
	if !ok {
		return
	}
	switch thin.Kind {
	case token.Identifier:
		s.markExported(name)
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
			s.markExportedNames(be.Name)
		}
	}
}

// bindStatement dispatches on a statement/declaration node's kind.
func (s *State) bindStatement(n ast.NodeIndex) {
	if n == ast.NoNode {
		return
	}
	node, ok := s.Arena.Get(n)
	if !ok {
		return
	}
	switch node.Kind {
	case token.EmptyStatement, token.DebuggerStatement:
		// no-op
	case token.Block:
		s.bindBlock(n)
	case token.VariableStatement:
		s.bindVariableStatement(n)
	case token.ExpressionStatement:
		if expr, ok := s.Arena.GetSimpleStatement(n); ok {
			s.bindExpression(expr)
		}
	case token.IfStatement:
		s.bindIfStatement(n)
	case token.WhileStatement:
		s.bindWhileStatement(n, false)
	case token.DoStatement:
		s.bindWhileStatement(n, true)
	case token.ForStatement:
		s.bindForStatement(n)
	case token.ForInStatement, token.ForOfStatement:
		s.bindForInOfStatement(n, node.Kind == token.ForOfStatement)
	case token.ReturnStatement, token.ThrowStatement:
		if expr, ok := s.Arena.GetSimpleStatement(n); ok && expr != ast.NoNode {
			s.bindExpression(expr)
		}
		s.currentFlow = flow.Unreachable
	case token.BreakStatement, token.ContinueStatement:
		s.bindBreakOrContinue(n, node.Kind == token.ContinueStatement)
	case token.SwitchStatement:
		s.bindSwitchStatement(n)
	case token.TryStatement:
		s.bindTryStatement(n)
	case token.LabeledStatement:
		s.bindLabeledStatement(n)
	case token.FunctionDeclaration:
		s.bindFunctionDeclaration(n)
	case token.ClassDeclaration:
		s.bindClassLike(n, symbol.FlagClass)
	case token.InterfaceDeclaration:
		s.bindInterfaceDeclaration(n, node.Flags)
	case token.TypeAliasDeclaration:
		s.bindTypeAliasDeclaration(n, node.Flags)
	case token.EnumDeclaration:
		s.bindEnumDeclaration(n, node.Flags)
	case token.ModuleDeclaration:
		s.bindModuleDeclaration(n, node.Flags)
	case token.ImportDeclaration:
		s.bindImportDeclaration(n)
	case token.ImportEqualsDeclaration:
		s.bindImportEqualsDeclaration(n, node.Flags)
	case token.ExportDeclaration:
		s.bindExportDeclaration(n)
	case token.ExportAssignment:
		s.bindExportAssignment(n)
	default:
		// Expression used as a statement in recovered/unusual positions.
		s.bindExpression(n)
	}
}

func (s *State) bindBlock(n ast.NodeIndex) {
	block, ok := s.Arena.GetBlock(n)
	if !ok {
		return
	}
	scope := s.pushScope(symbol.ScopeBlock, n)
	// Block-scoped function declarations (ES2015 Annex B) additionally bind
	// directly in the block's own table; var/function hoisting to the
	// enclosing function/file scope already happened at the outer call.
	for _, stmt := range block.Nodes {
		if thin, ok := s.Arena.Get(stmt); ok && thin.Kind == token.FunctionDeclaration {
			if fn, ok := s.Arena.GetFunctionLike(stmt); ok && fn.Name != ast.NoNode {
				if sc, ok := s.Scopes.Get(scope); ok {
					if name := s.identifierAtom(fn.Name); name != atom.None {
						s.declareSymbol(sc.Table, name, symbol.FlagFunction, fn.Name)
					}
				}
			}
		}
	}
	for _, stmt := range block.Nodes {
		s.bindStatement(stmt)
	}
	s.popScope()
}

func (s *State) bindVariableStatement(n ast.NodeIndex) {
	declListNode, ok := s.Arena.GetSimpleStatement(n)
	if !ok {
		return
	}
	s.bindVariableDeclarationList(declListNode)
}

func (s *State) bindVariableDeclarationList(declListNode ast.NodeIndex) {
	thin, ok := s.Arena.Get(declListNode)
	if !ok {
		return
	}
	declList, ok := s.Arena.GetVariableDeclarationList(declListNode)
	if !ok {
		return
	}
	isBlockScoped := thin.Flags.Has(token.FlagLet) || thin.Flags.Has(token.FlagConst)
	for _, d := range declList.Declarations.Nodes {
		decl, ok := s.Arena.GetVariableDeclaration(d)
		if !ok {
			continue
		}
		if isBlockScoped {
			s.declareBindingNames(decl.Name, symbol.FlagBlockScopedVariable)
		}
		if decl.Initializer != ast.NoNode {
			s.bindExpression(decl.Initializer)
			s.recordAssignmentFlow(decl.Name)
		}
	}
}

// declareBindingNames binds every name in a (possibly destructured)
// binding target into the current scope's table.
func (s *State) declareBindingNames(name ast.NodeIndex, flags symbol.Flags) {
	thin, ok := s.Arena.Get(name)
	if !ok {
		return
	}
	switch thin.Kind {
	case token.Identifier:
		atomName := s.identifierAtom(name)
		if atomName == atom.None {
			return
		}
		sc, ok := s.Scopes.Get(s.currentScope())
		if !ok {
			return
		}
		s.declareSymbol(sc.Table, atomName, flags, name)
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
			s.declareBindingNames(be.Name, flags)
			if be.Initializer != ast.NoNode {
				s.bindExpression(be.Initializer)
			}
		}
	}
}

// recordAssignmentFlow inserts an ASSIGNMENT flow node for each simple
// identifier target in name (spec.md §4.4.2 "insert ASSIGNMENT flow after
// the RHS").
func (s *State) recordAssignmentFlow(name ast.NodeIndex) {
	thin, ok := s.Arena.Get(name)
	if !ok {
		return
	}
	switch thin.Kind {
	case token.Identifier:
		s.currentFlow = s.Flow.New(flow.FlagAssignment, name, s.currentFlow)
		s.NodeFlow[name] = s.currentFlow
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
			s.recordAssignmentFlow(be.Name)
		}
	}
}
