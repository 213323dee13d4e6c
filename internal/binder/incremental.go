package binder

import (
	"github.com/mohsen1/tsz-sub013/internal/ast"
	"github.com/mohsen1/tsz-sub013/internal/flow"
)

// BindSourceFileIncremental rebinds only the reparsed suffix of a source
// file (spec.md §4.4.3). prefix and oldSuffix are the previous top-level
// statement lists either side of reparseStart; newSuffix is what the
// parser produced in their place. The prefix's binder output (symbols,
// flow, scopes) is left untouched except where the old suffix's
// declarations must be unwound.
func (s *State) BindSourceFileIncremental(prefix, oldSuffix, newSuffix []ast.NodeIndex, reparseStart uint32) {
	anchor := s.incrementalAnchor(prefix)

	s.prunePosAtOrAfter(reparseStart)
	s.unwindStaleDeclarations(prefix, oldSuffix, reparseStart)

	s.currentFlow = anchor
	s.scopeStack = append(s.scopeStack, s.RootScope)
	s.bindStatementListHoisted(newSuffix, s.RootScope)
	s.popScope()
}

// incrementalAnchor finds the flow node the new suffix's binding continues
// from: top_level_flow of the last prefix statement, or a fresh START if
// the prefix is empty (reparse from the top of the file).
func (s *State) incrementalAnchor(prefix []ast.NodeIndex) flow.Id {
	if len(prefix) == 0 {
		return s.Flow.New(flow.FlagStart, ast.NoNode)
	}
	last := prefix[len(prefix)-1]
	if id, ok := s.TopLevelFlow[last]; ok {
		return id
	}
	return s.Flow.New(flow.FlagStart, ast.NoNode)
}

// prunePosAtOrAfter drops node_flow, node_scope_ids, and
// switch_clause_to_switch entries whose backing node starts at or after
// reparseStart (spec.md §4.4.3).
func (s *State) prunePosAtOrAfter(reparseStart uint32) {
	stale := func(n ast.NodeIndex) bool {
		node, ok := s.Arena.Get(n)
		return ok && node.Pos >= reparseStart
	}
	for n := range s.NodeFlow {
		if stale(n) {
			delete(s.NodeFlow, n)
		}
	}
	for n := range s.ReferenceScope {
		if stale(n) {
			delete(s.ReferenceScope, n)
		}
	}
	for n := range s.NodeScopeIds {
		if stale(n) {
			delete(s.NodeScopeIds, n)
		}
	}
	for clause := range s.SwitchClauseToSwitch {
		if stale(clause) {
			delete(s.SwitchClauseToSwitch, clause)
		}
	}
	for n := range s.TopLevelFlow {
		if stale(n) {
			delete(s.TopLevelFlow, n)
		}
	}
}

// unwindStaleDeclarations removes file-scope symbols the old suffix
// declared unless the prefix also declares that name, popping the old
// suffix's declaration nodes from symbols that survive via the prefix and
// fixing up value_declaration when it pointed at a removed declaration.
func (s *State) unwindStaleDeclarations(prefix, oldSuffix []ast.NodeIndex, reparseStart uint32) {
	root, ok := s.Scopes.Get(s.RootScope)
	if !ok || root.Table == nil {
		return
	}
	// The position-based scan below drops exactly the declarations the old
	// suffix introduced (Pos >= reparseStart) while leaving any prefix
	// declaration of the same name (Pos < reparseStart) in place — which is
	// precisely "declared by the old suffix unless re-declared by the
	// prefix" without needing prefix/oldSuffix as explicit node sets.

	for _, name := range root.Table.Names() {
		id, ok := root.Table.Get(name)
		if !ok {
			continue
		}
		sym := s.Symbols.Get(id)
		if sym == nil {
			continue
		}
		kept := sym.Declarations[:0:0]
		valueDeclStale := false
		for _, decl := range sym.Declarations {
			node, ok := s.Arena.Get(decl)
			if ok && node.Pos >= reparseStart {
				delete(s.NodeSymbols, decl)
				if decl == sym.ValueDeclaration {
					valueDeclStale = true
				}
				continue
			}
			kept = append(kept, decl)
		}
		sym.Declarations = kept

		if len(kept) == 0 {
			root.Table.Delete(name)
		}
		if valueDeclStale {
			sym.ValueDeclaration = ast.NoNode
			for _, decl := range kept {
				sym.ValueDeclaration = decl
				break
			}
		}
	}
}
