// Package binder implements the two-pass binder (spec.md §4.4): symbol
// table construction and control-flow graph construction folded into one
// AST walk, plus incremental rebinding, validation, and lib merging.
package binder

import (
	"github.com/mohsen1/tsz-sub013/internal/ast"
	"github.com/mohsen1/tsz-sub013/internal/atom"
	"github.com/mohsen1/tsz-sub013/internal/diagnostic"
	"github.com/mohsen1/tsz-sub013/internal/flow"
	"github.com/mohsen1/tsz-sub013/internal/symbol"
)

// ModuleSpecifier is the textual import/export specifier naming a module
// ("./foo", "react", ...).
type ModuleSpecifier string

// ReexportTarget names where a re-exported name ultimately comes from
// (spec.md §3.7 "exportedName -> (sourceModule, originalName?)").
type ReexportTarget struct {
	SourceModule ModuleSpecifier
	OriginalName atom.Atom // atom.None when the re-export keeps the same name
}

// SwitchClauseLink records which switch statement a case/default clause
// belongs to, for switch_clause_to_switch lookups (spec.md §4.4.2).
type SwitchClauseLink struct {
	Clause ast.NodeIndex
	Switch ast.NodeIndex
}

// State is everything one compilation unit's bind pass produces: the
// symbol/scope/flow arenas plus the external maps spec.md §3.7 names.
type State struct {
	Arena *ast.Arena

	Symbols *symbol.Arena
	Scopes  *symbol.ScopeArena
	Flow    *flow.Arena

	FileLocals  *symbol.Table
	RootScope   symbol.ScopeId
	Diagnostics *diagnostic.Bag

	// node_symbols: declaration and alias-bearing nodes.
	NodeSymbols map[ast.NodeIndex]symbol.Id
	// node_flow: the flow node active at each reference-bearing expression.
	NodeFlow map[ast.NodeIndex]flow.Id
	// top_level_flow: the flow node after each top-level statement.
	TopLevelFlow map[ast.NodeIndex]flow.Id
	// node_scope_ids: the scope active at a node, for incremental pruning.
	NodeScopeIds map[ast.NodeIndex]symbol.ScopeId
	// ReferenceScope records the innermost scope active at each
	// reference-bearing identifier, the starting point resolve_identifier
	// walks outward from (spec.md §4.4.1).
	ReferenceScope map[ast.NodeIndex]symbol.ScopeId

	// module_exports: exports of each module this compilation unit binds.
	ModuleExports map[ModuleSpecifier]*symbol.Table
	// reexports: module -> exported name -> target.
	Reexports map[ModuleSpecifier]map[string]ReexportTarget
	// global_augmentations: interface/type decls inside `declare global {}`.
	GlobalAugmentations map[atom.Atom][]ast.NodeIndex
	// declared_modules: ambient `declare module "x" {}` names.
	DeclaredModules map[ModuleSpecifier]struct{}

	// switch_clause_to_switch: case/default clause -> owning switch statement.
	SwitchClauseToSwitch map[ast.NodeIndex]ast.NodeIndex

	// LibBinders retains prior lib binder states for fallback lookup at
	// resolve time (spec.md §4.4.5).
	LibBinders []*State
	// SymbolArenas records, per lib-merged symbol, which arena it was
	// declared in (for cross-file navigation after a lib merge).
	SymbolArenas map[symbol.Id]*ast.Arena

	// CurrentModule is the specifier this compilation unit is bound as,
	// used to key ModuleExports/Reexports/DeclaredModules entries it
	// populates. Empty for a non-module script file.
	CurrentModule ModuleSpecifier

	// EntryFlow is the START flow node Bind allocates before walking the
	// source file, the entry point a definite-assignment run over this
	// file's top level starts from.
	EntryFlow flow.Id

	// insideDeclareGlobal is a context flag (spec.md §4.4.1): true while
	// walking the body of a `declare global { ... }` block, which changes
	// how interface/type declarations bind (into GlobalAugmentations, and
	// without creating a namespace-local symbol for the block itself).
	insideDeclareGlobal bool

	// scopeStack is the legacy hoisting-order stack, parallel to the
	// persistent Scopes vector (spec.md §4.4.1 "A stack of scope frames
	// parallels the AST walk"). Kept separate from ScopeArena per
	// SPEC_FULL's open-question decision: the stack's hoisting-order
	// sensitivity and the tree's random-access resolution are genuinely
	// different access patterns.
	scopeStack []symbol.ScopeId

	currentFlow flow.Id

	// loopStack supports break/continue flow wiring; entries are pushed
	// only around loop and switch bodies (labeled statements push none).
	loopStack []loopContext
}

type loopContext struct {
	label      atom.Atom // atom.None for an unlabeled loop
	breakFlow  flow.Id   // flow id `break`/labeled-break jumps merge into
	continueTo flow.Id   // flow id `continue`/labeled-continue jumps to
}

// New creates a fresh binder State for one source file's Arena.
func New(a *ast.Arena, module ModuleSpecifier) *State {
	s := &State{
		Arena:                a,
		Symbols:              symbol.NewArena(),
		Scopes:               symbol.NewScopeArena(),
		Flow:                 flow.NewArena(),
		FileLocals:           symbol.NewTable(),
		Diagnostics:          &diagnostic.Bag{},
		NodeSymbols:          make(map[ast.NodeIndex]symbol.Id),
		NodeFlow:             make(map[ast.NodeIndex]flow.Id),
		TopLevelFlow:         make(map[ast.NodeIndex]flow.Id),
		NodeScopeIds:         make(map[ast.NodeIndex]symbol.ScopeId),
		ReferenceScope:       make(map[ast.NodeIndex]symbol.ScopeId),
		ModuleExports:        make(map[ModuleSpecifier]*symbol.Table),
		Reexports:            make(map[ModuleSpecifier]map[string]ReexportTarget),
		GlobalAugmentations:  make(map[atom.Atom][]ast.NodeIndex),
		DeclaredModules:      make(map[ModuleSpecifier]struct{}),
		SwitchClauseToSwitch: make(map[ast.NodeIndex]ast.NodeIndex),
		SymbolArenas:         make(map[symbol.Id]*ast.Arena),
		CurrentModule:        module,
	}
	return s
}

func (s *State) pushScope(kind symbol.ScopeKind, node ast.NodeIndex) symbol.ScopeId {
	parent := symbol.NoScope
	if len(s.scopeStack) > 0 {
		parent = s.scopeStack[len(s.scopeStack)-1]
	}
	id := s.Scopes.New(parent, kind, node)
	s.scopeStack = append(s.scopeStack, id)
	if node != ast.NoNode {
		s.NodeScopeIds[node] = id
	}
	return id
}

func (s *State) popScope() symbol.ScopeId {
	id := s.scopeStack[len(s.scopeStack)-1]
	s.scopeStack = s.scopeStack[:len(s.scopeStack)-1]
	return id
}

func (s *State) currentScope() symbol.ScopeId {
	if len(s.scopeStack) == 0 {
		return symbol.NoScope
	}
	return s.scopeStack[len(s.scopeStack)-1]
}

// funcOrFileScope returns the innermost enclosing scope that is a
// function, module, or source-file scope, i.e. where `var` hoists to.
func (s *State) funcOrFileScope() symbol.ScopeId {
	for i := len(s.scopeStack) - 1; i >= 0; i-- {
		if scope, ok := s.Scopes.Get(s.scopeStack[i]); ok {
			switch scope.Kind {
			case symbol.ScopeFunction, symbol.ScopeModule, symbol.ScopeSourceFile:
				return s.scopeStack[i]
			}
		}
	}
	return s.RootScope
}
