package binder

import (
	"github.com/mohsen1/tsz-sub013/internal/ast"
	"github.com/mohsen1/tsz-sub013/internal/atom"
	"github.com/mohsen1/tsz-sub013/internal/symbol"
)

// ResolveIdentifier resolves a reference-bearing identifier node within this
// compilation unit alone (spec.md §4.4.1 steps 1-4): innermost scope, then
// parent scopes, then file-locals, then lib-binder file-locals. It does not
// chase ALIAS symbols across module boundaries — that requires the other
// files' bound state and is Program.ResolveIdentifier's job.
func (s *State) ResolveIdentifier(n ast.NodeIndex) (symbol.Id, bool) {
	name := s.identifierAtom(n)
	if name == atom.None {
		return symbol.NoSymbol, false
	}
	if scope, ok := s.ReferenceScope[n]; ok {
		for cur := scope; cur != symbol.NoScope; {
			sc, ok := s.Scopes.Get(cur)
			if !ok {
				break
			}
			if sc.Table != nil {
				if id, ok := sc.Table.Get(name); ok {
					return id, true
				}
			}
			cur = sc.Parent
		}
	}
	if s.FileLocals != nil {
		if id, ok := s.FileLocals.Get(name); ok {
			return id, true
		}
	}
	for _, lib := range s.LibBinders {
		if lib.FileLocals == nil {
			continue
		}
		if id, ok := lib.FileLocals.Get(name); ok {
			return id, true
		}
	}
	return symbol.NoSymbol, false
}

// Program is a reconciled view over every compilation unit's bound State,
// keyed by the module specifier each file was bound as. It is what
// Program.ResolveIdentifier needs to follow an ALIAS symbol's import_module
// across files, per spec.md §4.4.1's final clause and §5's "serial
// reconciliation pass" note.
type Program struct {
	Files map[ModuleSpecifier]*State
}

// NewProgram reconciles a set of independently bound files into a Program
// keyed by each file's own CurrentModule.
func NewProgram(states []*State) *Program {
	p := &Program{Files: make(map[ModuleSpecifier]*State, len(states))}
	for _, st := range states {
		if st.CurrentModule != "" {
			p.Files[st.CurrentModule] = st
		}
	}
	return p
}

// reexportKey identifies one step of a reexport chain, for cycle detection
// in wildcard chains (spec.md §4.4.1: "implementations detect cycles and
// return None").
type reexportKey struct {
	module ModuleSpecifier
	name   atom.Atom
}

// ResolveIdentifier resolves use-site node n, which lives in the file bound
// as module, to its ultimate target symbol: scope-chain resolution within
// that file, then — if the result is an ALIAS — following module_exports
// and reexports (named first, then wildcard) across files until a
// non-alias symbol or a dead end is found.
func (p *Program) ResolveIdentifier(module ModuleSpecifier, n ast.NodeIndex) (symbol.Id, *State, bool) {
	file, ok := p.Files[module]
	if !ok {
		return symbol.NoSymbol, nil, false
	}
	id, ok := file.ResolveIdentifier(n)
	if !ok {
		return symbol.NoSymbol, nil, false
	}
	sym := file.Symbols.Get(id)
	if sym == nil || !sym.Flags.Has(symbol.FlagAlias) || sym.ImportModule == "" {
		return id, file, true
	}
	targetName := sym.ImportName
	if targetName == atom.None {
		targetName = sym.EscapedName
	}
	visited := make(map[reexportKey]bool)
	return p.resolveModuleExport(ModuleSpecifier(sym.ImportModule), targetName, visited)
}

// resolveModuleExport looks up name in module's export table, following a
// chain of re-exports (and further aliases) recursively.
func (p *Program) resolveModuleExport(module ModuleSpecifier, name atom.Atom, visited map[reexportKey]bool) (symbol.Id, *State, bool) {
	key := reexportKey{module: module, name: name}
	if visited[key] {
		return symbol.NoSymbol, nil, false
	}
	visited[key] = true

	file, ok := p.Files[module]
	if !ok {
		return symbol.NoSymbol, nil, false
	}

	if exports := file.ModuleExports[module]; exports != nil {
		if id, ok := exports.Get(name); ok {
			sym := file.Symbols.Get(id)
			if sym != nil && sym.Flags.Has(symbol.FlagAlias) && sym.ImportModule != "" {
				aliasTarget := sym.ImportName
				if aliasTarget == atom.None {
					aliasTarget = sym.EscapedName
				}
				return p.resolveModuleExport(ModuleSpecifier(sym.ImportModule), aliasTarget, visited)
			}
			return id, file, true
		}
	}

	if reex := file.Reexports[module]; reex != nil {
		nameText := file.Arena.Interner.Resolve(name)
		if target, ok := reex[nameText]; ok {
			nextName := target.OriginalName
			if nextName == atom.None {
				nextName = name
			}
			return p.resolveModuleExport(target.SourceModule, nextName, visited)
		}
		if wildcard, ok := reex["*"]; ok {
			return p.resolveModuleExport(wildcard.SourceModule, name, visited)
		}
	}

	return symbol.NoSymbol, nil, false
}
