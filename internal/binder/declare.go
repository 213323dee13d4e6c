package binder

import (
	"github.com/mohsen1/tsz-sub013/internal/ast"
	"github.com/mohsen1/tsz-sub013/internal/atom"
	"github.com/mohsen1/tsz-sub013/internal/diagnostic"
	"github.com/mohsen1/tsz-sub013/internal/symbol"
)

// mergeable implements the Symbol merging contract (spec.md §3.4): two
// declarations of the same name in the same scope merge iff one of (a)-(f)
// holds. Merge is symmetric, so the caller may pass either order.
func mergeable(existing, incoming symbol.Flags) bool {
	both := func(mask symbol.Flags) bool {
		return existing.Has(mask) && incoming.Has(mask)
	}
	either := func(a, b symbol.Flags) bool {
		return (existing.Has(a) && incoming.Has(b)) || (existing.Has(b) && incoming.Has(a))
	}
	switch {
	case both(symbol.FlagInterface): // (a) both interfaces
		return true
	case either(symbol.FlagClass, symbol.FlagInterface): // (b) class + interface
		return true
	case both(symbol.FlagValueModule): // (c) both value-modules
		return true
	case either(symbol.FlagModule, symbol.FlagClass),
		either(symbol.FlagModule, symbol.FlagFunction),
		either(symbol.FlagModule, symbol.FlagEnum): // (d) module + class/function/enum
		return true
	case both(symbol.FlagFunction): // (e) function overloads
		return true
	case (existing.Has(symbol.FlagInterface) && incoming.HasValueMeaning()) ||
		(incoming.Has(symbol.FlagInterface) && existing.HasValueMeaning()): // (f) interface + value
		return true
	}
	return false
}

// declareSymbol binds name in table per spec.md §3.4's merging contract,
// recording node_symbols[decl] on the canonical (merged) SymbolId. node is
// ast.NoNode for names resolved purely for lookup (never the case here:
// every call site has a real declaration node).
func (s *State) declareSymbol(table *symbol.Table, name atom.Atom, flags symbol.Flags, decl ast.NodeIndex) symbol.Id {
	if existingID, ok := table.Get(name); ok {
		existing := s.Symbols.Get(existingID)
		if existing != nil {
			if mergeable(existing.Flags, flags) {
				existing.Flags |= flags
			} else {
				s.Diagnostics.Errorf(diagnostic.CodeDuplicateIdentifier, 0, 0,
					"duplicate identifier %q", s.Arena.Interner.Resolve(name))
			}
			existing.Declarations = append(existing.Declarations, decl)
			if flags.HasValueMeaning() && existing.ValueDeclaration == ast.NoNode {
				existing.ValueDeclaration = decl
			}
			s.NodeSymbols[decl] = existingID
			return existingID
		}
	}
	id := s.Symbols.New(name, flags, decl)
	table.Set(name, id)
	s.NodeSymbols[decl] = id
	return id
}

// declareAnonymous allocates a symbol with no table entry (e.g. a default
// export's synthetic symbol) and records node_symbols[decl].
func (s *State) declareAnonymous(flags symbol.Flags, decl ast.NodeIndex) symbol.Id {
	id := s.Symbols.New(atom.None, flags, decl)
	s.NodeSymbols[decl] = id
	return id
}

// identifierAtom resolves the Atom naming an Identifier node, or atom.None
// if n is not an Identifier (e.g. a recovery-synthesized Missing node).
func (s *State) identifierAtom(n ast.NodeIndex) atom.Atom {
	id, ok := s.Arena.GetIdentifier(n)
	if !ok {
		return atom.None
	}
	return id.Text
}
