package binder

import (
	"fmt"

	"github.com/mohsen1/tsz-sub013/internal/ast"
	"github.com/mohsen1/tsz-sub013/internal/symbol"
)

// ValidationError is one consistency problem validate_symbol_table found
// in a bound State (spec.md §4.4.4).
type ValidationError struct {
	Kind    string
	Node    ast.NodeIndex
	Symbol  symbol.Id
	Name    string
	Message string
}

func (e ValidationError) Error() string { return e.Message }

// ValidateSymbolTable checks the invariants spec.md §4.4.4 names:
// node_symbols entries pointing at live symbols, every symbol having at
// least one declaration, and value_declaration always appearing in
// node_symbols.
func (s *State) ValidateSymbolTable() []ValidationError {
	var errs []ValidationError

	for node, id := range s.NodeSymbols {
		if s.Symbols.Get(id) == nil {
			errs = append(errs, ValidationError{
				Kind: "BrokenSymbolLink", Node: node, Symbol: id,
				Message: fmt.Sprintf("BrokenSymbolLink: node %d names non-existent symbol %d", node, id),
			})
		}
	}

	for _, id := range s.Symbols.All() {
		sym := s.Symbols.Get(id)
		if sym == nil {
			continue
		}
		name := s.Arena.Interner.Resolve(sym.EscapedName)
		if len(sym.Declarations) == 0 {
			errs = append(errs, ValidationError{
				Kind: "OrphanedSymbol", Symbol: id, Name: name,
				Message: fmt.Sprintf("OrphanedSymbol: symbol %d (%q) has no declarations", id, name),
			})
			continue
		}
		if sym.ValueDeclaration == ast.NoNode {
			continue
		}
		if owner, ok := s.NodeSymbols[sym.ValueDeclaration]; !ok || owner != id {
			errs = append(errs, ValidationError{
				Kind: "InvalidValueDeclaration", Symbol: id, Name: name,
				Message: fmt.Sprintf("InvalidValueDeclaration: symbol %d (%q) value_declaration is not in node_symbols", id, name),
			})
		}
	}

	return errs
}
