// Package symbol implements the binder's symbol table data model
// (spec.md §3.4-§3.5): Symbol, SymbolArena, SymbolTable, and Scope.
package symbol

import (
	"github.com/mohsen1/tsz-sub013/internal/ast"
	"github.com/mohsen1/tsz-sub013/internal/atom"
)

// Id is a 32-bit index into a SymbolArena. NoSymbol never addresses a live entry.
type Id uint32

const NoSymbol Id = 0

// Flags is the Symbol.Flags bitset (spec.md §3.4).
type Flags uint32

const (
	FlagNone Flags = 0

	FlagFunctionScopedVariable Flags = 1 << iota
	FlagBlockScopedVariable
	FlagParameter
	FlagTypeParameter
	FlagProperty
	FlagMethod
	FlagConstructor
	FlagGetAccessor
	FlagSetAccessor
	FlagFunction
	FlagClass
	FlagInterface
	FlagTypeAlias
	FlagRegularEnum
	FlagConstEnum
	FlagEnumMember
	FlagValueModule
	FlagNamespaceModule
	FlagAlias
	FlagAbstract
	FlagStatic
	FlagExportValue

	// Derived/composite flags, computed rather than stored independently.
	FlagEnum    = FlagRegularEnum | FlagConstEnum
	FlagModule  = FlagValueModule | FlagNamespaceModule
	FlagVariable = FlagFunctionScopedVariable | FlagBlockScopedVariable
	FlagClassMember = FlagMethod | FlagProperty | FlagGetAccessor | FlagSetAccessor | FlagConstructor
	// Value is derived, not stored: a symbol "has a value" if it is any of
	// these kinds. Computed by HasValueMeaning rather than given its own bit
	// so merges never have to reconcile two independently-tracked copies of
	// the same derived fact.
	flagValueMeaning = FlagFunctionScopedVariable | FlagBlockScopedVariable | FlagProperty |
		FlagMethod | FlagConstructor | FlagGetAccessor | FlagSetAccessor | FlagFunction |
		FlagClass | FlagEnumMember | FlagValueModule | FlagAlias
)

// HasValueMeaning reports whether f denotes something usable in a value
// (expression) position, the "VALUE (derived)" flag spec.md §3.4 calls out.
func (f Flags) HasValueMeaning() bool { return f&flagValueMeaning != 0 }

func (f Flags) Has(mask Flags) bool { return f&mask == mask }
func (f Flags) Any(mask Flags) bool { return f&mask != 0 }

// Table is an insertion-order-preserving Atom -> Id mapping (spec.md §3.4).
type Table struct {
	order []atom.Atom
	byName map[atom.Atom]Id
}

func NewTable() *Table {
	return &Table{byName: make(map[atom.Atom]Id)}
}

func (t *Table) Get(name atom.Atom) (Id, bool) {
	id, ok := t.byName[name]
	return id, ok
}

func (t *Table) Set(name atom.Atom, id Id) {
	if _, exists := t.byName[name]; !exists {
		t.order = append(t.order, name)
	}
	t.byName[name] = id
}

// Delete removes name's entry, if present (used by incremental rebinding
// to drop symbols a reparsed suffix no longer declares).
func (t *Table) Delete(name atom.Atom) {
	if _, exists := t.byName[name]; !exists {
		return
	}
	delete(t.byName, name)
	for i, n := range t.order {
		if n == name {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Names returns every key in insertion order.
func (t *Table) Names() []atom.Atom {
	return append([]atom.Atom(nil), t.order...)
}

func (t *Table) Len() int { return len(t.order) }

// Symbol is a named declaration, possibly composed of multiple merged
// declarations (spec.md §3.4).
type Symbol struct {
	EscapedName      atom.Atom
	Flags            Flags
	Declarations     []ast.NodeIndex
	ValueDeclaration ast.NodeIndex // NoNode if none
	Members          *Table        // classes/interfaces/type literals
	Exports          *Table        // modules/namespaces/enums
	IsExported       bool
	IsTypeOnly       bool
	ImportModule     string // ALIAS symbols: source module specifier
	ImportName       atom.Atom // renamed imports: original export name (atom.None if not renamed)
}

// Arena owns every Symbol produced while binding one compilation unit
// (spec.md §3.4: "SymbolId is a 32-bit index into a single SymbolArena per
// compilation unit").
type Arena struct {
	symbols []*Symbol
}

func NewArena() *Arena {
	a := &Arena{}
	a.symbols = append(a.symbols, nil) // index 0 == NoSymbol
	return a
}

// New allocates a fresh Symbol and returns its Id.
func (a *Arena) New(name atom.Atom, flags Flags, decl ast.NodeIndex) Id {
	sym := &Symbol{EscapedName: name, Flags: flags}
	if decl != ast.NoNode {
		sym.Declarations = append(sym.Declarations, decl)
		if flags.HasValueMeaning() {
			sym.ValueDeclaration = decl
		} else {
			sym.ValueDeclaration = ast.NoNode
		}
	}
	id := Id(len(a.symbols))
	a.symbols = append(a.symbols, sym)
	return id
}

// Get returns the Symbol for id, or nil if id is NoSymbol or unknown.
func (a *Arena) Get(id Id) *Symbol {
	if id == NoSymbol || int(id) >= len(a.symbols) {
		return nil
	}
	return a.symbols[id]
}

// Len reports how many symbols (excluding the sentinel) have been allocated.
func (a *Arena) Len() int { return len(a.symbols) - 1 }

// All returns every live symbol id, in allocation order.
func (a *Arena) All() []Id {
	ids := make([]Id, 0, a.Len())
	for i := 1; i < len(a.symbols); i++ {
		ids = append(ids, Id(i))
	}
	return ids
}

// ScopeKind discriminates the lexical region a Scope represents (spec.md §3.5).
type ScopeKind uint8

const (
	ScopeSourceFile ScopeKind = iota
	ScopeModule
	ScopeFunction
	ScopeClass
	ScopeBlock
)

// ScopeId is a 32-bit index into a per-file []Scope. NoScope never
// addresses a live entry.
type ScopeId uint32

const NoScope ScopeId = 0

// Scope is a lexical region with its own symbol table (spec.md §3.5).
type Scope struct {
	Parent ScopeId
	Kind   ScopeKind
	Node   ast.NodeIndex
	Table  *Table
}

// ScopeArena owns every Scope produced while binding one compilation unit,
// stored in a single Vec<Scope> keyed by ScopeId (spec.md §3.5).
type ScopeArena struct {
	scopes []Scope
	byNode map[ast.NodeIndex]ScopeId
}

func NewScopeArena() *ScopeArena {
	sa := &ScopeArena{byNode: make(map[ast.NodeIndex]ScopeId)}
	sa.scopes = append(sa.scopes, Scope{}) // index 0 == NoScope
	return sa
}

// New allocates a fresh Scope under parent and records the node -> ScopeId
// mapping spec.md §3.5 requires ("which scope-creating nodes own which
// scope entry").
func (sa *ScopeArena) New(parent ScopeId, kind ScopeKind, node ast.NodeIndex) ScopeId {
	id := ScopeId(len(sa.scopes))
	sa.scopes = append(sa.scopes, Scope{Parent: parent, Kind: kind, Node: node, Table: NewTable()})
	if node != ast.NoNode {
		sa.byNode[node] = id
	}
	return id
}

// Get returns the Scope for id, or false if id is NoScope or unknown.
func (sa *ScopeArena) Get(id ScopeId) (*Scope, bool) {
	if id == NoScope || int(id) >= len(sa.scopes) {
		return nil, false
	}
	return &sa.scopes[id], true
}

// ScopeOf returns the ScopeId owned by node, or NoScope if node never
// created a scope.
func (sa *ScopeArena) ScopeOf(node ast.NodeIndex) ScopeId {
	return sa.byNode[node]
}

// Len reports how many scopes (excluding the NoScope sentinel) have been
// allocated.
func (sa *ScopeArena) Len() int { return len(sa.scopes) - 1 }
