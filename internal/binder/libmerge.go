package binder

// LibFile pairs a lib source file's module specifier with its own bound
// State, the unit merge_lib_symbols operates on (spec.md §4.4.5).
type LibFile struct {
	Module ModuleSpecifier
	State  *State
}

// MergeLibSymbols merges each lib file's top-level symbol table into
// file_locals (spec.md §4.4.5). file_locals and the root scope's table are
// the same *symbol.Table in this implementation (Bind wires FileLocals to
// root.Table directly), so merging into one merges into both at once.
// Lib binders are retained for resolve-time fallback, and each merged
// symbol's originating arena is recorded for cross-file navigation.
func (s *State) MergeLibSymbols(libs []LibFile) {
	for _, lib := range libs {
		s.LibBinders = append(s.LibBinders, lib.State)
		if lib.State == nil || lib.State.FileLocals == nil {
			continue
		}
		for _, libName := range lib.State.FileLocals.Names() {
			id, ok := lib.State.FileLocals.Get(libName)
			if !ok {
				continue
			}
			name := s.Arena.Interner.Intern(lib.State.Arena.Interner.Resolve(libName))
			if _, exists := s.FileLocals.Get(name); exists {
				continue
			}
			s.FileLocals.Set(name, id)
			s.SymbolArenas[id] = lib.State.Arena
		}
	}
}

// globalSymbolNames is the enumerated ECMAScript global surface
// validate_global_symbols checks for (spec.md §4.4.4).
var globalSymbolNames = []string{
	"Object", "Function", "Array", "Promise", "Map", "Set", "Reflect", "Proxy",
	"Error", "EvalError", "RangeError", "ReferenceError", "SyntaxError", "TypeError", "URIError",
	"Number", "String", "Boolean", "Symbol", "BigInt",
	"console",
	"parseInt", "parseFloat", "isNaN", "isFinite",
	"encodeURI", "decodeURI", "encodeURIComponent", "decodeURIComponent",
	"NaN", "Infinity", "undefined", "globalThis",
}

// ValidateGlobalSymbols reports which names from the enumerated
// ECMAScript global list (spec.md §4.4.4) are missing from file_locals
// after a lib merge, for test harnesses to catch lib-injection mistakes.
func (s *State) ValidateGlobalSymbols() []string {
	var missing []string
	for _, name := range globalSymbolNames {
		atomName := s.Arena.Interner.Intern(name)
		if _, ok := s.FileLocals.Get(atomName); !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
