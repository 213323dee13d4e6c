package binder

import (
	"github.com/mohsen1/tsz-sub013/internal/ast"
	"github.com/mohsen1/tsz-sub013/internal/atom"
	"github.com/mohsen1/tsz-sub013/internal/symbol"
	"github.com/mohsen1/tsz-sub013/internal/token"
)

// moduleSpecifierOf reads the textual specifier off an import/export
// declaration's ModuleSpecifier node (a StringLiteralExpr), or "" if
// absent (a bare `export { a, b }` with no `from` clause).
func (s *State) moduleSpecifierOf(n ast.NodeIndex) ModuleSpecifier {
	if n == ast.NoNode {
		return ""
	}
	lit, ok := s.Arena.GetLiteral(n)
	if !ok {
		return ""
	}
	return ModuleSpecifier(lit.Text)
}

// declareAlias binds name in the current scope as an ALIAS symbol
// (spec.md §3.4's import-binding kind), recording which module/original
// export name it resolves to for resolve_identifier (spec.md §4.4.1).
func (s *State) declareAlias(name ast.NodeIndex, module ModuleSpecifier, originalName atom.Atom, decl ast.NodeIndex) {
	atomName := s.identifierAtom(name)
	if atomName == atom.None {
		return
	}
	sc, ok := s.Scopes.Get(s.currentScope())
	if !ok {
		return
	}
	id := s.declareSymbol(sc.Table, atomName, symbol.FlagAlias, decl)
	if sym := s.Symbols.Get(id); sym != nil {
		sym.ImportModule = string(module)
		sym.ImportName = originalName
	}
}

// bindImportDeclaration handles default imports, namespace imports, and
// named imports, all of which introduce local ALIAS bindings.
func (s *State) bindImportDeclaration(n ast.NodeIndex) {
	data, ok := s.Arena.GetImportDeclaration(n)
	if !ok {
		return
	}
	module := s.moduleSpecifierOf(data.ModuleSpecifier)
	if data.ImportClause == ast.NoNode {
		return // side-effect-only `import "mod"`
	}
	clause, ok := s.Arena.GetImportClause(data.ImportClause)
	if !ok {
		return
	}
	if clause.Name != ast.NoNode {
		s.declareAlias(clause.Name, module, atom.None, clause.Name)
	}
	if clause.NamedBindings == ast.NoNode {
		return
	}
	bindingsThin, ok := s.Arena.Get(clause.NamedBindings)
	if !ok {
		return
	}
	switch bindingsThin.Kind {
	case token.NamespaceImport:
		ns, ok := s.Arena.GetNamespaceImport(clause.NamedBindings)
		if !ok {
			return
		}
		s.declareAlias(ns.Name, module, atom.None, ns.Name)
	case token.NamedImports:
		specs, ok := s.Arena.GetNamedImportsOrExports(clause.NamedBindings)
		if !ok {
			return
		}
		for _, spec := range specs.Nodes {
			is, ok := s.Arena.GetImportSpecifier(spec)
			if !ok {
				continue
			}
			original := is.PropertyName
			originalName := atom.None
			if original != ast.NoNode {
				originalName = s.identifierAtom(original)
			} else {
				originalName = s.identifierAtom(is.Name)
			}
			s.declareAlias(is.Name, module, originalName, spec)
		}
	}
}

// bindImportEqualsDeclaration handles `import X = Other.Name` and `import
// X = require("mod")` forms. The module-reference side is not resolved
// here (that is resolve_identifier's job, spec.md §4.4.1); each segment's
// reference is recorded in node_flow the same as any other expression.
func (s *State) bindImportEqualsDeclaration(n ast.NodeIndex, nodeFlags token.NodeFlags) {
	data, ok := s.Arena.GetImportEqualsDeclaration(n)
	if !ok {
		return
	}
	for _, seg := range s.flattenQualifiedName(data.ModuleRef) {
		s.NodeFlow[seg] = s.currentFlow
		s.ReferenceScope[seg] = s.currentScope()
	}
	s.declareAlias(data.Name, "", atom.None, n)
}

// bindExportDeclaration handles `export { a, b as c }`, `export { a } from
// "mod"` re-exports, and `export * from "mod"`.
func (s *State) bindExportDeclaration(n ast.NodeIndex) {
	data, ok := s.Arena.GetExportDeclaration(n)
	if !ok {
		return
	}
	module := s.moduleSpecifierOf(data.ModuleSpecifier)
	if data.IsWildcard {
		if module == "" || s.CurrentModule == "" {
			return
		}
		if s.Reexports[s.CurrentModule] == nil {
			s.Reexports[s.CurrentModule] = make(map[string]ReexportTarget)
		}
		s.Reexports[s.CurrentModule]["*"] = ReexportTarget{SourceModule: module}
		return
	}
	if data.ExportClause == ast.NoNode {
		return
	}
	specs, ok := s.Arena.GetNamedImportsOrExports(data.ExportClause)
	if !ok {
		return
	}
	for _, spec := range specs.Nodes {
		es, ok := s.Arena.GetExportSpecifier(spec)
		if !ok {
			continue
		}
		localName := es.PropertyName
		if localName == ast.NoNode {
			localName = es.Name
		}
		exportedAtom := s.identifierAtom(es.Name)
		if module != "" {
			if s.CurrentModule == "" || exportedAtom == atom.None {
				continue
			}
			if s.Reexports[s.CurrentModule] == nil {
				s.Reexports[s.CurrentModule] = make(map[string]ReexportTarget)
			}
			originalAtom := s.identifierAtom(localName)
			s.Reexports[s.CurrentModule][s.Arena.Interner.Resolve(exportedAtom)] = ReexportTarget{
				SourceModule: module, OriginalName: originalAtom,
			}
			continue
		}
		s.markExported(localName)
	}
}

// bindExportAssignment handles `export = expr` and `export default expr`.
func (s *State) bindExportAssignment(n ast.NodeIndex) {
	data, ok := s.Arena.GetExportAssignment(n)
	if !ok {
		return
	}
	s.bindExpression(data.Expression)
}

// markExported flags the symbol bound to a local name as exported
// (spec.md §3.4 "is_exported") and records it in this file's module
// export table, if this compilation unit is bound as a module.
func (s *State) markExported(localName ast.NodeIndex) {
	atomName := s.identifierAtom(localName)
	if atomName == atom.None {
		return
	}
	sc, ok := s.Scopes.Get(s.currentScope())
	if !ok {
		return
	}
	id, ok := sc.Table.Get(atomName)
	if !ok {
		return
	}
	sym := s.Symbols.Get(id)
	if sym == nil {
		return
	}
	sym.IsExported = true
	if s.CurrentModule == "" {
		return
	}
	if s.ModuleExports[s.CurrentModule] == nil {
		s.ModuleExports[s.CurrentModule] = symbol.NewTable()
	}
	s.ModuleExports[s.CurrentModule].Set(atomName, id)
}
