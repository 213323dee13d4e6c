package binder

import (
	"github.com/mohsen1/tsz-sub013/internal/ast"
	"github.com/mohsen1/tsz-sub013/internal/atom"
	"github.com/mohsen1/tsz-sub013/internal/flow"
	"github.com/mohsen1/tsz-sub013/internal/symbol"
	"github.com/mohsen1/tsz-sub013/internal/token"
)

// bindFunctionDeclaration binds a top-level/block function declaration's
// body. Its own name symbol was already declared by hoisting (hoist.go);
// this only walks parameters and body.
func (s *State) bindFunctionDeclaration(n ast.NodeIndex) {
	s.bindFunctionLikeBody(n, false)
}

// bindFunctionLike binds a function/arrow expression or an object-literal
// method/accessor shorthand used in a value position. selfBind requests
// that, if the function has a name, it be declared inside the function's
// own scope (so the name is visible for recursive self-reference without
// leaking into the enclosing scope).
func (s *State) bindFunctionLike(n ast.NodeIndex, selfBind bool) {
	s.bindFunctionLikeBody(n, selfBind)
}

// bindFunctionLikeBody implements the Closures contract: a function/arrow
// body gets a fresh START flow node whose antecedent is the enclosing flow,
// preserving narrowing for captured const/let, and its own function scope.
func (s *State) bindFunctionLikeBody(n ast.NodeIndex, selfBind bool) {
	fn, ok := s.Arena.GetFunctionLike(n)
	if !ok {
		return
	}
	savedFlow := s.currentFlow
	s.currentFlow = s.Flow.New(flow.FlagStart, n, savedFlow)

	scope := s.pushScope(symbol.ScopeFunction, n)
	if selfBind && fn.Name != ast.NoNode {
		if name := s.identifierAtom(fn.Name); name != atom.None {
			if sc, ok := s.Scopes.Get(scope); ok {
				s.declareSymbol(sc.Table, name, symbol.FlagFunction, fn.Name)
			}
		}
	}
	s.bindParameters(fn.Parameters)

	if fn.Body != ast.NoNode {
		if bodyThin, ok := s.Arena.Get(fn.Body); ok && bodyThin.Kind == token.Block {
			block, ok := s.Arena.GetBlock(fn.Body)
			if ok {
				s.bindStatementListHoisted(block.Nodes, scope)
			}
		} else {
			// Arrow function with an expression body.
			s.bindExpression(fn.Body)
		}
	}
	s.popScope()
	s.currentFlow = savedFlow
}

// bindParameters declares each parameter's binding names as FlagParameter
// and binds any default-value initializer expression.
func (s *State) bindParameters(params ast.NodeList) {
	for _, p := range params.Nodes {
		param, ok := s.Arena.GetParameter(p)
		if !ok {
			continue
		}
		s.declareBindingNames(param.Name, symbol.FlagParameter)
		if param.Initializer != ast.NoNode {
			s.bindExpression(param.Initializer)
		}
	}
}

// bindClassLike binds a class declaration or expression: heritage clause
// expressions (extends/implements) are bound in the enclosing scope, then
// a class scope holds the members.
func (s *State) bindClassLike(n ast.NodeIndex, classFlag symbol.Flags) {
	data, ok := s.Arena.GetClassLike(n)
	if !ok {
		return
	}
	if data.Name != ast.NoNode {
		s.declareAtCurrentScope(data.Name, classFlag, n)
	}
	for _, h := range data.HeritageClauses.Nodes {
		heritage, ok := s.Arena.GetHeritageClause(h)
		if !ok {
			continue
		}
		for _, t := range heritage.Types.Nodes {
			s.bindExpression(t)
		}
	}

	scope := s.pushScope(symbol.ScopeClass, n)
	sc, _ := s.Scopes.Get(scope)
	for _, m := range data.Members.Nodes {
		s.bindClassMember(m, sc)
	}
	s.popScope()
}

func (s *State) bindClassMember(m ast.NodeIndex, classScope *symbol.Scope) {
	thin, ok := s.Arena.Get(m)
	if !ok {
		return
	}
	switch thin.Kind {
	case token.Constructor, token.MethodDeclaration, token.GetAccessor, token.SetAccessor:
		memberFlag := symbol.FlagMethod
		switch thin.Kind {
		case token.Constructor:
			memberFlag = symbol.FlagConstructor
		case token.GetAccessor:
			memberFlag = symbol.FlagGetAccessor
		case token.SetAccessor:
			memberFlag = symbol.FlagSetAccessor
		}
		fn, ok := s.Arena.GetFunctionLike(m)
		if ok && fn.Name != ast.NoNode && classScope != nil {
			if name := s.identifierAtom(fn.Name); name != atom.None {
				flags := memberFlag
				if thin.Flags.Has(token.FlagStatic) {
					flags |= symbol.FlagStatic
				}
				s.declareSymbol(classScope.Table, name, flags, fn.Name)
			}
		}
		s.bindFunctionLikeBody(m, false)
	case token.PropertySignature:
		prop, ok := s.Arena.GetPropertySignature(m)
		if !ok {
			return
		}
		if classScope != nil && prop.Name != ast.NoNode {
			if name := s.identifierAtom(prop.Name); name != atom.None {
				flags := symbol.FlagProperty
				if thin.Flags.Has(token.FlagStatic) {
					flags |= symbol.FlagStatic
				}
				s.declareSymbol(classScope.Table, name, flags, prop.Name)
			}
		}
		if prop.Initializer != ast.NoNode {
			s.bindExpression(prop.Initializer)
		}
	case token.IndexSignature:
		idx, ok := s.Arena.GetIndexSignature(m)
		if !ok {
			return
		}
		s.bindParameters(idx.Parameters)
	}
}

// bindInterfaceDeclaration declares the interface's own symbol and, per
// spec.md's S4 merge scenario, accumulates its member list into that
// symbol's Members table: two declarations of the same interface name
// merge onto one symbol (declareSymbol/mergeable), and each declaration's
// members land in the same shared table, so the merged symbol's Members
// ends up with every field from every declaration.
func (s *State) bindInterfaceDeclaration(n ast.NodeIndex, nodeFlags token.NodeFlags) {
	data, ok := s.Arena.GetInterfaceDeclaration(n)
	if !ok {
		return
	}
	id := s.declareAtCurrentScope(data.Name, symbol.FlagInterface, n)
	for _, h := range data.HeritageClauses.Nodes {
		heritage, ok := s.Arena.GetHeritageClause(h)
		if !ok {
			continue
		}
		for _, t := range heritage.Types.Nodes {
			s.bindExpression(t)
		}
	}

	sym := s.Symbols.Get(id)
	if sym == nil {
		return
	}
	if sym.Members == nil {
		sym.Members = symbol.NewTable()
	}
	for _, m := range data.Members.Nodes {
		s.bindInterfaceMember(m, sym.Members)
	}
}

// bindInterfaceMember declares one interface member's name into members,
// a plain name->Id table rather than a lexical Scope: interface members
// are looked up off the symbol, never resolved by scope-chain walk.
func (s *State) bindInterfaceMember(m ast.NodeIndex, members *symbol.Table) {
	thin, ok := s.Arena.Get(m)
	if !ok {
		return
	}
	switch thin.Kind {
	case token.PropertySignature:
		prop, ok := s.Arena.GetPropertySignature(m)
		if !ok {
			return
		}
		if name := s.identifierAtom(prop.Name); name != atom.None {
			s.declareSymbol(members, name, symbol.FlagProperty, m)
		}
	case token.MethodSignature:
		method, ok := s.Arena.GetMethodSignature(m)
		if !ok {
			return
		}
		if name := s.identifierAtom(method.Name); name != atom.None {
			s.declareSymbol(members, name, symbol.FlagMethod, m)
		}
	}
}

func (s *State) bindTypeAliasDeclaration(n ast.NodeIndex, nodeFlags token.NodeFlags) {
	data, ok := s.Arena.GetTypeAliasDeclaration(n)
	if !ok {
		return
	}
	s.declareAtCurrentScope(data.Name, symbol.FlagTypeAlias, n)
}

// bindEnumDeclaration declares the enum's own symbol plus one
// FlagEnumMember symbol per member, scoped to the enum's own table so
// qualified member access (`E.A`) resolves through Exports/Members the
// same way a namespace's members do.
func (s *State) bindEnumDeclaration(n ast.NodeIndex, nodeFlags token.NodeFlags) {
	data, ok := s.Arena.GetEnumDeclaration(n)
	if !ok {
		return
	}
	enumFlag := symbol.FlagRegularEnum
	if nodeFlags.Has(token.FlagConst) {
		enumFlag = symbol.FlagConstEnum
	}
	id := s.declareAtCurrentScope(data.Name, enumFlag, n)
	sym := s.Symbols.Get(id)
	if sym != nil && sym.Exports == nil {
		sym.Exports = symbol.NewTable()
	}
	for _, m := range data.Members.Nodes {
		member, ok := s.Arena.GetEnumMember(m)
		if !ok {
			continue
		}
		if member.Initializer != ast.NoNode {
			s.bindExpression(member.Initializer)
		}
		if sym == nil || sym.Exports == nil {
			continue
		}
		if name := s.identifierAtom(member.Name); name != atom.None {
			s.declareSymbol(sym.Exports, name, symbol.FlagEnumMember, m)
		}
	}
}

// bindModuleDeclaration handles ambient external modules (`declare module
// "x" {}`), `declare global {}` augmentations, and (possibly dotted)
// namespaces, per spec.md §4.4.1's insideDeclareGlobal context flag.
func (s *State) bindModuleDeclaration(n ast.NodeIndex, nodeFlags token.NodeFlags) {
	data, ok := s.Arena.GetModuleDeclaration(n)
	if !ok {
		return
	}
	if data.IsGlobalAugmentation {
		prev := s.insideDeclareGlobal
		s.insideDeclareGlobal = true
		s.bindModuleBody(data.Body)
		s.insideDeclareGlobal = prev
		return
	}
	if lit, ok := s.Arena.GetLiteral(data.Name); ok {
		module := ModuleSpecifier(lit.Text)
		s.DeclaredModules[module] = struct{}{}
		s.bindModuleBody(data.Body)
		return
	}
	s.bindNamespace(data.Name, data.Body, n)
}

// bindNamespace declares a (possibly dotted) namespace chain as nested
// ValueModule symbols, descending a module scope per segment.
func (s *State) bindNamespace(name, body ast.NodeIndex, declNode ast.NodeIndex) {
	segments := s.flattenQualifiedName(name)
	if len(segments) == 0 {
		return
	}
	for i, seg := range segments {
		last := i == len(segments)-1
		decl := declNode
		if !last {
			decl = seg
		}
		id := s.declareAtCurrentScope(seg, symbol.FlagValueModule, decl)
		sym := s.Symbols.Get(id)
		if sym != nil && sym.Exports == nil {
			sym.Exports = symbol.NewTable()
		}
		scope := s.pushScope(symbol.ScopeModule, decl)
		if sym != nil {
			if sc, ok := s.Scopes.Get(scope); ok {
				sc.Table = sym.Exports
			}
		}
		if last {
			s.bindModuleBody(body)
		}
	}
	for range segments {
		s.popScope()
	}
}

// flattenQualifiedName returns a dotted namespace name's identifier nodes
// left-to-right (`A.B.C` -> [A, B, C]).
func (s *State) flattenQualifiedName(n ast.NodeIndex) []ast.NodeIndex {
	if n == ast.NoNode {
		return nil
	}
	thin, ok := s.Arena.Get(n)
	if !ok {
		return nil
	}
	if thin.Kind != token.QualifiedName {
		return []ast.NodeIndex{n}
	}
	qn, ok := s.Arena.GetQualifiedName(n)
	if !ok {
		return nil
	}
	return append(s.flattenQualifiedName(qn.Left), qn.Right)
}

func (s *State) bindModuleBody(body ast.NodeIndex) {
	if body == ast.NoNode {
		return
	}
	block, ok := s.Arena.GetBlock(body)
	if !ok {
		return
	}
	s.bindStatementListHoisted(block.Nodes, s.currentScope())
}

// declareAtCurrentScope declares name's identifier in the current scope's
// table (or, inside `declare global {}`, records it as a global
// augmentation instead per spec.md §4.4.1).
func (s *State) declareAtCurrentScope(name ast.NodeIndex, flags symbol.Flags, decl ast.NodeIndex) symbol.Id {
	atomName := s.identifierAtom(name)
	if s.insideDeclareGlobal {
		if atomName != atom.None {
			s.GlobalAugmentations[atomName] = append(s.GlobalAugmentations[atomName], decl)
		}
		return s.declareAnonymous(flags, decl)
	}
	sc, ok := s.Scopes.Get(s.currentScope())
	if !ok || atomName == atom.None {
		return s.declareAnonymous(flags, decl)
	}
	return s.declareSymbol(sc.Table, atomName, flags, decl)
}
