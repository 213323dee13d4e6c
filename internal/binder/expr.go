package binder

import (
	"github.com/mohsen1/tsz-sub013/internal/ast"
	"github.com/mohsen1/tsz-sub013/internal/atom"
	"github.com/mohsen1/tsz-sub013/internal/flow"
	"github.com/mohsen1/tsz-sub013/internal/symbol"
	"github.com/mohsen1/tsz-sub013/internal/token"
)

var assignmentOperators = map[token.SyntaxKind]bool{
	token.EqualsToken: true, token.PlusEqualsToken: true, token.MinusEqualsToken: true,
	token.AsteriskEqualsToken: true, token.AsteriskAsteriskEqualsToken: true,
	token.SlashEqualsToken: true, token.PercentEqualsToken: true,
	token.LessThanLessThanEqualsToken: true, token.GreaterThanGreaterThanEqualsToken: true,
	token.GreaterThanGreaterThanGreaterThanEqualsToken: true,
	token.AmpersandEqualsToken: true, token.BarEqualsToken: true, token.CaretEqualsToken: true,
	token.BarBarEqualsToken: true, token.AmpersandAmpersandEqualsToken: true,
	token.QuestionQuestionEqualsToken: true,
}

// bindExpression walks an expression for reference recording and the
// flow effects spec.md §4.4.2 calls out for assignments, calls, and
// closures. Every NodeFlow entry records the flow node active at that
// reference's position (spec.md §3.7 "node_flow").
func (s *State) bindExpression(n ast.NodeIndex) {
	if n == ast.NoNode {
		return
	}
	node, ok := s.Arena.Get(n)
	if !ok {
		return
	}
	switch node.Kind {
	case token.Identifier, token.PrivateIdentifier:
		s.NodeFlow[n] = s.currentFlow
		s.ReferenceScope[n] = s.currentScope()
	case token.NumericLiteralExpr, token.StringLiteralExpr, token.RegularExpressionLiteralExpr,
		token.NoSubstitutionTemplateLiteralExpr, token.OmittedExpr:
		// no references, no flow effect
	case token.TemplateExpr:
		tmpl, ok := s.Arena.GetTemplateExpr(n)
		if !ok {
			return
		}
		for _, span := range tmpl.Spans {
			sp, ok := s.Arena.GetTemplateSpan(span)
			if !ok {
				continue
			}
			s.bindExpression(sp.Expression)
		}
	case token.ArrayLiteralExpr, token.ObjectLiteralExpr:
		s.bindObjectOrArrayLiteralElements(n)
	case token.PropertyAssignment, token.ShorthandPropertyAssignment:
		// never produced directly; object-literal elements are
		// PropertySignature/BindingElement/Identifier/SpreadAssignment
	case token.PropertyAccessExpr, token.ElementAccessExpr:
		data, ok := s.Arena.GetAccess(n)
		if !ok {
			return
		}
		s.bindExpression(data.Expression)
		if data.ArgumentExpr != ast.NoNode {
			s.bindExpression(data.ArgumentExpr)
		}
	case token.CallExpr, token.NewExpr:
		s.bindCallExpression(n)
	case token.BinaryExpr:
		s.bindBinaryExpression(n)
	case token.ConditionalExpr:
		data, ok := s.Arena.GetConditionalExpr(n)
		if !ok {
			return
		}
		pre := s.currentFlow
		s.bindExpression(data.Condition)
		trueStart := s.Flow.New(flow.FlagTrueCondition, data.Condition, pre)
		s.currentFlow = trueStart
		s.bindExpression(data.WhenTrue)
		afterTrue := s.currentFlow

		falseStart := s.Flow.New(flow.FlagFalseCondition, data.Condition, pre)
		s.currentFlow = falseStart
		s.bindExpression(data.WhenFalse)
		afterFalse := s.currentFlow

		join := s.Flow.Label(flow.FlagBranchLabel)
		s.Flow.AddAntecedent(join, afterTrue)
		s.Flow.AddAntecedent(join, afterFalse)
		s.currentFlow = join
	case token.PrefixUnaryExpr, token.PostfixUnaryExpr:
		data, ok := s.Arena.GetUnaryExpr(n)
		if !ok {
			return
		}
		s.bindExpression(data.Operand)
		if data.Operator == token.PlusPlusToken || data.Operator == token.MinusMinusToken {
			s.recordAssignmentFlow(data.Operand)
		}
	case token.DeleteExpr, token.TypeOfExpr, token.VoidExpr, token.AwaitExpr, token.YieldExpr,
		token.ParenthesizedExpr, token.NonNullExpr, token.TaggedTemplateExpr, token.TypeAssertionExpr,
		token.SpreadElement, token.SpreadAssignment, token.AsExpr, token.SatisfiesExpr:
		data, ok := s.Arena.GetUnaryExpr(n)
		if !ok {
			return
		}
		s.bindExpression(data.Operand)
	case token.FunctionExpr, token.ArrowFunction:
		s.bindFunctionLike(n, true)
	case token.ClassExpr:
		s.bindClassLike(n, symbol.FlagClass)
	case token.JsxElement, token.JsxFragment:
		s.bindJsxElement(n)
	case token.JsxSelfClosingElement:
		s.bindJsxOpeningElement(n)
	case token.JsxExpression:
		data, ok := s.Arena.GetJsxExpression(n)
		if ok && data.Expression != ast.NoNode {
			s.bindExpression(data.Expression)
		}
	default:
		// Types and other non-expression nodes reached via recovery paths
		// carry no flow/reference effect here.
	}
}

// bindJsxElement walks a `<Tag>...</Tag>` or fragment: its opening tag
// resolves the same way a value reference does (spec.md's JSX tag is
// bound in value position, not type position), then each child is bound
// as an expression in turn.
func (s *State) bindJsxElement(n ast.NodeIndex) {
	data, ok := s.Arena.GetJsxElement(n)
	if !ok {
		return
	}
	s.bindJsxOpeningElement(data.OpeningElement)
	for _, child := range data.Children.Nodes {
		s.bindExpression(child)
	}
}

// bindJsxOpeningElement resolves a `<Tag attr={expr} .../>`'s tag name as
// a value reference and binds every attribute's expression initializer.
func (s *State) bindJsxOpeningElement(n ast.NodeIndex) {
	data, ok := s.Arena.GetJsxOpeningElement(n)
	if !ok {
		return
	}
	if data.TagName != ast.NoNode {
		s.bindJsxTagName(data.TagName)
	}
	for _, attr := range data.Attributes.Nodes {
		s.bindJsxAttribute(attr)
	}
}

// bindJsxTagName records the leftmost identifier of a (possibly dotted)
// JSX tag name as a value-position reference; `<Foo.Bar/>`'s symbol is
// `Foo`, the same way a property access's object is the thing resolved.
func (s *State) bindJsxTagName(n ast.NodeIndex) {
	node, ok := s.Arena.Get(n)
	if !ok {
		return
	}
	switch node.Kind {
	case token.Identifier:
		s.NodeFlow[n] = s.currentFlow
		s.ReferenceScope[n] = s.currentScope()
	case token.QualifiedName:
		qn, ok := s.Arena.GetQualifiedName(n)
		if !ok {
			return
		}
		s.bindJsxTagName(qn.Left)
	}
}

func (s *State) bindJsxAttribute(n ast.NodeIndex) {
	node, ok := s.Arena.Get(n)
	if !ok {
		return
	}
	switch node.Kind {
	case token.JsxAttribute:
		attr, ok := s.Arena.GetJsxAttribute(n)
		if ok && attr.Initializer != ast.NoNode {
			s.bindExpression(attr.Initializer)
		}
	case token.JsxSpreadAttribute:
		spread, ok := s.Arena.GetJsxSpreadAttribute(n)
		if ok {
			s.bindExpression(spread.Expression)
		}
	}
}

// bindObjectOrArrayLiteralElements walks an array/object literal's element
// list, descending into whichever shape each element actually is.
func (s *State) bindObjectOrArrayLiteralElements(n ast.NodeIndex) {
	pattern, ok := s.Arena.GetArrayOrObjectLiteral(n)
	if !ok {
		return
	}
	for _, el := range pattern.Elements.Nodes {
		s.bindObjectLiteralElement(el)
	}
}

func (s *State) bindObjectLiteralElement(el ast.NodeIndex) {
	thin, ok := s.Arena.Get(el)
	if !ok {
		return
	}
	switch thin.Kind {
	case token.PropertySignature:
		// `{ key: value }` (see internal/ast's PropertySignatureData doc:
		// Initializer holds the value here, not a type annotation).
		prop, ok := s.Arena.GetPropertySignature(el)
		if !ok {
			return
		}
		if prop.Initializer != ast.NoNode {
			s.bindExpression(prop.Initializer)
		}
	case token.BindingElement:
		// `{ x = default }` destructuring-assignment shorthand.
		be, ok := s.Arena.GetBindingElement(el)
		if !ok {
			return
		}
		s.bindExpression(be.Name)
		if be.Initializer != ast.NoNode {
			s.bindExpression(be.Initializer)
		}
	case token.Identifier:
		// Plain shorthand `{ x }`.
		s.NodeFlow[el] = s.currentFlow
		s.ReferenceScope[el] = s.currentScope()
	default:
		// Spread (`...expr`), method/accessor shorthand (FunctionLike),
		// or a nested array/object literal element.
		if thin.Kind == token.MethodDeclaration || thin.Kind == token.GetAccessor || thin.Kind == token.SetAccessor {
			s.bindFunctionLike(el, true)
			return
		}
		s.bindExpression(el)
	}
}

func (s *State) bindCallExpression(n ast.NodeIndex) {
	data, ok := s.Arena.GetCallExpr(n)
	if !ok {
		return
	}
	s.bindExpression(data.Expression)
	for _, arg := range data.Arguments.Nodes {
		s.bindExpression(arg)
	}
	s.currentFlow = s.Flow.New(flow.FlagCall, n, s.currentFlow)
	s.NodeFlow[n] = s.currentFlow
	if s.isMutableArrayMethodCall(data.Expression) {
		s.currentFlow = s.Flow.New(flow.FlagArrayMutation, n, s.currentFlow)
	}
}

// isMutableArrayMethodCall reports whether callee is a `<expr>.<method>`
// access naming one of the hard-coded mutable Array.prototype methods
// (spec.md §9's Open Question, resolved as "yes, unconditionally on name").
func (s *State) isMutableArrayMethodCall(callee ast.NodeIndex) bool {
	thin, ok := s.Arena.Get(callee)
	if !ok || thin.Kind != token.PropertyAccessExpr {
		return false
	}
	access, ok := s.Arena.GetAccess(callee)
	if !ok {
		return false
	}
	name := s.identifierAtom(access.Name)
	if name == atom.None {
		return false
	}
	return mutableArrayMethods[s.Arena.Interner.Resolve(name)]
}

func (s *State) bindBinaryExpression(n ast.NodeIndex) {
	data, ok := s.Arena.GetBinaryExpr(n)
	if !ok {
		return
	}
	if assignmentOperators[data.OperatorToken] {
		s.bindExpression(data.Right)
		s.bindExpression(data.Left)
		s.recordAssignmentFlow(data.Left)
		return
	}
	switch data.OperatorToken {
	case token.AmpersandAmpersandToken, token.BarBarToken, token.QuestionQuestionToken:
		pre := s.currentFlow
		s.bindExpression(data.Left)
		rightFlag := flow.FlagTrueCondition
		if data.OperatorToken == token.BarBarToken {
			rightFlag = flow.FlagFalseCondition
		}
		var rightStart flow.Id
		if data.OperatorToken == token.QuestionQuestionToken {
			rightStart = s.Flow.New(flow.FlagFalseCondition, data.Left, pre)
		} else {
			rightStart = s.Flow.New(rightFlag, data.Left, pre)
		}
		afterLeft := s.currentFlow
		s.currentFlow = rightStart
		s.bindExpression(data.Right)
		join := s.Flow.Label(flow.FlagBranchLabel)
		s.Flow.AddAntecedent(join, afterLeft)
		s.Flow.AddAntecedent(join, s.currentFlow)
		s.currentFlow = join
	default:
		s.bindExpression(data.Left)
		s.bindExpression(data.Right)
	}
}
