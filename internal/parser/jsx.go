package parser

import (
	"github.com/mohsen1/tsz-sub013/internal/ast"
	"github.com/mohsen1/tsz-sub013/internal/token"
)

// parseJsxElementOrFragment parses a `<Tag ...>...</Tag>`, a self-closing
// `<Tag ... />`, or a `<>...</>` fragment, starting at the leading `<`.
func (p *Parser) parseJsxElementOrFragment() ast.NodeIndex {
	start := p.pos()
	opening := p.parseJsxOpeningOrSelfClosing(start)

	node, ok := p.arena.Get(opening)
	if !ok {
		return opening
	}
	if node.Kind == token.JsxSelfClosingElement {
		return opening
	}

	children := p.parseJsxChildren()
	closing := p.parseJsxClosingElement()
	kind := token.JsxElement
	if node.Kind == token.JsxOpeningFragment {
		kind = token.JsxFragment
	}
	return p.arena.AddJsxElement(kind, start, p.pos(), ast.JsxElementData{
		OpeningElement: opening,
		Children:       children,
		ClosingElement: closing,
	})
}

// parseJsxOpeningOrSelfClosing parses from `<` through the matching `>`
// or `/>`, returning a JsxOpeningElement, JsxSelfClosingElement, or (for a
// bare `<>`) a JsxOpeningFragment.
func (p *Parser) parseJsxOpeningOrSelfClosing(start uint32) ast.NodeIndex {
	p.expect(token.LessThanToken)

	if p.at(token.GreaterThanToken) {
		p.next()
		return p.arena.AddJsxOpeningElement(token.JsxOpeningFragment, start, p.pos(), ast.JsxOpeningData{})
	}

	tagName := p.parseJsxTagName()
	var attrs []ast.NodeIndex
	for !p.at(token.GreaterThanToken) && !p.at(token.SlashToken) && !p.at(token.EndOfFile) {
		attrs = append(attrs, p.parseJsxAttribute())
	}
	attrList := nodeList(attrs, start, p.pos(), false)

	if p.parseOptional(token.SlashToken) {
		_, end := p.expect(token.GreaterThanToken)
		return p.arena.AddJsxOpeningElement(token.JsxSelfClosingElement, start, end, ast.JsxOpeningData{
			TagName: tagName, Attributes: attrList, SelfClosing: true,
		})
	}
	_, end := p.expect(token.GreaterThanToken)
	return p.arena.AddJsxOpeningElement(token.JsxOpeningElement, start, end, ast.JsxOpeningData{
		TagName: tagName, Attributes: attrList,
	})
}

func (p *Parser) parseJsxTagName() ast.NodeIndex {
	p.s.ScanJSXIdentifier()
	start, end, text := p.pos(), p.end(), p.text()
	name := p.arena.AddIdentifier(start, end, text)
	p.next()
	for p.at(token.DotToken) {
		dotStart := p.pos()
		p.next()
		p.s.ScanJSXIdentifier()
		rStart, rEnd, rText := p.pos(), p.end(), p.text()
		p.next()
		right := p.arena.AddIdentifier(rStart, rEnd, rText)
		name = p.arena.AddQualifiedName(dotStart, p.pos(), name, right)
	}
	return name
}

func (p *Parser) parseJsxAttribute() ast.NodeIndex {
	start := p.pos()
	if p.parseOptional(token.OpenBraceToken) {
		p.expect(token.DotDotDotToken)
		expr := p.parseAssignmentExpression()
		_, end := p.expect(token.CloseBraceToken)
		return p.arena.AddJsxSpreadAttribute(start, end, expr)
	}
	name := p.parseJsxTagName()
	var initializer ast.NodeIndex
	if p.parseOptional(token.EqualsToken) {
		if p.at(token.StringLiteral) {
			txt := p.text()
			litStart, litEnd := p.pos(), p.end()
			p.next()
			initializer = p.arena.AddStringLiteral(litStart, litEnd, txt)
		} else {
			exprStart := p.pos()
			p.expect(token.OpenBraceToken)
			expr := p.parseAssignmentExpression()
			_, exprEnd := p.expect(token.CloseBraceToken)
			initializer = p.arena.AddJsxExpression(exprStart, exprEnd, ast.JsxExpressionData{Expression: expr})
		}
	}
	return p.arena.AddJsxAttribute(start, p.pos(), ast.JsxAttributeData{Name: name, Initializer: initializer})
}

// parseJsxChildren re-scans text runs between `{`/`<`/EOF boundaries via
// ReScanJSXToken, folding in nested elements and `{expr}` interpolations,
// and stops (without consuming) at the closing `</`.
func (p *Parser) parseJsxChildren() ast.NodeList {
	start := p.pos()
	var children []ast.NodeIndex
	for {
		p.s.ReScanJSXToken(false)
		if p.token() == token.JsxText && p.text() != "" {
			txtStart, txtEnd, txt := p.pos(), p.end(), p.text()
			p.next()
			children = append(children, p.arena.AddStringLiteral(txtStart, txtEnd, txt))
			continue
		}
		if p.token() == token.JsxTextAllWhitespace {
			p.next()
			continue
		}
		// ReScanJSXToken found zero-width text: we are sitting on a `{`,
		// `<`, `</`, or EOF boundary. Scan it as a real token to dispatch on.
		p.next()
		switch p.token() {
		case token.OpenBraceToken:
			exprStart := p.pos()
			p.next()
			dotDotDot := p.parseOptional(token.DotDotDotToken)
			var expr ast.NodeIndex
			if !p.at(token.CloseBraceToken) {
				expr = p.parseAssignmentExpression()
			}
			_, exprEnd := p.expect(token.CloseBraceToken)
			children = append(children, p.arena.AddJsxExpression(exprStart, exprEnd, ast.JsxExpressionData{Expression: expr, DotDotDot: dotDotDot}))
		case token.LessThanSlashToken:
			return nodeList(children, start, p.pos(), false)
		case token.LessThanToken:
			children = append(children, p.parseJsxElementOrFragment())
		case token.EndOfFile:
			return nodeList(children, start, p.pos(), false)
		default:
			p.next()
		}
	}
}

func (p *Parser) parseJsxClosingElement() ast.NodeIndex {
	start := p.pos()
	p.expect(token.LessThanSlashToken)
	if p.at(token.GreaterThanToken) {
		_, end := p.expect(token.GreaterThanToken)
		return p.arena.AddJsxClosingElement(start, end, ast.NoNode)
	}
	tagName := p.parseJsxTagName()
	_, end := p.expect(token.GreaterThanToken)
	return p.arena.AddJsxClosingElement(start, end, tagName)
}
