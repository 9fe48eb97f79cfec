package parser

import (
	"mcfn/internal/ast"
	"mcfn/internal/token"
)

// parseExpr dispatches on the lookahead token. An integer needs a
// second token of lookahead: it starts a range only when '..' follows.
// Bare identifiers are deliberately not expressions.
func (p *Parser) parseExpr() (ast.Expr, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch {
	case tok.Kind == token.IntLit:
		ahead, err := p.peekAhead()
		if err != nil {
			return nil, err
		}
		if ahead.Kind == token.DotDot {
			return p.parseRange()
		}
		return p.parseLit()

	case tok.Kind == token.DotDot:
		return p.parseRange()

	case tok.IsLiteral():
		return p.parseLit()

	case tok.IsUnaryOp():
		return p.parseUnary()

	case tok.Kind == token.LBrace:
		return p.parseMap()

	case tok.Kind == token.At:
		return p.parseTarget()

	case tok.Kind == token.EOF:
		return nil, errEOF(tok.Span)

	default:
		return nil, errUnexpected(tok)
	}
}

// parseUnary parses a prefix operator and its operand. Application is
// right-associative: the operand is the very next expression. The
// operand-less form exists only inside table fields, never here, so a
// dangling operator at end of input fails rather than recursing.
func (p *Parser) parseUnary() (*ast.Unary, error) {
	op, err := p.next()
	if err != nil {
		return nil, err
	}
	if !op.IsUnaryOp() {
		return nil, errUnexpected(op)
	}
	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Unary{Op: op, X: x}, nil
}

// parseRange parses `[int] .. [int]`; both bounds may be absent.
func (p *Parser) parseRange() (*ast.Range, error) {
	lo, err := p.acceptInt()
	if err != nil {
		return nil, err
	}
	dots, err := p.expect(token.DotDot)
	if err != nil {
		return nil, err
	}
	hi, err := p.acceptInt()
	if err != nil {
		return nil, err
	}
	return &ast.Range{Lo: lo, Dots: dots, Hi: hi}, nil
}

// parseTarget parses `@ class [params]`.
func (p *Parser) parseTarget() (*ast.Target, error) {
	at, err := p.expect(token.At)
	if err != nil {
		return nil, err
	}
	class, err := p.parseIdent()
	if err != nil {
		return nil, err
	}

	var params *ast.Table[ast.Ident]
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == token.LBracket {
		params, err = parseTable(p, (*Parser).parseIdent)
		if err != nil {
			return nil, err
		}
	}

	return &ast.Target{At: at, Class: class, Params: params}, nil
}
