package parser

import (
	"mcfn/internal/ast"
	"mcfn/internal/token"
)

// parseLit consumes exactly one literal token and builds its node.
func (p *Parser) parseLit() (ast.Lit, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case token.IntLit:
		return &ast.IntLit{Value: tok.Int, Tok: tok}, nil
	case token.FloatLit:
		return &ast.FloatLit{Value: tok.Float, Tok: tok}, nil
	case token.StringLit:
		return &ast.StringLit{Value: unquote(tok.Text), Tok: tok}, nil
	case token.BoolLit:
		return &ast.BoolLit{Value: tok.Bool, Tok: tok}, nil
	case token.Path:
		return &ast.PathLit{Value: tok.Text, Tok: tok}, nil
	case token.EOF:
		return nil, errEOF(tok.Span)
	default:
		return nil, errUnexpected(tok)
	}
}

func (p *Parser) parseIdent() (ast.Ident, error) {
	tok, err := p.expect(token.Ident)
	if err != nil {
		return ast.Ident{}, err
	}
	return ast.Ident{Value: tok.Text, Tok: tok}, nil
}

func (p *Parser) parseStringLit() (ast.StringLit, error) {
	tok, err := p.expect(token.StringLit)
	if err != nil {
		return ast.StringLit{}, err
	}
	return ast.StringLit{Value: unquote(tok.Text), Tok: tok}, nil
}

// acceptInt consumes an integer literal when one is next, used for the
// optional bounds of a range.
func (p *Parser) acceptInt() (*ast.IntLit, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != token.IntLit {
		return nil, nil
	}
	if _, err := p.next(); err != nil {
		return nil, err
	}
	return &ast.IntLit{Value: tok.Int, Tok: tok}, nil
}

// unquote drops the surrounding quotes; the result still aliases the
// source buffer.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
