package parser

import (
	"mcfn/internal/ast"
	"mcfn/internal/token"
)

// parseMap parses `{ field+ }` with the same permissive separator
// structure as tables: each field owns its optional trailing comma.
func (p *Parser) parseMap() (*ast.Map, error) {
	open, err := p.expect(token.LBrace)
	if err != nil {
		return nil, err
	}

	var fields []ast.MapField
	for {
		field, err := p.parseMapField()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)

		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.RBrace {
			break
		}
		if tok.Kind == token.EOF {
			return nil, errEOF(tok.Span)
		}
	}

	closing, err := p.expect(token.RBrace)
	if err != nil {
		return nil, err
	}

	return &ast.Map{LBrace: open, Fields: fields, RBrace: closing}, nil
}

// parseMapField parses `"key" : value [,]`.
func (p *Parser) parseMapField() (ast.MapField, error) {
	var field ast.MapField

	key, err := p.parseStringLit()
	if err != nil {
		return field, err
	}
	colon, err := p.expect(token.Colon)
	if err != nil {
		return field, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return field, err
	}
	comma, err := p.accept(token.Comma)
	if err != nil {
		return field, err
	}

	field.Key = key
	field.Colon = colon
	field.Value = value
	field.Comma = comma
	return field, nil
}
