package parser

import (
	"mcfn/internal/ast"
	"mcfn/internal/token"
)

// parseTable parses `[ field+ ]`, generic over the key production.
// Fields need no separating comma: each field consumes its own
// optional trailing comma and the loop runs until the closing bracket.
func parseTable[K ast.Node](p *Parser, parseKey func(*Parser) (K, error)) (*ast.Table[K], error) {
	open, err := p.expect(token.LBracket)
	if err != nil {
		return nil, err
	}

	var fields []ast.TableField[K]
	for {
		field, err := parseTableField(p, parseKey)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)

		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.RBracket {
			break
		}
		if tok.Kind == token.EOF {
			return nil, errEOF(tok.Span)
		}
	}

	closing, err := p.expect(token.RBracket)
	if err != nil {
		return nil, err
	}

	return &ast.Table[K]{LBracket: open, Fields: fields, RBracket: closing}, nil
}

// parseTableField parses `key = [value] [,]`. The value is absent when
// '=' is directly followed by ',' or ']' (flag field). A '!' right
// after '=' negates: alone it is a bare negation flag, otherwise it
// wraps the following expression.
func parseTableField[K ast.Node](p *Parser, parseKey func(*Parser) (K, error)) (ast.TableField[K], error) {
	var field ast.TableField[K]

	key, err := parseKey(p)
	if err != nil {
		return field, err
	}
	eq, err := p.expect(token.Assign)
	if err != nil {
		return field, err
	}
	field.Key = key
	field.Eq = eq

	tok, err := p.peek()
	if err != nil {
		return field, err
	}
	switch tok.Kind {
	case token.Comma:
		field.Comma, err = p.accept(token.Comma)
		if err != nil {
			return field, err
		}

	case token.RBracket:
		// flag field closed by the table itself

	case token.Bang:
		op, err := p.next()
		if err != nil {
			return field, err
		}
		value := &ast.Unary{Op: op}
		nxt, err := p.peek()
		if err != nil {
			return field, err
		}
		if nxt.Kind != token.Comma && nxt.Kind != token.RBracket {
			value.X, err = p.parseExpr()
			if err != nil {
				return field, err
			}
		}
		field.Value = value
		field.Comma, err = p.accept(token.Comma)
		if err != nil {
			return field, err
		}

	case token.EOF:
		return field, errEOF(tok.Span)

	default:
		field.Value, err = p.parseExpr()
		if err != nil {
			return field, err
		}
		field.Comma, err = p.accept(token.Comma)
		if err != nil {
			return field, err
		}
	}

	return field, nil
}
