package parser

import (
	"mcfn/internal/ast"
	"mcfn/internal/token"
)

// parseStmt dispatches on the lookahead: comments parse verbatim,
// everything else is a command.
func (p *Parser) parseStmt() (ast.Stmt, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == token.Comment {
		return p.parseComment()
	}
	return p.parseCommand()
}

func (p *Parser) parseComment() (*ast.Comment, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	return &ast.Comment{Text: tok.Text, Tok: tok}, nil
}

// parseCommand parses `[/] name arg*`. Arguments have no separator;
// each expression production is self-delimiting. The list ends at a
// newline or at the end of input.
func (p *Parser) parseCommand() (*ast.Command, error) {
	slash, err := p.accept(token.Slash)
	if err != nil {
		return nil, err
	}

	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}

	var args []ast.Expr
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.EOF || tok.Kind == token.Newline {
			break
		}
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	return &ast.Command{Slash: slash, Name: name, Args: args}, nil
}
