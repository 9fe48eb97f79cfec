// Package parser implements the recursive-descent parser for command
// files. One procedure per grammar production, at most two tokens of
// lookahead, no backtracking, and the first failure aborts the parse.
package parser

import (
	"mcfn/internal/ast"
	"mcfn/internal/lexer"
	"mcfn/internal/source"
	"mcfn/internal/token"
)

// Parser holds the parsing state for one file.
type Parser struct {
	lx *lexer.Lexer
}

// New creates a parser over an existing lexer.
func New(lx *lexer.Lexer) *Parser {
	return &Parser{lx: lx}
}

// Parse is the entry point: lex and parse one file into a Program.
func Parse(file *source.File) (*ast.Program, error) {
	return New(lexer.New(file)).ParseProgram()
}

// ParseProgram parses statements until the stream is exhausted.
// Empty input is a valid empty program.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.EOF {
			break
		}
		if tok.Kind == token.Newline {
			// blank line between statements
			if _, err := p.next(); err != nil {
				return nil, err
			}
			continue
		}
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		prog.Stmts = append(prog.Stmts, stmt)
	}
	return prog, nil
}

// peek returns the lookahead token, converting lex failures.
func (p *Parser) peek() (token.Token, error) {
	tok, err := p.lx.Peek()
	if err != nil {
		return tok, errLex(err)
	}
	return tok, nil
}

// peekAhead returns the token after the lookahead. Used only to tell
// a range start from an integer literal.
func (p *Parser) peekAhead() (token.Token, error) {
	tok, err := p.lx.PeekAhead()
	if err != nil {
		return tok, errLex(err)
	}
	return tok, nil
}

// next consumes and returns one token, converting lex failures.
func (p *Parser) next() (token.Token, error) {
	tok, err := p.lx.Next()
	if err != nil {
		return tok, errLex(err)
	}
	return tok, nil
}

// expect consumes one token and requires it to be of kind k.
func (p *Parser) expect(k token.Kind) (token.Token, error) {
	tok, err := p.next()
	if err != nil {
		return tok, err
	}
	if tok.Kind == token.EOF {
		return tok, errEOF(tok.Span)
	}
	if tok.Kind != k {
		return tok, errUnexpected(tok)
	}
	return tok, nil
}

// accept consumes the next token only when it is of kind k.
func (p *Parser) accept(k token.Kind) (*token.Token, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != k {
		return nil, nil
	}
	if _, err := p.next(); err != nil {
		return nil, err
	}
	return &tok, nil
}
