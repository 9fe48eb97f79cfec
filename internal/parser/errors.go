package parser

import (
	"errors"
	"fmt"

	"mcfn/internal/lexer"
	"mcfn/internal/source"
	"mcfn/internal/token"
)

// ErrorKind is the closed set of ways a parse can fail.
type ErrorKind uint8

const (
	// ErrLex is a lexical failure surfaced through the token stream.
	ErrLex ErrorKind = iota
	// ErrUnexpectedToken means the lookahead matched no grammar alternative.
	ErrUnexpectedToken
	// ErrUnexpectedEOF means a production required a token but the
	// stream was exhausted.
	ErrUnexpectedEOF
)

// Error is the single failure type produced by the parser. The first
// failure aborts the whole parse; nothing is recovered or retried.
type Error struct {
	Kind  ErrorKind
	Span  source.Span
	Token token.Token  // offending token, set for ErrUnexpectedToken
	Lex   *lexer.Error // cause, set for ErrLex
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrLex:
		return e.Lex.Error()
	case ErrUnexpectedToken:
		return fmt.Sprintf("unexpected token %s at %s", e.Token.Kind, e.Span)
	case ErrUnexpectedEOF:
		return fmt.Sprintf("unexpected end of input at %s", e.Span)
	}
	return "parse error"
}

func (e *Error) Unwrap() error {
	if e.Lex != nil {
		return e.Lex
	}
	return nil
}

func errUnexpected(tok token.Token) *Error {
	return &Error{Kind: ErrUnexpectedToken, Span: tok.Span, Token: tok}
}

func errEOF(span source.Span) *Error {
	return &Error{Kind: ErrUnexpectedEOF, Span: span}
}

func errLex(err error) *Error {
	var le *lexer.Error
	if errors.As(err, &le) {
		return &Error{Kind: ErrLex, Span: le.Span, Lex: le}
	}
	// The lexer only ever produces *lexer.Error; keep a sane fallback.
	return &Error{Kind: ErrLex, Lex: &lexer.Error{Kind: lexer.ErrUnknown}}
}
