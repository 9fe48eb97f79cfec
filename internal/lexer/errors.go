package lexer

import (
	"fmt"

	"mcfn/internal/source"
)

// ErrorKind tags what went wrong while scanning one token.
type ErrorKind uint8

const (
	// ErrUnknown means no token pattern matched the input.
	ErrUnknown ErrorKind = iota
	// ErrBadInt means integer literal text failed to decode (overflow).
	ErrBadInt
	// ErrBadFloat means float literal text failed to decode.
	ErrBadFloat
	// ErrBadBool means boolean literal text failed to decode.
	ErrBadBool
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnknown:
		return "unrecognized character"
	case ErrBadInt:
		return "malformed integer literal"
	case ErrBadFloat:
		return "malformed float literal"
	case ErrBadBool:
		return "malformed boolean literal"
	}
	return "unknown lex error"
}

// Error is a lexical failure over a span of the source.
// Scanning may continue after one; callers decide whether it is fatal.
type Error struct {
	Kind ErrorKind
	Span source.Span

	cause error // underlying strconv error, may be nil
}

func newError(kind ErrorKind, span source.Span, cause error) *Error {
	return &Error{Kind: kind, Span: span, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s at %s: %v", e.Kind, e.Span, e.cause)
	}
	return fmt.Sprintf("%s at %s", e.Kind, e.Span)
}

func (e *Error) Unwrap() error {
	return e.cause
}
