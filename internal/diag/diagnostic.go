package diag

import (
	"errors"
	"fmt"

	"mcfn/internal/lexer"
	"mcfn/internal/parser"
	"mcfn/internal/source"
)

// Diagnostic is one reportable failure with its source location.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
}

// FromError maps a lex or parse failure onto the code taxonomy.
func FromError(err error) Diagnostic {
	var pe *parser.Error
	if errors.As(err, &pe) {
		switch pe.Kind {
		case parser.ErrLex:
			return fromLex(pe.Lex)
		case parser.ErrUnexpectedToken:
			return Diagnostic{
				Severity: SevError,
				Code:     SynUnexpectedToken,
				Message:  fmt.Sprintf("unexpected token %s", pe.Token.Kind),
				Primary:  pe.Span,
			}
		case parser.ErrUnexpectedEOF:
			return Diagnostic{
				Severity: SevError,
				Code:     SynUnexpectedEOF,
				Message:  "unexpected end of input",
				Primary:  pe.Span,
			}
		}
	}

	var le *lexer.Error
	if errors.As(err, &le) {
		return fromLex(le)
	}

	return Diagnostic{Severity: SevError, Code: UnknownCode, Message: err.Error()}
}

func fromLex(le *lexer.Error) Diagnostic {
	code := UnknownCode
	switch le.Kind {
	case lexer.ErrUnknown:
		code = LexUnknownChar
	case lexer.ErrBadInt:
		code = LexBadInt
	case lexer.ErrBadFloat:
		code = LexBadFloat
	case lexer.ErrBadBool:
		code = LexBadBool
	}
	return Diagnostic{
		Severity: SevError,
		Code:     code,
		Message:  le.Kind.String(),
		Primary:  le.Span,
	}
}
