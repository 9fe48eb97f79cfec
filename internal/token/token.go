package token

import (
	"mcfn/internal/source"
)

// Token represents a single source token with its location.
//
// Text aliases the source buffer and stays valid only while the buffer
// does. For literal kinds the decoded value rides in the matching typed
// field; the other two stay zero.
type Token struct {
	Kind Kind
	Span source.Span
	Text string

	Int   int32   // value for IntLit
	Float float32 // value for FloatLit
	Bool  bool    // value for BoolLit
}

// IsLiteral reports whether the token is a numeric, boolean, string, or path literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, BoolLit, Path:
		return true
	default:
		return false
	}
}

// IsUnaryOp reports whether the token can prefix an expression.
func (t Token) IsUnaryOp() bool {
	switch t.Kind {
	case Bang, Tilde, Caret, FormatSel:
		return true
	default:
		return false
	}
}

// IsScoreboardOp reports whether the token is one of the scoreboard
// comparison/assignment operators.
func (t Token) IsScoreboardOp() bool {
	switch t.Kind {
	case Assign, LtGt, PlusAssign, MinusAssign, StarAssign, SlashAssign, Gt, Lt, Star:
		return true
	default:
		return false
	}
}
