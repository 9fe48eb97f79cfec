package ast

import (
	"mcfn/internal/source"
	"mcfn/internal/token"
)

// Ident is a bare word: a command name, a selector class, a table key.
// Not an expression; the argument grammar has no identifier alternative.
type Ident struct {
	Value string
	Tok   token.Token
}

func (i Ident) Span() source.Span { return i.Tok.Span }

// IntLit is a decoded 32-bit integer literal.
type IntLit struct {
	Value int32
	Tok   token.Token
}

func (l *IntLit) Span() source.Span { return l.Tok.Span }
func (*IntLit) exprNode()           {}
func (*IntLit) litNode()            {}

// FloatLit is a decoded 32-bit float literal.
type FloatLit struct {
	Value float32
	Tok   token.Token
}

func (l *FloatLit) Span() source.Span { return l.Tok.Span }
func (*FloatLit) exprNode()           {}
func (*FloatLit) litNode()            {}

// StringLit is a quoted string. Value is the text between the quotes;
// Tok.Text keeps the quoted form. Both alias the source buffer.
type StringLit struct {
	Value string
	Tok   token.Token
}

func (l *StringLit) Span() source.Span { return l.Tok.Span }
func (*StringLit) exprNode()           {}
func (*StringLit) litNode()            {}

// BoolLit is a 'true' or 'false' literal.
type BoolLit struct {
	Value bool
	Tok   token.Token
}

func (l *BoolLit) Span() source.Span { return l.Tok.Span }
func (*BoolLit) exprNode()           {}
func (*BoolLit) litNode()            {}

// PathLit is a slash-segmented resource path like sounds/mob/cat.
type PathLit struct {
	Value string
	Tok   token.Token
}

func (l *PathLit) Span() source.Span { return l.Tok.Span }
func (*PathLit) exprNode()           {}
func (*PathLit) litNode()            {}
