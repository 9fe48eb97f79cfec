package ast

import (
	"mcfn/internal/source"
	"mcfn/internal/token"
)

// Command is `[/] name arg*`.
//
// Args is nil when no token followed the name on its line; a command
// never has a present-but-empty argument list.
type Command struct {
	Slash *token.Token // optional leading '/'
	Name  Ident
	Args  []Expr
}

func (c *Command) Span() source.Span {
	sp := c.Name.Span()
	if c.Slash != nil {
		sp = sp.Cover(c.Slash.Span)
	}
	if n := len(c.Args); n > 0 {
		sp = sp.Cover(c.Args[n-1].Span())
	}
	return sp
}

func (*Command) stmtNode() {}

// Comment is a '#' line comment. Text carries the comment body with
// the marker and surrounding whitespace stripped, exactly as lexed.
type Comment struct {
	Text string
	Tok  token.Token
}

func (c *Comment) Span() source.Span { return c.Tok.Span }

func (*Comment) stmtNode() {}
