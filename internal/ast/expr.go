package ast

import (
	"mcfn/internal/source"
	"mcfn/internal/token"
)

// Unary is a prefix operator applied to an operand: `!`, `~`, `^` or a
// format selector. X is nil only for the bare negation flag written as
// `key=!` inside a table field.
type Unary struct {
	Op token.Token
	X  Expr
}

func (u *Unary) Span() source.Span {
	if u.X != nil {
		return u.Op.Span.Cover(u.X.Span())
	}
	return u.Op.Span
}

func (*Unary) exprNode() {}

// Range is an inclusive integer interval `lo..hi` with either bound
// optionally open. Both bounds absent is a valid unbounded range.
type Range struct {
	Lo   *IntLit
	Dots token.Token // `..`
	Hi   *IntLit
}

func (r *Range) Span() source.Span {
	sp := r.Dots.Span
	if r.Lo != nil {
		sp = sp.Cover(r.Lo.Span())
	}
	if r.Hi != nil {
		sp = sp.Cover(r.Hi.Span())
	}
	return sp
}

func (*Range) exprNode() {}

// Map is a brace-delimited field sequence `{"key": value, ...}`.
type Map struct {
	LBrace token.Token
	Fields []MapField
	RBrace token.Token
}

func (m *Map) Span() source.Span {
	return m.LBrace.Span.Cover(m.RBrace.Span)
}

func (*Map) exprNode() {}

// MapField is one `"key": value` entry with an optional trailing comma.
type MapField struct {
	Key   StringLit
	Colon token.Token
	Value Expr
	Comma *token.Token
}

func (f *MapField) Span() source.Span {
	sp := f.Key.Span().Cover(f.Value.Span())
	if f.Comma != nil {
		sp = sp.Cover(f.Comma.Span)
	}
	return sp
}

// Target is an `@`-selector like `@e[type="zombie"]`: the marker, a
// target class, and an optional parameter table.
type Target struct {
	At     token.Token
	Class  Ident
	Params *Table[Ident]
}

func (t *Target) Span() source.Span {
	sp := t.At.Span.Cover(t.Class.Span())
	if t.Params != nil {
		sp = sp.Cover(t.Params.Span())
	}
	return sp
}

func (*Target) exprNode() {}
