package ast

import (
	"mcfn/internal/source"
	"mcfn/internal/token"
)

// Table is a bracket-delimited field sequence `[k=v, ...]`, generic
// over the key node so a future key grammar can reuse the structure.
// Selector parameter tables instantiate it with Ident keys.
type Table[K Node] struct {
	LBracket token.Token
	Fields   []TableField[K]
	RBracket token.Token
}

func (t *Table[K]) Span() source.Span {
	return t.LBracket.Span.Cover(t.RBracket.Span)
}

// TableField is one `key=value` entry. Value is nil for a flag field
// (`key=,`); the bare negation flag `key=!` is a Unary with a nil
// operand. Comma holds the optional trailing separator.
type TableField[K Node] struct {
	Key   K
	Eq    token.Token
	Value Expr
	Comma *token.Token
}

func (f *TableField[K]) Span() source.Span {
	sp := f.Key.Span().Cover(f.Eq.Span)
	if f.Value != nil {
		sp = sp.Cover(f.Value.Span())
	}
	if f.Comma != nil {
		sp = sp.Cover(f.Comma.Span)
	}
	return sp
}
