// Package ast defines the syntax tree for command files.
//
// The tree is built in one pass and immutable afterwards. Each node
// owns its children exclusively; there are no cycles or back
// references. Literal and identifier text aliases the source buffer,
// so the buffer must outlive the tree.
//
// Every node reports its own span, composed from the spans of its
// outermost children. A Program with no statements degenerates to a
// zero-width span at offset 0.
package ast

import (
	"mcfn/internal/source"
)

// Node is implemented by every syntax node.
type Node interface {
	Span() source.Span
}

// Stmt is one top-level statement: a command or a comment.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is a command argument or a value inside a table or map.
type Expr interface {
	Node
	exprNode()
}

// Lit is a single-token literal expression.
type Lit interface {
	Expr
	litNode()
}

// Program is a whole command file: an ordered statement sequence.
type Program struct {
	Stmts []Stmt
}

func (p *Program) Span() source.Span {
	if len(p.Stmts) == 0 {
		return source.Span{}
	}
	return p.Stmts[0].Span().Cover(p.Stmts[len(p.Stmts)-1].Span())
}
