package lexer

import (
	"strings"

	"mcfn/internal/token"
)

// scanComment scans a '#' line comment up to (excluding) the newline.
// The token span covers the whole comment; Text drops the '#' and any
// surrounding whitespace, staying a sub-slice of the source.
func (lx *Lexer) scanComment() lookItem {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'

	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}

	item := lx.emit(token.Comment, start)
	item.tok.Text = strings.TrimSpace(strings.TrimPrefix(item.tok.Text, "#"))
	return item
}
