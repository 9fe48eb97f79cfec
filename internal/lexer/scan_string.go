package lexer

import (
	"mcfn/internal/token"
)

// scanString scans a double-quoted string. There are no escape
// sequences; the string runs to the next '"' and may cross newlines.
// Token.Text keeps the quotes; consumers slice them off.
func (lx *Lexer) scanString() lookItem {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	for {
		if lx.cursor.EOF() {
			return lx.fail(ErrUnknown, start, nil)
		}
		if lx.cursor.Bump() == '"' {
			return lx.emit(token.StringLit, start)
		}
	}
}
