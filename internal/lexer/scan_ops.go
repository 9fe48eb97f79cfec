package lexer

import (
	"mcfn/internal/token"
)

// scanOperatorOrPunct scans punctuation and scoreboard operators,
// two-byte forms before one-byte forms.
func (lx *Lexer) scanOperatorOrPunct() lookItem {
	start := lx.cursor.Mark()

	switch {
	case lx.try2('.', '.'):
		return lx.emit(token.DotDot, start)
	case lx.try2('<', '>'):
		return lx.emit(token.LtGt, start)
	case lx.try2('+', '='):
		return lx.emit(token.PlusAssign, start)
	case lx.try2('-', '='):
		return lx.emit(token.MinusAssign, start)
	case lx.try2('*', '='):
		return lx.emit(token.StarAssign, start)
	case lx.try2('/', '='):
		return lx.emit(token.SlashAssign, start)
	}

	switch lx.cursor.Bump() {
	case '/':
		return lx.emit(token.Slash, start)
	case '{':
		return lx.emit(token.LBrace, start)
	case '}':
		return lx.emit(token.RBrace, start)
	case '[':
		return lx.emit(token.LBracket, start)
	case ']':
		return lx.emit(token.RBracket, start)
	case '@':
		return lx.emit(token.At, start)
	case ',':
		return lx.emit(token.Comma, start)
	case '-':
		return lx.emit(token.Minus, start)
	case '!':
		return lx.emit(token.Bang, start)
	case '=':
		return lx.emit(token.Assign, start)
	case '>':
		return lx.emit(token.Gt, start)
	case '<':
		return lx.emit(token.Lt, start)
	case '*':
		return lx.emit(token.Star, start)
	case '~':
		return lx.emit(token.Tilde, start)
	case '^':
		return lx.emit(token.Caret, start)
	case ':':
		return lx.emit(token.Colon, start)
	default:
		return lx.fail(ErrUnknown, start, nil)
	}
}
