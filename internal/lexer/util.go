package lexer

import (
	"unicode/utf8"
)

// Rune helpers over the byte cursor.

func (lx *Lexer) bumpRune() {
	if lx.cursor.EOF() {
		return
	}
	if lx.cursor.Peek() < utf8.RuneSelf { // fast-path ASCII
		lx.cursor.Bump()
		return
	}
	_, sz := utf8.DecodeRuneInString(lx.file.Content[lx.cursor.Off:])
	lx.cursor.Off += uint32(sz)
}

// Byte classifiers. The lexical grammar is ASCII except for '§'.

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// isWordByte covers identifier characters: letters, digits, '_' and '.'.
func isWordByte(b byte) bool {
	return isAlpha(b) || isDec(b) || b == '_' || b == '.'
}

// isPathByte covers path segment characters, a superset of word
// characters that also allows ':' (namespace separators).
func isPathByte(b byte) bool {
	return isWordByte(b) || b == ':'
}

// cursorAt2 reports whether the next two bytes are exactly a, b.
func (lx *Lexer) cursorAt2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == a && b1 == b
}

// startsNumber reports whether a numeric literal begins at the given
// byte offset from the cursor: a digit, or '.' followed by a digit.
func (lx *Lexer) startsNumber(ahead uint32) bool {
	c := lx.cursor
	c.Off += ahead
	if isDec(c.Peek()) {
		return true
	}
	b0, b1, ok := c.Peek2()
	return ok && b0 == '.' && isDec(b1)
}

// try2 consumes the next two bytes if they are exactly a, b.
func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}
