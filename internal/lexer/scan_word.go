package lexer

import (
	"strconv"

	"mcfn/internal/token"
)

// scanWord scans a maximal run of word characters and classifies it.
// Disambiguation:
//   - a run with an internal '/' is a Path (scanned with ':' allowed)
//   - otherwise numeric shapes win over the identifier shape
//   - 'true'/'false' are BoolLit, every other word is an Ident
//
// A '..' never embeds in a word, so '0..10' always splits into
// int, DotDot, int.
func (lx *Lexer) scanWord() lookItem {
	start := lx.cursor.Mark()

	// First pass allows ':' so that namespaced paths like
	// minecraft:block/stone scan as one token.
	sawColon := false
	for {
		b := lx.cursor.Peek()
		if b == '.' && lx.cursorAt2('.', '.') {
			break
		}
		if b == ':' {
			sawColon = true
			lx.cursor.Bump()
			continue
		}
		if isWordByte(b) {
			lx.cursor.Bump()
			continue
		}
		break
	}

	// An internal '/' continued by a path character commits to Path.
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '/' && (isPathByte(b1) || b1 == '/') {
		lx.cursor.Bump() // '/'
		for {
			b := lx.cursor.Peek()
			if b == '.' && lx.cursorAt2('.', '.') {
				break
			}
			if isPathByte(b) || b == '/' {
				lx.cursor.Bump()
				continue
			}
			break
		}
		return lx.emit(token.Path, start)
	}

	// Not a path: any ':' we swallowed belongs to a Colon token, rescan
	// with the narrow identifier alphabet.
	if sawColon {
		lx.cursor.Reset(start)
		for {
			b := lx.cursor.Peek()
			if b == '.' && lx.cursorAt2('.', '.') {
				break
			}
			if isWordByte(b) {
				lx.cursor.Bump()
				continue
			}
			break
		}
	}

	return lx.classifyWord(start)
}

// scanSignedNumber scans '-' followed by a numeric literal. Unlike
// scanWord it never absorbs trailing letters: '-5abc' is Int(-5)
// followed by an identifier.
func (lx *Lexer) scanSignedNumber() lookItem {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '-'

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	return lx.classifyWord(start)
}

// classifyWord decodes the scanned text into its literal token, or an
// identifier when no literal shape matches.
func (lx *Lexer) classifyWord(start Mark) lookItem {
	sp := lx.cursor.SpanFrom(start)
	text := sp.Text(lx.file.Content)

	switch {
	case isIntText(text):
		v, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return lx.fail(ErrBadInt, start, err)
		}
		item := lx.emit(token.IntLit, start)
		item.tok.Int = int32(v)
		return item

	case isFloatText(text):
		v, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return lx.fail(ErrBadFloat, start, err)
		}
		item := lx.emit(token.FloatLit, start)
		item.tok.Float = float32(v)
		return item

	case text == "true" || text == "false":
		v, err := strconv.ParseBool(text)
		if err != nil {
			return lx.fail(ErrBadBool, start, err)
		}
		item := lx.emit(token.BoolLit, start)
		item.tok.Bool = v
		return item

	default:
		return lx.emit(token.Ident, start)
	}
}

// isIntText reports the shape -?[0-9]+.
func isIntText(s string) bool {
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDec(s[i]) {
			return false
		}
	}
	return true
}

// isFloatText reports the shape -?[0-9]*\.[0-9]+.
func isFloatText(s string) bool {
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}
	dot := -1
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '.':
			if dot >= 0 {
				return false
			}
			dot = i
		case !isDec(s[i]):
			return false
		}
	}
	return dot >= 0 && dot < len(s)-1
}
