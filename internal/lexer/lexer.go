package lexer

import (
	"unicode/utf8"

	"mcfn/internal/source"
	"mcfn/internal/token"
)

// sectionSign is the '§' rune that starts a format selector.
const sectionSign = '§'

// Lexer turns a source file into a pull-based token stream.
//
// A lexer is single-use: consuming it advances an internal cursor and
// there is no rewind. To re-scan the same text, construct a new Lexer.
// The look buffer holds at most two tokens, which is the parser's
// worst-case lookahead (integer followed by '..' selects a range).
type Lexer struct {
	file   *source.File
	cursor Cursor

	look  [2]lookItem
	nlook int
}

type lookItem struct {
	tok token.Token
	err *Error
}

// New creates a lexer over the given file.
func New(file *source.File) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
	}
}

// Next consumes and returns the next token. Whitespace other than
// newlines is skipped. At the end of input it returns an EOF token,
// and keeps returning it. A non-nil error reports a lexical failure
// over the returned token's span; scanning may continue past it.
func (lx *Lexer) Next() (token.Token, error) {
	if lx.nlook > 0 {
		item := lx.look[0]
		lx.look[0] = lx.look[1]
		lx.look[1] = lookItem{}
		lx.nlook--
		return item.tok, item.errOrNil()
	}
	item := lx.scan()
	return item.tok, item.errOrNil()
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() (token.Token, error) {
	lx.fill(1)
	return lx.look[0].tok, lx.look[0].errOrNil()
}

// PeekAhead returns the token after the next one without consuming
// either. It exists for the single two-token decision in the grammar:
// an integer is a range start only when '..' follows.
func (lx *Lexer) PeekAhead() (token.Token, error) {
	lx.fill(2)
	return lx.look[1].tok, lx.look[1].errOrNil()
}

// EmptySpan returns a zero-width span at the current scan position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (li lookItem) errOrNil() error {
	if li.err != nil {
		return li.err
	}
	return nil
}

func (lx *Lexer) fill(n int) {
	for lx.nlook < n {
		lx.look[lx.nlook] = lx.scan()
		lx.nlook++
	}
}

// scan produces exactly one token (or lexical failure) from the cursor.
func (lx *Lexer) scan() lookItem {
	lx.skipSpace()

	if lx.cursor.EOF() {
		return lookItem{tok: token.Token{Kind: token.EOF, Span: lx.EmptySpan()}}
	}

	ch := lx.cursor.Peek()
	switch {
	case ch == '\n':
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		return lx.emit(token.Newline, start)

	case ch == '#':
		return lx.scanComment()

	case ch == '"':
		return lx.scanString()

	case ch == '-' && lx.startsNumber(1):
		return lx.scanSignedNumber()

	case ch == '.' && lx.cursorAt2('.', '.'):
		// '..' is punctuation, never the start of a word
		return lx.scanOperatorOrPunct()

	case isWordByte(ch):
		return lx.scanWord()

	case ch >= utf8.RuneSelf:
		r, _ := utf8.DecodeRuneInString(lx.file.Content[lx.cursor.Off:])
		if r == sectionSign {
			return lx.scanFormatSel()
		}
		return lx.failRune()

	default:
		return lx.scanOperatorOrPunct()
	}
}

// skipSpace skips spaces, tabs and carriage returns. Newlines are
// significant and stay in the stream.
func (lx *Lexer) skipSpace() {
	for {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\r':
			lx.cursor.Bump()
		default:
			return
		}
	}
}

func (lx *Lexer) emit(kind token.Kind, start Mark) lookItem {
	sp := lx.cursor.SpanFrom(start)
	return lookItem{tok: token.Token{
		Kind: kind,
		Span: sp,
		Text: sp.Text(lx.file.Content),
	}}
}

func (lx *Lexer) fail(kind ErrorKind, start Mark, cause error) lookItem {
	sp := lx.cursor.SpanFrom(start)
	return lookItem{
		tok: token.Token{Kind: token.Invalid, Span: sp, Text: sp.Text(lx.file.Content)},
		err: newError(kind, sp, cause),
	}
}

// failRune consumes one rune and reports it as unrecognized.
func (lx *Lexer) failRune() lookItem {
	start := lx.cursor.Mark()
	lx.bumpRune()
	return lx.fail(ErrUnknown, start, nil)
}

// scanFormatSel scans '§' plus the selected rune.
func (lx *Lexer) scanFormatSel() lookItem {
	start := lx.cursor.Mark()
	lx.bumpRune() // '§'
	if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
		// a bare section sign selects nothing
		return lx.fail(ErrUnknown, start, nil)
	}
	lx.bumpRune()
	return lx.emit(token.FormatSel, start)
}
