package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents a bare word: command names, selector classes, table keys.
	Ident
	// Path represents a slash-segmented resource path like textures/block/stone.
	Path

	// IntLit represents an integer literal token.
	IntLit
	// FloatLit represents a float literal token.
	FloatLit
	// StringLit represents a quoted string literal token.
	StringLit
	// BoolLit represents the literals 'true' and 'false'.
	BoolLit

	// Comment represents a '#' line comment with the marker and edge whitespace stripped.
	Comment
	// Newline represents a '\n'. Other whitespace is skipped, newlines are not.
	Newline
	// FormatSel represents a '§' format selector and the rune following it.
	FormatSel

	// Slash represents the slash token.
	Slash // /
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// At represents the selector marker token.
	At // @
	// Comma represents the comma token.
	Comma // ,
	// Minus represents the minus token.
	Minus // -
	// Bang represents the negation token.
	Bang // !
	// DotDot represents the range limit token.
	DotDot // ..
	// Assign represents the assign token; acts as equals in parameter tables.
	Assign // =
	// LtGt represents the scoreboard swap operator token.
	LtGt // <>
	// PlusAssign represents the plus assign operator token.
	PlusAssign // +=
	// MinusAssign represents the minus assign operator token.
	MinusAssign // -=
	// StarAssign represents the star assign operator token.
	StarAssign // *=
	// SlashAssign represents the slash assign operator token.
	SlashAssign // /=
	// Gt represents the greater-than operator token.
	Gt // >
	// Lt represents the less-than operator token.
	Lt // <
	// Star represents the wildcard token.
	Star // *
	// Tilde represents the relative coordinate prefix token.
	Tilde // ~
	// Caret represents the local coordinate prefix token.
	Caret // ^
	// Colon represents the colon token.
	Colon // :
)

var kindNames = [...]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Ident:       "Ident",
	Path:        "Path",
	IntLit:      "IntLit",
	FloatLit:    "FloatLit",
	StringLit:   "StringLit",
	BoolLit:     "BoolLit",
	Comment:     "Comment",
	Newline:     "Newline",
	FormatSel:   "FormatSel",
	Slash:       "Slash",
	LBrace:      "LBrace",
	RBrace:      "RBrace",
	LBracket:    "LBracket",
	RBracket:    "RBracket",
	At:          "At",
	Comma:       "Comma",
	Minus:       "Minus",
	Bang:        "Bang",
	DotDot:      "DotDot",
	Assign:      "Assign",
	LtGt:        "LtGt",
	PlusAssign:  "PlusAssign",
	MinusAssign: "MinusAssign",
	StarAssign:  "StarAssign",
	SlashAssign: "SlashAssign",
	Gt:          "Gt",
	Lt:          "Lt",
	Star:        "Star",
	Tilde:       "Tilde",
	Caret:       "Caret",
	Colon:       "Colon",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
