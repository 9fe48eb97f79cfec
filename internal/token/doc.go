// Package token defines the lexical token kinds for command files.
// Invariants:
//   - Token.Text is a slice of the original source (no copies), except
//     for Comment where it is the trimmed sub-slice of the matched text.
//   - Token.Span covers the full matched text, including string quotes
//     and the '#' of a comment.
//   - Selectors are lexed as '@' (Kind: At) + Ident; no per-class kinds.
//   - Command names are plain identifiers. The lexer does not know any
//     command vocabulary.
package token
