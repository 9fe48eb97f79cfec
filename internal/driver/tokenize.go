// Package driver wires the source, lexer and parser layers together
// for the CLI: load a file, run one pass, hand back the results.
package driver

import (
	"mcfn/internal/lexer"
	"mcfn/internal/source"
	"mcfn/internal/token"
)

// TokenizeResult carries everything the CLI needs to render a token dump.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Errs    []error // lexical failures in scan order
}

// Tokenize loads a file and scans it to EOF. Lexical failures do not
// stop the scan; they are collected alongside the tokens.
func Tokenize(path string) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fs.Get(fileID)), nil
}

func tokenizeFile(fs *source.FileSet, file *source.File) *TokenizeResult {
	lx := lexer.New(file)

	result := &TokenizeResult{FileSet: fs, File: file}
	for {
		tok, err := lx.Next()
		if err != nil {
			result.Errs = append(result.Errs, err)
		}
		result.Tokens = append(result.Tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return result
}
