package driver

import (
	"mcfn/internal/ast"
	"mcfn/internal/parser"
	"mcfn/internal/source"
)

// ParseResult carries one file's parse outcome. Err is the parse
// failure (nil on success); Program is nil when Err is set — a failed
// parse yields no partial tree.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Program *ast.Program
	Err     error
}

// Parse loads and parses a single file.
func Parse(path string) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseFile(fs, fs.Get(fileID)), nil
}

// ParseVirtual parses in-memory content under the given name, for
// stdin and tests.
func ParseVirtual(name string, content []byte) *ParseResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return parseFile(fs, fs.Get(fileID))
}

func parseFile(fs *source.FileSet, file *source.File) *ParseResult {
	prog, err := parser.Parse(file)
	return &ParseResult{
		FileSet: fs,
		File:    file,
		Program: prog,
		Err:     err,
	}
}
