package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"mcfn/internal/source"
)

// FileExt is the extension of command function files.
const FileExt = ".mcfunction"

// ParseDir loads every *.mcfunction file under dir and parses them
// concurrently. Files are loaded serially into one FileSet; parsing
// shares nothing, so each file runs on its own goroutine. Results come
// back in walk (sorted path) order. The returned error covers walking
// and loading only; per-file parse failures live in the results.
func ParseDir(ctx context.Context, dir string, jobs int) (*source.FileSet, []*ParseResult, error) {
	paths, err := listFunctionFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	files := make([]*source.File, len(paths))
	for i, path := range paths {
		id, err := fileSet.Load(path)
		if err != nil {
			return nil, nil, err
		}
		files[i] = fileSet.Get(id)
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]*ParseResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = parseFile(fileSet, file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return fileSet, results, nil
}

// listFunctionFiles returns the sorted list of *.mcfunction files under dir.
func listFunctionFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, FileExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
