package reader

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Reader streams lines from a set of input files, one file at a time
// in expansion order. Invalid UTF-8 byte sequences are replaced rather
// than treated as fatal, and an optional global line cap stops
// consumption once reached.
type Reader struct {
	paths    []string
	maxLines int
}

// New resolves the given path-or-glob patterns to concrete files.
// Recursive patterns like logs/**/*.log are supported via doublestar.
// Matching no files at all is an error.
func New(patterns []string, maxLines int) (*Reader, error) {
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern,
			doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
		if err != nil {
			return nil, fmt.Errorf("cannot expand pattern %q: %w", pattern, err)
		}
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no files matched: %v", patterns)
	}
	return &Reader{paths: paths, maxLines: maxLines}, nil
}

// Paths returns the resolved input files.
func (r *Reader) Paths() []string {
	return r.paths
}

// Scan invokes fn for every input line until all files are exhausted
// or the line cap is hit. Open and read failures abort the scan.
func (r *Reader) Scan(fn func(line string)) error {
	processed := 0
	for _, path := range r.paths {
		capped, err := r.scanFile(path, fn, &processed)
		if err != nil {
			return err
		}
		if capped {
			return nil
		}
	}
	return nil
}

func (r *Reader) scanFile(path string, fn func(string), processed *int) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		if r.maxLines != 0 && *processed >= r.maxLines {
			return true, nil
		}
		*processed++
		fn(strings.ToValidUTF8(scanner.Text(), "�"))
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("read error on %s: %w", path, err)
	}
	return false, nil
}
