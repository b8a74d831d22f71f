// Package dictionary provides the word sources the vocabulary is bulk loaded from.
// A source resolves a name to a plain text stream holding one word per line.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// ErrResourceNotFound is returned when a source cannot resolve a name
var ErrResourceNotFound = errors.New("resource not found")

// maxLineSize caps a single line read by ScanLines
const maxLineSize = 1024 * 1024

// Source opens named word lists
type Source interface {
	Open(name string) (io.ReadCloser, error)
}

// FSSource resolves names inside an fs.FS
type FSSource struct {
	fsys fs.FS
}

// NewFSSource wraps any fs.FS, such as an embed.FS or fstest.MapFS.
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

// NewDirSource resolves names relative to dir on disk
func NewDirSource(dir string) *FSSource {
	return &FSSource{fsys: os.DirFS(dir)}
}

// Open returns the named list. Missing or invalid names map to ErrResourceNotFound.
func (s *FSSource) Open(name string) (io.ReadCloser, error) {
	if name == "" || !fs.ValidPath(name) {
		return nil, fmt.Errorf("open %q: %w", name, ErrResourceNotFound)
	}
	file, err := s.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("open %q: %w", name, ErrResourceNotFound)
		}
		return nil, fmt.Errorf("open %q: %w", name, err)
	}
	return file, nil
}

// ScanLines calls fn for every line of r, without the line terminator.
// Stops at the first error returned by fn.
func ScanLines(r io.Reader, fn func(line string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if err := fn(line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read lines: %w", err)
	}
	return nil
}
