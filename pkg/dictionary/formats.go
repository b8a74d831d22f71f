package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// TextExtension is the only supported word list extension
const TextExtension = ".txt"

// ValidateTextFile checks that filename is a readable, non-empty .txt word list
func ValidateTextFile(filename string) error {
	fileInfo, err := os.Stat(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("stat %s: %w", filename, ErrResourceNotFound)
		}
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}

	if fileInfo.IsDir() {
		return fmt.Errorf("%s is a directory, expected a word list", filename)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext != TextExtension {
		return fmt.Errorf("file %s has invalid extension %s (expected: %s)", filename, ext, TextExtension)
	}

	if fileInfo.Size() < 1 {
		return fmt.Errorf("file %s is empty", filename)
	}

	log.Debugf("Text file %s validated (%d bytes)", filename, fileInfo.Size())
	return nil
}

// ListWordFiles returns the .txt word lists found directly in dir
func ListWordFiles(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+TextExtension))
	if err != nil {
		return nil, fmt.Errorf("failed to scan for word lists: %w", err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, filepath.Base(m))
	}
	return names, nil
}
