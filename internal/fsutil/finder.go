// Package fsutil provides the file system helpers the add-on operations are
// built on: extension search, file copy and content comparison.
package fsutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FindFilesByExtension recursively searches rootPath for all regular files
// whose name ends with extension (including the dot, e.g. ".c16"). The
// match is case-sensitive. Results are in directory walk order. A rootPath
// that does not exist yields no files and no error.
func FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	if _, err := os.Stat(rootPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

// FileExists reports whether path exists and is not a directory. Errors
// other than "not exist" are returned so callers do not mistake an
// unreadable file for a missing one.
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}
