package fs

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// Stdin is the path that names standard input.
const Stdin = "-"

type LocalFileSystem struct{}

func NewLocalFileSystem() *LocalFileSystem {
	return &LocalFileSystem{}
}

// Opens a file for reading. Stdin is returned wrapped so closing it is a
// no-op. Directories are refused with ErrIsDir.
func (lfs *LocalFileSystem) Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if stat.IsDir() {
		f.Close()
		return nil, &fs.PathError{Op: "open", Path: path, Err: ErrIsDir}
	}
	return f, nil
}

// Checks if a file exists or not.
func (lfs *LocalFileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// ErrIsDir is returned by Open for a directory.
var ErrIsDir = errors.New("is a directory")

// Expand resolves the given paths into the list of files to read, keeping
// the order in which they were given. Directories are walked in lexical
// order when recursive is set. A directory whose base name is one of
// excludeDirs is skipped, along with everything below it.
//
// Expand never drops an input it cannot resolve. A path that cannot be
// stat'ed or walked, or a directory given without recursive, is returned
// as is so that opening it reports the failure for that input alone.
func (lfs *LocalFileSystem) Expand(paths []string, recursive bool, excludeDirs []string) []string {
	files := make([]string, 0, len(paths))

	for _, path := range paths {
		if path == Stdin || !recursive {
			files = append(files, path)
			continue
		}

		stat, err := os.Stat(path)
		if err != nil || !stat.IsDir() {
			files = append(files, path)
			continue
		}

		_ = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				files = append(files, p)
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				if p != path && isExcluded(excludeDirs, d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if d.Type().IsRegular() {
				files = append(files, p)
			}
			return nil
		})
	}

	return files
}

// isExcluded reports whether a directory named name matches one of
// excludeDirs exactly.
func isExcluded(excludeDirs []string, name string) bool {
	return slices.Contains(excludeDirs, name)
}
