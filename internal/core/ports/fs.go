package ports

import "io"

type FileSystem interface {
	Open(path string) (io.ReadCloser, error)
	Exists(path string) (bool, error)
	Expand(paths []string, recursive bool, excludeDirs []string) []string
}
