package compression

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

type GzipCompression struct{}

func NewGzipCompression() *GzipCompression {
	return &GzipCompression{}
}

// NewReader reads every gzip member in r back to back, as gunzip does.
func (g *GzipCompression) NewReader(r io.Reader) (io.ReadCloser, error) {
	reader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	return reader, nil
}

func (g *GzipCompression) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriter(w), nil
}

func (g *GzipCompression) Format() string {
	return string(Gzip)
}
