package compression

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// LZ4Compression handles the lz4 frame format, not raw blocks.
type LZ4Compression struct{}

func NewLZ4Compression() *LZ4Compression {
	return &LZ4Compression{}
}

func (l *LZ4Compression) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}

func (l *LZ4Compression) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return lz4.NewWriter(w), nil
}

func (l *LZ4Compression) Format() string {
	return string(LZ4)
}
