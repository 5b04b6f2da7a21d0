package compression

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

type Options struct {
	Level              uint8
	DecoderConcurrency uint8
}

// ZstdCompression streams zstd frames. Each reader or writer it returns
// owns its own decoder or encoder, so one instance may serve many inputs
// concurrently.
type ZstdCompression struct {
	level       uint8 // Encoder level (1-4)
	concurrency uint8 // Decoder goroutines per stream, 0 for the library default
}

// Compression level constants define the trade-off between compression ratio and speed.
const (
	FastestLevel uint8 = 1 // Optimized for speed with minimal compression
	DefaultLevel uint8 = 2 // Balanced between speed and compression ratio
	BestLevel    uint8 = 4 // Maximum compression ratio, higher CPU usage
)

// NewZstdCompression creates a zstd codec. Levels outside
// FastestLevel..BestLevel are clamped.
func NewZstdCompression(opts Options) *ZstdCompression {
	level := opts.Level
	if level < FastestLevel {
		level = FastestLevel
	}
	if level > BestLevel {
		level = BestLevel
	}
	return &ZstdCompression{level: level, concurrency: opts.DecoderConcurrency}
}

// NewReader returns a streaming decoder over r. Closing it releases the
// decoder's goroutines.
func (z *ZstdCompression) NewReader(r io.Reader) (io.ReadCloser, error) {
	var opts []zstd.DOption
	if z.concurrency > 0 {
		opts = append(opts, zstd.WithDecoderConcurrency(int(z.concurrency)))
	}

	decoder, err := zstd.NewReader(r, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	return decoder.IOReadCloser(), nil
}

// NewWriter returns a streaming encoder into w.
func (z *ZstdCompression) NewWriter(w io.Writer) (io.WriteCloser, error) {
	encoder, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.EncoderLevel(z.level)))
	if err != nil {
		return nil, fmt.Errorf("failed to create encoder: %w", err)
	}
	return encoder, nil
}

// Level returns the encoder level.
func (z *ZstdCompression) Level() uint8 {
	return z.level
}

func (z *ZstdCompression) Format() string {
	return string(Zstd)
}
