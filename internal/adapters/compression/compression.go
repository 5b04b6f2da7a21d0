// Package compression decodes compressed inputs so their content, rather
// than their encoded bytes, can be checksummed. Formats are zstd and gzip
// (github.com/klauspost/compress) and lz4 frames (github.com/pierrec/lz4/v4).
package compression

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/iamNilotpal/crc/internal/core/domain"
	"github.com/iamNilotpal/crc/internal/core/ports"
)

const (
	None domain.CompressionFormat = "none"
	Zstd domain.CompressionFormat = "zstd"
	Gzip domain.CompressionFormat = "gzip"
	LZ4  domain.CompressionFormat = "lz4"
)

// Returns CompressionOptions with decompression off.
func DefaultOptions() *domain.CompressionOptions {
	return &domain.CompressionOptions{Enable: false}
}

// Checks that a forced format is known and the decoder concurrency fits the machine.
func Validate(input *domain.CompressionOptions) error {
	switch input.Format {
	case "", None, Zstd, Gzip, LZ4:
	default:
		return fmt.Errorf("unsupported compression format: %s", input.Format)
	}

	if int(input.DecoderConcurrency) > runtime.NumCPU() {
		return fmt.Errorf(
			"decoder concurrency must be between 0 and %d, got %d", runtime.NumCPU(), input.DecoderConcurrency,
		)
	}

	return nil
}

// DetectFormat infers the format of path from its extension.
// Unknown extensions are None.
func DetectFormat(path string) domain.CompressionFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return Zstd
	case ".gz", ".gzip":
		return Gzip
	case ".lz4":
		return LZ4
	default:
		return None
	}
}

// Resolve picks the format for path under opts: nothing when decompression
// is off, the forced format when one is set, otherwise detection.
func Resolve(opts *domain.CompressionOptions, path string) domain.CompressionFormat {
	if opts == nil || !opts.Enable {
		return None
	}
	if opts.Format != "" {
		return opts.Format
	}
	return DetectFormat(path)
}

// New returns the codec for format.
func New(format domain.CompressionFormat, opts *domain.CompressionOptions) (ports.CompressionPort, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	switch format {
	case "", None:
		return passthrough{}, nil
	case Zstd:
		return NewZstdCompression(Options{Level: DefaultLevel, DecoderConcurrency: opts.DecoderConcurrency}), nil
	case Gzip:
		return NewGzipCompression(), nil
	case LZ4:
		return NewLZ4Compression(), nil
	default:
		return nil, fmt.Errorf("unsupported compression format: %s", format)
	}
}
