package scanner

import (
	"github.com/iamNilotpal/crc/internal/adapters/checksum"
	"github.com/iamNilotpal/crc/internal/adapters/compression"
	"github.com/iamNilotpal/crc/internal/core/domain"
)

const (
	DefaultMinBufferSize = 4096     // 4KB
	DefaultMaxBufferSize = 16777216 // 16MB
	DefaultBufferSize    = 65536    // 64KB

	DefaultConcurrency = 4
	MaxConcurrency     = 256
)

// DefaultOptions returns ScannerOptions with recommended defaults.
func DefaultOptions() *domain.ScannerOptions {
	return prepareDefaults(&domain.ScannerOptions{})
}

func prepareDefaults(opts *domain.ScannerOptions) *domain.ScannerOptions {
	if opts.BufferSize == 0 {
		opts.BufferSize = DefaultBufferSize
	}

	if opts.Concurrency == 0 {
		opts.Concurrency = DefaultConcurrency
	}

	if opts.ChecksumOptions == nil {
		opts.ChecksumOptions = checksum.DefaultOptions()
	}

	if opts.CompressionOptions == nil {
		opts.CompressionOptions = compression.DefaultOptions()
	}

	return opts
}
