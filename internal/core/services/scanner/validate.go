package scanner

import (
	"fmt"

	"github.com/iamNilotpal/crc/internal/adapters/checksum"
	"github.com/iamNilotpal/crc/internal/adapters/compression"
	"github.com/iamNilotpal/crc/internal/core/domain"
	"github.com/iamNilotpal/crc/pkg/errors"
)

// Validate checks opts after defaults have been applied.
func Validate(opts *domain.ScannerOptions) error {
	if err := validateBufferSize(opts.BufferSize); err != nil {
		return errors.NewValidationError("BufferSize", opts.BufferSize, err)
	}

	if opts.Concurrency < 1 || opts.Concurrency > MaxConcurrency {
		return errors.NewValidationError(
			"Concurrency", opts.Concurrency, fmt.Errorf("must be between 1 and %d", MaxConcurrency),
		)
	}

	if opts.Timeout < 0 {
		return errors.NewValidationError("Timeout", opts.Timeout, fmt.Errorf("must not be negative"))
	}

	if err := checksum.Validate(opts.ChecksumOptions); err != nil {
		return errors.NewValidationError("ChecksumOptions", opts.ChecksumOptions.Algorithm, err)
	}

	if err := compression.Validate(opts.CompressionOptions); err != nil {
		return errors.NewValidationError("CompressionOptions", opts.CompressionOptions.Format, err)
	}

	return nil
}

func validateBufferSize(size uint32) error {
	if size < DefaultMinBufferSize {
		return fmt.Errorf("buffer size must be at least 4KB (4096 bytes), got %d bytes", size)
	}

	if size > DefaultMaxBufferSize {
		return fmt.Errorf("buffer size must not exceed 16MB (16777216 bytes), got %d bytes", size)
	}

	// Power-of-two chunks keep reads aligned with filesystem blocks.
	if size&(size-1) != 0 {
		return fmt.Errorf("buffer size must be a power of 2, got %d bytes", size)
	}

	return nil
}
