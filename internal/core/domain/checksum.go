package domain

import (
	"github.com/iamNilotpal/crc/internal/core/ports"
)

// ChecksumAlgorithm represents supported checksum algorithms
type ChecksumAlgorithm string

// ChecksumOptions selects the checksum used for inputs and manifests.
type ChecksumOptions struct {
	// Algorithm specifies which checksum algorithm to use.
	// Defaults to CRC32IEEE if not specified.
	Algorithm ChecksumAlgorithm

	// Custom allows using a custom Checksum implementation.
	// If provided, it takes precedence over Algorithm.
	Custom ports.Checksum
}
