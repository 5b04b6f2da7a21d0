package ports

import "hash"

// Defines an interface for calculating and verifying data checksums.
type Checksum interface {
	// Calculates the checksum of the concatenated segments.
	Calculate(segments ...[]byte) uint32

	// Reports whether the checksum of data equals expected.
	Verify(data []byte, expected uint32) bool

	// New returns a fresh streaming hash for incremental calculation.
	New() hash.Hash32

	// Size returns the checksum width in bytes.
	Size() uint8

	// Name returns the algorithm identifier.
	Name() string
}
