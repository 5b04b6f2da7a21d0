// Package domain defines the core types and options for checksumming inputs.
package domain

import "time"

// ScannerOptions defines how inputs are read and checksummed.
type ScannerOptions struct {
	// BufferSize is the size of each read chunk. Larger chunks mean fewer
	// read calls but more memory per worker. Must be a power of two
	// between 4KB and 16MB.
	//
	// Default: 64KB
	BufferSize uint32

	// Concurrency is the number of inputs checksummed in parallel.
	// Each input is still read sequentially by a single worker.
	//
	// Default: 4
	Concurrency uint16

	// ReadRateLimit caps the combined read throughput across all workers,
	// in bytes per second. Zero disables throttling.
	ReadRateLimit uint64

	// Timeout bounds the time spent on a single input. Zero means no limit.
	Timeout time.Duration

	// Recursive walks directories given as inputs.
	Recursive bool

	// ExcludeDirs skips directories whose path contains any of these strings.
	ExcludeDirs []string

	ChecksumOptions    *ChecksumOptions
	CompressionOptions *CompressionOptions
}
