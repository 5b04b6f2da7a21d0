package domain

import "time"

// FileResult is the outcome of checksumming one input.
type FileResult struct {
	// Path as given by the caller, or "-" for stdin.
	Path string

	// Checksum of the content that was read (decoded content when the
	// input was decompressed).
	Checksum uint32

	// Size is the number of bytes folded into Checksum.
	Size int64

	// Format the input was decoded from, empty when read raw.
	Format CompressionFormat

	// Elapsed is the wall time spent reading the input.
	Elapsed time.Duration

	// Err is set when the input could not be fully read.
	Err error
}

// OK reports whether the input was read successfully.
func (r *FileResult) OK() bool {
	return r.Err == nil
}
