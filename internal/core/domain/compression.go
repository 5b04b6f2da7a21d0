package domain

// CompressionFormat names the encoding of an input stream.
type CompressionFormat string

// CompressionOptions controls how compressed inputs are treated.
type CompressionOptions struct {
	// Enable checksums the decoded content of compressed inputs instead of
	// their raw bytes. The format is detected from the file extension unless
	// Format is set.
	Enable bool

	// Format forces a single format for every input, including stdin.
	// Empty means detect per input.
	Format CompressionFormat

	// DecoderConcurrency caps goroutines used by a single zstd decoder.
	// Zero picks the library default.
	DecoderConcurrency uint8
}
