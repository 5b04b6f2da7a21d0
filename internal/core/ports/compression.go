package ports

import "io"

// Defines the interface for compression formats an input may arrive in.
// This allows checksumming decoded content without the core knowing the format.
type CompressionPort interface {
	// NewReader returns a reader yielding the decoded form of r.
	// Closing it releases decoder resources but does not close r.
	NewReader(r io.Reader) (io.ReadCloser, error)

	// NewWriter returns a writer that encodes into w.
	// Close must be called to flush the final frame; it does not close w.
	NewWriter(w io.Writer) (io.WriteCloser, error)

	// Format returns the format identifier.
	Format() string
}
