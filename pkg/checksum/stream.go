package checksum

import "io"

// Reader passes reads through from an underlying reader and folds every
// byte it returns into a running checksum.
type Reader struct {
	r   io.Reader
	acc Accumulator
	n   int64
}

// NewReader wraps r. The checksum covers only bytes actually returned by Read.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if n > 0 {
		r.acc.Add(p[:n])
		r.n += int64(n)
	}
	return n, err
}

// Sum32 returns the checksum of everything read so far.
func (r *Reader) Sum32() uint32 { return r.acc.Value() }

// N returns the number of bytes read so far.
func (r *Reader) N() int64 { return r.n }

// Writer passes writes through to an underlying writer and folds every
// byte the underlying writer accepted into a running checksum.
type Writer struct {
	w   io.Writer
	acc Accumulator
	n   int64
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	if n > 0 {
		w.acc.Add(p[:n])
		w.n += int64(n)
	}
	return n, err
}

// Sum32 returns the checksum of everything written so far.
func (w *Writer) Sum32() uint32 { return w.acc.Value() }

// N returns the number of bytes written so far.
func (w *Writer) N() int64 { return w.n }

// Reset restarts the checksum and byte count. The underlying writer is kept.
func (w *Writer) Reset() {
	w.acc.Reset()
	w.n = 0
}
