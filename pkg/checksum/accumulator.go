package checksum

import "hash"

var _ hash.Hash32 = (*Accumulator)(nil)

// Accumulator holds the state of one in-progress CRC-32 calculation.
//
// The state is kept in finalized form, so the zero value is a freshly
// seeded accumulator and needs no constructor. Copying an Accumulator forks
// the calculation: both copies continue independently from the same point.
//
// An Accumulator is not safe for concurrent use. Give each calculation its own.
type Accumulator struct {
	sum uint32
}

// New returns an accumulator ready to take data.
func New() *Accumulator {
	return &Accumulator{}
}

// Resume returns an accumulator that continues a calculation whose
// checksum so far is sum. Adding the remaining bytes yields the same
// result as having added everything to a single accumulator.
func Resume(sum uint32) *Accumulator {
	return &Accumulator{sum: sum}
}

// Reset discards all progress and reseeds the accumulator.
func (a *Accumulator) Reset() {
	a.sum = 0
}

// Add folds p into the calculation.
func (a *Accumulator) Add(p []byte) {
	a.sum = Finalize(Update(Finalize(a.sum), p))
}

// Value returns the checksum of the data added so far. It does not end the
// calculation; more data may be added afterwards.
func (a *Accumulator) Value() uint32 {
	return a.sum
}

// Write implements io.Writer. It never fails.
func (a *Accumulator) Write(p []byte) (int, error) {
	a.Add(p)
	return len(p), nil
}

// Sum32 is Value, for hash.Hash32.
func (a *Accumulator) Sum32() uint32 {
	return a.sum
}

// Sum appends the big-endian checksum to b.
func (a *Accumulator) Sum(b []byte) []byte {
	s := a.sum
	return append(b, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

// Size returns the number of bytes Sum appends.
func (a *Accumulator) Size() int { return Size }

// BlockSize returns 1; any write length is processed without padding.
func (a *Accumulator) BlockSize() int { return 1 }
