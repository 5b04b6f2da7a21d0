// Package checksum implements the standard CRC-32 (IEEE 802.3, ISO-HDLC)
// checksum with a precomputed 256-entry lookup table.
//
// The low-level API works on a raw running accumulator:
//
//	acc := checksum.Seed()
//	acc = checksum.Update(acc, chunk1)
//	acc = checksum.Update(acc, chunk2)
//	sum := checksum.Finalize(acc)
//
// An accumulator must start from Seed. Updating a zero value produces a
// checksum that does not match CRC-32, and nothing detects it.
//
// Accumulator wraps the same steps in a value type that also satisfies
// hash.Hash32, and Calculate covers the one-shot case.
package checksum

// seed is both the initial accumulator and the final XOR mask.
const seed uint32 = 0xFFFFFFFF

// Seed returns the initial accumulator for a fresh calculation.
func Seed() uint32 {
	return seed
}

// Update folds p into the running accumulator acc and returns the new
// accumulator. Splitting a stream into any number of segments and updating
// with each in order gives the same result as a single call over the whole
// stream. An empty p returns acc unchanged.
func Update(acc uint32, p []byte) uint32 {
	tab := ieeeTable
	for _, b := range p {
		acc = (acc >> 8) ^ tab[byte(acc)^b]
	}
	return acc
}

// Finalize converts a running accumulator into the checksum of everything
// folded in so far. It does not consume acc, so updating may continue.
func Finalize(acc uint32) uint32 {
	return acc ^ seed
}

// Calculate returns the checksum of the concatenation of segments.
func Calculate(segments ...[]byte) uint32 {
	acc := seed
	for _, s := range segments {
		acc = Update(acc, s)
	}
	return Finalize(acc)
}

// Verify reports whether the checksum of the concatenated segments equals expected.
func Verify(expected uint32, segments ...[]byte) bool {
	return Calculate(segments...) == expected
}
