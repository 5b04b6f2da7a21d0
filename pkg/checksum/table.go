package checksum

// Polynomial is the reversed IEEE 802.3 polynomial.
const Polynomial uint32 = 0xEDB88320

// Size is the length of a CRC-32 checksum in bytes.
const Size = 4

// Table is a 256-entry lookup table of per-byte partial remainders.
type Table [256]uint32

// ieeeTable is populated during package initialization, so every caller
// observes a fully built table. It is never written afterwards.
var ieeeTable = MakeTable()

// MakeTable builds a fresh lookup table from Polynomial using the reflected
// (bit-reversed) Sarwate construction. Every call yields identical entries.
func MakeTable() *Table {
	t := new(Table)
	for i := range t {
		crc := uint32(i)
		for j := 0; j < 8; j++ {
			if crc&1 == 1 {
				crc = (crc >> 1) ^ Polynomial
			} else {
				crc >>= 1
			}
		}
		t[i] = crc
	}
	return t
}

// IEEETable returns the process-wide table used by Update. Callers must
// treat it as read-only.
func IEEETable() *Table {
	return ieeeTable
}
