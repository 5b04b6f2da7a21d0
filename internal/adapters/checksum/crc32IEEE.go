package checksum

import (
	"hash"

	"github.com/iamNilotpal/crc/internal/core/ports"
	"github.com/iamNilotpal/crc/pkg/checksum"
)

var _ ports.Checksum = (*crc32IEEE)(nil)

type crc32IEEE struct {
	name string
}

func NewCRC32IEEE() *crc32IEEE {
	return &crc32IEEE{name: string(CRC32IEEE)}
}

func (c *crc32IEEE) Calculate(segments ...[]byte) uint32 {
	return checksum.Calculate(segments...)
}

func (c *crc32IEEE) Verify(data []byte, expected uint32) bool {
	return checksum.Verify(expected, data)
}

func (c *crc32IEEE) New() hash.Hash32 {
	return checksum.New()
}

func (c *crc32IEEE) Size() uint8 {
	return checksum.Size
}

func (c *crc32IEEE) Name() string {
	return c.name
}
