package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferPool(t *testing.T) {
	bp := NewBufferPool(4096)
	assert.Equal(t, 4096, bp.Size())

	buf := bp.Get()
	assert.Len(t, *buf, 4096)

	*buf = (*buf)[:10]
	bp.Put(buf)

	again := bp.Get()
	assert.Len(t, *again, 4096)
}

func TestBufferPoolRejectsSmallBuffers(t *testing.T) {
	bp := NewBufferPool(64)
	small := make([]byte, 8)
	bp.Put(&small)
	bp.Put(nil)

	for i := 0; i < 4; i++ {
		assert.Len(t, *bp.Get(), 64)
	}
}
