package pool

import (
	"sync"
)

// BufferPool hands out fixed-size read buffers for chunked I/O.
type BufferPool struct {
	size int       // Length of every buffer handed out.
	pool sync.Pool // Holds *[]byte so Put does not allocate.
}

// Creates a new buffer pool whose buffers are exactly size bytes long.
func NewBufferPool(size int) *BufferPool {
	bp := &BufferPool{size: size}
	bp.pool.New = func() any {
		buf := make([]byte, size)
		return &buf
	}
	return bp
}

// Size returns the length of the buffers in the pool.
func (bp *BufferPool) Size() int {
	return bp.size
}

// Retrieves a buffer from the pool.
func (bp *BufferPool) Get() *[]byte {
	return bp.pool.Get().(*[]byte)
}

// Returns a buffer to the pool.
func (bp *BufferPool) Put(buf *[]byte) {
	// Foreign or resliced buffers would break the fixed-size contract.
	if buf == nil || cap(*buf) < bp.size {
		return
	}

	*buf = (*buf)[:bp.size]
	bp.pool.Put(buf)
}
