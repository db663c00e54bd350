package model

import "sync"

// bufferPool recycles generation buffers between advances
type bufferPool struct {
	pool sync.Pool
}

var buffers = newBufferPool()

func newBufferPool() *bufferPool {
	return &bufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new([]bool)
			},
		},
	}
}

// Get retrieves a buffer of exactly n cells. Its contents are unspecified;
// callers overwrite every cell.
func (p *bufferPool) Get(n int) []bool {
	buf := p.pool.Get().(*[]bool)
	if cap(*buf) < n {
		return make([]bool, n)
	}
	return (*buf)[:n]
}

// Put returns a buffer to the pool for reuse
func (p *bufferPool) Put(buf []bool) {
	if buf == nil {
		return
	}
	p.pool.Put(&buf)
}
