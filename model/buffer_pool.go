package model

import "sync"

// placement is a cell computed for the next generation but not yet written
type placement[T any] struct {
	pos   Position
	value T
}

// bufferPool recycles the per-stripe placement buffers of the parallel step
type bufferPool[T any] struct {
	pool sync.Pool
}

func newBufferPool[T any]() *bufferPool[T] {
	return &bufferPool[T]{
		pool: sync.Pool{
			New: func() interface{} {
				return new([]placement[T])
			},
		},
	}
}

// Get retrieves an empty buffer from the pool
func (p *bufferPool[T]) Get() *[]placement[T] {
	buf := p.pool.Get().(*[]placement[T])
	*buf = (*buf)[:0]
	return buf
}

// Put returns a buffer to the pool, dropping its values
func (p *bufferPool[T]) Put(buf *[]placement[T]) {
	if buf == nil {
		return
	}
	clear(*buf)
	*buf = (*buf)[:0]
	p.pool.Put(buf)
}
