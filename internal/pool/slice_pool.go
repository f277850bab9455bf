package pool

import "sync"

// SlicePool recycles typed scratch slices.
type SlicePool[T any] struct {
	pool sync.Pool
}

// NewSlicePool creates an empty SlicePool.
func NewSlicePool[T any]() *SlicePool[T] {
	return &SlicePool[T]{
		pool: sync.Pool{
			New: func() any { return &[]T{} },
		},
	}
}

// Get returns a slice of length size and a cleanup function that must be
// called (typically with defer) to give it back.
//
// The contents of the returned slice are unspecified.
//
//	units, cleanup := pool.GetUint16Slice(n)
//	defer cleanup()
func (p *SlicePool[T]) Get(size int) ([]T, func()) {
	ptr, _ := p.pool.Get().(*[]T)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]T, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { p.pool.Put(ptr) }
}

var uint16SlicePool = NewSlicePool[uint16]()

// GetUint16Slice retrieves a UTF-16 code unit scratch slice.
func GetUint16Slice(size int) ([]uint16, func()) {
	return uint16SlicePool.Get(size)
}
