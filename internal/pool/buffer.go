package pool

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

const (
	// DefaultBufferSize is the initial capacity of a serializer's buffer.
	DefaultBufferSize = 256
	// BufferMaxThreshold is the largest capacity a serializer keeps across
	// Release calls.
	BufferMaxThreshold = 1024 * 1024 // 1MiB
)

// Buffer is the serializer's growable scratch storage.
//
// len(B) is the logical capacity: it is always a power of two, and growth
// preserves every byte below the previous capacity. Encoding never shrinks it;
// only an explicit Shrink does. Only
// the range the serializer reports as written holds valid output; later bytes
// are stale.
type Buffer struct {
	// B is the underlying storage. Callers may read it but must not reslice it.
	B []byte
}

// NewBuffer creates a Buffer whose capacity is size rounded up to a power of
// two. Sizes below 1 yield a 1-byte buffer.
func NewBuffer(size int) *Buffer {
	return &Buffer{B: make([]byte, NextPowerOfTwo(max(size, 1)))}
}

// Cap returns the logical capacity.
func (b *Buffer) Cap() int {
	return len(b.B)
}

// EnsureCapacity grows the buffer to the smallest power of two that is at
// least required. It reports whether a reallocation happened.
//
// Any window obtained before a growth refers to the old storage.
func (b *Buffer) EnsureCapacity(required int) bool {
	if required <= len(b.B) {
		return false
	}

	grown := make([]byte, NextPowerOfTwo(required))
	copy(grown, b.B)
	b.B = grown

	return true
}

// Window returns B[offset:offset+size].
// Panics if the range is outside the current capacity.
func (b *Buffer) Window(offset, size int) []byte {
	if offset < 0 || size < 0 || offset > len(b.B)-size {
		panic("Window: invalid range")
	}

	return b.B[offset : offset+size : offset+size]
}

// Clone returns a copy of B[:n].
func (b *Buffer) Clone(n int) []byte {
	out := make([]byte, n)
	copy(out, b.B[:n])

	return out
}

// Shrink replaces the storage with a fresh buffer of the given size, rounded
// up to a power of two. It is the only way capacity goes down and is meant
// for dropping a buffer that grew past BufferMaxThreshold.
func (b *Buffer) Shrink(size int) {
	b.B = make([]byte, NextPowerOfTwo(max(size, 1)))
}

// NextPowerOfTwo returns the smallest power of two that is >= n.
// It returns 1 for n <= 1.
func NextPowerOfTwo[T constraints.Integer](n T) T {
	if n <= 1 {
		return 1
	}

	return T(1) << bits.Len64(uint64(n-1))
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo[T constraints.Integer](n T) bool {
	return n > 0 && n&(n-1) == 0
}
