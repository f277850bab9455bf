package pool

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{127, 128},
		{128, 128},
		{129, 256},
		{1<<20 + 1, 1 << 21},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, NextPowerOfTwo(tt.in), "NextPowerOfTwo(%d)", tt.in)
	}

	require.Equal(t, uint32(64), NextPowerOfTwo(uint32(33)))
	require.Equal(t, int64(1<<40), NextPowerOfTwo(int64(1<<40)))
}

func TestIsPowerOfTwo(t *testing.T) {
	require.True(t, IsPowerOfTwo(1))
	require.True(t, IsPowerOfTwo(1024))
	require.False(t, IsPowerOfTwo(0))
	require.False(t, IsPowerOfTwo(-4))
	require.False(t, IsPowerOfTwo(12))
}

func TestNewBuffer(t *testing.T) {
	require.Equal(t, 1, NewBuffer(0).Cap())
	require.Equal(t, 1, NewBuffer(-3).Cap())
	require.Equal(t, 256, NewBuffer(256).Cap())
	require.Equal(t, 512, NewBuffer(300).Cap())
}

func TestBufferEnsureCapacity(t *testing.T) {
	t.Run("no growth when large enough", func(t *testing.T) {
		buf := NewBuffer(16)
		before := &buf.B[0]
		require.False(t, buf.EnsureCapacity(16))
		require.Same(t, before, &buf.B[0])
	})

	t.Run("grows to next power of two", func(t *testing.T) {
		buf := NewBuffer(16)
		require.True(t, buf.EnsureCapacity(17))
		require.Equal(t, 32, buf.Cap())

		require.True(t, buf.EnsureCapacity(1000))
		require.Equal(t, 1024, buf.Cap())
	})

	t.Run("preserves previous content", func(t *testing.T) {
		buf := NewBuffer(4)
		copy(buf.B, []byte{1, 2, 3, 4})

		buf.EnsureCapacity(5)
		require.Equal(t, []byte{1, 2, 3, 4}, buf.B[:4])
	})
}

func TestBufferInvariantUnderRandomRequests(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	buf := NewBuffer(1)
	maxRequested := 0
	written := 0
	stamp := make([]byte, 1<<14)
	for i := range stamp {
		stamp[i] = byte(i * 7)
	}

	for range 500 {
		required := rng.IntN(1 << 14)
		maxRequested = max(maxRequested, required)

		buf.EnsureCapacity(required)
		require.True(t, IsPowerOfTwo(buf.Cap()))
		require.GreaterOrEqual(t, buf.Cap(), maxRequested)

		// Everything stamped so far must survive growth.
		require.Equal(t, stamp[:written], buf.B[:written])
		for i := written; i < required; i++ {
			buf.B[i] = stamp[i]
		}
		written = max(written, required)
	}
}

func TestBufferWindow(t *testing.T) {
	buf := NewBuffer(8)

	w := buf.Window(2, 4)
	require.Len(t, w, 4)
	require.Equal(t, 4, cap(w))
	w[0] = 0xAB
	require.Equal(t, byte(0xAB), buf.B[2])

	require.Len(t, buf.Window(8, 0), 0)

	require.PanicsWithValue(t, "Window: invalid range", func() { buf.Window(5, 4) })
	require.PanicsWithValue(t, "Window: invalid range", func() { buf.Window(-1, 1) })
	require.PanicsWithValue(t, "Window: invalid range", func() { buf.Window(0, -1) })
}

func TestBufferClone(t *testing.T) {
	buf := NewBuffer(8)
	copy(buf.B, []byte{9, 8, 7})

	out := buf.Clone(3)
	require.Equal(t, []byte{9, 8, 7}, out)

	out[0] = 0
	require.Equal(t, byte(9), buf.B[0])
}

func TestBufferShrink(t *testing.T) {
	buf := NewBuffer(8)
	buf.EnsureCapacity(4096)
	buf.Shrink(100)
	require.Equal(t, 128, buf.Cap())
}

func BenchmarkBufferEnsureCapacity(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		buf := NewBuffer(1)
		for size := 1; size <= 1<<12; size <<= 1 {
			buf.EnsureCapacity(size + 1)
		}
	}
}
