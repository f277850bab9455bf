package encoding

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackedBoolSize(t *testing.T) {
	require.Equal(t, 0, PackedBoolSize(0))
	require.Equal(t, 1, PackedBoolSize(1))
	require.Equal(t, 1, PackedBoolSize(8))
	require.Equal(t, 2, PackedBoolSize(9))
	require.Equal(t, 13, PackedBoolSize(100))
}

func TestPackBools(t *testing.T) {
	tests := []struct {
		name   string
		values []bool
		want   []byte
	}{
		{"empty", nil, []byte{}},
		{"true false true", []bool{true, false, true}, []byte{0xA0}},
		{"first only", []bool{true}, []byte{0x80}},
		{"full byte", []bool{true, true, true, true, true, true, true, true}, []byte{0xFF}},
		{
			"second byte uses its own bit index",
			[]bool{false, false, false, false, false, false, false, false, true, false, true},
			[]byte{0x00, 0xA0},
		},
		{
			"alternating",
			[]bool{false, true, false, true, false, true, false, true, true},
			[]byte{0x55, 0x80},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Pre-fill with garbage to show padding is cleared.
			dst := []byte{0xFF, 0xFF, 0xFF}[:PackedBoolSize(len(tt.values))]
			PackBools(dst, tt.values)
			require.Equal(t, tt.want, dst)
		})
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))

	for _, n := range []int{1, 7, 8, 9, 63, 64, 65, 1000} {
		values := make([]bool, n)
		for i := range values {
			values[i] = rng.IntN(2) == 1
		}

		packed := make([]byte, PackedBoolSize(n))
		PackBools(packed, values)

		got := make([]bool, n)
		UnpackBools(got, packed)
		require.Equal(t, values, got, "n=%d", n)
	}
}

func TestPackBoolsFunc(t *testing.T) {
	arr := [10]bool{0: true, 9: true}
	dst := make([]byte, 2)
	PackBoolsFunc(dst, len(arr), func(i int) bool { return arr[i] })

	require.Equal(t, []byte{0x80, 0x40}, dst)
	require.True(t, BoolAt(dst, 0))
	require.False(t, BoolAt(dst, 1))
	require.True(t, BoolAt(dst, 9))
}
