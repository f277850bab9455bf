package hash

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		data string
		sum  uint64
	}{
		{"empty", "", 0xef46db3751d8e999},
		{"short", "test", 0x4fdcca5ddb678139},
		{"long", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.sum, Checksum([]byte(tt.data)))
		})
	}
}

func TestChecksumParts(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(rng.UintN(256))
	}

	whole := Checksum(data)
	require.Equal(t, whole, ChecksumParts(data[:100], data[100:3000], data[3000:]))
	require.Equal(t, whole, ChecksumParts(data))
	require.Equal(t, Checksum(nil), ChecksumParts())
}

func TestChecksumDetectsFlip(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	sum := Checksum(data)
	data[3] ^= 0x10
	require.NotEqual(t, sum, Checksum(data))
}

func BenchmarkChecksum(b *testing.B) {
	data := make([]byte, 16*1024)
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for b.Loop() {
		_ = Checksum(data)
	}
}
