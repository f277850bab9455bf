package serializer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tiny/accessor"
	"github.com/arloliu/tiny/errs"
	"github.com/arloliu/tiny/format"
	"github.com/arloliu/tiny/frame"
	"github.com/arloliu/tiny/value"
)

func TestFramedRoundTrip(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	in := make([]float32, 1000)
	for i := range in {
		in[i] = float32(i % 7)
	}

	for _, ct := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		data, err := SerializeFramed(s, in, frame.WithCompression(ct))
		require.NoError(t, err)

		out, h, err := DeserializeFramed[[]float32](s, data)
		require.NoError(t, err, ct.String())
		require.Equal(t, in, out)
		require.Equal(t, ct, h.Compression)
		require.Equal(t, uint32(4+4*len(in)), h.RawSize)
	}
}

func TestFramedErrors(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	_, err = SerializeFramed(s, map[int]int{})
	require.ErrorIs(t, err, errs.ErrUnsupportedKind)

	data, err := SerializeFramed(s, int32(1))
	require.NoError(t, err)
	data[frame.HeaderSize] ^= 0xff

	_, _, err = DeserializeFramed[int32](s, data)
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
}

type account struct {
	ID      int64
	Balance value.Decimal
	Tags    []uint16
}

func TestSerializeField(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	tags := accessor.New(
		func(a account) []uint16 { return a.Tags },
		func(a *account, v []uint16) { a.Tags = v },
	)

	src := account{ID: 1, Tags: []uint16{4, 5}}
	data, err := SerializeField(s, src, tags)
	require.NoError(t, err)

	want, err := Serialize(s, []uint16{4, 5})
	require.NoError(t, err)
	require.Equal(t, want, data)

	var dst account
	require.NoError(t, DeserializeField(s, data, &dst, tags))
	require.Equal(t, []uint16{4, 5}, dst.Tags)
	require.Zero(t, dst.ID)

	require.ErrorIs(t, DeserializeField(s, data[:2], &dst, tags), errs.ErrTruncatedData)
}
