package serializer

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/arloliu/tiny/errs"
	"github.com/arloliu/tiny/format"
	"github.com/arloliu/tiny/value"
)

func roundTrip[T any](t *testing.T, s *Serializer, in T) T {
	t.Helper()

	data, err := Serialize(s, in)
	require.NoError(t, err)

	out, next, err := DeserializeAt[T](s, data, 0)
	require.NoError(t, err)
	require.Equal(t, len(data), next, "decoder must consume exactly the encoded bytes")

	return out
}

func TestRoundTripScalars(t *testing.T) {
	for _, casts := range []bool{true, false} {
		s, err := New(WithEmitNumericCasts(casts))
		require.NoError(t, err)

		require.True(t, roundTrip(t, s, true))
		require.Equal(t, uint8(255), roundTrip(t, s, uint8(255)))
		require.Equal(t, int8(-128), roundTrip(t, s, int8(-128)))
		require.Equal(t, int16(math.MinInt16), roundTrip(t, s, int16(math.MinInt16)))
		require.Equal(t, uint16(math.MaxUint16), roundTrip(t, s, uint16(math.MaxUint16)))
		require.Equal(t, int32(math.MinInt32), roundTrip(t, s, int32(math.MinInt32)))
		require.Equal(t, uint32(math.MaxUint32), roundTrip(t, s, uint32(math.MaxUint32)))
		require.Equal(t, int64(math.MinInt64), roundTrip(t, s, int64(math.MinInt64)))
		require.Equal(t, uint64(math.MaxUint64), roundTrip(t, s, uint64(math.MaxUint64)))
		require.Equal(t, -7, roundTrip(t, s, -7))
		require.Equal(t, uint(7), roundTrip(t, s, uint(7)))
		require.Equal(t, float32(-1.25), roundTrip(t, s, float32(-1.25)))
		require.Equal(t, math.MaxFloat64, roundTrip(t, s, math.MaxFloat64))
		require.True(t, math.IsNaN(roundTrip(t, s, math.NaN())))
	}
}

func TestRoundTripValueTypes(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	require.Equal(t, float16.Fromfloat32(0.5), roundTrip(t, s, float16.Fromfloat32(0.5)))
	require.Equal(t, value.NewChar('Ω'), roundTrip(t, s, value.NewChar('Ω')))
	require.Equal(t, 90*time.Minute, roundTrip(t, s, 90*time.Minute))

	d := value.MustFromString("-12345.6789")
	require.Equal(t, d, roundTrip(t, s, d))

	ts := time.Date(2024, 2, 29, 13, 14, 15, 123456700, time.UTC)
	require.True(t, ts.Equal(roundTrip(t, s, ts)))

	local := time.Date(2024, 2, 29, 13, 14, 15, 0, time.FixedZone("X", 3600))
	require.True(t, local.Equal(roundTrip(t, s, local)))

	off := value.NewDateTimeOffset(time.Date(2020, 1, 2, 3, 4, 5, 0, time.FixedZone("Y", -7200)))
	got := roundTrip(t, s, off)
	require.Equal(t, off.LocalTicks(), got.LocalTicks())

	require.Equal(t, value.Vector3{X: 1, Y: 2, Z: 3}, roundTrip(t, s, value.Vector3{X: 1, Y: 2, Z: 3}))
	require.Equal(t, value.IdentityQuaternion, roundTrip(t, s, value.IdentityQuaternion))
	require.Equal(t, value.Rect{X: 1, Y: 2, Width: 3, Height: 4}, roundTrip(t, s, value.Rect{X: 1, Y: 2, Width: 3, Height: 4}))
	require.Equal(t, value.IntVector4{X: -1, Y: 2, Z: -3, W: 4}, roundTrip(t, s, value.IntVector4{X: -1, Y: 2, Z: -3, W: 4}))

	b := value.Bounds{Center: value.Vector3{X: 1}, Size: value.Vector3{Y: 2}}
	require.Equal(t, b, roundTrip(t, s, b))
}

func TestRoundTripContainers(t *testing.T) {
	for _, variable := range []bool{false, true} {
		for _, packed := range []bool{false, true} {
			s, err := New(WithVariablePrefixLength(variable), WithCompressBoolArrays(packed))
			require.NoError(t, err)

			require.Equal(t, []int32{1, -2, 3}, roundTrip(t, s, []int32{1, -2, 3}))
			require.Equal(t, []byte("raw"), roundTrip(t, s, []byte("raw")))
			require.Equal(t, [4]uint16{1, 2, 3, 4}, roundTrip(t, s, [4]uint16{1, 2, 3, 4}))
			require.Nil(t, roundTrip(t, s, []float64(nil)))
			require.Equal(t, []float64{}, roundTrip(t, s, []float64{}))

			bools := []bool{true, false, true, true, false, false, false, true, true, false, true}
			require.Equal(t, bools, roundTrip(t, s, bools))
			require.Equal(t, [3]bool{true, false, true}, roundTrip(t, s, [3]bool{true, false, true}))

			vecs := []value.Vector2{{X: 1, Y: 2}, {X: 3, Y: 4}}
			require.Equal(t, vecs, roundTrip(t, s, vecs))

			big := make([]int16, 40000)
			for i := range big {
				big[i] = int16(i)
			}
			require.Equal(t, big, roundTrip(t, s, big))
		}
	}
}

func TestRoundTripNullable(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	require.Nil(t, roundTrip(t, s, (*bool)(nil)))
	require.Nil(t, roundTrip(t, s, (*int64)(nil)))
	require.Nil(t, roundTrip(t, s, (*string)(nil)))

	f, tr := false, true
	require.False(t, *roundTrip(t, s, &f))
	require.True(t, *roundTrip(t, s, &tr))

	n := int64(-99)
	require.Equal(t, n, *roundTrip(t, s, &n))

	v := value.Vector4{W: 1}
	require.Equal(t, v, *roundTrip(t, s, &v))

	str := "present"
	require.Equal(t, str, *roundTrip(t, s, &str))
}

func TestRoundTripStringsEveryEncoding(t *testing.T) {
	ascii := "Hello, tiny world! +-~"
	unicodeText := "héllo wörld ✓ 𝄞 日本"

	encodings := []struct {
		enc     format.StringEncoding
		unicode bool
	}{
		{format.StringEncodingUTF8, true},
		{format.StringEncodingDefault, true},
		{format.StringEncodingChar, true},
		{format.StringEncodingUnicode, true},
		{format.StringEncodingBigEndianUnicode, true},
		{format.StringEncodingUTF32, true},
		{format.StringEncodingUTF7, true},
		{format.StringEncodingASCII, false},
		{format.StringEncodingByte, false},
	}

	for _, tt := range encodings {
		for _, variable := range []bool{false, true} {
			s, err := New(WithStringEncoding(tt.enc), WithVariablePrefixLength(variable))
			require.NoError(t, err)

			require.Equal(t, ascii, roundTrip(t, s, ascii), tt.enc.String())
			require.Equal(t, "", roundTrip(t, s, ""), tt.enc.String())
			if tt.unicode {
				require.Equal(t, unicodeText, roundTrip(t, s, unicodeText), tt.enc.String())
			}
		}
	}
}

func TestASCIIReplacesNonASCII(t *testing.T) {
	s, err := New(WithStringEncoding(format.StringEncodingASCII))
	require.NoError(t, err)

	require.Equal(t, "caf? ?", roundTrip(t, s, "café ✓"))
}

func TestAbsentStringDecodesEmpty(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	data, err := Serialize(s, (*string)(nil))
	require.NoError(t, err)

	got, err := Deserialize[string](s, data)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestDeserializeAtChains(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	buf, n, err := SerializeAt(s, "id", nil, 0)
	require.NoError(t, err)
	buf, n, err = SerializeAt(s, int32(17), buf, n)
	require.NoError(t, err)
	buf, n, err = SerializeAt(s, []bool{true}, buf, n)
	require.NoError(t, err)
	require.Len(t, buf, n)

	id, next, err := DeserializeAt[string](s, buf, 0)
	require.NoError(t, err)
	require.Equal(t, "id", id)

	num, next, err := DeserializeAt[int32](s, buf, next)
	require.NoError(t, err)
	require.Equal(t, int32(17), num)

	flags, next, err := DeserializeAt[[]bool](s, buf, next)
	require.NoError(t, err)
	require.Equal(t, []bool{true}, flags)
	require.Equal(t, len(buf), next)
}

func TestDeserializeErrors(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	tests := []struct {
		name   string
		decode func() error
		want   error
	}{
		{"truncated scalar", func() error {
			_, err := Deserialize[int64](s, []byte{1, 2, 3})
			return err
		}, errs.ErrTruncatedData},
		{"truncated prefix", func() error {
			_, err := Deserialize[string](s, []byte{1, 0})
			return err
		}, errs.ErrTruncatedData},
		{"truncated payload", func() error {
			data, _ := Serialize(s, []int32{1, 2, 3})
			_, err := Deserialize[[]int32](s, data[:len(data)-1])
			return err
		}, errs.ErrTruncatedData},
		{"truncated text", func() error {
			data, _ := Serialize(s, "hello")
			_, err := Deserialize[string](s, data[:6])
			return err
		}, errs.ErrTruncatedData},
		{"negative length", func() error {
			_, err := Deserialize[[]int32](s, []byte{0xfe, 0xff, 0xff, 0xff})
			return err
		}, errs.ErrInvalidPrefix},
		{"array length mismatch", func() error {
			data, _ := Serialize(s, []uint16{1, 2})
			_, err := Deserialize[[3]uint16](s, data)
			return err
		}, errs.ErrInvalidData},
		{"absent array", func() error {
			data, _ := Serialize(s, []uint16(nil))
			_, err := Deserialize[[2]uint16](s, data)
			return err
		}, errs.ErrInvalidData},
		{"bad presence flag", func() error {
			_, err := Deserialize[*int32](s, []byte{3, 0, 0, 0, 0})
			return err
		}, errs.ErrInvalidData},
		{"bad tri-state", func() error {
			_, err := Deserialize[*bool](s, []byte{3})
			return err
		}, errs.ErrInvalidData},
		{"truncated nullable", func() error {
			_, err := Deserialize[*int32](s, []byte{1, 0})
			return err
		}, errs.ErrTruncatedData},
		{"interface target", func() error {
			_, err := Deserialize[any](s, []byte{1})
			return err
		}, errs.ErrInvalidArgument},
		{"offset out of range", func() error {
			_, _, err := DeserializeAt[uint8](s, []byte{1}, 2)
			return err
		}, errs.ErrInvalidArgument},
		{"unsupported type", func() error {
			_, err := Deserialize[map[int]int](s, []byte{0})
			return err
		}, errs.ErrUnsupportedKind},
		{"struct kind", func() error {
			_, err := Deserialize[struct{ A int }](s, []byte{0})
			return err
		}, errs.ErrNotImplemented},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.decode(), tt.want)
		})
	}
}

func TestDeserializeVariablePrefixErrors(t *testing.T) {
	s, err := New(WithVariablePrefixLength(true))
	require.NoError(t, err)

	_, err = Deserialize[string](s, []byte{0xfd})
	require.ErrorIs(t, err, errs.ErrInvalidPrefix)

	_, err = Deserialize[string](s, []byte{0xfe, 1})
	require.ErrorIs(t, err, errs.ErrTruncatedData)
}

func TestNonZeroBoolDecodesTrue(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	got, err := Deserialize[bool](s, []byte{0x7f})
	require.NoError(t, err)
	require.True(t, got)
}
