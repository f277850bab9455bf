package serializer

import (
	"fmt"
	"reflect"

	"github.com/arloliu/tiny/errs"
	"github.com/arloliu/tiny/internal/stats"
)

// run encodes v into the scratch buffer at offset 0 and returns the number of
// bytes written. The bytes stay valid until the next call on s.
func run[T any](s *Serializer, v T) (int, error) {
	n, err := s.serialize(v)
	if err != nil {
		stats.ErrorsTotal.Inc()
		return 0, err
	}

	stats.SerializeTotal.Inc()
	stats.SerializeBytesTotal.Add(n)

	return n, nil
}

func (s *Serializer) serialize(v any) (int, error) {
	if s.settings.EmitNumericCasts {
		if n, ok, err := s.encodeFast(v, 0); ok {
			return n, err
		}
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return 0, fmt.Errorf("%w: nil value", errs.ErrInvalidArgument)
	}

	return s.encode(rv, 0)
}

// Serialize encodes v and returns a fresh slice of exactly the encoded size.
//
// Parameters:
//   - s: Serializer to encode with
//   - v: Value to encode
//
// Returns:
//   - []byte: Encoded bytes, owned by the caller
//   - error: errs.ErrUnsupportedKind for types without a layout,
//     errs.ErrNotImplemented for struct kinds, or a resolver's error
func Serialize[T any](s *Serializer, v T) ([]byte, error) {
	n, err := run(s, v)
	if err != nil {
		return nil, err
	}

	return s.buf.Clone(n), nil
}

// SerializeInto encodes v at the start of dst, growing it when it is too
// small, and returns the slice holding the output with the encoded length.
func SerializeInto[T any](s *Serializer, v T, dst []byte) ([]byte, int, error) {
	return SerializeAt(s, v, dst, 0)
}

// SerializeAt encodes v at dst[offset:] and returns the slice holding the
// output with its total length offset+n.
//
// dst[:offset] is preserved. When cap(dst) is too small a new slice is
// allocated and the preserved prefix is copied into it. Returns
// errs.ErrInvalidArgument for a negative offset.
func SerializeAt[T any](s *Serializer, v T, dst []byte, offset int) ([]byte, int, error) {
	if offset < 0 {
		return dst, 0, fmt.Errorf("%w: negative offset %d", errs.ErrInvalidArgument, offset)
	}

	n, err := run(s, v)
	if err != nil {
		return dst, 0, err
	}

	total := offset + n
	var out []byte
	if cap(dst) >= total {
		out = dst[:total]
		if offset > len(dst) {
			clear(out[len(dst):offset])
		}
	} else {
		out = make([]byte, total)
		copy(out, dst[:min(offset, len(dst))])
	}
	copy(out[offset:], s.buf.B[:n])

	return out, total, nil
}

// Marshal encodes v using its runtime type.
//
// Returns errs.ErrInvalidArgument for a nil interface.
func (s *Serializer) Marshal(v any) ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil value", errs.ErrInvalidArgument)
	}

	return Serialize(s, v)
}

// Deserialize decodes a value of type T from the start of data.
func Deserialize[T any](s *Serializer, data []byte) (T, error) {
	v, _, err := DeserializeAt[T](s, data, 0)
	return v, err
}

// DeserializeAt decodes a value of type T from data[offset:].
//
// Parameters:
//   - s: Serializer whose settings the data was written with
//   - data: Encoded bytes
//   - offset: Position of the value in data
//
// Returns:
//   - T: Decoded value
//   - int: Offset just past the value
//   - error: errs.ErrTruncatedData, errs.ErrInvalidPrefix or errs.ErrInvalidData
//     for malformed input, errs.ErrInvalidArgument for a bad offset or an
//     interface T
func DeserializeAt[T any](s *Serializer, data []byte, offset int) (T, int, error) {
	var out T

	if offset < 0 || offset > len(data) {
		return out, offset, fmt.Errorf("%w: offset %d outside %d bytes", errs.ErrInvalidArgument, offset, len(data))
	}

	rv := reflect.ValueOf(&out).Elem()
	if rv.Kind() == reflect.Interface {
		return out, offset, fmt.Errorf("%w: cannot decode into interface %s", errs.ErrInvalidArgument, rv.Type())
	}

	next, err := s.decode(rv, data, offset)
	if err != nil {
		stats.ErrorsTotal.Inc()
		var zero T

		return zero, offset, err
	}
	stats.DeserializeTotal.Inc()

	return out, next, nil
}
