package serializer

import (
	"math"
	"reflect"

	"github.com/arloliu/tiny/encoding"
)

// encodeFast encodes the built-in types that need no reflection. It reports
// false when v is not one of them, or when a resolver owns its type.
//
// Every case writes the same bytes as the reflective path.
//
//nolint:gosec,cyclop
func (s *Serializer) encodeFast(v any, offset int) (int, bool, error) {
	if s.resolvers.len() > 0 && s.resolvers.lookup(reflect.TypeOf(v)) != nil {
		return offset, false, nil
	}

	switch x := v.(type) {
	case bool:
		s.grow(offset + 1)
		s.buf.B[offset] = 0
		if x {
			s.buf.B[offset] = 1
		}

		return offset + 1, true, nil
	case uint8:
		s.grow(offset + 1)
		s.buf.B[offset] = x

		return offset + 1, true, nil
	case int8:
		s.grow(offset + 1)
		s.buf.B[offset] = byte(x)

		return offset + 1, true, nil
	case int16:
		return s.put16(uint16(x), offset), true, nil
	case uint16:
		return s.put16(x, offset), true, nil
	case int32:
		return s.put32(uint32(x), offset), true, nil
	case uint32:
		return s.put32(x, offset), true, nil
	case float32:
		return s.put32(math.Float32bits(x), offset), true, nil
	case int64:
		return s.put64(uint64(x), offset), true, nil
	case uint64:
		return s.put64(x, offset), true, nil
	case int:
		return s.put64(uint64(x), offset), true, nil
	case uint:
		return s.put64(uint64(x), offset), true, nil
	case float64:
		return s.put64(math.Float64bits(x), offset), true, nil
	case string:
		n, err := s.encodeText(x, true, offset)
		return n, true, err
	case *string:
		if x == nil {
			n, err := s.encodeText("", false, offset)
			return n, true, err
		}
		n, err := s.encodeText(*x, true, offset)

		return n, true, err
	case []byte:
		n, err := s.encodeBytes(x, offset)
		return n, true, err
	case []bool:
		n, err := s.encodeBools(x, offset)
		return n, true, err
	case []int32:
		n, err := encodeSlice(s, x, 4, offset, func(dst []byte, e int32) { s.engine.PutUint32(dst, uint32(e)) })
		return n, true, err
	case []int64:
		n, err := encodeSlice(s, x, 8, offset, func(dst []byte, e int64) { s.engine.PutUint64(dst, uint64(e)) })
		return n, true, err
	case []float32:
		n, err := encodeSlice(s, x, 4, offset, func(dst []byte, e float32) { s.engine.PutUint32(dst, math.Float32bits(e)) })
		return n, true, err
	case []float64:
		n, err := encodeSlice(s, x, 8, offset, func(dst []byte, e float64) { s.engine.PutUint64(dst, math.Float64bits(e)) })
		return n, true, err
	default:
		return offset, false, nil
	}
}

func (s *Serializer) put16(x uint16, offset int) int {
	s.grow(offset + 2)
	s.engine.PutUint16(s.buf.B[offset:], x)

	return offset + 2
}

func (s *Serializer) put32(x uint32, offset int) int {
	s.grow(offset + 4)
	s.engine.PutUint32(s.buf.B[offset:], x)

	return offset + 4
}

func (s *Serializer) put64(x uint64, offset int) int {
	s.grow(offset + 8)
	s.engine.PutUint64(s.buf.B[offset:], x)

	return offset + 8
}

func (s *Serializer) encodeBytes(x []byte, offset int) (int, error) {
	if x == nil {
		return s.writePrefix(encoding.AbsentLength, 0, offset)
	}

	at, err := s.writePrefix(len(x), len(x), offset)
	if err != nil {
		return offset, err
	}
	copy(s.buf.B[at:], x)

	return at + len(x), nil
}

func (s *Serializer) encodeBools(x []bool, offset int) (int, error) {
	if x == nil {
		return s.writePrefix(encoding.AbsentLength, 0, offset)
	}

	if !s.settings.CompressBoolArrays {
		return encodeSlice(s, x, 1, offset, func(dst []byte, e bool) {
			dst[0] = 0
			if e {
				dst[0] = 1
			}
		})
	}

	size := encoding.PackedBoolSize(len(x))
	at, err := s.writePrefix(len(x), size, offset)
	if err != nil {
		return offset, err
	}
	encoding.PackBools(s.buf.Window(at, size), x)

	return at + size, nil
}

func encodeSlice[E any](s *Serializer, x []E, elemSize int, offset int, put func(dst []byte, e E)) (int, error) {
	if x == nil {
		return s.writePrefix(encoding.AbsentLength, 0, offset)
	}

	size := len(x) * elemSize
	at, err := s.writePrefix(len(x), size, offset)
	if err != nil {
		return offset, err
	}

	dst := s.buf.Window(at, size)
	for i, e := range x {
		put(dst[i*elemSize:], e)
	}

	return at + size, nil
}
