package serializer

import (
	"fmt"
	"reflect"

	"github.com/arloliu/tiny/encoding"
	"github.com/arloliu/tiny/errs"
	"github.com/arloliu/tiny/format"
	"github.com/arloliu/tiny/internal/stats"
	"github.com/arloliu/tiny/internal/typeinfo"
)

// encode writes v at offset and returns the offset just past it.
//
// A resolver registered for the exact runtime type of v wins over the
// built-in handling of its kind.
func (s *Serializer) encode(v reflect.Value, offset int) (int, error) {
	if s.resolvers.len() > 0 {
		if r := s.resolvers.lookup(v.Type()); r != nil {
			return s.encodeCustom(r, v.Interface(), offset)
		}
	}

	desc, err := typeinfo.Resolve(v.Type())
	if err != nil {
		return offset, err
	}

	return s.encodeKind(desc, v, offset)
}

func (s *Serializer) encodeKind(desc *typeinfo.Descriptor, v reflect.Value, offset int) (int, error) {
	if desc.Codec != nil {
		size := desc.Codec.Size
		s.grow(offset + size)
		desc.Codec.Put(s.engine, s.buf.Window(offset, size), v)

		return offset + size, nil
	}

	switch desc.Kind { //nolint:exhaustive
	case format.KindString:
		if desc.IsAbsent(v) {
			return s.encodeText("", false, offset)
		}
		if desc.Indirect {
			v = v.Elem()
		}

		return s.encodeText(v.String(), true, offset)

	case format.KindPrimitiveArray, format.KindPrimitiveList:
		return s.encodeSequence(desc, v, offset)

	case format.KindPrimitiveNullable:
		return s.encodeNullable(desc, v, offset)

	case format.KindObject, format.KindObjectArray, format.KindObjectList, format.KindObjectNullable:
		return offset, fmt.Errorf("%w: %s values of %s", errs.ErrNotImplemented, desc.Kind, desc.Type)

	default:
		return offset, fmt.Errorf("%w: %s", errs.ErrUnsupportedKind, desc.Type)
	}
}

func (s *Serializer) encodeCustom(r Resolver, v any, offset int) (int, error) {
	size := r.Size(v)
	if size < 0 {
		return offset, fmt.Errorf("%w: resolver for %s reported size %d", errs.ErrInvalidArgument, r.Type(), size)
	}

	s.grow(offset + size)
	if err := r.Write(v, s.buf.Window(offset, size)); err != nil {
		return offset, fmt.Errorf("resolver for %s: %w", r.Type(), err)
	}
	stats.ResolverHitsTotal.Inc()

	return offset + size, nil
}

// writePrefix grows the buffer for a prefix plus payload bytes and writes the
// prefix. It returns the offset of the payload.
func (s *Serializer) writePrefix(length int, payload int, offset int) (int, error) {
	size, err := encoding.PrefixSize(length, s.settings.VariablePrefixLength)
	if err != nil {
		return offset, err
	}

	s.grow(offset + size + payload)
	if err := encoding.PutPrefix(s.engine, s.buf.Window(offset, size), length, size); err != nil {
		return offset, err
	}

	return offset + size, nil
}

// encodeText writes [prefix][payload]. An absent string writes only the
// absent prefix, whatever the text scheme.
func (s *Serializer) encodeText(str string, present bool, offset int) (int, error) {
	if !present {
		return s.writePrefix(encoding.AbsentLength, 0, offset)
	}

	length, size := s.text.Measure(str)
	at, err := s.writePrefix(length, size, offset)
	if err != nil {
		return offset, err
	}

	if err := s.text.Put(s.buf.Window(at, size), str); err != nil {
		return offset, err
	}

	return at + size, nil
}

func (s *Serializer) payloadSize(elemKind format.Kind, elemSize int, n int) int {
	if elemKind == format.KindBool && s.settings.CompressBoolArrays {
		return encoding.PackedBoolSize(n)
	}

	return n * elemSize
}

// encodeSequence writes [prefix][elements] for arrays and slices of a fixed
// kind. A nil slice writes only the absent prefix.
func (s *Serializer) encodeSequence(desc *typeinfo.Descriptor, v reflect.Value, offset int) (int, error) {
	if desc.IsAbsent(v) {
		return s.writePrefix(encoding.AbsentLength, 0, offset)
	}

	n := v.Len()
	size := s.payloadSize(desc.ElemKind, desc.ElemSize, n)
	at, err := s.writePrefix(n, size, offset)
	if err != nil {
		return offset, err
	}

	dst := s.buf.Window(at, size)
	if desc.ElemKind == format.KindBool && s.settings.CompressBoolArrays {
		encoding.PackBoolsFunc(dst, n, func(i int) bool { return v.Index(i).Bool() })
		return at + size, nil
	}

	put, es := desc.ElemCodec.Put, desc.ElemSize
	for i := range n {
		put(s.engine, dst[i*es:(i+1)*es], v.Index(i))
	}

	return at + size, nil
}

// Nullable bool tri-state values.
const (
	nullBoolAbsent byte = 0
	nullBoolFalse  byte = 1
	nullBoolTrue   byte = 2
)

// encodeNullable writes [flag][value] for a pointer to a fixed kind. A
// pointer to bool is a single tri-state byte instead.
func (s *Serializer) encodeNullable(desc *typeinfo.Descriptor, v reflect.Value, offset int) (int, error) {
	present := !v.IsNil()

	if desc.ElemKind == format.KindBool {
		s.grow(offset + 1)
		state := nullBoolAbsent
		if present {
			state = nullBoolFalse
			if v.Elem().Bool() {
				state = nullBoolTrue
			}
		}
		s.buf.B[offset] = state

		return offset + 1, nil
	}

	if !present {
		s.grow(offset + 1)
		s.buf.B[offset] = 0

		return offset + 1, nil
	}

	size := 1 + desc.ElemSize
	s.grow(offset + size)
	dst := s.buf.Window(offset, size)
	dst[0] = 1
	desc.ElemCodec.Put(s.engine, dst[1:], v.Elem())

	return offset + size, nil
}
