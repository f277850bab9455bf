package serializer

import (
	"fmt"
	"reflect"

	"github.com/arloliu/tiny/encoding"
	"github.com/arloliu/tiny/errs"
	"github.com/arloliu/tiny/format"
	"github.com/arloliu/tiny/internal/typeinfo"
)

// decode reads one value of v's type from src at offset into v, which must be
// settable. It returns the offset just past the value.
func (s *Serializer) decode(v reflect.Value, src []byte, offset int) (int, error) {
	if s.resolvers.len() > 0 {
		if r := s.resolvers.lookup(v.Type()); r != nil {
			return s.decodeCustom(r, v, src, offset)
		}
	}

	desc, err := typeinfo.Resolve(v.Type())
	if err != nil {
		return offset, err
	}

	return s.decodeKind(desc, v, src, offset)
}

func (s *Serializer) decodeCustom(r Resolver, v reflect.Value, src []byte, offset int) (int, error) {
	reader, ok := r.(Reader)
	if !ok {
		return offset, fmt.Errorf("%w: resolver for %s cannot decode", errs.ErrNotImplemented, r.Type())
	}

	out, n, err := reader.Read(src[offset:])
	if err != nil {
		return offset, fmt.Errorf("resolver for %s: %w", r.Type(), err)
	}
	if n < 0 || n > len(src)-offset {
		return offset, fmt.Errorf("%w: resolver for %s consumed %d of %d bytes",
			errs.ErrInvalidData, r.Type(), n, len(src)-offset)
	}

	rv := reflect.ValueOf(out)
	if !rv.IsValid() || rv.Type() != v.Type() {
		return offset, fmt.Errorf("%w: resolver for %s returned %T", errs.ErrInvalidData, r.Type(), out)
	}
	v.Set(rv)

	return offset + n, nil
}

func need(src []byte, offset, size int, what string) error {
	if size > len(src)-offset {
		return fmt.Errorf("%w: %s needs %d bytes at offset %d, have %d",
			errs.ErrTruncatedData, what, size, offset, len(src)-offset)
	}

	return nil
}

func (s *Serializer) decodeKind(desc *typeinfo.Descriptor, v reflect.Value, src []byte, offset int) (int, error) {
	if desc.Codec != nil {
		size := desc.Codec.Size
		if err := need(src, offset, size, desc.Kind.String()); err != nil {
			return offset, err
		}
		desc.Codec.Get(s.engine, src[offset:offset+size], v)

		return offset + size, nil
	}

	switch desc.Kind { //nolint:exhaustive
	case format.KindString:
		return s.decodeText(desc, v, src, offset)

	case format.KindPrimitiveArray, format.KindPrimitiveList:
		return s.decodeSequence(desc, v, src, offset)

	case format.KindPrimitiveNullable:
		return s.decodeNullable(desc, v, src, offset)

	case format.KindObject, format.KindObjectArray, format.KindObjectList, format.KindObjectNullable:
		return offset, fmt.Errorf("%w: %s values of %s", errs.ErrNotImplemented, desc.Kind, desc.Type)

	default:
		return offset, fmt.Errorf("%w: %s", errs.ErrUnsupportedKind, desc.Type)
	}
}

// decodeText reads [prefix][payload]. An absent string becomes a nil *string,
// or "" when the target is a plain string.
func (s *Serializer) decodeText(desc *typeinfo.Descriptor, v reflect.Value, src []byte, offset int) (int, error) {
	length, n, err := encoding.ReadPrefix(s.engine, src[offset:], s.settings.VariablePrefixLength)
	if err != nil {
		return offset, err
	}
	at := offset + n

	if length == encoding.AbsentLength {
		v.SetZero()
		return at, nil
	}

	str, size, err := s.text.Read(src[at:], length)
	if err != nil {
		return offset, err
	}

	if desc.Indirect {
		p := reflect.New(desc.Type.Elem())
		p.Elem().SetString(str)
		v.Set(p)
	} else {
		v.SetString(str)
	}

	return at + size, nil
}

// decodeSequence reads [prefix][elements]. An absent prefix yields a nil
// slice; arrays must match their declared length exactly.
func (s *Serializer) decodeSequence(desc *typeinfo.Descriptor, v reflect.Value, src []byte, offset int) (int, error) {
	length, n, err := encoding.ReadPrefix(s.engine, src[offset:], s.settings.VariablePrefixLength)
	if err != nil {
		return offset, err
	}
	at := offset + n

	isArray := desc.Kind == format.KindPrimitiveArray
	if length == encoding.AbsentLength {
		if isArray {
			return offset, fmt.Errorf("%w: absent prefix for array %s", errs.ErrInvalidData, desc.Type)
		}
		v.SetZero()

		return at, nil
	}

	if isArray && length != desc.ArrayLen {
		return offset, fmt.Errorf("%w: %s holds %d elements, prefix says %d",
			errs.ErrInvalidData, desc.Type, desc.ArrayLen, length)
	}

	size := s.payloadSize(desc.ElemKind, desc.ElemSize, length)
	if err := need(src, at, size, desc.Type.String()); err != nil {
		return offset, err
	}
	payload := src[at : at+size]

	if !isArray {
		v.Set(reflect.MakeSlice(desc.Type, length, length))
	}

	if desc.ElemKind == format.KindBool && s.settings.CompressBoolArrays {
		for i := range length {
			v.Index(i).SetBool(encoding.BoolAt(payload, i))
		}

		return at + size, nil
	}

	get, es := desc.ElemCodec.Get, desc.ElemSize
	for i := range length {
		get(s.engine, payload[i*es:(i+1)*es], v.Index(i))
	}

	return at + size, nil
}

// decodeNullable reads [flag][value], or the single tri-state byte of a
// nullable bool.
func (s *Serializer) decodeNullable(desc *typeinfo.Descriptor, v reflect.Value, src []byte, offset int) (int, error) {
	if err := need(src, offset, 1, desc.Type.String()); err != nil {
		return offset, err
	}
	flag := src[offset]

	if desc.ElemKind == format.KindBool {
		switch flag {
		case nullBoolAbsent:
			v.SetZero()
		case nullBoolFalse, nullBoolTrue:
			p := reflect.New(desc.ElemType)
			p.Elem().SetBool(flag == nullBoolTrue)
			v.Set(p)
		default:
			return offset, fmt.Errorf("%w: nullable bool state %d", errs.ErrInvalidData, flag)
		}

		return offset + 1, nil
	}

	switch flag {
	case 0:
		v.SetZero()
		return offset + 1, nil
	case 1:
	default:
		return offset, fmt.Errorf("%w: presence flag %d for %s", errs.ErrInvalidData, flag, desc.Type)
	}

	if err := need(src, offset+1, desc.ElemSize, desc.ElemKind.String()); err != nil {
		return offset, err
	}

	p := reflect.New(desc.ElemType)
	desc.ElemCodec.Get(s.engine, src[offset+1:offset+1+desc.ElemSize], p.Elem())
	v.Set(p)

	return offset + 1 + desc.ElemSize, nil
}
