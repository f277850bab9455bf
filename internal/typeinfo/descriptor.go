// Package typeinfo classifies Go types into serialization kinds.
//
// Classification is a pure function of the static type. Each reflect.Type is
// resolved at most once per process and the resulting *Descriptor, or the
// error explaining why the type has no layout, is cached forever.
package typeinfo

import (
	"fmt"
	"reflect"
	"time"

	"github.com/puzpuzpuz/xsync/v4"
	"github.com/x448/float16"

	"github.com/arloliu/tiny/errs"
	"github.com/arloliu/tiny/format"
	"github.com/arloliu/tiny/value"
)

// Descriptor is the cached classification of one Go type.
type Descriptor struct {
	// Type is the classified type.
	Type reflect.Type
	// Kind is the layout of Type.
	Kind format.Kind
	// Indirect is set when Type is a pointer to the value being encoded, as
	// with *string. A nil pointer is an absent value.
	Indirect bool

	// ElemKind, ElemType and ElemSize describe the element of an array, list
	// or nullable. They are zero for other kinds.
	ElemKind format.Kind
	ElemType reflect.Type
	ElemSize int
	// ArrayLen is the length of a PrimitiveArray or ObjectArray type.
	ArrayLen int

	// Codec encodes a fixed-width Kind; ElemCodec encodes a fixed-width element.
	Codec     *Codec
	ElemCodec *Codec
}

// IsAbsent reports whether v, a value of d.Type, encodes as absent.
func (d *Descriptor) IsAbsent(v reflect.Value) bool {
	switch d.Type.Kind() {
	case reflect.Pointer, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}

type entry struct {
	desc *Descriptor
	err  error
}

var cache = xsync.NewMap[reflect.Type, entry]()

var exactKinds = map[reflect.Type]format.Kind{
	reflect.TypeFor[float16.Float16]():      format.KindHalf,
	reflect.TypeFor[value.Char]():           format.KindChar,
	reflect.TypeFor[value.Decimal]():        format.KindDecimal,
	reflect.TypeFor[time.Time]():            format.KindDateTime,
	reflect.TypeFor[value.DateTimeOffset](): format.KindDateTimeOffset,
	reflect.TypeFor[time.Duration]():        format.KindTimeSpan,
	reflect.TypeFor[value.Vector2]():        format.KindVector2,
	reflect.TypeFor[value.Vector3]():        format.KindVector3,
	reflect.TypeFor[value.Vector4]():        format.KindVector4,
	reflect.TypeFor[value.Quaternion]():     format.KindQuaternion,
	reflect.TypeFor[value.Rect]():           format.KindRect,
	reflect.TypeFor[value.Bounds]():         format.KindBounds,
	reflect.TypeFor[value.IntVector2]():     format.KindIntVector2,
	reflect.TypeFor[value.IntVector3]():     format.KindIntVector3,
	reflect.TypeFor[value.IntVector4]():     format.KindIntVector4,
}

var scalarKinds = map[reflect.Kind]format.Kind{
	reflect.Uint8:   format.KindByte,
	reflect.Int8:    format.KindSByte,
	reflect.Bool:    format.KindBool,
	reflect.Int16:   format.KindInt16,
	reflect.Int32:   format.KindInt32,
	reflect.Int64:   format.KindInt64,
	reflect.Int:     format.KindInt64,
	reflect.Uint16:  format.KindUInt16,
	reflect.Uint32:  format.KindUInt32,
	reflect.Uint64:  format.KindUInt64,
	reflect.Uint:    format.KindUInt64,
	reflect.Float32: format.KindSingle,
	reflect.Float64: format.KindDouble,
}

// FixedKind returns the fixed-width kind of t, if it has one.
func FixedKind(t reflect.Type) (format.Kind, bool) {
	if k, ok := exactKinds[t]; ok {
		return k, true
	}

	k, ok := scalarKinds[t.Kind()]

	return k, ok
}

// Resolve returns the descriptor of t.
//
// Types without a layout fail with errs.ErrUnsupportedKind. The result,
// success or failure, is computed once per type and the same *Descriptor is
// returned on every later call.
func Resolve(t reflect.Type) (*Descriptor, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil type", errs.ErrInvalidArgument)
	}

	if e, ok := cache.Load(t); ok {
		return e.desc, e.err
	}

	desc, err := classify(t)
	e, _ := cache.LoadOrStore(t, entry{desc: desc, err: err})

	return e.desc, e.err
}

// ResolveFor returns the descriptor of T.
func ResolveFor[T any]() (*Descriptor, error) {
	return Resolve(reflect.TypeFor[T]())
}

func unsupported(t reflect.Type, why string) error {
	return fmt.Errorf("%w: %s (%s)", errs.ErrUnsupportedKind, t, why)
}

func classify(t reflect.Type) (*Descriptor, error) {
	if k, ok := FixedKind(t); ok {
		return &Descriptor{Type: t, Kind: k, Codec: CodecFor(k)}, nil
	}

	switch t.Kind() {
	case reflect.String:
		return &Descriptor{Type: t, Kind: format.KindString}, nil

	case reflect.Pointer:
		elem := t.Elem()
		if elem.Kind() == reflect.String {
			return &Descriptor{Type: t, Kind: format.KindString, Indirect: true}, nil
		}

		return container(t, elem, format.KindPrimitiveNullable, format.KindObjectNullable)

	case reflect.Array:
		d, err := container(t, t.Elem(), format.KindPrimitiveArray, format.KindObjectArray)
		if d != nil {
			d.ArrayLen = t.Len()
		}

		return d, err

	case reflect.Slice:
		return container(t, t.Elem(), format.KindPrimitiveList, format.KindObjectList)

	case reflect.Struct:
		return &Descriptor{Type: t, Kind: format.KindObject}, nil

	default:
		return nil, unsupported(t, "no binary layout for "+t.Kind().String())
	}
}

// container classifies arrays, slices and pointers by their element type.
func container(t, elem reflect.Type, primitive, object format.Kind) (*Descriptor, error) {
	if k, ok := FixedKind(elem); ok {
		return &Descriptor{
			Type:      t,
			Kind:      primitive,
			ElemKind:  k,
			ElemType:  elem,
			ElemSize:  k.FixedSize(),
			ElemCodec: CodecFor(k),
		}, nil
	}

	if elem.Kind() == reflect.Struct {
		return &Descriptor{Type: t, Kind: object, ElemKind: format.KindObject, ElemType: elem}, nil
	}

	return nil, unsupported(t, "element "+elem.String()+" has no encoder")
}
