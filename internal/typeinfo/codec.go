package typeinfo

import (
	"math"
	"reflect"
	"time"

	"github.com/arloliu/tiny/endian"
	"github.com/arloliu/tiny/format"
	"github.com/arloliu/tiny/value"
)

// Codec writes and reads one fixed-width kind.
//
// Put writes exactly Size bytes into dst. Get reads Size bytes from src into
// v, which must be settable. Both accept any type classified as Kind,
// including named types over the same underlying kind.
type Codec struct {
	Kind format.Kind
	Size int
	Put  func(engine endian.EndianEngine, dst []byte, v reflect.Value)
	Get  func(engine endian.EndianEngine, src []byte, v reflect.Value)
}

var codecs [format.KindObjectNullable + 1]*Codec

// CodecFor returns the codec of a fixed-width kind, or nil.
func CodecFor(kind format.Kind) *Codec {
	if int(kind) < len(codecs) {
		return codecs[kind]
	}

	return nil
}

func register(kind format.Kind,
	put func(endian.EndianEngine, []byte, reflect.Value),
	get func(endian.EndianEngine, []byte, reflect.Value),
) {
	codecs[kind] = &Codec{Kind: kind, Size: kind.FixedSize(), Put: put, Get: get}
}

func putF32(e endian.EndianEngine, dst []byte, vals ...float32) {
	for i, f := range vals {
		e.PutUint32(dst[i*4:], math.Float32bits(f))
	}
}

func getF32(e endian.EndianEngine, src []byte, i int) float32 {
	return math.Float32frombits(e.Uint32(src[i*4:]))
}

func putI32(e endian.EndianEngine, dst []byte, vals ...int32) {
	for i, n := range vals {
		e.PutUint32(dst[i*4:], uint32(n)) //nolint:gosec
	}
}

func getI32(e endian.EndianEngine, src []byte, i int) int32 {
	return int32(e.Uint32(src[i*4:])) //nolint:gosec
}

func setValue[T any](v reflect.Value, x T) {
	v.Set(reflect.ValueOf(x))
}

//nolint:gosec
func init() {
	register(format.KindByte,
		func(_ endian.EndianEngine, dst []byte, v reflect.Value) { dst[0] = byte(v.Uint()) },
		func(_ endian.EndianEngine, src []byte, v reflect.Value) { v.SetUint(uint64(src[0])) })
	register(format.KindSByte,
		func(_ endian.EndianEngine, dst []byte, v reflect.Value) { dst[0] = byte(int8(v.Int())) },
		func(_ endian.EndianEngine, src []byte, v reflect.Value) { v.SetInt(int64(int8(src[0]))) })
	register(format.KindBool,
		func(_ endian.EndianEngine, dst []byte, v reflect.Value) {
			dst[0] = 0
			if v.Bool() {
				dst[0] = 1
			}
		},
		func(_ endian.EndianEngine, src []byte, v reflect.Value) { v.SetBool(src[0] != 0) })

	register(format.KindInt16,
		func(e endian.EndianEngine, dst []byte, v reflect.Value) { e.PutUint16(dst, uint16(v.Int())) },
		func(e endian.EndianEngine, src []byte, v reflect.Value) { v.SetInt(int64(int16(e.Uint16(src)))) })
	register(format.KindInt32,
		func(e endian.EndianEngine, dst []byte, v reflect.Value) { e.PutUint32(dst, uint32(v.Int())) },
		func(e endian.EndianEngine, src []byte, v reflect.Value) { v.SetInt(int64(int32(e.Uint32(src)))) })
	register(format.KindInt64,
		func(e endian.EndianEngine, dst []byte, v reflect.Value) { e.PutUint64(dst, uint64(v.Int())) },
		func(e endian.EndianEngine, src []byte, v reflect.Value) { v.SetInt(int64(e.Uint64(src))) })
	register(format.KindUInt16,
		func(e endian.EndianEngine, dst []byte, v reflect.Value) { e.PutUint16(dst, uint16(v.Uint())) },
		func(e endian.EndianEngine, src []byte, v reflect.Value) { v.SetUint(uint64(e.Uint16(src))) })
	register(format.KindUInt32,
		func(e endian.EndianEngine, dst []byte, v reflect.Value) { e.PutUint32(dst, uint32(v.Uint())) },
		func(e endian.EndianEngine, src []byte, v reflect.Value) { v.SetUint(uint64(e.Uint32(src))) })
	register(format.KindUInt64,
		func(e endian.EndianEngine, dst []byte, v reflect.Value) { e.PutUint64(dst, v.Uint()) },
		func(e endian.EndianEngine, src []byte, v reflect.Value) { v.SetUint(e.Uint64(src)) })

	// Half holds raw IEEE 754 binary16 bits.
	register(format.KindHalf,
		func(e endian.EndianEngine, dst []byte, v reflect.Value) { e.PutUint16(dst, uint16(v.Uint())) },
		func(e endian.EndianEngine, src []byte, v reflect.Value) { v.SetUint(uint64(e.Uint16(src))) })
	register(format.KindSingle,
		func(e endian.EndianEngine, dst []byte, v reflect.Value) {
			e.PutUint32(dst, math.Float32bits(float32(v.Float())))
		},
		func(e endian.EndianEngine, src []byte, v reflect.Value) {
			v.SetFloat(float64(math.Float32frombits(e.Uint32(src))))
		})
	register(format.KindDouble,
		func(e endian.EndianEngine, dst []byte, v reflect.Value) { e.PutUint64(dst, math.Float64bits(v.Float())) },
		func(e endian.EndianEngine, src []byte, v reflect.Value) { v.SetFloat(math.Float64frombits(e.Uint64(src))) })
	register(format.KindChar,
		func(e endian.EndianEngine, dst []byte, v reflect.Value) { e.PutUint16(dst, uint16(v.Uint())) },
		func(e endian.EndianEngine, src []byte, v reflect.Value) { v.SetUint(uint64(e.Uint16(src))) })

	register(format.KindDecimal,
		func(e endian.EndianEngine, dst []byte, v reflect.Value) {
			d := v.Interface().(value.Decimal)
			e.PutUint32(dst, d.Flags)
			e.PutUint32(dst[4:], d.Hi)
			e.PutUint32(dst[8:], d.Lo)
			e.PutUint32(dst[12:], d.Mid)
		},
		func(e endian.EndianEngine, src []byte, v reflect.Value) {
			setValue(v, value.Decimal{
				Flags: e.Uint32(src),
				Hi:    e.Uint32(src[4:]),
				Lo:    e.Uint32(src[8:]),
				Mid:   e.Uint32(src[12:]),
			})
		})
	register(format.KindDateTime,
		func(e endian.EndianEngine, dst []byte, v reflect.Value) {
			e.PutUint64(dst, uint64(value.TicksFromTime(v.Interface().(time.Time))))
		},
		func(e endian.EndianEngine, src []byte, v reflect.Value) {
			setValue(v, value.TimeFromTicks(int64(e.Uint64(src))))
		})
	register(format.KindDateTimeOffset,
		func(e endian.EndianEngine, dst []byte, v reflect.Value) {
			e.PutUint64(dst, uint64(v.Interface().(value.DateTimeOffset).LocalTicks()))
		},
		func(e endian.EndianEngine, src []byte, v reflect.Value) {
			setValue(v, value.DateTimeOffsetFromTicks(int64(e.Uint64(src))))
		})
	register(format.KindTimeSpan,
		func(e endian.EndianEngine, dst []byte, v reflect.Value) {
			e.PutUint64(dst, uint64(value.TicksFromDuration(time.Duration(v.Int()))))
		},
		func(e endian.EndianEngine, src []byte, v reflect.Value) {
			v.SetInt(int64(value.DurationFromTicks(int64(e.Uint64(src)))))
		})

	register(format.KindVector2,
		func(e endian.EndianEngine, dst []byte, v reflect.Value) {
			x := v.Interface().(value.Vector2)
			putF32(e, dst, x.X, x.Y)
		},
		func(e endian.EndianEngine, src []byte, v reflect.Value) {
			setValue(v, value.Vector2{X: getF32(e, src, 0), Y: getF32(e, src, 1)})
		})
	register(format.KindVector3,
		func(e endian.EndianEngine, dst []byte, v reflect.Value) {
			x := v.Interface().(value.Vector3)
			putF32(e, dst, x.X, x.Y, x.Z)
		},
		func(e endian.EndianEngine, src []byte, v reflect.Value) {
			setValue(v, value.Vector3{X: getF32(e, src, 0), Y: getF32(e, src, 1), Z: getF32(e, src, 2)})
		})
	register(format.KindVector4,
		func(e endian.EndianEngine, dst []byte, v reflect.Value) {
			x := v.Interface().(value.Vector4)
			putF32(e, dst, x.X, x.Y, x.Z, x.W)
		},
		func(e endian.EndianEngine, src []byte, v reflect.Value) {
			setValue(v, value.Vector4{
				X: getF32(e, src, 0), Y: getF32(e, src, 1), Z: getF32(e, src, 2), W: getF32(e, src, 3),
			})
		})
	register(format.KindQuaternion,
		func(e endian.EndianEngine, dst []byte, v reflect.Value) {
			x := v.Interface().(value.Quaternion)
			putF32(e, dst, x.X, x.Y, x.Z, x.W)
		},
		func(e endian.EndianEngine, src []byte, v reflect.Value) {
			setValue(v, value.Quaternion{
				X: getF32(e, src, 0), Y: getF32(e, src, 1), Z: getF32(e, src, 2), W: getF32(e, src, 3),
			})
		})
	register(format.KindRect,
		func(e endian.EndianEngine, dst []byte, v reflect.Value) {
			x := v.Interface().(value.Rect)
			putF32(e, dst, x.X, x.Y, x.Width, x.Height)
		},
		func(e endian.EndianEngine, src []byte, v reflect.Value) {
			setValue(v, value.Rect{
				X: getF32(e, src, 0), Y: getF32(e, src, 1), Width: getF32(e, src, 2), Height: getF32(e, src, 3),
			})
		})
	register(format.KindBounds,
		func(e endian.EndianEngine, dst []byte, v reflect.Value) {
			x := v.Interface().(value.Bounds)
			putF32(e, dst, x.Center.X, x.Center.Y, x.Center.Z, x.Size.X, x.Size.Y, x.Size.Z)
		},
		func(e endian.EndianEngine, src []byte, v reflect.Value) {
			setValue(v, value.Bounds{
				Center: value.Vector3{X: getF32(e, src, 0), Y: getF32(e, src, 1), Z: getF32(e, src, 2)},
				Size:   value.Vector3{X: getF32(e, src, 3), Y: getF32(e, src, 4), Z: getF32(e, src, 5)},
			})
		})

	register(format.KindIntVector2,
		func(e endian.EndianEngine, dst []byte, v reflect.Value) {
			x := v.Interface().(value.IntVector2)
			putI32(e, dst, x.X, x.Y)
		},
		func(e endian.EndianEngine, src []byte, v reflect.Value) {
			setValue(v, value.IntVector2{X: getI32(e, src, 0), Y: getI32(e, src, 1)})
		})
	register(format.KindIntVector3,
		func(e endian.EndianEngine, dst []byte, v reflect.Value) {
			x := v.Interface().(value.IntVector3)
			putI32(e, dst, x.X, x.Y, x.Z)
		},
		func(e endian.EndianEngine, src []byte, v reflect.Value) {
			setValue(v, value.IntVector3{X: getI32(e, src, 0), Y: getI32(e, src, 1), Z: getI32(e, src, 2)})
		})
	register(format.KindIntVector4,
		func(e endian.EndianEngine, dst []byte, v reflect.Value) {
			x := v.Interface().(value.IntVector4)
			putI32(e, dst, x.X, x.Y, x.Z, x.W)
		},
		func(e endian.EndianEngine, src []byte, v reflect.Value) {
			setValue(v, value.IntVector4{
				X: getI32(e, src, 0), Y: getI32(e, src, 1), Z: getI32(e, src, 2), W: getI32(e, src, 3),
			})
		})
}
