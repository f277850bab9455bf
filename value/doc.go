// Package value defines the fixed-layout value types understood by the
// serializer in addition to Go's built-in scalars.
//
// Every type here has a known component count and component type, and is
// written component by component in declaration order:
//
//	Vector2, Vector3, Vector4, Quaternion, Rect    float32 components
//	Bounds                                         center xyz, size xyz (float32)
//	IntVector2, IntVector3, IntVector4             int32 components
//	Char                                           one UTF-16 code unit
//	Decimal                                        flags, hi, lo, mid (uint32)
//	DateTimeOffset                                 local wall-clock ticks (int64)
//
// time.Time and time.Duration are encoded as ticks, 100ns units, counted from
// 0001-01-01T00:00:00Z for instants.
package value
