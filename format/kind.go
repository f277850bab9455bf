// Package format defines the closed tag sets that describe serialized data:
// the Kind of a value's binary layout, the text encoding schemes and the
// compression algorithms understood by the frame envelope.
package format

// Kind identifies how a value's bytes are laid out.
type Kind uint8

const (
	KindNone Kind = iota
	KindObject
	KindString
	KindByte
	KindSByte
	KindBool
	KindInt16
	KindInt32
	KindInt64
	KindUInt16
	KindUInt32
	KindUInt64
	KindHalf
	KindSingle
	KindDouble
	KindChar
	KindDecimal
	KindDateTime
	KindDateTimeOffset
	KindTimeSpan
	KindVector2
	KindVector3
	KindVector4
	KindQuaternion
	KindRect
	KindBounds
	KindIntVector2
	KindIntVector3
	KindIntVector4
	KindPrimitiveArray
	KindPrimitiveList
	KindObjectArray
	KindObjectList
	KindPrimitiveNullable
	KindObjectNullable
)

// Fixed sizes in bytes.
const (
	SizeByte           = 1
	SizeSByte          = 1
	SizeBool           = 1
	SizeInt16          = 2
	SizeInt32          = 4
	SizeInt64          = 8
	SizeUInt16         = 2
	SizeUInt32         = 4
	SizeUInt64         = 8
	SizeHalf           = 2
	SizeSingle         = 4
	SizeDouble         = 8
	SizeChar           = 2
	SizeDecimal        = 16
	SizeDateTime       = 8
	SizeDateTimeOffset = 8
	SizeTimeSpan       = 8
	SizeVector2        = 4 * 2
	SizeVector3        = 4 * 3
	SizeVector4        = 4 * 4
	SizeQuaternion     = 4 * 4
	SizeRect           = 4 * 4
	SizeBounds         = 4 * 6
	SizeIntVector2     = 4 * 2
	SizeIntVector3     = 4 * 3
	SizeIntVector4     = 4 * 4
)

var kindNames = [...]string{
	KindNone:              "None",
	KindObject:            "Object",
	KindString:            "String",
	KindByte:              "Byte",
	KindSByte:             "SByte",
	KindBool:              "Bool",
	KindInt16:             "Int16",
	KindInt32:             "Int32",
	KindInt64:             "Int64",
	KindUInt16:            "UInt16",
	KindUInt32:            "UInt32",
	KindUInt64:            "UInt64",
	KindHalf:              "Half",
	KindSingle:            "Single",
	KindDouble:            "Double",
	KindChar:              "Char",
	KindDecimal:           "Decimal",
	KindDateTime:          "DateTime",
	KindDateTimeOffset:    "DateTimeOffset",
	KindTimeSpan:          "TimeSpan",
	KindVector2:           "Vector2",
	KindVector3:           "Vector3",
	KindVector4:           "Vector4",
	KindQuaternion:        "Quaternion",
	KindRect:              "Rect",
	KindBounds:            "Bounds",
	KindIntVector2:        "IntVector2",
	KindIntVector3:        "IntVector3",
	KindIntVector4:        "IntVector4",
	KindPrimitiveArray:    "PrimitiveArray",
	KindPrimitiveList:     "PrimitiveList",
	KindObjectArray:       "ObjectArray",
	KindObjectList:        "ObjectList",
	KindPrimitiveNullable: "PrimitiveNullable",
	KindObjectNullable:    "ObjectNullable",
}

var kindSizes = [...]int{
	KindByte:           SizeByte,
	KindSByte:          SizeSByte,
	KindBool:           SizeBool,
	KindInt16:          SizeInt16,
	KindInt32:          SizeInt32,
	KindInt64:          SizeInt64,
	KindUInt16:         SizeUInt16,
	KindUInt32:         SizeUInt32,
	KindUInt64:         SizeUInt64,
	KindHalf:           SizeHalf,
	KindSingle:         SizeSingle,
	KindDouble:         SizeDouble,
	KindChar:           SizeChar,
	KindDecimal:        SizeDecimal,
	KindDateTime:       SizeDateTime,
	KindDateTimeOffset: SizeDateTimeOffset,
	KindTimeSpan:       SizeTimeSpan,
	KindVector2:        SizeVector2,
	KindVector3:        SizeVector3,
	KindVector4:        SizeVector4,
	KindQuaternion:     SizeQuaternion,
	KindRect:           SizeRect,
	KindBounds:         SizeBounds,
	KindIntVector2:     SizeIntVector2,
	KindIntVector3:     SizeIntVector3,
	KindIntVector4:     SizeIntVector4,
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "Unknown"
}

// FixedSize returns the encoded size of a fixed-width kind, or 0 for variable
// and object kinds.
func (k Kind) FixedSize() int {
	if int(k) < len(kindSizes) {
		return kindSizes[k]
	}

	return 0
}

// IsFixed reports whether k is a fixed-width scalar or composite.
func (k Kind) IsFixed() bool {
	return k.FixedSize() > 0
}

// IsObject reports whether k belongs to the object graph family.
func (k Kind) IsObject() bool {
	switch k {
	case KindObject, KindObjectArray, KindObjectList, KindObjectNullable:
		return true
	default:
		return false
	}
}
