// Package endian selects the byte order used to lay out serialized values.
//
// Values are written in the host's native byte order, so the same bytes can be
// reinterpreted in place on the machine that produced them. EndianEngine merges
// binary.ByteOrder and binary.AppendByteOrder so callers can either write into
// a pre-sized window or append to a growing slice with one value:
//
//	engine := endian.GetNativeEngine()
//	engine.PutUint32(window, 42)
//	buf = engine.AppendUint16(buf, 7)
//
// All functions are safe for concurrent use; engines are stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

var nativeEngine = detectNative()

func detectNative() EndianEngine {
	// 0x0100: the first byte in memory is 0x01 only on big-endian hosts.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// CheckEndianness reports the host's byte order.
func CheckEndianness() binary.ByteOrder {
	return nativeEngine
}

func IsNativeLittleEndian() bool {
	return nativeEngine == binary.LittleEndian
}

func IsNativeBigEndian() bool {
	return nativeEngine == binary.BigEndian
}

// CompareNativeEndian reports whether engine matches the host's byte order.
func CompareNativeEndian(engine EndianEngine) bool {
	return engine == nativeEngine
}

// GetNativeEngine returns the engine matching the host's byte order.
//
// This is the engine every serializer writes with.
func GetNativeEngine() EndianEngine {
	return nativeEngine
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetEngine returns the big-endian engine when bigEndian is set and the
// little-endian engine otherwise.
func GetEngine(bigEndian bool) EndianEngine {
	if bigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}
