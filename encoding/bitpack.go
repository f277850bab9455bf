package encoding

// PackedBoolSize returns the number of bytes needed to pack n booleans.
func PackedBoolSize(n int) int {
	return (n + 7) / 8
}

// PackBools packs values into dst, most significant bit first.
//
// dst must hold at least PackedBoolSize(len(values)) bytes; those bytes are
// overwritten, including the zero padding of the last byte.
func PackBools(dst []byte, values []bool) {
	PackBoolsFunc(dst, len(values), func(i int) bool { return values[i] })
}

// PackBoolsFunc packs n booleans produced by get into dst.
//
// It serves containers that are not a []bool, such as arrays reached through
// reflection.
func PackBoolsFunc(dst []byte, n int, get func(i int) bool) {
	size := PackedBoolSize(n)
	clear(dst[:size])

	for i := range n {
		if get(i) {
			dst[i>>3] |= 0x80 >> (i & 7)
		}
	}
}

// UnpackBools fills dst from packed bytes in src.
//
// src must hold at least PackedBoolSize(len(dst)) bytes. Padding bits are
// ignored.
func UnpackBools(dst []bool, src []byte) {
	for i := range dst {
		dst[i] = BoolAt(src, i)
	}
}

// BoolAt returns packed element i of src.
func BoolAt(src []byte, i int) bool {
	return src[i>>3]&(0x80>>(i&7)) != 0
}
