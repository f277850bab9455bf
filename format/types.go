package format

type (
	StringEncoding  uint8
	CompressionType uint8
)

// Text encoding schemes. The zero value is StringEncodingUTF8 so an unset
// field selects the default.
const (
	StringEncodingUTF8             StringEncoding = 0x0 // UTF-8 bytes.
	StringEncodingChar             StringEncoding = 0x1 // Raw 2-byte UTF-16 code units, native byte order.
	StringEncodingByte             StringEncoding = 0x2 // Low byte of each UTF-16 code unit.
	StringEncodingDefault          StringEncoding = 0x3 // Platform default, which is UTF-8.
	StringEncodingASCII            StringEncoding = 0x4 // 7-bit ASCII, other runes become '?'.
	StringEncodingUTF7             StringEncoding = 0x5 // RFC 2152 UTF-7.
	StringEncodingUnicode          StringEncoding = 0x6 // UTF-16 little-endian, no BOM.
	StringEncodingUTF32            StringEncoding = 0x7 // UTF-32 little-endian, no BOM.
	StringEncodingBigEndianUnicode StringEncoding = 0x8 // UTF-16 big-endian, no BOM.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (e StringEncoding) String() string {
	switch e {
	case StringEncodingUTF8:
		return "UTF8"
	case StringEncodingChar:
		return "Char"
	case StringEncodingByte:
		return "Byte"
	case StringEncodingDefault:
		return "Default"
	case StringEncodingASCII:
		return "ASCII"
	case StringEncodingUTF7:
		return "UTF7"
	case StringEncodingUnicode:
		return "Unicode"
	case StringEncodingUTF32:
		return "UTF32"
	case StringEncodingBigEndianUnicode:
		return "BigEndianUnicode"
	default:
		return "Unknown"
	}
}

// IsValid reports whether e names a known scheme.
func (e StringEncoding) IsValid() bool {
	return e <= StringEncodingBigEndianUnicode
}

// CountsCodeUnits reports whether the length prefix of a string written with
// e holds the UTF-16 code unit count rather than the encoded byte count.
func (e StringEncoding) CountsCodeUnits() bool {
	return e == StringEncodingChar || e == StringEncodingByte
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
