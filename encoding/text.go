package encoding

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	textencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"

	"github.com/arloliu/tiny/endian"
	"github.com/arloliu/tiny/errs"
	"github.com/arloliu/tiny/format"
	"github.com/arloliu/tiny/internal/pool"
)

// TextCodec writes and reads the payload of one string under a single
// format.StringEncoding. The length prefix is handled by the caller.
//
// Whatever the scheme, the prefix holds the number of UTF-16 code units of the
// string. The payload size in bytes follows from the scheme and the content.
type TextCodec interface {
	// Encoding returns the scheme implemented by the codec.
	Encoding() format.StringEncoding

	// Measure returns the UTF-16 code unit count to store in the length prefix
	// and the payload size in bytes.
	Measure(s string) (length int, size int)

	// Put writes the payload of s into dst, which is exactly the size reported
	// by Measure.
	Put(dst []byte, s string) error

	// Read decodes length code units from the start of src and returns the
	// string and the number of payload bytes consumed.
	Read(src []byte, length int) (string, int, error)
}

// NewTextCodec returns the codec for enc.
//
// Parameters:
//   - engine: Byte order used by the Char scheme
//   - enc: Text encoding scheme
//
// Returns:
//   - TextCodec: Codec for enc
//   - error: errs.ErrUnsupportedKind if enc is not a known scheme
func NewTextCodec(engine endian.EndianEngine, enc format.StringEncoding) (TextCodec, error) {
	switch enc {
	case format.StringEncodingChar:
		return charCodec{engine: engine}, nil
	case format.StringEncodingByte:
		return byteCodec{}, nil
	case format.StringEncodingUTF8, format.StringEncodingDefault:
		return utf8Codec{enc: enc}, nil
	case format.StringEncodingASCII:
		return asciiCodec{}, nil
	case format.StringEncodingUTF7:
		return utf7Codec{}, nil
	case format.StringEncodingUnicode:
		return newTransformCodec(enc, unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
			endian.GetLittleEndianEngine(), 2), nil
	case format.StringEncodingBigEndianUnicode:
		return newTransformCodec(enc, unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
			endian.GetBigEndianEngine(), 2), nil
	case format.StringEncodingUTF32:
		return newTransformCodec(enc, utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM),
			endian.GetLittleEndianEngine(), 4), nil
	default:
		return nil, fmt.Errorf("%w: string encoding %d", errs.ErrUnsupportedKind, enc)
	}
}

func needPayload(src []byte, size int) error {
	if len(src) < size {
		return fmt.Errorf("%w: need %d text bytes, have %d", errs.ErrTruncatedData, size, len(src))
	}

	return nil
}

func splitUnits(want, got int) error {
	return fmt.Errorf("%w: payload splits a surrogate pair after %d of %d code units",
		errs.ErrInvalidData, got, want)
}

// runeUnits returns 2 for supplementary-plane runes and 1 otherwise.
func runeUnits(r rune) int {
	if r >= 0x10000 && r <= utf8.MaxRune {
		return 2
	}

	return 1
}

// codeUnits counts the UTF-16 code units of s. Invalid bytes count as one
// replacement character each.
func codeUnits(s string) int {
	n := 0
	for _, r := range s {
		n += runeUnits(r)
	}

	return n
}

// utf8Span returns the number of bytes at the start of src that hold units
// UTF-16 code units of UTF-8 text.
func utf8Span(src []byte, units int) (int, error) {
	i, got := 0, 0
	for got < units {
		if i >= len(src) {
			return 0, fmt.Errorf("%w: text ends after %d of %d code units", errs.ErrTruncatedData, got, units)
		}
		r, w := utf8.DecodeRune(src[i:])
		got += runeUnits(r)
		i += w
	}
	if got != units {
		return 0, splitUnits(units, got)
	}

	return i, nil
}

// --------------------------------------------------------------------------
// Char: raw UTF-16 code units, length counts code units
// --------------------------------------------------------------------------

type charCodec struct {
	engine endian.EndianEngine
}

func (charCodec) Encoding() format.StringEncoding { return format.StringEncodingChar }

func (charCodec) Measure(s string) (int, int) {
	n := codeUnits(s)
	return n, n * 2
}

func (c charCodec) Put(dst []byte, s string) error {
	i := 0
	for _, r := range s {
		if r >= 0x10000 {
			hi, lo := utf16.EncodeRune(r)
			c.engine.PutUint16(dst[i:], uint16(hi))
			c.engine.PutUint16(dst[i+2:], uint16(lo))
			i += 4
		} else {
			c.engine.PutUint16(dst[i:], uint16(r))
			i += 2
		}
	}

	return nil
}

func (c charCodec) Read(src []byte, length int) (string, int, error) {
	size := length * 2
	if err := needPayload(src, size); err != nil {
		return "", 0, err
	}

	units, cleanup := pool.GetUint16Slice(length)
	defer cleanup()

	for i := range units {
		units[i] = c.engine.Uint16(src[i*2:])
	}

	return string(utf16.Decode(units)), size, nil
}

// --------------------------------------------------------------------------
// Byte: low byte of each UTF-16 code unit
// --------------------------------------------------------------------------

type byteCodec struct{}

func (byteCodec) Encoding() format.StringEncoding { return format.StringEncodingByte }

func (byteCodec) Measure(s string) (int, int) {
	n := codeUnits(s)
	return n, n
}

func (byteCodec) Put(dst []byte, s string) error {
	i := 0
	for _, r := range s {
		if r >= 0x10000 {
			hi, lo := utf16.EncodeRune(r)
			dst[i], dst[i+1] = byte(hi), byte(lo) //nolint:gosec
			i += 2
		} else {
			dst[i] = byte(r) //nolint:gosec
			i++
		}
	}

	return nil
}

func (byteCodec) Read(src []byte, length int) (string, int, error) {
	if err := needPayload(src, length); err != nil {
		return "", 0, err
	}

	buf := make([]byte, 0, length)
	for _, b := range src[:length] {
		buf = utf8.AppendRune(buf, rune(b))
	}

	return string(buf), length, nil
}

// --------------------------------------------------------------------------
// UTF-8 and Default: bytes as stored in the Go string
// --------------------------------------------------------------------------

type utf8Codec struct {
	enc format.StringEncoding
}

func (c utf8Codec) Encoding() format.StringEncoding { return c.enc }

func (utf8Codec) Measure(s string) (int, int) {
	return codeUnits(s), len(s)
}

func (utf8Codec) Put(dst []byte, s string) error {
	copy(dst, s)
	return nil
}

func (utf8Codec) Read(src []byte, length int) (string, int, error) {
	size, err := utf8Span(src, length)
	if err != nil {
		return "", 0, err
	}

	return string(src[:size]), size, nil
}

// --------------------------------------------------------------------------
// ASCII: one byte per UTF-16 code unit, '?' for anything outside 7-bit ASCII
// --------------------------------------------------------------------------

type asciiCodec struct{}

func (asciiCodec) Encoding() format.StringEncoding { return format.StringEncodingASCII }

func (asciiCodec) Measure(s string) (int, int) {
	n := codeUnits(s)
	return n, n
}

func (asciiCodec) Put(dst []byte, s string) error {
	i := 0
	for _, r := range s {
		n := runeUnits(r)
		if r < utf8.RuneSelf {
			dst[i] = byte(r)
		} else {
			for j := range n {
				dst[i+j] = '?'
			}
		}
		i += n
	}

	return nil
}

func (asciiCodec) Read(src []byte, length int) (string, int, error) {
	if err := needPayload(src, length); err != nil {
		return "", 0, err
	}

	buf := make([]byte, length)
	for i, b := range src[:length] {
		if b < utf8.RuneSelf {
			buf[i] = b
		} else {
			buf[i] = '?'
		}
	}

	return string(buf), length, nil
}

// --------------------------------------------------------------------------
// UTF-16 / UTF-32 through golang.org/x/text
// --------------------------------------------------------------------------

type transformCodec struct {
	enc      format.StringEncoding
	codec    textencoding.Encoding
	order    endian.EndianEngine
	unitSize int
}

func newTransformCodec(enc format.StringEncoding, codec textencoding.Encoding,
	order endian.EndianEngine, unitSize int,
) transformCodec {
	return transformCodec{enc: enc, codec: codec, order: order, unitSize: unitSize}
}

func (c transformCodec) Encoding() format.StringEncoding { return c.enc }

func (c transformCodec) Measure(s string) (int, int) {
	n := codeUnits(s)
	if c.unitSize == 2 {
		return n, n * 2
	}

	return n, utf8.RuneCountInString(s) * 4
}

// span returns the payload bytes holding units code units. UTF-16 maps code
// units to bytes directly; UTF-32 has to look at each code point.
func (c transformCodec) span(src []byte, units int) (int, error) {
	if c.unitSize == 2 {
		size := units * 2
		if err := needPayload(src, size); err != nil {
			return 0, err
		}

		return size, nil
	}

	i, got := 0, 0
	for got < units {
		if err := needPayload(src[i:], 4); err != nil {
			return 0, err
		}
		got += runeUnits(rune(c.order.Uint32(src[i:]))) //nolint:gosec
		i += 4
	}
	if got != units {
		return 0, splitUnits(units, got)
	}

	return i, nil
}

func (c transformCodec) Put(dst []byte, s string) error {
	encoded, err := c.codec.NewEncoder().String(s)
	if err != nil {
		return fmt.Errorf("%w: %s encode: %w", errs.ErrInvalidArgument, c.enc, err)
	}

	if len(encoded) != len(dst) {
		return fmt.Errorf("%w: %s produced %d bytes, expected %d", errs.ErrInvalidData, c.enc, len(encoded), len(dst))
	}
	copy(dst, encoded)

	return nil
}

func (c transformCodec) Read(src []byte, length int) (string, int, error) {
	size, err := c.span(src, length)
	if err != nil {
		return "", 0, err
	}

	decoded, err := c.codec.NewDecoder().Bytes(src[:size])
	if err != nil {
		return "", 0, fmt.Errorf("%w: %s decode: %w", errs.ErrInvalidData, c.enc, err)
	}

	return string(decoded), size, nil
}
