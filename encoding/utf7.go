package encoding

import (
	"fmt"
	"unicode/utf16"

	"github.com/arloliu/tiny/errs"
	"github.com/arloliu/tiny/format"
	"github.com/arloliu/tiny/internal/pool"
)

// UTF-7 as described by RFC 2152, without optional direct characters: only
// set D and whitespace are written directly, everything else goes through
// modified base64 of the UTF-16 code units.

const utf7Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

var (
	utf7Direct [128]bool
	utf7Base64 [256]int8
)

func init() {
	for _, c := range "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789'(),-./:? \t\r\n" {
		utf7Direct[c] = true
	}

	for i := range utf7Base64 {
		utf7Base64[i] = -1
	}
	for i := range len(utf7Alphabet) {
		utf7Base64[utf7Alphabet[i]] = int8(i)
	}
}

func isUTF7Direct(u uint16) bool {
	return u < 128 && utf7Direct[u]
}

// utf7Writer either counts or writes, so measuring and encoding share one
// state machine.
type utf7Writer struct {
	dst []byte
	n   int
}

func (w *utf7Writer) byte(b byte) {
	if w.dst != nil {
		w.dst[w.n] = b
	}
	w.n++
}

func encodeUTF7(w *utf7Writer, s string) {
	var (
		inBase64 bool
		bits     uint32
		nbits    uint
	)

	flush := func() {
		if nbits > 0 {
			w.byte(utf7Alphabet[(bits<<(6-nbits))&0x3F])
		}
		bits, nbits = 0, 0
	}

	unit := func(u uint16) {
		switch {
		case isUTF7Direct(u):
			if inBase64 {
				flush()
				if utf7Base64[u] >= 0 || u == '-' {
					w.byte('-')
				}
				inBase64 = false
			}
			w.byte(byte(u))
		case u == '+' && !inBase64:
			w.byte('+')
			w.byte('-')
		default:
			if !inBase64 {
				w.byte('+')
				inBase64 = true
			}
			bits = bits<<16 | uint32(u)
			nbits += 16
			for nbits >= 6 {
				nbits -= 6
				w.byte(utf7Alphabet[(bits>>nbits)&0x3F])
			}
			bits &= 1<<nbits - 1
		}
	}

	for _, r := range s {
		if r >= 0x10000 {
			hi, lo := utf16.EncodeRune(r)
			unit(uint16(hi))
			unit(uint16(lo))
		} else {
			unit(uint16(r))
		}
	}

	if inBase64 {
		flush()
		w.byte('-')
	}
}

// decodeUTF7 appends want UTF-16 code units decoded from src to dst and
// returns the bytes consumed, including the '-' that closes a final base64
// run. Bytes outside the direct set are taken as their own code unit.
func decodeUTF7(dst []uint16, src []byte, want int) ([]uint16, int, error) {
	i, got := 0, 0
	for got < want {
		if i >= len(src) {
			return dst, 0, fmt.Errorf("%w: UTF-7 text ends after %d of %d code units",
				errs.ErrTruncatedData, got, want)
		}

		c := src[i]
		i++
		if c != '+' {
			dst = append(dst, uint16(c))
			got++

			continue
		}

		if i < len(src) && src[i] == '-' {
			dst = append(dst, '+')
			got++
			i++

			continue
		}

		var (
			bits  uint32
			nbits uint
		)
		for ; i < len(src) && got < want; i++ {
			v := utf7Base64[src[i]]
			if v < 0 {
				break
			}
			bits = bits<<6 | uint32(v)
			nbits += 6
			if nbits >= 16 {
				nbits -= 16
				dst = append(dst, uint16(bits>>nbits))
				got++
				bits &= 1<<nbits - 1
			}
		}

		if i < len(src) && src[i] == '-' {
			i++
		}
	}

	return dst, i, nil
}

type utf7Codec struct{}

func (utf7Codec) Encoding() format.StringEncoding { return format.StringEncodingUTF7 }

func (utf7Codec) Measure(s string) (int, int) {
	var w utf7Writer
	encodeUTF7(&w, s)

	return codeUnits(s), w.n
}

func (utf7Codec) Put(dst []byte, s string) error {
	w := utf7Writer{dst: dst}
	encodeUTF7(&w, s)

	return nil
}

func (utf7Codec) Read(src []byte, length int) (string, int, error) {
	units, cleanup := pool.GetUint16Slice(0)
	defer cleanup()

	units, n, err := decodeUTF7(units, src, length)
	if err != nil {
		return "", 0, err
	}

	return string(utf16.Decode(units)), n, nil
}
