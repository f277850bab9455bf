package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/tiny/endian"
	"github.com/arloliu/tiny/errs"
)

const (
	// AbsentLength is the length written for an absent string or sequence.
	AbsentLength = -1

	// FixedPrefixSize is the prefix width in fixed mode.
	FixedPrefixSize = 4

	// MaxPrefixSize is the widest prefix either mode produces.
	MaxPrefixSize = 5

	// Lead bytes of the 3- and 5-byte variable forms, int8 -2 and -4.
	sentinel16 byte = 0xFE
	sentinel32 byte = 0xFC
)

// PrefixSize returns the number of bytes needed to encode length.
//
// Parameters:
//   - length: Sequence length, or AbsentLength
//   - variable: Select the minimal variable-width form instead of the fixed 4-byte form
//
// Returns:
//   - int: Prefix width (1, 3 or 5 in variable mode; 4 in fixed mode)
//   - error: errs.ErrInvalidArgument if length is below -1 or exceeds math.MaxInt32
func PrefixSize(length int, variable bool) (int, error) {
	if length < AbsentLength || length > math.MaxInt32 {
		return 0, fmt.Errorf("%w: sequence length %d out of range", errs.ErrInvalidArgument, length)
	}

	if !variable {
		return FixedPrefixSize, nil
	}

	switch {
	case length <= math.MaxInt8:
		return 1, nil
	case length <= math.MaxInt16:
		return 3, nil
	default:
		return 5, nil
	}
}

// PutPrefix writes length into dst using the given prefix width.
//
// The width must come from PrefixSize for the same length. dst must be at
// least size bytes long.
//
// Parameters:
//   - engine: Byte order for the multi-byte forms
//   - dst: Destination window
//   - length: Sequence length, or AbsentLength
//   - size: Prefix width (1, 3, 4 or 5)
//
// Returns:
//   - error: errs.ErrUnsupportedKind for any other width,
//     errs.ErrInvalidArgument if dst is too short
func PutPrefix(engine endian.EndianEngine, dst []byte, length int, size int) error {
	if len(dst) < size {
		return fmt.Errorf("%w: prefix window of %d bytes, need %d", errs.ErrInvalidArgument, len(dst), size)
	}

	switch size {
	case 1:
		dst[0] = byte(int8(length)) //nolint:gosec
	case 3:
		dst[0] = sentinel16
		engine.PutUint16(dst[1:], uint16(int16(length))) //nolint:gosec
	case 4:
		engine.PutUint32(dst, uint32(int32(length))) //nolint:gosec
	case 5:
		dst[0] = sentinel32
		engine.PutUint32(dst[1:], uint32(int32(length))) //nolint:gosec
	default:
		return fmt.Errorf("%w: prefix width %d", errs.ErrUnsupportedKind, size)
	}

	return nil
}

// ReadPrefix decodes a length prefix from the start of src.
//
// Parameters:
//   - engine: Byte order for the multi-byte forms
//   - src: Encoded bytes starting at the prefix
//   - variable: Whether the prefix was written in variable mode
//
// Returns:
//   - length: Decoded length, AbsentLength for an absent value
//   - n: Number of prefix bytes consumed
//   - err: errs.ErrTruncatedData if src is too short, errs.ErrInvalidPrefix for
//     an unknown sentinel or a length below -1
func ReadPrefix(engine endian.EndianEngine, src []byte, variable bool) (length int, n int, err error) {
	if !variable {
		if len(src) < FixedPrefixSize {
			return 0, 0, fmt.Errorf("%w: need %d prefix bytes, have %d", errs.ErrTruncatedData, FixedPrefixSize, len(src))
		}
		length, n = int(int32(engine.Uint32(src))), FixedPrefixSize //nolint:gosec
	} else {
		if len(src) < 1 {
			return 0, 0, fmt.Errorf("%w: missing length prefix", errs.ErrTruncatedData)
		}

		switch lead := src[0]; {
		case lead == sentinel16:
			if len(src) < 3 {
				return 0, 0, fmt.Errorf("%w: need 3 prefix bytes, have %d", errs.ErrTruncatedData, len(src))
			}
			length, n = int(int16(engine.Uint16(src[1:]))), 3 //nolint:gosec
		case lead == sentinel32:
			if len(src) < 5 {
				return 0, 0, fmt.Errorf("%w: need 5 prefix bytes, have %d", errs.ErrTruncatedData, len(src))
			}
			length, n = int(int32(engine.Uint32(src[1:]))), 5 //nolint:gosec
		case int8(lead) >= AbsentLength: //nolint:gosec
			length, n = int(int8(lead)), 1 //nolint:gosec
		default:
			return 0, 0, fmt.Errorf("%w: unknown sentinel %d", errs.ErrInvalidPrefix, int8(lead)) //nolint:gosec
		}
	}

	if length < AbsentLength {
		return 0, 0, fmt.Errorf("%w: negative length %d", errs.ErrInvalidPrefix, length)
	}

	return length, n, nil
}
