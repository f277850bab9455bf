package frame

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/tiny/errs"
	"github.com/arloliu/tiny/format"
	"github.com/arloliu/tiny/internal/hash"
)

const (
	// Magic identifies a frame.
	Magic uint16 = 0x7A51
	// Version is the frame format version written by this package.
	Version uint8 = 1
	// HeaderSize is the fixed size of the frame header in bytes.
	HeaderSize = 16
	// ChecksumSize is the size of the optional checksum trailer.
	ChecksumSize = hash.Size
	// MaxPayloadSize is the largest raw or stored payload a frame can describe.
	MaxPayloadSize = math.MaxUint32
)

// Flag bits.
const (
	FlagBigEndian uint8 = 1 << 0
	FlagChecksum  uint8 = 1 << 1

	knownFlags = FlagBigEndian | FlagChecksum
)

// Header fields are always little-endian, whatever the payload byte order.
var headerEngine = binary.LittleEndian

// Header is the decoded frame header.
type Header struct {
	Version     uint8
	Flags       uint8
	Compression format.CompressionType
	// RawSize is the payload size before compression.
	RawSize uint32
	// StoredSize is the payload size as stored in the frame.
	StoredSize uint32
}

// BigEndian reports whether the payload was written on a big-endian host.
func (h Header) BigEndian() bool {
	return h.Flags&FlagBigEndian != 0
}

// HasChecksum reports whether a checksum trailer follows the payload.
func (h Header) HasChecksum() bool {
	return h.Flags&FlagChecksum != 0
}

// FrameSize returns the total size of the frame in bytes.
func (h Header) FrameSize() int {
	n := HeaderSize + int(h.StoredSize)
	if h.HasChecksum() {
		n += ChecksumSize
	}

	return n
}

// PutBytes writes the header into dst, which must hold HeaderSize bytes.
func (h Header) PutBytes(dst []byte) {
	_ = dst[HeaderSize-1]

	headerEngine.PutUint16(dst[0:2], Magic)
	dst[2] = h.Version
	dst[3] = h.Flags
	dst[4] = uint8(h.Compression)
	dst[5], dst[6], dst[7] = 0, 0, 0
	headerEngine.PutUint32(dst[8:12], h.RawSize)
	headerEngine.PutUint32(dst[12:16], h.StoredSize)
}

// Bytes returns the encoded header.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	h.PutBytes(b)

	return b
}

// Validate checks version, flags and compression type.
func (h Header) Validate() error {
	if h.Version != Version {
		return fmt.Errorf("%w: unsupported version %d", errs.ErrInvalidFrame, h.Version)
	}

	if h.Flags&^knownFlags != 0 {
		return fmt.Errorf("%w: unknown flags %#02x", errs.ErrInvalidFrame, h.Flags)
	}

	switch h.Compression {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
	default:
		return fmt.Errorf("%w: unknown compression %d", errs.ErrInvalidFrame, h.Compression)
	}

	if h.Compression == format.CompressionNone && h.RawSize != h.StoredSize {
		return fmt.Errorf("%w: uncompressed frame with raw size %d and stored size %d",
			errs.ErrInvalidFrame, h.RawSize, h.StoredSize)
	}

	return nil
}

// ParseHeader decodes and validates the header at the start of data.
//
// Returns:
//   - Header: Parsed header
//   - error: errs.ErrTruncatedData if data is shorter than HeaderSize,
//     errs.ErrInvalidFrame for a bad magic, version, flag or compression
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: frame header needs %d bytes, have %d",
			errs.ErrTruncatedData, HeaderSize, len(data))
	}

	if magic := headerEngine.Uint16(data[0:2]); magic != Magic {
		return Header{}, fmt.Errorf("%w: bad magic %#04x", errs.ErrInvalidFrame, magic)
	}

	if data[5]|data[6]|data[7] != 0 {
		return Header{}, fmt.Errorf("%w: reserved bytes are not zero", errs.ErrInvalidFrame)
	}

	h := Header{
		Version:     data[2],
		Flags:       data[3],
		Compression: format.CompressionType(data[4]),
		RawSize:     headerEngine.Uint32(data[8:12]),
		StoredSize:  headerEngine.Uint32(data[12:16]),
	}

	if err := h.Validate(); err != nil {
		return Header{}, err
	}

	return h, nil
}
