package frame

import (
	"fmt"
	"io"

	"github.com/arloliu/tiny/compress"
	"github.com/arloliu/tiny/endian"
	"github.com/arloliu/tiny/errs"
	"github.com/arloliu/tiny/format"
	"github.com/arloliu/tiny/internal/hash"
	"github.com/arloliu/tiny/internal/options"
	"github.com/arloliu/tiny/internal/pool"
	"github.com/arloliu/tiny/internal/stats"
)

type encodeConfig struct {
	compression format.CompressionType
	checksum    bool
}

// EncodeOption configures Encode and EncodeTo.
type EncodeOption = options.Option[*encodeConfig]

// WithCompression compresses the payload with ct. The default is
// format.CompressionNone.
func WithCompression(ct format.CompressionType) EncodeOption {
	return options.New(func(c *encodeConfig) error {
		if _, err := compress.GetCodec(ct); err != nil {
			return err
		}
		c.compression = ct

		return nil
	})
}

// WithChecksum appends an xxHash64 of the raw payload. Enabled by default.
func WithChecksum(enabled bool) EncodeOption {
	return options.NoError(func(c *encodeConfig) {
		c.checksum = enabled
	})
}

type decodeConfig struct {
	allowForeign bool
}

// DecodeOption configures Decode.
type DecodeOption = options.Option[*decodeConfig]

// AllowForeignByteOrder accepts frames written on a host of the opposite byte
// order. The caller is then responsible for reading the payload with the
// writer's byte order.
func AllowForeignByteOrder() DecodeOption {
	return options.NoError(func(c *decodeConfig) {
		c.allowForeign = true
	})
}

// build compresses payload and returns the header with the stored bytes.
func build(payload []byte, opts []EncodeOption) (Header, []byte, error) {
	cfg := &encodeConfig{compression: format.CompressionNone, checksum: true}
	if err := options.Apply(cfg, opts...); err != nil {
		return Header{}, nil, err
	}

	if uint64(len(payload)) > MaxPayloadSize {
		return Header{}, nil, fmt.Errorf("%w: payload of %d bytes exceeds frame limit", errs.ErrInvalidArgument, len(payload))
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return Header{}, nil, err
	}

	if cfg.compression != format.CompressionNone && len(payload) > compress.MaxDecodedSize {
		return Header{}, nil, fmt.Errorf("%w: %d bytes exceed the %s decode limit",
			errs.ErrInvalidArgument, len(payload), cfg.compression)
	}

	stored, err := codec.Compress(payload)
	if err != nil {
		return Header{}, nil, fmt.Errorf("compress %s payload: %w", cfg.compression, err)
	}

	if uint64(len(stored)) > MaxPayloadSize {
		return Header{}, nil, fmt.Errorf("%w: compressed payload of %d bytes exceeds frame limit", errs.ErrInvalidArgument, len(stored))
	}

	h := Header{
		Version:     Version,
		Compression: cfg.compression,
		RawSize:     uint32(len(payload)), //nolint:gosec
		StoredSize:  uint32(len(stored)),  //nolint:gosec
	}
	if endian.IsNativeBigEndian() {
		h.Flags |= FlagBigEndian
	}
	if cfg.checksum {
		h.Flags |= FlagChecksum
	}

	return h, stored, nil
}

func assemble(bb *pool.ByteBuffer, h Header, payload, stored []byte) {
	h.PutBytes(bb.Extend(HeaderSize))
	_, _ = bb.Write(stored)

	if h.HasChecksum() {
		headerEngine.PutUint64(bb.Extend(ChecksumSize), hash.Checksum(payload))
	}
}

// Encode wraps payload in a frame and returns a new slice owned by the caller.
//
// Parameters:
//   - payload: Serialized bytes, written on this host
//   - opts: Compression and checksum options
//
// Returns:
//   - []byte: The complete frame
//   - error: errs.ErrUnsupportedKind for an unknown compression,
//     errs.ErrInvalidArgument for payloads over MaxPayloadSize
func Encode(payload []byte, opts ...EncodeOption) ([]byte, error) {
	h, stored, err := build(payload, opts)
	if err != nil {
		return nil, err
	}

	bb := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(bb)

	assemble(bb, h, payload, stored)
	stats.FramesEncodedTotal.Inc()

	return bb.Detach(), nil
}

// EncodeTo writes the framed payload to w and returns the number of bytes
// written.
func EncodeTo(w io.Writer, payload []byte, opts ...EncodeOption) (int64, error) {
	h, stored, err := build(payload, opts)
	if err != nil {
		return 0, err
	}

	bb := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(bb)

	assemble(bb, h, payload, stored)

	n, err := bb.WriteTo(w)
	if err != nil {
		return n, err
	}
	stats.FramesEncodedTotal.Inc()

	return n, nil
}

// Decode unwraps the frame at the start of data.
//
// Bytes after the frame are ignored; Header.FrameSize tells where they start.
// For an uncompressed frame the returned payload aliases data.
//
// Returns:
//   - []byte: The raw payload
//   - Header: The frame header
//   - error: errs.ErrTruncatedData for a short frame, errs.ErrInvalidFrame for
//     a malformed header or a size mismatch, errs.ErrChecksumMismatch,
//     errs.ErrByteOrderMismatch for a frame from a host of the other byte order
func Decode(data []byte, opts ...DecodeOption) ([]byte, Header, error) {
	cfg := &decodeConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, Header{}, err
	}

	h, err := ParseHeader(data)
	if err != nil {
		return nil, Header{}, err
	}

	if h.BigEndian() != endian.IsNativeBigEndian() && !cfg.allowForeign {
		return nil, h, fmt.Errorf("%w: frame big-endian=%t, host big-endian=%t",
			errs.ErrByteOrderMismatch, h.BigEndian(), endian.IsNativeBigEndian())
	}

	if size := h.FrameSize(); len(data) < size {
		return nil, h, fmt.Errorf("%w: frame needs %d bytes, have %d", errs.ErrTruncatedData, size, len(data))
	}

	end := HeaderSize + int(h.StoredSize)
	payload, err := decompress(h, data[HeaderSize:end])
	if err != nil {
		return nil, h, err
	}

	if h.HasChecksum() {
		want := headerEngine.Uint64(data[end : end+ChecksumSize])
		if got := hash.Checksum(payload); got != want {
			return nil, h, fmt.Errorf("%w: got %#016x, frame says %#016x", errs.ErrChecksumMismatch, got, want)
		}
	}
	stats.FramesDecodedTotal.Inc()

	return payload, h, nil
}

func decompress(h Header, stored []byte) ([]byte, error) {
	if h.Compression == format.CompressionNone {
		return stored, nil
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return nil, err
	}

	payload, err := codec.DecompressSize(stored, int(h.RawSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %s payload: %v", errs.ErrInvalidFrame, h.Compression, err)
	}

	return payload, nil
}
