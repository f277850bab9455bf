package compress

import (
	"fmt"

	"github.com/arloliu/tiny/errs"
	"github.com/arloliu/tiny/format"
)

// Compressor compresses one complete payload.
//
// The returned slice is owned by the caller unless documented otherwise; the
// input is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// Corrupted input, or input produced by another algorithm, is an error.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// SizedDecompressor restores a payload whose decoded size is already known,
// as it is for frame payloads. The output buffer is allocated once, and a
// payload that decodes to any other size is errs.ErrInvalidData.
type SizedDecompressor interface {
	DecompressSize(data []byte, rawSize int) ([]byte, error)
}

// Codec combines both directions of one algorithm.
type Codec interface {
	Compressor
	Decompressor
	SizedDecompressor
}

// MaxDecodedSize bounds the output any codec is willing to allocate.
const MaxDecodedSize = 128 * 1024 * 1024 // 128MiB

// checkRawSize rejects raw sizes no frame can carry through a codec. An empty
// input decodes only to an empty payload.
func checkRawSize(name string, data []byte, rawSize int) error {
	if rawSize < 0 || rawSize > MaxDecodedSize {
		return fmt.Errorf("%w: %s raw size %d outside [0, %d]", errs.ErrInvalidData, name, rawSize, MaxDecodedSize)
	}

	if len(data) == 0 && rawSize != 0 {
		return sizeMismatch(name, 0, rawSize)
	}

	return nil
}

func sizeMismatch(name string, got, want int) error {
	return fmt.Errorf("%w: %s payload decoded to %d bytes, expected %d", errs.ErrInvalidData, name, got, want)
}

func corrupt(name string, err error) error {
	return fmt.Errorf("%w: %s: %w", errs.ErrInvalidData, name, err)
}

// CreateCodec creates a new Codec for compressionType.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of the payload, used in error messages
//
// Returns:
//   - Codec: Codec for the requested algorithm
//   - error: errs.ErrUnsupportedKind for an unknown compression type
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s compression %s", errs.ErrUnsupportedKind, target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared built-in Codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: compression type %s", errs.ErrUnsupportedKind, compressionType)
}
