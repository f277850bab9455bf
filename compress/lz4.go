package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4.Compressor keeps hash tables between calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor is the LZ4 block codec.
//
// An LZ4 block does not record its decoded size. Frames carry it in the
// header, so DecompressSize decodes into one exact buffer; Decompress has to
// guess.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates an LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data into one LZ4 block.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	dst := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decodes one LZ4 block of unknown size.
//
// The output buffer starts at four times the input and doubles on
// ErrInvalidSourceShortBuffer, up to MaxDecodedSize.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	for bufSize := max(len(data)*4, 64); bufSize <= MaxDecodedSize; bufSize *= 2 {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, corrupt("lz4", err)
		}
	}

	return nil, corrupt("lz4", lz4.ErrInvalidSourceShortBuffer)
}

// DecompressSize decodes one LZ4 block that must hold exactly rawSize bytes.
func (c LZ4Compressor) DecompressSize(data []byte, rawSize int) ([]byte, error) {
	if err := checkRawSize("lz4", data, rawSize); err != nil || len(data) == 0 {
		return nil, err
	}

	buf := make([]byte, rawSize)
	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		return nil, corrupt("lz4", err)
	}
	if n != rawSize {
		return nil, sizeMismatch("lz4", n, rawSize)
	}

	return buf, nil
}
