//go:build gozstd

package compress

import "github.com/valyala/gozstd"

const zstdLevel = 3

// Compress compresses data with libzstd.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, zstdLevel), nil
}

// Decompress decompresses a Zstandard frame with libzstd.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, corrupt("zstd", err)
	}

	return out, nil
}

// DecompressSize decompresses a Zstandard frame that must hold exactly
// rawSize bytes.
func (c ZstdCompressor) DecompressSize(data []byte, rawSize int) ([]byte, error) {
	if err := checkRawSize("zstd", data, rawSize); err != nil || len(data) == 0 {
		return nil, err
	}

	out, err := gozstd.Decompress(make([]byte, 0, rawSize), data)
	if err != nil {
		return nil, corrupt("zstd", err)
	}
	if len(out) != rawSize {
		return nil, sizeMismatch("zstd", len(out), rawSize)
	}

	return out, nil
}
