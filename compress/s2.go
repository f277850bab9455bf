package compress

import "github.com/klauspost/compress/s2"

// S2Compressor is the S2 block codec, a faster Snappy extension.
//
// S2 blocks record their decoded length, so DecompressSize can check it
// against the frame header before allocating.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data into a new S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes an S2 block.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, corrupt("s2", err)
	}

	return c.DecompressSize(data, n)
}

// DecompressSize decodes an S2 block that must hold exactly rawSize bytes.
func (c S2Compressor) DecompressSize(data []byte, rawSize int) ([]byte, error) {
	if err := checkRawSize("s2", data, rawSize); err != nil || len(data) == 0 {
		return nil, err
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, corrupt("s2", err)
	}
	if n != rawSize {
		return nil, sizeMismatch("s2", n, rawSize)
	}

	out, err := s2.Decode(make([]byte, rawSize), data)
	if err != nil {
		return nil, corrupt("s2", err)
	}

	return out, nil
}
