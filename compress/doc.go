// Package compress provides the block codecs used to shrink framed payloads.
//
// The core serializer output is never compressed; compression is an option of
// the frame envelope (package frame), which records the codec in its header.
//
// Supported algorithms, selected by format.CompressionType:
//   - None: the payload is stored as-is
//   - Zstd: best ratio, moderate speed
//   - S2: balanced speed and ratio
//   - LZ4: fastest decompression
//
// Zstd is pure Go (github.com/klauspost/compress/zstd) by default. Building
// with the gozstd tag switches to the cgo binding github.com/valyala/gozstd.
//
// Codecs returned by GetCodec are shared and safe for concurrent use.
//
// Example:
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//		return err
//	}
//	packed, err := codec.Compress(payload)
package compress
