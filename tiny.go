// Package tiny is a compact binary serializer that writes Go values in their
// native in-memory layout.
//
// The wire format has no header and no type tags. A fixed-width value is its
// raw bytes in the host byte order; strings, arrays and slices are a length
// prefix followed by their payload; pointers to fixed-width values carry a
// one-byte presence flag. Readers must know the static type and the settings
// the writer used.
//
// # Core Features
//
//   - Fixed layouts for integers, floats, float16, decimals, times, durations
//     and the vector types of package value
//   - Fixed 4-byte or variable 1/3/5-byte length prefixes
//   - Nine text encodings, including UTF-16, UTF-32 and UTF-7
//   - Bit-packed bool arrays
//   - Custom resolvers for types without a built-in layout
//   - Optional frames with compression (Zstd, S2, LZ4) and xxHash64 checksums
//
// # Basic Usage
//
//	data, err := tiny.Serialize([]int32{1, 2, 3})
//	if err != nil {
//		return err
//	}
//	values, err := tiny.Deserialize[[]int32](data)
//
// The package-level functions share one concurrency-safe pool of serializers
// with DefaultSettings. Use New for a pool with other settings, or package
// serializer for a single-goroutine instance.
//
// # Package Structure
//
//   - serializer: the encoder and decoder
//   - threadsafe: pooled serializers for concurrent use
//   - frame: self-describing envelope with compression and checksums
//   - compress: the block codecs used by frames
//   - value: fixed-layout value types
//   - accessor: typed field access for SerializeField
package tiny

import (
	"io"

	"github.com/arloliu/tiny/frame"
	"github.com/arloliu/tiny/internal/logging"
	"github.com/arloliu/tiny/internal/stats"
	"github.com/arloliu/tiny/serializer"
	"github.com/arloliu/tiny/threadsafe"
)

var defaultPool = mustPool()

func mustPool() *threadsafe.Pool {
	p, err := threadsafe.New()
	if err != nil {
		panic(err)
	}

	return p
}

// New creates a concurrency-safe pool of serializers built with opts.
func New(opts ...serializer.Option) (*threadsafe.Pool, error) {
	return threadsafe.New(opts...)
}

// Serialize encodes v with the default settings.
func Serialize[T any](v T) ([]byte, error) {
	return threadsafe.Serialize(defaultPool, v)
}

// Deserialize decodes a T written with the default settings.
func Deserialize[T any](data []byte) (T, error) {
	return threadsafe.Deserialize[T](defaultPool, data)
}

// Marshal encodes v by its runtime type with the default settings.
func Marshal(v any) ([]byte, error) {
	return defaultPool.Marshal(v)
}

// SerializeFramed encodes v with the default settings and wraps it in a frame.
func SerializeFramed[T any](v T, opts ...frame.EncodeOption) ([]byte, error) {
	return threadsafe.SerializeFramed(defaultPool, v, opts...)
}

// DeserializeFramed decodes a framed T written with the default settings.
func DeserializeFramed[T any](data []byte, opts ...frame.DecodeOption) (T, error) {
	return threadsafe.DeserializeFramed[T](defaultPool, data, opts...)
}

// RegisterResolver registers r for T on the default pool.
func RegisterResolver[T any](r serializer.Resolver) error {
	return threadsafe.RegisterResolver[T](defaultPool, r)
}

// WriteMetrics writes the serializer counters to w in Prometheus text format.
func WriteMetrics(w io.Writer) {
	stats.WritePrometheus(w)
}

// SetLogLevel sets the level of every tiny logger. Accepted levels are debug,
// info, warn, error and critical.
func SetLogLevel(level string) error {
	return logging.SetLevel(level)
}
