package serializer

import (
	"fmt"

	"github.com/arloliu/tiny/errs"
	"github.com/arloliu/tiny/format"
	"github.com/arloliu/tiny/internal/logging"
	"github.com/arloliu/tiny/internal/options"
	"github.com/arloliu/tiny/internal/pool"
)

// Settings controls the wire layout produced by a Serializer.
//
// Settings are fixed when the Serializer is created. Two serializers with
// equal Settings produce identical bytes for the same value.
type Settings struct {
	// StringEncoding selects the text scheme for every string.
	StringEncoding format.StringEncoding
	// VariablePrefixLength selects the 1, 3 or 5 byte length prefix instead
	// of the fixed 4-byte one.
	VariablePrefixLength bool
	// CompressBoolArrays packs bool arrays and lists 8 values per byte.
	CompressBoolArrays bool
	// EmitNumericCasts enables the typed fast path for built-in numeric,
	// string and slice types. Output is identical either way.
	EmitNumericCasts bool
}

// DefaultSettings returns UTF-8 text, fixed 4-byte prefixes, packed bool
// arrays and the typed fast path.
func DefaultSettings() Settings {
	return Settings{
		StringEncoding:       format.StringEncodingUTF8,
		VariablePrefixLength: false,
		CompressBoolArrays:   true,
		EmitNumericCasts:     true,
	}
}

// Validate checks that every setting names a known layout.
func (s Settings) Validate() error {
	if !s.StringEncoding.IsValid() {
		return fmt.Errorf("%w: string encoding %d", errs.ErrUnsupportedKind, s.StringEncoding)
	}

	return nil
}

// Config collects the construction parameters of a Serializer.
type Config struct {
	settings    Settings
	bufferSize  int
	maxRetained int
	logger      logging.Logger
}

func newConfig() *Config {
	return &Config{
		settings:    DefaultSettings(),
		bufferSize:  pool.DefaultBufferSize,
		maxRetained: pool.BufferMaxThreshold,
	}
}

// Option configures a Serializer at construction time.
type Option = options.Option[*Config]

// WithSettings replaces all settings at once.
func WithSettings(s Settings) Option {
	return options.NoError(func(c *Config) {
		c.settings = s
	})
}

// WithStringEncoding sets the text scheme for strings.
func WithStringEncoding(enc format.StringEncoding) Option {
	return options.New(func(c *Config) error {
		if !enc.IsValid() {
			return fmt.Errorf("%w: string encoding %d", errs.ErrUnsupportedKind, enc)
		}
		c.settings.StringEncoding = enc

		return nil
	})
}

// WithVariablePrefixLength enables or disables variable-width length prefixes.
func WithVariablePrefixLength(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.settings.VariablePrefixLength = enabled
	})
}

// WithCompressBoolArrays enables or disables bit-packing of bool arrays.
func WithCompressBoolArrays(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.settings.CompressBoolArrays = enabled
	})
}

// WithEmitNumericCasts enables or disables the typed fast path.
func WithEmitNumericCasts(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.settings.EmitNumericCasts = enabled
	})
}

// WithBufferSize sets the initial scratch buffer size. It is rounded up to a
// power of two.
func WithBufferSize(size int) Option {
	return options.New(func(c *Config) error {
		if size <= 0 {
			return fmt.Errorf("%w: buffer size %d must be positive", errs.ErrInvalidArgument, size)
		}
		c.bufferSize = size

		return nil
	})
}

// WithMaxRetainedSize sets the largest buffer capacity kept across Release.
// A buffer that grew beyond it goes back to the initial size. The default is
// pool.BufferMaxThreshold.
func WithMaxRetainedSize(size int) Option {
	return options.New(func(c *Config) error {
		if size <= 0 {
			return fmt.Errorf("%w: retained size %d must be positive", errs.ErrInvalidArgument, size)
		}
		c.maxRetained = size

		return nil
	})
}

// WithLogger sets the logger used for buffer growth and resolver events.
func WithLogger(l logging.Logger) Option {
	return options.NoError(func(c *Config) {
		c.logger = l
	})
}
