package serializer

import (
	"fmt"

	"github.com/arloliu/tiny/encoding"
	"github.com/arloliu/tiny/endian"
	"github.com/arloliu/tiny/errs"
	"github.com/arloliu/tiny/internal/logging"
	"github.com/arloliu/tiny/internal/options"
	"github.com/arloliu/tiny/internal/pool"
	"github.com/arloliu/tiny/internal/stats"
)

// Serializer encodes Go values into the compact native-layout format.
//
// A Serializer owns one scratch buffer and one resolver registry and is NOT
// thread-safe. Use one instance per goroutine, or threadsafe.Pool.
type Serializer struct {
	settings    Settings
	engine      endian.EndianEngine
	text        encoding.TextCodec
	buf         *pool.Buffer
	initialSize int
	maxRetained int
	resolvers   registry
	logger      logging.Logger
}

// New creates a Serializer with DefaultSettings modified by opts.
//
// Returns errs.ErrUnsupportedKind for an unknown string encoding and
// errs.ErrInvalidArgument for a non-positive buffer size.
func New(opts ...Option) (*Serializer, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if err := cfg.settings.Validate(); err != nil {
		return nil, err
	}

	engine := endian.GetNativeEngine()
	text, err := encoding.NewTextCodec(engine, cfg.settings.StringEncoding)
	if err != nil {
		return nil, err
	}

	l := cfg.logger
	if l == nil {
		l = logging.GetLogger("serializer")
	}

	return &Serializer{
		settings:    cfg.settings,
		engine:      engine,
		text:        text,
		buf:         pool.NewBuffer(cfg.bufferSize),
		initialSize: cfg.bufferSize,
		maxRetained: max(cfg.maxRetained, pool.NextPowerOfTwo(cfg.bufferSize)),
		logger:      l,
	}, nil
}

// NewWithBufferSize creates a Serializer whose initial buffer holds at least
// size bytes.
func NewWithBufferSize(size int, opts ...Option) (*Serializer, error) {
	return New(append([]Option{WithBufferSize(size)}, opts...)...)
}

// Settings returns the settings the Serializer was created with.
func (s *Serializer) Settings() Settings {
	return s.settings
}

// BufferCap returns the current capacity of the scratch buffer.
func (s *Serializer) BufferCap() int {
	return s.buf.Cap()
}

// Register adds r to the resolver registry, replacing any resolver for the
// same type.
//
// Unlike RegisterResolver it does not check r against a static type.
func (s *Serializer) Register(r Resolver) error {
	if isNilResolver(r) {
		return fmt.Errorf("%w: nil resolver", errs.ErrInvalidArgument)
	}

	t := r.Type()
	if t == nil {
		return fmt.Errorf("%w: resolver reports nil type", errs.ErrInvalidArgument)
	}

	if s.resolvers.add(r) {
		s.logger.Infof("replaced resolver for %s", t)
	} else {
		s.logger.Debugf("registered resolver for %s", t)
	}

	return nil
}

// Resolvers returns the registered resolvers in registration order.
func (s *Serializer) Resolvers() []Resolver {
	return s.resolvers.all()
}

// Release drops a scratch buffer that grew past the retained size, see
// WithMaxRetainedSize. Smaller buffers are kept as they are, and so are the
// registered resolvers.
func (s *Serializer) Release() {
	if old := s.buf.Cap(); old > s.maxRetained {
		s.buf.Shrink(s.initialSize)
		s.logger.Debugf("buffer of %d bytes released, back to %d", old, s.buf.Cap())
	}
}

// Reset restores the Serializer to its freshly constructed state: the buffer
// is released and every resolver is removed.
func (s *Serializer) Reset() {
	s.Release()
	s.resolvers.clear()
}

// grow makes the scratch buffer hold at least required bytes.
func (s *Serializer) grow(required int) {
	old := s.buf.Cap()
	if s.buf.EnsureCapacity(required) {
		stats.BufferGrowTotal.Inc()
		s.logger.Debugf("buffer grown from %d to %d bytes", old, s.buf.Cap())
	}
}
