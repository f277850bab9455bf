// Package threadsafe shares serializers between goroutines through a
// sync.Pool.
//
// Every call borrows one *serializer.Serializer for its duration, so
// concurrent calls never share a scratch buffer. Resolvers registered on the
// Pool are applied to every pooled instance before it is handed out.
package threadsafe

import (
	"fmt"
	"sync"

	"github.com/arloliu/tiny/frame"
	"github.com/arloliu/tiny/serializer"
)

type pooled struct {
	s   *serializer.Serializer
	gen uint64
}

// Pool is a concurrency-safe front end over pooled serializers with identical
// settings.
type Pool struct {
	pool     sync.Pool
	settings serializer.Settings

	mu        sync.RWMutex
	resolvers []serializer.Resolver
	gen       uint64
}

// New creates a Pool whose serializers are built with opts.
//
// The options are validated once here; an invalid option is returned as an
// error instead of surfacing on first use.
func New(opts ...serializer.Option) (*Pool, error) {
	first, err := serializer.New(opts...)
	if err != nil {
		return nil, err
	}

	p := &Pool{settings: first.Settings()}
	p.pool.New = func() any {
		s, err := serializer.New(opts...)
		if err != nil {
			panic(fmt.Sprintf("threadsafe: options failed after validation: %v", err))
		}

		return &pooled{s: s}
	}
	p.pool.Put(&pooled{s: first})

	return p, nil
}

// Settings returns the settings shared by every pooled serializer.
func (p *Pool) Settings() serializer.Settings {
	return p.settings
}

// Register adds r to every serializer handed out from now on, replacing any
// earlier resolver for the same type.
func (p *Pool) Register(r serializer.Resolver) error {
	return p.register(r, func(s *serializer.Serializer) error {
		return s.Register(r)
	})
}

// RegisterResolver is Register with the static type check of
// serializer.RegisterResolver.
func RegisterResolver[T any](p *Pool, r serializer.Resolver) error {
	return p.register(r, func(s *serializer.Serializer) error {
		return serializer.RegisterResolver[T](s, r)
	})
}

// register validates r on a borrowed serializer before recording it.
func (p *Pool) register(r serializer.Resolver, check func(s *serializer.Serializer) error) error {
	if err := p.Do(check); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	t := r.Type()
	replaced := false
	for i, existing := range p.resolvers {
		if existing.Type() == t {
			p.resolvers[i] = r
			replaced = true

			break
		}
	}
	if !replaced {
		p.resolvers = append(p.resolvers, r)
	}
	p.gen++

	return nil
}

// Resolvers returns the resolvers applied to pooled serializers.
func (p *Pool) Resolvers() []serializer.Resolver {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]serializer.Resolver, len(p.resolvers))
	copy(out, p.resolvers)

	return out
}

func (p *Pool) acquire() (*pooled, error) {
	item, _ := p.pool.Get().(*pooled)

	p.mu.RLock()
	defer p.mu.RUnlock()

	if item.gen != p.gen {
		item.s.Reset()
		for _, r := range p.resolvers {
			if err := item.s.Register(r); err != nil {
				// item.gen stays stale, so the next borrower replays again.
				p.release(item)

				return nil, err
			}
		}
		item.gen = p.gen
	}

	return item, nil
}

func (p *Pool) release(item *pooled) {
	item.s.Release()
	p.pool.Put(item)
}

// Do runs fn with a borrowed serializer. The serializer, and any slice of its
// buffer, must not be retained after fn returns.
func (p *Pool) Do(fn func(s *serializer.Serializer) error) error {
	item, err := p.acquire()
	if err != nil {
		return err
	}
	defer p.release(item)

	return fn(item.s)
}

// Marshal encodes v using its runtime type.
func (p *Pool) Marshal(v any) ([]byte, error) {
	item, err := p.acquire()
	if err != nil {
		return nil, err
	}
	defer p.release(item)

	return item.s.Marshal(v)
}

// Serialize encodes v with a pooled serializer.
func Serialize[T any](p *Pool, v T) ([]byte, error) {
	item, err := p.acquire()
	if err != nil {
		return nil, err
	}
	defer p.release(item)

	return serializer.Serialize(item.s, v)
}

// SerializeAt encodes v at dst[offset:] with a pooled serializer.
func SerializeAt[T any](p *Pool, v T, dst []byte, offset int) ([]byte, int, error) {
	item, err := p.acquire()
	if err != nil {
		return dst, 0, err
	}
	defer p.release(item)

	return serializer.SerializeAt(item.s, v, dst, offset)
}

// Deserialize decodes a T with a pooled serializer.
func Deserialize[T any](p *Pool, data []byte) (T, error) {
	item, err := p.acquire()
	if err != nil {
		var zero T
		return zero, err
	}
	defer p.release(item)

	return serializer.Deserialize[T](item.s, data)
}

// SerializeFramed encodes v into a frame with a pooled serializer.
func SerializeFramed[T any](p *Pool, v T, opts ...frame.EncodeOption) ([]byte, error) {
	item, err := p.acquire()
	if err != nil {
		return nil, err
	}
	defer p.release(item)

	return serializer.SerializeFramed(item.s, v, opts...)
}

// DeserializeFramed decodes a framed T with a pooled serializer.
func DeserializeFramed[T any](p *Pool, data []byte, opts ...frame.DecodeOption) (T, error) {
	item, err := p.acquire()
	if err != nil {
		var zero T
		return zero, err
	}
	defer p.release(item)

	v, _, err := serializer.DeserializeFramed[T](item.s, data, opts...)

	return v, err
}
