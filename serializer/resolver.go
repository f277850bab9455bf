package serializer

import (
	"fmt"
	"reflect"

	"github.com/arloliu/tiny/errs"
)

// Resolver takes over encoding of one exact Go type.
//
// When a value's runtime type equals Type(), the Serializer calls Size, grows
// its buffer, and hands Write a window of exactly that many bytes. The
// built-in kind encoders are not consulted for that type.
type Resolver interface {
	// Type returns the exact type handled by the resolver.
	Type() reflect.Type
	// Size returns the number of bytes Write will produce for v.
	Size(v any) int
	// Write encodes v into dst, which has length Size(v).
	Write(v any, dst []byte) error
}

// Reader is implemented by resolvers that can also decode their type.
type Reader interface {
	// Read decodes one value from the start of src and returns it with the
	// number of bytes consumed.
	Read(src []byte) (any, int, error)
}

// ResolverFunc adapts typed closures to Resolver and Reader.
//
// ReadFunc is optional; without it, decoding T fails with errs.ErrNotImplemented.
type ResolverFunc[T any] struct {
	SizeFunc  func(v T) int
	WriteFunc func(v T, dst []byte) error
	ReadFunc  func(src []byte) (T, int, error)
}

var (
	_ Resolver = (*ResolverFunc[int])(nil)
	_ Reader   = (*ResolverFunc[int])(nil)
)

// NewResolver creates a ResolverFunc from a size and a write function.
func NewResolver[T any](size func(v T) int, write func(v T, dst []byte) error) *ResolverFunc[T] {
	return &ResolverFunc[T]{SizeFunc: size, WriteFunc: write}
}

// WithReader sets the decoding function and returns r.
func (r *ResolverFunc[T]) WithReader(read func(src []byte) (T, int, error)) *ResolverFunc[T] {
	r.ReadFunc = read
	return r
}

func (r *ResolverFunc[T]) Type() reflect.Type {
	return reflect.TypeFor[T]()
}

func (r *ResolverFunc[T]) Size(v any) int {
	return r.SizeFunc(v.(T)) //nolint:forcetypeassert
}

func (r *ResolverFunc[T]) Write(v any, dst []byte) error {
	return r.WriteFunc(v.(T), dst) //nolint:forcetypeassert
}

func (r *ResolverFunc[T]) Read(src []byte) (any, int, error) {
	if r.ReadFunc == nil {
		return nil, 0, fmt.Errorf("%w: no reader for %s", errs.ErrNotImplemented, r.Type())
	}

	return r.ReadFunc(src)
}

// registry holds the resolvers of one Serializer in registration order.
type registry struct {
	resolvers []Resolver
}

// add inserts r, replacing the entry that handles the same type. Registering
// the same instance twice therefore replaces it in place. It reports whether
// an entry was replaced.
func (g *registry) add(r Resolver) bool {
	t := r.Type()
	for i, existing := range g.resolvers {
		if existing.Type() == t {
			g.resolvers[i] = r
			return true
		}
	}
	g.resolvers = append(g.resolvers, r)

	return false
}

func (g *registry) lookup(t reflect.Type) Resolver {
	for _, r := range g.resolvers {
		if r.Type() == t {
			return r
		}
	}

	return nil
}

func (g *registry) len() int {
	return len(g.resolvers)
}

func (g *registry) clear() {
	g.resolvers = nil
}

// all returns a copy of the registered resolvers.
func (g *registry) all() []Resolver {
	out := make([]Resolver, len(g.resolvers))
	copy(out, g.resolvers)

	return out
}

func isNilResolver(r Resolver) bool {
	if r == nil {
		return true
	}
	v := reflect.ValueOf(r)

	return v.Kind() == reflect.Pointer && v.IsNil()
}

// RegisterResolver registers r for T on s.
//
// Returns errs.ErrInvalidArgument when r is nil or r.Type() is not T.
// Registering a resolver for a type that already has one replaces it.
func RegisterResolver[T any](s *Serializer, r Resolver) error {
	if isNilResolver(r) {
		return fmt.Errorf("%w: nil resolver", errs.ErrInvalidArgument)
	}

	want := reflect.TypeFor[T]()
	if got := r.Type(); got != want {
		return fmt.Errorf("%w: resolver for %s registered as %s", errs.ErrInvalidArgument, got, want)
	}

	return s.Register(r)
}
