// Package accessor reads and writes one member of a value without reflection.
//
// An Accessor lets callers serialize a single field of a larger struct: the
// serializer sees only the field's value and its static type.
package accessor

// Accessor gets and sets a value of type V held by an S.
type Accessor[S, V any] interface {
	Get(src S) V
	Set(dst *S, v V)
}

// Func adapts a getter and a setter to Accessor.
//
// SetFunc may be nil for read-only access; Set then panics.
type Func[S, V any] struct {
	GetFunc func(src S) V
	SetFunc func(dst *S, v V)
}

var _ Accessor[struct{}, int] = Func[struct{}, int]{}

// New returns an Accessor built from get and set.
func New[S, V any](get func(src S) V, set func(dst *S, v V)) Func[S, V] {
	return Func[S, V]{GetFunc: get, SetFunc: set}
}

// ReadOnly returns an Accessor without a setter.
func ReadOnly[S, V any](get func(src S) V) Func[S, V] {
	return Func[S, V]{GetFunc: get}
}

func (f Func[S, V]) Get(src S) V {
	return f.GetFunc(src)
}

func (f Func[S, V]) Set(dst *S, v V) {
	if f.SetFunc == nil {
		panic("accessor: Set on read-only accessor")
	}
	f.SetFunc(dst, v)
}

// CanSet reports whether the accessor has a setter.
func (f Func[S, V]) CanSet() bool {
	return f.SetFunc != nil
}
