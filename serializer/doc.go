// Package serializer encodes Go values into a compact, header-less binary
// layout that mirrors their in-memory form.
//
// Fixed-width values (integers, floats, bool, float16, value.Char,
// value.Decimal, time.Time, value.DateTimeOffset, time.Duration and the value
// vector types) are written as their raw bytes in the host's native byte
// order. Strings, arrays and slices are written as a length prefix followed by
// their payload. Pointers to fixed-width values carry a presence flag.
//
//	s, err := serializer.New(serializer.WithVariablePrefixLength(true))
//	if err != nil {
//		return err
//	}
//	data, err := serializer.Serialize(s, []int32{1, 2, 3})
//	...
//	back, err := serializer.Deserialize[[]int32](s, data)
//
// The layout carries no type information and no byte-order marker: the reader
// must know the static type and use the same Settings on a host of the same
// byte order. Package frame adds a self-describing envelope for data that
// leaves the process.
//
// Types not covered by the built-in kinds can be handled by registering a
// Resolver, which takes precedence over the built-in encoding for its exact
// type. Struct kinds are classified but not encoded; they report
// errs.ErrNotImplemented.
//
// A Serializer is not safe for concurrent use. See package threadsafe.
package serializer
