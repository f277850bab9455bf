// Package errs defines the sentinel errors returned by tiny.
//
// Call sites wrap these with fmt.Errorf("%w: ...") to add context, so callers
// should match with errors.Is rather than comparing directly.
package errs

import "errors"

// Serialization errors.
var (
	// ErrUnsupportedKind is returned when a type has no binary layout, or when a
	// setting (string encoding, prefix width) names an unknown scheme.
	ErrUnsupportedKind = errors.New("unsupported kind")
	// ErrInvalidArgument is returned for nil values, nil resolvers and
	// mismatched resolver types.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotImplemented is returned for object graph kinds.
	ErrNotImplemented = errors.New("not implemented")
)

// Deserialization errors.
var (
	ErrTruncatedData = errors.New("truncated data")
	ErrInvalidPrefix = errors.New("invalid length prefix")
	ErrInvalidData   = errors.New("invalid data")
)

// Frame errors.
var (
	ErrInvalidFrame      = errors.New("invalid frame")
	ErrChecksumMismatch  = errors.New("checksum mismatch")
	ErrByteOrderMismatch = errors.New("byte order mismatch")
)
