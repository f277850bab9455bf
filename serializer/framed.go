package serializer

import (
	"github.com/arloliu/tiny/frame"
)

// SerializeFramed encodes v and wraps the result in a frame.
func SerializeFramed[T any](s *Serializer, v T, opts ...frame.EncodeOption) ([]byte, error) {
	n, err := run(s, v)
	if err != nil {
		return nil, err
	}

	return frame.Encode(s.buf.B[:n], opts...)
}

// DeserializeFramed unwraps a frame produced by SerializeFramed and decodes
// its payload as T.
func DeserializeFramed[T any](s *Serializer, data []byte, opts ...frame.DecodeOption) (T, frame.Header, error) {
	payload, h, err := frame.Decode(data, opts...)
	if err != nil {
		var zero T
		return zero, h, err
	}

	v, err := Deserialize[T](s, payload)

	return v, h, err
}
