package serializer

import (
	"github.com/arloliu/tiny/accessor"
)

// SerializeField encodes the member of src selected by acc.
func SerializeField[S, V any](s *Serializer, src S, acc accessor.Accessor[S, V]) ([]byte, error) {
	return Serialize(s, acc.Get(src))
}

// DeserializeField decodes a V from data and stores it into dst through acc.
func DeserializeField[S, V any](s *Serializer, data []byte, dst *S, acc accessor.Accessor[S, V]) error {
	v, err := Deserialize[V](s, data)
	if err != nil {
		return err
	}
	acc.Set(dst, v)

	return nil
}
