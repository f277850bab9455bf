package serializer

import (
	"testing"
)

func BenchmarkSerialize(b *testing.B) {
	ints := make([]int32, 256)
	bools := make([]bool, 256)
	for i := range ints {
		ints[i] = int32(i)
		bools[i] = i%3 == 0
	}

	cases := []struct {
		name string
		v    any
	}{
		{"Int32", int32(42)},
		{"String", "the quick brown fox"},
		{"Int32List", ints},
		{"BoolList", bools},
	}

	for _, casts := range []bool{true, false} {
		s, _ := New(WithEmitNumericCasts(casts))
		mode := "Reflect"
		if casts {
			mode = "Fast"
		}

		for _, c := range cases {
			b.Run(mode+"/"+c.name, func(b *testing.B) {
				dst := make([]byte, 0, 2048)
				b.ReportAllocs()
				for b.Loop() {
					dst, _, _ = SerializeInto(s, c.v, dst)
				}
			})
		}
	}
}

func BenchmarkDeserializeInt32List(b *testing.B) {
	s, _ := New()
	data, _ := Serialize(s, make([]int32, 256))

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for b.Loop() {
		_, _ = Deserialize[[]int32](s, data)
	}
}
