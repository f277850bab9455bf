package encoding

import (
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tiny/errs"
)

func encodeUTF7String(s string) string {
	var counter utf7Writer
	encodeUTF7(&counter, s)

	w := utf7Writer{dst: make([]byte, counter.n)}
	encodeUTF7(&w, s)

	return string(w.dst)
}

func TestEncodeUTF7(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Hi Mom", "Hi Mom"},
		{"A≢Α.", "A+ImIDkQ."},
		{"Hi Mom -☺-!", "Hi Mom -+Jjo--+ACE-"},
		{"日本語", "+ZeVnLIqe-"},
		{"1 + 1", "1 +- 1"},
		{"😀", "+2D3eAA-"},
		{"~x", "+AH4-x"},
		{"éa", "+AOk-a"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, encodeUTF7String(tt.in))
		})
	}
}

func TestDecodeUTF7(t *testing.T) {
	tests := []struct {
		in    string
		units int
		want  string
		n     int
	}{
		{"A+ImIDkQ.", 4, "A≢Α.", 9},
		{"+ZeVnLIqe-", 3, "日本語", 10},
		{"+ZeVnLIqe", 3, "日本語", 9},
		{"1 +- 1", 5, "1 + 1", 6},
		{"+2D3eAA-", 2, "😀", 8},
		{"plain", 5, "plain", 5},
		{"+ZeVnLIqe-next", 3, "日本語", 10},
		{"plain", 2, "pl", 2},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			units, n, err := decodeUTF7(nil, []byte(tt.in), tt.units)
			require.NoError(t, err)
			require.Equal(t, tt.want, string(utf16.Decode(units)))
			require.Equal(t, tt.n, n)
		})
	}
}

func TestDecodeUTF7Truncated(t *testing.T) {
	_, _, err := decodeUTF7(nil, []byte("+ZeVn"), 3)
	require.ErrorIs(t, err, errs.ErrTruncatedData)
}
