package accessor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type player struct {
	Name  string
	Score int32
}

func TestFuncGetSet(t *testing.T) {
	score := New(
		func(p player) int32 { return p.Score },
		func(p *player, v int32) { p.Score = v },
	)

	p := player{Name: "ann", Score: 7}
	require.Equal(t, int32(7), score.Get(p))
	require.True(t, score.CanSet())

	score.Set(&p, 42)
	require.Equal(t, int32(42), p.Score)
	require.Equal(t, "ann", p.Name)
}

func TestReadOnly(t *testing.T) {
	name := ReadOnly(func(p player) string { return p.Name })

	require.Equal(t, "bob", name.Get(player{Name: "bob"}))
	require.False(t, name.CanSet())
	require.PanicsWithValue(t, "accessor: Set on read-only accessor", func() {
		var p player
		name.Set(&p, "x")
	})
}

func TestFuncSatisfiesInterface(t *testing.T) {
	var acc Accessor[player, string] = New(
		func(p player) string { return p.Name },
		func(p *player, v string) { p.Name = v },
	)

	var p player
	acc.Set(&p, "cy")
	require.Equal(t, "cy", acc.Get(p))
}
