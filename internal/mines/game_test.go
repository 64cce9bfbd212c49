package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameLoss(t *testing.T) {
	t.Parallel()

	g := NewGame(mustBoard(t, 3, 3, Point{0, 0}, Point{2, 2}))
	assert.Equal(t, Continue, g.Flag(2, 0))
	assert.Equal(t, Continue, g.Flag(2, 2))
	assert.Equal(t, Continue, g.Open(1, 1))
	assert.False(t, g.Over())

	assert.Equal(t, Detonated, g.Open(0, 0))
	assert.True(t, g.Dead)
	assert.False(t, g.Won)
	assert.True(t, g.Over())

	before := states(g.Board)
	assert.Equal(t, NoOp, g.Open(1, 0))
	assert.Equal(t, NoOp, g.Flag(1, 0))
	assert.Equal(t, NoOp, g.Chord(1, 1))
	assert.Equal(t, before, states(g.Board))

	want := GridInfo{
		ExplodedMine, Unknown, WrongFlag,
		Unknown, 2, Unknown,
		Unknown, Unknown, CorrectFlag,
	}
	assert.Equal(t, want, g.View())
}

func TestGameWin(t *testing.T) {
	t.Parallel()

	g := NewGame(mustBoard(t, 3, 3, Point{2, 2}))
	assert.Equal(t, Unknown, g.View()[0])

	assert.Equal(t, Continue, g.Open(0, 0))
	assert.True(t, g.Won)
	assert.False(t, g.Dead)

	want := GridInfo{
		0, 0, 0,
		0, 1, 1,
		0, 1, Flag,
	}
	assert.Equal(t, want, g.View())
	assert.Equal(t, NoOp, g.Flag(2, 2))
}

func TestGameChordLossIsNotAWin(t *testing.T) {
	t.Parallel()

	g := NewGame(mustBoard(t, 3, 3, Point{0, 0}))
	g.Open(1, 1)
	g.Flag(2, 2)

	// every safe cell ends up open, but the chord also hit the mine
	assert.Equal(t, Detonated, g.Chord(1, 1))
	assert.True(t, g.Dead)
	assert.False(t, g.Won)
}

func TestGameViewHidesMines(t *testing.T) {
	t.Parallel()

	g := NewGame(mustBoard(t, 2, 2, Point{0, 0}))
	g.Flag(1, 1)
	g.Open(1, 0)
	assert.Equal(t, GridInfo{Unknown, 1, Unknown, Flag}, g.View())
	assert.Equal(t, ". 1 \n. F \n", g.View().ToString(2))
}

func TestCellStatusNumber(t *testing.T) {
	t.Parallel()

	n, ok := CellStatus(3).Number()
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	for _, s := range []CellStatus{Unknown, Flag, ExplodedMine, WrongFlag} {
		_, ok := s.Number()
		assert.False(t, ok, s.String())
	}
}
