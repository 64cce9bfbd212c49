package mines

import (
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Game is one play session over a Board. Once the player is dead or has won,
// further moves are ignored.
type Game struct {
	Dead, Won bool
	Board     *Board
}

func NewGame(b *Board) *Game {
	return &Game{Board: b}
}

func (g *Game) Over() bool {
	return g.Dead || g.Won
}

func (g *Game) Open(x, y int) Outcome {
	if g.Over() {
		return NoOp
	}
	outcome := g.Board.Open(x, y)
	g.settle("open", x, y, outcome)
	return outcome
}

func (g *Game) Flag(x, y int) Outcome {
	if g.Over() {
		return NoOp
	}
	outcome := g.Board.ToggleFlag(x, y)
	Log.WithFields(logrus.Fields{
		"x": x, "y": y, "outcome": outcome, "mines_left": g.Board.MinesLeft(),
	}).Debug("flag")
	return outcome
}

func (g *Game) Chord(x, y int) Outcome {
	if g.Over() {
		return NoOp
	}
	outcome := g.Board.Chord(x, y)
	g.settle("chord", x, y, outcome)
	return outcome
}

func (g *Game) settle(move string, x, y int, outcome Outcome) {
	Log.WithFields(logrus.Fields{
		"x": x, "y": y, "outcome": outcome,
	}).Debug(move)

	switch outcome {
	case NoOp:
		return
	case Detonated:
		/* If the player has already lost, don't let them win as well. */
		g.Dead = true
		Log.WithFields(logrus.Fields{"x": x, "y": y}).Info("mine detonated")
		return
	}
	if g.Board.Won() {
		g.Won = true
		Log.WithField("params", g.Board.Params().String()).Info("board cleared")
	}
}
