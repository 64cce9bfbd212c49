package tui

import (
	"context"
	"math/rand/v2"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/mines"
)

// UI is the terminal front end. It owns the only reference to the game, so
// all moves are serialized through its event loop.
type UI struct {
	screen tcell.Screen
	log    *logrus.Logger
	params mines.GameParams
	rnd    *rand.Rand

	game      *mines.Game
	cursor    mines.Point
	highlight map[mines.Point]bool
	buttons   tcell.ButtonMask
	quit      bool
}

// New creates a UI over an initialized screen and deals the first board.
func New(
	screen tcell.Screen,
	params mines.GameParams,
	rnd *rand.Rand,
	log *logrus.Logger,
) (*UI, error) {
	board, err := params.NewBoard(rnd)
	if err != nil {
		return nil, err
	}
	ui := &UI{
		screen: screen,
		log:    log,
		params: params,
		rnd:    rnd,
		game:   mines.NewGame(board),
	}
	return ui, nil
}

// Run draws and handles events until the player quits, the screen is
// finalized or Interrupt is called.
func (u *UI) Run(ctx context.Context) error {
	u.log.WithField("params", u.params.String()).Info("game started")
	for !u.quit {
		u.draw()
		ev := u.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			u.log.Info("interrupted")
			return ctx.Err()
		}
		u.handleEvent(ev)
	}
	u.log.Info("quit")
	return nil
}

// Interrupt wakes Run and makes it return. Safe to call from any goroutine.
func (u *UI) Interrupt() {
	if err := u.screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
		u.log.WithError(err).Warn("unable to post interrupt")
	}
}

func (u *UI) restart() {
	board, err := u.params.NewBoard(u.rnd)
	if err != nil {
		// params were valid for the first board
		u.log.WithError(err).Error("unable to create board")
		return
	}
	u.game = mines.NewGame(board)
	u.highlight = nil
	u.log.WithField("params", u.params.String()).Info("new game")
}
