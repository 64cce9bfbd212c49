package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vancomm/minesweeper/internal/mines"
)

const mouseButtons = tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle

func (u *UI) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		u.screen.Sync()
	case *tcell.EventKey:
		u.handleKey(ev)
	case *tcell.EventMouse:
		u.handleMouse(ev)
	}
}

// cellAt maps screen coordinates to board coordinates. Points off the
// board are returned as-is and the engine treats them as no-ops.
func cellAt(x, y int) (int, int) {
	if x < 0 {
		return -1, y - boardTop
	}
	return x / cellWidth, y - boardTop
}

// handleMouse acts on button transitions: terminals report the full button
// state with every event, including motion.
func (u *UI) handleMouse(ev *tcell.EventMouse) {
	x, y := cellAt(ev.Position())
	buttons := ev.Buttons() & mouseButtons
	pressed := buttons &^ u.buttons
	released := u.buttons &^ buttons
	u.buttons = buttons

	if pressed != 0 && u.game.Board.InBounds(x, y) {
		u.cursor = mines.Point{X: x, Y: y}
	}

	switch {
	case pressed&tcell.ButtonPrimary != 0:
		u.game.Open(x, y)
	case pressed&tcell.ButtonSecondary != 0:
		u.game.Flag(x, y)
	case pressed&tcell.ButtonMiddle != 0:
		u.highlight = make(map[mines.Point]bool)
		for nx, ny := range u.game.Board.Neighbors(x, y) {
			u.highlight[mines.Point{X: nx, Y: ny}] = true
		}
	}

	if released&tcell.ButtonMiddle != 0 {
		u.highlight = nil
		u.game.Chord(x, y)
	}
}

func (u *UI) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		u.quit = true
	case tcell.KeyUp:
		u.move(0, -1)
	case tcell.KeyDown:
		u.move(0, 1)
	case tcell.KeyLeft:
		u.move(-1, 0)
	case tcell.KeyRight:
		u.move(1, 0)
	case tcell.KeyEnter:
		u.game.Open(u.cursor.X, u.cursor.Y)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			u.quit = true
		case 'r':
			u.restart()
		case 'k':
			u.move(0, -1)
		case 'j':
			u.move(0, 1)
		case 'h':
			u.move(-1, 0)
		case 'l':
			u.move(1, 0)
		case ' ':
			u.game.Open(u.cursor.X, u.cursor.Y)
		case 'f':
			u.game.Flag(u.cursor.X, u.cursor.Y)
		case 'c':
			u.game.Chord(u.cursor.X, u.cursor.Y)
		}
	}
}

func (u *UI) move(dx, dy int) {
	x, y := u.cursor.X+dx, u.cursor.Y+dy
	if u.game.Board.InBounds(x, y) {
		u.cursor = mines.Point{X: x, Y: y}
	}
}
