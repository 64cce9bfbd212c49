package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/vancomm/minesweeper/internal/mines"
)

const (
	cellWidth = 3
	boardTop  = 0
)

var (
	openCellColor   = tcell.NewRGBColor(229, 229, 229)
	closedCellColor = tcell.NewRGBColor(189, 189, 189)
	highlightColor  = tcell.NewRGBColor(255, 255, 0)
	flagColor       = tcell.NewRGBColor(255, 69, 0)
	mineColor       = tcell.NewRGBColor(128, 128, 128)
	explodedColor   = tcell.NewRGBColor(211, 47, 47)

	numberColors = [...]tcell.Color{
		tcell.ColorDefault,
		tcell.NewRGBColor(25, 118, 210),
		tcell.NewRGBColor(56, 142, 60),
		tcell.NewRGBColor(211, 47, 47),
		tcell.NewRGBColor(123, 31, 162),
		tcell.NewRGBColor(255, 143, 0),
		tcell.NewRGBColor(0, 77, 64),
		tcell.NewRGBColor(84, 84, 84),
		tcell.NewRGBColor(0, 0, 0),
	}
)

const helpText = "mouse: L open  R flag  M chord | keys: arrows/hjkl space f c r q"

func (u *UI) draw() {
	u.screen.Clear()

	board := u.game.Board
	view := u.game.View()
	for y := range board.Height() {
		for x := range board.Width() {
			u.drawCell(x, y, view[y*board.Width()+x])
		}
	}

	statusTop := boardTop + board.Height()
	drawText(u.screen, 0, statusTop, tcell.StyleDefault.Bold(true),
		fmt.Sprintf("Mines Left: %d", board.MinesLeft()))

	switch {
	case u.game.Dead:
		drawText(u.screen, 0, statusTop+1, tcell.StyleDefault.Foreground(explodedColor),
			"BOOM! r: new game  q: quit")
	case u.game.Won:
		drawText(u.screen, 0, statusTop+1, tcell.StyleDefault.Foreground(numberColors[2]),
			"CLEARED! r: new game  q: quit")
	default:
		drawText(u.screen, 0, statusTop+1, tcell.StyleDefault.Dim(true), helpText)
	}

	u.screen.Show()
}

func (u *UI) drawCell(x, y int, status mines.CellStatus) {
	style := tcell.StyleDefault.Background(closedCellColor).Foreground(tcell.ColorBlack)
	r := ' '

	switch status {
	case mines.Unknown:
		if u.highlight[mines.Point{X: x, Y: y}] {
			style = style.Background(highlightColor)
		}
	case mines.Flag, mines.CorrectFlag:
		style, r = style.Foreground(flagColor).Bold(true), 'F'
	case mines.WrongFlag:
		style, r = style.Foreground(flagColor), 'x'
	case mines.UnflaggedMine:
		style, r = style.Foreground(mineColor).Bold(true), '*'
	case mines.ExplodedMine:
		style, r = style.Background(explodedColor).Foreground(tcell.ColorBlack).Bold(true), '*'
	default:
		style = style.Background(openCellColor)
		if n, ok := status.Number(); ok && n > 0 {
			style, r = style.Foreground(numberColors[n]).Bold(true), rune('0'+n)
		}
	}

	if u.cursor.X == x && u.cursor.Y == y && !u.game.Over() {
		style = style.Reverse(true)
	}

	left := x * cellWidth
	u.screen.SetContent(left, boardTop+y, ' ', nil, style)
	u.screen.SetContent(left+1, boardTop+y, r, nil, style)
	u.screen.SetContent(left+2, boardTop+y, ' ', nil, style)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
