package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellStatus int8

const (
	Unknown       CellStatus = -2
	Flag          CellStatus = -1
	CorrectFlag   CellStatus = 64 // post-game-over
	ExplodedMine  CellStatus = 65
	WrongFlag     CellStatus = 66
	UnflaggedMine CellStatus = 67
	// 0-8 for an opened cell with the given number of mined neighbors
)

func (s CellStatus) String() string {
	switch s {
	case Unknown:
		return "."
	case Flag, CorrectFlag:
		return "F"
	case ExplodedMine:
		return "X"
	case WrongFlag:
		return "x"
	case UnflaggedMine:
		return "*"
	case 0:
		return " "
	case 1, 2, 3, 4, 5, 6, 7, 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// Number reports the mine count of an opened safe cell.
func (s CellStatus) Number() (n int, ok bool) {
	if 0 <= s && s <= 8 {
		return int(s), true
	}
	return 0, false
}

type GridInfo []CellStatus

// View projects the game onto what the player may see. Mines are exposed
// only after the game is over; the board itself is not modified.
func (g *Game) View() GridInfo {
	cells := g.Board.cells
	grid := make(GridInfo, len(cells))
	for i, c := range cells {
		grid[i] = g.status(c)
	}
	return grid
}

func (g *Game) status(c Cell) CellStatus {
	switch {
	case c.State == Opened && c.Mine:
		return ExplodedMine
	case c.State == Opened:
		return CellStatus(c.Adjacent)
	case g.Dead && c.State == Flagged && c.Mine:
		return CorrectFlag
	case g.Dead && c.State == Flagged:
		return WrongFlag
	case g.Dead && c.Mine:
		return UnflaggedMine
	case g.Won && c.Mine:
		return Flag
	case c.State == Flagged:
		return Flag
	default:
		return Unknown
	}
}

func (g GridInfo) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
