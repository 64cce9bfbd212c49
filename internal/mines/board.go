package mines

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"strings"
)

type GameParams struct {
	Width     int `json:"width"`
	Height    int `json:"height"`
	MineCount int `json:"mine_count"`
}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

// Validate reports whether a board can be created with p. The mine count
// must leave at least one safe cell.
func (p GameParams) Validate() error {
	width, height, mineCount := p.Unpack()
	switch {
	case width <= 0 || height <= 0:
		return invalidConfiguration(width, height, mineCount, "dimensions must be positive")
	case mineCount < 0:
		return invalidConfiguration(width, height, mineCount, "mine count must not be negative")
	case mineCount >= width*height:
		return invalidConfiguration(width, height, mineCount, "mine count must be less than cell count")
	}
	return nil
}

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Width, p.Height, p.MineCount)
}

func (p GameParams) NewBoard(r *rand.Rand) (*Board, error) {
	return NewBoard(p.Width, p.Height, p.MineCount, r)
}

// Board owns the cell grid. Cells are stored row-major. A Board has no
// internal synchronization; callers must serialize mutating calls.
type Board struct {
	width, height int
	mineCount     int
	cells         []Cell
}

func newEmptyBoard(width, height, mineCount int) (*Board, error) {
	params := GameParams{Width: width, Height: height, MineCount: mineCount}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Board{
		width:     width,
		height:    height,
		mineCount: mineCount,
		cells:     make([]Cell, width*height),
	}, nil
}

// NewBoard places mineCount mines uniformly at random by rejection sampling.
// There is no safe first click.
func NewBoard(width, height, mineCount int, r *rand.Rand) (*Board, error) {
	b, err := newEmptyBoard(width, height, mineCount)
	if err != nil {
		return nil, err
	}
	placed := 0
	for placed < mineCount {
		i := r.IntN(len(b.cells))
		if b.cells[i].Mine {
			continue
		}
		b.placeMine(i)
		placed++
	}
	return b, nil
}

// NewBoardWithMines builds a board with mines at exactly the given points,
// for replays and fixed layouts.
func NewBoardWithMines(width, height int, mines []Point) (*Board, error) {
	b, err := newEmptyBoard(width, height, len(mines))
	if err != nil {
		return nil, err
	}
	for _, p := range mines {
		if !b.InBounds(p.X, p.Y) {
			return nil, invalidConfiguration(
				width, height, len(mines),
				fmt.Sprintf("mine %d:%d out of bounds", p.X, p.Y),
			)
		}
		i := b.index(p.X, p.Y)
		if b.cells[i].Mine {
			return nil, invalidConfiguration(
				width, height, len(mines),
				fmt.Sprintf("duplicate mine at %d:%d", p.X, p.Y),
			)
		}
		b.placeMine(i)
	}
	return b, nil
}

func (b *Board) placeMine(i int) {
	b.cells[i].Mine = true
	for nx, ny := range b.Neighbors(i%b.width, i/b.width) {
		b.cells[b.index(nx, ny)].Adjacent++
	}
}

func (b *Board) Width() int     { return b.width }
func (b *Board) Height() int    { return b.height }
func (b *Board) MineCount() int { return b.mineCount }

func (b *Board) Params() GameParams {
	return GameParams{Width: b.width, Height: b.height, MineCount: b.mineCount}
}

func (b *Board) InBounds(x, y int) bool {
	return 0 <= x && x < b.width && 0 <= y && y < b.height
}

func (b *Board) index(x, y int) int {
	return y*b.width + x
}

// Cell returns a copy of the cell at x, y. ok is false out of bounds.
func (b *Board) Cell(x, y int) (c Cell, ok bool) {
	if !b.InBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[b.index(x, y)], true
}

// Cells returns a row-major snapshot of the grid.
func (b *Board) Cells() []Cell {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return cells
}

// Neighbors yields the in-bounds 8-neighborhood of x, y, scanning rows top
// to bottom and columns left to right.
func (b *Board) Neighbors(x, y int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := x+dx, y+dy
				if !b.InBounds(nx, ny) {
					continue
				}
				if !yield(nx, ny) {
					return
				}
			}
		}
	}
}

// MinesLeft is the configured mine count minus placed flags. It goes
// negative when the player over-flags.
func (b *Board) MinesLeft() int {
	flags := 0
	for _, c := range b.cells {
		if c.State == Flagged {
			flags++
		}
	}
	return b.mineCount - flags
}

// Won reports whether every safe cell is opened.
func (b *Board) Won() bool {
	for _, c := range b.cells {
		if !c.Mine && c.State != Opened {
			return false
		}
	}
	return true
}

// String renders the full layout, mines as '*', for debugging.
func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.height {
		for x := range b.width {
			c := b.cells[b.index(x, y)]
			if c.Mine {
				sb.WriteString("* ")
			} else {
				fmt.Fprintf(&sb, "%d ", c.Adjacent)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
