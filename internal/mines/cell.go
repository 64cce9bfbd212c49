package mines

type CellState int8

const (
	Unopened CellState = iota
	Flagged
	Opened
)

func (s CellState) String() string {
	switch s {
	case Unopened:
		return "unopened"
	case Flagged:
		return "flagged"
	case Opened:
		return "opened"
	default:
		return "invalid"
	}
}

// Cell is one grid position. Mine and Adjacent are fixed when the board is
// created; Adjacent is not meaningful for a mine.
type Cell struct {
	State    CellState
	Mine     bool
	Adjacent int
}

type Point struct {
	X, Y int
}
