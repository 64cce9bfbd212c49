package mines

type Outcome int

const (
	NoOp Outcome = iota
	Continue
	Detonated
)

func (o Outcome) String() string {
	switch o {
	case NoOp:
		return "noop"
	case Continue:
		return "continue"
	case Detonated:
		return "detonated"
	default:
		return "invalid"
	}
}

// Open opens an unopened cell. Opening a mine returns Detonated and changes
// nothing else. Opening a cell with no adjacent mines floods through its
// zero-valued region and the numbered ring around it.
func (b *Board) Open(x, y int) Outcome {
	if !b.InBounds(x, y) {
		return NoOp
	}
	i := b.index(x, y)
	c := &b.cells[i]
	if c.State != Unopened {
		return NoOp
	}
	c.State = Opened
	if c.Mine {
		return Detonated
	}
	if c.Adjacent == 0 {
		b.flood(i)
	}
	return Continue
}

// flood expands from an opened zero cell. Opened is absorbing, so each cell
// is queued at most once.
func (b *Board) flood(start int) {
	todo := newCelltodo(len(b.cells))
	todo.add(start)
	for !todo.empty() {
		i := todo.pop()
		for nx, ny := range b.Neighbors(i%b.width, i/b.width) {
			j := b.index(nx, ny)
			n := &b.cells[j]
			if n.State != Unopened || n.Mine {
				continue
			}
			n.State = Opened
			if n.Adjacent == 0 {
				todo.add(j)
			}
		}
	}
}

// ToggleFlag flips a cell between Unopened and Flagged. Opened cells and
// out-of-bounds coordinates are ignored and yield NoOp.
func (b *Board) ToggleFlag(x, y int) Outcome {
	if !b.InBounds(x, y) {
		return NoOp
	}
	c := &b.cells[b.index(x, y)]
	switch c.State {
	case Unopened:
		c.State = Flagged
	case Flagged:
		c.State = Unopened
	default:
		return NoOp
	}
	return Continue
}

// Chord opens every unopened neighbor of an opened numbered cell when the
// number of flagged neighbors equals the cell's number exactly. Flags are
// not checked against the real mines. All neighbors are opened even after
// one detonates.
func (b *Board) Chord(x, y int) Outcome {
	if !b.InBounds(x, y) {
		return NoOp
	}
	c := b.cells[b.index(x, y)]
	if c.State != Opened || c.Mine || c.Adjacent < 1 || c.Adjacent > 8 {
		return NoOp
	}
	flags := 0
	for nx, ny := range b.Neighbors(x, y) {
		if b.cells[b.index(nx, ny)].State == Flagged {
			flags++
		}
	}
	if flags != c.Adjacent {
		return NoOp
	}
	outcome := Continue
	for nx, ny := range b.Neighbors(x, y) {
		if b.Open(nx, ny) == Detonated {
			outcome = Detonated
		}
	}
	return outcome
}
