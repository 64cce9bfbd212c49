package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"g": 0, // print the grid
	"o": 2,
	"f": 2,
	"c": 2,
	"n": 0, // new game
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

type scriptSession struct {
	game   *mines.Game
	params mines.GameParams
	rnd    *rand.Rand
	out    io.Writer
}

func newScriptSession(params mines.GameParams, rnd *rand.Rand, out io.Writer) (*scriptSession, error) {
	s := &scriptSession{params: params, rnd: rnd, out: out}
	if err := s.newGame(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *scriptSession) newGame() error {
	board, err := s.params.NewBoard(s.rnd)
	if err != nil {
		return err
	}
	s.game = mines.NewGame(board)
	log.WithField("params", s.params.String()).Info("new game")
	return nil
}

// executeCommand runs one command line. Coordinates off the board are not
// an error; the move is simply a no-op.
func (s *scriptSession) executeCommand(c string) (err error) {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return errors.New("empty command")
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("unknown command %q", parts[0])
	}
	if nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "g":
		return s.print()
	case "n":
		return s.newGame()
	}
	x, y, err := parseXY(parts[1:])
	if err != nil {
		return err
	}
	switch parts[0] {
	case "o":
		s.game.Open(x, y)
	case "f":
		s.game.Flag(x, y)
	case "c":
		s.game.Chord(x, y)
	}
	return nil
}

func (s *scriptSession) status() string {
	switch {
	case s.game.Dead:
		return "dead"
	case s.game.Won:
		return "won"
	default:
		return "playing"
	}
}

func (s *scriptSession) print() error {
	board := s.game.Board
	_, err := fmt.Fprintf(s.out, "%smines left: %d\nstatus: %s\n",
		s.game.View().ToString(board.Width()), board.MinesLeft(), s.status())
	return err
}

// runScript executes newline-separated commands, skipping blank lines and
// '#' comments, then prints the final grid.
func (s *scriptSession) runScript(r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("unable to read script: %w", err)
	}
	for i, line := range byPiece(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		log.WithField("line", i+1).Debug("> ", line)
		if err := s.executeCommand(line); err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return s.print()
}
