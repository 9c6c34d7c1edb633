package domain

import (
	"github.com/pkg/errors"
)

var (
	ErrOutOfBounds  = errors.New("move out of bounds")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrGameOver     = errors.New("game is already over")
)

type Status string

const (
	InProgress = Status("in_progress")
	Won        = Status("won")
	Draw       = Status("draw")
)

type Mode string

const (
	ModeUnset  = Mode("")
	SinglePlay = Mode("single")
	MultiPlay  = Mode("multi")
)

type Difficulty string

const (
	DifficultyUnset = Difficulty("")
	Easy            = Difficulty("easy")
	Normal          = Difficulty("normal")
	Hard            = Difficulty("hard")
)

func (m Mode) Valid() bool {
	switch m {
	case ModeUnset, SinglePlay, MultiPlay:
		return true
	}
	return false
}

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyUnset, Easy, Normal, Hard:
		return true
	}
	return false
}

// GameState is a read-only snapshot of a Game.
type GameState struct {
	Board         *Board
	CurrentPlayer Cell
	Status        Status
	Winner        Cell
	Mode          Mode
	Difficulty    Difficulty
	Moves         int
	LastMove      *Move
}

// Game is the board and rules engine for a single game. It has no
// internal locking: one Game belongs to one session.
type Game struct {
	board      *Board
	current    Cell
	status     Status
	winner     Cell
	mode       Mode
	difficulty Difficulty
	moves      int
	lastMove   *Move
}

func NewGame(size int, mode Mode, difficulty Difficulty) *Game {
	g := &Game{}
	g.reset(size, mode, difficulty)
	return g
}

// ApplyMove places the current player's stone at (row, col). A non-nil
// error is a rejection and leaves the game untouched.
func (g *Game) ApplyMove(row, col int) error {
	if g.status != InProgress {
		return ErrGameOver
	}
	if !g.board.InBounds(row, col) {
		return errors.WithMessagef(ErrOutOfBounds, "(%d, %d) on a %dx%d board", row, col, g.board.size, g.board.size)
	}
	if g.board.At(row, col) != Empty {
		return errors.WithMessagef(ErrCellOccupied, "(%d, %d)", row, col)
	}
	g.board.Place(row, col, g.current)
	g.moves++
	g.lastMove = &Move{Row: row, Col: col}
	switch {
	case g.board.WinsThrough(row, col):
		g.status = Won
		g.winner = g.current
	case g.board.IsFull():
		g.status = Draw
	default:
		g.current = Opponent(g.current)
	}
	return nil
}

func (g *Game) State() GameState {
	var last *Move
	if g.lastMove != nil {
		m := *g.lastMove
		last = &m
	}
	return GameState{
		Board:         g.board.Clone(),
		CurrentPlayer: g.current,
		Status:        g.status,
		Winner:        g.winner,
		Mode:          g.mode,
		Difficulty:    g.difficulty,
		Moves:         g.moves,
		LastMove:      last,
	}
}

// Board exposes the live board to move selectors. Selectors must leave
// it as they found it.
func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) CurrentPlayer() Cell {
	return g.current
}

func (g *Game) Status() Status {
	return g.status
}

func (g *Game) Moves() int {
	return g.moves
}

func (g *Game) Mode() Mode {
	return g.mode
}

func (g *Game) Difficulty() Difficulty {
	return g.difficulty
}

func (g *Game) Reset(mode Mode, difficulty Difficulty) {
	g.reset(g.board.size, mode, difficulty)
}

func (g *Game) reset(size int, mode Mode, difficulty Difficulty) {
	g.board = NewBoard(size)
	g.current = PlayerA
	g.status = InProgress
	g.winner = Empty
	g.mode = mode
	g.difficulty = difficulty
	g.moves = 0
	g.lastMove = nil
}
