package domain

import (
	"strings"
)

type Cell byte

const (
	Empty   = Cell('.')
	PlayerA = Cell('X')
	PlayerB = Cell('O')
)

const (
	WinLength        = 5
	DefaultBoardSize = 15
)

func (c Cell) String() string {
	return string(c)
}

type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is an N x N grid stored row-major.
type Board struct {
	size  int
	cells []Cell
}

func NewBoard(size int) *Board {
	cells := make([]Cell, size*size)
	for i := range cells {
		cells[i] = Empty
	}
	return &Board{size: size, cells: cells}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < b.size && col < b.size
}

func (b *Board) At(row, col int) Cell {
	return b.cells[row*b.size+col]
}

// Place puts cell at (row, col) without any rule checks. Callers that
// simulate moves pair it with Clear.
func (b *Board) Place(row, col int, cell Cell) {
	b.cells[row*b.size+col] = cell
}

func (b *Board) Clear(row, col int) {
	b.cells[row*b.size+col] = Empty
}

func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

func (b *Board) Stones() int {
	n := 0
	for _, c := range b.cells {
		if c != Empty {
			n++
		}
	}
	return n
}

func (b *Board) IsFull() bool {
	for _, c := range b.cells {
		if c == Empty {
			return false
		}
	}
	return true
}

func (b *Board) EmptyCells() []Move {
	moves := make([]Move, 0, len(b.cells))
	for i, c := range b.cells {
		if c == Empty {
			moves = append(moves, Move{Row: i / b.size, Col: i % b.size})
		}
	}
	return moves
}

// HasNeighbour reports whether any stone lies within Chebyshev distance
// radius of (row, col).
func (b *Board) HasNeighbour(row, col, radius int) bool {
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if b.InBounds(r, c) && b.At(r, c) != Empty {
				return true
			}
		}
	}
	return false
}

// HasWin reports whether cell owns WinLength consecutive stones anywhere
// on the board. Longer runs count too.
func (b *Board) HasWin(cell Cell) bool {
	if cell == Empty {
		return false
	}
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			for _, d := range directions {
				if b.runFrom(row, col, d, cell) {
					return true
				}
			}
		}
	}
	return false
}

// WinsThrough reports whether the stone at (row, col) is part of a
// winning run. It is enough to check the last move of a position whose
// parent had no winner.
func (b *Board) WinsThrough(row, col int) bool {
	cell := b.At(row, col)
	if cell == Empty {
		return false
	}
	for _, d := range directions {
		n := 1
		for r, c := row+d.dr, col+d.dc; b.InBounds(r, c) && b.At(r, c) == cell; r, c = r+d.dr, c+d.dc {
			n++
		}
		for r, c := row-d.dr, col-d.dc; b.InBounds(r, c) && b.At(r, c) == cell; r, c = r-d.dr, c-d.dc {
			n++
		}
		if n >= WinLength {
			return true
		}
	}
	return false
}

func (b *Board) runFrom(row, col int, d direction, cell Cell) bool {
	endRow, endCol := row+d.dr*(WinLength-1), col+d.dc*(WinLength-1)
	if !b.InBounds(endRow, endCol) {
		return false
	}
	for i := 0; i < WinLength; i++ {
		if b.At(row+d.dr*i, col+d.dc*i) != cell {
			return false
		}
	}
	return true
}

// Rows renders the board as one string per row.
func (b *Board) Rows() []string {
	rows := make([]string, b.size)
	var sb strings.Builder
	for row := 0; row < b.size; row++ {
		sb.Reset()
		for col := 0; col < b.size; col++ {
			sb.WriteByte(byte(b.At(row, col)))
		}
		rows[row] = sb.String()
	}
	return rows
}

// BoardFromRows is the inverse of Rows. Any byte other than 'X' or 'O'
// is read as an empty cell.
func BoardFromRows(rows []string) *Board {
	b := NewBoard(len(rows))
	for row, line := range rows {
		for col := 0; col < len(line) && col < b.size; col++ {
			switch cell := Cell(line[col]); cell {
			case PlayerA, PlayerB:
				b.Place(row, col, cell)
			}
		}
	}
	return b
}
