package domain

type direction struct {
	dr, dc int
}

var directions = [4]direction{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// Window is WinLength contiguous collinear coordinates.
type Window [WinLength]Move

type Tally struct {
	Own      int
	Opponent int
	Empty    int
}

// LinesThrough returns every in-bounds window that contains (row, col).
func (b *Board) LinesThrough(row, col int) []Window {
	windows := make([]Window, 0, len(directions)*WinLength)
	for _, d := range directions {
		for offset := 0; offset < WinLength; offset++ {
			startRow, startCol := row-d.dr*offset, col-d.dc*offset
			if w, ok := b.window(startRow, startCol, d); ok {
				windows = append(windows, w)
			}
		}
	}
	return windows
}

// Windows enumerates every in-bounds window on the board.
func (b *Board) Windows() []Window {
	windows := make([]Window, 0, len(directions)*b.size*b.size)
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			for _, d := range directions {
				if w, ok := b.window(row, col, d); ok {
					windows = append(windows, w)
				}
			}
		}
	}
	return windows
}

func (b *Board) window(row, col int, d direction) (Window, bool) {
	var w Window
	if !b.InBounds(row, col) || !b.InBounds(row+d.dr*(WinLength-1), col+d.dc*(WinLength-1)) {
		return w, false
	}
	for i := range w {
		w[i] = Move{Row: row + d.dr*i, Col: col + d.dc*i}
	}
	return w, true
}

// Tally counts the window's cells from own's point of view.
func (b *Board) Tally(w Window, own Cell) Tally {
	var t Tally
	for _, m := range w {
		switch b.At(m.Row, m.Col) {
		case Empty:
			t.Empty++
		case own:
			t.Own++
		default:
			t.Opponent++
		}
	}
	return t
}
