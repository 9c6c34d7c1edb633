package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/kiryu-dev/gomoku/internal/domain"
	"github.com/muesli/termenv"
)

const (
	blackColor = "#e74c3c"
	whiteColor = "#3498db"
)

type Renderer struct {
	out *termenv.Output
}

// New renders to w. Colour support is detected from w unless an option
// such as termenv.WithProfile overrides it.
func New(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{out: termenv.NewOutput(w, opts...)}
}

func (r *Renderer) Clear() {
	r.out.ClearScreen()
}

// Board prints rows with 1-indexed coordinates. The last move is shown
// in bold.
func (r *Renderer) Board(rows []string, last *domain.Move) {
	var sb strings.Builder
	sb.WriteString("    ")
	for col := range rows {
		fmt.Fprintf(&sb, "%2d ", col+1)
	}
	sb.WriteByte('\n')
	for row, line := range rows {
		fmt.Fprintf(&sb, "%2d |", row+1)
		for col := 0; col < len(line); col++ {
			sb.WriteString(" ")
			sb.WriteString(r.cell(domain.Cell(line[col]), last != nil && last.Row == row && last.Col == col))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}
	_, _ = io.WriteString(r.out, sb.String())
}

func (r *Renderer) cell(c domain.Cell, highlight bool) string {
	style := r.out.String(c.String())
	switch c {
	case domain.PlayerA:
		style = style.Foreground(r.out.Color(blackColor))
	case domain.PlayerB:
		style = style.Foreground(r.out.Color(whiteColor))
	default:
		return style.Faint().String()
	}
	if highlight {
		style = style.Bold().Underline()
	}
	return style.String()
}

// State prints the board followed by a status line.
func (r *Renderer) State(state domain.StatePayload) {
	r.Board(state.Board, state.LastMove)
	if state.AiMove != nil {
		fmt.Fprintf(r.out, "Engine played %d %d\n", state.AiMove.Row+1, state.AiMove.Col+1)
	}
	if state.Message != "" {
		fmt.Fprintln(r.out, state.Message)
	}
	if !state.GameOver {
		fmt.Fprintf(r.out, "Player %s (%s) to move\n", state.CurrentSymbol, state.CurrentPlayer)
	}
}
