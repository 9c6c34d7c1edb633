package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kiryu-dev/gomoku/internal/domain"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardPlainText(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, termenv.WithProfile(termenv.Ascii))
	r.Board([]string{"X....", ".O...", ".....", ".....", "....."}, &domain.Move{Row: 1, Col: 1})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "     1  2  3  4  5 ", lines[0])
	assert.Equal(t, " 1 | X  .  .  .  . |", lines[1])
	assert.Equal(t, " 2 | .  O  .  .  . |", lines[2])
}

func TestStateStatusLines(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, termenv.WithProfile(termenv.Ascii))
	g := domain.NewGame(5, domain.SinglePlay, domain.Easy)
	require.NoError(t, g.ApplyMove(0, 0))
	r.State(domain.NewStatePayload("id", g.State(),
		domain.WithMessage("Move successful."), domain.WithMoveResult(true, &domain.Move{Row: 2, Col: 3})))
	out := buf.String()
	assert.Contains(t, out, "Engine played 3 4\n")
	assert.Contains(t, out, "Move successful.\n")
	assert.Contains(t, out, "Player O (White) to move\n")
}
