package ai

import (
	"context"
	"testing"

	"github.com/kiryu-dev/gomoku/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestSelector(t *testing.T, seed int64, opts ...Option) *useCase {
	t.Helper()
	return New(zaptest.NewLogger(t), append([]Option{WithSeed(seed)}, opts...)...)
}

func emptyRows(n int) []string {
	rows := make([]string, n)
	for i := range rows {
		b := make([]byte, n)
		for j := range b {
			b[j] = '.'
		}
		rows[i] = string(b)
	}
	return rows
}

func place(rows []string, row, col int, cell domain.Cell) {
	b := []byte(rows[row])
	b[col] = byte(cell)
	rows[row] = string(b)
}

func TestSelectMoveUnknownTier(t *testing.T) {
	u := newTestSelector(t, 1)
	_, err := u.SelectMove(context.Background(), domain.NewBoard(5), domain.Difficulty("insane"), domain.PlayerB)
	assert.ErrorIs(t, err, domain.ErrUnknownTier)
	_, err = u.SelectMove(context.Background(), domain.NewBoard(5), domain.Easy, domain.Empty)
	assert.Error(t, err)
}

func TestSelectMoveFullBoard(t *testing.T) {
	u := newTestSelector(t, 1)
	board := domain.BoardFromRows([]string{"XOX", "OXO", "OXO"})
	for _, tier := range []domain.Difficulty{domain.Easy, domain.Normal, domain.Hard} {
		_, err := u.SelectMove(context.Background(), board, tier, domain.PlayerB)
		assert.ErrorIs(t, err, domain.ErrNoMove, "tier %s", tier)
	}
}

func TestSelectMoveLeavesBoardUntouched(t *testing.T) {
	u := newTestSelector(t, 3, WithDepth(2))
	rows := []string{
		"X....",
		".O...",
		"..X..",
		".....",
		".....",
	}
	board := domain.BoardFromRows(rows)
	for _, tier := range []domain.Difficulty{domain.Easy, domain.Normal, domain.Hard} {
		_, err := u.SelectMove(context.Background(), board, tier, domain.PlayerB)
		require.NoError(t, err)
		assert.Equal(t, rows, board.Rows(), "tier %s", tier)
	}
}

func TestEasyPicksEmptyAdjacentCells(t *testing.T) {
	u := newTestSelector(t, 42)
	board := domain.NewBoard(domain.DefaultBoardSize)
	board.Place(7, 7, domain.PlayerA)
	board.Place(7, 8, domain.PlayerB)
	for i := 0; i < 200; i++ {
		m, err := u.SelectMove(context.Background(), board, domain.Easy, domain.PlayerB)
		require.NoError(t, err)
		require.Equal(t, domain.Empty, board.At(m.Row, m.Col))
		require.True(t, board.HasNeighbour(m.Row, m.Col, 1), "move %v is not adjacent", m)
	}
}

func TestEasyIsNotConstantOnEmptyBoard(t *testing.T) {
	u := newTestSelector(t, 7)
	board := domain.NewBoard(domain.DefaultBoardSize)
	seen := make(map[domain.Move]struct{})
	for i := 0; i < 50; i++ {
		m, err := u.SelectMove(context.Background(), board, domain.Easy, domain.PlayerB)
		require.NoError(t, err)
		seen[m] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}

func TestNormalTakesUniqueWin(t *testing.T) {
	rows := emptyRows(domain.DefaultBoardSize)
	place(rows, 7, 2, domain.PlayerA)
	for col := 3; col <= 6; col++ {
		place(rows, 7, col, domain.PlayerB)
	}
	// a lone opponent four elsewhere must not outrank the win
	for row := 0; row < 4; row++ {
		place(rows, row, 12, domain.PlayerA)
	}
	board := domain.BoardFromRows(rows)
	for seed := int64(1); seed <= 20; seed++ {
		u := newTestSelector(t, seed)
		m, err := u.SelectMove(context.Background(), board, domain.Normal, domain.PlayerB)
		require.NoError(t, err)
		assert.Equal(t, domain.Move{Row: 7, Col: 7}, m, "seed %d", seed)
	}
}

func TestNormalBlocksUniqueThreat(t *testing.T) {
	rows := emptyRows(domain.DefaultBoardSize)
	place(rows, 3, 2, domain.PlayerB)
	for col := 3; col <= 6; col++ {
		place(rows, 3, col, domain.PlayerA)
	}
	place(rows, 10, 10, domain.PlayerB)
	place(rows, 10, 11, domain.PlayerB)
	board := domain.BoardFromRows(rows)
	for seed := int64(1); seed <= 20; seed++ {
		u := newTestSelector(t, seed)
		m, err := u.SelectMove(context.Background(), board, domain.Normal, domain.PlayerB)
		require.NoError(t, err)
		assert.Equal(t, domain.Move{Row: 3, Col: 7}, m, "seed %d", seed)
	}
}

func TestNormalCreatesOpenThree(t *testing.T) {
	rows := emptyRows(9)
	place(rows, 4, 3, domain.PlayerB)
	place(rows, 4, 4, domain.PlayerB)
	board := domain.BoardFromRows(rows)
	u := newTestSelector(t, 5)
	for i := 0; i < 30; i++ {
		m, err := u.SelectMove(context.Background(), board, domain.Normal, domain.PlayerB)
		require.NoError(t, err)
		require.Equal(t, 4, m.Row, "move %v", m)
		require.True(t, makesOpenThree(board, m, domain.PlayerB), "move %v", m)
	}
}

func TestNormalBlocksOpenThree(t *testing.T) {
	rows := emptyRows(9)
	place(rows, 2, 2, domain.PlayerA)
	place(rows, 3, 3, domain.PlayerA)
	place(rows, 8, 0, domain.PlayerB)
	board := domain.BoardFromRows(rows)
	u := newTestSelector(t, 9)
	for i := 0; i < 30; i++ {
		m, err := u.SelectMove(context.Background(), board, domain.Normal, domain.PlayerB)
		require.NoError(t, err)
		require.Equal(t, m.Row, m.Col, "move %v is off the threatened diagonal", m)
	}
}

func TestNormalFallsBackToEasy(t *testing.T) {
	board := domain.NewBoard(domain.DefaultBoardSize)
	board.Place(0, 0, domain.PlayerA)
	u := newTestSelector(t, 11)
	m, err := u.SelectMove(context.Background(), board, domain.Normal, domain.PlayerB)
	require.NoError(t, err)
	assert.True(t, board.HasNeighbour(m.Row, m.Col, 1))
}
