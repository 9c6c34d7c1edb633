package ai

import (
	"context"
	"testing"

	"github.com/kiryu-dev/gomoku/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHardTakesImmediateWin(t *testing.T) {
	board := domain.BoardFromRows([]string{
		"OOOO.",
		"XX...",
		"..X..",
		"...X.",
		".....",
	})
	for _, depth := range []int{1, 2, 4} {
		for seed := int64(1); seed <= 5; seed++ {
			u := newTestSelector(t, seed, WithDepth(depth))
			m, err := u.SelectMove(context.Background(), board, domain.Hard, domain.PlayerB)
			require.NoError(t, err)
			assert.Equal(t, domain.Move{Row: 0, Col: 4}, m, "depth %d seed %d", depth, seed)
		}
	}
}

func TestHardBlocksOpponentWin(t *testing.T) {
	board := domain.BoardFromRows([]string{
		".XXXX",
		".....",
		"O....",
		".O...",
		".....",
	})
	for seed := int64(1); seed <= 5; seed++ {
		u := newTestSelector(t, seed, WithDepth(2))
		m, err := u.SelectMove(context.Background(), board, domain.Hard, domain.PlayerB)
		require.NoError(t, err)
		assert.Equal(t, domain.Move{Row: 0, Col: 0}, m, "seed %d", seed)
	}
}

func TestHardWithCandidateRadius(t *testing.T) {
	board := domain.NewBoard(domain.DefaultBoardSize)
	for col := 5; col < 9; col++ {
		board.Place(7, col, domain.PlayerB)
	}
	board.Place(7, 4, domain.PlayerA)
	board.Place(8, 4, domain.PlayerA)
	board.Place(9, 4, domain.PlayerA)
	u := newTestSelector(t, 3, WithDepth(2), WithCandidateRadius(1))
	m, err := u.SelectMove(context.Background(), board, domain.Hard, domain.PlayerB)
	require.NoError(t, err)
	assert.Equal(t, domain.Move{Row: 7, Col: 9}, m)
}

func TestSearchCandidates(t *testing.T) {
	board := domain.NewBoard(9)
	s := &searcher{board: board, radius: 1}
	assert.Equal(t, []domain.Move{{Row: 4, Col: 4}}, s.candidates())

	board.Place(0, 0, domain.PlayerA)
	assert.ElementsMatch(t, []domain.Move{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}, s.candidates())

	s.radius = 0
	assert.Len(t, s.candidates(), 80)
}

func TestMinimaxPrefersFasterWin(t *testing.T) {
	board := domain.BoardFromRows([]string{
		"OOOO.",
		".....",
		"XX...",
		".....",
		"X....",
	})
	s := newSearcher(board, domain.PlayerB, 0)
	s.play(domain.Move{Row: 0, Col: 4}, domain.PlayerB)
	now := s.minimax(domain.Move{Row: 0, Col: 4}, 3, -winScore*2, winScore*2, false)
	s.undo(domain.Move{Row: 0, Col: 4})
	assert.Equal(t, winScore+3, now)
}

func TestSearcherScoreTracksEvaluate(t *testing.T) {
	board := domain.BoardFromRows([]string{
		"X......",
		".O.....",
		"..X....",
		".......",
		"....O..",
		".......",
		"......X",
	})
	s := newSearcher(board, domain.PlayerB, 0)
	start := s.score
	require.Equal(t, evaluate(board, s.windows, domain.PlayerB), start)

	moves := []struct {
		move domain.Move
		cell domain.Cell
	}{
		{domain.Move{Row: 3, Col: 3}, domain.PlayerB},
		{domain.Move{Row: 2, Col: 3}, domain.PlayerA},
		{domain.Move{Row: 4, Col: 3}, domain.PlayerB},
		{domain.Move{Row: 3, Col: 4}, domain.PlayerA},
		{domain.Move{Row: 5, Col: 3}, domain.PlayerB},
		{domain.Move{Row: 6, Col: 3}, domain.PlayerA},
	}
	for i, mv := range moves {
		require.Equal(t, domain.Empty, board.At(mv.move.Row, mv.move.Col))
		s.play(mv.move, mv.cell)
		assert.Equal(t, evaluate(board, s.windows, domain.PlayerB), s.score, "after move %d", i)
	}
	for i := len(moves) - 1; i >= 0; i-- {
		s.undo(moves[i].move)
		assert.Equal(t, evaluate(board, s.windows, domain.PlayerB), s.score, "after undo %d", i)
	}
	assert.Equal(t, start, s.score)
}

func TestHardOnDecidedPosition(t *testing.T) {
	board := domain.BoardFromRows([]string{
		"XXXXX",
		"OOOO.",
		".....",
		".....",
		".....",
	})
	u := newTestSelector(t, 1, WithDepth(2))
	for _, ai := range []domain.Cell{domain.PlayerA, domain.PlayerB} {
		_, err := u.SelectMove(context.Background(), board, domain.Hard, ai)
		assert.ErrorIs(t, err, domain.ErrNoMove, "ai %s", ai)
	}
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want int
	}{
		{
			name: "empty",
			rows: []string{".....", ".....", ".....", ".....", "....."},
			want: 0,
		},
		{
			name: "own five",
			rows: []string{"OOOOO", ".....", ".....", ".....", "....."},
			want: winScore,
		},
		{
			name: "opponent five",
			rows: []string{"XXXXX", ".....", ".....", ".....", "....."},
			want: -winScore,
		},
		{
			name: "own four",
			rows: []string{"OOOO.", ".....", ".....", ".....", "....."},
			// row window plus four single-stone columns and one diagonal
			want: 5000,
		},
		{
			name: "opponent three",
			rows: []string{"XXX..", ".....", ".....", ".....", "....."},
			want: -400,
		},
		{
			name: "own two and opponent two",
			rows: []string{"OO...", ".....", ".....", ".....", "...XX"},
			want: 10 - 20,
		},
		{
			name: "blocked window scores nothing",
			rows: []string{"OOX..", ".....", ".....", ".....", "....."},
			want: 0,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			board := domain.BoardFromRows(tc.rows)
			assert.Equal(t, tc.want, evaluate(board, board.Windows(), domain.PlayerB))
		})
	}
}
