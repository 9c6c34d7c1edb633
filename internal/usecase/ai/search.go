package ai

import (
	"math"

	"github.com/kiryu-dev/gomoku/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// searcher keeps score equal to evaluate on board while no window holds
// a five. play and undo only rescore the windows through the changed cell.
type searcher struct {
	board    *domain.Board
	windows  []domain.Window
	through  [][]int
	score    int
	ai       domain.Cell
	opponent domain.Cell
	radius   int
	nodes    int
}

func newSearcher(board *domain.Board, ai domain.Cell, radius int) *searcher {
	s := &searcher{
		board:    board,
		windows:  board.Windows(),
		through:  make([][]int, board.Size()*board.Size()),
		ai:       ai,
		opponent: domain.Opponent(ai),
		radius:   radius,
	}
	for i, w := range s.windows {
		for _, m := range w {
			idx := m.Row*board.Size() + m.Col
			s.through[idx] = append(s.through[idx], i)
		}
	}
	s.score = evaluate(board, s.windows, ai)
	return s
}

func (s *searcher) play(m domain.Move, cell domain.Cell) {
	s.score -= s.scoreAround(m)
	s.board.Place(m.Row, m.Col, cell)
	s.score += s.scoreAround(m)
}

func (s *searcher) undo(m domain.Move) {
	s.score -= s.scoreAround(m)
	s.board.Clear(m.Row, m.Col)
	s.score += s.scoreAround(m)
}

func (s *searcher) scoreAround(m domain.Move) int {
	score := 0
	for _, i := range s.through[m.Row*s.board.Size()+m.Col] {
		score += windowScore(s.board.Tally(s.windows[i], s.ai))
	}
	return score
}

// hard is depth-limited minimax with alpha-beta pruning. The search
// plays and takes back stones on board instead of copying it per node.
func (u *useCase) hard(board *domain.Board, ai domain.Cell) (domain.Move, error) {
	if board.HasWin(ai) || board.HasWin(domain.Opponent(ai)) {
		return domain.Move{}, errors.WithMessage(domain.ErrNoMove, "position already has a winner")
	}
	s := newSearcher(board, ai, u.radius)
	candidates := s.candidates()
	u.shuffle(candidates)
	var (
		best      domain.Move
		bestScore = math.MinInt
		found     bool
		alpha     = math.MinInt
	)
	for _, m := range candidates {
		s.play(m, ai)
		score := s.minimax(m, u.depth-1, alpha, math.MaxInt, false)
		s.undo(m)
		if score > bestScore {
			best, bestScore, found = m, score, true
			alpha = max(alpha, score)
		}
	}
	if !found {
		u.logger.Warn("search found no move, falling back to normal tier")
		return u.normal(board, ai)
	}
	u.logger.Debug("hard tier move",
		zap.Any("move", best), zap.Int("score", bestScore), zap.Int("nodes", s.nodes), zap.Int("depth", u.depth))
	return best, nil
}

// minimax scores the position after last was played. Wins are offset by
// the remaining depth so that quicker wins and slower losses rank higher.
// Only runs through last are checked, the root position holds no five.
func (s *searcher) minimax(last domain.Move, depth, alpha, beta int, maximizing bool) int {
	s.nodes++
	if s.board.WinsThrough(last.Row, last.Col) {
		if s.board.At(last.Row, last.Col) == s.ai {
			return winScore + depth
		}
		return -winScore - depth
	}
	if s.board.IsFull() {
		return 0
	}
	if depth <= 0 {
		return s.score
	}
	cell := s.opponent
	value := math.MaxInt
	if maximizing {
		cell = s.ai
		value = math.MinInt
	}
	for _, m := range s.candidates() {
		s.play(m, cell)
		score := s.minimax(m, depth-1, alpha, beta, !maximizing)
		s.undo(m)
		if maximizing {
			value = max(value, score)
			alpha = max(alpha, value)
		} else {
			value = min(value, score)
			beta = min(beta, value)
		}
		if beta <= alpha {
			break
		}
	}
	return value
}

// candidates lists the empty cells worth searching. With a zero radius
// that is every empty cell.
func (s *searcher) candidates() []domain.Move {
	empty := s.board.EmptyCells()
	if s.radius == 0 {
		return empty
	}
	near := make([]domain.Move, 0, len(empty))
	for _, m := range empty {
		if s.board.HasNeighbour(m.Row, m.Col, s.radius) {
			near = append(near, m)
		}
	}
	if len(near) > 0 {
		return near
	}
	if s.board.Stones() == 0 {
		center := s.board.Size() / 2
		return []domain.Move{{Row: center, Col: center}}
	}
	return empty
}
