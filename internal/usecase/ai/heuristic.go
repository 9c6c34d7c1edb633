package ai

import (
	"github.com/kiryu-dev/gomoku/internal/domain"
	"go.uber.org/zap"
)

func (u *useCase) easy(board *domain.Board) (domain.Move, error) {
	empty := board.EmptyCells()
	if len(empty) == 0 {
		return domain.Move{}, domain.ErrNoMove
	}
	adjacent := make([]domain.Move, 0, len(empty))
	for _, m := range empty {
		if board.HasNeighbour(m.Row, m.Col, 1) {
			adjacent = append(adjacent, m)
		}
	}
	if len(adjacent) > 0 {
		return u.pick(adjacent), nil
	}
	return u.pick(empty), nil
}

type rule struct {
	name     string
	opponent bool
	match    func(board *domain.Board, m domain.Move, cell domain.Cell) bool
}

var normalRules = [...]rule{
	{name: "win", match: completesRun},
	{name: "block win", opponent: true, match: completesRun},
	{name: "open three", match: makesOpenThree},
	{name: "block open three", opponent: true, match: makesOpenThree},
}

// normal runs the rule cascade. Each rule collects every qualifying cell
// in scan order before one is chosen at random. board is scratch space.
func (u *useCase) normal(board *domain.Board, ai domain.Cell) (domain.Move, error) {
	empty := board.EmptyCells()
	if len(empty) == 0 {
		return domain.Move{}, domain.ErrNoMove
	}
	for _, r := range normalRules {
		cell := ai
		if r.opponent {
			cell = domain.Opponent(ai)
		}
		var found []domain.Move
		for _, m := range empty {
			if r.match(board, m, cell) {
				found = append(found, m)
			}
		}
		if len(found) > 0 {
			m := u.pick(found)
			u.logger.Debug("normal tier rule fired",
				zap.String("rule", r.name), zap.Int("candidates", len(found)), zap.Any("move", m))
			return m, nil
		}
	}
	return u.easy(board)
}

func completesRun(board *domain.Board, m domain.Move, cell domain.Cell) bool {
	board.Place(m.Row, m.Col, cell)
	defer board.Clear(m.Row, m.Col)
	return board.WinsThrough(m.Row, m.Col)
}

func makesOpenThree(board *domain.Board, m domain.Move, cell domain.Cell) bool {
	board.Place(m.Row, m.Col, cell)
	defer board.Clear(m.Row, m.Col)
	for _, w := range board.LinesThrough(m.Row, m.Col) {
		if t := board.Tally(w, cell); t.Own == 3 && t.Empty == 2 {
			return true
		}
	}
	return false
}
