package ai

import (
	"github.com/kiryu-dev/gomoku/internal/domain"
)

const winScore = 100000

// Opponent shapes weigh more than the same own shapes.
var (
	ownScores      = [domain.WinLength]int{0, 0, 10, 200, 5000}
	opponentScores = [domain.WinLength]int{0, 0, -20, -400, -10000}
)

// evaluate scores board from ai's point of view over every window.
func evaluate(board *domain.Board, windows []domain.Window, ai domain.Cell) int {
	score := 0
	for _, w := range windows {
		t := board.Tally(w, ai)
		if t.Own == domain.WinLength || t.Opponent == domain.WinLength {
			return windowScore(t)
		}
		score += windowScore(t)
	}
	return score
}

func windowScore(t domain.Tally) int {
	switch {
	case t.Own == domain.WinLength:
		return winScore
	case t.Opponent == domain.WinLength:
		return -winScore
	case t.Opponent == 0 && t.Own >= 2:
		return ownScores[t.Own]
	case t.Own == 0 && t.Opponent >= 2:
		return opponentScores[t.Opponent]
	default:
		return 0
	}
}
