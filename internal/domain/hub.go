package domain

import (
	"context"

	"github.com/pkg/errors"
)

var (
	ErrNoMove          = errors.New("no empty cell left to play")
	ErrUnknownTier     = errors.New("unknown difficulty tier")
	ErrSessionNotFound = errors.New("game session not found")
)

// MoveSelector picks a move for ai on board without applying it.
type MoveSelector interface {
	SelectMove(ctx context.Context, board *Board, tier Difficulty, ai Cell) (Move, error)
}

// Session is one live game guarded by its own lock.
type Session interface {
	Id() string
	// Do runs fn with exclusive access to the session's game.
	Do(fn func(g *Game) error) error
}

type HubUseCase interface {
	Create(mode Mode, difficulty Difficulty) Session
	Get(id string) (Session, error)
	Stats() HubStats
	Close()
}

type HubStats struct {
	Sessions int   `json:"sessions"`
	Created  int64 `json:"created"`
	Moves    int64 `json:"moves"`
}

type GameUseCase interface {
	NewGame(ctx context.Context, mode Mode, difficulty Difficulty) (StatePayload, error)
	State(ctx context.Context, gameId string) (StatePayload, error)
	Move(ctx context.Context, gameId string, row, col int) (StatePayload, error)
	Reset(ctx context.Context, gameId string, mode Mode, difficulty Difficulty) (StatePayload, error)
	Stats() HubStats
}
