package domain

import (
	"github.com/pkg/errors"
)

var (
	ErrConnectionClosed = errors.New("connection closed")
	ErrUnexpectedType   = errors.New("unexpected message type")
)

const GameIdParam = "game"

type MessageType string

const (
	MoveRequest    = MessageType("move")
	NewGameRequest = MessageType("new_game")
	StateRequest   = MessageType("state")
	StateResponse  = MessageType("state")
	ErrorResponse  = MessageType("error")
)

type Message struct {
	Type    MessageType `json:"type"`
	Payload any         `json:"payload,omitempty"`
}

type MovePayload struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type NewGamePayload struct {
	Mode       Mode       `json:"mode"`
	Difficulty Difficulty `json:"difficulty"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// StatePayload is the wire form of a session snapshot shared by every
// networked front end.
type StatePayload struct {
	GameId        string     `json:"gameId"`
	Board         []string   `json:"board"`
	BoardSize     int        `json:"boardSize"`
	CurrentPlayer string     `json:"currentPlayer"`
	CurrentSymbol string     `json:"currentSymbol"`
	Status        Status     `json:"status"`
	Winner        string     `json:"winner,omitempty"`
	GameOver      bool       `json:"gameOver"`
	Mode          Mode       `json:"mode"`
	Difficulty    Difficulty `json:"difficulty"`
	Moves         int        `json:"moves"`
	LastMove      *Move      `json:"lastMove,omitempty"`
	AiMove        *Move      `json:"aiMove,omitempty"`
	Message       string     `json:"message,omitempty"`
	MoveSuccess   bool       `json:"moveSuccess"`
}

type StatePayloadOption func(p *StatePayload)

func WithMessage(msg string) StatePayloadOption {
	return func(p *StatePayload) {
		p.Message = msg
	}
}

func WithMoveResult(accepted bool, aiMove *Move) StatePayloadOption {
	return func(p *StatePayload) {
		p.MoveSuccess = accepted
		p.AiMove = aiMove
	}
}

func NewStatePayload(gameId string, state GameState, opts ...StatePayloadOption) StatePayload {
	p := StatePayload{
		GameId:        gameId,
		Board:         state.Board.Rows(),
		BoardSize:     state.Board.Size(),
		CurrentPlayer: Label(state.CurrentPlayer),
		CurrentSymbol: state.CurrentPlayer.String(),
		Status:        state.Status,
		GameOver:      state.Status != InProgress,
		Mode:          state.Mode,
		Difficulty:    state.Difficulty,
		Moves:         state.Moves,
		LastMove:      state.LastMove,
	}
	if state.Status == Won {
		p.Winner = state.Winner.String()
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}
