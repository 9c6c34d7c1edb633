package ws

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/kiryu-dev/gomoku/internal/domain"
	"github.com/kiryu-dev/gomoku/pkg/utils"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type handler struct {
	game     domain.GameUseCase
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

func New(game domain.GameUseCase, logger *zap.Logger) *handler {
	return &handler{
		game: game,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logger: logger,
	}
}

// ServeHTTP plays one session over a websocket. The session named by the
// query parameter is resumed, otherwise a new one is created.
func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error(err.Error())
		return
	}
	client := newClient(conn)
	defer client.Close()
	ctx := r.Context()
	gameId := r.URL.Query().Get(domain.GameIdParam)
	var state domain.StatePayload
	if gameId == "" {
		state, err = h.game.NewGame(ctx, domain.ModeUnset, domain.DifficultyUnset)
	} else {
		state, err = h.game.State(ctx, gameId)
	}
	if err != nil {
		h.logger.Warn("failed to open game session", zap.String("game uuid", gameId), zap.Error(err))
		_ = client.WriteMessage(errorMessage("game not found"))
		return
	}
	gameId = state.GameId
	h.logger.Info("new connection", zap.String("game uuid", gameId))
	if err := client.WriteMessage(domain.Message{Type: domain.StateResponse, Payload: state}); err != nil {
		h.logger.Error(err.Error())
		return
	}
	for {
		msg, err := client.ReadMessage()
		switch {
		case errors.Is(err, domain.ErrConnectionClosed):
			h.logger.Info("connection closed", zap.String("game uuid", gameId))
			return
		case err != nil:
			h.logger.Warn(err.Error())
			return
		}
		reply, err := h.handleMessage(ctx, gameId, msg)
		if err != nil {
			h.logger.Warn("failed to handle message", zap.String("game uuid", gameId), zap.Error(err))
			reply = errorMessage(err.Error())
		}
		if err := client.WriteMessage(reply); err != nil {
			h.logger.Error(err.Error())
			return
		}
	}
}

func (h *handler) handleMessage(ctx context.Context, gameId string, msg domain.Message) (domain.Message, error) {
	var (
		state domain.StatePayload
		err   error
	)
	switch msg.Type {
	case domain.MoveRequest:
		move, convErr := utils.ConvertJson[domain.MovePayload](msg.Payload)
		if convErr != nil {
			return domain.Message{}, errors.WithMessage(convErr, "convert move payload")
		}
		state, err = h.game.Move(ctx, gameId, move.Row, move.Col)
	case domain.NewGameRequest:
		req, convErr := utils.ConvertJson[domain.NewGamePayload](msg.Payload)
		if convErr != nil {
			return domain.Message{}, errors.WithMessage(convErr, "convert new game payload")
		}
		if !req.Mode.Valid() || !req.Difficulty.Valid() {
			return domain.Message{}, errors.New("unknown mode or difficulty")
		}
		state, err = h.game.Reset(ctx, gameId, req.Mode, req.Difficulty)
	case domain.StateRequest:
		state, err = h.game.State(ctx, gameId)
	default:
		return domain.Message{}, errors.WithMessagef(domain.ErrUnexpectedType, "'%s'", msg.Type)
	}
	if err != nil {
		return domain.Message{}, err
	}
	return domain.Message{Type: domain.StateResponse, Payload: state}, nil
}

func errorMessage(text string) domain.Message {
	return domain.Message{
		Type:    domain.ErrorResponse,
		Payload: domain.ErrorPayload{Message: text},
	}
}
