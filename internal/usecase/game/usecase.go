package game

import (
	"context"
	"fmt"

	"github.com/kiryu-dev/gomoku/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	MoveSuccessMessage = "Move successful."
	DrawMessage        = "It's a draw!"
	GameOverMessage    = "Game is already over."
	InvalidMoveMessage = "Invalid move. Cell might be taken or out of bounds."
	NewGameMessage     = "New game started."
)

type useCase struct {
	hub        domain.HubUseCase
	selector   domain.MoveSelector
	aiSymbol   domain.Cell
	mode       domain.Mode
	difficulty domain.Difficulty
	logger     *zap.Logger
}

type Option func(u *useCase)

// WithDefaults sets the mode and difficulty used when a request leaves
// them unset.
func WithDefaults(mode domain.Mode, difficulty domain.Difficulty) Option {
	return func(u *useCase) {
		u.mode = mode
		u.difficulty = difficulty
	}
}

func New(hub domain.HubUseCase, selector domain.MoveSelector, aiSymbol domain.Cell, logger *zap.Logger,
	opts ...Option) useCase {
	u := useCase{
		hub:        hub,
		selector:   selector,
		aiSymbol:   aiSymbol,
		mode:       domain.SinglePlay,
		difficulty: domain.Normal,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(&u)
	}
	return u
}

func (u useCase) NewGame(ctx context.Context, mode domain.Mode, difficulty domain.Difficulty) (domain.StatePayload, error) {
	mode, difficulty = u.withDefaults(mode, difficulty)
	s := u.hub.Create(mode, difficulty)
	return u.start(ctx, s, nil)
}

func (u useCase) Reset(ctx context.Context, gameId string, mode domain.Mode, difficulty domain.Difficulty) (domain.StatePayload, error) {
	s, err := u.hub.Get(gameId)
	if err != nil {
		return domain.StatePayload{}, errors.WithMessage(err, "get session")
	}
	mode, difficulty = u.withDefaults(mode, difficulty)
	u.logger.Info("reset game session", zap.String("game uuid", gameId))
	return u.start(ctx, s, func(g *domain.Game) {
		g.Reset(mode, difficulty)
	})
}

// start lets the engine open the game when it plays the first symbol.
func (u useCase) start(ctx context.Context, s domain.Session, prepare func(g *domain.Game)) (domain.StatePayload, error) {
	var payload domain.StatePayload
	err := s.Do(func(g *domain.Game) error {
		if prepare != nil {
			prepare(g)
		}
		aiMove, err := u.reply(ctx, g)
		if err != nil {
			return err
		}
		payload = domain.NewStatePayload(s.Id(), g.State(),
			domain.WithMessage(NewGameMessage), domain.WithMoveResult(false, aiMove))
		return nil
	})
	if err != nil {
		return domain.StatePayload{}, errors.WithMessage(err, "start game")
	}
	return payload, nil
}

func (u useCase) State(_ context.Context, gameId string) (domain.StatePayload, error) {
	s, err := u.hub.Get(gameId)
	if err != nil {
		return domain.StatePayload{}, errors.WithMessage(err, "get session")
	}
	var payload domain.StatePayload
	_ = s.Do(func(g *domain.Game) error {
		state := g.State()
		var opts []domain.StatePayloadOption
		if state.Status != domain.InProgress {
			opts = append(opts, domain.WithMessage(resultMessage(state)))
		}
		payload = domain.NewStatePayload(s.Id(), state, opts...)
		return nil
	})
	return payload, nil
}

// Move applies the human move and, in single player mode, the engine's
// reply. A rejected move is reported in the payload, not as an error.
func (u useCase) Move(ctx context.Context, gameId string, row, col int) (domain.StatePayload, error) {
	s, err := u.hub.Get(gameId)
	if err != nil {
		return domain.StatePayload{}, errors.WithMessage(err, "get session")
	}
	var payload domain.StatePayload
	err = s.Do(func(g *domain.Game) error {
		err := g.ApplyMove(row, col)
		switch {
		case errors.Is(err, domain.ErrGameOver):
			payload = domain.NewStatePayload(s.Id(), g.State(), domain.WithMessage(GameOverMessage))
			return nil
		case errors.Is(err, domain.ErrOutOfBounds), errors.Is(err, domain.ErrCellOccupied):
			u.logger.Info("rejected move", zap.String("game uuid", s.Id()), zap.Error(err))
			payload = domain.NewStatePayload(s.Id(), g.State(), domain.WithMessage(InvalidMoveMessage))
			return nil
		case err != nil:
			return errors.WithMessage(err, "apply player's move")
		}
		aiMove, err := u.reply(ctx, g)
		if err != nil {
			return err
		}
		state := g.State()
		payload = domain.NewStatePayload(s.Id(), state,
			domain.WithMessage(resultMessage(state)), domain.WithMoveResult(true, aiMove))
		return nil
	})
	if err != nil {
		return domain.StatePayload{}, errors.WithMessage(err, "play move")
	}
	return payload, nil
}

func (u useCase) Stats() domain.HubStats {
	return u.hub.Stats()
}

// reply plays the engine's move when it is the engine's turn in a single
// player game. It returns nil when nothing was played.
func (u useCase) reply(ctx context.Context, g *domain.Game) (*domain.Move, error) {
	if g.Mode() != domain.SinglePlay || g.Status() != domain.InProgress || g.CurrentPlayer() != u.aiSymbol {
		return nil, nil
	}
	tier := g.Difficulty()
	if tier == domain.DifficultyUnset {
		tier = domain.Normal
	}
	move, err := u.selector.SelectMove(ctx, g.Board(), tier, u.aiSymbol)
	switch {
	case errors.Is(err, domain.ErrNoMove):
		return nil, nil
	case err != nil:
		return nil, errors.WithMessage(err, "select ai move")
	}
	if err := g.ApplyMove(move.Row, move.Col); err != nil {
		return nil, errors.WithMessagef(errRejectedAiMove, "%v: %s", move, err)
	}
	u.logger.Debug("ai move", zap.String("tier", string(tier)), zap.Int("row", move.Row), zap.Int("col", move.Col))
	return &move, nil
}

func (u useCase) withDefaults(mode domain.Mode, difficulty domain.Difficulty) (domain.Mode, domain.Difficulty) {
	if mode == domain.ModeUnset {
		mode = u.mode
	}
	if difficulty == domain.DifficultyUnset {
		difficulty = u.difficulty
	}
	return mode, difficulty
}

func resultMessage(state domain.GameState) string {
	switch state.Status {
	case domain.Won:
		return fmt.Sprintf("Player %s wins!", state.Winner)
	case domain.Draw:
		return DrawMessage
	default:
		return MoveSuccessMessage
	}
}
