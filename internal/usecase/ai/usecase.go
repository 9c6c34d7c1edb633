package ai

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/kiryu-dev/gomoku/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	DefaultDepth  = 4
	DefaultRadius = 0
)

type useCase struct {
	rnd    *rand.Rand
	depth  int
	radius int
	logger *zap.Logger
}

type Option func(u *useCase)

// WithDepth sets the Hard tier search depth in plies.
func WithDepth(depth int) Option {
	return func(u *useCase) {
		if depth > 0 {
			u.depth = depth
		}
	}
}

// WithCandidateRadius limits Hard tier candidates to empty cells within
// radius of a stone. Zero searches every empty cell.
func WithCandidateRadius(radius int) Option {
	return func(u *useCase) {
		if radius >= 0 {
			u.radius = radius
		}
	}
}

// WithSeed makes selection reproducible. Zero seeds from the clock.
func WithSeed(seed int64) Option {
	return func(u *useCase) {
		if seed != 0 {
			u.rnd = newRand(seed)
		}
	}
}

func New(logger *zap.Logger, opts ...Option) *useCase {
	u := &useCase{
		rnd:    newRand(time.Now().UnixNano()),
		depth:  DefaultDepth,
		radius: DefaultRadius,
		logger: logger,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// SelectMove picks a move for ai on board with the given tier. The board
// is not modified.
func (u *useCase) SelectMove(_ context.Context, board *domain.Board, tier domain.Difficulty, ai domain.Cell) (domain.Move, error) {
	if domain.Opponent(ai) == domain.Empty {
		return domain.Move{}, errors.Errorf("unexpected ai symbol '%s'", ai)
	}
	switch tier {
	case domain.Easy:
		return u.easy(board)
	case domain.Normal:
		return u.normal(board.Clone(), ai)
	case domain.Hard:
		return u.hard(board.Clone(), ai)
	default:
		return domain.Move{}, errors.WithMessagef(domain.ErrUnknownTier, "tier '%s'", tier)
	}
}

func (u *useCase) pick(moves []domain.Move) domain.Move {
	return moves[u.rnd.Intn(len(moves))]
}

func (u *useCase) shuffle(moves []domain.Move) {
	u.rnd.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})
}

// lockedSource lets one *rand.Rand serve concurrent sessions.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source64
}

func newRand(seed int64) *rand.Rand {
	return rand.New(&lockedSource{src: rand.NewSource(seed).(rand.Source64)})
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Int63()
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}
