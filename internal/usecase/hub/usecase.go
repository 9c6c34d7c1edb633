package hub

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kiryu-dev/gomoku/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

const (
	defaultIdleTTL     = 30 * time.Minute
	defaultSweepPeriod = time.Minute
)

type session struct {
	id       string
	game     *domain.Game
	mu       sync.Mutex
	lastSeen *atomic.Time
	moves    *atomic.Int64
}

func (s *session) Id() string {
	return s.id
}

func (s *session) Do(fn func(g *domain.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.game.Moves()
	err := fn(s.game)
	s.lastSeen.Store(time.Now())
	if played := s.game.Moves() - before; played > 0 {
		s.moves.Add(int64(played))
	}
	return err
}

// expired must not take the session lock: it runs under the hub lock.
func (s *session) expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.lastSeen.Load()) > ttl
}

type useCase struct {
	boardSize int
	idleTTL   time.Duration
	sessions  map[string]*session
	created   *atomic.Int64
	moves     *atomic.Int64
	ticker    *time.Ticker
	done      chan struct{}
	closeOnce sync.Once
	mu        *sync.RWMutex
	logger    *zap.Logger
}

type Option func(u *useCase)

func WithIdleTTL(ttl time.Duration) Option {
	return func(u *useCase) {
		if ttl > 0 {
			u.idleTTL = ttl
		}
	}
}

func New(boardSize int, sweepPeriod time.Duration, logger *zap.Logger, opts ...Option) *useCase {
	if sweepPeriod <= 0 {
		sweepPeriod = defaultSweepPeriod
	}
	u := &useCase{
		boardSize: boardSize,
		idleTTL:   defaultIdleTTL,
		sessions:  make(map[string]*session),
		created:   atomic.NewInt64(0),
		moves:     atomic.NewInt64(0),
		ticker:    time.NewTicker(sweepPeriod),
		done:      make(chan struct{}),
		mu:        &sync.RWMutex{},
		logger:    logger,
	}
	for _, opt := range opts {
		opt(u)
	}
	go u.sweep()
	return u
}

func (u *useCase) Create(mode domain.Mode, difficulty domain.Difficulty) domain.Session {
	s := &session{
		id:       uuid.NewString(),
		game:     domain.NewGame(u.boardSize, mode, difficulty),
		lastSeen: atomic.NewTime(time.Now()),
		moves:    u.moves,
	}
	u.mu.Lock()
	u.sessions[s.id] = s
	u.mu.Unlock()
	u.created.Inc()
	u.logger.Info("created game session",
		zap.String("game uuid", s.id), zap.String("mode", string(mode)), zap.String("difficulty", string(difficulty)))
	return s
}

func (u *useCase) Get(id string) (domain.Session, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	s, ok := u.sessions[id]
	if !ok {
		return nil, errors.WithMessagef(domain.ErrSessionNotFound, "game uuid '%s'", id)
	}
	return s, nil
}

func (u *useCase) Stats() domain.HubStats {
	u.mu.RLock()
	n := len(u.sessions)
	u.mu.RUnlock()
	return domain.HubStats{
		Sessions: n,
		Created:  u.created.Load(),
		Moves:    u.moves.Load(),
	}
}

func (u *useCase) Close() {
	u.closeOnce.Do(func() {
		close(u.done)
	})
}

func (u *useCase) sweep() {
	defer u.ticker.Stop()
	for {
		select {
		case now := <-u.ticker.C:
			if removed := u.removeExpiredGames(now); removed > 0 {
				u.logger.Info("removed expired game sessions", zap.Int("removed", removed))
			}
		case <-u.done:
			return
		}
	}
}

// removeExpiredGames drops sessions nobody touched within the idle TTL.
// Finished games are kept until then so players can still read the result.
func (u *useCase) removeExpiredGames(now time.Time) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	removed := 0
	for id, s := range u.sessions {
		if s.expired(now, u.idleTTL) {
			delete(u.sessions, id)
			removed++
		}
	}
	return removed
}
