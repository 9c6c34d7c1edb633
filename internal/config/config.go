package config

import (
	"os"
	"time"

	"github.com/kiryu-dev/gomoku/internal/domain"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	ErrBoardTooSmall     = errors.New("board size must be at least 5")
	ErrInvalidDepth      = errors.New("search depth must be positive")
	ErrInvalidRadius     = errors.New("candidate radius must not be negative")
	ErrInvalidSymbol     = errors.New("ai symbol must be 'X' or 'O'")
	ErrInvalidMode       = errors.New("unknown game mode")
	ErrInvalidDifficulty = errors.New("unknown difficulty")
)

const (
	minBoardSize = domain.WinLength
	addrEnv      = "SERVER_ADDR"
)

type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type GameConfig struct {
	BoardSize  int               `yaml:"board_size"`
	Mode       domain.Mode       `yaml:"mode"`
	Difficulty domain.Difficulty `yaml:"difficulty"`
	AiSymbol   string            `yaml:"ai_symbol"`
}

type AiConfig struct {
	SearchDepth     int   `yaml:"search_depth"`
	CandidateRadius int   `yaml:"candidate_radius"`
	Seed            int64 `yaml:"seed"`
}

type SessionsConfig struct {
	IdleTTL     time.Duration `yaml:"idle_ttl"`
	SweepPeriod time.Duration `yaml:"sweep_period"`
}

type LogConfig struct {
	Development bool `yaml:"development"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Game     GameConfig     `yaml:"game"`
	Ai       AiConfig       `yaml:"ai"`
	Sessions SessionsConfig `yaml:"sessions"`
	Log      LogConfig      `yaml:"log"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 2 * time.Minute,
		},
		Game: GameConfig{
			BoardSize:  domain.DefaultBoardSize,
			Mode:       domain.SinglePlay,
			Difficulty: domain.Normal,
			AiSymbol:   "O",
		},
		Ai: AiConfig{
			SearchDepth:     4,
			CandidateRadius: 2,
		},
		Sessions: SessionsConfig{
			IdleTTL:     30 * time.Minute,
			SweepPeriod: time.Minute,
		},
	}
}

func New(cfgPath string) (Config, error) {
	file, err := os.Open(cfgPath)
	if err != nil {
		return Config{}, err
	}
	defer func() {
		_ = file.Close()
	}()
	cfg := Default()
	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return Config{}, errors.WithMessage(err, "decode yaml config")
	}
	if addr := os.Getenv(addrEnv); addr != "" {
		cfg.Server.Addr = addr
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Game.BoardSize < minBoardSize {
		return errors.WithMessagef(ErrBoardTooSmall, "got %d", c.Game.BoardSize)
	}
	if c.Ai.SearchDepth < 1 {
		return errors.WithMessagef(ErrInvalidDepth, "got %d", c.Ai.SearchDepth)
	}
	if c.Ai.CandidateRadius < 0 {
		return errors.WithMessagef(ErrInvalidRadius, "got %d", c.Ai.CandidateRadius)
	}
	if _, ok := domain.ParseSymbol(c.Game.AiSymbol); !ok {
		return errors.WithMessagef(ErrInvalidSymbol, "got '%s'", c.Game.AiSymbol)
	}
	if !c.Game.Mode.Valid() {
		return errors.WithMessagef(ErrInvalidMode, "got '%s'", c.Game.Mode)
	}
	if !c.Game.Difficulty.Valid() {
		return errors.WithMessagef(ErrInvalidDifficulty, "got '%s'", c.Game.Difficulty)
	}
	return nil
}

// AiCell is the symbol the engine plays in single player games.
func (c Config) AiCell() domain.Cell {
	cell, _ := domain.ParseSymbol(c.Game.AiSymbol)
	return cell
}
