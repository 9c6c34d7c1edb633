package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kiryu-dev/gomoku/internal/config"
	"github.com/kiryu-dev/gomoku/internal/domain"
	"github.com/kiryu-dev/gomoku/internal/render"
	"github.com/kiryu-dev/gomoku/internal/usecase/ai"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func main() {
	cfg, verbose, err := loadConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	logger := zap.NewNop()
	if verbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			log.Fatal(err)
		}
	}
	defer func() {
		_ = logger.Sync()
	}()
	selector := ai.New(logger,
		ai.WithDepth(cfg.Ai.SearchDepth),
		ai.WithCandidateRadius(cfg.Ai.CandidateRadius),
		ai.WithSeed(cfg.Ai.Seed))
	l := &localGame{
		game:     domain.NewGame(cfg.Game.BoardSize, cfg.Game.Mode, cfg.Game.Difficulty),
		selector: selector,
		aiSymbol: cfg.AiCell(),
		scanner:  bufio.NewScanner(os.Stdin),
		renderer: render.New(os.Stdout),
	}
	fmt.Println("Welcome to Gomoku!")
	if err := l.play(context.Background()); err != nil {
		log.Fatal(err)
	}
}

// loadConfig reads the optional config file and lets flags set on the
// command line override it.
func loadConfig(fs *flag.FlagSet, args []string) (config.Config, bool, error) {
	flags := config.Default()
	var (
		cfgPath = fs.String("config", "", "optional path to config")
		verbose = fs.Bool("v", false, "log engine decisions to stderr")
	)
	fs.IntVar(&flags.Game.BoardSize, "size", flags.Game.BoardSize, "board size")
	fs.StringVar((*string)(&flags.Game.Mode), "mode", string(flags.Game.Mode), "game mode: single or multi")
	fs.StringVar((*string)(&flags.Game.Difficulty), "difficulty", string(flags.Game.Difficulty), "easy, normal or hard")
	fs.StringVar(&flags.Game.AiSymbol, "ai", flags.Game.AiSymbol, "symbol the engine plays: X or O")
	fs.IntVar(&flags.Ai.SearchDepth, "depth", flags.Ai.SearchDepth, "hard tier search depth")
	fs.IntVar(&flags.Ai.CandidateRadius, "radius", flags.Ai.CandidateRadius, "hard tier candidate radius, 0 searches every cell")
	if err := fs.Parse(args); err != nil {
		return config.Config{}, false, err
	}
	if *cfgPath == "" {
		return flags, *verbose, flags.Validate()
	}
	cfg, err := config.New(*cfgPath)
	if err != nil {
		return config.Config{}, false, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			cfg.Game.BoardSize = flags.Game.BoardSize
		case "mode":
			cfg.Game.Mode = flags.Game.Mode
		case "difficulty":
			cfg.Game.Difficulty = flags.Game.Difficulty
		case "ai":
			cfg.Game.AiSymbol = flags.Game.AiSymbol
		case "depth":
			cfg.Ai.SearchDepth = flags.Ai.SearchDepth
		case "radius":
			cfg.Ai.CandidateRadius = flags.Ai.CandidateRadius
		}
	})
	return cfg, *verbose, cfg.Validate()
}

type localGame struct {
	game     *domain.Game
	selector domain.MoveSelector
	aiSymbol domain.Cell
	scanner  *bufio.Scanner
	renderer *render.Renderer
}

func (l *localGame) play(ctx context.Context) error {
	message := ""
	var aiMove *domain.Move
	for {
		if l.engineToMove() {
			m, err := l.selector.SelectMove(ctx, l.game.Board(), l.tier(), l.aiSymbol)
			if err != nil {
				return errors.WithMessage(err, "select engine move")
			}
			if err := l.game.ApplyMove(m.Row, m.Col); err != nil {
				return errors.WithMessage(err, "apply engine move")
			}
			aiMove = &m
		}
		state := l.game.State()
		if message == "" {
			message = statusMessage(state)
		}
		fmt.Println()
		l.renderer.State(domain.NewStatePayload("", state, domain.WithMessage(message), domain.WithMoveResult(true, aiMove)))
		message, aiMove = "", nil
		fmt.Printf("Player %s, enter your move (row col), 'new' or 'quit': ", state.CurrentPlayer)
		if ok := l.scanner.Scan(); !ok {
			return l.scanner.Err()
		}
		cmd, err := render.ParseCommand(l.scanner.Text())
		if err != nil {
			message = err.Error()
			continue
		}
		switch cmd.Kind {
		case render.CommandQuit:
			return nil
		case render.CommandNew:
			l.game.Reset(l.game.Mode(), l.game.Difficulty())
		case render.CommandMove:
			err := l.game.ApplyMove(cmd.Row, cmd.Col)
			switch {
			case errors.Is(err, domain.ErrOutOfBounds):
				message = fmt.Sprintf("Invalid move. Row and column must be between 1 and %d.", l.game.Board().Size())
			case errors.Is(err, domain.ErrCellOccupied):
				message = "Invalid move. Cell is already taken. Try again."
			case errors.Is(err, domain.ErrGameOver):
				message = "Game is already over. Type 'new' to play again."
			case err != nil:
				return err
			}
		}
	}
}

func (l *localGame) engineToMove() bool {
	return l.game.Mode() == domain.SinglePlay &&
		l.game.Status() == domain.InProgress &&
		l.game.CurrentPlayer() == l.aiSymbol
}

func (l *localGame) tier() domain.Difficulty {
	if d := l.game.Difficulty(); d != domain.DifficultyUnset {
		return d
	}
	return domain.Normal
}

func statusMessage(state domain.GameState) string {
	switch state.Status {
	case domain.Won:
		return fmt.Sprintf("Congratulations! Player %s wins!", state.Winner)
	case domain.Draw:
		return "It's a draw!"
	default:
		return ""
	}
}
