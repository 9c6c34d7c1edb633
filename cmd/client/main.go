package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/gorilla/websocket"
	"github.com/kiryu-dev/gomoku/internal/adapters/webapi"
	"github.com/kiryu-dev/gomoku/internal/domain"
	"github.com/kiryu-dev/gomoku/internal/render"
	"github.com/kiryu-dev/gomoku/pkg/utils"
	"github.com/pkg/errors"
)

type remote interface {
	NewGame(ctx context.Context, mode domain.Mode, difficulty domain.Difficulty) (domain.StatePayload, error)
	Move(ctx context.Context, gameId string, row, col int) (domain.StatePayload, error)
	Reset(ctx context.Context, gameId string, mode domain.Mode, difficulty domain.Difficulty) (domain.StatePayload, error)
}

func main() {
	var (
		host       = flag.String("host", "localhost:8080", "server host and port")
		transport  = flag.String("transport", "ws", "transport to use: ws or http")
		mode       = flag.String("mode", "", "game mode: single or multi (server default when empty)")
		difficulty = flag.String("difficulty", "", "engine difficulty: easy, normal or hard")
	)
	flag.Parse()
	var (
		srv remote
		err error
	)
	switch *transport {
	case "ws":
		u := url.URL{Scheme: "ws", Host: *host, Path: "/ws"}
		conn, _, dialErr := websocket.DefaultDialer.Dial(u.String(), nil)
		if dialErr != nil {
			log.Fatal("dial: " + dialErr.Error())
		}
		defer func() {
			_ = conn.Close()
		}()
		srv = &wsRemote{conn: conn}
	case "http":
		srv = webapi.New("http://" + *host)
	default:
		log.Fatalf("unknown transport '%s'", *transport)
	}
	c := &client{
		srv:        srv,
		scanner:    bufio.NewScanner(os.Stdin),
		renderer:   render.New(os.Stdout),
		mode:       domain.Mode(*mode),
		difficulty: domain.Difficulty(*difficulty),
	}
	if err = c.play(context.Background()); err != nil {
		log.Fatal(err)
	}
}

type client struct {
	srv        remote
	scanner    *bufio.Scanner
	renderer   *render.Renderer
	mode       domain.Mode
	difficulty domain.Difficulty
}

func (c *client) play(ctx context.Context) error {
	state, err := c.srv.NewGame(ctx, c.mode, c.difficulty)
	if err != nil {
		return errors.WithMessage(err, "start game")
	}
	for {
		c.renderer.Clear()
		c.renderer.State(state)
		fmt.Print("Your move (row col), 'new' or 'quit': ")
		if ok := c.scanner.Scan(); !ok {
			return c.scanner.Err()
		}
		cmd, err := render.ParseCommand(c.scanner.Text())
		if err != nil {
			state.Message = err.Error()
			continue
		}
		switch cmd.Kind {
		case render.CommandQuit:
			return nil
		case render.CommandNew:
			state, err = c.srv.Reset(ctx, state.GameId, c.mode, c.difficulty)
		case render.CommandMove:
			state, err = c.srv.Move(ctx, state.GameId, cmd.Row, cmd.Col)
		}
		if err != nil {
			return errors.WithMessage(err, "send command")
		}
	}
}

// wsRemote drives a session over the websocket front end. The server opens
// the session as soon as the connection is made.
type wsRemote struct {
	conn *websocket.Conn
}

func (r *wsRemote) NewGame(ctx context.Context, mode domain.Mode, difficulty domain.Difficulty) (domain.StatePayload, error) {
	state, err := r.read()
	if err != nil {
		return domain.StatePayload{}, errors.WithMessage(err, "read initial state")
	}
	if mode == domain.ModeUnset && difficulty == domain.DifficultyUnset {
		return state, nil
	}
	return r.Reset(ctx, state.GameId, mode, difficulty)
}

func (r *wsRemote) Move(_ context.Context, _ string, row, col int) (domain.StatePayload, error) {
	return r.roundTrip(domain.Message{Type: domain.MoveRequest, Payload: domain.MovePayload{Row: row, Col: col}})
}

func (r *wsRemote) Reset(_ context.Context, _ string, mode domain.Mode, difficulty domain.Difficulty) (domain.StatePayload, error) {
	return r.roundTrip(domain.Message{
		Type:    domain.NewGameRequest,
		Payload: domain.NewGamePayload{Mode: mode, Difficulty: difficulty},
	})
}

func (r *wsRemote) roundTrip(msg domain.Message) (domain.StatePayload, error) {
	if err := r.conn.WriteJSON(msg); err != nil {
		return domain.StatePayload{}, errors.WithMessage(err, "write json msg")
	}
	return r.read()
}

func (r *wsRemote) read() (domain.StatePayload, error) {
	msg := new(domain.Message)
	if err := r.conn.ReadJSON(msg); err != nil {
		return domain.StatePayload{}, errors.WithMessage(err, "read json msg")
	}
	if msg.Type == domain.ErrorResponse {
		v, _ := utils.ConvertJson[domain.ErrorPayload](msg.Payload)
		return domain.StatePayload{}, errors.Errorf("server error: %s", v.Message)
	}
	v, err := utils.ConvertJson[domain.StatePayload](msg.Payload)
	if err != nil {
		return domain.StatePayload{}, errors.WithMessage(err, "unmarshal json to 'StatePayload' type")
	}
	return v, nil
}
