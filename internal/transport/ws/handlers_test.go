package ws

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/kiryu-dev/gomoku/internal/domain"
	"github.com/kiryu-dev/gomoku/internal/usecase/ai"
	"github.com/kiryu-dev/gomoku/internal/usecase/game"
	"github.com/kiryu-dev/gomoku/internal/usecase/hub"
	"github.com/kiryu-dev/gomoku/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := zaptest.NewLogger(t)
	h := hub.New(domain.DefaultBoardSize, time.Hour, logger)
	t.Cleanup(h.Close)
	uc := game.New(h, ai.New(logger, ai.WithSeed(1)), domain.PlayerB, logger,
		game.WithDefaults(domain.MultiPlay, domain.Normal))
	srv := httptest.NewServer(New(uc, logger))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, gameId string) *websocket.Conn {
	t.Helper()
	u := "ws" + strings.TrimPrefix(srv.URL, "http")
	if gameId != "" {
		u += "?" + url.Values{domain.GameIdParam: {gameId}}.Encode()
	}
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
	})
	return conn
}

func readState(t *testing.T, conn *websocket.Conn) domain.StatePayload {
	t.Helper()
	var msg domain.Message
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, domain.StateResponse, msg.Type, "payload: %v", msg.Payload)
	state, err := utils.ConvertJson[domain.StatePayload](msg.Payload)
	require.NoError(t, err)
	return state
}

func TestPlayOverWebsocket(t *testing.T) {
	srv := newTestServer(t)
	conn := dial(t, srv, "")
	state := readState(t, conn)
	require.NotEmpty(t, state.GameId)
	assert.Equal(t, domain.MultiPlay, state.Mode)

	require.NoError(t, conn.WriteJSON(domain.Message{Type: domain.MoveRequest, Payload: domain.MovePayload{Row: 2, Col: 3}}))
	state = readState(t, conn)
	assert.True(t, state.MoveSuccess)
	assert.Equal(t, byte('X'), state.Board[2][3])
	assert.Equal(t, "White", state.CurrentPlayer)

	require.NoError(t, conn.WriteJSON(domain.Message{Type: domain.MoveRequest, Payload: domain.MovePayload{Row: 2, Col: 3}}))
	state = readState(t, conn)
	assert.False(t, state.MoveSuccess)
	assert.Equal(t, game.InvalidMoveMessage, state.Message)

	// a second connection resumes the same session
	other := dial(t, srv, state.GameId)
	resumed := readState(t, other)
	assert.Equal(t, state.GameId, resumed.GameId)
	assert.Equal(t, 1, resumed.Moves)

	require.NoError(t, conn.WriteJSON(domain.Message{Type: domain.NewGameRequest, Payload: domain.NewGamePayload{Mode: domain.SinglePlay}}))
	state = readState(t, conn)
	assert.Equal(t, 0, state.Moves)
	assert.Equal(t, domain.SinglePlay, state.Mode)

	require.NoError(t, conn.WriteJSON(domain.Message{Type: domain.StateRequest}))
	state = readState(t, conn)
	assert.Equal(t, domain.InProgress, state.Status)
}

func TestUnknownMessageType(t *testing.T) {
	srv := newTestServer(t)
	conn := dial(t, srv, "")
	readState(t, conn)
	require.NoError(t, conn.WriteJSON(domain.Message{Type: "dance"}))
	var msg domain.Message
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, domain.ErrorResponse, msg.Type)
}

func TestUnknownGame(t *testing.T) {
	srv := newTestServer(t)
	conn := dial(t, srv, "missing")
	var msg domain.Message
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, domain.ErrorResponse, msg.Type)
	payload, err := utils.ConvertJson[domain.ErrorPayload](msg.Payload)
	require.NoError(t, err)
	assert.Equal(t, "game not found", payload.Message)
}
