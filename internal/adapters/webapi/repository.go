package webapi

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/kiryu-dev/gomoku/internal/domain"
	"github.com/pkg/errors"
)

const (
	clientTimeout  = 2 * time.Minute
	gamesEndpoint  = "/api/games"
	movesEndpoint  = "/moves"
	resetEndpoint  = "/reset"
	healthEndpoint = "/health"
)

var ErrGameNotFound = errors.New("game not found on server")

type repository struct {
	cli  *http.Client
	addr string
}

// New returns a client for the REST front end served at addr
// (e.g. "http://localhost:8080").
func New(addr string) repository {
	return repository{
		cli:  &http.Client{Timeout: clientTimeout},
		addr: addr,
	}
}

func (r repository) NewGame(ctx context.Context, mode domain.Mode, difficulty domain.Difficulty) (domain.StatePayload, error) {
	return r.call(ctx, http.MethodPost, gamesEndpoint, domain.NewGamePayload{Mode: mode, Difficulty: difficulty})
}

func (r repository) State(ctx context.Context, gameId string) (domain.StatePayload, error) {
	return r.call(ctx, http.MethodGet, gamesEndpoint+"/"+gameId, nil)
}

func (r repository) Move(ctx context.Context, gameId string, row, col int) (domain.StatePayload, error) {
	return r.call(ctx, http.MethodPost, gamesEndpoint+"/"+gameId+movesEndpoint, domain.MovePayload{Row: row, Col: col})
}

func (r repository) Reset(ctx context.Context, gameId string, mode domain.Mode, difficulty domain.Difficulty) (domain.StatePayload, error) {
	return r.call(ctx, http.MethodPost, gamesEndpoint+"/"+gameId+resetEndpoint,
		domain.NewGamePayload{Mode: mode, Difficulty: difficulty})
}

func (r repository) HealthCheck(ctx context.Context) (domain.HubStats, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.addr+healthEndpoint, nil)
	if err != nil {
		return domain.HubStats{}, errors.WithMessage(err, "new get request")
	}
	resp, err := r.cli.Do(req)
	if err != nil {
		return domain.HubStats{}, errors.WithMessagef(err, "call http endpoint '%s'", healthEndpoint)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return domain.HubStats{}, errors.Errorf("unexpected response status '%s'", resp.Status)
	}
	var result domain.HubStats
	if err := jsoniter.NewDecoder(resp.Body).Decode(&result); err != nil {
		return domain.HubStats{}, errors.WithMessage(err, "decode json response body")
	}
	return result, nil
}

func (r repository) call(ctx context.Context, method, endpoint string, body any) (domain.StatePayload, error) {
	var reader io.Reader
	if body != nil {
		data, err := jsoniter.Marshal(body)
		if err != nil {
			return domain.StatePayload{}, errors.WithMessage(err, "marshal json body")
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, r.addr+endpoint, reader)
	if err != nil {
		return domain.StatePayload{}, errors.WithMessagef(err, "new %s request", method)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.cli.Do(req)
	if err != nil {
		return domain.StatePayload{}, errors.WithMessagef(err, "call http endpoint '%s'", endpoint)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.StatePayload{}, ErrGameNotFound
	case resp.StatusCode >= http.StatusBadRequest:
		var e domain.ErrorPayload
		_ = jsoniter.NewDecoder(resp.Body).Decode(&e)
		return domain.StatePayload{}, errors.Errorf("unexpected response status '%s': %s", resp.Status, e.Message)
	}
	var result domain.StatePayload
	if err := jsoniter.NewDecoder(resp.Body).Decode(&result); err != nil {
		return domain.StatePayload{}, errors.WithMessage(err, "decode json response body")
	}
	return result, nil
}
