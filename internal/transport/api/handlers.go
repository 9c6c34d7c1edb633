package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kiryu-dev/gomoku/internal/domain"
	"github.com/kiryu-dev/gomoku/pkg/utils"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type handlers struct {
	game   domain.GameUseCase
	logger *zap.Logger
}

type healthCheckResponse struct {
	Status string `json:"status"`
	domain.HubStats
}

func (h *handlers) healthCheck(w http.ResponseWriter, _ *http.Request) {
	h.write(w, http.StatusOK, healthCheckResponse{Status: "ok", HubStats: h.game.Stats()})
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeNewGame(w, r)
	if !ok {
		return
	}
	resp, err := h.game.NewGame(r.Context(), req.Mode, req.Difficulty)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.write(w, http.StatusCreated, resp)
}

func (h *handlers) state(w http.ResponseWriter, r *http.Request) {
	resp, err := h.game.State(r.Context(), chi.URLParam(r, gameIdParam))
	if err != nil {
		h.fail(w, err)
		return
	}
	h.write(w, http.StatusOK, resp)
}

func (h *handlers) move(w http.ResponseWriter, r *http.Request) {
	req, err := utils.DecodeJson[*domain.MovePayload](r.Body)
	if err != nil || req == nil {
		h.write(w, http.StatusBadRequest, domain.ErrorPayload{Message: "expected a JSON body with 'row' and 'col'"})
		return
	}
	resp, err := h.game.Move(r.Context(), chi.URLParam(r, gameIdParam), req.Row, req.Col)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.write(w, http.StatusOK, resp)
}

func (h *handlers) reset(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeNewGame(w, r)
	if !ok {
		return
	}
	resp, err := h.game.Reset(r.Context(), chi.URLParam(r, gameIdParam), req.Mode, req.Difficulty)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.write(w, http.StatusOK, resp)
}

func (h *handlers) decodeNewGame(w http.ResponseWriter, r *http.Request) (domain.NewGamePayload, bool) {
	req, err := utils.DecodeJson[domain.NewGamePayload](r.Body)
	if err != nil {
		h.write(w, http.StatusBadRequest, domain.ErrorPayload{Message: "malformed JSON body"})
		return req, false
	}
	if !req.Mode.Valid() || !req.Difficulty.Valid() {
		h.write(w, http.StatusBadRequest, domain.ErrorPayload{Message: "unknown mode or difficulty"})
		return req, false
	}
	return req, true
}

func (h *handlers) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrSessionNotFound) {
		h.write(w, http.StatusNotFound, domain.ErrorPayload{Message: "game not found"})
		return
	}
	h.logger.Error(err.Error())
	h.write(w, http.StatusInternalServerError, domain.ErrorPayload{Message: "internal error"})
}

func (h *handlers) write(w http.ResponseWriter, status int, v any) {
	if err := utils.WriteJson(w, status, v); err != nil {
		h.logger.Warn(err.Error())
	}
}
