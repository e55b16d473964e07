package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"millionaire-service/internal/app"
	"millionaire-service/internal/domain"
)

// GameHandler exposes the game use cases as JSON endpoints.
type GameHandler struct {
	service *app.GameService
	cookies sessions.Store
	log     *zap.Logger
}

func NewGameHandler(service *app.GameService, cookies sessions.Store, log *zap.Logger) *GameHandler {
	return &GameHandler{service: service, cookies: cookies, log: log}
}

type startRequest struct {
	GameID string `json:"gameId"`
}

// Start creates a game, or replays the one named in the body or bound to the cookie.
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, h.log, err)
			return
		}
	}
	cookie := loadCookie(h.cookies, r)
	if req.GameID == "" {
		req.GameID = cookie.gameID()
	}

	session, err := h.service.Start(r.Context(), req.GameID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	cookie.setGameID(session.ID)
	if err := cookie.save(w, r); err != nil {
		h.log.Warn("save cookie", zap.Error(err))
	}
	h.respondView(w, r, http.StatusCreated, session)
}

func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.View(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Command applies one player command, e.g. {"type":"select","option":2}.
func (h *GameHandler) Command(w http.ResponseWriter, r *http.Request) {
	var cmd domain.Command
	if err := decodeJSON(r, &cmd); err != nil {
		writeError(w, h.log, err)
		return
	}
	session, err := h.service.Handle(r.Context(), mux.Vars(r)["id"], cmd)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	h.respondView(w, r, http.StatusOK, session)
}

func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.End(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *GameHandler) respondView(w http.ResponseWriter, r *http.Request, status int, session domain.GameSession) {
	view, err := h.service.Project(r.Context(), session)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, status, view)
}
