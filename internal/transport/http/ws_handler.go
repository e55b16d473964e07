package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"millionaire-service/internal/app"
	"millionaire-service/internal/domain"
)

type WSHandler struct {
	service  *app.GameService
	cookies  sessions.Store
	log      *zap.Logger
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.GameService, cookies sessions.Store, log *zap.Logger) *WSHandler {
	return &WSHandler{
		service: service,
		cookies: cookies,
		log:     log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    domain.CommandType `json:"type"`
	Payload json.RawMessage    `json:"payload"`
}

type optionPayload struct {
	Option int `json:"option"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

// ServeWS upgrades the request and runs the command loop for one game. Every
// state change, including timer-driven advances, arrives through the game's
// subscription as a "state" message.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("gameId")
	if gameID == "" {
		gameID = loadCookie(h.cookies, r).gameID()
	}
	if gameID == "" {
		http.Error(w, "missing gameId", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	updates, cancel, err := h.service.Subscribe(r.Context(), gameID)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	defer cancel()

	send := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	updatesDone := make(chan struct{})

	// single writer; gorilla connections do not support concurrent writes
	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				h.log.Debug("ws write error", zap.Error(err))
				return
			}
		}
	}()

	go func() {
		defer close(updatesDone)
		for {
			select {
			case view, ok := <-updates:
				if !ok {
					return
				}
				select {
				case send <- outboundMessage[any]{Type: "state", Payload: view}:
				case <-closeSignals:
					return
				case <-writerDone:
					return
				}
			case <-closeSignals:
				return
			}
		}
	}()

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		if err := h.dispatch(r, gameID, inbound); err != nil {
			msg := outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
			if !enqueue(send, writerDone, msg) {
				break
			}
		}
	}

	close(closeSignals)
	<-updatesDone
	close(send)
	<-writerDone
}

// enqueue hands msg to the writer. It reports false once the writer has stopped.
func enqueue(send chan<- outboundMessage[any], writerDone <-chan struct{}, msg outboundMessage[any]) bool {
	select {
	case send <- msg:
		return true
	case <-writerDone:
		return false
	}
}

func (h *WSHandler) dispatch(r *http.Request, gameID string, inbound inboundMessage) error {
	cmd := domain.Command{Type: inbound.Type}
	if inbound.Type == domain.CommandSelect {
		var payload optionPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return &badRequestError{err: err}
		}
		cmd.Option = payload.Option
	}
	if inbound.Type == domain.CommandStart {
		_, err := h.service.Start(r.Context(), gameID)
		return err
	}
	_, err := h.service.Handle(r.Context(), gameID, cmd)
	return err
}
