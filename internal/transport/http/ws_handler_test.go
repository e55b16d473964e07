package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"millionaire-service/internal/domain"
)

func TestWebSocketCommandFlow(t *testing.T) {
	srv := newTestServer(t)
	if _, err := srv.games.Start(context.Background(), "ws-game"); err != nil {
		t.Fatalf("start: %v", err)
	}

	u := "ws" + srv.URL[len("http"):] + "/ws?gameId=ws-game"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Expect the current state first.
	view := readState(t, conn)
	if view.QuestionNumber != 1 || view.Phase != domain.PhasePlaying {
		t.Fatalf("unexpected initial state %+v", view)
	}

	send(t, conn, map[string]any{"type": "select", "payload": map[string]any{"option": correctOption(0)}})
	view = readState(t, conn)
	if view.SelectedAnswer == nil || *view.SelectedAnswer != correctOption(0) {
		t.Fatalf("expected selection, got %+v", view.SelectedAnswer)
	}

	send(t, conn, map[string]any{"type": "confirm"})
	readState(t, conn)
	send(t, conn, map[string]any{"type": "submit"})
	view = readState(t, conn)
	if view.QuestionNumber != 2 || view.WonAmount != "$100" {
		t.Fatalf("expected question 2 with $100, got %d %s", view.QuestionNumber, view.WonAmount)
	}

	// A rejected command comes back as an error message.
	send(t, conn, map[string]any{"type": "confirm"})
	typ, payload := readNext(t, conn)
	if typ != "error" {
		t.Fatalf("expected error, got %s", typ)
	}
	var msg errorPayload
	if err := json.Unmarshal(payload, &msg); err != nil || msg.Message != domain.ErrNoSelection.Error() {
		t.Fatalf("unexpected error payload %s", payload)
	}
}

func TestWebSocketRequiresGame(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.do(t, http.MethodGet, "/ws", nil, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 without a game, got %d", resp.StatusCode)
	}

	u := "ws" + srv.URL[len("http"):] + "/ws?gameId=missing"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	if typ, _ := readNext(t, conn); typ != "error" {
		t.Fatalf("expected error for unknown game, got %s", typ)
	}
}

func TestEnqueueStopsWhenWriterIsGone(t *testing.T) {
	send := make(chan outboundMessage[any], 1)
	writerDone := make(chan struct{})
	msg := outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "x"}}

	if !enqueue(send, writerDone, msg) {
		t.Fatalf("expected the first message to be buffered")
	}
	close(writerDone)

	done := make(chan bool)
	go func() { done <- enqueue(send, writerDone, msg) }()
	select {
	case ok := <-done:
		if ok {
			t.Fatalf("expected enqueue to report a stopped writer")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("enqueue blocked on a full buffer after the writer stopped")
	}
}

func send(t *testing.T, conn *websocket.Conn, msg any) {
	t.Helper()
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func readNext(t *testing.T, conn *websocket.Conn) (string, json.RawMessage) {
	t.Helper()
	var msg struct {
		Type    string          `json:"type"`
		Payload json.RawMessage `json:"payload"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read json: %v", err)
	}
	return msg.Type, msg.Payload
}

func readState(t *testing.T, conn *websocket.Conn) domain.GameView {
	t.Helper()
	typ, payload := readNext(t, conn)
	if typ != "state" {
		t.Fatalf("expected state, got %s: %s", typ, payload)
	}
	var view domain.GameView
	if err := json.Unmarshal(payload, &view); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	return view
}
