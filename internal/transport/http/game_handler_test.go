package http

import (
	"net/http"
	"testing"

	"millionaire-service/internal/domain"
)

func TestGameRESTFlow(t *testing.T) {
	srv := newTestServer(t)

	var view domain.GameView
	resp := srv.do(t, http.MethodPost, "/api/games", nil, &view)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if view.GameID == "" || view.Phase != domain.PhasePlaying || view.QuestionNumber != 1 {
		t.Fatalf("unexpected view %+v", view)
	}
	path := "/api/games/" + view.GameID + "/commands"

	for _, cmd := range []domain.Command{
		{Type: domain.CommandSelect, Option: correctOption(0)},
		{Type: domain.CommandConfirm},
		{Type: domain.CommandSubmit},
	} {
		if resp := srv.do(t, http.MethodPost, path, cmd, &view); resp.StatusCode != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", cmd.Type, resp.StatusCode)
		}
	}
	if view.QuestionNumber != 2 || view.WonAmount != "$100" {
		t.Fatalf("expected question 2 with $100, got %d %s", view.QuestionNumber, view.WonAmount)
	}

	// replay through the cookie-bound game
	var replay domain.GameView
	srv.do(t, http.MethodPost, "/api/games", nil, &replay)
	if replay.GameID != view.GameID || replay.QuestionNumber != 1 || replay.WonAmount != domain.ZeroPrize {
		t.Fatalf("expected replay of %s, got %+v", view.GameID, replay)
	}

	var got domain.GameView
	if resp := srv.do(t, http.MethodGet, "/api/games/"+view.GameID, nil, &got); resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got.GameID != view.GameID {
		t.Fatalf("unexpected game %s", got.GameID)
	}

	if resp := srv.do(t, http.MethodDelete, "/api/games/"+view.GameID, nil, nil); resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}
	if resp := srv.do(t, http.MethodGet, "/api/games/"+view.GameID, nil, nil); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", resp.StatusCode)
	}
}

func TestGameCommandErrors(t *testing.T) {
	srv := newTestServer(t)
	var view domain.GameView
	srv.do(t, http.MethodPost, "/api/games", nil, &view)
	path := "/api/games/" + view.GameID + "/commands"

	cases := []struct {
		name string
		body any
		want int
	}{
		{"confirm without selection", domain.Command{Type: domain.CommandConfirm}, http.StatusConflict},
		{"option out of range", domain.Command{Type: domain.CommandSelect, Option: 7}, http.StatusBadRequest},
		{"unknown command", domain.Command{Type: "dance"}, http.StatusBadRequest},
		{"bad body", map[string]any{"type": "select", "extra": true}, http.StatusBadRequest},
		{"menu while playing", domain.Command{Type: domain.CommandMenu}, http.StatusConflict},
	}
	for _, tc := range cases {
		var errBody errorPayload
		resp := srv.do(t, http.MethodPost, path, tc.body, &errBody)
		if resp.StatusCode != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, resp.StatusCode)
		}
		if errBody.Message == "" {
			t.Fatalf("%s: expected error message", tc.name)
		}
	}

	if resp := srv.do(t, http.MethodPost, "/api/games/missing/commands", domain.Command{Type: domain.CommandSubmit}, nil); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown game, got %d", resp.StatusCode)
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	if resp := srv.do(t, http.MethodGet, "/healthz", nil, nil); resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
