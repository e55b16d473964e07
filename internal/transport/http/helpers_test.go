package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"millionaire-service/internal/app"
	"millionaire-service/internal/bank"
	"millionaire-service/internal/infra/memory"
	"millionaire-service/internal/quizdata"
)

type testServer struct {
	*httptest.Server
	games  *app.GameService
	ledger *bank.Ledger
	client *http.Client
}

type alwaysFirst struct{}

func (alwaysFirst) Intn(int) int     { return 0 }
func (alwaysFirst) Float64() float64 { return 0 }

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	quizRepo := memory.NewQuizRepository(memory.NewStaticQuizLoader(quizdata.Builtin()), time.Minute)
	games := app.NewGameService(memory.NewSessionStore(), quizRepo, app.Options{
		QuizID: quizdata.ClassicID,
		Rand:   alwaysFirst{},
	})
	ledger := bank.NewLedger(bank.DefaultOptions())
	router := NewRouter(Deps{
		Games:   games,
		Ledger:  ledger,
		Cookies: NewCookieStore("test-secret"),
	})
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &testServer{
		Server: server,
		games:  games,
		ledger: ledger,
		client: &http.Client{Jar: jar, Timeout: 5 * time.Second},
	}
}

// do sends body as JSON and decodes a JSON response into out when it is non-nil.
func (s *testServer) do(t *testing.T, method, path string, body any, out any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, s.URL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			t.Fatalf("decode %s: %v", raw, err)
		}
	}
	resp.Body = io.NopCloser(bytes.NewReader(raw))
	return resp
}

func correctOption(index int) int {
	return quizdata.Classic().Questions[index].CorrectAnswer
}
