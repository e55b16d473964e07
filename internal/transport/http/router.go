package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"millionaire-service/internal/app"
	"millionaire-service/internal/bank"
)

// Deps are the collaborators the HTTP surface needs.
type Deps struct {
	Games   *app.GameService
	Ledger  *bank.Ledger
	Cookies sessions.Store
	Logger  *zap.Logger
}

// NewRouter wires every route.
func NewRouter(d Deps) *mux.Router {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	games := NewGameHandler(d.Games, d.Cookies, d.Logger)
	ws := NewWSHandler(d.Games, d.Cookies, d.Logger)
	bankHandler := NewBankHandler(d.Ledger, d.Games, d.Cookies, d.Logger)

	r := mux.NewRouter()
	r.Use(accessLog(d.Logger))
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	r.HandleFunc("/ws", ws.ServeWS).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/games", games.Start).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}", games.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", games.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/games/{id}/commands", games.Command).Methods(http.MethodPost)

	api.HandleFunc("/bank/login", bankHandler.Login).Methods(http.MethodPost)
	secured := api.PathPrefix("/bank").Subrouter()
	secured.Use(bankHandler.RequireLogin)
	secured.HandleFunc("/logout", bankHandler.Logout).Methods(http.MethodPost)
	secured.HandleFunc("/account", bankHandler.Account).Methods(http.MethodGet)
	secured.HandleFunc("/deposit", bankHandler.Deposit).Methods(http.MethodPost)
	secured.HandleFunc("/withdraw", bankHandler.Withdraw).Methods(http.MethodPost)
	secured.HandleFunc("/transfer", bankHandler.Transfer).Methods(http.MethodPost)
	secured.HandleFunc("/winnings", bankHandler.Winnings).Methods(http.MethodPost)
	secured.HandleFunc("/receipts", bankHandler.Receipt).Methods(http.MethodPost)
	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func accessLog(log *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/ws" {
				// the upgrader needs the raw http.Hijacker
				next.ServeHTTP(w, r)
				return
			}
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			log.Debug("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("took", time.Since(start)))
		})
	}
}
