package http

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	cookieName   = "millionaire"
	keyGameID    = "gameId"
	keyBankLogin = "bankAuthenticated"
)

// NewCookieStore returns the signed cookie store used for browser sessions.
func NewCookieStore(secret string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// cookieSession wraps the gorilla session for one request. A tampered or
// expired cookie yields a fresh, empty session.
type cookieSession struct {
	s *sessions.Session
}

func loadCookie(store sessions.Store, r *http.Request) cookieSession {
	s, err := store.Get(r, cookieName)
	if err != nil {
		s, _ = store.New(r, cookieName)
	}
	if s == nil {
		s = sessions.NewSession(store, cookieName)
	}
	return cookieSession{s: s}
}

func (c cookieSession) gameID() string {
	id, _ := c.s.Values[keyGameID].(string)
	return id
}

func (c cookieSession) setGameID(id string) {
	c.s.Values[keyGameID] = id
}

func (c cookieSession) bankAuthenticated() bool {
	ok, _ := c.s.Values[keyBankLogin].(bool)
	return ok
}

func (c cookieSession) setBankAuthenticated(ok bool) {
	c.s.Values[keyBankLogin] = ok
}

func (c cookieSession) save(w http.ResponseWriter, r *http.Request) error {
	return c.s.Save(r, w)
}
