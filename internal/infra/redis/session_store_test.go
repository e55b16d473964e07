package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"

	"millionaire-service/internal/domain"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	ctx := context.Background()
	store := NewSessionStore(newClient(mr), time.Minute)

	session := domain.NewGameSession("g1", "classic", time.Now().UTC())
	session.Phase = domain.PhasePlaying
	session.CurrentIndex = 6
	session.SelectedAnswer = domain.Intp(2)
	session.LifelinesUsed = map[domain.Lifeline]bool{domain.LifelineFiftyFifty: true}
	session.HiddenOptions = []int{0, 1}
	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !mr.Exists("game:session:g1") {
		t.Fatalf("expected redis key to be set")
	}
	if ttl := mr.TTL("game:session:g1"); ttl != time.Minute {
		t.Fatalf("expected 1m ttl, got %s", ttl)
	}

	got, err := store.Get(ctx, "g1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CurrentIndex != 6 || *got.SelectedAnswer != 2 || !got.LifelineUsed(domain.LifelineFiftyFifty) {
		t.Fatalf("unexpected session %+v", got)
	}
	if len(got.HiddenOptions) != 2 {
		t.Fatalf("expected hidden options to survive, got %v", got.HiddenOptions)
	}

	if err := store.Delete(ctx, "g1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if mr.Exists("game:session:g1") {
		t.Fatalf("expected redis key to be removed")
	}
	if _, err := store.Get(ctx, "g1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSessionStoreExpires(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	ctx := context.Background()
	store := NewSessionStore(newClient(mr), time.Minute)
	_ = store.Save(ctx, domain.NewGameSession("g1", "classic", time.Now()))

	mr.FastForward(time.Minute + time.Second)
	if _, err := store.Get(ctx, "g1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected expired session, got %v", err)
	}
}
