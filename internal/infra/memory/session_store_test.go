package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"millionaire-service/internal/domain"
)

func TestSessionStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	if _, err := store.Get(ctx, "g1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	session := domain.NewGameSession("g1", "classic", time.Now())
	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Get(ctx, "g1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.QuizID != "classic" || got.Phase != domain.PhaseMenu {
		t.Fatalf("unexpected session %+v", got)
	}

	if err := store.Delete(ctx, "g1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected session removed")
	}
}

func TestSessionStoreCopiesOnSave(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	session := domain.NewGameSession("g1", "classic", time.Now())
	session.HiddenOptions = []int{0, 1}
	_ = store.Save(ctx, session)
	session.HiddenOptions[0] = 3

	got, _ := store.Get(ctx, "g1")
	if got.HiddenOptions[0] != 0 {
		t.Fatalf("store shares slices with caller: %v", got.HiddenOptions)
	}
}
