package session

import (
	"context"
	"errors"
	"testing"

	"tableflip.dev/unload/pkg/store"
)

func TestLocalLifecycle(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	l, err := NewLocal(dir, store.Identity{Name: "Ada", Email: "ada@example.com"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	s, err := l.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if s.Name != "Ada" || s.Onboarded {
		t.Fatalf("expected configured identity not onboarded, got %+v", s)
	}

	if _, err := l.SignIn(ctx, Session{Name: "Ada L."}); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	again, err := NewLocal(dir, store.Identity{})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	s, err = again.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if s.Name != "Ada L." || s.Email != "ada@example.com" || !s.Onboarded {
		t.Fatalf("unexpected stored session %+v", s)
	}

	if err := again.SignOut(ctx); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if s, _ := again.Current(ctx); s.SignedIn() {
		t.Fatalf("expected signed out, got %+v", s)
	}
	if err := again.SignOut(ctx); err != nil {
		t.Fatalf("second sign out should be a no-op: %v", err)
	}
}

func TestSignInRequiresName(t *testing.T) {
	l, err := NewLocal(t.TempDir(), store.Identity{})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := l.SignIn(context.Background(), Session{Email: "x@example.com"}); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
}
