// Package session is a thin pass-through for the signed-in user's identity.
// The identity itself comes from configuration; this package only caches it
// next to the task data and remembers whether onboarding finished.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/unload/pkg/store"
)

// Key is the diskv key the session is cached under.
const Key = "session"

// ErrNameRequired is returned by SignIn without a name.
var ErrNameRequired = errors.New("session: name is required")

// Session is the current user as the app sees it.
type Session struct {
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	Onboarded bool   `json:"onboarded"`
}

// SignedIn reports whether a user identity is present.
func (s Session) SignedIn() bool {
	return strings.TrimSpace(s.Name) != ""
}

// Provider resolves and changes the current session.
type Provider interface {
	Current(ctx context.Context) (Session, error)
	SignIn(ctx context.Context, s Session) (Session, error)
	SignOut(ctx context.Context) error
}

// Local keeps the session in a diskv directory. Identity from configuration
// is used until a session has been stored.
type Local struct {
	d        *diskv.Diskv
	identity store.Identity
}

// NewLocal returns a provider caching under basePath.
func NewLocal(basePath string, identity store.Identity) (*Local, error) {
	if basePath == "" {
		return nil, errors.New("session: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("session: ensure base path: %w", err)
	}
	return &Local{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    func(string) []string { return []string{} },
			CacheSizeMax: 64 * 1024,
		}),
		identity: identity,
	}, nil
}

// Current returns the cached session, or one built from configuration that
// has not been onboarded yet.
func (l *Local) Current(_ context.Context) (Session, error) {
	if !l.d.Has(Key) {
		return Session{Name: l.identity.Name, Email: l.identity.Email, Avatar: l.identity.Avatar}, nil
	}
	data, err := l.d.Read(Key)
	if err != nil {
		return Session{}, fmt.Errorf("session: read: %w", err)
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("session: decode: %w", err)
	}
	return s, nil
}

// SignIn stores s as the current session and marks onboarding complete.
// Empty email or avatar fall back to configuration.
func (l *Local) SignIn(_ context.Context, s Session) (Session, error) {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		s.Name = l.identity.Name
	}
	if s.Name == "" {
		return Session{}, ErrNameRequired
	}
	if s.Email == "" {
		s.Email = l.identity.Email
	}
	if s.Avatar == "" {
		s.Avatar = l.identity.Avatar
	}
	s.Onboarded = true
	data, err := json.Marshal(s)
	if err != nil {
		return Session{}, err
	}
	if err := l.d.Write(Key, data); err != nil {
		return Session{}, fmt.Errorf("session: write: %w", err)
	}
	return s, nil
}

// SignOut forgets the cached session.
func (l *Local) SignOut(_ context.Context) error {
	if !l.d.Has(Key) {
		return nil
	}
	if err := l.d.Erase(Key); err != nil {
		return fmt.Errorf("session: erase: %w", err)
	}
	return nil
}
