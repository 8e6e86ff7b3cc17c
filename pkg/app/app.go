// Package app is the in-memory task store. It loads the collection once,
// applies mutations in memory and writes the whole collection back after each
// one, notifying subscribers as it goes.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tableflip.dev/unload/pkg/logging"
	"tableflip.dev/unload/pkg/store"
	"tableflip.dev/unload/pkg/task"
)

var (
	// ErrOwnerRequired is returned by Add for a draft without an owner.
	ErrOwnerRequired = errors.New("app: owner is required")
	// ErrNotFound is returned by lookups for an unknown id.
	ErrNotFound = errors.New("app: task not found")
	// ErrNoPersistence is returned when the service has no store configured.
	ErrNoPersistence = errors.New("app: no persistence configured")
	// ErrAmbiguous is returned by Lookup when a prefix matches several ids.
	ErrAmbiguous = errors.New("app: ambiguous id")
)

// ChangeKind names what happened to the collection.
type ChangeKind string

const (
	KindAdded   ChangeKind = "added"
	KindUpdated ChangeKind = "updated"
	KindDeleted ChangeKind = "deleted"
	KindReload  ChangeKind = "reload"
)

// Change is delivered to subscribers after every mutation.
type Change struct {
	Kind ChangeKind
	ID   string
}

// Service provides the task store operations shared by the CLI, the wizard
// and the MCP server.
type Service struct {
	Persistence store.Persistence
	Logger      *zap.Logger

	// Now and NewID are overridable for tests.
	Now   func() time.Time
	NewID func() string

	mu     sync.RWMutex
	tasks  []*task.Task
	subs   map[int]chan Change
	nextID int
}

// New returns a Service over p. A nil logger discards logs.
func New(p store.Persistence, logger *zap.Logger) *Service {
	return &Service{Persistence: p, Logger: logger}
}

func (s *Service) logger() *zap.Logger {
	return logging.OrNop(s.Logger)
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

// Load reads the full collection from persistence, replacing whatever is in
// memory. A store with no data yields an empty collection.
func (s *Service) Load(ctx context.Context) ([]*task.Task, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	tasks, err := s.Persistence.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.tasks = tasks
	out := cloneAll(s.tasks)
	s.mu.Unlock()
	return out, nil
}

// Tasks returns a snapshot of the collection, newest first.
func (s *Service) Tasks() []*task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.tasks)
}

// Get returns a copy of the task with id.
func (s *Service) Get(id string) (*task.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i].Clone(), nil
	}
	return nil, ErrNotFound
}

// Lookup returns a copy of the task whose id is id, or failing that the one
// task whose id starts with id, as printed in short listings.
func (s *Service) Lookup(id string) (*task.Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrNotFound
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i].Clone(), nil
	}
	var found *task.Task
	for _, t := range s.tasks {
		if !strings.HasPrefix(t.ID, id) {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("%w: id prefix %q", ErrAmbiguous, id)
		}
		found = t
	}
	if found == nil {
		return nil, ErrNotFound
	}
	return found.Clone(), nil
}

// Add creates a task from d, prepends it and persists the collection. The
// control level is clamped into 0-100 but not checked against the suggested
// range; that gate belongs to the wizard. When only the write fails, the
// created task is returned together with the error: it stays in memory.
func (s *Service) Add(ctx context.Context, d task.Draft) (*task.Task, error) {
	if d.Owner == task.OwnerUnset {
		return nil, ErrOwnerRequired
	}
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	t := &task.Task{
		ID:           s.newID(),
		CreatedAt:    task.Timestamp{Time: s.now()},
		Category:     append([]string(nil), d.Category...),
		Worry:        append([]string(nil), d.Worry...),
		Owner:        d.Owner,
		ControlLevel: clamp(d.ControlLevel),
		Reflection:   d.Reflection.Clone(),
		FinalMessage: d.FinalMessage,
		Perspective:  d.Perspective,
		Polarity:     d.Polarity,
	}

	s.mu.Lock()
	s.tasks = append([]*task.Task{t}, s.tasks...)
	err := s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify(Change{Kind: KindAdded, ID: t.ID})
	return t.Clone(), err
}

// Update merges p into the task with id. An unknown id is logged and
// ignored.
func (s *Service) Update(ctx context.Context, id string, p task.Patch) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		s.logger().Info("update of unknown task ignored", zap.String("id", id))
		return nil
	}
	p.Apply(s.tasks[i])
	err := s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify(Change{Kind: KindUpdated, ID: id})
	return err
}

// Delete removes the task with id. An unknown id leaves the collection and
// the store untouched.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		s.logger().Info("delete of unknown task ignored", zap.String("id", id))
		return nil
	}
	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	err := s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify(Change{Kind: KindDeleted, ID: id})
	return err
}

// persistLocked writes the entire collection. The in-memory state is kept
// even when the write fails.
func (s *Service) persistLocked(ctx context.Context) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	if err := s.Persistence.Save(ctx, s.tasks); err != nil {
		s.logger().Warn("persisting tasks failed", zap.Int("count", len(s.tasks)), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) indexOf(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Subscribe registers for change notifications. Call the returned func to
// unsubscribe. Slow subscribers miss changes rather than block writers.
func (s *Service) Subscribe() (<-chan Change, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subs == nil {
		s.subs = make(map[int]chan Change)
	}
	id := s.nextID
	s.nextID++
	ch := make(chan Change, 16)
	s.subs[id] = ch
	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}
}

func (s *Service) notify(c Change) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.subs {
		select {
		case ch <- c:
		default:
		}
	}
}

// Follow reloads the collection whenever the store reports an outside change
// and tells subscribers. It blocks until ctx is done.
func (s *Service) Follow(ctx context.Context) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	events, err := s.Persistence.Watch(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			if _, err := s.Load(ctx); err != nil {
				s.logger().Warn("reload after store change failed", zap.Error(err))
				continue
			}
			s.notify(Change{Kind: KindReload})
		}
	}
}

func cloneAll(in []*task.Task) []*task.Task {
	out := make([]*task.Task, len(in))
	for i, t := range in {
		out[i] = t.Clone()
	}
	return out
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
