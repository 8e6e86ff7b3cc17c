package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tableflip.dev/unload/pkg/task"
)

// LegacySource reads the flat key written by older releases. It is only ever
// read from.
type LegacySource struct {
	path string
}

// NewLegacySource returns a source reading from the diskv directory at path.
func NewLegacySource(path string) *LegacySource {
	return &LegacySource{path: path}
}

// Read returns the converted legacy tasks, or nothing when there is no legacy
// data. Records without an owner are dropped since they can never have been
// submitted through the wizard.
func (l *LegacySource) Read(logger *zap.Logger) ([]*task.Task, error) {
	if l == nil || l.path == "" {
		return nil, nil
	}
	if _, err := os.Stat(l.path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("store: legacy path: %w", err)
	}
	d := newDiskv(l.path)
	if !d.Has(LegacyTasksKey) {
		return nil, nil
	}
	data, err := d.Read(LegacyTasksKey)
	if err != nil {
		return nil, fmt.Errorf("store: read legacy %s: %w", LegacyTasksKey, err)
	}
	var raw []legacyTask
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("store: decode legacy tasks: %w", err)
	}
	out := make([]*task.Task, 0, len(raw))
	for _, r := range raw {
		t, err := r.convert()
		if err != nil {
			logger.Warn("dropping legacy task", zap.String("id", r.ID), zap.Error(err))
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

type legacyTask struct {
	ID           string  `json:"id"`
	CreatedAt    string  `json:"createdAt"`
	Category     labels  `json:"category"`
	Worry        labels  `json:"worry"`
	Owner        string  `json:"owner"`
	ControlLevel float64 `json:"controlLevel"`
	Reflection   string  `json:"reflection"`
	FinalMessage string  `json:"finalMessage"`
	Perspective  string  `json:"perspective"`
	Polarity     string  `json:"polarity"`
}

func (r legacyTask) convert() (*task.Task, error) {
	owner, err := task.ParseOwner(r.Owner)
	if err != nil {
		return nil, err
	}
	if owner == task.OwnerUnset {
		return nil, fmt.Errorf("store: legacy task has no owner")
	}
	t := &task.Task{
		ID:               r.ID,
		Category:         []string(r.Category),
		Worry:            []string(r.Worry),
		Owner:            owner,
		ControlLevel:     clampLevel(int(r.ControlLevel + 0.5)),
		Reflection:       task.ParseLegacyReflection(r.Reflection),
		LegacyReflection: r.Reflection,
		FinalMessage:     r.FinalMessage,
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if ts, err := task.ParseTime(r.CreatedAt); err == nil {
		t.CreatedAt = task.Timestamp{Time: ts}
	}
	// Unknown lenses and polarities from hand-edited data are dropped, not fatal.
	t.Perspective, _ = task.ParsePerspective(r.Perspective)
	t.Polarity, _ = task.ParsePolarity(r.Polarity)
	return t, nil
}

func clampLevel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// labels accepts either a single string or a list of strings.
type labels []string

func (l *labels) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*l = nil
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s = strings.TrimSpace(s); s != "" {
			*l = labels{s}
		}
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return err
	}
	*l = list
	return nil
}

// writtenChecker reports whether the collection key has ever been saved.
type writtenChecker interface {
	Written(ctx context.Context) (bool, error)
}

// migrating wraps the primary engine and pulls legacy data in on the first
// empty load.
type migrating struct {
	Persistence
	legacy *LegacySource
	logger *zap.Logger

	mu      sync.Mutex
	checked bool
}

// WithLegacy wraps primary so that its first empty Load is filled from legacy.
func WithLegacy(primary Persistence, legacy *LegacySource, logger *zap.Logger) Persistence {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &migrating{Persistence: primary, legacy: legacy, logger: logger}
}

func (m *migrating) Load(ctx context.Context) ([]*task.Task, error) {
	tasks, err := m.Persistence.Load(ctx)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if len(tasks) > 0 || m.checked {
		m.checked = true
		return tasks, nil
	}
	m.checked = true

	// An empty collection that was saved is the user's own; only a primary
	// that was never written is filled from legacy.
	if w, ok := m.Persistence.(writtenChecker); ok {
		written, err := w.Written(ctx)
		if err != nil {
			return nil, err
		}
		if written {
			return tasks, nil
		}
	}

	legacy, err := m.legacy.Read(m.logger)
	if err != nil {
		m.logger.Warn("legacy migration skipped", zap.Error(err))
		return tasks, nil
	}
	if len(legacy) == 0 {
		return tasks, nil
	}
	if err := m.Persistence.Save(ctx, legacy); err != nil {
		return nil, fmt.Errorf("store: migrate legacy tasks: %w", err)
	}
	m.logger.Info("migrated legacy tasks", zap.Int("count", len(legacy)), zap.String("engine", m.Persistence.Name()))
	return legacy, nil
}
