// Package store persists the task collection. The whole collection lives
// under one fixed key as a single JSON blob and is rewritten on every save.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"tableflip.dev/unload/pkg/task"
)

const (
	// TasksKey names the single collection holding every task.
	TasksKey = "unload-tasks"
	// LegacyTasksKey is the flat key older releases wrote to.
	LegacyTasksKey = "tasks"
)

// Engine names a persistence implementation.
type Engine string

const (
	EngineAuto   Engine = "auto"
	EngineSQLite Engine = "sqlite"
	EngineDiskv  Engine = "diskv"
)

// ErrUnknownEngine is returned by Open for an unrecognised engine name.
var ErrUnknownEngine = errors.New("store: unknown engine")

// Persistence loads and saves the full task collection.
type Persistence interface {
	Name() string
	Load(ctx context.Context) ([]*task.Task, error)
	Save(ctx context.Context, tasks []*task.Task) error
	Watch(ctx context.Context) (<-chan Event, error)
	Close() error
}

// Open selects one engine for the lifetime of the process. With EngineAuto
// SQLite is tried first and diskv is used when SQLite cannot be opened. The
// result migrates legacy data on its first empty load.
func Open(cfg Config, logger *zap.Logger) (Persistence, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		var err error
		if cfg, err = LoadConfig(); err != nil {
			return nil, err
		}
	}

	var (
		primary Persistence
		err     error
	)
	switch cfg.Engine() {
	case EngineSQLite:
		primary, err = OpenSQLite(cfg.BasePath())
	case EngineDiskv:
		primary, err = OpenDiskv(cfg.BasePath())
	case EngineAuto:
		primary, err = OpenSQLite(cfg.BasePath())
		if err != nil {
			logger.Warn("sqlite unavailable, falling back to diskv",
				zap.String("path", cfg.BasePath()), zap.Error(err))
			primary, err = OpenDiskv(cfg.BasePath())
		}
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownEngine, cfg.Engine())
	}
	if err != nil {
		return nil, err
	}
	logger.Debug("store opened", zap.String("engine", primary.Name()), zap.String("path", cfg.BasePath()))

	return WithLegacy(primary, NewLegacySource(cfg.LegacyPath()), logger), nil
}

func encode(tasks []*task.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []*task.Task{}
	}
	return json.Marshal(tasks)
}

func decode(data []byte) ([]*task.Task, error) {
	if len(data) == 0 {
		return []*task.Task{}, nil
	}
	var tasks []*task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("store: decode tasks: %w", err)
	}
	if tasks == nil {
		return []*task.Task{}, nil
	}
	out := tasks[:0]
	for _, t := range tasks {
		if t != nil {
			out = append(out, t)
		}
	}
	return out, nil
}
