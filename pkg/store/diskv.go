package store

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/unload/pkg/task"
)

type diskvStore struct {
	d        *diskv.Diskv
	basePath string
}

// OpenDiskv returns a Persistence storing the collection as a file under
// basePath.
func OpenDiskv(basePath string) (Persistence, error) {
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &diskvStore{d: newDiskv(basePath), basePath: basePath}, nil
}

func newDiskv(basePath string) *diskv.Diskv {
	return diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	})
}

func (s *diskvStore) Name() string {
	return string(EngineDiskv)
}

func (s *diskvStore) Load(_ context.Context) ([]*task.Task, error) {
	if !s.d.Has(TasksKey) {
		return []*task.Task{}, nil
	}
	data, err := s.d.Read(TasksKey)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", TasksKey, err)
	}
	return decode(data)
}

func (s *diskvStore) Written(_ context.Context) (bool, error) {
	return s.d.Has(TasksKey), nil
}

func (s *diskvStore) Save(_ context.Context, tasks []*task.Task) error {
	data, err := encode(tasks)
	if err != nil {
		return err
	}
	if err := s.d.Write(TasksKey, data); err != nil {
		return fmt.Errorf("store: write %s: %w", TasksKey, err)
	}
	return nil
}

func (s *diskvStore) Watch(ctx context.Context) (<-chan Event, error) {
	return watchDir(ctx, s.basePath, func(name string) bool {
		return name == TasksKey
	})
}

func (s *diskvStore) Close() error {
	return nil
}
