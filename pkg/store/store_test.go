package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/unload/pkg/task"
)

func sampleTasks() []*task.Task {
	created := task.Timestamp{Time: time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC)}
	return []*task.Task{
		{
			ID:           "t-2",
			CreatedAt:    created,
			Category:     []string{"面試壓力"},
			Worry:        []string{"擔心表現"},
			Owner:        task.OwnerMine,
			ControlLevel: 75,
			Reflection:   task.Reflection{Focus: "the interview", Aspect: task.AspectFuture},
		},
		{
			ID:           "t-1",
			CreatedAt:    created,
			Category:     []string{"搬家"},
			Owner:        task.OwnerShared,
			ControlLevel: 40,
			Polarity:     task.Positive,
		},
	}
}

func TestEnginesRoundTrip(t *testing.T) {
	engines := map[string]func(string) (Persistence, error){
		"diskv":  OpenDiskv,
		"sqlite": OpenSQLite,
	}
	for name, open := range engines {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			p, err := open(t.TempDir())
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			t.Cleanup(func() { _ = p.Close() })

			if p.Name() != name {
				t.Fatalf("expected engine %s, got %s", name, p.Name())
			}

			empty, err := p.Load(ctx)
			if err != nil {
				t.Fatalf("load empty: %v", err)
			}
			if empty == nil || len(empty) != 0 {
				t.Fatalf("expected empty non-nil collection, got %#v", empty)
			}

			want := sampleTasks()
			if err := p.Save(ctx, want); err != nil {
				t.Fatalf("save: %v", err)
			}
			got, err := p.Load(ctx)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}

			if err := p.Save(ctx, want[:1]); err != nil {
				t.Fatalf("second save: %v", err)
			}
			got, err = p.Load(ctx)
			if err != nil {
				t.Fatalf("reload: %v", err)
			}
			if len(got) != 1 || got[0].ID != "t-2" {
				t.Fatalf("expected collection to be replaced wholesale, got %d tasks", len(got))
			}
		})
	}
}

func TestOpenSelectsEngine(t *testing.T) {
	base := t.TempDir()
	p, err := Open(&FileConfig{Path: base}, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer p.Close()
	if p.Name() != string(EngineSQLite) {
		t.Fatalf("auto should prefer sqlite, got %s", p.Name())
	}

	d, err := Open(&FileConfig{Path: t.TempDir(), EngineName: EngineDiskv}, nil)
	if err != nil {
		t.Fatalf("open diskv: %v", err)
	}
	defer d.Close()
	if d.Name() != string(EngineDiskv) {
		t.Fatalf("expected diskv, got %s", d.Name())
	}

	if _, err := Open(&FileConfig{Path: base, EngineName: "indexeddb"}, nil); !errors.Is(err, ErrUnknownEngine) {
		t.Fatalf("expected ErrUnknownEngine, got %v", err)
	}
}

func TestOpenAutoFallsBackToDiskv(t *testing.T) {
	base := t.TempDir()
	// A directory where the database file belongs keeps SQLite from opening.
	if err := os.Mkdir(filepath.Join(base, SQLiteFile), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	p, err := Open(&FileConfig{Path: base}, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer p.Close()
	if p.Name() != string(EngineDiskv) {
		t.Fatalf("expected fallback to diskv, got %s", p.Name())
	}
}

func TestWatchEmitsOnSave(t *testing.T) {
	p, err := OpenDiskv(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to start before writing.
	time.Sleep(50 * time.Millisecond)

	if err := p.Save(ctx, sampleTasks()); err != nil {
		t.Fatalf("save: %v", err)
	}

	select {
	case evt := <-ch:
		if evt.Type != EventChanged {
			t.Fatalf("unexpected event %v", evt.Type)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}
