package remove

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/unload/pkg/app"
	"tableflip.dev/unload/pkg/store"
	"tableflip.dev/unload/pkg/task"
)

type fakePrompt struct {
	confirm bool
	asked   int
}

func (f *fakePrompt) Confirm(string) (bool, error) {
	f.asked++
	return f.confirm, nil
}

func (f *fakePrompt) Text(_, def string, _ bool) (string, error) { return def, nil }

func (f *fakePrompt) SelectTask(_ string, tasks []*task.Task) (*task.Task, error) {
	return tasks[0], nil
}

func seeded(t *testing.T) (*app.Service, *task.Task) {
	t.Helper()
	p, err := store.OpenDiskv(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = p.Close() })
	svc := app.New(p, nil)
	created, err := svc.Add(context.Background(), task.Draft{
		Category: []string{"財務"}, Owner: task.OwnerShared, ControlLevel: 30,
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	return svc, created
}

func TestRemoveConfirmed(t *testing.T) {
	color.NoColor = true
	svc, created := seeded(t)
	var out bytes.Buffer
	p := &fakePrompt{confirm: true}
	n := Remove{ID: created.ID[:8], Service: svc, Prompt: p, Out: &out}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if p.asked != 1 {
		t.Fatalf("expected one confirmation, got %d", p.asked)
	}
	if _, err := svc.Get(created.ID); !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("task should be gone, got %v", err)
	}
	if !strings.Contains(out.String(), "Deleted") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRemoveDeclined(t *testing.T) {
	svc, created := seeded(t)
	var out bytes.Buffer
	n := Remove{ID: created.ID, Service: svc, Prompt: &fakePrompt{}, Out: &out}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if _, err := svc.Get(created.ID); err != nil {
		t.Fatalf("task should be kept, got %v", err)
	}
	if !strings.Contains(out.String(), "Kept.") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRemoveYesAndPick(t *testing.T) {
	svc, created := seeded(t)
	p := &fakePrompt{}
	n := Remove{Yes: true, Service: svc, Prompt: p, Out: &bytes.Buffer{}}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if p.asked != 0 {
		t.Fatalf("--yes should not ask")
	}
	if _, err := svc.Get(created.ID); !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("task should be gone, got %v", err)
	}
}

func TestRemoveUnknown(t *testing.T) {
	svc, _ := seeded(t)
	n := Remove{ID: "nope", Service: svc, Prompt: &fakePrompt{confirm: true}, Out: &bytes.Buffer{}}
	if err := n.Do(context.Background()); !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
