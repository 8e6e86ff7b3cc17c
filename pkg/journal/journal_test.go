package journal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/unload/pkg/task"
)

var errMissing = errors.New("missing")

type fakeStore struct {
	tasks   map[string]*task.Task
	patches []task.Patch
}

func (f *fakeStore) Get(id string) (*task.Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return nil, errMissing
	}
	return t.Clone(), nil
}

func (f *fakeStore) Update(_ context.Context, id string, p task.Patch) error {
	f.patches = append(f.patches, p)
	p.Apply(f.tasks[id])
	return nil
}

func TestEditorSavesStructuredReflection(t *testing.T) {
	store := &fakeStore{tasks: map[string]*task.Task{
		"a": {ID: "a", Owner: task.OwnerMine, ControlLevel: 70, Category: []string{"健康"},
			Reflection: task.Reflection{Focus: "sleep"}},
	}}
	ed := NewEditor(store)
	if _, err := ed.Open("a"); err != nil {
		t.Fatalf("open: %v", err)
	}
	ed.SetNote(task.PerspectiveReality, "I slept five hours")
	ed.SetNote(task.PerspectiveDistance, "  ")
	ed.SetMessage(" rest tonight ")
	ed.SetPerspective(task.PerspectiveReality)
	ed.SetWorry([]string{"覺得疲憊", " "})
	if err := ed.Save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := store.tasks["a"]
	want := &task.Task{
		ID: "a", Owner: task.OwnerMine, ControlLevel: 70, Category: []string{"健康"},
		Worry:        []string{"覺得疲憊"},
		Reflection:   task.Reflection{Focus: "sleep", Notes: map[task.Perspective]string{task.PerspectiveReality: "I slept five hours"}},
		FinalMessage: "rest tonight",
		Perspective:  task.PerspectiveReality,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected task (-want +got):\n%s", diff)
	}
}

func TestEditorParsesLegacyText(t *testing.T) {
	store := &fakeStore{tasks: map[string]*task.Task{
		"old": {ID: "old", LegacyReflection: "我在意的是：面試\n現實面：準備了三天"},
	}}
	d, err := NewEditor(store).Open("old")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if d.Reflection.Focus != "面試" || d.Reflection.Note(task.PerspectiveReality) != "準備了三天" {
		t.Fatalf("legacy text not parsed: %+v", d.Reflection)
	}
}

func TestEditorErrors(t *testing.T) {
	ed := NewEditor(&fakeStore{tasks: map[string]*task.Task{}})
	if err := ed.Save(context.Background()); !errors.Is(err, ErrNotOpen) {
		t.Fatalf("expected ErrNotOpen, got %v", err)
	}
	if _, err := ed.Open("nope"); !errors.Is(err, errMissing) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestEntriesGroupByDay(t *testing.T) {
	now := time.Date(2024, time.July, 10, 20, 0, 0, 0, time.UTC)
	at := func(id string, ts time.Time) *task.Task {
		return &task.Task{ID: id, CreatedAt: task.Timestamp{Time: ts}}
	}
	days := Entries([]*task.Task{
		at("y1", now.Add(-22*time.Hour)),
		at("t1", now.Add(-3*time.Hour)),
		at("old", time.Date(2023, time.December, 31, 9, 0, 0, 0, time.UTC)),
		at("t2", now.Add(-time.Hour)),
	}, now)

	var labels []string
	var first []string
	for _, d := range days {
		labels = append(labels, d.Label)
		first = append(first, d.Tasks[0].ID)
	}
	if diff := cmp.Diff([]string{"Today", "Yesterday", "Sun Dec 31, 2023"}, labels); diff != "" {
		t.Fatalf("unexpected labels (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"t2", "y1", "old"}, first); diff != "" {
		t.Fatalf("unexpected ordering (-want +got):\n%s", diff)
	}
}
