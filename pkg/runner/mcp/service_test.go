package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/unload/pkg/app"
	"tableflip.dev/unload/pkg/cue"
	"tableflip.dev/unload/pkg/history"
	"tableflip.dev/unload/pkg/store"
	"tableflip.dev/unload/pkg/task"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	p, err := store.OpenDiskv(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	tasks := app.New(p, nil)
	if _, err := tasks.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	svc := NewService(tasks)
	svc.Now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func interview() CreateTaskOptions {
	return CreateTaskOptions{
		Category:     []string{"面試壓力"},
		Worry:        []string{"擔心表現"},
		Focus:        "Friday's interview",
		Owner:        task.OwnerMine,
		ControlLevel: 75,
	}
}

func TestServiceCreateTask(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	dto, quote, err := svc.CreateTask(ctx, interview())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.ID == "" || dto.Owner != "Mine" || dto.ControlLevel != 75 || dto.Focus != "Friday's interview" {
		t.Fatalf("unexpected task %+v", dto)
	}
	if dto.SuggestedRange.Min != 60 || dto.Polarity != "Negative" {
		t.Fatalf("unexpected derived fields %+v", dto)
	}
	if quote == "" {
		t.Fatalf("expected a closing quote")
	}

	got, err := svc.TaskByID(ctx, dto.ID)
	if err != nil || got.ID != dto.ID {
		t.Fatalf("lookup: %v", err)
	}
}

func TestServiceCreateTaskGates(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	low := interview()
	low.ControlLevel = 30
	if _, _, err := svc.CreateTask(ctx, low); err == nil || !strings.Contains(err.Error(), "too low") {
		t.Fatalf("expected range warning, got %v", err)
	}

	noOwner := interview()
	noOwner.Owner = task.OwnerUnset
	if _, _, err := svc.CreateTask(ctx, noOwner); err == nil || !strings.Contains(err.Error(), "owner") {
		t.Fatalf("expected owner error, got %v", err)
	}

	other := interview()
	other.Category = []string{task.Other}
	if _, _, err := svc.CreateTask(ctx, other); err == nil {
		t.Fatalf("expected error for Other without text")
	}
	other.OtherCategory = "搬家"
	dto, _, err := svc.CreateTask(ctx, other)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.Category[0] != "搬家" {
		t.Fatalf("expected free text category, got %v", dto.Category)
	}

	if n := len(svc.ListTasks(ctx, history.Query{})); n != 1 {
		t.Fatalf("rejected drafts must not be stored, have %d", n)
	}
	if n := len(svc.ListTasks(ctx, history.Query{Category: task.Other})); n != 1 {
		t.Fatalf("expected the Other bucket to hold 1 task, got %d", n)
	}
}

func TestServiceUpdateReflection(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	dto, _, err := svc.CreateTask(ctx, interview())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	note := "I have prepared"
	msg := "enough"
	persp := task.PerspectiveReality
	got, err := svc.UpdateReflection(ctx, dto.ID, ReflectionOptions{
		Notes:        map[task.Perspective]string{persp: note},
		Perspective:  &persp,
		FinalMessage: &msg,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Notes["reality"] != note || got.FinalMessage != msg || got.Perspective != "reality" {
		t.Fatalf("unexpected reflection %+v", got)
	}
	if got.Focus != "Friday's interview" || got.ControlLevel != 75 {
		t.Fatalf("untouched fields changed: %+v", got)
	}
}

func TestServiceDeleteTask(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	dto, _, err := svc.CreateTask(ctx, interview())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.DeleteTask(ctx, dto.ID, false); !errors.Is(err, ErrConfirmRequired) {
		t.Fatalf("expected ErrConfirmRequired, got %v", err)
	}
	if _, err := svc.TaskByID(ctx, dto.ID); err != nil {
		t.Fatalf("unconfirmed delete removed the task")
	}
	deleted, err := svc.DeleteTask(ctx, dto.ID, true)
	if err != nil || !deleted {
		t.Fatalf("delete: %v %v", deleted, err)
	}
	if _, err := svc.TaskByID(ctx, dto.ID); !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.DeleteTask(ctx, "missing", true); !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestServiceCueAndStats(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	if got := svc.DailyCue(ctx); got.Source != string(cue.SourceDate) {
		t.Fatalf("empty journal should use the date cue, got %s", got.Source)
	}
	if _, _, err := svc.CreateTask(ctx, interview()); err != nil {
		t.Fatalf("create: %v", err)
	}
	if got := svc.DailyCue(ctx); got.Source != string(cue.SourceRecords) {
		t.Fatalf("expected the cue to come from records, got %s", got.Source)
	}

	s := svc.Stats(ctx, 5)
	if s.Windows.Total != 1 || s.ByOwner[task.OwnerMine] != 1 {
		t.Fatalf("unexpected stats %+v", s)
	}
	if r := svc.SuggestRange(task.OwnerShared); r.Min != 20 || r.Max != 60 {
		t.Fatalf("unexpected range %+v", r)
	}
}

func TestArgument(t *testing.T) {
	for _, v := range []any{"a", []string{"a"}, []any{"a"}} {
		if got := argument(v); got != "a" {
			t.Fatalf("argument(%#v) = %q", v, got)
		}
	}
	if got := argument(nil); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
