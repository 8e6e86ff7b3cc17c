package wizard

import (
	"context"
	"strings"
	"testing"

	"tableflip.dev/unload/pkg/task"
)

func TestFill(t *testing.T) {
	adder := &recordingAdder{}
	res, err := Fill(context.Background(), adder, Answers{
		Category:     []string{"面試壓力"},
		Focus:        "the interview on Friday",
		Worry:        []string{"擔心表現"},
		Owner:        task.OwnerMine,
		ControlLevel: 80,
		Message:      "prepare and rest",
	})
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if res.Task == nil || res.Quote == "" {
		t.Fatalf("expected a task and a quote, got %+v", res)
	}
	if got := adder.drafts[0].FinalMessage; got != "prepare and rest" {
		t.Fatalf("final message = %q", got)
	}
}

func TestFillGates(t *testing.T) {
	base := Answers{
		Category:     []string{"面試壓力"},
		Focus:        "the interview",
		Owner:        task.OwnerMine,
		ControlLevel: 80,
	}
	for name, tc := range map[string]struct {
		mutate func(a *Answers)
		want   string
	}{
		"no category":  {func(a *Answers) { a.Category = nil }, "category"},
		"other blank":  {func(a *Answers) { a.Category = []string{task.Other} }, "other_category"},
		"no focus":     {func(a *Answers) { a.Focus = " " }, "focus"},
		"no owner":     {func(a *Answers) { a.Owner = task.OwnerUnset }, "owner"},
		"out of range": {func(a *Answers) { a.ControlLevel = 10 }, "too low"},
	} {
		t.Run(name, func(t *testing.T) {
			a := base
			tc.mutate(&a)
			adder := &recordingAdder{}
			_, err := Fill(context.Background(), adder, a)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
			if !strings.HasPrefix(err.Error(), "wizard: ") {
				t.Fatalf("gate errors should carry the package prefix, got %q", err)
			}
			if len(adder.drafts) != 0 {
				t.Fatalf("nothing should be submitted past a failing gate")
			}
		})
	}
}
