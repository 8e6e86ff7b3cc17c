package advice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tableflip.dev/unload/pkg/task"
)

type fakeGenerator struct {
	prompt string
	reply  string
	err    error
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.reply, f.err
}

func sample() *task.Task {
	return &task.Task{
		ID:           "a",
		Category:     []string{"面試壓力"},
		Worry:        []string{"擔心表現"},
		Owner:        task.OwnerMine,
		ControlLevel: 75,
		Reflection:   task.Reflection{Focus: "private"},
	}
}

func TestPrompt(t *testing.T) {
	p := Prompt(sample())
	for _, want := range []string{"面試壓力", "擔心表現", "mine", "75%", "60-100", "Negative"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q:\n%s", want, p)
		}
	}
	if strings.Contains(p, "private") {
		t.Fatalf("reflection text must not be sent")
	}
}

func TestAdvise(t *testing.T) {
	gen := &fakeGenerator{reply: "  breathe, then prepare one answer  "}
	a := &Advisor{Generator: gen}
	got, err := a.Advise(context.Background(), sample())
	if err != nil {
		t.Fatalf("advise: %v", err)
	}
	if got != "breathe, then prepare one answer" {
		t.Fatalf("unexpected advice %q", got)
	}
	if gen.prompt == "" {
		t.Fatalf("generator not called")
	}
}

func TestAdviseFailures(t *testing.T) {
	var none *Advisor
	if _, err := none.Advise(context.Background(), sample()); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
	boom := errors.New("quota")
	a := &Advisor{Generator: &fakeGenerator{err: boom}}
	if _, err := a.Advise(context.Background(), sample()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped generator error, got %v", err)
	}
	a = &Advisor{Generator: &fakeGenerator{reply: " "}}
	if _, err := a.Advise(context.Background(), sample()); err == nil {
		t.Fatalf("expected error for empty reply")
	}
}

func TestNewGenAIWithoutKey(t *testing.T) {
	if _, err := NewGenAI(context.Background(), "", ""); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
}
