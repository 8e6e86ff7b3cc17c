package session

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/unload/pkg/session"
	"tableflip.dev/unload/pkg/store"
	"tableflip.dev/unload/pkg/task"
)

type fakePrompt struct {
	answers map[string]string
}

func (f *fakePrompt) Confirm(string) (bool, error) { return true, nil }

func (f *fakePrompt) Text(label, def string, _ bool) (string, error) {
	if a, ok := f.answers[label]; ok {
		return a, nil
	}
	return def, nil
}

func (f *fakePrompt) SelectTask(_ string, tasks []*task.Task) (*task.Task, error) {
	return tasks[0], nil
}

func TestOnboardAndWhoAmI(t *testing.T) {
	color.NoColor = true
	ctx := context.Background()
	provider, err := session.NewLocal(t.TempDir(), store.Identity{Email: "amy@example.com"})
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	var out bytes.Buffer
	who := WhoAmI{Provider: provider, Out: &out}
	if err := who.Do(ctx); err != nil {
		t.Fatalf("WhoAmI: %v", err)
	}
	if !strings.Contains(out.String(), "Not signed in") {
		t.Fatalf("unexpected output %q", out.String())
	}

	out.Reset()
	on := Onboard{
		Interactive: true,
		Provider:    provider,
		Prompt:      &fakePrompt{answers: map[string]string{"Name": "Amy"}},
		Out:         &out,
	}
	if err := on.Do(ctx); err != nil {
		t.Fatalf("Onboard: %v", err)
	}
	if !strings.Contains(out.String(), "Welcome, Amy.") {
		t.Fatalf("unexpected output %q", out.String())
	}

	out.Reset()
	if err := who.Do(ctx); err != nil {
		t.Fatalf("WhoAmI: %v", err)
	}
	for _, want := range []string{"Amy", "amy@example.com", "true"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("missing %q in:\n%s", want, out.String())
		}
	}

	out.Reset()
	so := SignOut{Provider: provider, Out: &out}
	if err := so.Do(ctx); err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	s, _ := provider.Current(ctx)
	if s.Onboarded {
		t.Fatalf("expected onboarding to be forgotten")
	}
}

func TestOnboardNeedsName(t *testing.T) {
	provider, err := session.NewLocal(t.TempDir(), store.Identity{})
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}
	on := Onboard{Provider: provider, Out: &bytes.Buffer{}}
	if err := on.Do(context.Background()); err == nil {
		t.Fatalf("expected an error without a name")
	}
}
