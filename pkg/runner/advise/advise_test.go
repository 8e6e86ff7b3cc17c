package advise

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/unload/pkg/advice"
	"tableflip.dev/unload/pkg/app"
	"tableflip.dev/unload/pkg/store"
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

func newService(t *testing.T) *app.Service {
	t.Helper()
	p, err := store.OpenDiskv(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = p.Close() })
	return app.New(p, nil)
}

func TestAdviseNewest(t *testing.T) {
	color.NoColor = true
	svc := newService(t)
	for _, c := range []string{"財務", "健康"} {
		if _, err := svc.Add(context.Background(), task.Draft{
			Category: []string{c}, Owner: task.OwnerMine, ControlLevel: 70,
		}); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	gen := &fakeGenerator{reply: " Take a short walk. "}
	var out bytes.Buffer
	n := Advise{Service: svc, Generator: gen, Out: &out}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !strings.Contains(gen.prompt, "健康") {
		t.Fatalf("expected the newest task in the prompt:\n%s", gen.prompt)
	}
	if !strings.Contains(out.String(), "Take a short walk.") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestAdviseDisabled(t *testing.T) {
	svc := newService(t)
	if _, err := svc.Add(context.Background(), task.Draft{
		Category: []string{"財務"}, Owner: task.OwnerMine, ControlLevel: 70,
	}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	n := Advise{Service: svc, Out: &bytes.Buffer{}}
	if err := n.Do(context.Background()); !errors.Is(err, advice.ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
}

func TestAdviseEmpty(t *testing.T) {
	n := Advise{Service: newService(t), Generator: &fakeGenerator{reply: "x"}}
	if err := n.Do(context.Background()); err == nil {
		t.Fatalf("expected an error with nothing recorded")
	}
}

func TestAdviseFailureIsInline(t *testing.T) {
	color.NoColor = true
	svc := newService(t)
	if _, err := svc.Add(context.Background(), task.Draft{
		Category: []string{"財務"}, Owner: task.OwnerShared, ControlLevel: 40,
	}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	var out bytes.Buffer
	n := Advise{Service: svc, Generator: &fakeGenerator{err: errors.New("quota exceeded")}, Out: &out}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("a failed request should not fail the command: %v", err)
	}
	if !strings.Contains(out.String(), "Advice unavailable") || !strings.Contains(out.String(), "quota exceeded") {
		t.Fatalf("expected an inline notice:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "財務") {
		t.Fatalf("the task should still be shown:\n%s", out.String())
	}
}
