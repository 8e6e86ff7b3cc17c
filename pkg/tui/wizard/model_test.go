package wizard

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/unload/pkg/task"
	flow "tableflip.dev/unload/pkg/wizard"
)

type fakeAdder struct {
	drafts []task.Draft
}

func (f *fakeAdder) Add(_ context.Context, d task.Draft) (*task.Task, error) {
	f.drafts = append(f.drafts, d)
	return &task.Task{ID: "abcdef0123", CreatedAt: task.Timestamp{Time: time.Now()},
		Category: d.Category, Owner: d.Owner, ControlLevel: d.ControlLevel, Reflection: d.Reflection}, nil
}

func stripANSIString(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func press(t *testing.T, m *Model, keys ...tea.KeyPressMsg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		if next != m {
			t.Fatalf("unexpected model swap")
		}
	}
	return cmd
}

func typeText(t *testing.T, m *Model, s string) {
	t.Helper()
	for _, r := range s {
		press(t, m, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func view(m *Model) string {
	v, _ := m.View()
	return stripANSIString(v)
}

var (
	down  = tea.KeyPressMsg{Code: tea.KeyDown}
	right = tea.KeyPressMsg{Code: tea.KeyRight}
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
	space = tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	esc   = tea.KeyPressMsg{Code: tea.KeyEscape}
)

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestWalkThrough(t *testing.T) {
	adder := &fakeAdder{}
	m := New(context.Background(), adder)
	m.SetSize(100, 40)

	press(t, m, down, space) // 面試壓力
	if !m.Machine().HasCategory("面試壓力") {
		t.Fatalf("expected 面試壓力 selected, have %v", m.Machine().Categories())
	}
	press(t, m, enter)
	if m.Machine().Step() != flow.StepFocus {
		t.Fatalf("expected focus step, got %s", m.Machine().Step())
	}

	typeText(t, m, "friday")
	if got := m.Machine().Focus(); got != "friday" {
		t.Fatalf("expected typed focus, got %q", got)
	}
	press(t, m, enter)

	press(t, m, enter) // first owner row is Mine
	if m.Machine().Owner() != task.OwnerMine || m.Machine().Step() != flow.StepControl {
		t.Fatalf("expected Mine on control step, got %s on %s", m.Machine().Owner(), m.Machine().Step())
	}
	if m.Machine().Control() != 60 {
		t.Fatalf("slider should start inside the range, got %d", m.Machine().Control())
	}
	press(t, m, right, right, right)
	if m.Machine().Control() != 75 {
		t.Fatalf("expected 75, got %d", m.Machine().Control())
	}
	press(t, m, enter, enter)

	res, ok := m.Result()
	if !ok || res.Task.ControlLevel != 75 || len(adder.drafts) != 1 {
		t.Fatalf("expected a recorded task at 75, got %+v", res)
	}
	if !strings.Contains(view(m), res.Quote) {
		t.Fatalf("result view should show the closing quote")
	}
	if !isQuit(press(t, m, enter)) {
		t.Fatalf("enter on the result should quit")
	}
}

func TestThirdCategoryShowsNotice(t *testing.T) {
	m := New(context.Background(), &fakeAdder{})
	press(t, m, space, down, space, down, space)
	if got := len(m.Machine().Categories()); got != 2 {
		t.Fatalf("expected 2 categories, got %d", got)
	}
	if m.Machine().Notice() != flow.NoticeMaxSelections {
		t.Fatalf("expected max selections notice, got %q", m.Machine().Notice())
	}
	// The modal wraps long lines inside its frame.
	if !strings.Contains(flatten(view(m)), flatten(flow.NoticeMaxSelections)) {
		t.Fatalf("expected notice in view")
	}
}

func flatten(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\n', '│', '┃', '|':
			return -1
		}
		return r
	}, s)
}

func TestOutOfRangeWarning(t *testing.T) {
	m := New(context.Background(), &fakeAdder{})
	press(t, m, space, enter)
	typeText(t, m, "x")
	press(t, m, enter, enter)
	typeText(t, m, "40")
	if m.Machine().Control() != 40 {
		t.Fatalf("expected typed level 40, got %d", m.Machine().Control())
	}
	if !strings.Contains(view(m), "too low") {
		t.Fatalf("expected a low warning, got:\n%s", view(m))
	}
	press(t, m, enter)
	if m.Machine().Step() != flow.StepControl {
		t.Fatalf("out of range level must not advance")
	}
}

func TestEscCancels(t *testing.T) {
	m := New(context.Background(), &fakeAdder{})
	if !isQuit(press(t, m, esc)) {
		t.Fatalf("esc should quit")
	}
	if m.Machine().Step() != flow.Cancelled {
		t.Fatalf("expected cancelled, got %s", m.Machine().Step())
	}
	if _, ok := m.Result(); ok {
		t.Fatalf("cancelled wizard has no result")
	}
}

func TestBackFromFirstStepQuits(t *testing.T) {
	m := New(context.Background(), &fakeAdder{})
	if !isQuit(press(t, m, tea.KeyPressMsg{Code: 'b', Mod: tea.ModCtrl})) {
		t.Fatalf("ctrl+b on the first step should quit")
	}
}
