package suggest

import (
	"testing"

	"tableflip.dev/unload/pkg/task"
)

func TestControlRange(t *testing.T) {
	tests := []struct {
		owner    task.Owner
		min, max int
	}{
		{task.OwnerTheirs, 0, 20},
		{task.OwnerShared, 20, 60},
		{task.OwnerMine, 60, 100},
		{task.OwnerUnset, 0, 100},
		{task.Owner("Nobody"), 0, 100},
	}
	for _, tt := range tests {
		r := ControlRange(tt.owner)
		if r.Min != tt.min || r.Max != tt.max {
			t.Errorf("ControlRange(%q) = %s, want %d-%d", tt.owner, r, tt.min, tt.max)
		}
		if r.Advice == "" {
			t.Errorf("ControlRange(%q) has no advice", tt.owner)
		}
	}
}

func TestValidAndWarningAgree(t *testing.T) {
	for _, owner := range append(task.Owners(), task.OwnerUnset) {
		r := ControlRange(owner)
		for level := -5; level <= 105; level++ {
			valid := r.Valid(level)
			warning := r.Warning(level)
			if valid != (warning == "") {
				t.Fatalf("%s level %d: valid=%v warning=%q", owner, level, valid, warning)
			}
			switch r.Check(level) {
			case Low:
				if level >= r.Min {
					t.Fatalf("%s level %d reported low", owner, level)
				}
			case High:
				if level <= r.Max {
					t.Fatalf("%s level %d reported high", owner, level)
				}
			case OK:
				if level < r.Min || level > r.Max {
					t.Fatalf("%s level %d reported ok", owner, level)
				}
			}
		}
	}
}

func TestWarningDirection(t *testing.T) {
	r := ControlRange(task.OwnerShared)
	if w := r.Warning(10); w == "" || w == r.Warning(70) {
		t.Fatalf("expected distinct low and high warnings, got %q and %q", w, r.Warning(70))
	}
	if r.Warning(20) != "" || r.Warning(60) != "" {
		t.Fatalf("bounds are inclusive")
	}
}

func TestClosingQuote(t *testing.T) {
	tests := map[int]string{
		0:   QuoteLetGo,
		19:  QuoteLetGo,
		20:  QuoteYourPart,
		59:  QuoteYourPart,
		60:  QuoteAct,
		100: QuoteAct,
	}
	for level, want := range tests {
		if got := ClosingQuote(level); got != want {
			t.Errorf("ClosingQuote(%d) = %q, want %q", level, got, want)
		}
	}
}
