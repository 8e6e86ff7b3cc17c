// Package suggest maps a task's ownership to the control level range that
// fits it and explains readings that fall outside that range.
package suggest

import (
	"fmt"

	"tableflip.dev/unload/pkg/task"
)

// Range is a recommended inclusive span of control levels.
type Range struct {
	Min    int
	Max    int
	Advice string
}

// Verdict is the outcome of checking a level against a Range.
type Verdict int

const (
	OK Verdict = iota
	Low
	High
)

func (v Verdict) String() string {
	switch v {
	case Low:
		return "low"
	case High:
		return "high"
	default:
		return "ok"
	}
}

// ControlRange returns the suggested range for owner. Anything that is not a
// known owner gets the full 0-100 range.
func ControlRange(owner task.Owner) Range {
	switch owner {
	case task.OwnerTheirs:
		return Range{Min: 0, Max: 20,
			Advice: "This mostly belongs to someone else. Your influence is usually small; focus on how you respond."}
	case task.OwnerShared:
		return Range{Min: 20, Max: 60,
			Advice: "This is shared. You can move your part of it, not all of it."}
	case task.OwnerMine:
		return Range{Min: 60, Max: 100,
			Advice: "This is yours. You likely have more control than it feels like."}
	default:
		return Range{Min: 0, Max: 100,
			Advice: "Pick who owns this to get a suggested range."}
	}
}

// Check classifies level against r.
func (r Range) Check(level int) Verdict {
	switch {
	case level < r.Min:
		return Low
	case level > r.Max:
		return High
	default:
		return OK
	}
}

// Valid reports whether Min <= level <= Max.
func (r Range) Valid(level int) bool {
	return r.Check(level) == OK
}

// Warning returns "" for a valid level, otherwise a message naming the
// direction the level is off in.
func (r Range) Warning(level int) string {
	switch r.Check(level) {
	case Low:
		return fmt.Sprintf("%d%% looks too low here; the suggested range is %d%%-%d%%.", level, r.Min, r.Max)
	case High:
		return fmt.Sprintf("%d%% looks too high here; the suggested range is %d%%-%d%%.", level, r.Min, r.Max)
	default:
		return ""
	}
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// Closing quotes shown after a task is recorded, banded by control level.
const (
	QuoteLetGo    = "Some things are not yours to carry. Set this one down."
	QuoteYourPart = "Do your part, then let the rest be."
	QuoteAct      = "This is within reach. One small step today is enough."
)

// ClosingQuote picks the quote for level: below 20, 20 to 59, 60 and above.
func ClosingQuote(level int) string {
	switch {
	case level < 20:
		return QuoteLetGo
	case level < 60:
		return QuoteYourPart
	default:
		return QuoteAct
	}
}
