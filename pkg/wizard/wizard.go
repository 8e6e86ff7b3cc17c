// Package wizard is the five step entry flow that turns a user's choices into
// one task. It holds no UI; front-ends drive it through its inputs and read
// its gates to decide what to enable.
package wizard

import (
	"context"
	"errors"
	"strings"

	"tableflip.dev/unload/pkg/suggest"
	"tableflip.dev/unload/pkg/task"
)

// Step is the active stage of the flow.
type Step int

// Wizard steps, in order. Cancelled and StepResult are terminal.
const (
	Cancelled Step = iota - 1
	_
	StepCategory
	StepFocus
	StepOwner
	StepControl
	StepMessage
	StepResult
)

func (s Step) String() string {
	switch s {
	case Cancelled:
		return "cancelled"
	case StepCategory:
		return "category"
	case StepFocus:
		return "focus"
	case StepOwner:
		return "owner"
	case StepControl:
		return "control"
	case StepMessage:
		return "message"
	case StepResult:
		return "result"
	}
	return "unknown"
}

// MaxCategories is how many categories stay selected at once.
const MaxCategories = 2

// DefaultControl is the slider position a new wizard starts at.
const DefaultControl = 50

// NoticeMaxSelections is shown after a selection pushed out the oldest one.
const NoticeMaxSelections = "You can pick up to 2 categories; the earliest one was replaced."

// ErrNotReady is returned by Submit outside the final step.
var ErrNotReady = errors.New("wizard: submit is only available on the final step")

// Adder creates tasks. *app.Service satisfies it.
type Adder interface {
	Add(ctx context.Context, d task.Draft) (*task.Task, error)
}

// Result is what the terminal step shows.
type Result struct {
	Task  *task.Task
	Quote string
}

// Machine is one run of the wizard. The zero value is not usable; call New.
type Machine struct {
	step Step

	categories    []string
	otherCategory string
	polarity      task.Polarity

	focus      string
	aspect     task.Aspect
	worries    []string
	otherWorry string

	owner   task.Owner
	control int

	message string

	notice string
	result *Result
}

// New starts a wizard on the category step.
func New() *Machine {
	return &Machine{step: StepCategory, control: DefaultControl}
}

func (m *Machine) Step() Step                { return m.step }
func (m *Machine) Categories() []string      { return append([]string(nil), m.categories...) }
func (m *Machine) OtherCategory() string     { return m.otherCategory }
func (m *Machine) Polarity() task.Polarity   { return m.polarity }
func (m *Machine) Focus() string             { return m.focus }
func (m *Machine) Aspect() task.Aspect       { return m.aspect }
func (m *Machine) Worries() []string         { return append([]string(nil), m.worries...) }
func (m *Machine) OtherWorry() string        { return m.otherWorry }
func (m *Machine) Owner() task.Owner         { return m.owner }
func (m *Machine) Control() int              { return m.control }
func (m *Machine) Message() string           { return m.message }
func (m *Machine) Range() suggest.Range      { return suggest.ControlRange(m.owner) }
func (m *Machine) Done() bool                { return m.step == StepResult || m.step == Cancelled }
func (m *Machine) HasCategory(l string) bool { return contains(m.categories, normalize(l)) }
func (m *Machine) HasWorry(l string) bool    { return contains(m.worries, normalize(l)) }

// Result returns the outcome once the wizard reached StepResult.
func (m *Machine) Result() (Result, bool) {
	if m.result == nil {
		return Result{}, false
	}
	return *m.result, true
}

// Notice is the informational line for the current step, if any.
func (m *Machine) Notice() string { return m.notice }

// Warning explains why the control step cannot advance. It is empty on other
// steps and for in-range levels.
func (m *Machine) Warning() string {
	if m.step != StepControl {
		return ""
	}
	return m.Range().Warning(m.control)
}

// ToggleCategory selects or deselects label. Selecting beyond MaxCategories
// drops the oldest selection and sets the notice.
func (m *Machine) ToggleCategory(label string) {
	if m.step != StepCategory {
		return
	}
	label = normalize(label)
	if label == "" {
		return
	}
	if i := indexOf(m.categories, label); i >= 0 {
		m.categories = append(m.categories[:i:i], m.categories[i+1:]...)
		m.notice = ""
		return
	}
	m.categories = append(m.categories, label)
	if len(m.categories) > MaxCategories {
		m.categories = append([]string(nil), m.categories[len(m.categories)-MaxCategories:]...)
		m.notice = NoticeMaxSelections
	}
}

// SetOtherCategory sets the free text used when Other is selected.
func (m *Machine) SetOtherCategory(text string) {
	if m.step == StepCategory {
		m.otherCategory = text
	}
}

// SetPolarity frames the event as positive or negative.
func (m *Machine) SetPolarity(p task.Polarity) {
	if m.step == StepCategory {
		m.polarity = p
	}
}

// SetFocus sets the focus sentence.
func (m *Machine) SetFocus(text string) {
	if m.step == StepFocus {
		m.focus = text
	}
}

// ToggleAspect tags the focus with a, or clears the tag when a is already set.
func (m *Machine) ToggleAspect(a task.Aspect) {
	if m.step != StepFocus {
		return
	}
	if m.aspect == a {
		m.aspect = task.AspectNone
		return
	}
	m.aspect = a
}

// ToggleWorry selects or deselects a worry label.
func (m *Machine) ToggleWorry(label string) {
	if m.step != StepFocus {
		return
	}
	label = normalize(label)
	if label == "" {
		return
	}
	if i := indexOf(m.worries, label); i >= 0 {
		m.worries = append(m.worries[:i:i], m.worries[i+1:]...)
		return
	}
	m.worries = append(m.worries, label)
}

// SetOtherWorry sets the free text used when the Other worry is selected.
func (m *Machine) SetOtherWorry(text string) {
	if m.step == StepFocus {
		m.otherWorry = text
	}
}

// SetOwner picks who the situation belongs to.
func (m *Machine) SetOwner(o task.Owner) {
	if m.step == StepOwner {
		m.owner = o
	}
}

// SetControl moves the slider, clamped into 0-100.
func (m *Machine) SetControl(level int) {
	if m.step == StepControl {
		m.control = clamp(level)
	}
}

// Nudge moves the slider by delta.
func (m *Machine) Nudge(delta int) {
	m.SetControl(m.control + delta)
}

// SetMessage sets the closing line.
func (m *Machine) SetMessage(text string) {
	if m.step == StepMessage {
		m.message = text
	}
}

// CanAdvance reports whether the current step's gate is satisfied. The
// message step has no gate.
func (m *Machine) CanAdvance() bool {
	switch m.step {
	case StepCategory:
		if len(m.categories) == 0 {
			return false
		}
		return !contains(m.categories, task.Other) || !blank(m.otherCategory)
	case StepFocus:
		if blank(m.focus) {
			return false
		}
		return !contains(m.worries, task.Other) || !blank(m.otherWorry)
	case StepOwner:
		return m.owner != task.OwnerUnset
	case StepControl:
		return m.Range().Valid(m.control)
	case StepMessage:
		return true
	}
	return false
}

// Next moves forward one step when the gate allows it. The message step is
// left through Submit instead.
func (m *Machine) Next() bool {
	if m.step < StepCategory || m.step >= StepMessage || !m.CanAdvance() {
		return false
	}
	m.step++
	m.notice = ""
	return true
}

// Back returns to the previous step. On the first step it cancels the wizard.
func (m *Machine) Back() {
	switch {
	case m.step == StepCategory:
		m.step = Cancelled
	case m.step > StepCategory && m.step <= StepMessage:
		m.step--
	}
	m.notice = ""
}

// Cancel abandons the wizard from any non-terminal step.
func (m *Machine) Cancel() {
	if !m.Done() {
		m.step = Cancelled
	}
}

// Draft builds the task draft from the current answers, with Other replaced
// by the user's free text.
func (m *Machine) Draft() task.Draft {
	return task.Draft{
		Category:     resolve(m.categories, m.otherCategory),
		Worry:        resolve(m.worries, m.otherWorry),
		Owner:        m.owner,
		ControlLevel: m.control,
		Reflection: task.Reflection{
			Focus:  strings.TrimSpace(m.focus),
			Aspect: m.aspect,
		},
		FinalMessage: strings.TrimSpace(m.message),
		Polarity:     m.polarity,
	}
}

// Submit records the task through a and moves to StepResult. If a reports an
// error without creating anything, the wizard stays on the message step so
// the user can retry. A task that was created but failed to persist still
// completes the wizard, and the error is returned alongside the result.
func (m *Machine) Submit(ctx context.Context, a Adder) (Result, error) {
	if m.step != StepMessage {
		return Result{}, ErrNotReady
	}
	created, err := a.Add(ctx, m.Draft())
	if created == nil {
		if err == nil {
			err = errors.New("wizard: adder returned no task")
		}
		return Result{}, err
	}
	res := Result{Task: created, Quote: suggest.ClosingQuote(created.ControlLevel)}
	m.result = &res
	m.step = StepResult
	m.notice = ""
	return res, err
}

func resolve(labels []string, other string) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if l == task.Other {
			l = strings.TrimSpace(other)
			if l == "" {
				continue
			}
		}
		if !contains(out, l) {
			out = append(out, l)
		}
	}
	return out
}

func normalize(label string) string {
	label = strings.TrimSpace(label)
	if task.IsOther(label) {
		return task.Other
	}
	return label
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}

func contains(list []string, s string) bool { return indexOf(list, s) >= 0 }

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
