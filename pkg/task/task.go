// Package task holds the record model for journal entries: a worry captured
// with its category, ownership and perceived control level, plus the
// reflection written about it later.
package task

import (
	"strings"
)

// Task is one user-authored worry/reflection entry.
type Task struct {
	ID           string    `json:"id"`
	CreatedAt    Timestamp `json:"createdAt"`
	Category     []string  `json:"category"`
	Worry        []string  `json:"worry,omitempty"`
	Owner        Owner     `json:"owner"`
	ControlLevel int       `json:"controlLevel"`

	Reflection       Reflection  `json:"reflection"`
	LegacyReflection string      `json:"legacyReflection,omitempty"`
	FinalMessage     string      `json:"finalMessage,omitempty"`
	Perspective      Perspective `json:"perspective,omitempty"`
	Polarity         Polarity    `json:"polarity,omitempty"`
}

// Draft carries everything needed to create a Task. ID and CreatedAt are
// assigned by the store.
type Draft struct {
	Category     []string
	Worry        []string
	Owner        Owner
	ControlLevel int
	Reflection   Reflection
	FinalMessage string
	Perspective  Perspective
	Polarity     Polarity
}

// Patch lists the fields that may change after creation. Nil fields are left
// untouched.
type Patch struct {
	Reflection   *Reflection
	FinalMessage *string
	Perspective  *Perspective
	Worry        []string
}

// Empty reports whether the patch would change nothing.
func (p Patch) Empty() bool {
	return p.Reflection == nil && p.FinalMessage == nil && p.Perspective == nil && p.Worry == nil
}

// Apply merges the patch into t. Category, Owner, ControlLevel, ID and
// CreatedAt are write-once and never touched.
func (p Patch) Apply(t *Task) {
	if t == nil {
		return
	}
	if p.Reflection != nil {
		t.Reflection = p.Reflection.Clone()
	}
	if p.FinalMessage != nil {
		t.FinalMessage = *p.FinalMessage
	}
	if p.Perspective != nil {
		t.Perspective = *p.Perspective
	}
	if p.Worry != nil {
		t.Worry = cloneStrings(p.Worry)
	}
}

// EffectivePolarity defaults an unset polarity to Negative.
func (t *Task) EffectivePolarity() Polarity {
	if t == nil || t.Polarity == "" {
		return Negative
	}
	return t.Polarity
}

// Labels returns category and worry labels together, categories first.
func (t *Task) Labels() []string {
	out := make([]string, 0, len(t.Category)+len(t.Worry))
	out = append(out, t.Category...)
	out = append(out, t.Worry...)
	return out
}

// Title is a one-line summary used by printers and the MCP projection.
func (t *Task) Title() string {
	if f := strings.TrimSpace(t.Reflection.Focus); f != "" {
		return f
	}
	return strings.Join(t.Category, ", ")
}

// Clone returns a deep copy of t.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	cp := *t
	cp.Category = cloneStrings(t.Category)
	cp.Worry = cloneStrings(t.Worry)
	cp.Reflection = t.Reflection.Clone()
	return &cp
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
