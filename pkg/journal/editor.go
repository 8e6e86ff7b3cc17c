// Package journal edits the reflection attached to a task and lays the
// collection out as a day-by-day journal.
package journal

import (
	"context"
	"errors"
	"strings"

	"tableflip.dev/unload/pkg/task"
)

// ErrNotOpen is returned by Save before Open.
var ErrNotOpen = errors.New("journal: no task open")

// Store is the part of the task store the editor needs. *app.Service
// satisfies it.
type Store interface {
	Get(id string) (*task.Task, error)
	Update(ctx context.Context, id string, p task.Patch) error
}

// Draft is the editable part of one task.
type Draft struct {
	ID           string
	Reflection   task.Reflection
	FinalMessage string
	Perspective  task.Perspective
	Worry        []string
}

// Editor edits one task's reflection at a time.
type Editor struct {
	store Store
	draft *Draft
}

// NewEditor returns an editor over s.
func NewEditor(s Store) *Editor {
	return &Editor{store: s}
}

// Open loads the task with id for editing. Tasks that only carry a legacy
// text reflection are parsed into the structured form here; saving writes the
// structured form and leaves the legacy text alone.
func (e *Editor) Open(id string) (Draft, error) {
	t, err := e.store.Get(id)
	if err != nil {
		return Draft{}, err
	}
	refl := t.Reflection.Clone()
	if refl.IsZero() && strings.TrimSpace(t.LegacyReflection) != "" {
		refl = task.ParseLegacyReflection(t.LegacyReflection)
	}
	e.draft = &Draft{
		ID:           t.ID,
		Reflection:   refl,
		FinalMessage: t.FinalMessage,
		Perspective:  t.Perspective,
		Worry:        append([]string(nil), t.Worry...),
	}
	return e.Draft(), nil
}

// Draft returns a copy of the open draft.
func (e *Editor) Draft() Draft {
	if e.draft == nil {
		return Draft{}
	}
	d := *e.draft
	d.Reflection = d.Reflection.Clone()
	d.Worry = append([]string(nil), d.Worry...)
	return d
}

// SetFocus replaces the focus sentence.
func (e *Editor) SetFocus(text string) {
	if e.draft != nil {
		e.draft.Reflection.Focus = strings.TrimSpace(text)
	}
}

// SetNote writes the note for perspective p. Blank text removes it.
func (e *Editor) SetNote(p task.Perspective, text string) {
	if e.draft != nil {
		e.draft.Reflection = e.draft.Reflection.WithNote(p, text)
	}
}

// SetMessage replaces the closing line.
func (e *Editor) SetMessage(text string) {
	if e.draft != nil {
		e.draft.FinalMessage = strings.TrimSpace(text)
	}
}

// SetPerspective records which lens the user reflected through.
func (e *Editor) SetPerspective(p task.Perspective) {
	if e.draft != nil {
		e.draft.Perspective = p
	}
}

// SetWorry replaces the worry labels. Blank labels are dropped.
func (e *Editor) SetWorry(labels []string) {
	if e.draft == nil {
		return
	}
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	e.draft.Worry = out
}

// Save writes the draft back through the store.
func (e *Editor) Save(ctx context.Context) error {
	if e.draft == nil {
		return ErrNotOpen
	}
	d := e.Draft()
	return e.store.Update(ctx, d.ID, task.Patch{
		Reflection:   &d.Reflection,
		FinalMessage: &d.FinalMessage,
		Perspective:  &d.Perspective,
		Worry:        d.Worry,
	})
}
