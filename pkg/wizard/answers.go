package wizard

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/unload/pkg/task"
)

// Answers are the choices of a whole entry given up front, for callers with
// no interactive surface.
type Answers struct {
	Category      []string
	OtherCategory string
	Worry         []string
	OtherWorry    string
	Focus         string
	Aspect        task.Aspect
	Owner         task.Owner
	ControlLevel  int
	Message       string
	Polarity      task.Polarity
}

// Fill walks a fresh Machine through a, step by step, so the same gates
// apply as for an interactive entry, then submits it to adder.
func Fill(ctx context.Context, adder Adder, a Answers) (Result, error) {
	m := New()
	m.SetPolarity(a.Polarity)
	for _, c := range a.Category {
		m.ToggleCategory(c)
	}
	m.SetOtherCategory(a.OtherCategory)
	if err := gate(m); err != nil {
		return Result{}, err
	}
	m.SetFocus(a.Focus)
	if a.Aspect != task.AspectNone {
		m.ToggleAspect(a.Aspect)
	}
	for _, w := range a.Worry {
		m.ToggleWorry(w)
	}
	m.SetOtherWorry(a.OtherWorry)
	if err := gate(m); err != nil {
		return Result{}, err
	}
	m.SetOwner(a.Owner)
	if err := gate(m); err != nil {
		return Result{}, err
	}
	m.SetControl(a.ControlLevel)
	if err := gate(m); err != nil {
		return Result{}, err
	}
	m.SetMessage(a.Message)

	return m.Submit(ctx, adder)
}

func gate(m *Machine) error {
	if m.Next() {
		return nil
	}
	switch m.Step() {
	case StepCategory:
		return errors.New("wizard: at least one category is required; the Other category needs other_category text")
	case StepFocus:
		return errors.New("wizard: focus is required; the Other worry needs other_worry text")
	case StepOwner:
		return errors.New("wizard: owner is required")
	case StepControl:
		return errors.New("wizard: " + m.Warning())
	}
	return fmt.Errorf("wizard: cannot leave step %s", m.Step())
}
