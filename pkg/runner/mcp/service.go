// Package mcp provides the Model Context Protocol server integration for unload.
package mcp

import (
	"context"
	"errors"
	"strings"
	"time"

	"tableflip.dev/unload/pkg/app"
	"tableflip.dev/unload/pkg/cue"
	"tableflip.dev/unload/pkg/history"
	"tableflip.dev/unload/pkg/journal"
	"tableflip.dev/unload/pkg/suggest"
	"tableflip.dev/unload/pkg/task"
	"tableflip.dev/unload/pkg/wizard"
)

// Service adapts the task store to the shapes the MCP tools exchange.
type Service struct {
	Tasks *app.Service
	Now   func() time.Time
}

// ErrConfirmRequired is returned by DeleteTask without confirmation.
var ErrConfirmRequired = errors.New("delete requires confirm=true")

// NewService returns a Service over svc.
func NewService(svc *app.Service) *Service {
	return &Service{Tasks: svc, Now: time.Now}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreateTaskOptions are the answers a client gives in place of the wizard.
type CreateTaskOptions = wizard.Answers

// RangeDTO is a suggested control range.
type RangeDTO struct {
	Min    int    `json:"min"`
	Max    int    `json:"max"`
	Advice string `json:"advice"`
}

func rangeDTO(r suggest.Range) RangeDTO {
	return RangeDTO{Min: r.Min, Max: r.Max, Advice: r.Advice}
}

// TaskDTO is a transport-friendly projection of a task.
type TaskDTO struct {
	ID               string            `json:"id"`
	CreatedAt        string            `json:"createdAt"`
	Category         []string          `json:"category"`
	Worry            []string          `json:"worry,omitempty"`
	Owner            string            `json:"owner"`
	ControlLevel     int               `json:"controlLevel"`
	SuggestedRange   RangeDTO          `json:"suggestedRange"`
	Polarity         string            `json:"polarity"`
	Perspective      string            `json:"perspective,omitempty"`
	Focus            string            `json:"focus,omitempty"`
	Aspect           string            `json:"aspect,omitempty"`
	Notes            map[string]string `json:"notes,omitempty"`
	Message          string            `json:"message,omitempty"`
	FinalMessage     string            `json:"finalMessage,omitempty"`
	LegacyReflection string            `json:"legacyReflection,omitempty"`
}

func toDTO(t *task.Task) TaskDTO {
	dto := TaskDTO{
		ID:               t.ID,
		CreatedAt:        t.CreatedAt.UTC().Format(time.RFC3339),
		Category:         t.Category,
		Worry:            t.Worry,
		Owner:            string(t.Owner),
		ControlLevel:     t.ControlLevel,
		SuggestedRange:   rangeDTO(suggest.ControlRange(t.Owner)),
		Polarity:         string(t.EffectivePolarity()),
		Perspective:      string(t.Perspective),
		Focus:            t.Reflection.Focus,
		Aspect:           string(t.Reflection.Aspect),
		Message:          t.Reflection.Message,
		FinalMessage:     t.FinalMessage,
		LegacyReflection: t.LegacyReflection,
	}
	if len(t.Reflection.Notes) > 0 {
		dto.Notes = make(map[string]string, len(t.Reflection.Notes))
		for p, n := range t.Reflection.Notes {
			dto.Notes[string(p)] = n
		}
	}
	return dto
}

func toDTOs(tasks []*task.Task) []TaskDTO {
	out := make([]TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toDTO(t))
	}
	return out
}

// CreateTask walks the entry wizard with opts so that the same gates apply
// as in the terminal, then records the task.
func (s *Service) CreateTask(ctx context.Context, opts CreateTaskOptions) (*TaskDTO, string, error) {
	res, err := wizard.Fill(ctx, s.Tasks, opts)
	if res.Task == nil {
		return nil, "", err
	}
	dto := toDTO(res.Task)
	return &dto, res.Quote, err
}

// ListTasks runs a history query.
func (s *Service) ListTasks(_ context.Context, q history.Query) []TaskDTO {
	return toDTOs(history.FilterAndSort(s.Tasks.Tasks(), q, s.now()))
}

// TaskByID returns one task.
func (s *Service) TaskByID(_ context.Context, id string) (*TaskDTO, error) {
	t, err := s.Tasks.Get(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	dto := toDTO(t)
	return &dto, nil
}

// ReflectionOptions lists reflection fields to change. Nil fields are kept.
type ReflectionOptions struct {
	Focus        *string
	Notes        map[task.Perspective]string
	FinalMessage *string
	Perspective  *task.Perspective
	Worry        []string
}

// UpdateReflection edits a task's reflection through the journal editor.
func (s *Service) UpdateReflection(ctx context.Context, id string, opts ReflectionOptions) (*TaskDTO, error) {
	ed := journal.NewEditor(s.Tasks)
	if _, err := ed.Open(strings.TrimSpace(id)); err != nil {
		return nil, err
	}
	if opts.Focus != nil {
		ed.SetFocus(*opts.Focus)
	}
	for p, n := range opts.Notes {
		ed.SetNote(p, n)
	}
	if opts.FinalMessage != nil {
		ed.SetMessage(*opts.FinalMessage)
	}
	if opts.Perspective != nil {
		ed.SetPerspective(*opts.Perspective)
	}
	if opts.Worry != nil {
		ed.SetWorry(opts.Worry)
	}
	if err := ed.Save(ctx); err != nil {
		return nil, err
	}
	return s.TaskByID(ctx, id)
}

// DeleteTask removes a task. confirm must be true; it is the second step of
// the delete confirmation.
func (s *Service) DeleteTask(ctx context.Context, id string, confirm bool) (bool, error) {
	var flow history.DeleteFlow
	flow.Mark(strings.TrimSpace(id))
	if !confirm {
		flow.Cancel()
		return false, ErrConfirmRequired
	}
	if _, err := s.Tasks.Get(strings.TrimSpace(id)); err != nil {
		return false, err
	}
	return flow.Confirm(ctx, s.Tasks)
}

// CueDTO is the cue shown for today.
type CueDTO struct {
	cue.Cue
	Source string `json:"source"`
}

// DailyCue selects today's cue, letting recent records override the date.
func (s *Service) DailyCue(_ context.Context) CueDTO {
	c, src := cue.Select(s.now(), s.Tasks.Tasks())
	return CueDTO{Cue: c, Source: string(src)}
}

// Stats summarizes the collection.
func (s *Service) Stats(_ context.Context, top int) app.Summary {
	return app.Summarize(s.Tasks.Tasks(), s.now(), top)
}

// SuggestRange returns the suggested control range for owner.
func (s *Service) SuggestRange(owner task.Owner) RangeDTO {
	return rangeDTO(suggest.ControlRange(owner))
}
