// Package journal shows the day-by-day journal and edits the reflection of
// one task.
package journal

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/unload/pkg/app"
	"tableflip.dev/unload/pkg/journal"
	"tableflip.dev/unload/pkg/logging"
	"tableflip.dev/unload/pkg/printers"
	"tableflip.dev/unload/pkg/prompt"
	"tableflip.dev/unload/pkg/task"
)

// Show prints the journal, or one task in full when ID is set.
type Show struct {
	ID     string
	ShowID bool

	Service *app.Service
	Out     io.Writer
	Now     func() time.Time
}

func (n *Show) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not show journal, no task service")
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.NewLine()

	if id := strings.TrimSpace(n.ID); id != "" {
		t, err := n.Service.Lookup(id)
		if err != nil {
			return err
		}
		pp.Task(t)
		return nil
	}

	now := time.Now()
	if n.Now != nil {
		now = n.Now()
	}
	pp.Journal(journal.Entries(n.Service.Tasks(), now))
	return nil
}

// Edit changes the reflection of one task. Fields left nil are kept; with
// Interactive every field is asked for, defaulting to its current value.
type Edit struct {
	ID          string
	Focus       *string
	Notes       map[task.Perspective]string
	Message     *string
	Perspective *task.Perspective
	Worry       []string
	Interactive bool

	Service *app.Service
	Prompt  prompt.Prompter
	Logger  *zap.Logger
	Out     io.Writer
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit journal, no task service")
	}
	logger := logging.OrNop(n.Logger)
	p := n.Prompt
	if p == nil {
		p = prompt.IO{}
	}

	id := strings.TrimSpace(n.ID)
	if id == "" {
		if !n.Interactive {
			return errors.New("a task id is required")
		}
		picked, err := p.SelectTask("Which entry", n.Service.Tasks())
		if err != nil {
			return err
		}
		id = picked.ID
	} else if t, err := n.Service.Lookup(id); err == nil {
		id = t.ID
	} else {
		return err
	}

	ed := journal.NewEditor(n.Service)
	draft, err := ed.Open(id)
	if err != nil {
		return err
	}

	if n.Focus != nil {
		ed.SetFocus(*n.Focus)
	}
	for persp, text := range n.Notes {
		ed.SetNote(persp, text)
	}
	if n.Message != nil {
		ed.SetMessage(*n.Message)
	}
	if n.Perspective != nil {
		ed.SetPerspective(*n.Perspective)
	}
	if n.Worry != nil {
		ed.SetWorry(n.Worry)
	}

	if n.Interactive {
		if err := ask(p, ed, draft); err != nil {
			return err
		}
	}

	if err := ed.Save(ctx); err != nil {
		return err
	}
	logger.Debug("reflection saved", zap.String("id", id))

	t, err := n.Service.Get(id)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Task(t)
	return nil
}

func ask(p prompt.Prompter, ed *journal.Editor, was journal.Draft) error {
	focus, err := p.Text("Focus", was.Reflection.Focus, true)
	if err != nil {
		return err
	}
	ed.SetFocus(focus)

	for _, persp := range task.Perspectives() {
		note, err := p.Text("Note ("+string(persp)+")", was.Reflection.Note(persp), false)
		if err != nil {
			return err
		}
		ed.SetNote(persp, note)
	}

	msg, err := p.Text("Message to yourself", was.FinalMessage, false)
	if err != nil {
		return err
	}
	ed.SetMessage(msg)
	return nil
}
