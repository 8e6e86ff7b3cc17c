// Package cue prints the focus cue for today.
package cue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/unload/pkg/app"
	"tableflip.dev/unload/pkg/cue"
	"tableflip.dev/unload/pkg/printers"
)

type Cue struct {
	JSON bool
	// Daily ignores recorded tasks and prints the date's cue.
	Daily bool

	Service *app.Service
	Out     io.Writer
	Now     func() time.Time
}

func (n *Cue) Do(_ context.Context) error {
	if n.Service == nil && !n.Daily {
		return errors.New("can not pick a cue, no task service")
	}
	now := time.Now()
	if n.Now != nil {
		now = n.Now()
	}

	c, source := cue.OfTheDay(now), cue.SourceDate
	if !n.Daily {
		c, source = cue.Select(now, n.Service.Tasks())
	}

	if n.JSON {
		b, err := json.MarshalIndent(struct {
			cue.Cue
			Source cue.Source `json:"source"`
		}{c, source}, "", "  ")
		if err != nil {
			return err
		}
		out := n.Out
		if out == nil {
			out = color.Output
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Cue(c, source)
	return nil
}
