// Package stats prints the dashboard counts and a calendar of entries.
package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/unload/pkg/app"
	"tableflip.dev/unload/pkg/printers"
)

// DefaultTop is how many categories the ranking shows.
const DefaultTop = 5

type Stats struct {
	JSON     bool
	Top      int
	Calendar bool

	Service *app.Service
	Out     io.Writer
	Now     func() time.Time
}

func (n *Stats) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not count, no task service")
	}
	now := time.Now()
	if n.Now != nil {
		now = n.Now()
	}
	top := n.Top
	if top <= 0 {
		top = DefaultTop
	}
	records := n.Service.Tasks()
	summary := app.Summarize(records, now, top)

	if n.JSON {
		b, err := json.MarshalIndent(summary, "", "  ")
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
	pp.Stats(summary)
	if n.Calendar {
		pp.Calendar(now, records...)
		pp.NewLine()
	}
	return nil
}
