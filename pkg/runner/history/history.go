// Package history lists recorded tasks with the history filters.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/unload/pkg/app"
	"tableflip.dev/unload/pkg/history"
	"tableflip.dev/unload/pkg/printers"
)

type History struct {
	Query  history.Query
	ShowID bool
	JSON   bool
	// Detail prints every matching task in full.
	Detail bool

	Service *app.Service
	Out     io.Writer
	Now     func() time.Time
}

func (n *History) out() io.Writer {
	if n.Out != nil {
		return n.Out
	}
	return color.Output
}

func (n *History) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not list history, no task service")
	}
	now := time.Now()
	if n.Now != nil {
		now = n.Now()
	}

	found := history.FilterAndSort(n.Service.Tasks(), n.Query, now)

	if n.JSON {
		b, err := json.MarshalIndent(found, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(n.out(), string(b))
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.NewLine()
	pp.TitleWithCount(title(n.Query), len(found))
	if n.Detail {
		for _, t := range found {
			pp.Task(t)
		}
		return nil
	}
	pp.Tasks(found...)
	return nil
}

func title(q history.Query) string {
	t := "History"
	switch q.Window {
	case history.WindowToday:
		t += " (today)"
	case history.WindowWeek:
		t += " (past week)"
	case history.WindowMonth:
		t += " (past month)"
	}
	return t
}
