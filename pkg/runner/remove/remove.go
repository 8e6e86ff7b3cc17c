// Package remove deletes one task after the user confirms it.
package remove

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"tableflip.dev/unload/pkg/app"
	"tableflip.dev/unload/pkg/history"
	"tableflip.dev/unload/pkg/logging"
	"tableflip.dev/unload/pkg/printers"
	"tableflip.dev/unload/pkg/prompt"
)

type Remove struct {
	ID string
	// Yes skips the confirmation prompt.
	Yes bool

	Service *app.Service
	Prompt  prompt.Prompter
	Logger  *zap.Logger
	Out     io.Writer
}

func (n *Remove) out() io.Writer {
	if n.Out != nil {
		return n.Out
	}
	return color.Output
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no task service")
	}
	logger := logging.OrNop(n.Logger)
	p := n.Prompt
	if p == nil {
		p = prompt.IO{}
	}

	var flow history.DeleteFlow

	if strings.TrimSpace(n.ID) == "" {
		picked, err := p.SelectTask("Delete which entry", n.Service.Tasks())
		if err != nil {
			return err
		}
		flow.Mark(picked.ID)
	} else {
		t, err := n.Service.Lookup(n.ID)
		if err != nil {
			return err
		}
		flow.Mark(t.ID)
	}

	id, _ := flow.Pending()
	t, err := n.Service.Get(id)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	pp.NewLine()
	pp.Tasks(t)

	if !n.Yes {
		ok, err := p.Confirm("Delete this entry")
		if err != nil {
			return err
		}
		if !ok {
			flow.Cancel()
			_, _ = fmt.Fprintln(n.out(), "Kept.")
			return nil
		}
	}

	if _, err := flow.Confirm(ctx, n.Service); err != nil {
		return err
	}
	logger.Debug("task deleted", zap.String("id", id))
	_, _ = fmt.Fprintf(n.out(), "Deleted %s.\n", printers.ShortID(id))
	return nil
}
