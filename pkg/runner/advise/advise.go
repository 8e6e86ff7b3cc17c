// Package advise prints a generated, supportive note about one task.
package advise

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/muesli/reflow/wordwrap"
	"go.uber.org/zap"

	"tableflip.dev/unload/pkg/advice"
	"tableflip.dev/unload/pkg/app"
	"tableflip.dev/unload/pkg/printers"
)

type Advise struct {
	// ID defaults to the newest task.
	ID string

	Service   *app.Service
	Generator advice.Generator
	Logger    *zap.Logger
	Out       io.Writer
}

func (n *Advise) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not advise, no task service")
	}

	var target = n.ID
	if target == "" {
		all := n.Service.Tasks()
		if len(all) == 0 {
			return errors.New("nothing recorded yet")
		}
		target = all[0].ID
	}
	t, err := n.Service.Lookup(target)
	if err != nil {
		return err
	}

	a := advice.Advisor{Generator: n.Generator, Logger: n.Logger}
	text, err := a.Advise(ctx, t)
	if errors.Is(err, advice.ErrDisabled) {
		return err
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Tasks(t)
	if err != nil {
		// The note is optional; a failed request only degrades this view.
		_, _ = fmt.Fprintln(out, color.YellowString("Advice unavailable: %v", err))
		_, _ = fmt.Fprintln(out)
		return nil
	}
	_, _ = fmt.Fprintln(out, wordwrap.String(text, 72))
	_, _ = fmt.Fprintln(out)
	return nil
}
