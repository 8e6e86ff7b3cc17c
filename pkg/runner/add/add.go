package add

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"tableflip.dev/unload/pkg/app"
	"tableflip.dev/unload/pkg/logging"
	"tableflip.dev/unload/pkg/printers"
	tuiwizard "tableflip.dev/unload/pkg/tui/wizard"
	"tableflip.dev/unload/pkg/wizard"
)

// ErrNotInteractive is returned when no answers were given and there is no
// terminal to run the entry wizard on.
var ErrNotInteractive = errors.New("no answers given and stdout is not a terminal; pass --category, --focus, --owner and --control")

type Add struct {
	Answers wizard.Answers
	// Interactive forces the entry wizard even when answers were given.
	Interactive bool
	ShowID      bool

	Service *app.Service
	Logger  *zap.Logger
	Out     io.Writer

	// run replaces the terminal wizard in tests.
	run func(ctx context.Context, adder wizard.Adder) (wizard.Result, bool, error)
	// tty replaces the terminal check in tests.
	tty func() bool
}

func (n *Add) out() io.Writer {
	if n.Out != nil {
		return n.Out
	}
	return color.Output
}

func (n *Add) interactive() bool {
	if n.Interactive {
		return true
	}
	if len(n.Answers.Category) > 0 {
		return false
	}
	tty := n.tty
	if tty == nil {
		tty = func() bool {
			fd := os.Stdout.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		}
	}
	return tty()
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no task service")
	}
	logger := logging.OrNop(n.Logger)

	var (
		res wizard.Result
		err error
	)
	switch {
	case n.interactive():
		run := n.run
		if run == nil {
			run = tuiwizard.Run
		}
		var ok bool
		res, ok, err = run(ctx, n.Service)
		if !ok && err == nil {
			logger.Debug("entry wizard cancelled")
			_, _ = fmt.Fprintln(n.out(), "Nothing recorded.")
			return nil
		}
	case len(n.Answers.Category) == 0:
		return ErrNotInteractive
	default:
		res, err = wizard.Fill(ctx, n.Service, n.Answers)
	}
	if res.Task == nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.NewLine()
	pp.Title("Recorded")
	pp.Task(res.Task)
	_, _ = color.New(color.Faint).Fprintf(n.out(), "“%s”\n", res.Quote)
	if err != nil {
		logger.Warn("task kept in memory but not saved", zap.String("id", res.Task.ID), zap.Error(err))
	}
	return err
}
