package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/unload/pkg/app"
	"tableflip.dev/unload/pkg/store"
)

type Info struct {
	Config  store.Config
	Service *app.Service
	Out     io.Writer
}

func (n *Info) Do(_ context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("UNLOAD_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "UNLOAD_CONFIG_PATH found on env, using ", override)
	} else {
		_, _ = fmt.Fprintln(out, "UNLOAD_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	if n.Service == nil || n.Service.Persistence == nil {
		return errors.New("failed to create persistence object")
	}

	b := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(b.Sprint("Config.path"), n.Config.BasePath())
	tbl.AddRow(b.Sprint("Engine"), fmt.Sprintf("%s (configured %s)", n.Service.Persistence.Name(), n.Config.Engine()))
	tbl.AddRow(b.Sprint("Legacy"), n.Config.LegacyPath())
	tbl.AddRow(b.Sprint("Tasks"), len(n.Service.Tasks()))
	advice := "disabled"
	if n.Config.Advice().APIKey != "" {
		advice = n.Config.Advice().Model
	}
	tbl.AddRow(b.Sprint("Advice"), advice)
	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
