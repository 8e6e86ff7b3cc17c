package commands

import (
	"context"
	"fmt"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tableflip.dev/unload/pkg/app"
	"tableflip.dev/unload/pkg/commands/options"
	"tableflip.dev/unload/pkg/logging"
	"tableflip.dev/unload/pkg/store"
)

var (
	output = &base.OutputOptions{}
	lo     = &options.LogOptions{}
	logger = zap.NewNop()
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "unload",
		Short: base.Wrap80("Set a worry down: record it, see how much of it is yours, and come back to it later."),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := logging.New(lo.Verbose)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddLogArgs(cmd, lo)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addHistory(topLevel)
	addJournal(topLevel)
	addDelete(topLevel)
	addCue(topLevel)
	addStats(topLevel)
	addAdvise(topLevel)
	addOnboard(topLevel)
	addWhoAmI(topLevel)
	addSignOut(topLevel)
	addKey(topLevel)
	addInfo(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addUpgrade(topLevel)
	addCompletions(topLevel)
}

// loadService reads the configuration, opens the configured store and loads
// the collection. The returned close func releases the store.
func loadService(ctx context.Context) (store.Config, *app.Service, func(), error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	p, err := store.Open(cfg, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	svc := app.New(p, logger)
	if _, err := svc.Load(ctx); err != nil {
		_ = p.Close()
		return nil, nil, nil, fmt.Errorf("load tasks: %w", err)
	}
	return cfg, svc, func() { _ = p.Close() }, nil
}
