package commands

import (
	"time"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/unload/pkg/commands/options"
	"tableflip.dev/unload/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	var (
		top      int
		calendar bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Count entries by day, week, month and owner",
		Example: `
unload stats
unload stats --calendar --on 2024-5
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			on, err := oo.GetOn()
			if err != nil {
				return output.HandleError(err)
			}
			_, svc, done, err := loadService(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer done()

			s := stats.Stats{
				JSON:     output.JSON,
				Top:      top,
				Calendar: calendar,
				Service:  svc,
				Now:      func() time.Time { return on },
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	cmd.Flags().IntVar(&top, "top", stats.DefaultTop, "How many categories to rank.")
	cmd.Flags().BoolVar(&calendar, "calendar", false, "Also print the month with a count per day.")
	options.AddOnArgs(cmd, oo)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
