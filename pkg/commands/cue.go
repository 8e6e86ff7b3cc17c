package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/unload/pkg/runner/cue"
)

func addCue(topLevel *cobra.Command) {
	var daily bool

	cmd := &cobra.Command{
		Use:   "cue",
		Short: "Show today's focus cue",
		Long:  base.Wrap80("Show a cue to focus on today. When your entries point at one cue it is picked from them, otherwise the cue changes once per day."),
		Example: `
unload cue
unload cue --daily
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, svc, done, err := loadService(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer done()

			s := cue.Cue{JSON: output.JSON, Daily: daily, Service: svc}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&daily, "daily", false, "Ignore entries and show the cue of the day.")
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
