package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/unload/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command) {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete [id]",
		Aliases: []string{"rm"},
		Short:   "Delete an entry after confirming",
		Long:    base.Wrap80("Delete one entry. The entry is shown first and nothing is removed until you confirm. Without an id, pick the entry from a list."),
		Example: `
unload delete 4f1c2e90
unload delete
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, svc, done, err := loadService(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer done()

			s := remove.Remove{Yes: yes, Service: svc, Logger: logger}
			if len(args) == 1 {
				s.ID = args[0]
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking.")
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
