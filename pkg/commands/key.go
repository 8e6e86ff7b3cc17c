package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/unload/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Show the categories, worries, owners and perspectives",
		Example: `
unload key
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			k := key.Key{}
			err := k.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
