package commands

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"
)

func addUpgrade(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade unload cli.",
		Example: `
unload upgrade
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ex := exec.CommandContext(cmd.Context(), "go", "install", "tableflip.dev/unload/cmd/unload@latest")
			var out bytes.Buffer
			ex.Stdout = &out
			ex.Stderr = &out
			if err := ex.Run(); err != nil {
				return output.HandleError(fmt.Errorf("%s: %w", out.String(), err))
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", ex.String())
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
