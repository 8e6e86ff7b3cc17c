package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/unload/pkg/commands/options"
	"tableflip.dev/unload/pkg/runner/history"
	"tableflip.dev/unload/pkg/task"
)

func addHistory(topLevel *cobra.Command) {
	ho := &options.HistoryOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"ls"},
		Short:   "List recorded worries",
		Long:    base.Wrap80("List recorded worries, newest first. Filters combine: a search over category and worry labels, a time window, a category, and an owner."),
		Example: `
unload history
unload history --window week --owner mine
unload history -c Other --sort oldest
unload history -s 面試 --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			q, err := ho.Query()
			if err != nil {
				return output.HandleError(err)
			}
			_, svc, done, err := loadService(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer done()

			s := history.History{
				Query:   q,
				ShowID:  io.ShowID,
				JSON:    output.JSON,
				Detail:  ho.Detail,
				Service: svc,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddHistoryArgs(cmd, ho)
	_ = cmd.RegisterFlagCompletionFunc("category", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return task.Categories, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("owner", ownerCompletions)
	_ = cmd.RegisterFlagCompletionFunc("window", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"all", "today", "week", "month"}, cobra.ShellCompDirectiveNoFileComp
	})
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
