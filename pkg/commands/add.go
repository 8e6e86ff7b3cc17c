package commands

import (
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/unload/pkg/commands/options"
	"tableflip.dev/unload/pkg/runner/add"
	"tableflip.dev/unload/pkg/task"
)

func addAdd(topLevel *cobra.Command) {
	ao := &options.AddOptions{}
	io := &options.IDOptions{}
	i := &options.InteractiveOptions{}

	long := strings.Builder{}
	long.WriteString(base.Wrap80("Record a worry. Without flags, and on a terminal, the entry wizard walks through category, focus, owner, control and a note to yourself."))
	long.WriteString("\n\nCategories:\n  ")
	long.WriteString(strings.Join(task.Categories, "  "))
	long.WriteString("\n\nWorries:\n  ")
	long.WriteString(strings.Join(task.Worries, "  "))
	long.WriteString("\n")

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a worry",
		Long:  long.String(),
		Example: `
unload add
unload add -c 面試壓力 -f "the interview on Friday" -o mine --control 80
unload add -c Other --other-category 搬家 -f "moving out" -o shared --control 40 -m "one box a day"
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			answers, err := ao.Answers()
			if err != nil {
				return output.HandleError(err)
			}
			_, svc, done, err := loadService(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer done()

			s := add.Add{
				Answers:     answers,
				Interactive: i.Interactive,
				ShowID:      io.ShowID,
				Service:     svc,
				Logger:      logger,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddEntryArgs(cmd, ao)
	_ = cmd.RegisterFlagCompletionFunc("category", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return task.Categories, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("worry", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return task.Worries, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("owner", ownerCompletions)
	options.InteractiveArgs(cmd, i)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func ownerCompletions(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	owners := make([]string, 0, 3)
	for _, o := range task.Owners() {
		owners = append(owners, strings.ToLower(string(o)))
	}
	return owners, cobra.ShellCompDirectiveNoFileComp
}
