package commands

import (
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/unload/pkg/commands/options"
	"tableflip.dev/unload/pkg/runner/journal"
)

func addJournal(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Read and write reflections",
	}

	addJournalShow(cmd)
	addJournalEdit(cmd)
	topLevel.AddCommand(cmd)
}

func addJournalShow(parent *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show the journal by day, or one entry in full",
		Example: `
unload journal show
unload journal show 4f1c2e90
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, svc, done, err := loadService(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer done()

			s := journal.Show{ShowID: io.ShowID, Service: svc}
			if len(args) == 1 {
				s.ID = args[0]
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addJournalEdit(parent *cobra.Command) {
	ro := &options.ReflectionOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Edit the reflection of an entry",
		Long:  base.Wrap80("Edit the focus sentence, the per-perspective notes, the note to yourself and the worry labels of an entry. Entries written by older releases as one block of text are split into sections the first time they are edited."),
		Example: `
unload journal edit 4f1c2e90 --note distance="in a year this is small"
unload journal edit 4f1c2e90 -m "one step at a time" -p distance
unload journal edit -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("too many ids")
			}
			if len(args) == 0 && !i.Interactive {
				return errors.New("requires an id, or --interactive to pick one")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			notes, err := ro.NoteEdits()
			if err != nil {
				return output.HandleError(err)
			}
			persp, err := ro.PerspectiveEdit()
			if err != nil {
				return output.HandleError(err)
			}
			_, svc, done, err := loadService(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer done()

			s := journal.Edit{
				Focus:       ro.FocusEdit(),
				Notes:       notes,
				Message:     ro.MessageEdit(),
				Perspective: persp,
				Worry:       ro.WorryEdit(),
				Interactive: i.Interactive || !ro.Any(),
				Service:     svc,
				Logger:      logger,
			}
			if len(args) == 1 {
				s.ID = args[0]
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddReflectionArgs(cmd, ro)
	options.InteractiveArgs(cmd, i)
	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}
