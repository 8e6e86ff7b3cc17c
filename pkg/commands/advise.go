package commands

import (
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/unload/pkg/advice"
	"tableflip.dev/unload/pkg/runner/advise"
)

func addAdvise(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "advise [id]",
		Short: "Ask for a short, supportive note about an entry",
		Long:  base.Wrap80("Ask a generative model for a short note about an entry, the newest when no id is given. Only labels, owner and control level are sent. Needs advice.api_key (or UNLOAD_ADVICE_API_KEY)."),
		Example: `
unload advise
unload advise 4f1c2e90
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, svc, done, err := loadService(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer done()

			gen, err := advice.NewGenAI(cmd.Context(), cfg.Advice().APIKey, cfg.Advice().Model)
			if err != nil && !errors.Is(err, advice.ErrDisabled) {
				return output.HandleError(err)
			}

			s := advise.Advise{Service: svc, Logger: logger}
			if gen != nil {
				s.Generator = gen
			}
			if len(args) == 1 {
				s.ID = args[0]
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
