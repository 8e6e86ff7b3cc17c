package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/unload/pkg/commands/options"
	runner "tableflip.dev/unload/pkg/runner/session"
	"tableflip.dev/unload/pkg/session"
	"tableflip.dev/unload/pkg/store"
)

func loadSession() (*session.Local, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	return session.NewLocal(cfg.BasePath(), cfg.Identity())
}

func addOnboard(topLevel *cobra.Command) {
	i := &options.InteractiveOptions{}
	var name, email string

	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Introduce unload and sign in",
		Example: `
unload onboard --name Amy
unload onboard -i
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			provider, err := loadSession()
			if err != nil {
				return output.HandleError(err)
			}
			s := runner.Onboard{
				Name:        name,
				Email:       email,
				Interactive: i.Interactive,
				Provider:    provider,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Your name, defaults to user.name from the config.")
	cmd.Flags().StringVar(&email, "email", "", "Your email, defaults to user.email from the config.")
	options.InteractiveArgs(cmd, i)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addWhoAmI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show who is signed in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			provider, err := loadSession()
			if err != nil {
				return output.HandleError(err)
			}
			s := runner.WhoAmI{Provider: provider}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addSignOut(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "signout",
		Short: "Forget the signed in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			provider, err := loadSession()
			if err != nil {
				return output.HandleError(err)
			}
			s := runner.SignOut{Provider: provider}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
