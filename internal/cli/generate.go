package cli

import (
	"github.com/spf13/cobra"

	"github.com/w4/1p/backend"
)

func newGenerateCmd(a *App) *cobra.Command {
	var (
		username string
		url      string
		tags     []string
	)

	cmd := &cobra.Command{
		Use:     "generate <name>",
		Aliases: []string{"gen"},
		Short:   "Generate a new password and store it as a login",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.opContext(cmd)
			defer cancel()

			svc, err := a.Service(ctx)
			if err != nil {
				return err
			}

			item, err := svc.Generate(ctx, backend.GenerateRequest{
				Name:     args[0],
				Username: username,
				URL:      url,
				Tags:     tags,
			})
			if err != nil {
				return err
			}

			return a.render.Card(cmd.OutOrStdout(), item)
		},
	}

	cmd.Flags().StringVarP(&username, "username", "n", "", "Username to associate with the login")
	cmd.Flags().StringVarP(&url, "url", "u", "", "URL to associate with the login")
	cmd.Flags().StringSliceVarP(&tags, "tags", "t", nil, "Comma-separated list of tags to associate with the login")
	return cmd
}
