package cli

import (
	"github.com/spf13/cobra"
)

func newSearchCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <terms>",
		Short: "Search for an item",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.opContext(cmd)
			defer cancel()

			svc, err := a.Service(ctx)
			if err != nil {
				return err
			}

			listing, err := svc.Search(ctx, a.listOptions(), args)
			if err != nil {
				return err
			}

			return a.render.SearchResults(cmd.OutOrStdout(), listing.Items)
		},
	}
}
