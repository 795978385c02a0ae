package cli

import (
	"github.com/spf13/cobra"

	"github.com/w4/1p/internal/display"
)

func newListCmd(a *App) *cobra.Command {
	var showUUIDs, showAccountNames bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all items",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.opContext(cmd)
			defer cancel()

			svc, err := a.Service(ctx)
			if err != nil {
				return err
			}

			listing, err := svc.Overview(ctx, a.listOptions())
			if err != nil {
				return err
			}

			return a.render.Listing(cmd.OutOrStdout(), listing.Account, listing.Vaults, listing.Items, display.ListOptions{
				ShowUUIDs:        showUUIDs,
				ShowAccountNames: showAccountNames,
			})
		},
	}

	cmd.Flags().BoolVarP(&showUUIDs, "show-uuids", "i", false, "Print each item's uuid beneath it")
	cmd.Flags().BoolVarP(&showAccountNames, "show-account-names", "n", false, "Print each item's account info beneath it")
	return cmd
}
