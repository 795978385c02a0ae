package cli

import (
	"github.com/spf13/cobra"
)

func newVaultsCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "vaults",
		Short: "List the account's vaults",
		Args:  cobra.NoArgs,
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

			return a.render.VaultTable(cmd.OutOrStdout(), listing.Vaults)
		},
	}
}
