package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTOTPCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "totp <uuid>",
		Short: "Grab a two-factor authentication code for the given item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.opContext(cmd)
			defer cancel()

			svc, err := a.Service(ctx)
			if err != nil {
				return err
			}

			code, err := svc.TOTP(ctx, args[0])
			if err != nil {
				return err
			}

			// bare code so it pipes cleanly into xclip and friends
			fmt.Fprintln(cmd.OutOrStdout(), code)
			return nil
		},
	}
}
