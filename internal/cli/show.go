package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/w4/1p/backend"
)

func newShowCmd(a *App) *cobra.Command {
	var clip bool

	cmd := &cobra.Command{
		Use:     "show <uuid>",
		Aliases: []string{"get"},
		Short:   "Show an existing item and optionally copy its password",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.opContext(cmd)
			defer cancel()

			svc, err := a.Service(ctx)
			if err != nil {
				return err
			}

			item, err := svc.Get(ctx, args[0])
			if err != nil {
				return err
			}

			if clip {
				password, ok := item.FieldByKind(backend.FieldKindPassword)
				if !ok {
					return ErrNoPasswordField
				}
				if err := a.clip(password.Value); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Copied the password for %q to the clipboard.\n", item.Title)
				return nil
			}

			return a.render.Card(cmd.OutOrStdout(), item)
		},
	}

	cmd.Flags().BoolVarP(&clip, "clip", "c", false, "Copy the password to the clipboard instead of printing the item")
	return cmd
}
