package cli

import (
	"github.com/spf13/cobra"

	"github.com/w4/1p/internal/service"
)

func newBrowseCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse items interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// interactive sessions run unbounded, so no timeout here
			ctx := cmd.Context()

			svc, err := a.Service(ctx)
			if err != nil {
				return err
			}

			// keep the cache warm while the browser is open
			if a.meta != nil {
				job := service.NewRefreshJob(svc, a.log)
				job.Start(ctx, a.cfg.Cache.TTL)
				defer job.Stop()
			}

			return a.browse(ctx, svc, a.listOptions(), a.cfg.NoColor)
		},
	}
}
